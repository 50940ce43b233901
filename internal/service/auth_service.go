package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mvdberg/huisportaal/internal/domain"
	"github.com/mvdberg/huisportaal/internal/repository"
)

type AuthService struct {
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	sessionTTL  time.Duration
}

func NewAuthService(accountRepo repository.AccountRepository, sessionRepo repository.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

// Register creates the account without logging it in. The store owns the
// unique-username invariant; a duplicate surfaces as ErrDuplicateUsername.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Login verifies the credentials and issues a session. An unknown username
// and a wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.Account, *domain.Session, error) {
	account, err := s.accountRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !CheckPassword(input.Password, account.PasswordHash) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:     uuid.New().String(),
		AccountID: account.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, err
	}

	return account, session, nil
}

// Authenticate resolves a session token to its account. The account row is
// re-read from the store on every call so changes are visible immediately.
// Expired sessions are deleted on sight.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now()) {
		_ = s.sessionRepo.DeleteByToken(ctx, token)
		return nil, domain.ErrSessionExpired
	}

	return s.accountRepo.GetByID(ctx, session.AccountID)
}

// Logout destroys the session. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.DeleteByToken(ctx, token)
}
