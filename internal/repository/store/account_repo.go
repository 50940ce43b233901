package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mvdberg/huisportaal/internal/domain"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *accountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	err := r.db.WithContext(ctx).Create(account).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateUsername
	}
	return err
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).First(&account, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
