package repository

import (
	"context"
	"time"

	"github.com/mvdberg/huisportaal/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) error
}

// Mutations on owned rows return the affected row count. Every predicate
// includes the owner id, so a count of 0 means "no such row or not yours";
// the two cases are deliberately indistinguishable.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Contact, error)
	UpdatePhone(ctx context.Context, id, ownerID int64, phone string) (int64, error)
	UpdateName(ctx context.Context, id, ownerID int64, name string) (int64, error)
	Delete(ctx context.Context, id, ownerID int64) (int64, error)
}

type FilmRepository interface {
	Create(ctx context.Context, film *domain.FilmEntry) error
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.FilmEntry, error)
	Update(ctx context.Context, id, ownerID int64, title, year string, watched int, timestamp string) (int64, error)
	Delete(ctx context.Context, id, ownerID int64) (int64, error)
}

type Repositories struct {
	Account AccountRepository
	Session SessionRepository
	Contact ContactRepository
	Film    FilmRepository
}
