package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/mvdberg/huisportaal/internal/domain"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *contactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// ListByOwner returns the owner's contacts in insertion order.
func (r *contactRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Contact, error) {
	var contacts []*domain.Contact
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) UpdatePhone(ctx context.Context, id, ownerID int64, phone string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("phone_number", phone)
	return res.RowsAffected, res.Error
}

func (r *contactRepository) UpdateName(ctx context.Context, id, ownerID int64, name string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("name", name)
	return res.RowsAffected, res.Error
}

func (r *contactRepository) Delete(ctx context.Context, id, ownerID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&domain.Contact{})
	return res.RowsAffected, res.Error
}
