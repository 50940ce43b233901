package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/mvdberg/huisportaal/internal/domain"
)

type filmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *filmRepository {
	return &filmRepository{db: db}
}

func (r *filmRepository) Create(ctx context.Context, film *domain.FilmEntry) error {
	return r.db.WithContext(ctx).Create(film).Error
}

// ListByOwner returns the owner's film entries in insertion order.
func (r *filmRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.FilmEntry, error) {
	var films []*domain.FilmEntry
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return films, nil
}

func (r *filmRepository) Update(ctx context.Context, id, ownerID int64, title, year string, watched int, timestamp string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.FilmEntry{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]interface{}{
			"title":     title,
			"year":      year,
			"watched":   watched,
			"timestamp": timestamp,
		})
	return res.RowsAffected, res.Error
}

func (r *filmRepository) Delete(ctx context.Context, id, ownerID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&domain.FilmEntry{})
	return res.RowsAffected, res.Error
}
