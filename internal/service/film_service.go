package service

import (
	"context"

	"github.com/mvdberg/huisportaal/internal/domain"
	"github.com/mvdberg/huisportaal/internal/repository"
)

type FilmService struct {
	filmRepo repository.FilmRepository
}

func NewFilmService(filmRepo repository.FilmRepository) *FilmService {
	return &FilmService{filmRepo: filmRepo}
}

type FilmInput struct {
	Title     string
	Year      string
	Watched   int
	Timestamp string
}

func (s *FilmService) Add(ctx context.Context, ownerID int64, input FilmInput) (*domain.FilmEntry, error) {
	film := &domain.FilmEntry{
		OwnerID:   ownerID,
		Title:     input.Title,
		Year:      input.Year,
		Watched:   input.Watched,
		Timestamp: input.Timestamp,
	}
	if err := s.filmRepo.Create(ctx, film); err != nil {
		return nil, err
	}
	return film, nil
}

func (s *FilmService) List(ctx context.Context, ownerID int64) ([]*domain.FilmEntry, error) {
	return s.filmRepo.ListByOwner(ctx, ownerID)
}

func (s *FilmService) Update(ctx context.Context, id, ownerID int64, input FilmInput) error {
	affected, err := s.filmRepo.Update(ctx, id, ownerID, input.Title, input.Year, input.Watched, input.Timestamp)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (s *FilmService) Delete(ctx context.Context, id, ownerID int64) error {
	affected, err := s.filmRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
