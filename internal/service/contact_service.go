package service

import (
	"context"

	"github.com/mvdberg/huisportaal/internal/domain"
	"github.com/mvdberg/huisportaal/internal/repository"
)

type ContactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

func (s *ContactService) Add(ctx context.Context, ownerID int64, name, phone string) (*domain.Contact, error) {
	contact := &domain.Contact{
		OwnerID:     ownerID,
		Name:        name,
		PhoneNumber: phone,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) List(ctx context.Context, ownerID int64) ([]*domain.Contact, error) {
	return s.contactRepo.ListByOwner(ctx, ownerID)
}

// UpdatePhone changes the phone number of one owned contact. Touching no
// rows, whether the id is unknown or belongs to someone else, surfaces as
// ErrRecordNotFound.
func (s *ContactService) UpdatePhone(ctx context.Context, id, ownerID int64, phone string) error {
	affected, err := s.contactRepo.UpdatePhone(ctx, id, ownerID, phone)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (s *ContactService) UpdateName(ctx context.Context, id, ownerID int64, name string) error {
	affected, err := s.contactRepo.UpdateName(ctx, id, ownerID, name)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (s *ContactService) Delete(ctx context.Context, id, ownerID int64) error {
	affected, err := s.contactRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
