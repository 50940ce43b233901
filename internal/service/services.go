package service

import (
	"github.com/mvdberg/huisportaal/internal/config"
	"github.com/mvdberg/huisportaal/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Contact *ContactService
	Film    *FilmService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.Account, repos.Session, cfg.SessionTTL),
		Contact: NewContactService(repos.Contact),
		Film:    NewFilmService(repos.Film),
	}
}
