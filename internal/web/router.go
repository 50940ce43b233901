package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/mvdberg/huisportaal/internal/service"
	"github.com/mvdberg/huisportaal/internal/web/handlers"
	"github.com/mvdberg/huisportaal/internal/web/middleware"
	"github.com/mvdberg/huisportaal/internal/web/render"
)

func NewRouter(services *service.Services, renderer *render.Renderer, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Sessions(services.Auth))

	pageHandler := handlers.NewPageHandler(renderer)
	authHandler := handlers.NewAuthHandler(services.Auth, renderer, logger)
	contactHandler := handlers.NewContactHandler(services.Contact, renderer, logger)
	filmHandler := handlers.NewFilmHandler(services.Film, renderer, logger)

	// Public routes
	r.Get("/", pageHandler.Home)
	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Get("/register", authHandler.RegisterPage)
	r.Post("/register", authHandler.Register)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAccount)

		r.Get("/dashboard", pageHandler.Dashboard)
		r.Get("/logout", authHandler.Logout)

		r.Get("/telefoonboek", contactHandler.List)
		r.Post("/telefoonboek", contactHandler.CreateAndList)
		r.Post("/addtelefoon", contactHandler.Add)
		r.Post("/editnummer", contactHandler.EditPhone)
		r.Post("/editnaam", contactHandler.EditName)
		r.Post("/removetelefoon", contactHandler.Remove)

		r.Get("/films", filmHandler.List)
		r.Post("/films", filmHandler.CreateAndList)
		r.Post("/addfilm", filmHandler.Add)
		r.Post("/editfilm", filmHandler.Edit)
		r.Post("/removefilm", filmHandler.Remove)
	})

	return r
}
