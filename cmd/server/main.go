package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvdberg/huisportaal/internal/config"
	"github.com/mvdberg/huisportaal/internal/logging"
	"github.com/mvdberg/huisportaal/internal/repository/store"
	"github.com/mvdberg/huisportaal/internal/service"
	"github.com/mvdberg/huisportaal/internal/web"
	"github.com/mvdberg/huisportaal/internal/web/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("production")
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	logger := logging.New(cfg.Environment)

	db, err := store.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}

	repos := store.NewRepositories(db)
	services := service.NewServices(repos, cfg)

	renderer, err := newRenderer(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load templates")
	}

	router := web.NewRouter(services, renderer, logger)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("driver", cfg.DatabaseDriver).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}

func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	if cfg.TemplatesDir != "" {
		return render.NewFromDir(cfg.TemplatesDir)
	}
	return render.New()
}
