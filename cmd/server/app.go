package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/cardfolio/cardfolio-api/internal/config"
	"github.com/cardfolio/cardfolio-api/internal/generation"
	"github.com/cardfolio/cardfolio-api/internal/platform/gemini"
	"github.com/cardfolio/cardfolio-api/internal/platform/postgres"
	"github.com/cardfolio/cardfolio-api/internal/service"
	"github.com/cardfolio/cardfolio-api/internal/service/auth"
	"github.com/cardfolio/cardfolio-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore   store.UserStore
	folderStore store.FolderStore
	cardStore   store.CardStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	generator        generation.CardGenerator

	folderService     *service.FolderService
	cardService       *service.CardService
	generationService *service.GenerationService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.folderStore = postgres.NewPostgresFolderStore(db, logger)
	app.cardStore = postgres.NewPostgresCardStore(db, logger)

	app.generator, err = gemini.NewGenerator(
		logger.With("component", "card_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize card generator: %w", err)
	}

	app.folderService, err = service.NewFolderService(app.folderStore, app.cardStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder service: %w", err)
	}

	app.cardService, err = service.NewCardService(app.folderStore, app.cardStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	app.generationService, err = service.NewGenerationService(
		app.generator,
		app.cardService,
		app.folderService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
