// Package main implements the entry point for the Cardfolio API server,
// which manages users' flashcard folders and provides AI-assisted card
// generation from pasted text.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cardfolio/cardfolio-api/internal/config"
	"github.com/cardfolio/cardfolio-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String(
		"migrate", "",
		"run a migration command (up, down, status) instead of the server")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("cardfolio-api: %v", err)
	}
}

// run loads configuration, sets up logging, and either executes a
// migration command or starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	appLogger.Debug("Optional configuration",
		"database_url_present", cfg.Database.URL != "",
		"gemini_api_key_present", cfg.LLM.GeminiAPIKey != "")

	if migrateCmd != "" {
		return runMigrations(cfg, appLogger, migrateCmd)
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		// newApplication does not own the connection until it returns.
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// usage hint for operators running the binary without arguments in an
// environment with no configuration at all.
func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-migrate up|down|status]\n", os.Args[0])
		flag.PrintDefaults()
	}
}
