package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cardfolio/cardfolio-api/internal/api"
	apiMiddleware "github.com/cardfolio/cardfolio-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	folderHandler := api.NewFolderHandler(app.folderService)
	cardHandler := api.NewCardHandler(app.cardService)
	generationHandler := api.NewGenerationHandler(app.generationService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/me", authHandler.Profile)

			// Folder endpoints
			r.Get("/folders", folderHandler.List)
			r.Post("/folders", folderHandler.Create)
			r.Get("/folders/{id}", folderHandler.Get)
			r.Put("/folders/{id}", folderHandler.Update)
			r.Delete("/folders/{id}", folderHandler.Delete)

			// Card endpoints
			r.Post("/folders/{id}/cards", cardHandler.Create)
			r.Delete("/cards/{id}", cardHandler.Delete)

			// Generation endpoints
			r.Post("/generate-cards", generationHandler.Generate)
			r.Post("/folders/{id}/cards/generate", generationHandler.GenerateIntoFolder)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
