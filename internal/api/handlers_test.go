package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cardfolio/cardfolio-api/internal/api/middleware"
	"github.com/cardfolio/cardfolio-api/internal/config"
	"github.com/cardfolio/cardfolio-api/internal/domain"
	"github.com/cardfolio/cardfolio-api/internal/service"
	"github.com/cardfolio/cardfolio-api/internal/service/auth"
)

// testEnv wires the full handler stack against in-memory stores and a stub
// upstream generator, with a real JWT service guarding the protected routes.
type testEnv struct {
	router    http.Handler
	mem       *memStore
	generator *stubGenerator
	jwt       auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mem := newMemStore()
	gen := &stubGenerator{}

	folders, err := service.NewFolderService(folderStore{mem}, cardStore{mem}, logger)
	require.NoError(t, err)
	cards, err := service.NewCardService(folderStore{mem}, cardStore{mem}, logger)
	require.NoError(t, err)
	generations, err := service.NewGenerationService(gen, cards, folders, logger)
	require.NoError(t, err)

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   "test-secret-key-thats-32-characters-long",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	})
	require.NoError(t, err)

	authHandler := NewAuthHandler(mem, jwtService, plainVerifier{})
	folderHandler := NewFolderHandler(folders)
	cardHandler := NewCardHandler(cards)
	generationHandler := NewGenerationHandler(generations)
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/me", authHandler.Profile)
			r.Get("/folders", folderHandler.List)
			r.Post("/folders", folderHandler.Create)
			r.Get("/folders/{id}", folderHandler.Get)
			r.Put("/folders/{id}", folderHandler.Update)
			r.Delete("/folders/{id}", folderHandler.Delete)
			r.Post("/folders/{id}/cards", cardHandler.Create)
			r.Post("/folders/{id}/cards/generate", generationHandler.GenerateIntoFolder)
			r.Delete("/cards/{id}", cardHandler.Delete)
			r.Post("/generate-cards", generationHandler.Generate)
		})
	})

	return &testEnv{router: r, mem: mem, generator: gen, jwt: jwtService}
}

// createUser inserts a user directly into the store and returns it along
// with a valid access token.
func (e *testEnv) createUser(t *testing.T, email, username string) (*domain.User, string) {
	t.Helper()

	user, err := domain.NewUser(email, username, "correct-horse-battery")
	require.NoError(t, err)
	require.NoError(t, e.mem.Create(context.Background(), user))

	token, err := e.jwt.GenerateToken(context.Background(), user.ID)
	require.NoError(t, err)
	return user, token
}

// createFolder inserts a folder for the user directly through the store.
func (e *testEnv) createFolder(t *testing.T, userID uuid.UUID, name string) *domain.Folder {
	t.Helper()

	folder, err := domain.NewFolder(userID, name, "")
	require.NoError(t, err)
	require.NoError(t, folderStore{e.mem}.Create(context.Background(), folder))
	return folder
}

// do issues a request against the router. A non-empty token is sent as a
// bearer Authorization header; a non-nil body is JSON-encoded.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes the recorded response body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

// errorMessage extracts the "error" field from an error response body.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &body)
	return body.Error
}
