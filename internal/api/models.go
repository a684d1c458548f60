package api

import (
	"github.com/google/uuid"

	"github.com/cardfolio/cardfolio-api/internal/domain"
	"github.com/cardfolio/cardfolio-api/internal/generation"
)

// Common request/response structures. DTO validation tags are a first gate;
// the domain validation functions remain authoritative.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Username is the user's display name
	Username string `json:"username"`

	// Email is the user's login email
	Email string `json:"email"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateFolderRequest defines the payload for creating or renaming a folder.
// The domain folder name rules are applied after decoding.
type CreateFolderRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}

// CreateCardRequest defines the payload for manual card creation.
type CreateCardRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"   validate:"required"`
}

// GenerateCardsRequest defines the payload for both generation endpoints.
// Count bounds are enforced by domain.ValidateGenerationRequest; the tags
// reject only the grossly malformed.
type GenerateCardsRequest struct {
	Text  string `json:"text"  validate:"required"`
	Count int    `json:"count" validate:"required"`
}

// GenerateCardsResponse defines the response for the bare generation
// endpoint: candidate cards that were not persisted.
type GenerateCardsResponse struct {
	Cards []generation.CandidateCard `json:"cards"`
}

// GenerateIntoFolderResponse defines the response for generate-and-persist:
// the cards created in this request plus the refreshed folder.
type GenerateIntoFolderResponse struct {
	Cards  []*domain.Card `json:"cards"`
	Folder *domain.Folder `json:"folder"`
}

// ProfileResponse defines the response for the profile endpoint.
type ProfileResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}
