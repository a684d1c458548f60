package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cardfolio/cardfolio-api/internal/api/shared"
	"github.com/cardfolio/cardfolio-api/internal/domain"
	"github.com/cardfolio/cardfolio-api/internal/generation"
	"github.com/cardfolio/cardfolio-api/internal/service"
	"github.com/cardfolio/cardfolio-api/internal/service/auth"
	"github.com/cardfolio/cardfolio-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var batchErr *service.CardBatchError

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, service.ErrFolderNotFound),
		errors.Is(err, service.ErrCardNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, service.ErrGenerationInProgress):
		return http.StatusConflict

	// Upstream model conditions with dedicated retryable statuses
	case errors.Is(err, generation.ErrUpstreamBusy):
		return http.StatusTooManyRequests
	case errors.Is(err, generation.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable

	// Bad request errors: input the caller can fix
	case errors.As(err, &batchErr),
		errors.Is(err, service.ErrNoCardsGenerated),
		errors.Is(err, store.ErrInvalidEntity),
		domain.IsValidationError(err):
		return http.StatusBadRequest

	// Everything else, including the remaining generation errors
	// (not configured, upstream auth, malformed or invalid responses),
	// is a server-side failure.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Internal details, raw upstream payloads, and
// credentials never appear here; they live in server logs only.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var batchErr *service.CardBatchError
	var validationErr *domain.ValidationError

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	// Not found errors
	case errors.Is(err, service.ErrFolderNotFound):
		return "Folder not found"

	case errors.Is(err, service.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already taken"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, service.ErrGenerationInProgress):
		return "A card generation is already in progress for this folder"

	// Upstream model conditions. Retryable ones say so; configuration and
	// credential problems are deliberately vague to the caller.
	case errors.Is(err, generation.ErrNotConfigured):
		return "AI service not configured. Please contact support."

	case errors.Is(err, generation.ErrUpstreamBusy):
		return "AI service is busy. Please try again shortly."

	case errors.Is(err, generation.ErrUpstreamUnavailable):
		return "AI service is temporarily unavailable. Please try again."

	case errors.Is(err, generation.ErrUpstreamAuth),
		errors.Is(err, generation.ErrUpstream):
		return "AI service request failed"

	case errors.Is(err, generation.ErrMalformedResponse),
		errors.Is(err, generation.ErrInvalidFormat):
		return "AI service returned an unreadable response"

	case errors.Is(err, generation.ErrInvalidCards):
		// The invalid-cards message is built by the gateway and names only
		// how many entries were rejected, which is safe to surface.
		return strings.TrimSpace(err.Error())

	case errors.Is(err, service.ErrNoCardsGenerated):
		return "No cards generated"

	// Client input errors carry their own safe messages.
	case errors.As(err, &batchErr):
		return batchErr.Error()

	case errors.As(err, &validationErr):
		return validationErr.Error()

	case domain.IsValidationError(err):
		return err.Error()

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message and writes
// the response, logging the full (redacted) error server-side. An optional
// override message replaces the mapped safe message when non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validator struct
// errors and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format:
	// "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
