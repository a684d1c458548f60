package service

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrFolderNotFound indicates the folder does not exist or is owned by
	// a different user. Ownership failures deliberately look identical to
	// missing folders so callers cannot probe other users' folder IDs.
	// API layer maps this to HTTP 404 Not Found.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrCardNotFound indicates the card does not exist or belongs to a
	// folder owned by a different user.
	// API layer maps this to HTTP 404 Not Found.
	ErrCardNotFound = errors.New("card not found")

	// ErrGenerationInProgress indicates a card generation is already in
	// flight for the same user and folder.
	// API layer maps this to HTTP 409 Conflict.
	ErrGenerationInProgress = errors.New("card generation already in progress for this folder")

	// ErrNoCardsGenerated indicates the model returned an empty result and
	// there is nothing to persist. Treated as a client-visible failure
	// rather than a silent no-op.
	// API layer maps this to HTTP 400 Bad Request.
	ErrNoCardsGenerated = errors.New("no cards generated")
)

// ServiceError wraps unexpected errors from a service operation with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_folder", "save_cards")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError wrapping err.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// CardBatchError reports a validation failure for one card in a batch
// persistence sequence. Position is 1-based; cards before it were already
// persisted and stay persisted, cards after it were never attempted.
type CardBatchError struct {
	// Position is the 1-based index of the failing card in the submitted batch.
	Position int
	// Err is the validation error for that card.
	Err error
}

// Error implements the error interface. The message is client-safe:
// "Card 2: Question is empty".
func (e *CardBatchError) Error() string {
	return fmt.Sprintf("Card %d: %s", e.Position, capitalizeFirst(e.Err.Error()))
}

// Unwrap returns the wrapped validation error.
func (e *CardBatchError) Unwrap() error {
	return e.Err
}

// capitalizeFirst upper-cases the first rune of s.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
