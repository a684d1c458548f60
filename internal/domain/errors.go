package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// validationSentinels lists every domain validation error. Input failures
// carry messages that are safe to show to clients verbatim.
var validationSentinels = []error{
	ErrValidation,
	ErrInvalidID,
	ErrFolderNameRequired,
	ErrFolderNameTooShort,
	ErrFolderNameTooLong,
	ErrFolderNameInvalidChars,
	ErrFolderDescriptionTooLong,
	ErrCardQuestionEmpty,
	ErrCardAnswerEmpty,
	ErrGenerationTextRequired,
	ErrGenerationTextTooShort,
	ErrGenerationTextTooLong,
	ErrGenerationCountOutOfRange,
	ErrEmptyEmail,
	ErrInvalidEmail,
	ErrEmptyUsername,
	ErrUsernameTooShort,
	ErrUsernameTooLong,
	ErrUsernameInvalid,
	ErrEmptyPassword,
	ErrPasswordTooShort,
	ErrPasswordTooLong,
}

// IsValidationError reports whether err is, or wraps, one of the domain
// validation sentinels. The API layer uses this to map input failures to
// 400 responses carrying the sentinel's message.
func IsValidationError(err error) bool {
	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// ValidationError describes a validation failure for a named field while
// wrapping one of the domain sentinels so callers can classify it with
// errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
