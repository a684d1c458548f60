package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Generation request constraints. The source text is the passage the user
// pastes in; the count is the number of cards they ask for. The upstream
// model may return more or fewer cards than requested, so consumers must not
// assume the result length equals the count.
const (
	GenerationTextMinLength = 10
	GenerationTextMaxLength = 50000
	GenerationCountMin      = 1
	GenerationCountMax      = 20
)

// Generation request validation errors
var (
	// ErrGenerationTextRequired is returned when the source text is empty
	// after trimming.
	ErrGenerationTextRequired = errors.New("text is required for card generation")

	// ErrGenerationTextTooShort is returned when the source text is shorter
	// than GenerationTextMinLength after trimming.
	ErrGenerationTextTooShort = errors.New("text must be at least 10 characters long")

	// ErrGenerationTextTooLong is returned when the source text exceeds
	// GenerationTextMaxLength after trimming.
	ErrGenerationTextTooLong = errors.New("text is too long (maximum 50,000 characters)")

	// ErrGenerationCountOutOfRange is returned when the requested card count
	// is outside [GenerationCountMin, GenerationCountMax].
	ErrGenerationCountOutOfRange = errors.New("card count must be between 1 and 20")
)

// ValidateGenerationRequest checks the source text and requested card count
// for an AI generation request. Returns nil if both are valid, or the
// sentinel error for the first constraint that fails.
func ValidateGenerationRequest(text string, count int) error {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return ErrGenerationTextRequired
	}

	length := utf8.RuneCountInString(trimmed)
	if length < GenerationTextMinLength {
		return ErrGenerationTextTooShort
	}

	if length > GenerationTextMaxLength {
		return ErrGenerationTextTooLong
	}

	if count < GenerationCountMin || count > GenerationCountMax {
		return ErrGenerationCountOutOfRange
	}

	return nil
}
