package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardFolderIDEmpty is returned when a card's folder ID is empty or nil.
	ErrCardFolderIDEmpty = errors.New("card folder ID cannot be empty")

	// ErrCardQuestionEmpty is returned when a card's question is empty after trimming.
	ErrCardQuestionEmpty = errors.New("question is empty")

	// ErrCardAnswerEmpty is returned when a card's answer is empty after trimming.
	ErrCardAnswerEmpty = errors.New("answer is empty")
)

// Card represents a single question/answer flashcard. A card always belongs
// to exactly one folder. Cards are immutable once created; there is no edit
// operation, only deletion.
type Card struct {
	ID        uuid.UUID `json:"id"`
	FolderID  uuid.UUID `json:"folder_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCard creates a new Card in the given folder. Question and answer are
// trimmed before storage. It generates a new UUID for the card ID and sets
// the creation timestamp. Returns an error if validation fails.
func NewCard(folderID uuid.UUID, question, answer string) (*Card, error) {
	card := &Card{
		ID:        uuid.New(),
		FolderID:  folderID,
		Question:  strings.TrimSpace(question),
		Answer:    strings.TrimSpace(answer),
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.FolderID == uuid.Nil {
		return ErrCardFolderIDEmpty
	}

	return ValidateCardContent(c.Question, c.Answer)
}

// ValidateCardContent checks that both sides of a card are non-empty after
// trimming. This is enforced identically for manually entered and
// AI-generated cards. Returns ErrCardQuestionEmpty or ErrCardAnswerEmpty.
func ValidateCardContent(question, answer string) error {
	if strings.TrimSpace(question) == "" {
		return ErrCardQuestionEmpty
	}

	if strings.TrimSpace(answer) == "" {
		return ErrCardAnswerEmpty
	}

	return nil
}
