package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Folder name and description constraints. These apply identically at every
// entry point that creates or renames a folder; there is no bypass path.
const (
	FolderNameMinLength        = 2
	FolderNameMaxLength        = 50
	FolderDescriptionMaxLength = 200

	// folderNameForbiddenChars are rejected in folder names.
	folderNameForbiddenChars = `<>:"/\|?*`
)

// Folder-specific validation errors
var (
	// ErrFolderIDEmpty is returned when a folder ID is empty or nil.
	ErrFolderIDEmpty = errors.New("folder ID cannot be empty")

	// ErrFolderUserIDEmpty is returned when a folder's owner ID is empty or nil.
	ErrFolderUserIDEmpty = errors.New("folder user ID cannot be empty")

	// ErrFolderNameRequired is returned when a folder name is empty after trimming.
	ErrFolderNameRequired = errors.New("folder name is required")

	// ErrFolderNameTooShort is returned when a folder name is shorter than
	// FolderNameMinLength after trimming.
	ErrFolderNameTooShort = errors.New("folder name must be at least 2 characters long")

	// ErrFolderNameTooLong is returned when a folder name is longer than
	// FolderNameMaxLength after trimming.
	ErrFolderNameTooLong = errors.New("folder name must be 50 characters or less")

	// ErrFolderNameInvalidChars is returned when a folder name contains any of
	// the forbidden characters.
	ErrFolderNameInvalidChars = errors.New("folder name contains invalid characters")

	// ErrFolderDescriptionTooLong is returned when a folder description exceeds
	// FolderDescriptionMaxLength after trimming.
	ErrFolderDescriptionTooLong = errors.New("description must be 200 characters or less")
)

// Folder represents a named collection of flashcards owned by one user.
// Cards are ordered by creation time, matching the order the user added them.
type Folder struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Cards       []*Card   `json:"cards"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewFolder creates a new Folder with the given owner, name, and optional
// description. Name and description are trimmed before storage. It generates
// a new UUID for the folder ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewFolder(userID uuid.UUID, name, description string) (*Folder, error) {
	folder := &Folder{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Cards:       []*Card{},
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := folder.Validate(); err != nil {
		return nil, err
	}

	return folder, nil
}

// Rename updates the folder's name and description, applying the same
// trimming and validation rules as creation, and bumps UpdatedAt.
func (f *Folder) Rename(name, description string) error {
	trimmedName := strings.TrimSpace(name)
	trimmedDescription := strings.TrimSpace(description)

	if err := ValidateFolderName(trimmedName); err != nil {
		return err
	}
	if err := ValidateFolderDescription(trimmedDescription); err != nil {
		return err
	}

	f.Name = trimmedName
	f.Description = trimmedDescription
	f.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate checks if the Folder has valid data.
// Returns an error if any field fails validation.
func (f *Folder) Validate() error {
	if f.ID == uuid.Nil {
		return ErrFolderIDEmpty
	}

	if f.UserID == uuid.Nil {
		return ErrFolderUserIDEmpty
	}

	if err := ValidateFolderName(f.Name); err != nil {
		return err
	}

	return ValidateFolderDescription(f.Description)
}

// ValidateFolderName checks a folder name against the naming rules.
// The name is trimmed before checking. Returns nil if the name is valid, or
// one of ErrFolderNameRequired, ErrFolderNameTooShort, ErrFolderNameTooLong,
// ErrFolderNameInvalidChars.
//
// A name containing a forbidden character is rejected with
// ErrFolderNameInvalidChars regardless of its length.
func ValidateFolderName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return ErrFolderNameRequired
	}

	if strings.ContainsAny(trimmed, folderNameForbiddenChars) {
		return ErrFolderNameInvalidChars
	}

	length := utf8.RuneCountInString(trimmed)
	if length < FolderNameMinLength {
		return ErrFolderNameTooShort
	}

	if length > FolderNameMaxLength {
		return ErrFolderNameTooLong
	}

	return nil
}

// ValidateFolderDescription checks an optional folder description.
// An empty description is always valid. Returns ErrFolderDescriptionTooLong
// if the trimmed description exceeds FolderDescriptionMaxLength.
func ValidateFolderDescription(description string) error {
	trimmed := strings.TrimSpace(description)

	if utf8.RuneCountInString(trimmed) > FolderDescriptionMaxLength {
		return ErrFolderDescriptionTooLong
	}

	return nil
}
