package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/cardfolio/cardfolio-api/internal/domain"
)

// FolderStore defines the interface for folder data persistence.
type FolderStore interface {
	// Create saves a new folder to the store.
	// It handles domain validation internally.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain Folder if data is invalid.
	Create(ctx context.Context, folder *domain.Folder) error

	// GetByID retrieves a folder by its unique ID, including its cards
	// ordered by creation time.
	// Returns ErrFolderNotFound if the folder does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error)

	// ListByUser retrieves all folders owned by the given user, ordered
	// by creation time. Cards are not loaded; each folder's Cards
	// slice is empty. Returns an empty slice if the user has no folders.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error)

	// Update saves changes to an existing folder's name and description.
	// Returns ErrFolderNotFound if the folder does not exist.
	// Returns validation errors if the folder data is invalid.
	Update(ctx context.Context, folder *domain.Folder) error

	// Delete removes a folder and all of its cards from the store.
	// Returns ErrFolderNotFound if the folder does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
