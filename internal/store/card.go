package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/cardfolio/cardfolio-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card to the store.
	// It handles domain validation internally.
	// Returns ErrInvalidEntity if the owning folder does not exist.
	// Returns validation errors from the domain Card if data is invalid.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// ListByFolder retrieves all cards in the given folder, ordered by
	// creation time. Returns an empty slice if the folder has no cards.
	ListByFolder(ctx context.Context, folderID uuid.UUID) ([]*domain.Card, error)

	// Delete removes a card from the store by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
