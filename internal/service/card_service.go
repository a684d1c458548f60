package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cardfolio/cardfolio-api/internal/domain"
	"github.com/cardfolio/cardfolio-api/internal/generation"
	"github.com/cardfolio/cardfolio-api/internal/store"
)

// CardService coordinates card persistence. Batch saves are strictly
// sequential: one store call at a time, each awaited before the next,
// aborting on the first failure without rolling back earlier cards.
type CardService struct {
	folderStore store.FolderStore
	cardStore   store.CardStore
	logger      *slog.Logger
}

// NewCardService creates a new CardService.
// It returns an error if any of the required dependencies are nil.
func NewCardService(
	folderStore store.FolderStore,
	cardStore store.CardStore,
	logger *slog.Logger,
) (*CardService, error) {
	if folderStore == nil {
		return nil, NewServiceError("create_service", "folderStore cannot be nil", nil)
	}
	if cardStore == nil {
		return nil, NewServiceError("create_service", "cardStore cannot be nil", nil)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CardService{
		folderStore: folderStore,
		cardStore:   cardStore,
		logger:      logger.With("component", "card_service"),
	}, nil
}

// SaveCards persists the candidate cards into the folder, in slice order,
// one at a time. Each card is validated immediately before its own store
// call; a validation failure aborts the remaining cards and reports the
// 1-based position via CardBatchError. A store failure aborts immediately
// with the underlying error. Cards persisted before the failure stay
// persisted. An empty candidate list is a no-op success.
//
// Returns the persisted cards on full success.
func (s *CardService) SaveCards(
	ctx context.Context,
	userID uuid.UUID,
	folderID uuid.UUID,
	candidates []generation.CandidateCard,
) ([]*domain.Card, error) {
	if _, err := s.ownedFolder(ctx, userID, folderID); err != nil {
		return nil, err
	}

	saved := make([]*domain.Card, 0, len(candidates))
	for i, candidate := range candidates {
		position := i + 1

		// Validation happens here, immediately before this card's store
		// call, not up front for the whole batch.
		card, err := domain.NewCard(folderID, candidate.Question, candidate.Answer)
		if err != nil {
			s.logger.Warn("card batch aborted on invalid card",
				"folder_id", folderID,
				"position", position,
				"saved", len(saved),
				"error", err)
			return nil, &CardBatchError{Position: position, Err: err}
		}

		if err := s.cardStore.Create(ctx, card); err != nil {
			s.logger.Error("card batch aborted on store failure",
				"folder_id", folderID,
				"position", position,
				"saved", len(saved),
				"error", err)
			return nil, NewServiceError(
				"save_cards",
				fmt.Sprintf("failed to persist card %d of %d", position, len(candidates)),
				err,
			)
		}

		saved = append(saved, card)
	}

	s.logger.Info("card batch persisted",
		"folder_id", folderID,
		"count", len(saved))
	return saved, nil
}

// CreateCard persists a single manually-authored card. It funnels through
// the same validation and store call as batch persistence.
func (s *CardService) CreateCard(
	ctx context.Context,
	userID uuid.UUID,
	folderID uuid.UUID,
	question, answer string,
) (*domain.Card, error) {
	if _, err := s.ownedFolder(ctx, userID, folderID); err != nil {
		return nil, err
	}

	card, err := domain.NewCard(folderID, question, answer)
	if err != nil {
		return nil, err
	}

	if err := s.cardStore.Create(ctx, card); err != nil {
		s.logger.Error("failed to create card",
			"folder_id", folderID,
			"error", err)
		return nil, NewServiceError("create_card", "failed to persist card", err)
	}

	return card, nil
}

// DeleteCard removes a card after checking, through its folder, that it
// belongs to the user. Returns ErrCardNotFound for missing cards and for
// cards in folders owned by someone else.
func (s *CardService) DeleteCard(
	ctx context.Context,
	userID uuid.UUID,
	cardID uuid.UUID,
) error {
	card, err := s.cardStore.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return ErrCardNotFound
		}
		return NewServiceError("delete_card", "failed to look up card", err)
	}

	if _, err := s.ownedFolder(ctx, userID, card.FolderID); err != nil {
		if errors.Is(err, ErrFolderNotFound) {
			return ErrCardNotFound
		}
		return err
	}

	if err := s.cardStore.Delete(ctx, cardID); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return ErrCardNotFound
		}
		s.logger.Error("failed to delete card",
			"card_id", cardID,
			"error", err)
		return NewServiceError("delete_card", "failed to delete card", err)
	}

	return nil
}

// ownedFolder loads the folder and verifies ownership. Missing folders and
// folders owned by another user both come back as ErrFolderNotFound.
func (s *CardService) ownedFolder(
	ctx context.Context,
	userID uuid.UUID,
	folderID uuid.UUID,
) (*domain.Folder, error) {
	folder, err := s.folderStore.GetByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, store.ErrFolderNotFound) {
			return nil, ErrFolderNotFound
		}
		return nil, NewServiceError("get_folder", "failed to look up folder", err)
	}

	if folder.UserID != userID {
		return nil, ErrFolderNotFound
	}

	return folder, nil
}
