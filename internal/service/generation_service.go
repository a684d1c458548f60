package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/cardfolio/cardfolio-api/internal/domain"
	"github.com/cardfolio/cardfolio-api/internal/generation"
)

// generationKey identifies one in-flight generation: one user filling one
// folder. The same user may generate into different folders concurrently.
type generationKey struct {
	userID   uuid.UUID
	folderID uuid.UUID
}

// GenerationService bridges the card generator to the persistence layer.
// It validates requests, calls the upstream model once per request, and
// hands results to the CardService for sequential persistence.
type GenerationService struct {
	generator generation.CardGenerator
	cards     *CardService
	folders   *FolderService
	logger    *slog.Logger

	mu       sync.Mutex
	inFlight map[generationKey]struct{}
}

// NewGenerationService creates a new GenerationService.
// It returns an error if any of the required dependencies are nil.
func NewGenerationService(
	generator generation.CardGenerator,
	cards *CardService,
	folders *FolderService,
	logger *slog.Logger,
) (*GenerationService, error) {
	if generator == nil {
		return nil, NewServiceError("create_service", "generator cannot be nil", nil)
	}
	if cards == nil {
		return nil, NewServiceError("create_service", "cards cannot be nil", nil)
	}
	if folders == nil {
		return nil, NewServiceError("create_service", "folders cannot be nil", nil)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &GenerationService{
		generator: generator,
		cards:     cards,
		folders:   folders,
		logger:    logger.With("component", "generation_service"),
		inFlight:  make(map[generationKey]struct{}),
	}, nil
}

// GenerateCards validates the request and returns candidate cards from the
// model without persisting anything. Exactly one upstream call is made.
func (s *GenerationService) GenerateCards(
	ctx context.Context,
	text string,
	count int,
) ([]generation.CandidateCard, error) {
	if err := domain.ValidateGenerationRequest(text, count); err != nil {
		return nil, err
	}

	return s.generator.GenerateCards(ctx, text, count)
}

// GenerateCardsIntoFolder generates cards from the text and persists them
// into the folder, then re-reads the folder once so the caller sees the
// final state. Only one generation per user+folder may be in flight;
// concurrent attempts fail with ErrGenerationInProgress. The guard is
// released on every exit path.
//
// An empty generation result is reported as ErrNoCardsGenerated and nothing
// is persisted.
func (s *GenerationService) GenerateCardsIntoFolder(
	ctx context.Context,
	userID uuid.UUID,
	folderID uuid.UUID,
	text string,
	count int,
) ([]*domain.Card, *domain.Folder, error) {
	if err := domain.ValidateGenerationRequest(text, count); err != nil {
		return nil, nil, err
	}

	key := generationKey{userID: userID, folderID: folderID}
	if !s.acquire(key) {
		s.logger.Warn("rejected concurrent generation",
			"user_id", userID,
			"folder_id", folderID)
		return nil, nil, ErrGenerationInProgress
	}
	defer s.release(key)

	// Check the folder before spending an upstream call on it.
	if _, err := s.folders.GetFolder(ctx, userID, folderID); err != nil {
		return nil, nil, err
	}

	candidates, err := s.generator.GenerateCards(ctx, text, count)
	if err != nil {
		return nil, nil, err
	}

	if len(candidates) == 0 {
		return nil, nil, ErrNoCardsGenerated
	}

	saved, err := s.cards.SaveCards(ctx, userID, folderID, candidates)
	if err != nil {
		return nil, nil, err
	}

	// Single refresh after the whole persistence sequence.
	folder, err := s.folders.GetFolder(ctx, userID, folderID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("generated cards persisted",
		"user_id", userID,
		"folder_id", folderID,
		"requested", count,
		"persisted", len(saved))
	return saved, folder, nil
}

// acquire marks the key as in flight. Returns false if it already is.
func (s *GenerationService) acquire(key generationKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

// release clears the in-flight mark for the key.
func (s *GenerationService) release(key generationKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}
