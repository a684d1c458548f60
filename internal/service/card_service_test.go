package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardfolio/cardfolio-api/internal/domain"
	"github.com/cardfolio/cardfolio-api/internal/generation"
	"github.com/cardfolio/cardfolio-api/internal/store"
)

func TestNewCardServiceRequiresDependencies(t *testing.T) {
	t.Parallel()

	_, err := NewCardService(nil, &mockCardStore{}, nil)
	assert.Error(t, err)

	_, err = NewCardService(&mockFolderStore{}, nil, nil)
	assert.Error(t, err)

	svc, err := NewCardService(&mockFolderStore{}, &mockCardStore{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestSaveCardsPersistsSequentially(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	folder := testFolder(userID)
	cards := &mockCardStore{}

	svc, err := NewCardService(ownedFolderStore(folder), cards, nil)
	require.NoError(t, err)

	candidates := []generation.CandidateCard{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
	}

	saved, err := svc.SaveCards(context.Background(), userID, folder.ID, candidates)
	require.NoError(t, err)
	require.Len(t, saved, 3)

	// Insertion order matches slice order.
	for i, card := range cards.created {
		assert.Equal(t, candidates[i].Question, card.Question)
		assert.Equal(t, candidates[i].Answer, card.Answer)
		assert.Equal(t, folder.ID, card.FolderID)
	}
}

func TestSaveCardsAbortsOnFirstInvalidCard(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	folder := testFolder(userID)
	cards := &mockCardStore{}

	svc, err := NewCardService(ownedFolderStore(folder), cards, nil)
	require.NoError(t, err)

	candidates := []generation.CandidateCard{
		{Question: "Q1", Answer: "A1"},
		{Question: "   ", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
	}

	_, err = svc.SaveCards(context.Background(), userID, folder.ID, candidates)
	require.Error(t, err)

	var batchErr *CardBatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 2, batchErr.Position)
	assert.Equal(t, "Card 2: Question is empty", err.Error())
	assert.ErrorIs(t, err, domain.ErrCardQuestionEmpty)

	// Card 1 persisted and stays persisted; card 3 never attempted.
	require.Len(t, cards.created, 1)
	assert.Equal(t, "Q1", cards.created[0].Question)
}

func TestSaveCardsAbortsOnStoreFailure(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	folder := testFolder(userID)
	storeErr := errors.New("connection lost")
	calls := 0
	cards := &mockCardStore{
		createFn: func(ctx context.Context, card *domain.Card) error {
			calls++
			if calls == 2 {
				return storeErr
			}
			return nil
		},
	}

	svc, err := NewCardService(ownedFolderStore(folder), cards, nil)
	require.NoError(t, err)

	candidates := []generation.CandidateCard{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
	}

	_, err = svc.SaveCards(context.Background(), userID, folder.ID, candidates)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)

	// Only the first card made it in; the third was never attempted.
	assert.Equal(t, 2, calls)
	require.Len(t, cards.created, 1)
}

func TestSaveCardsEmptyBatchIsNoOp(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	folder := testFolder(userID)
	cards := &mockCardStore{}

	svc, err := NewCardService(ownedFolderStore(folder), cards, nil)
	require.NoError(t, err)

	saved, err := svc.SaveCards(context.Background(), userID, folder.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, saved)
	assert.Empty(t, cards.created)
}

func TestSaveCardsRejectsForeignFolder(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	folder := testFolder(owner)

	svc, err := NewCardService(ownedFolderStore(folder), &mockCardStore{}, nil)
	require.NoError(t, err)

	otherUser := uuid.New()
	_, err = svc.SaveCards(context.Background(), otherUser, folder.ID,
		[]generation.CandidateCard{{Question: "Q", Answer: "A"}})
	assert.ErrorIs(t, err, ErrFolderNotFound)
}

func TestCreateCardTrimsAndPersists(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	folder := testFolder(userID)
	cards := &mockCardStore{}

	svc, err := NewCardService(ownedFolderStore(folder), cards, nil)
	require.NoError(t, err)

	card, err := svc.CreateCard(context.Background(), userID, folder.ID, "  What is DNA?  ", "Genetic material")
	require.NoError(t, err)
	assert.Equal(t, "What is DNA?", card.Question)
	require.Len(t, cards.created, 1)
}

func TestCreateCardRejectsEmptyAnswer(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	folder := testFolder(userID)

	svc, err := NewCardService(ownedFolderStore(folder), &mockCardStore{}, nil)
	require.NoError(t, err)

	_, err = svc.CreateCard(context.Background(), userID, folder.ID, "Q", "   ")
	assert.ErrorIs(t, err, domain.ErrCardAnswerEmpty)
}

func TestDeleteCardChecksOwnershipThroughFolder(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	folder := testFolder(owner)
	card := &domain.Card{ID: uuid.New(), FolderID: folder.ID, Question: "Q", Answer: "A"}

	deleted := false
	cards := &mockCardStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
			if id == card.ID {
				return card, nil
			}
			return nil, store.ErrCardNotFound
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	svc, err := NewCardService(ownedFolderStore(folder), cards, nil)
	require.NoError(t, err)

	// Another user's delete looks like a missing card.
	err = svc.DeleteCard(context.Background(), uuid.New(), card.ID)
	assert.ErrorIs(t, err, ErrCardNotFound)
	assert.False(t, deleted)

	// The owner can delete.
	err = svc.DeleteCard(context.Background(), owner, card.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteCardMissingCard(t *testing.T) {
	t.Parallel()

	svc, err := NewCardService(&mockFolderStore{}, &mockCardStore{}, nil)
	require.NoError(t, err)

	err = svc.DeleteCard(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrCardNotFound)
}
