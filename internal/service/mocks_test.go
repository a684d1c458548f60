package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cardfolio/cardfolio-api/internal/domain"
	"github.com/cardfolio/cardfolio-api/internal/generation"
	"github.com/cardfolio/cardfolio-api/internal/store"
)

// mockFolderStore implements store.FolderStore with overridable behavior.
type mockFolderStore struct {
	createFn     func(ctx context.Context, folder *domain.Folder) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error)
	updateFn     func(ctx context.Context, folder *domain.Folder) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockFolderStore) Create(ctx context.Context, folder *domain.Folder) error {
	if m.createFn != nil {
		return m.createFn(ctx, folder)
	}
	return nil
}

func (m *mockFolderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrFolderNotFound
}

func (m *mockFolderStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Folder, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []*domain.Folder{}, nil
}

func (m *mockFolderStore) Update(ctx context.Context, folder *domain.Folder) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, folder)
	}
	return nil
}

func (m *mockFolderStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockCardStore implements store.CardStore and records created cards.
type mockCardStore struct {
	created []*domain.Card

	createFn       func(ctx context.Context, card *domain.Card) error
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	listByFolderFn func(ctx context.Context, folderID uuid.UUID) ([]*domain.Card, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCardStore) Create(ctx context.Context, card *domain.Card) error {
	if m.createFn != nil {
		if err := m.createFn(ctx, card); err != nil {
			return err
		}
	}
	m.created = append(m.created, card)
	return nil
}

func (m *mockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrCardNotFound
}

func (m *mockCardStore) ListByFolder(
	ctx context.Context,
	folderID uuid.UUID,
) ([]*domain.Card, error) {
	if m.listByFolderFn != nil {
		return m.listByFolderFn(ctx, folderID)
	}
	return []*domain.Card{}, nil
}

func (m *mockCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockGenerator implements generation.CardGenerator.
type mockGenerator struct {
	generateFn func(ctx context.Context, text string, count int) ([]generation.CandidateCard, error)
}

func (m *mockGenerator) GenerateCards(
	ctx context.Context,
	text string,
	count int,
) ([]generation.CandidateCard, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, text, count)
	}
	return nil, nil
}

// ownedFolderStore returns a mockFolderStore that serves the given folder.
func ownedFolderStore(folder *domain.Folder) *mockFolderStore {
	return &mockFolderStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
			if id == folder.ID {
				copied := *folder
				return &copied, nil
			}
			return nil, store.ErrFolderNotFound
		},
	}
}

// testFolder builds a valid persisted folder for tests.
func testFolder(userID uuid.UUID) *domain.Folder {
	return &domain.Folder{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Biology",
		Cards:  []*domain.Card{},
	}
}
