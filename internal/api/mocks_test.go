package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cardfolio/cardfolio-api/internal/domain"
	"github.com/cardfolio/cardfolio-api/internal/generation"
	"github.com/cardfolio/cardfolio-api/internal/store"
)

// memStore is an in-memory implementation of the user, folder, and card
// stores for handler tests.
type memStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*domain.User
	folders map[uuid.UUID]*domain.Folder
	cards   map[uuid.UUID]*domain.Card
	seq     int
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[uuid.UUID]*domain.User),
		folders: make(map[uuid.UUID]*domain.Folder),
		cards:   make(map[uuid.UUID]*domain.Card),
	}
}

func (m *memStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}
	if user.Password != "" {
		user.HashedPassword = "hashed:" + user.Password
		user.Password = ""
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *memStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (m *memStore) Update(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

// folderStore adapts memStore to store.FolderStore.
type folderStore struct{ *memStore }

func (m folderStore) Create(ctx context.Context, folder *domain.Folder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	copied := *folder
	copied.CreatedAt = time.Unix(int64(m.seq), 0)
	m.folders[folder.ID] = &copied
	return nil
}

func (m folderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	folder, ok := m.folders[id]
	if !ok {
		return nil, store.ErrFolderNotFound
	}
	copied := *folder
	copied.Cards = m.cardsOf(id)
	return &copied, nil
}

func (m folderStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	folders := []*domain.Folder{}
	for _, folder := range m.folders {
		if folder.UserID == userID {
			copied := *folder
			copied.Cards = []*domain.Card{}
			folders = append(folders, &copied)
		}
	}
	sort.Slice(folders, func(i, j int) bool {
		return folders[i].CreatedAt.Before(folders[j].CreatedAt)
	})
	return folders, nil
}

func (m folderStore) Update(ctx context.Context, folder *domain.Folder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.folders[folder.ID]; !ok {
		return store.ErrFolderNotFound
	}
	copied := *folder
	m.folders[folder.ID] = &copied
	return nil
}

func (m folderStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.folders[id]; !ok {
		return store.ErrFolderNotFound
	}
	delete(m.folders, id)
	for cardID, card := range m.cards {
		if card.FolderID == id {
			delete(m.cards, cardID)
		}
	}
	return nil
}

// cardStore adapts memStore to store.CardStore.
type cardStore struct{ *memStore }

func (m cardStore) Create(ctx context.Context, card *domain.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.folders[card.FolderID]; !ok {
		return store.ErrInvalidEntity
	}
	m.seq++
	copied := *card
	copied.CreatedAt = time.Unix(int64(m.seq), 0)
	m.cards[card.ID] = &copied
	return nil
}

func (m cardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	card, ok := m.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	copied := *card
	return &copied, nil
}

func (m cardStore) ListByFolder(ctx context.Context, folderID uuid.UUID) ([]*domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cardsOf(folderID), nil
}

func (m cardStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[id]; !ok {
		return store.ErrCardNotFound
	}
	delete(m.cards, id)
	return nil
}

// cardsOf returns copies of a folder's cards in creation order.
// Caller must hold the lock.
func (m *memStore) cardsOf(folderID uuid.UUID) []*domain.Card {
	cards := []*domain.Card{}
	for _, card := range m.cards {
		if card.FolderID == folderID {
			copied := *card
			cards = append(cards, &copied)
		}
	}
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})
	return cards
}

// stubGenerator implements generation.CardGenerator for handler tests.
type stubGenerator struct {
	cards []generation.CandidateCard
	err   error
}

func (g *stubGenerator) GenerateCards(
	ctx context.Context,
	text string,
	count int,
) ([]generation.CandidateCard, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.cards, nil
}

// plainVerifier compares against the memStore's "hashed:" prefix scheme.
type plainVerifier struct{}

func (plainVerifier) Compare(hashedPassword, password string) error {
	if hashedPassword == "hashed:"+password {
		return nil
	}
	return domain.ErrUnauthorized
}
