package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cardfolio/cardfolio-api/internal/domain"
	"github.com/cardfolio/cardfolio-api/internal/platform/logger"
	"github.com/cardfolio/cardfolio-api/internal/store"
)

// PostgresFolderStore implements the store.FolderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFolderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFolderStore creates a new PostgreSQL implementation of the FolderStore interface.
// It accepts a database connection or transaction that should be initialized and managed
// by the caller. If logger is nil, a default logger will be used.
func NewPostgresFolderStore(db store.DBTX, logger *slog.Logger) *PostgresFolderStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFolderStore{
		db:     db,
		logger: logger.With(slog.String("component", "folder_store")),
	}
}

// Ensure PostgresFolderStore implements store.FolderStore interface
var _ store.FolderStore = (*PostgresFolderStore)(nil)

// Create implements store.FolderStore.Create
// Returns store.ErrInvalidEntity if the owning user does not exist.
// Returns validation errors from the domain Folder if data is invalid.
func (s *PostgresFolderStore) Create(ctx context.Context, folder *domain.Folder) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := folder.Validate(); err != nil {
		log.Warn("folder validation failed during create",
			slog.String("error", err.Error()),
			slog.String("folder_id", folder.ID.String()))
		return err
	}

	query := `
		INSERT INTO folders (id, user_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		folder.ID,
		folder.UserID,
		folder.Name,
		folder.Description,
		folder.CreatedAt,
		folder.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during folder creation",
				slog.String("error", err.Error()),
				slog.String("folder_id", folder.ID.String()),
				slog.String("user_id", folder.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, folder.UserID)
		}

		log.Error("failed to create folder",
			slog.String("error", err.Error()),
			slog.String("folder_id", folder.ID.String()),
			slog.String("user_id", folder.UserID.String()))
		return MapError(err)
	}

	log.Info("folder created successfully",
		slog.String("folder_id", folder.ID.String()),
		slog.String("user_id", folder.UserID.String()))
	return nil
}

// GetByID implements store.FolderStore.GetByID
// The returned folder includes its cards ordered by creation time.
// Returns store.ErrFolderNotFound if the folder does not exist.
func (s *PostgresFolderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, description, created_at, updated_at
		FROM folders
		WHERE id = $1
	`

	var folder domain.Folder
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&folder.ID,
		&folder.UserID,
		&folder.Name,
		&folder.Description,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("folder not found", slog.String("folder_id", id.String()))
			return nil, store.ErrFolderNotFound
		}
		log.Error("failed to get folder by ID",
			slog.String("error", err.Error()),
			slog.String("folder_id", id.String()))
		return nil, MapError(err)
	}

	cards, err := s.loadCards(ctx, id)
	if err != nil {
		log.Error("failed to load folder cards",
			slog.String("error", err.Error()),
			slog.String("folder_id", id.String()))
		return nil, MapError(err)
	}
	folder.Cards = cards

	log.Debug("folder retrieved successfully",
		slog.String("folder_id", id.String()),
		slog.Int("card_count", len(cards)))
	return &folder, nil
}

// ListByUser implements store.FolderStore.ListByUser
// Returns an empty slice if the user has no folders.
func (s *PostgresFolderStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Folder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, description, created_at, updated_at
		FROM folders
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query folders by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var folders []*domain.Folder
	for rows.Next() {
		var folder domain.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.UserID,
			&folder.Name,
			&folder.Description,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan folder row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}

		folder.Cards = []*domain.Card{}
		folders = append(folders, &folder)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if folders == nil {
		folders = []*domain.Folder{}
	}

	log.Debug("found folders by user",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(folders)))
	return folders, nil
}

// Update implements store.FolderStore.Update
// Returns store.ErrFolderNotFound if the folder does not exist.
func (s *PostgresFolderStore) Update(ctx context.Context, folder *domain.Folder) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := folder.Validate(); err != nil {
		log.Warn("folder validation failed during update",
			slog.String("error", err.Error()),
			slog.String("folder_id", folder.ID.String()))
		return err
	}

	folder.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE folders
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		folder.Name,
		folder.Description,
		folder.UpdatedAt,
		folder.ID,
	)

	if err != nil {
		log.Error("failed to update folder",
			slog.String("error", err.Error()),
			slog.String("folder_id", folder.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "folder"); err != nil {
		log.Debug("folder not found for update",
			slog.String("folder_id", folder.ID.String()))
		return store.ErrFolderNotFound
	}

	log.Info("folder updated successfully",
		slog.String("folder_id", folder.ID.String()))
	return nil
}

// Delete implements store.FolderStore.Delete
// Cards in the folder are removed by cascade.
// Returns store.ErrFolderNotFound if the folder does not exist.
func (s *PostgresFolderStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM folders WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete folder",
			slog.String("error", err.Error()),
			slog.String("folder_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "folder"); err != nil {
		log.Debug("folder not found for delete",
			slog.String("folder_id", id.String()))
		return store.ErrFolderNotFound
	}

	log.Info("folder deleted successfully",
		slog.String("folder_id", id.String()))
	return nil
}

// loadCards reads all cards belonging to the folder in creation order.
func (s *PostgresFolderStore) loadCards(
	ctx context.Context,
	folderID uuid.UUID,
) ([]*domain.Card, error) {
	query := `
		SELECT id, folder_id, question, answer, created_at
		FROM cards
		WHERE folder_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, folderID)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	cards := []*domain.Card{}
	for rows.Next() {
		var card domain.Card
		err := rows.Scan(
			&card.ID,
			&card.FolderID,
			&card.Question,
			&card.Answer,
			&card.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}

	return cards, rows.Err()
}
