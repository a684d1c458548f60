package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cardfolio/cardfolio-api/internal/domain"
	"github.com/cardfolio/cardfolio-api/internal/store"
)

// FolderService provides folder CRUD on top of the folder and card stores.
// All operations are scoped to the requesting user; folders owned by other
// users are indistinguishable from missing ones.
type FolderService struct {
	folderStore store.FolderStore
	cardStore   store.CardStore
	logger      *slog.Logger
}

// NewFolderService creates a new FolderService.
// It returns an error if any of the required dependencies are nil.
func NewFolderService(
	folderStore store.FolderStore,
	cardStore store.CardStore,
	logger *slog.Logger,
) (*FolderService, error) {
	if folderStore == nil {
		return nil, NewServiceError("create_service", "folderStore cannot be nil", nil)
	}
	if cardStore == nil {
		return nil, NewServiceError("create_service", "cardStore cannot be nil", nil)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &FolderService{
		folderStore: folderStore,
		cardStore:   cardStore,
		logger:      logger.With("component", "folder_service"),
	}, nil
}

// CreateFolder validates the name and description and persists a new empty
// folder for the user.
func (s *FolderService) CreateFolder(
	ctx context.Context,
	userID uuid.UUID,
	name, description string,
) (*domain.Folder, error) {
	folder, err := domain.NewFolder(userID, name, description)
	if err != nil {
		return nil, err
	}

	if err := s.folderStore.Create(ctx, folder); err != nil {
		s.logger.Error("failed to create folder",
			"user_id", userID,
			"error", err)
		return nil, NewServiceError("create_folder", "failed to persist folder", err)
	}

	s.logger.Info("folder created",
		"folder_id", folder.ID,
		"user_id", userID)
	return folder, nil
}

// ListFolders returns all of the user's folders with their cards nested,
// folders and cards both in creation order.
func (s *FolderService) ListFolders(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Folder, error) {
	folders, err := s.folderStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list folders",
			"user_id", userID,
			"error", err)
		return nil, NewServiceError("list_folders", "failed to list folders", err)
	}

	for _, folder := range folders {
		cards, err := s.cardStore.ListByFolder(ctx, folder.ID)
		if err != nil {
			s.logger.Error("failed to load folder cards",
				"folder_id", folder.ID,
				"error", err)
			return nil, NewServiceError("list_folders", "failed to load folder cards", err)
		}
		folder.Cards = cards
	}

	return folders, nil
}

// GetFolder returns the folder with its cards. Returns ErrFolderNotFound
// for missing folders and folders owned by another user.
func (s *FolderService) GetFolder(
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

// UpdateFolder renames the folder and updates its description, applying
// the same validation rules as creation.
func (s *FolderService) UpdateFolder(
	ctx context.Context,
	userID uuid.UUID,
	folderID uuid.UUID,
	name, description string,
) (*domain.Folder, error) {
	folder, err := s.GetFolder(ctx, userID, folderID)
	if err != nil {
		return nil, err
	}

	if err := folder.Rename(name, description); err != nil {
		return nil, err
	}

	if err := s.folderStore.Update(ctx, folder); err != nil {
		if errors.Is(err, store.ErrFolderNotFound) {
			return nil, ErrFolderNotFound
		}
		s.logger.Error("failed to update folder",
			"folder_id", folderID,
			"error", err)
		return nil, NewServiceError("update_folder", "failed to persist folder", err)
	}

	return folder, nil
}

// DeleteFolder removes the user's folder; its cards are removed with it.
func (s *FolderService) DeleteFolder(
	ctx context.Context,
	userID uuid.UUID,
	folderID uuid.UUID,
) error {
	if _, err := s.GetFolder(ctx, userID, folderID); err != nil {
		return err
	}

	if err := s.folderStore.Delete(ctx, folderID); err != nil {
		if errors.Is(err, store.ErrFolderNotFound) {
			return ErrFolderNotFound
		}
		s.logger.Error("failed to delete folder",
			"folder_id", folderID,
			"error", err)
		return NewServiceError("delete_folder", "failed to delete folder", err)
	}

	s.logger.Info("folder deleted",
		"folder_id", folderID,
		"user_id", userID)
	return nil
}
