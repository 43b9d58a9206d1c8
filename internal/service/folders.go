package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/meleongg/flashcard-backend/internal/models"
	"go.uber.org/zap"
)

type FolderRI interface {
	CreateFolder(ctx context.Context, folder models.Folder) error
	FolderByID(ctx context.Context, userID, folderID string) (models.Folder, error)
	Folders(ctx context.Context, userID string) ([]models.Folder, error)
	RenameFolder(ctx context.Context, userID, folderID, name string) error
	DeleteFolder(ctx context.Context, userID, folderID string) error
	FlashcardsByFolder(ctx context.Context, userID, folderID string) ([]models.Flashcard, error)
}

type FolderS struct {
	repo  FolderRI
	clock Clock
	log   *zap.Logger
}

func NewFolderService(repo FolderRI, clock Clock, log *zap.Logger) *FolderS {
	return &FolderS{
		repo:  repo,
		clock: clock,
		log:   log,
	}
}

func (f *FolderS) CreateFolder(ctx context.Context, userID, name string) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, fmt.Errorf("folder name must not be empty")
	}

	folder := models.Folder{
		ID:        uuid.NewString(),
		Name:      name,
		UserID:    userID,
		CreatedAt: f.clock.Now(),
	}

	if err := f.repo.CreateFolder(ctx, folder); err != nil {
		return models.Folder{}, err
	}

	f.log.Info("folder created", zap.String("folder_id", folder.ID), zap.String("name", name))

	return folder, nil
}

func (f *FolderS) Folder(ctx context.Context, userID, folderID string) (models.Folder, error) {
	return f.repo.FolderByID(ctx, userID, folderID)
}

func (f *FolderS) Folders(ctx context.Context, userID string) ([]models.Folder, error) {
	return f.repo.Folders(ctx, userID)
}

func (f *FolderS) RenameFolder(ctx context.Context, userID, folderID, name string) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, fmt.Errorf("folder name must not be empty")
	}

	if err := f.repo.RenameFolder(ctx, userID, folderID, name); err != nil {
		return models.Folder{}, err
	}

	return f.repo.FolderByID(ctx, userID, folderID)
}

func (f *FolderS) DeleteFolder(ctx context.Context, userID, folderID string) error {
	return f.repo.DeleteFolder(ctx, userID, folderID)
}

func (f *FolderS) FolderFlashcards(ctx context.Context, userID, folderID string) ([]models.Flashcard, error) {
	if _, err := f.repo.FolderByID(ctx, userID, folderID); err != nil {
		return nil, err
	}

	return f.repo.FlashcardsByFolder(ctx, userID, folderID)
}
