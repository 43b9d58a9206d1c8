package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/meleongg/flashcard-backend/internal/models"
)

type FoldersR struct {
	db QueryI
}

func NewFoldersRepository(db QueryI) *FoldersR {
	return &FoldersR{db: db}
}

func (f *FoldersR) CreateFolder(ctx context.Context, folder models.Folder) error {
	var exists bool
	check := `SELECT EXISTS(SELECT 1 FROM folders WHERE user_id = $1 AND name = $2)`
	if err := f.db.GetContext(ctx, &exists, check, folder.UserID, folder.Name); err != nil {
		return fmt.Errorf("failed to check folder name: %w", err)
	}
	if exists {
		return models.ErrDuplicateName
	}

	query := `INSERT INTO folders (id, name, user_id, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := f.db.ExecContext(ctx, query, folder.ID, folder.Name, folder.UserID, folder.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert folder: %w", err)
	}

	return nil
}

func (f *FoldersR) FolderByID(ctx context.Context, userID, folderID string) (models.Folder, error) {
	query := `SELECT id, name, user_id, created_at FROM folders WHERE id = $1 AND user_id = $2`

	var folder models.Folder
	if err := f.db.GetContext(ctx, &folder, query, folderID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, models.ErrNotFound
		}
		return models.Folder{}, fmt.Errorf("failed to get folder %s: %w", folderID, err)
	}

	return folder, nil
}

func (f *FoldersR) Folders(ctx context.Context, userID string) ([]models.Folder, error) {
	query := `SELECT id, name, user_id, created_at FROM folders WHERE user_id = $1 ORDER BY created_at, id`

	folders := make([]models.Folder, 0)
	if err := f.db.SelectContext(ctx, &folders, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	return folders, nil
}

func (f *FoldersR) RenameFolder(ctx context.Context, userID, folderID, name string) error {
	res, err := f.db.ExecContext(ctx,
		`UPDATE folders SET name = $1 WHERE id = $2 AND user_id = $3`, name, folderID, userID)
	if err != nil {
		return fmt.Errorf("failed to rename folder %s: %w", folderID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// DeleteFolder removes the folder; cards inside keep existing with their
// folder reference cleared by the schema's ON DELETE SET NULL.
func (f *FoldersR) DeleteFolder(ctx context.Context, userID, folderID string) error {
	res, err := f.db.ExecContext(ctx,
		`DELETE FROM folders WHERE id = $1 AND user_id = $2`, folderID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete folder %s: %w", folderID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.ErrNotFound
	}

	return nil
}
