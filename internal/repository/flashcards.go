package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/meleongg/flashcard-backend/internal/models"
)

type FlashcardsR struct {
	db QueryI
}

func NewFlashcardsRepository(db QueryI) *FlashcardsR {
	return &FlashcardsR{db: db}
}

const flashcardColumns = `id, word, translation, phonetic, pos, example, notes,
		source_lang, target_lang, folder_id, user_id, created_at,
		review_count, interval_days, ease_factor, last_reviewed, next_review_date`

func (f *FlashcardsR) CreateFlashcard(ctx context.Context, card models.Flashcard) error {
	query := `
		INSERT INTO flashcards (id, word, translation, phonetic, pos, example, notes,
			source_lang, target_lang, folder_id, user_id, created_at, ease_factor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := f.db.ExecContext(ctx, query,
		card.ID, card.Word, card.Translation, card.Phonetic, card.POS,
		card.Example, card.Notes, card.SourceLang, card.TargetLang,
		card.FolderID, card.UserID, card.CreatedAt, card.EaseFactor)
	if err != nil {
		return fmt.Errorf("failed to insert flashcard: %w", err)
	}

	return nil
}

func (f *FlashcardsR) FlashcardByID(ctx context.Context, userID, cardID string) (models.Flashcard, error) {
	query := `SELECT ` + flashcardColumns + ` FROM flashcards WHERE id = $1 AND user_id = $2`

	var card models.Flashcard
	if err := f.db.GetContext(ctx, &card, query, cardID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Flashcard{}, models.ErrNotFound
		}
		return models.Flashcard{}, fmt.Errorf("failed to get flashcard %s: %w", cardID, err)
	}

	return card, nil
}

func (f *FlashcardsR) Flashcards(ctx context.Context, userID string, offset, limit int) ([]models.Flashcard, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM flashcards WHERE user_id = $1`
	if err := f.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("failed to count flashcards: %w", err)
	}

	if total == 0 {
		return []models.Flashcard{}, 0, nil
	}

	query := `SELECT ` + flashcardColumns + `
		FROM flashcards
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	cards := make([]models.Flashcard, 0, limit)
	if err := f.db.SelectContext(ctx, &cards, query, userID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list flashcards: %w", err)
	}

	return cards, total, nil
}

func (f *FlashcardsR) FlashcardsByFolder(ctx context.Context, userID, folderID string) ([]models.Flashcard, error) {
	query := `SELECT ` + flashcardColumns + `
		FROM flashcards
		WHERE user_id = $1 AND folder_id = $2
		ORDER BY created_at DESC, id`

	var cards []models.Flashcard
	if err := f.db.SelectContext(ctx, &cards, query, userID, folderID); err != nil {
		return nil, fmt.Errorf("failed to list folder flashcards: %w", err)
	}

	return cards, nil
}

// UpdateFlashcard applies the non-nil fields of upd. The SET clause is
// assembled from the fixed field list only, never from caller-provided
// attribute names.
func (f *FlashcardsR) UpdateFlashcard(ctx context.Context, userID, cardID string, upd models.FlashcardUpdate) error {
	set := make([]string, 0, 7)
	args := make([]any, 0, 9)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Word != nil {
		add("word", *upd.Word)
	}
	if upd.Translation != nil {
		add("translation", *upd.Translation)
	}
	if upd.Phonetic != nil {
		add("phonetic", *upd.Phonetic)
	}
	if upd.POS != nil {
		add("pos", *upd.POS)
	}
	if upd.Example != nil {
		add("example", *upd.Example)
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}
	if upd.FolderID != nil {
		if *upd.FolderID == "" {
			set = append(set, "folder_id = NULL")
		} else {
			add("folder_id", *upd.FolderID)
		}
	}

	if len(set) == 0 {
		return nil
	}

	args = append(args, cardID, userID)
	query := fmt.Sprintf(`UPDATE flashcards SET %s WHERE id = $%d AND user_id = $%d`,
		strings.Join(set, ", "), len(args)-1, len(args))

	res, err := f.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update flashcard %s: %w", cardID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (f *FlashcardsR) DeleteFlashcard(ctx context.Context, userID, cardID string) error {
	res, err := f.db.ExecContext(ctx, `DELETE FROM flashcards WHERE id = $1 AND user_id = $2`, cardID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete flashcard %s: %w", cardID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// DueFlashcards returns cards due on or before asOf. Never-reviewed cards
// (NULL next_review_date) sort first; ties break on card id.
func (f *FlashcardsR) DueFlashcards(ctx context.Context, userID string, asOf time.Time) ([]models.Flashcard, error) {
	query := `SELECT ` + flashcardColumns + `
		FROM flashcards
		WHERE user_id = $1 AND (next_review_date IS NULL OR next_review_date <= $2)
		ORDER BY next_review_date ASC NULLS FIRST, id`

	cards := make([]models.Flashcard, 0)
	if err := f.db.SelectContext(ctx, &cards, query, userID, asOf); err != nil {
		return nil, fmt.Errorf("failed to list due flashcards: %w", err)
	}

	return cards, nil
}

// RandomFlashcards deals up to limit cards for a quiz, optionally scoped to
// one folder.
func (f *FlashcardsR) RandomFlashcards(ctx context.Context, userID string, folderID *string, limit int) ([]models.Flashcard, error) {
	var (
		cards []models.Flashcard
		err   error
	)
	if folderID != nil {
		query := `SELECT ` + flashcardColumns + `
			FROM flashcards
			WHERE user_id = $1 AND folder_id = $2
			ORDER BY RANDOM()
			LIMIT $3`
		err = f.db.SelectContext(ctx, &cards, query, userID, *folderID, limit)
	} else {
		query := `SELECT ` + flashcardColumns + `
			FROM flashcards
			WHERE user_id = $1
			ORDER BY RANDOM()
			LIMIT $2`
		err = f.db.SelectContext(ctx, &cards, query, userID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to deal quiz flashcards: %w", err)
	}

	return cards, nil
}
