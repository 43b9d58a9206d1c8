package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/meleongg/flashcard-backend/internal/models"
	"github.com/meleongg/flashcard-backend/internal/repository"
	mock_repository "github.com/meleongg/flashcard-backend/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashcardsR_FlashcardByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "success",
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "card-1", "user-1").
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						card := dest.(*models.Flashcard)
						card.ID = "card-1"
						card.Word = "hello"
						return nil
					})
			},
		},
		{
			name: "absent card maps to not found",
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "card-1", "user-1").
					Return(sql.ErrNoRows)
			},
			wantErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mq := mock_repository.NewMockQueryI(ctrl)
			tt.f(mq)

			r := repository.NewFlashcardsRepository(mq)

			card, err := r.FlashcardByID(context.Background(), "user-1", "card-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "card-1", card.ID)
			assert.Equal(t, "hello", card.Word)
		})
	}
}

func TestFlashcardsR_UpdateFlashcard(t *testing.T) {
	t.Parallel()

	word := "updated"
	notes := "new notes"
	clearFolder := ""
	folder := "folder-1"

	tests := []struct {
		name    string
		upd     models.FlashcardUpdate
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "only provided fields in the set clause",
			upd:  models.FlashcardUpdate{Word: &word, Notes: &notes},
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "updated", "new notes", "card-1", "user-1").
					DoAndReturn(func(_ context.Context, query string, _ ...any) (sql.Result, error) {
						assert.Contains(t, query, "word = $1")
						assert.Contains(t, query, "notes = $2")
						assert.NotContains(t, query, "translation")
						assert.NotContains(t, query, "review_count")
						return driver.RowsAffected(1), nil
					})
			},
		},
		{
			name: "empty folder id clears to null",
			upd:  models.FlashcardUpdate{FolderID: &clearFolder},
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "card-1", "user-1").
					DoAndReturn(func(_ context.Context, query string, _ ...any) (sql.Result, error) {
						assert.Contains(t, query, "folder_id = NULL")
						return driver.RowsAffected(1), nil
					})
			},
		},
		{
			name: "folder reassignment binds the id",
			upd:  models.FlashcardUpdate{FolderID: &folder},
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "folder-1", "card-1", "user-1").
					Return(driver.RowsAffected(1), nil)
			},
		},
		{
			name: "empty update is a no-op",
			upd:  models.FlashcardUpdate{},
		},
		{
			name: "missing card",
			upd:  models.FlashcardUpdate{Word: &word},
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "updated", "card-1", "user-1").
					Return(driver.RowsAffected(0), nil)
			},
			wantErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mq := mock_repository.NewMockQueryI(ctrl)
			if tt.f != nil {
				tt.f(mq)
			}

			r := repository.NewFlashcardsRepository(mq)

			err := r.UpdateFlashcard(context.Background(), "user-1", "card-1", tt.upd)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFlashcardsR_DueFlashcards(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asOf := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mq := mock_repository.NewMockQueryI(ctrl)
	mq.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "user-1", asOf).
		DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
			assert.Contains(t, query, "next_review_date IS NULL OR next_review_date <= $2")
			assert.Contains(t, query, "NULLS FIRST")

			cards := dest.(*[]models.Flashcard)
			*cards = append(*cards, models.Flashcard{ID: "card-1"})
			return nil
		})

	r := repository.NewFlashcardsRepository(mq)

	cards, err := r.DueFlashcards(context.Background(), "user-1", asOf)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "card-1", cards[0].ID)
}

func TestFlashcardsR_Flashcards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		f         func(*mock_repository.MockQueryI)
		wantTotal int
		wantLen   int
		wantErr   bool
	}{
		{
			name: "counts then pages",
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "user-1").
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*int) = 42
						return nil
					})
				mq.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "user-1", 10, 0).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						cards := dest.(*[]models.Flashcard)
						*cards = append(*cards, models.Flashcard{ID: "card-1"}, models.Flashcard{ID: "card-2"})
						return nil
					})
			},
			wantTotal: 42,
			wantLen:   2,
		},
		{
			name: "empty collection skips the page query",
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "user-1").
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*int) = 0
						return nil
					})
			},
		},
		{
			name: "count failure surfaces",
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "user-1").
					Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mq := mock_repository.NewMockQueryI(ctrl)
			tt.f(mq)

			r := repository.NewFlashcardsRepository(mq)

			cards, total, err := r.Flashcards(context.Background(), "user-1", 0, 10)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			assert.Len(t, cards, tt.wantLen)
		})
	}
}

func TestFlashcardsR_RandomFlashcards(t *testing.T) {
	t.Parallel()

	folderID := "folder-1"

	tests := []struct {
		name     string
		folderID *string
		f        func(*mock_repository.MockQueryI)
	}{
		{
			name: "whole collection",
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "user-1", 5).
					DoAndReturn(func(_ context.Context, _ interface{}, query string, _ ...interface{}) error {
						assert.True(t, strings.Contains(query, "ORDER BY RANDOM()"))
						return nil
					})
			},
		},
		{
			name:     "folder scoped",
			folderID: &folderID,
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "user-1", "folder-1", 5).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mq := mock_repository.NewMockQueryI(ctrl)
			tt.f(mq)

			r := repository.NewFlashcardsRepository(mq)

			_, err := r.RandomFlashcards(context.Background(), "user-1", tt.folderID, 5)
			require.NoError(t, err)
		})
	}
}
