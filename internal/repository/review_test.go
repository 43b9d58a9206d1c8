package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/meleongg/flashcard-backend/internal/models"
	"github.com/meleongg/flashcard-backend/internal/repository"
	mock_repository "github.com/meleongg/flashcard-backend/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthroughTx wires MockTxI so the callback runs against the given QueryI,
// mirroring what Transactor does with a live transaction.
func passthroughTx(tx *mock_repository.MockTxI, q repository.QueryI) {
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(q repository.QueryI) error) error {
			return fn(q)
		})
}

func TestReviewR_ReviewSessionByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.ReviewSession
		wantErr error
	}{
		{
			name: "success",
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "sess-1", "user-1").
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						session := dest.(*models.ReviewSession)
						session.ID = "sess-1"
						session.UserID = "user-1"
						return nil
					})
			},
			want: models.ReviewSession{ID: "sess-1", UserID: "user-1"},
		},
		{
			name: "no rows maps to not found",
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "sess-1", "user-1").
					Return(sql.ErrNoRows)
			},
			wantErr: models.ErrNotFound,
		},
		{
			name: "driver error wrapped",
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "sess-1", "user-1").
					Return(errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
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

			r := repository.NewReviewRepository(mq, mock_repository.NewMockTxI(ctrl))

			got, err := r.ReviewSessionByID(context.Background(), "user-1", "sess-1")
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, models.ErrNotFound) {
					assert.ErrorIs(t, err, models.ErrNotFound)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReviewR_SaveReviewOutcome(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	card := models.Flashcard{
		ID:           "card-1",
		UserID:       "user-1",
		ReviewCount:  1,
		IntervalDays: 1,
		EaseFactor:   2.5,
		LastReviewed: &now,
	}
	event := models.ReviewEvent{
		ID:          "event-1",
		SessionID:   "sess-1",
		UserID:      "user-1",
		FlashcardID: "card-1",
		Rating:      4,
		CreatedAt:   now,
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "card update and event land together",
			f: func(mq *mock_repository.MockQueryI) {
				gomock.InOrder(
					mq.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
						1, 1, 2.5, &now, gomock.Nil(), "card-1", "user-1").
						Return(driver.RowsAffected(1), nil),
					mq.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
						"event-1", "sess-1", "user-1", "card-1", 4, now).
						Return(driver.RowsAffected(1), nil),
				)
			},
		},
		{
			name: "missing card rolls back before the event insert",
			f: func(mq *mock_repository.MockQueryI) {
				mq.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
					1, 1, 2.5, &now, gomock.Nil(), "card-1", "user-1").
					Return(driver.RowsAffected(0), nil)
			},
			wantErr: models.ErrNotFound,
		},
		{
			name: "event insert failure aborts the tx",
			f: func(mq *mock_repository.MockQueryI) {
				gomock.InOrder(
					mq.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
						1, 1, 2.5, &now, gomock.Nil(), "card-1", "user-1").
						Return(driver.RowsAffected(1), nil),
					mq.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
						"event-1", "sess-1", "user-1", "card-1", 4, now).
						Return(nil, errors.New("constraint violation")),
				)
			},
			wantErr: errors.New("constraint violation"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mq := mock_repository.NewMockQueryI(ctrl)
			mtx := mock_repository.NewMockTxI(ctrl)
			passthroughTx(mtx, mq)
			tt.f(mq)

			r := repository.NewReviewRepository(mock_repository.NewMockQueryI(ctrl), mtx)

			err := r.SaveReviewOutcome(context.Background(), card, event)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, models.ErrNotFound) {
					assert.ErrorIs(t, err, models.ErrNotFound)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestReviewR_SessionRatings(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mq := mock_repository.NewMockQueryI(ctrl)
	mq.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "sess-1").
		DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			ratings := dest.(*[]int)
			*ratings = append(*ratings, 4, 2, 5)
			return nil
		})

	r := repository.NewReviewRepository(mq, mock_repository.NewMockTxI(ctrl))

	got, err := r.SessionRatings(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 5}, got)
}

func TestReviewR_CreateReviewSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := models.ReviewSession{
		ID:        "sess-1",
		UserID:    "user-1",
		CreatedAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	mq := mock_repository.NewMockQueryI(ctrl)
	mq.EXPECT().ExecContext(gomock.Any(), gomock.Any(), session.ID, session.UserID, session.CreatedAt).
		Return(driver.RowsAffected(1), nil)

	r := repository.NewReviewRepository(mq, mock_repository.NewMockTxI(ctrl))

	require.NoError(t, r.CreateReviewSession(context.Background(), session))
}
