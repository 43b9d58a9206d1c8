package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/meleongg/flashcard-backend/internal/models"
	mock_service "github.com/meleongg/flashcard-backend/internal/service/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newStatsServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockStatsQuizRI, *mock_service.MockStatsReviewRI)) *StatsS {
	t.Helper()

	quizzes := mock_service.NewMockStatsQuizRI(ctrl)
	reviews := mock_service.NewMockStatsReviewRI(ctrl)
	if setupMock != nil {
		setupMock(quizzes, reviews)
	}

	return NewStatsService(quizzes, reviews, fixedClock{now: testNow}, zap.NewNop())
}

func TestStatsS_UserStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// testNow is 2024-03-10, so two active days back from today form a streak.
	dates := []time.Time{day(2024, 3, 7), day(2024, 3, 9), day(2024, 3, 10)}

	s := newStatsServiceMock(t, ctrl, func(mq *mock_service.MockStatsQuizRI, _ *mock_service.MockStatsReviewRI) {
		mq.EXPECT().QuizSessionCount(gomock.Any(), "user-1").Return(4, nil)
		mq.EXPECT().QuizStats(gomock.Any(), "user-1").
			Return(models.QuizStats{TotalCount: 40, RightCount: 30}, nil)
		mq.EXPECT().ActivityDates(gomock.Any(), "user-1").Return(dates, nil)
	})

	got, err := s.UserStats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 4, got.TotalQuizzes)
	assert.Equal(t, 40, got.TotalAnswers)
	assert.Equal(t, 30, got.CorrectAnswers)
	assert.InDelta(t, 75.0, got.AccuracyPercent, 1e-9)
	assert.Equal(t, 2, got.StreakDays)
	assert.Equal(t, dates, got.RecentActivity)
}

func TestStatsS_ReviewStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  models.ReviewStats
		want models.ReviewStats
	}{
		{
			name: "rates rounded to two decimals",
			raw:  models.ReviewStats{TotalReviews: 9, PassedReviews: 6, SessionCount: 4},
			want: models.ReviewStats{
				TotalReviews:    9,
				PassedReviews:   6,
				SessionCount:    4,
				RetentionRate:   66.67,
				CardsPerSession: 2.25,
			},
		},
		{
			name: "no reviews keeps zero rates",
			raw:  models.ReviewStats{},
			want: models.ReviewStats{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newStatsServiceMock(t, ctrl, func(_ *mock_service.MockStatsQuizRI, mr *mock_service.MockStatsReviewRI) {
				mr.EXPECT().ReviewStats(gomock.Any(), "user-1").Return(tt.raw, nil)
			})

			got, err := s.ReviewStats(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStreakDays(t *testing.T) {
	t.Parallel()

	today := day(2024, 3, 10)

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{name: "no activity", dates: nil, want: 0},
		{name: "today only", dates: []time.Time{day(2024, 3, 10)}, want: 1},
		{
			name:  "three consecutive days",
			dates: []time.Time{day(2024, 3, 8), day(2024, 3, 9), day(2024, 3, 10)},
			want:  3,
		},
		{
			name:  "gap breaks the streak",
			dates: []time.Time{day(2024, 3, 7), day(2024, 3, 9), day(2024, 3, 10)},
			want:  2,
		},
		{
			name:  "streak not anchored to today counts zero",
			dates: []time.Time{day(2024, 3, 8), day(2024, 3, 9)},
			want:  0,
		},
		{
			name:  "order does not matter",
			dates: []time.Time{day(2024, 3, 10), day(2024, 3, 8), day(2024, 3, 9)},
			want:  3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, streakDays(tt.dates, today))
		})
	}
}
