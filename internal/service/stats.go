package service

import (
	"context"
	"math"
	"time"

	"github.com/meleongg/flashcard-backend/internal/models"
	"go.uber.org/zap"
)

type StatsQuizRI interface {
	QuizStats(ctx context.Context, userID string) (models.QuizStats, error)
	QuizSessionCount(ctx context.Context, userID string) (int, error)
	ActivityDates(ctx context.Context, userID string) ([]time.Time, error)
}

type StatsReviewRI interface {
	ReviewStats(ctx context.Context, userID string) (models.ReviewStats, error)
}

type StatsS struct {
	quizzes StatsQuizRI
	reviews StatsReviewRI
	clock   Clock
	log     *zap.Logger
}

func NewStatsService(quizzes StatsQuizRI, reviews StatsReviewRI, clock Clock, log *zap.Logger) *StatsS {
	return &StatsS{
		quizzes: quizzes,
		reviews: reviews,
		clock:   clock,
		log:     log,
	}
}

// UserStats rolls up quiz activity: totals, accuracy, the consecutive-day
// streak ending today and the last seven active days.
func (s *StatsS) UserStats(ctx context.Context, userID string) (models.UserStats, error) {
	quizCount, err := s.quizzes.QuizSessionCount(ctx, userID)
	if err != nil {
		return models.UserStats{}, err
	}

	answers, err := s.quizzes.QuizStats(ctx, userID)
	if err != nil {
		return models.UserStats{}, err
	}

	dates, err := s.quizzes.ActivityDates(ctx, userID)
	if err != nil {
		return models.UserStats{}, err
	}

	stats := models.UserStats{
		TotalQuizzes:   quizCount,
		TotalAnswers:   answers.TotalCount,
		CorrectAnswers: answers.RightCount,
		StreakDays:     streakDays(dates, s.clock.Today()),
		RecentActivity: lastN(dates, 7),
	}
	if answers.TotalCount > 0 {
		stats.AccuracyPercent = float64(answers.RightCount) / float64(answers.TotalCount) * 100
	}

	return stats, nil
}

// ReviewStats derives retention metrics from the review event log.
func (s *StatsS) ReviewStats(ctx context.Context, userID string) (models.ReviewStats, error) {
	stats, err := s.reviews.ReviewStats(ctx, userID)
	if err != nil {
		return models.ReviewStats{}, err
	}

	if stats.TotalReviews > 0 {
		rate := float64(stats.PassedReviews) / float64(stats.TotalReviews) * 100
		stats.RetentionRate = math.Round(rate*100) / 100
	}
	if stats.SessionCount > 0 {
		per := float64(stats.TotalReviews) / float64(stats.SessionCount)
		stats.CardsPerSession = math.Round(per*100) / 100
	}

	return stats, nil
}

// streakDays counts consecutive active days ending today. The day list may
// be in any order; only calendar days matter.
func streakDays(dates []time.Time, today time.Time) int {
	active := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		y, m, day := d.Date()
		active[time.Date(y, m, day, 0, 0, 0, 0, time.UTC)] = struct{}{}
	}

	streak := 0
	for {
		day := today.AddDate(0, 0, -streak)
		if _, ok := active[day]; !ok {
			break
		}
		streak++
	}

	return streak
}

func lastN(dates []time.Time, n int) []time.Time {
	if len(dates) <= n {
		return dates
	}
	return dates[len(dates)-n:]
}
