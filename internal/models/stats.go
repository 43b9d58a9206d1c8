package models

import "time"

type UserStats struct {
	TotalQuizzes    int         `json:"total_quizzes"`
	TotalAnswers    int         `json:"total_answers"`
	CorrectAnswers  int         `json:"correct_answers"`
	AccuracyPercent float64     `json:"accuracy_percent"`
	StreakDays      int         `json:"streak_days"`
	RecentActivity  []time.Time `json:"recent_activity"`
}

// ReviewStats is derived from the append-only review event log.
type ReviewStats struct {
	TotalReviews    int     `db:"total_reviews" json:"total_reviews"`
	PassedReviews   int     `db:"passed_reviews" json:"passed_reviews"`
	RetentionRate   float64 `json:"retention_rate"`
	SessionCount    int     `db:"session_count" json:"session_count"`
	CardsPerSession float64 `json:"cards_per_session"`
}
