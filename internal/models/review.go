package models

import "time"

type ReviewSession struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReviewEvent is an append-only audit record. Events are written once per
// accepted review submission and never updated afterwards.
type ReviewEvent struct {
	ID          string    `db:"id" json:"id"`
	SessionID   string    `db:"session_id" json:"session_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	FlashcardID string    `db:"flashcard_id" json:"flashcard_id"`
	Rating      int       `db:"rating" json:"rating"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type SessionSummary struct {
	SessionID        string      `json:"session_id"`
	UserID           string      `json:"user_id"`
	TotalCards       int         `json:"total_cards"`
	AverageRating    float64     `json:"average_rating"`
	RatingsBreakdown map[int]int `json:"ratings_breakdown"`
	StartedAt        time.Time   `json:"started_at"`
}
