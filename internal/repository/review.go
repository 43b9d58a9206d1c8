package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/meleongg/flashcard-backend/internal/models"
)

type ReviewR struct {
	db QueryI
	tx TxI
}

func NewReviewRepository(db QueryI, tx TxI) *ReviewR {
	return &ReviewR{db: db, tx: tx}
}

func (r *ReviewR) CreateReviewSession(ctx context.Context, session models.ReviewSession) error {
	query := `INSERT INTO review_sessions (id, user_id, created_at) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, session.ID, session.UserID, session.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert review session: %w", err)
	}

	return nil
}

func (r *ReviewR) ReviewSessionByID(ctx context.Context, userID, sessionID string) (models.ReviewSession, error) {
	query := `SELECT id, user_id, created_at FROM review_sessions WHERE id = $1 AND user_id = $2`

	var session models.ReviewSession
	if err := r.db.GetContext(ctx, &session, query, sessionID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ReviewSession{}, models.ErrNotFound
		}
		return models.ReviewSession{}, fmt.Errorf("failed to get review session %s: %w", sessionID, err)
	}

	return session, nil
}

// SaveReviewOutcome persists the card's new scheduling state and appends the
// audit event in one transaction. Either both land or neither does; a crash
// can never leave a reviewed card without its event.
func (r *ReviewR) SaveReviewOutcome(ctx context.Context, card models.Flashcard, event models.ReviewEvent) error {
	return r.tx.WithinTx(ctx, func(q QueryI) error {
		update := `
			UPDATE flashcards
			SET review_count = $1, interval_days = $2, ease_factor = $3,
				last_reviewed = $4, next_review_date = $5
			WHERE id = $6 AND user_id = $7
		`
		res, err := q.ExecContext(ctx, update,
			card.ReviewCount, card.IntervalDays, card.EaseFactor,
			card.LastReviewed, card.NextReviewDate, card.ID, card.UserID)
		if err != nil {
			return fmt.Errorf("failed to update card scheduling state: %w", err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return models.ErrNotFound
		}

		insert := `
			INSERT INTO review_events (id, session_id, user_id, flashcard_id, rating, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := q.ExecContext(ctx, insert,
			event.ID, event.SessionID, event.UserID, event.FlashcardID,
			event.Rating, event.CreatedAt); err != nil {
			return fmt.Errorf("failed to append review event: %w", err)
		}

		return nil
	})
}

// SessionRatings returns the raw ratings recorded under a session in
// submission order.
func (r *ReviewR) SessionRatings(ctx context.Context, sessionID string) ([]int, error) {
	query := `SELECT rating FROM review_events WHERE session_id = $1 ORDER BY created_at, id`

	ratings := make([]int, 0)
	if err := r.db.SelectContext(ctx, &ratings, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to list session ratings: %w", err)
	}

	return ratings, nil
}

func (r *ReviewR) ReviewStats(ctx context.Context, userID string) (models.ReviewStats, error) {
	query := `SELECT
			COUNT(*) AS total_reviews,
			COALESCE(SUM(CASE WHEN rating >= 3 THEN 1 ELSE 0 END), 0) AS passed_reviews,
			COUNT(DISTINCT session_id) AS session_count
		FROM review_events
		WHERE user_id = $1`

	var stats models.ReviewStats
	if err := r.db.GetContext(ctx, &stats, query, userID); err != nil {
		return models.ReviewStats{}, fmt.Errorf("failed to get review stats: %w", err)
	}

	return stats, nil
}
