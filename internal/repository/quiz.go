package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/meleongg/flashcard-backend/internal/models"
)

type QuizR struct {
	db QueryI
}

func NewQuizRepository(db QueryI) *QuizR {
	return &QuizR{db: db}
}

func (q *QuizR) CreateQuizSession(ctx context.Context, session models.QuizSession) error {
	query := `
		INSERT INTO quiz_sessions (id, user_id, folder_id, include_reverse, card_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := q.db.ExecContext(ctx, query,
		session.ID, session.UserID, session.FolderID,
		session.IncludeReverse, session.CardCount, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert quiz session: %w", err)
	}

	return nil
}

func (q *QuizR) QuizSessionByID(ctx context.Context, userID, sessionID string) (models.QuizSession, error) {
	query := `SELECT id, user_id, folder_id, include_reverse, card_count, created_at
		FROM quiz_sessions WHERE id = $1 AND user_id = $2`

	var session models.QuizSession
	if err := q.db.GetContext(ctx, &session, query, sessionID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuizSession{}, models.ErrNotFound
		}
		return models.QuizSession{}, fmt.Errorf("failed to get quiz session %s: %w", sessionID, err)
	}

	return session, nil
}

func (q *QuizR) AddQuizAnswer(ctx context.Context, answer models.QuizAnswer) error {
	query := `
		INSERT INTO quiz_answers (id, session_id, flashcard_id, is_correct, answered_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := q.db.ExecContext(ctx, query,
		answer.ID, answer.SessionID, answer.FlashcardID, answer.IsCorrect, answer.AnsweredAt)
	if err != nil {
		return fmt.Errorf("failed to insert quiz answer: %w", err)
	}

	return nil
}

func (q *QuizR) QuizStats(ctx context.Context, userID string) (models.QuizStats, error) {
	query := `SELECT
			COUNT(*) AS total_count,
			COALESCE(SUM(CASE WHEN a.is_correct THEN 1 ELSE 0 END), 0) AS right_count
		FROM quiz_answers a
		JOIN quiz_sessions s ON s.id = a.session_id
		WHERE s.user_id = $1`

	var stats models.QuizStats
	if err := q.db.GetContext(ctx, &stats, query, userID); err != nil {
		return models.QuizStats{}, fmt.Errorf("failed to get quiz stats: %w", err)
	}

	stats.WrongCount = stats.TotalCount - stats.RightCount

	return stats, nil
}

func (q *QuizR) QuizSessionCount(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM quiz_sessions WHERE user_id = $1`
	if err := q.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count quiz sessions: %w", err)
	}

	return count, nil
}

// ActivityDates returns the distinct days on which the user answered quiz
// questions, ascending.
func (q *QuizR) ActivityDates(ctx context.Context, userID string) ([]time.Time, error) {
	query := `SELECT DISTINCT date_trunc('day', a.answered_at) AS day
		FROM quiz_answers a
		JOIN quiz_sessions s ON s.id = a.session_id
		WHERE s.user_id = $1
		ORDER BY day`

	dates := make([]time.Time, 0)
	if err := q.db.SelectContext(ctx, &dates, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list activity dates: %w", err)
	}

	return dates, nil
}
