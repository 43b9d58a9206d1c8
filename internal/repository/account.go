package repository

import (
	"context"
	"fmt"
)

type AccountR struct {
	tx TxI
}

func NewAccountRepository(tx TxI) *AccountR {
	return &AccountR{tx: tx}
}

// DeleteUserData removes every record owned by the user in one transaction.
// Child tables go first so foreign keys never block the cascade.
func (a *AccountR) DeleteUserData(ctx context.Context, userID string) error {
	statements := []string{
		`DELETE FROM review_events WHERE user_id = $1`,
		`DELETE FROM review_sessions WHERE user_id = $1`,
		`DELETE FROM quiz_answers WHERE session_id IN (SELECT id FROM quiz_sessions WHERE user_id = $1)`,
		`DELETE FROM quiz_sessions WHERE user_id = $1`,
		`DELETE FROM flashcards WHERE user_id = $1`,
		`DELETE FROM folders WHERE user_id = $1`,
		`DELETE FROM user_settings WHERE user_id = $1`,
	}

	return a.tx.WithinTx(ctx, func(q QueryI) error {
		for _, stmt := range statements {
			if _, err := q.ExecContext(ctx, stmt, userID); err != nil {
				return fmt.Errorf("failed to delete account data: %w", err)
			}
		}
		return nil
	})
}
