package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// TxI runs fn inside a single transaction. fn receives a QueryI bound to
// that transaction; any error from fn rolls everything back.
type TxI interface {
	WithinTx(ctx context.Context, fn func(q QueryI) error) error
}

type Transactor struct {
	db *sqlx.DB
}

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(q QueryI) error) error {
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}
	return nil
}

type Repository struct {
	*FlashcardsR
	*FoldersR
	*ReviewR
	*QuizR
	*SettingsR
	*AccountR
}

func NewRepository(db *sqlx.DB) Repository {
	tx := NewTransactor(db)
	return Repository{
		FlashcardsR: NewFlashcardsRepository(db),
		FoldersR:    NewFoldersRepository(db),
		ReviewR:     NewReviewRepository(db, tx),
		QuizR:       NewQuizRepository(db),
		SettingsR:   NewSettingsRepository(db),
		AccountR:    NewAccountRepository(tx),
	}
}
