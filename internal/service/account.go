package service

import (
	"context"

	"github.com/meleongg/flashcard-backend/internal/storage/cache"
	"go.uber.org/zap"
)

type AccountRI interface {
	DeleteUserData(ctx context.Context, userID string) error
}

type AccountS struct {
	repo  AccountRI
	cache *cache.Cache
	log   *zap.Logger
}

func NewAccountService(repo AccountRI, c *cache.Cache, log *zap.Logger) *AccountS {
	return &AccountS{
		repo:  repo,
		cache: c,
		log:   log,
	}
}

// DeleteAccount wipes every record the user owns, including the review
// session and event history. This cascade is the only path that removes
// review data.
func (a *AccountS) DeleteAccount(ctx context.Context, userID string) error {
	if err := a.repo.DeleteUserData(ctx, userID); err != nil {
		return err
	}

	a.cache.DeleteUser(userID)

	a.log.Info("account data deleted", zap.String("user_id", userID))

	return nil
}
