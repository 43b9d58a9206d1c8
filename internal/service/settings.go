package service

import (
	"context"
	"errors"

	"github.com/meleongg/flashcard-backend/internal/models"
	"github.com/meleongg/flashcard-backend/internal/storage/cache"
	"github.com/meleongg/flashcard-backend/pkg/validator"
	"go.uber.org/zap"
)

type SettingsRI interface {
	UserSettings(ctx context.Context, userID string) (models.UserSettings, error)
	CreateUserSettings(ctx context.Context, settings models.UserSettings) error
	UpdateUserSettings(ctx context.Context, userID string, upd models.UserSettingsUpdate) error
}

type SettingsS struct {
	repo  SettingsRI
	cache *cache.Cache
	log   *zap.Logger
}

func NewSettingsService(repo SettingsRI, c *cache.Cache, log *zap.Logger) *SettingsS {
	return &SettingsS{
		repo:  repo,
		cache: c,
		log:   log,
	}
}

// Settings returns the user's settings, materializing the defaults on first
// access. Reads are served from the per-user cache when possible.
func (s *SettingsS) Settings(ctx context.Context, userID string) (models.UserSettings, error) {
	if settings, ok := s.cache.Settings(userID); ok {
		return settings, nil
	}

	settings, err := s.repo.UserSettings(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		settings = models.DefaultSettings(userID)
		if err := s.repo.CreateUserSettings(ctx, settings); err != nil {
			return models.UserSettings{}, err
		}
	} else if err != nil {
		return models.UserSettings{}, err
	}

	s.cache.SetSettings(userID, settings)

	return settings, nil
}

func (s *SettingsS) UpdateSettings(ctx context.Context, userID string, upd models.UserSettingsUpdate) (models.UserSettings, error) {
	if err := validator.ValidateStruct(upd); err != nil {
		return models.UserSettings{}, err
	}

	// First access may need the defaults row before the update can land.
	if _, err := s.Settings(ctx, userID); err != nil {
		return models.UserSettings{}, err
	}

	if err := s.repo.UpdateUserSettings(ctx, userID, upd); err != nil {
		return models.UserSettings{}, err
	}

	s.cache.DeleteSettings(userID)

	return s.Settings(ctx, userID)
}
