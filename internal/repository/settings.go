package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/meleongg/flashcard-backend/internal/models"
)

type SettingsR struct {
	db QueryI
}

func NewSettingsRepository(db QueryI) *SettingsR {
	return &SettingsR{db: db}
}

const settingsColumns = `user_id, default_source_lang, default_target_lang,
		default_quiz_length, daily_learning_goal, auto_tts,
		reverse_quiz_default, dark_mode, onboarding_completed`

func (s *SettingsR) UserSettings(ctx context.Context, userID string) (models.UserSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM user_settings WHERE user_id = $1`

	var settings models.UserSettings
	if err := s.db.GetContext(ctx, &settings, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserSettings{}, models.ErrNotFound
		}
		return models.UserSettings{}, fmt.Errorf("failed to get user settings: %w", err)
	}

	return settings, nil
}

func (s *SettingsR) CreateUserSettings(ctx context.Context, settings models.UserSettings) error {
	query := `
		INSERT INTO user_settings (` + settingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query,
		settings.UserID, settings.DefaultSourceLang, settings.DefaultTargetLang,
		settings.DefaultQuizLength, settings.DailyLearningGoal, settings.AutoTTS,
		settings.ReverseQuizDefault, settings.DarkMode, settings.OnboardingCompleted)
	if err != nil {
		return fmt.Errorf("failed to insert user settings: %w", err)
	}

	return nil
}

func (s *SettingsR) UpdateUserSettings(ctx context.Context, userID string, upd models.UserSettingsUpdate) error {
	set := make([]string, 0, 8)
	args := make([]any, 0, 9)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.DefaultSourceLang != nil {
		add("default_source_lang", *upd.DefaultSourceLang)
	}
	if upd.DefaultTargetLang != nil {
		add("default_target_lang", *upd.DefaultTargetLang)
	}
	if upd.DefaultQuizLength != nil {
		add("default_quiz_length", *upd.DefaultQuizLength)
	}
	if upd.DailyLearningGoal != nil {
		add("daily_learning_goal", *upd.DailyLearningGoal)
	}
	if upd.AutoTTS != nil {
		add("auto_tts", *upd.AutoTTS)
	}
	if upd.ReverseQuizDefault != nil {
		add("reverse_quiz_default", *upd.ReverseQuizDefault)
	}
	if upd.DarkMode != nil {
		add("dark_mode", *upd.DarkMode)
	}
	if upd.OnboardingCompleted != nil {
		add("onboarding_completed", *upd.OnboardingCompleted)
	}

	if len(set) == 0 {
		return nil
	}

	args = append(args, userID)
	query := fmt.Sprintf(`UPDATE user_settings SET %s WHERE user_id = $%d`,
		strings.Join(set, ", "), len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user settings: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.ErrNotFound
	}

	return nil
}
