package models

type UserSettings struct {
	UserID              string `db:"user_id" json:"user_id"`
	DefaultSourceLang   string `db:"default_source_lang" json:"default_source_lang"`
	DefaultTargetLang   string `db:"default_target_lang" json:"default_target_lang"`
	DefaultQuizLength   int    `db:"default_quiz_length" json:"default_quiz_length"`
	DailyLearningGoal   int    `db:"daily_learning_goal" json:"daily_learning_goal"`
	AutoTTS             bool   `db:"auto_tts" json:"auto_tts"`
	ReverseQuizDefault  bool   `db:"reverse_quiz_default" json:"reverse_quiz_default"`
	DarkMode            bool   `db:"dark_mode" json:"dark_mode"`
	OnboardingCompleted bool   `db:"onboarding_completed" json:"onboarding_completed"`
}

// DefaultSettings are the values materialized on first access.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:            userID,
		DefaultSourceLang: "en",
		DefaultTargetLang: "zh",
		DefaultQuizLength: 10,
		DailyLearningGoal: 10,
		AutoTTS:           true,
	}
}

// UserSettingsUpdate enumerates every mutable settings field; nil leaves
// the stored value untouched.
type UserSettingsUpdate struct {
	DefaultSourceLang   *string `json:"default_source_lang,omitempty"`
	DefaultTargetLang   *string `json:"default_target_lang,omitempty"`
	DefaultQuizLength   *int    `json:"default_quiz_length,omitempty" validate:"omitempty,min=1,max=100"`
	DailyLearningGoal   *int    `json:"daily_learning_goal,omitempty" validate:"omitempty,min=1"`
	AutoTTS             *bool   `json:"auto_tts,omitempty"`
	ReverseQuizDefault  *bool   `json:"reverse_quiz_default,omitempty"`
	DarkMode            *bool   `json:"dark_mode,omitempty"`
	OnboardingCompleted *bool   `json:"onboarding_completed,omitempty"`
}
