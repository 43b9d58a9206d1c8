package models

import "time"

type Flashcard struct {
	ID          string    `db:"id" json:"id"`
	Word        string    `db:"word" json:"word"`
	Translation string    `db:"translation" json:"translation"`
	Phonetic    string    `db:"phonetic" json:"phonetic"`
	POS         string    `db:"pos" json:"pos,omitempty"`
	Example     string    `db:"example" json:"example"`
	Notes       string    `db:"notes" json:"notes"`
	SourceLang  string    `db:"source_lang" json:"source_lang"`
	TargetLang  string    `db:"target_lang" json:"target_lang"`
	FolderID    *string   `db:"folder_id" json:"folder_id,omitempty"`
	UserID      string    `db:"user_id" json:"user_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	// Scheduling state. A card that has never been reviewed keeps
	// ReviewCount and IntervalDays at zero and both dates NULL.
	ReviewCount    int        `db:"review_count" json:"review_count"`
	IntervalDays   int        `db:"interval_days" json:"interval_days"`
	EaseFactor     float64    `db:"ease_factor" json:"ease_factor"`
	LastReviewed   *time.Time `db:"last_reviewed" json:"last_reviewed,omitempty"`
	NextReviewDate *time.Time `db:"next_review_date" json:"next_review_date,omitempty"`
}

// FlashcardUpdate enumerates every field a client may change on a card.
// Nil means "leave as is". Scheduling state is never updated through here,
// only through the review workflow.
type FlashcardUpdate struct {
	Word        *string `json:"word,omitempty"`
	Translation *string `json:"translation,omitempty"`
	Phonetic    *string `json:"phonetic,omitempty"`
	POS         *string `json:"pos,omitempty"`
	Example     *string `json:"example,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	FolderID    *string `json:"folder_id,omitempty"`
}

func (u FlashcardUpdate) Empty() bool {
	return u.Word == nil && u.Translation == nil && u.Phonetic == nil &&
		u.POS == nil && u.Example == nil && u.Notes == nil && u.FolderID == nil
}
