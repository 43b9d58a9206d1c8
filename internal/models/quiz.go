package models

import "time"

type QuizSession struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	FolderID       *string   `db:"folder_id" json:"folder_id,omitempty"`
	IncludeReverse bool      `db:"include_reverse" json:"include_reverse"`
	CardCount      int       `db:"card_count" json:"card_count"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type QuizAnswer struct {
	ID          string    `db:"id" json:"id"`
	SessionID   string    `db:"session_id" json:"session_id"`
	FlashcardID string    `db:"flashcard_id" json:"flashcard_id"`
	IsCorrect   bool      `db:"is_correct" json:"is_correct"`
	AnsweredAt  time.Time `db:"answered_at" json:"answered_at"`
}

// QuizCard is one face of a dealt quiz deck. In reverse mode the word and
// translation of a flashcard swap places, as do the language tags.
type QuizCard struct {
	FlashcardID string `json:"flashcard_id"`
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Phonetic    string `json:"phonetic"`
	POS         string `json:"pos,omitempty"`
	Example     string `json:"example"`
	Notes       string `json:"notes"`
	SourceLang  string `json:"source_lang"`
	TargetLang  string `json:"target_lang"`
	Reversed    bool   `json:"reversed"`
}

type QuizStats struct {
	TotalCount int `db:"total_count" json:"total_count"`
	RightCount int `db:"right_count" json:"right_count"`
	WrongCount int `db:"wrong_count" json:"wrong_count"`
}
