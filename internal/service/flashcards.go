package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/meleongg/flashcard-backend/internal/models"
	"github.com/meleongg/flashcard-backend/internal/srs"
	"go.uber.org/zap"
)

type FlashcardRI interface {
	CreateFlashcard(ctx context.Context, card models.Flashcard) error
	FlashcardByID(ctx context.Context, userID, cardID string) (models.Flashcard, error)
	Flashcards(ctx context.Context, userID string, offset, limit int) ([]models.Flashcard, int, error)
	FlashcardsByFolder(ctx context.Context, userID, folderID string) ([]models.Flashcard, error)
	UpdateFlashcard(ctx context.Context, userID, cardID string, upd models.FlashcardUpdate) error
	DeleteFlashcard(ctx context.Context, userID, cardID string) error
}

// AuxiliarySettings resolves per-user language defaults during enrichment.
type AuxiliarySettings interface {
	UserSettings(ctx context.Context, userID string) (models.UserSettings, error)
}

// AuxiliaryFolder checks folder ownership before filing a card into it.
type AuxiliaryFolder interface {
	FolderByID(ctx context.Context, userID, folderID string) (models.Folder, error)
}

type FlashcardS struct {
	translator TranslatorAPII
	generator  GeneratorAPII
	dictionary DictionaryAPII
	repo       FlashcardRI
	settings   AuxiliarySettings
	folders    AuxiliaryFolder
	clock      Clock
	log        *zap.Logger
}

func NewFlashcardService(api APII, repo FlashcardRI, settings AuxiliarySettings, folders AuxiliaryFolder, clock Clock, log *zap.Logger) *FlashcardS {
	return &FlashcardS{
		translator: api,
		generator:  api,
		dictionary: api,
		repo:       repo,
		settings:   settings,
		folders:    folders,
		clock:      clock,
		log:        log,
	}
}

// CreateFlashcard enriches a raw word through the NLP collaborators and
// stores the resulting card. Translation is mandatory; example sentences,
// notes, phonetics and POS degrade gracefully when a provider is down.
func (f *FlashcardS) CreateFlashcard(ctx context.Context, userID, word string, folderID *string) (models.Flashcard, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return models.Flashcard{}, fmt.Errorf("word must not be empty")
	}

	if folderID != nil {
		if _, err := f.folders.FolderByID(ctx, userID, *folderID); err != nil {
			return models.Flashcard{}, err
		}
	}

	sourceLang, targetLang := "en", "zh"
	if settings, err := f.settings.UserSettings(ctx, userID); err == nil {
		sourceLang, targetLang = settings.DefaultSourceLang, settings.DefaultTargetLang
	} else if !errors.Is(err, models.ErrNotFound) {
		f.log.Warn("failed to load user settings, using default languages",
			zap.String("user_id", userID), zap.Error(err))
	}

	translation, err := f.translator.Translate(ctx, word, sourceLang, targetLang)
	if err != nil {
		f.log.Error("failed to translate word", zap.String("word", word), zap.Error(err))
		return models.Flashcard{}, fmt.Errorf("failed to translate word %q: %w", word, err)
	}

	example, notes, err := f.generator.ExampleAndNotes(ctx, word)
	if err != nil {
		f.log.Warn("failed to generate example and notes", zap.String("word", word), zap.Error(err))
	}

	info, err := f.dictionary.WordInfo(ctx, word)
	if err != nil {
		f.log.Warn("failed to get dictionary data", zap.String("word", word), zap.Error(err))
		info = models.WordInfo{Phonetic: fallbackPhonetic(word)}
	}

	card := models.Flashcard{
		ID:          uuid.NewString(),
		Word:        word,
		Translation: translation,
		Phonetic:    info.Phonetic,
		POS:         info.POS,
		Example:     example,
		Notes:       notes,
		SourceLang:  sourceLang,
		TargetLang:  targetLang,
		FolderID:    folderID,
		UserID:      userID,
		CreatedAt:   f.clock.Now(),
		EaseFactor:  srs.DefaultEase,
	}

	if err := f.repo.CreateFlashcard(ctx, card); err != nil {
		return models.Flashcard{}, err
	}

	f.log.Info("flashcard created", zap.String("flashcard_id", card.ID), zap.String("word", word))

	return card, nil
}

// fallbackPhonetic is the letter-by-letter placeholder used when no
// dictionary entry exists.
func fallbackPhonetic(word string) string {
	letters := strings.Split(word, "")
	return strings.Join(letters, "-")
}

func (f *FlashcardS) Flashcard(ctx context.Context, userID, cardID string) (models.Flashcard, error) {
	return f.repo.FlashcardByID(ctx, userID, cardID)
}

func (f *FlashcardS) Flashcards(ctx context.Context, userID string, offset, limit int) ([]models.Flashcard, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	return f.repo.Flashcards(ctx, userID, offset, limit)
}

func (f *FlashcardS) UpdateFlashcard(ctx context.Context, userID, cardID string, upd models.FlashcardUpdate) (models.Flashcard, error) {
	if upd.FolderID != nil && *upd.FolderID != "" {
		if _, err := f.folders.FolderByID(ctx, userID, *upd.FolderID); err != nil {
			return models.Flashcard{}, err
		}
	}

	if err := f.repo.UpdateFlashcard(ctx, userID, cardID, upd); err != nil {
		return models.Flashcard{}, err
	}

	return f.repo.FlashcardByID(ctx, userID, cardID)
}

func (f *FlashcardS) DeleteFlashcard(ctx context.Context, userID, cardID string) error {
	return f.repo.DeleteFlashcard(ctx, userID, cardID)
}
