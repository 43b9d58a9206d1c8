package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/meleongg/flashcard-backend/internal/models"
	"github.com/meleongg/flashcard-backend/internal/storage/cache"
	"go.uber.org/zap"
)

type QuizRI interface {
	CreateQuizSession(ctx context.Context, session models.QuizSession) error
	QuizSessionByID(ctx context.Context, userID, sessionID string) (models.QuizSession, error)
	AddQuizAnswer(ctx context.Context, answer models.QuizAnswer) error
}

type QuizCardRI interface {
	RandomFlashcards(ctx context.Context, userID string, folderID *string, limit int) ([]models.Flashcard, error)
}

type QuizS struct {
	repo     QuizRI
	cards    QuizCardRI
	settings AuxiliarySettings
	cache    *cache.Cache
	clock    Clock
	log      *zap.Logger
}

func NewQuizService(repo QuizRI, cards QuizCardRI, settings AuxiliarySettings, c *cache.Cache, clock Clock, log *zap.Logger) *QuizS {
	return &QuizS{
		repo:     repo,
		cards:    cards,
		settings: settings,
		cache:    c,
		clock:    clock,
		log:      log,
	}
}

// StartQuiz deals a shuffled deck of up to count cards, optionally scoped
// to one folder and optionally doubled with reversed faces, and records the
// quiz session. The dealt deck is cached per user for re-serving.
func (q *QuizS) StartQuiz(ctx context.Context, userID string, folderID *string, count int, includeReverse bool) (models.QuizSession, []models.QuizCard, error) {
	if count <= 0 {
		count = 10
		if settings, err := q.settings.UserSettings(ctx, userID); err == nil && settings.DefaultQuizLength > 0 {
			count = settings.DefaultQuizLength
		} else if err != nil && !errors.Is(err, models.ErrNotFound) {
			q.log.Warn("failed to load user settings for quiz length", zap.Error(err))
		}
	}

	flashcards, err := q.cards.RandomFlashcards(ctx, userID, folderID, count)
	if err != nil {
		return models.QuizSession{}, nil, err
	}
	if len(flashcards) == 0 {
		return models.QuizSession{}, nil, fmt.Errorf("no flashcards to quiz on: %w", models.ErrNotFound)
	}

	deck := make([]models.QuizCard, 0, 2*len(flashcards))
	for _, card := range flashcards {
		deck = append(deck, forwardFace(card))
	}
	if includeReverse {
		for _, card := range flashcards {
			deck = append(deck, reverseFace(card))
		}
	}
	rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	session := models.QuizSession{
		ID:             uuid.NewString(),
		UserID:         userID,
		FolderID:       folderID,
		IncludeReverse: includeReverse,
		CardCount:      len(deck),
		CreatedAt:      q.clock.Now(),
	}
	if err := q.repo.CreateQuizSession(ctx, session); err != nil {
		return models.QuizSession{}, nil, err
	}

	q.cache.SetDeck(userID, deck)

	q.log.Info("quiz started",
		zap.String("session_id", session.ID),
		zap.Int("cards", len(deck)),
		zap.Bool("reverse", includeReverse))

	return session, deck, nil
}

// CurrentDeck re-serves the most recently dealt deck, if any.
func (q *QuizS) CurrentDeck(userID string) ([]models.QuizCard, bool) {
	return q.cache.Deck(userID)
}

// RecordAnswer appends one answer to an owned quiz session's log.
func (q *QuizS) RecordAnswer(ctx context.Context, userID, sessionID, flashcardID string, correct bool) error {
	session, err := q.repo.QuizSessionByID(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	answer := models.QuizAnswer{
		ID:          uuid.NewString(),
		SessionID:   session.ID,
		FlashcardID: flashcardID,
		IsCorrect:   correct,
		AnsweredAt:  q.clock.Now(),
	}

	return q.repo.AddQuizAnswer(ctx, answer)
}

func forwardFace(card models.Flashcard) models.QuizCard {
	return models.QuizCard{
		FlashcardID: card.ID,
		Word:        card.Word,
		Translation: card.Translation,
		Phonetic:    card.Phonetic,
		POS:         card.POS,
		Example:     card.Example,
		Notes:       card.Notes,
		SourceLang:  card.SourceLang,
		TargetLang:  card.TargetLang,
	}
}

func reverseFace(card models.Flashcard) models.QuizCard {
	face := forwardFace(card)
	face.Word, face.Translation = face.Translation, face.Word
	face.SourceLang, face.TargetLang = face.TargetLang, face.SourceLang
	face.Reversed = true
	return face
}
