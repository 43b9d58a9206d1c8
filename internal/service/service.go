package service

import (
	"context"
	"time"

	"github.com/meleongg/flashcard-backend/internal/models"
	"github.com/meleongg/flashcard-backend/internal/storage/cache"
	"go.uber.org/zap"
)

type TranslatorAPII interface {
	Translate(ctx context.Context, word, sourceLang, targetLang string) (string, error)
}

type GeneratorAPII interface {
	ExampleAndNotes(ctx context.Context, word string) (string, string, error)
}

type DictionaryAPII interface {
	WordInfo(ctx context.Context, word string) (models.WordInfo, error)
}

type APII interface {
	TranslatorAPII
	GeneratorAPII
	DictionaryAPII
}

type RepositoryI interface {
	FlashcardRI
	FolderRI
	ReviewRI
	ReviewCardRI
	QuizRI
	QuizCardRI
	SettingsRI
	StatsQuizRI
	StatsReviewRI
	AccountRI
}

// Clock supplies the current moment and the current day. Injected so the
// scheduler and timestamps stay deterministic under test.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type utcClock struct{}

func NewClock() Clock { return utcClock{} }

func (utcClock) Now() time.Time { return time.Now().UTC() }

func (utcClock) Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Service struct {
	*FlashcardS
	*FolderS
	*ReviewS
	*QuizS
	*SettingsS
	*StatsS
	*AccountS
}

func InitServices(api APII, repo RepositoryI, c *cache.Cache, clock Clock, log *zap.Logger) *Service {
	return &Service{
		FlashcardS: NewFlashcardService(api, repo, repo, repo, clock, log),
		FolderS:    NewFolderService(repo, clock, log),
		ReviewS:    NewReviewService(repo, repo, clock, log),
		QuizS:      NewQuizService(repo, repo, repo, c, clock, log),
		SettingsS:  NewSettingsService(repo, c, log),
		StatsS:     NewStatsService(repo, repo, clock, log),
		AccountS:   NewAccountService(repo, c, log),
	}
}
