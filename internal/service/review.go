package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/meleongg/flashcard-backend/internal/models"
	"github.com/meleongg/flashcard-backend/internal/srs"
	"go.uber.org/zap"
)

// ErrInvalidRating is returned for a review rating outside [0, 5]. Nothing
// is read or written when it fires.
var ErrInvalidRating = srs.ErrInvalidQuality

type ReviewRI interface {
	CreateReviewSession(ctx context.Context, session models.ReviewSession) error
	ReviewSessionByID(ctx context.Context, userID, sessionID string) (models.ReviewSession, error)
	SaveReviewOutcome(ctx context.Context, card models.Flashcard, event models.ReviewEvent) error
	SessionRatings(ctx context.Context, sessionID string) ([]int, error)
}

type ReviewCardRI interface {
	FlashcardByID(ctx context.Context, userID, cardID string) (models.Flashcard, error)
	DueFlashcards(ctx context.Context, userID string, asOf time.Time) ([]models.Flashcard, error)
}

type ReviewS struct {
	repo  ReviewRI
	cards ReviewCardRI
	clock Clock
	log   *zap.Logger
}

func NewReviewService(repo ReviewRI, cards ReviewCardRI, clock Clock, log *zap.Logger) *ReviewS {
	return &ReviewS{
		repo:  repo,
		cards: cards,
		clock: clock,
		log:   log,
	}
}

// StartSession opens a new review session for the user and returns it.
func (r *ReviewS) StartSession(ctx context.Context, userID string) (models.ReviewSession, error) {
	session := models.ReviewSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: r.clock.Now(),
	}

	if err := r.repo.CreateReviewSession(ctx, session); err != nil {
		return models.ReviewSession{}, err
	}

	r.log.Info("review session started",
		zap.String("session_id", session.ID), zap.String("user_id", userID))

	return session, nil
}

// SubmitReview grades one card inside a session. Preconditions are checked
// in order: rating range, session ownership, card ownership; each failure is
// distinct and leaves no trace. On success the card's scheduling state and
// the audit event are committed together, and the event always carries the
// rating that was actually applied to the card.
func (r *ReviewS) SubmitReview(ctx context.Context, userID, sessionID, cardID string, quality int) (models.Flashcard, error) {
	if quality < srs.MinQuality || quality > srs.MaxQuality {
		return models.Flashcard{}, ErrInvalidRating
	}

	session, err := r.repo.ReviewSessionByID(ctx, userID, sessionID)
	if err != nil {
		return models.Flashcard{}, err
	}

	card, err := r.cards.FlashcardByID(ctx, userID, cardID)
	if err != nil {
		return models.Flashcard{}, err
	}

	state := srs.State{
		ReviewCount: card.ReviewCount,
		Interval:    card.IntervalDays,
		Ease:        card.EaseFactor,
	}
	if card.LastReviewed != nil {
		state.LastReviewed = *card.LastReviewed
	}
	if card.NextReviewDate != nil {
		state.NextReview = *card.NextReviewDate
	}

	next, err := srs.Review(state, quality, r.clock.Today())
	if err != nil {
		return models.Flashcard{}, err
	}

	card.ReviewCount = next.ReviewCount
	card.IntervalDays = next.Interval
	card.EaseFactor = next.Ease
	card.LastReviewed = &next.LastReviewed
	card.NextReviewDate = &next.NextReview

	event := models.ReviewEvent{
		ID:          uuid.NewString(),
		SessionID:   session.ID,
		UserID:      userID,
		FlashcardID: card.ID,
		Rating:      quality,
		CreatedAt:   r.clock.Now(),
	}

	if err := r.repo.SaveReviewOutcome(ctx, card, event); err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to save review outcome: %w", err)
	}

	r.log.Info("review recorded",
		zap.String("session_id", session.ID),
		zap.String("flashcard_id", card.ID),
		zap.Int("rating", quality),
		zap.Int("interval_days", card.IntervalDays))

	return card, nil
}

// DueCards lists the user's cards due today or earlier. Never-reviewed
// cards come first, the rest ascend by due date with card id as tie-break.
func (r *ReviewS) DueCards(ctx context.Context, userID string) ([]models.Flashcard, error) {
	return r.cards.DueFlashcards(ctx, userID, r.clock.Today())
}

// SessionSummary aggregates the events of one owned session. A session with
// no events yields a zero summary with all six rating buckets present.
func (r *ReviewS) SessionSummary(ctx context.Context, userID, sessionID string) (models.SessionSummary, error) {
	session, err := r.repo.ReviewSessionByID(ctx, userID, sessionID)
	if err != nil {
		return models.SessionSummary{}, err
	}

	ratings, err := r.repo.SessionRatings(ctx, session.ID)
	if err != nil {
		return models.SessionSummary{}, err
	}

	summary := models.SessionSummary{
		SessionID:        session.ID,
		UserID:           session.UserID,
		TotalCards:       len(ratings),
		RatingsBreakdown: make(map[int]int, srs.MaxQuality+1),
		StartedAt:        session.CreatedAt,
	}
	for q := srs.MinQuality; q <= srs.MaxQuality; q++ {
		summary.RatingsBreakdown[q] = 0
	}

	if len(ratings) == 0 {
		return summary, nil
	}

	var sum int
	for _, rating := range ratings {
		sum += rating
		summary.RatingsBreakdown[rating]++
	}
	summary.AverageRating = math.Round(float64(sum)/float64(len(ratings))*100) / 100

	return summary, nil
}
