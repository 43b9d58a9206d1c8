// Package srs implements the SM-2 spaced repetition scheduling rule used by
// the review workflow. The transition function is pure: it reads no clock,
// touches no storage and is safe to call from any number of goroutines.
package srs

import (
	"errors"
	"time"
)

const (
	MinQuality = 0
	MaxQuality = 5

	// PassThreshold is the lowest quality counted as a successful recall.
	PassThreshold = 3

	// DefaultEase is the ease factor of a card that was never reviewed.
	DefaultEase = 2.5

	minEase = 1.3
)

// ErrInvalidQuality is returned for a rating outside [MinQuality, MaxQuality].
var ErrInvalidQuality = errors.New("quality must be an integer between 0 and 5")

// State is the scheduling state embedded in a flashcard.
type State struct {
	// ReviewCount counts consecutive passing reviews since the last lapse.
	ReviewCount int
	// Interval is the number of days until the card is due again.
	Interval int
	// Ease governs interval growth and never drops below 1.3.
	Ease float64
	// LastReviewed and NextReview are zero for a never-reviewed card.
	LastReviewed time.Time
	NextReview   time.Time
}

// NewState is the state of a freshly created card.
func NewState() State {
	return State{Ease: DefaultEase}
}

// Review applies one review with the given quality as of today and returns
// the next state. today is caller-supplied so that scheduling stays
// deterministic and testable.
//
// A lapse (quality < 3) resets the interval to one day and the pass counter
// to zero but leaves the ease factor alone. Leaving ease untouched on a
// lapse diverges from textbook SM-2: a lapsed card restarts its ladder
// without its ease sinking permanently.
func Review(s State, quality int, today time.Time) (State, error) {
	if quality < MinQuality || quality > MaxQuality {
		return s, ErrInvalidQuality
	}

	if quality < PassThreshold {
		s.ReviewCount = 0
		s.Interval = 1
	} else {
		s.ReviewCount++
		switch s.ReviewCount {
		case 1:
			s.Interval = 1
		case 2:
			s.Interval = 6
		default:
			// Interval grows by the ease factor in effect before this
			// review, truncated to whole days.
			s.Interval = int(float64(s.Interval) * s.Ease)
		}

		s.Ease += 0.1 - float64(MaxQuality-quality)*(0.08+float64(MaxQuality-quality)*0.02)
		if s.Ease < minEase {
			s.Ease = minEase
		}
	}

	s.LastReviewed = today
	s.NextReview = today.AddDate(0, 0, s.Interval)

	return s, nil
}

// Due reports whether a card in state s should be shown on the given day.
// Never-reviewed cards are due immediately.
func (s State) Due(today time.Time) bool {
	return s.NextReview.IsZero() || !s.NextReview.After(today)
}
