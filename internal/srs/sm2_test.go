package srs

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day1 = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestReview_InvalidQuality(t *testing.T) {
	t.Parallel()

	start := State{ReviewCount: 2, Interval: 6, Ease: 2.6, LastReviewed: day1, NextReview: day1.AddDate(0, 0, 6)}

	for _, quality := range []int{-10, -1, 6, 42} {
		got, err := Review(start, quality, day1.AddDate(0, 0, 7))
		require.ErrorIs(t, err, ErrInvalidQuality)
		assert.Equal(t, start, got, "state must be untouched for quality %d", quality)
	}
}

func TestReview_Lapse(t *testing.T) {
	t.Parallel()

	start := State{ReviewCount: 4, Interval: 37, Ease: 2.21}

	for quality := 0; quality < PassThreshold; quality++ {
		got, err := Review(start, quality, day1)
		require.NoError(t, err)

		assert.Equal(t, 0, got.ReviewCount)
		assert.Equal(t, 1, got.Interval)
		assert.Equal(t, start.Ease, got.Ease, "ease must not change on a lapse")
		assert.Equal(t, day1, got.LastReviewed)
		assert.Equal(t, day1.AddDate(0, 0, 1), got.NextReview)
	}
}

func TestReview_SuccessIntervals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		start        State
		quality      int
		wantCount    int
		wantInterval int
	}{
		{
			name:         "first pass",
			start:        NewState(),
			quality:      3,
			wantCount:    1,
			wantInterval: 1,
		},
		{
			name:         "second pass",
			start:        State{ReviewCount: 1, Interval: 1, Ease: 2.5},
			quality:      4,
			wantCount:    2,
			wantInterval: 6,
		},
		{
			name:         "third pass multiplies by prior ease",
			start:        State{ReviewCount: 2, Interval: 6, Ease: 2.5},
			quality:      5,
			wantCount:    3,
			wantInterval: 15, // floor(6 * 2.5)
		},
		{
			name:         "truncates toward zero",
			start:        State{ReviewCount: 5, Interval: 7, Ease: 1.3},
			quality:      3,
			wantCount:    6,
			wantInterval: 9, // floor(7 * 1.3) = floor(9.1)
		},
		{
			name:         "first pass after lapse restarts at one day",
			start:        State{ReviewCount: 0, Interval: 1, Ease: 1.7},
			quality:      5,
			wantCount:    1,
			wantInterval: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Review(tt.start, tt.quality, day1)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCount, got.ReviewCount)
			assert.Equal(t, tt.wantInterval, got.Interval)
			assert.Equal(t, day1.AddDate(0, 0, tt.wantInterval), got.NextReview)
		})
	}
}

func TestReview_EaseNeverBelowFloor(t *testing.T) {
	t.Parallel()

	for _, ease := range []float64{1.3, 1.31, 1.5, 2.0, 2.5, 3.4} {
		for quality := PassThreshold; quality <= MaxQuality; quality++ {
			got, err := Review(State{Interval: 3, Ease: ease}, quality, day1)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.Ease, 1.3, "ease %.2f quality %d", ease, quality)
		}
	}
}

func TestReview_EaseDeltaByQuality(t *testing.T) {
	t.Parallel()

	// From the SM-2 formula: q=5 -> +0.1, q=4 -> 0, q=3 -> -0.14.
	start := State{ReviewCount: 2, Interval: 6, Ease: 2.5}

	got, err := Review(start, 5, day1)
	require.NoError(t, err)
	assert.InDelta(t, 2.6, got.Ease, 1e-9)

	got, err = Review(start, 4, day1)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got.Ease, 1e-9)

	got, err = Review(start, 3, day1)
	require.NoError(t, err)
	assert.InDelta(t, 2.36, got.Ease, 1e-9)
}

// Walks the exact scenario from the product sign-off notes: a fresh card
// reviewed on three consecutive days with qualities 4, 5, 2.
func TestReview_ThreeDayScenario(t *testing.T) {
	t.Parallel()

	d1 := day1
	d2 := day1.AddDate(0, 0, 1)
	d3 := day1.AddDate(0, 0, 2)

	s, err := Review(NewState(), 4, d1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.ReviewCount)
	assert.Equal(t, 1, s.Interval)
	assert.InDelta(t, 2.5, s.Ease, 1e-9)
	assert.Equal(t, d1, s.LastReviewed)
	assert.Equal(t, d1.AddDate(0, 0, 1), s.NextReview)

	s, err = Review(s, 5, d2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.ReviewCount)
	assert.Equal(t, 6, s.Interval)
	assert.InDelta(t, 2.6, s.Ease, 1e-9)
	assert.Equal(t, d2.AddDate(0, 0, 6), s.NextReview)

	s, err = Review(s, 2, d3)
	require.NoError(t, err)
	assert.Equal(t, 0, s.ReviewCount)
	assert.Equal(t, 1, s.Interval)
	assert.InDelta(t, 2.6, s.Ease, 1e-9, "lapse keeps ease")
	assert.Equal(t, d3.AddDate(0, 0, 1), s.NextReview)
}

// Every state reachable through Review keeps its invariants: ease >= 1.3,
// interval >= 0 and next review = last review + interval days.
func TestReview_InvariantsHoldOverRandomWalk(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))

	s := NewState()
	today := day1
	for i := 0; i < 500; i++ {
		quality := rng.Intn(MaxQuality + 1)
		next, err := Review(s, quality, today)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, next.Ease, 1.3)
		assert.GreaterOrEqual(t, next.Interval, 0)
		assert.Equal(t, today, next.LastReviewed)
		assert.Equal(t, next.LastReviewed.AddDate(0, 0, next.Interval), next.NextReview)
		if quality >= PassThreshold {
			assert.Equal(t, s.ReviewCount+1, next.ReviewCount)
		} else {
			assert.Equal(t, 0, next.ReviewCount)
			assert.Equal(t, s.Ease, next.Ease)
		}

		s = next
		today = today.AddDate(0, 0, 1+rng.Intn(3))
	}
}

func TestStateDue(t *testing.T) {
	t.Parallel()

	assert.True(t, NewState().Due(day1), "never-reviewed card is due immediately")
	assert.True(t, State{NextReview: day1.AddDate(0, 0, -2)}.Due(day1))
	assert.True(t, State{NextReview: day1}.Due(day1), "due today counts as due")
	assert.False(t, State{NextReview: day1.AddDate(0, 0, 1)}.Due(day1))
}
