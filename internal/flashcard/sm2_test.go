package flashcard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextEaseFactor(t *testing.T) {
	tests := []struct {
		name     string
		ef       float64
		quality  int
		expected float64
	}{
		{
			name:     "quality 5 increases ease factor",
			ef:       2.5,
			quality:  5,
			expected: 2.6,
		},
		{
			name:     "quality 4 keeps ease factor",
			ef:       2.5,
			quality:  4,
			expected: 2.5,
		},
		{
			name:     "quality 3 decreases slightly",
			ef:       2.5,
			quality:  3,
			expected: 2.36,
		},
		{
			name:     "quality 0 full penalty",
			ef:       2.5,
			quality:  0,
			expected: 1.7,
		},
		{
			name:     "never drops below the floor",
			ef:       1.3,
			quality:  0,
			expected: MinEaseFactor,
		},
		{
			name:     "zero ease factor falls back to the default",
			ef:       0,
			quality:  5,
			expected: 2.6,
		},
		{
			name:     "quality above 5 is clamped",
			ef:       2.5,
			quality:  9,
			expected: 2.6,
		},
		{
			name:     "negative quality is clamped to 0",
			ef:       2.5,
			quality:  -3,
			expected: 1.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NextEaseFactor(tt.ef, tt.quality), 0.0001)
		})
	}
}

func TestReviewIntervalProgression(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	card := Flashcard{ID: "card-1", EaseFactor: DefaultEaseFactor}

	// Repeated perfect answers: 1, 6, then round(interval * ef) with a
	// non-decreasing ease factor.
	card = Review(card, 5, now)
	assert.Equal(t, 1, card.Repetitions)
	assert.Equal(t, 1, card.Interval)
	assert.InDelta(t, 2.6, card.EaseFactor, 0.0001)

	card = Review(card, 5, now)
	assert.Equal(t, 2, card.Repetitions)
	assert.Equal(t, 6, card.Interval)
	assert.InDelta(t, 2.7, card.EaseFactor, 0.0001)

	card = Review(card, 5, now)
	assert.Equal(t, 3, card.Repetitions)
	assert.Equal(t, 17, card.Interval) // round(6 * 2.8)
	assert.InDelta(t, 2.8, card.EaseFactor, 0.0001)

	prevEF := card.EaseFactor
	card = Review(card, 5, now)
	assert.Equal(t, 4, card.Repetitions)
	assert.Equal(t, 49, card.Interval) // round(17 * 2.9)
	assert.GreaterOrEqual(t, card.EaseFactor, prevEF)
}

func TestReviewFailureResets(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		card    Flashcard
		quality int
	}{
		{
			name:    "failure on a long streak",
			card:    Flashcard{EaseFactor: 2.8, Interval: 120, Repetitions: 9},
			quality: 0,
		},
		{
			name:    "quality 2 is still a failure",
			card:    Flashcard{EaseFactor: 2.5, Interval: 6, Repetitions: 2},
			quality: 2,
		},
		{
			name:    "failure on a fresh card",
			card:    Flashcard{EaseFactor: 2.5, Interval: 1, Repetitions: 0},
			quality: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := Review(tt.card, tt.quality, now)
			assert.Equal(t, 0, updated.Repetitions)
			assert.Equal(t, 1, updated.Interval)
			require.NotNil(t, updated.NextReview)
			assert.Equal(t, now.AddDate(0, 0, 1), *updated.NextReview)
		})
	}
}

func TestReviewEaseFactorFloor(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	card := Flashcard{EaseFactor: DefaultEaseFactor}

	for i := 0; i < 50; i++ {
		card = Review(card, 0, now)
		assert.GreaterOrEqual(t, card.EaseFactor, MinEaseFactor)
	}
	assert.InDelta(t, MinEaseFactor, card.EaseFactor, 0.0001)
}

func TestReviewTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)
	card := Flashcard{EaseFactor: DefaultEaseFactor}

	updated := Review(card, 4, now)
	require.NotNil(t, updated.LastReviewed)
	require.NotNil(t, updated.NextReview)
	assert.Equal(t, now, *updated.LastReviewed)
	assert.Equal(t, now.AddDate(0, 0, updated.Interval), *updated.NextReview)

	// The input card stays untouched.
	assert.Nil(t, card.LastReviewed)
	assert.Nil(t, card.NextReview)
	assert.Equal(t, 0, card.Repetitions)
}
