package flashcard

import (
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	// Quality grades below this reset the card's learning progress.
	passingQuality = 3
)

// NextEaseFactor calculates the new ease factor for a quality grade
// using the SM-2 formula. The result never drops below MinEaseFactor.
func NextEaseFactor(ef float64, quality int) float64 {
	if ef == 0 {
		ef = DefaultEaseFactor
	}

	q := float64(clampQuality(quality))
	next := ef + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	return math.Max(next, MinEaseFactor)
}

// Review applies one SM-2 review step to a card and returns the updated
// copy. The input card is not mutated; callers persist the result.
//
// quality is clamped into [0, 5]. A failing grade (< 3) resets the
// repetition streak and schedules the card for tomorrow; a passing
// grade grows the interval as 1, 6, then round(interval * ease factor).
// The ease factor is updated on every review, including failures.
func Review(card Flashcard, quality int, now time.Time) Flashcard {
	quality = clampQuality(quality)
	card.EaseFactor = NextEaseFactor(card.EaseFactor, quality)

	if quality < passingQuality {
		card.Repetitions = 0
		card.Interval = 1
	} else {
		card.Repetitions++
		switch card.Repetitions {
		case 1:
			card.Interval = 1
		case 2:
			card.Interval = 6
		default:
			// Interval growth uses the updated ease factor and the
			// previous interval.
			card.Interval = int(math.Round(float64(card.Interval) * card.EaseFactor))
		}
	}
	if card.Interval < 1 {
		card.Interval = 1
	}

	reviewed := now
	next := now.AddDate(0, 0, card.Interval)
	card.LastReviewed = &reviewed
	card.NextReview = &next
	return card
}

func clampQuality(quality int) int {
	if quality < 0 {
		return 0
	}
	if quality > 5 {
		return 5
	}
	return quality
}
