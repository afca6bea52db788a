package flashcard

import "time"

// Cards with this many consecutive successful reviews have left the
// early learning steps.
const matureRepetitions = 3

// Stats summarizes the review state of one deck.
type Stats struct {
	DeckID         string
	DeckName       string
	TotalCards     int
	DueCards       int
	NewCards       int
	LearningCards  int
	MatureCards    int
	AvgEaseFactor  float64
	LastReviewedAt *time.Time
}

// CalculateStats computes review statistics for a deck snapshot.
func CalculateStats(deck Deck, now time.Time) Stats {
	stats := Stats{
		DeckID:     deck.ID,
		DeckName:   deck.Name,
		TotalCards: len(deck.Cards),
	}

	var efSum float64
	for _, card := range deck.Cards {
		efSum += card.EaseFactor
		if isDue(card, now) {
			stats.DueCards++
		}

		switch {
		case card.LastReviewed == nil:
			stats.NewCards++
		case card.Repetitions >= matureRepetitions:
			stats.MatureCards++
		default:
			stats.LearningCards++
		}

		if card.LastReviewed != nil &&
			(stats.LastReviewedAt == nil || card.LastReviewed.After(*stats.LastReviewedAt)) {
			reviewed := *card.LastReviewed
			stats.LastReviewedAt = &reviewed
		}
	}

	if stats.TotalCards > 0 {
		stats.AvgEaseFactor = efSum / float64(stats.TotalCards)
	}
	return stats
}
