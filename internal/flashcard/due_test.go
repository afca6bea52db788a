package flashcard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestDueCards(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	neverReviewed := Flashcard{ID: "never"}
	overdue := Flashcard{ID: "overdue", NextReview: timePtr(now.AddDate(0, 0, -3))}
	dueNow := Flashcard{ID: "due-now", NextReview: timePtr(now)}
	future := Flashcard{ID: "future", NextReview: timePtr(now.Add(time.Second))}

	decks := []Deck{
		{ID: "deck-1", Cards: []Flashcard{neverReviewed, future}},
		{ID: "deck-2", Cards: []Flashcard{overdue, dueNow}},
	}

	t.Run("scans all decks", func(t *testing.T) {
		due := DueCards(decks, "", now)
		require.Len(t, due, 3)
		assert.Equal(t, "never", due[0].Card.ID)
		assert.Equal(t, "deck-1", due[0].DeckID)
		assert.Equal(t, "overdue", due[1].Card.ID)
		assert.Equal(t, "due-now", due[2].Card.ID)
		assert.Equal(t, "deck-2", due[2].DeckID)
	})

	t.Run("next review exactly now is included", func(t *testing.T) {
		due := DueCards([]Deck{{ID: "d", Cards: []Flashcard{dueNow}}}, "", now)
		require.Len(t, due, 1)
	})

	t.Run("one second in the future is excluded", func(t *testing.T) {
		due := DueCards([]Deck{{ID: "d", Cards: []Flashcard{future}}}, "", now)
		assert.Empty(t, due)
	})

	t.Run("restricts to a single deck", func(t *testing.T) {
		due := DueCards(decks, "deck-2", now)
		require.Len(t, due, 2)
		for _, d := range due {
			assert.Equal(t, "deck-2", d.DeckID)
		}
	})

	t.Run("unknown deck id yields empty result", func(t *testing.T) {
		assert.Empty(t, DueCards(decks, "missing", now))
	})

	t.Run("repeated calls are deterministic", func(t *testing.T) {
		first := DueCards(decks, "", now)
		second := DueCards(decks, "", now)
		assert.Equal(t, first, second)
	})

	t.Run("does not mutate cards", func(t *testing.T) {
		DueCards(decks, "", now)
		assert.Nil(t, decks[0].Cards[0].NextReview)
		assert.Equal(t, now, *decks[1].Cards[1].NextReview)
	})
}
