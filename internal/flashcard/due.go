package flashcard

import "time"

// DueCard pairs a due flashcard with the ID of the deck that owns it.
type DueCard struct {
	Card   Flashcard
	DeckID string
}

// DueCards returns every card whose next review has arrived or was
// never scheduled. A non-empty deckID restricts the scan to that deck;
// an unknown deckID yields an empty result. Decks and cards keep their
// input order, so the result is deterministic for a fixed snapshot.
// The query never mutates card state.
func DueCards(decks []Deck, deckID string, now time.Time) []DueCard {
	var due []DueCard
	for _, deck := range decks {
		if deckID != "" && deck.ID != deckID {
			continue
		}
		for _, card := range deck.Cards {
			if isDue(card, now) {
				due = append(due, DueCard{Card: card, DeckID: deck.ID})
			}
		}
	}
	return due
}

// isDue uses an inclusive comparison on parsed instants: a card whose
// next review is exactly now is already due.
func isDue(card Flashcard, now time.Time) bool {
	return card.NextReview == nil || !card.NextReview.After(now)
}
