// Package flashcard contains the card and deck domain model, the
// generators that derive cards from markdown notes, the SM-2 review
// scheduler and the due-card query.
package flashcard

import (
	"time"

	"github.com/google/uuid"
)

// CardType identifies the generation strategy a card was created with.
// It is fixed at creation time.
type CardType string

const (
	TypeQuestionAnswer CardType = "question-answer"
	TypeFeynman        CardType = "feynman"
	TypeCloze          CardType = "cloze"
)

// Flashcard is a single reviewable card. The JSON field names match the
// shape the browser application stores under its localStorage key, so
// exported decks round-trip unchanged.
type Flashcard struct {
	ID           string     `json:"id"`
	Type         CardType   `json:"type"`
	Front        string     `json:"front"`
	Back         string     `json:"back"`
	Notes        string     `json:"notes,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastReviewed *time.Time `json:"lastReviewed,omitempty"`
	NextReview   *time.Time `json:"nextReview,omitempty"`
	EaseFactor   float64    `json:"easeFactor"`
	Interval     int        `json:"interval"`
	Repetitions  int        `json:"repetitions"`
}

func newCard(cardType CardType, front, back, notes string, tags []string) Flashcard {
	return Flashcard{
		ID:          uuid.NewString(),
		Type:        cardType,
		Front:       front,
		Back:        back,
		Notes:       notes,
		Tags:        append([]string(nil), tags...),
		CreatedAt:   time.Now().UTC(),
		EaseFactor:  DefaultEaseFactor,
		Interval:    1,
		Repetitions: 0,
	}
}

// Deck owns an ordered set of cards. Cards are never shared across
// decks; deleting a deck deletes its cards with it.
type Deck struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description,omitempty"`
	Cards            []Flashcard `json:"cards"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
	SourceDocumentID string      `json:"sourceDocumentId,omitempty"`
}

// NewDeck creates an empty deck. sourceDocumentID records which document
// the deck was generated from and may be empty.
func NewDeck(name, description, sourceDocumentID string) Deck {
	now := time.Now().UTC()
	return Deck{
		ID:               uuid.NewString(),
		Name:             name,
		Description:      description,
		Cards:            []Flashcard{},
		CreatedAt:        now,
		UpdatedAt:        now,
		SourceDocumentID: sourceDocumentID,
	}
}

// AddCards appends cards to the deck.
func (d *Deck) AddCards(cards ...Flashcard) {
	d.Cards = append(d.Cards, cards...)
	d.touch()
}

// UpdateCard replaces the card with the same ID in place. It reports
// whether a card with that ID was found.
func (d *Deck) UpdateCard(card Flashcard) bool {
	for i := range d.Cards {
		if d.Cards[i].ID == card.ID {
			d.Cards[i] = card
			d.touch()
			return true
		}
	}
	return false
}

// RemoveCard removes the card with the given ID. It reports whether a
// card with that ID was found.
func (d *Deck) RemoveCard(cardID string) bool {
	for i := range d.Cards {
		if d.Cards[i].ID == cardID {
			d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
			d.touch()
			return true
		}
	}
	return false
}

// CardByID returns the card with the given ID, if present.
func (d *Deck) CardByID(cardID string) (Flashcard, bool) {
	for _, card := range d.Cards {
		if card.ID == cardID {
			return card, true
		}
	}
	return Flashcard{}, false
}

func (d *Deck) touch() {
	d.UpdatedAt = time.Now().UTC()
}
