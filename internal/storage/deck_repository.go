package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cornellnotes/cornell/internal/flashcard"
)

// DeckKey is the storage key all decks live under, as a single JSON
// array. The name matches the browser application's localStorage key.
const DeckKey = "cornell-notes-flashcards"

// ErrDeckNotFound is returned when a deck ID does not exist.
var ErrDeckNotFound = errors.New("deck not found")

// PersistenceError wraps any failure from the underlying store or from
// (de)serialization, so callers can tell storage failures apart from
// domain errors.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// DeckRepository reads and writes whole decks through a Store. Every
// mutation is a read-modify-write of the full deck array, written back
// in one Save call, so a failed write never corrupts stored decks.
// Callers are expected to serialize concurrent mutations themselves.
type DeckRepository struct {
	store Store
	key   string
}

// NewDeckRepository creates a repository over the given store.
func NewDeckRepository(store Store) *DeckRepository {
	return &DeckRepository{store: store, key: DeckKey}
}

// List returns all persisted decks. A never-written key yields an
// empty slice.
func (r *DeckRepository) List() ([]flashcard.Deck, error) {
	data, err := r.store.Load(r.key)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Key: r.key, Err: err}
	}
	if data == nil {
		return []flashcard.Deck{}, nil
	}

	var decks []flashcard.Deck
	if err := json.Unmarshal(data, &decks); err != nil {
		return nil, &PersistenceError{Op: "decode", Key: r.key, Err: err}
	}
	return decks, nil
}

// Get returns the deck with the given ID.
func (r *DeckRepository) Get(id string) (flashcard.Deck, error) {
	decks, err := r.List()
	if err != nil {
		return flashcard.Deck{}, err
	}
	for _, deck := range decks {
		if deck.ID == id {
			return deck, nil
		}
	}
	return flashcard.Deck{}, fmt.Errorf("deck %q > %w", id, ErrDeckNotFound)
}

// Save inserts the deck, or replaces the stored deck with the same ID.
func (r *DeckRepository) Save(deck flashcard.Deck) error {
	decks, err := r.List()
	if err != nil {
		return err
	}

	replaced := false
	for i := range decks {
		if decks[i].ID == deck.ID {
			decks[i] = deck
			replaced = true
			break
		}
	}
	if !replaced {
		decks = append(decks, deck)
	}

	return r.write(decks)
}

// Delete removes the deck and all its cards.
func (r *DeckRepository) Delete(id string) error {
	decks, err := r.List()
	if err != nil {
		return err
	}

	kept := decks[:0]
	for _, deck := range decks {
		if deck.ID != id {
			kept = append(kept, deck)
		}
	}
	if len(kept) == len(decks) {
		return fmt.Errorf("deck %q > %w", id, ErrDeckNotFound)
	}

	return r.write(kept)
}

func (r *DeckRepository) write(decks []flashcard.Deck) error {
	data, err := json.Marshal(decks)
	if err != nil {
		return &PersistenceError{Op: "encode", Key: r.key, Err: err}
	}
	if err := r.store.Save(r.key, data); err != nil {
		return &PersistenceError{Op: "save", Key: r.key, Err: err}
	}
	return nil
}
