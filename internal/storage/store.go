// Package storage persists flashcard decks through a small key-value
// store abstraction. The store mirrors the browser application's
// localStorage boundary: one opaque JSON value per key.
package storage

//go:generate mockgen -source=store.go -destination=mock/mock_store.go -package=mock_storage Store

// Store is the key-value collaborator decks are persisted through.
// Load returns nil without an error when the key has never been saved.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}
