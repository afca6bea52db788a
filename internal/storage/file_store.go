package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per key under a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the value stored under key, or nil if none exists yet.
func (s *FileStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", key, err)
	}
	return data, nil
}

// Save writes the value under key. The write goes through a temp file
// and a rename so a crash never leaves a half-written value behind.
func (s *FileStore) Save(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp() > %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("tmp.Write() > %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("tmp.Close() > %w", err)
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("os.Rename(%s) > %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
