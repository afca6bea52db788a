package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cornellnotes/cornell/internal/config"
	"github.com/cornellnotes/cornell/internal/database"
	"github.com/cornellnotes/cornell/internal/fetch"
	"github.com/cornellnotes/cornell/internal/history"
	"github.com/cornellnotes/cornell/internal/storage"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openDeckRepository(cfg *config.Config) (*storage.DeckRepository, error) {
	store, err := storage.NewFileStore(cfg.Storage.DataDirectory)
	if err != nil {
		return nil, fmt.Errorf("storage.NewFileStore(%s) > %w", cfg.Storage.DataDirectory, err)
	}
	return storage.NewDeckRepository(store), nil
}

// openHistory returns the review-history repository when the database
// is configured, or nil when the feature is off. The returned close
// function is always safe to call.
func openHistory(ctx context.Context, cfg *config.Config) (history.Repository, func(), error) {
	if !cfg.Database.Enabled() {
		return nil, func() {}, nil
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, func() {}, fmt.Errorf("database.Open() > %w", err)
	}
	closeDB := func() { _ = db.Close() }

	repo := history.NewDBRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		closeDB()
		return nil, func() {}, fmt.Errorf("repo.EnsureSchema() > %w", err)
	}
	return repo, closeDB, nil
}

func newFetchClient(cfg *config.Config) *fetch.Client {
	return fetch.NewClient(time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second)
}

// readDocument loads the markdown source, either from disk or over
// HTTP when fromURL is set.
func readDocument(ctx context.Context, source string, fromURL bool, cfg *config.Config) (string, error) {
	if fromURL {
		doc, err := newFetchClient(cfg).Document(ctx, source)
		if err != nil {
			return "", fmt.Errorf("fetch.Document(%s) > %w", source, err)
		}
		return doc, nil
	}

	content, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", source, err)
	}
	return string(content), nil
}
