// Package testutil provides shared test helpers for creating config
// files, note documents and deck fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cornellnotes/cornell/internal/flashcard"
	"github.com/cornellnotes/cornell/internal/storage"
)

// SampleMarkdown is a small note document that produces cards from all
// three generators.
const SampleMarkdown = `# Cell Biology
The nucleus of a Eukaryote holds the genetic material.
- mitochondria produce energy for the cell
- ribosomes assemble proteins from amino acids

# Photosynthesis
Plants convert light into chemical energy.
`

// SetupTestConfig creates a minimal config file and the directories it
// points at. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"decks", "exports"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0o755))
	}

	configContent := fmt.Sprintf(`storage:
  data_directory: %s
exports:
  directory: %s
`,
		filepath.Join(tmpDir, "decks"),
		filepath.Join(tmpDir, "exports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0o644))
	return cfgPath
}

// WriteMarkdownFixture writes SampleMarkdown into tmpDir and returns
// the file path.
func WriteMarkdownFixture(t *testing.T, tmpDir string) string {
	t.Helper()

	path := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte(SampleMarkdown), 0o644))
	return path
}

// CreateDeckFixture persists a deck generated from SampleMarkdown into
// the data directory and returns it together with its repository.
func CreateDeckFixture(t *testing.T, dataDir string) (*storage.DeckRepository, flashcard.Deck) {
	t.Helper()

	store, err := storage.NewFileStore(dataDir)
	require.NoError(t, err)
	repo := storage.NewDeckRepository(store)

	deck := flashcard.NewDeck("Sample", "generated for tests", "notes.md")
	deck.AddCards(flashcard.GenerateAll(SampleMarkdown, []string{"sample"})...)
	require.NoError(t, repo.Save(deck))
	return repo, deck
}
