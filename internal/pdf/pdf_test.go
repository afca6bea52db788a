package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFileRejectsNonMarkdown(t *testing.T) {
	_, err := ConvertFile("notes.txt", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".md extension")
}

func TestConvertFileMissingInput(t *testing.T) {
	_, err := ConvertFile(filepath.Join(t.TempDir(), "missing.md"), "")
	assert.Error(t, err)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("# Title\n\nSome text.\n"), 0o644))

	out, err := ConvertFile(mdPath, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes.pdf"), out)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
