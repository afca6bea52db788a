package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cornellnotes/cornell/internal/testutil"
)

func TestNewExportCommand(t *testing.T) {
	cmd := newExportCommand()

	assert.Equal(t, "export SOURCE", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("output"))
	assert.NotNil(t, cmd.Flags().Lookup("from-url"))
}

func TestPdfNameFromSource(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{name: "markdown url", source: "https://example.com/notes/cells.md", expected: "cells.pdf"},
		{name: "url with query", source: "https://example.com/cells.md?raw=1", expected: "cells.pdf"},
		{name: "no extension", source: "https://example.com/cells", expected: "cells.pdf"},
		{name: "bare host", source: "https://example.com/", expected: "notes.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pdfNameFromSource(tt.source))
		})
	}
}

func TestExportCommandWritesIntoExportsDirectory(t *testing.T) {
	tmpDir := useTestConfig(t)
	mdPath := testutil.WriteMarkdownFixture(t, tmpDir)

	cmd := newExportCommand()
	cmd.SetArgs([]string{mdPath})
	require.NoError(t, cmd.Execute())

	out := filepath.Join(tmpDir, "exports", "notes.pdf")
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportCommandRejectsNonMarkdown(t *testing.T) {
	tmpDir := useTestConfig(t)
	txtPath := filepath.Join(tmpDir, "notes.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("text"), 0o644))

	cmd := newExportCommand()
	cmd.SetArgs([]string{txtPath})
	assert.Error(t, cmd.Execute())
}
