// Package pdf renders markdown notes to PDF files.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// Convert renders markdown content to a PDF at pdfPath and returns the
// absolute output path.
func Convert(content []byte, pdfPath string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(pdfPath), 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(pdfPath), err)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// ConvertFile renders a markdown file to PDF. With an empty pdfPath the
// output lands next to the input with a .pdf extension.
func ConvertFile(markdownPath, pdfPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	if pdfPath == "" {
		pdfPath = strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	}
	return Convert(content, pdfPath)
}
