// Package markdown splits note documents into top-level sections and
// provides the line and sentence scanners the flashcard generators build on.
package markdown

import (
	"strings"
	"unicode"
)

const headingPrefix = "# "

// Section is one top-level region of a document: a heading line and
// everything up to the next heading line.
type Section struct {
	Heading string
	Content string
}

// ParseSections splits a document on lines starting with "# ".
// Text before the first heading is discarded, content lines are kept
// verbatim, and a document without headings yields no sections.
func ParseSections(doc string) []Section {
	var (
		sections  []Section
		heading   string
		content   []string
		inSection bool
	)

	flush := func() {
		if !inSection {
			return
		}
		sections = append(sections, Section{
			Heading: heading,
			Content: strings.Join(content, "\n"),
		})
	}

	// No scanner here: documents can carry arbitrarily long lines and
	// must never be truncated.
	lines := strings.Split(doc, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, headingPrefix) {
			flush()
			heading = strings.TrimSpace(line[len(headingPrefix):])
			content = nil
			inSection = true
			continue
		}
		if inSection {
			content = append(content, line)
		}
	}
	flush()

	return sections
}

// ListItems returns the text of every bulleted ("-", "*", "•") or
// numbered ("1.") list item in content, with the marker stripped.
func ListItems(content string) []string {
	var items []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if item, ok := listItemText(trimmed); ok {
			items = append(items, item)
		}
	}
	return items
}

func listItemText(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):]), true
		}
	}

	// Numbered items: one or more digits, a dot, then the item text.
	digits := 0
	for _, r := range line {
		if !unicode.IsDigit(r) {
			break
		}
		digits++
	}
	if digits == 0 || digits >= len(line) || line[digits] != '.' {
		return "", false
	}
	rest := strings.TrimSpace(line[digits+1:])
	if rest == "" {
		return "", false
	}
	return rest, true
}

// SplitSentences splits text into sentences on ".", "!" and "?".
// The terminator stays attached to its sentence and a trailing run
// without a terminator still counts as a sentence.
func SplitSentences(text string) []string {
	var (
		sentences []string
		current   strings.Builder
	)

	flush := func() {
		s := strings.TrimSpace(current.String())
		current.Reset()
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()

	return sentences
}
