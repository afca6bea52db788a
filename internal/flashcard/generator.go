package flashcard

import (
	"strings"

	"github.com/cornellnotes/cornell/internal/markdown"
)

const (
	// List items shorter than this are too thin to ask about.
	minListItemLength = 10

	// Sentences need at least this many words to make a useful cloze.
	minClozeSentenceWords = 5

	// Masked terms must be longer than this.
	minClozeTermLength = 3
)

// GenerateQuestionAnswer derives question-answer cards from a markdown
// document. Every section with a heading and content becomes one card
// asking "<heading>?", and every sufficiently long list item becomes a
// supplementary "What is ...?" card.
func GenerateQuestionAnswer(doc string, tags []string) []Flashcard {
	var cards []Flashcard
	for _, section := range markdown.ParseSections(doc) {
		content := strings.TrimSpace(section.Content)
		if section.Heading == "" || content == "" {
			continue
		}

		cards = append(cards, newCard(
			TypeQuestionAnswer,
			section.Heading+"?",
			content,
			sectionNotes(section.Heading),
			tags,
		))

		for _, item := range markdown.ListItems(section.Content) {
			if len(item) <= minListItemLength {
				continue
			}
			cards = append(cards, newCard(
				TypeQuestionAnswer,
				"What is "+firstWords(item, 3)+"...?",
				item,
				sectionNotes(section.Heading),
				tags,
			))
		}
	}
	return cards
}

// GenerateFeynman derives one "explain it simply" card per section with
// a heading and content.
func GenerateFeynman(doc string, tags []string) []Flashcard {
	var cards []Flashcard
	for _, section := range markdown.ParseSections(doc) {
		content := strings.TrimSpace(section.Content)
		if section.Heading == "" || content == "" {
			continue
		}

		cards = append(cards, newCard(
			TypeFeynman,
			`Explain "`+section.Heading+`" in simple terms as if teaching someone new to the subject.`,
			content,
			sectionNotes(section.Heading),
			tags,
		))
	}
	return cards
}

// GenerateCloze derives cloze-deletion cards from a markdown document.
// Each sentence with enough words contributes one card per extracted
// key term, with the term's first whole-word occurrence masked as [...].
func GenerateCloze(doc string, tags []string) []Flashcard {
	var cards []Flashcard
	for _, section := range markdown.ParseSections(doc) {
		if strings.TrimSpace(section.Content) == "" {
			continue
		}

		for _, sentence := range markdown.SplitSentences(section.Content) {
			if len(strings.Fields(sentence)) < minClozeSentenceWords {
				continue
			}
			for _, term := range extractKeyTerms(sentence) {
				if len(term) <= minClozeTermLength {
					continue
				}
				masked, ok := maskTerm(sentence, term)
				if !ok {
					continue
				}
				cards = append(cards, newCard(
					TypeCloze,
					masked,
					term,
					sectionNotes(section.Heading),
					tags,
				))
			}
		}
	}
	return cards
}

// GenerateAll runs every generator whose type is listed in types, in
// the given order. An empty types list runs all three.
func GenerateAll(doc string, tags []string, types ...CardType) []Flashcard {
	if len(types) == 0 {
		types = []CardType{TypeQuestionAnswer, TypeFeynman, TypeCloze}
	}

	var cards []Flashcard
	for _, cardType := range types {
		switch cardType {
		case TypeQuestionAnswer:
			cards = append(cards, GenerateQuestionAnswer(doc, tags)...)
		case TypeFeynman:
			cards = append(cards, GenerateFeynman(doc, tags)...)
		case TypeCloze:
			cards = append(cards, GenerateCloze(doc, tags)...)
		}
	}
	return cards
}

func sectionNotes(heading string) string {
	if heading == "" {
		return "Generated from notes"
	}
	return "Generated from section: " + heading
}

// firstWords returns the first n whitespace-separated words of s.
func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
