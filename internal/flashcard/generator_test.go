package flashcard

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuestionAnswer(t *testing.T) {
	t.Run("one card per section", func(t *testing.T) {
		doc := "# Topic A\nSome content here.\n# Topic B\nMore content."
		cards := GenerateQuestionAnswer(doc, []string{"biology"})

		require.Len(t, cards, 2)
		assert.Equal(t, "Topic A?", cards[0].Front)
		assert.Equal(t, "Some content here.", cards[0].Back)
		assert.Equal(t, "Topic B?", cards[1].Front)
		assert.Equal(t, "More content.", cards[1].Back)
		for _, card := range cards {
			assert.Equal(t, TypeQuestionAnswer, card.Type)
			assert.Equal(t, []string{"biology"}, card.Tags)
			assert.Equal(t, DefaultEaseFactor, card.EaseFactor)
			assert.Equal(t, 1, card.Interval)
			assert.Equal(t, 0, card.Repetitions)
			assert.Nil(t, card.NextReview)
		}
	})

	t.Run("list items become supplementary cards", func(t *testing.T) {
		doc := "# Cell Biology\nIntro text.\n- mitochondria produce energy for the cell\n- short one\n1. ribosomes assemble proteins from amino acids"
		cards := GenerateQuestionAnswer(doc, nil)

		require.Len(t, cards, 3)
		assert.Equal(t, "Cell Biology?", cards[0].Front)
		assert.Equal(t, "What is mitochondria produce energy...?", cards[1].Front)
		assert.Equal(t, "mitochondria produce energy for the cell", cards[1].Back)
		assert.Equal(t, "What is ribosomes assemble proteins...?", cards[2].Front)
	})

	t.Run("short list items are skipped", func(t *testing.T) {
		doc := "# Heading\ntext\n- tiny item"
		cards := GenerateQuestionAnswer(doc, nil)
		require.Len(t, cards, 1)
	})

	t.Run("sections without content are skipped", func(t *testing.T) {
		doc := "# Empty\n\n# Blank\n   \n# Full\ncontent"
		cards := GenerateQuestionAnswer(doc, nil)
		require.Len(t, cards, 1)
		assert.Equal(t, "Full?", cards[0].Front)
	})

	t.Run("headingless markdown yields nothing", func(t *testing.T) {
		assert.Empty(t, GenerateQuestionAnswer("no headings at all", nil))
		assert.Empty(t, GenerateQuestionAnswer("", nil))
	})
}

func TestGenerateFeynman(t *testing.T) {
	doc := "# Photosynthesis\nPlants convert light into energy."
	cards := GenerateFeynman(doc, []string{"biology", "plants"})

	require.Len(t, cards, 1)
	assert.Equal(t,
		`Explain "Photosynthesis" in simple terms as if teaching someone new to the subject.`,
		cards[0].Front)
	assert.Equal(t, "Plants convert light into energy.", cards[0].Back)
	assert.Equal(t, TypeFeynman, cards[0].Type)
	assert.Equal(t, []string{"biology", "plants"}, cards[0].Tags)
}

func TestGenerateCloze(t *testing.T) {
	t.Run("masks a capitalized term", func(t *testing.T) {
		doc := "# Space\nThe large telescope named Hubble orbits the planet every day."
		cards := GenerateCloze(doc, nil)

		require.NotEmpty(t, cards)
		found := false
		for _, card := range cards {
			if card.Back == "Hubble" {
				found = true
				assert.Contains(t, card.Front, "[...]")
				assert.NotContains(t, card.Front, "Hubble")
				assert.Equal(t, TypeCloze, card.Type)
			}
		}
		assert.True(t, found, "expected a card masking Hubble")
	})

	t.Run("masks only the first whole-word occurrence", func(t *testing.T) {
		doc := "# Code\nThe parseTree builds another parseTree from the token stream."
		cards := GenerateCloze(doc, nil)

		require.NotEmpty(t, cards)
		var card Flashcard
		for _, c := range cards {
			if c.Back == "parseTree" {
				card = c
			}
		}
		require.Equal(t, "parseTree", card.Back)
		assert.Equal(t, 1, strings.Count(card.Front, "[...]"))
		assert.Contains(t, card.Front, "another parseTree")
	})

	t.Run("fallback produces at least one card", func(t *testing.T) {
		// Five or more words, none capitalized past the first, no
		// camelCase, underscores or acronyms.
		doc := "# Notes\nplants convert light into chemical energy slowly."
		cards := GenerateCloze(doc, nil)
		assert.NotEmpty(t, cards)
	})

	t.Run("short sentences are skipped", func(t *testing.T) {
		doc := "# Notes\nToo short here."
		assert.Empty(t, GenerateCloze(doc, nil))
	})

	t.Run("works without a heading requirement", func(t *testing.T) {
		doc := "# \nThe Amazon rainforest spans nine different countries today."
		assert.NotEmpty(t, GenerateCloze(doc, nil))
	})

	t.Run("masks terms whose case folding changes byte length", func(t *testing.T) {
		doc := "# Türkiye\nİstanbul İzmir Ankara Diyarbakır Mersin kentleri büyüktür."
		cards := GenerateCloze(doc, nil)

		require.NotEmpty(t, cards)
		backs := map[string]bool{}
		for _, card := range cards {
			backs[card.Back] = true
			assert.True(t, utf8.ValidString(card.Front), "front %q is not valid UTF-8", card.Front)
			assert.Contains(t, card.Front, "[...]")
			assert.NotContains(t, card.Front, card.Back)
		}
		assert.True(t, backs["İzmir"], "expected a card masking İzmir")
		assert.True(t, backs["Diyarbakır"], "expected a card masking Diyarbakır")
	})
}

func TestGenerateAll(t *testing.T) {
	doc := "# Topic\nThe WHO declared the Ebola outbreak a global emergency."

	t.Run("default runs all generators", func(t *testing.T) {
		cards := GenerateAll(doc, nil)
		types := map[CardType]int{}
		for _, card := range cards {
			types[card.Type]++
		}
		assert.Positive(t, types[TypeQuestionAnswer])
		assert.Positive(t, types[TypeFeynman])
		assert.Positive(t, types[TypeCloze])
	})

	t.Run("restricts to requested types", func(t *testing.T) {
		cards := GenerateAll(doc, nil, TypeFeynman)
		require.Len(t, cards, 1)
		assert.Equal(t, TypeFeynman, cards[0].Type)
	})
}

func TestGeneratedCardIDsAreUnique(t *testing.T) {
	doc := "# A\ncontent one.\n# B\ncontent two.\n# C\ncontent three."
	cards := GenerateAll(doc, nil)

	seen := map[string]struct{}{}
	for _, card := range cards {
		require.NotEmpty(t, card.ID)
		_, dup := seen[card.ID]
		require.False(t, dup, "duplicate card id %s", card.ID)
		seen[card.ID] = struct{}{}
	}
}
