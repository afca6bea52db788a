package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cornellnotes/cornell/internal/flashcard"
	"github.com/cornellnotes/cornell/internal/history"
)

const maxFrontPreview = 60

// PrintDueCards writes a table of due cards grouped under their decks.
func PrintDueCards(w io.Writer, decks []flashcard.Deck, due []flashcard.DueCard) {
	if len(due) == 0 {
		fmt.Fprintln(w, "No cards due. Nothing to review.")
		return
	}

	names := deckNames(decks)
	fmt.Fprintf(w, "%d cards due:\n\n", len(due))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DECK\tTYPE\tFRONT")
	for _, d := range due {
		name := names[d.DeckID]
		if name == "" {
			name = d.DeckID
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, d.Card.Type, preview(d.Card.Front))
	}
	_ = tw.Flush()
}

// PrintDecks writes a table of all decks with their card counts.
func PrintDecks(w io.Writer, decks []flashcard.Deck) {
	if len(decks) == 0 {
		fmt.Fprintln(w, "No decks yet. Generate one with: cornell generate NOTES.md")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCARDS\tUPDATED")
	for _, deck := range decks {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			deck.ID, deck.Name, len(deck.Cards), deck.UpdatedAt.Format("2006-01-02 15:04"))
	}
	_ = tw.Flush()
}

// PrintStats writes per-deck review statistics.
func PrintStats(w io.Writer, stats []flashcard.Stats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No decks yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DECK\tTOTAL\tDUE\tNEW\tLEARNING\tMATURE\tAVG EF")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%.2f\n",
			s.DeckName, s.TotalCards, s.DueCards, s.NewCards, s.LearningCards, s.MatureCards, s.AvgEaseFactor)
	}
	_ = tw.Flush()
}

// PrintReviewLogs writes the recorded reviews of one card, oldest
// first.
func PrintReviewLogs(w io.Writer, logs []history.ReviewLog) {
	if len(logs) == 0 {
		fmt.Fprintln(w, "No reviews recorded for this card.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REVIEWED\tGRADE\tEF\tINTERVAL")
	for _, log := range logs {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s\n",
			log.ReviewedAt.Format("2006-01-02 15:04"), log.Quality, log.EaseFactor, formatDays(log.Interval))
	}
	_ = tw.Flush()
}

func deckNames(decks []flashcard.Deck) map[string]string {
	names := make(map[string]string, len(decks))
	for _, deck := range decks {
		names[deck.ID] = deck.Name
	}
	return names
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= maxFrontPreview {
		return s
	}
	return string(runes[:maxFrontPreview-3]) + "..."
}
