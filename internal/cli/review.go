// Package cli implements the interactive review session and the
// terminal output for due cards, decks and statistics.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/cornellnotes/cornell/internal/flashcard"
	"github.com/cornellnotes/cornell/internal/history"
	"github.com/cornellnotes/cornell/internal/storage"
)

var errEnd = errors.New("session ended")

// ReviewSession walks the user through the due cards of one or all
// decks, grading each answer and persisting the updated scheduling
// state after every card.
type ReviewSession struct {
	repo    *storage.DeckRepository
	history history.Repository // nil when review history is disabled

	queue    []flashcard.DueCard
	reviewed int

	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	now          func() time.Time
}

// NewReviewSession loads all decks and queues their due cards. A
// non-empty deckID restricts the session to one deck; limit > 0 caps
// the number of cards.
func NewReviewSession(
	repo *storage.DeckRepository,
	historyRepo history.Repository,
	deckID string,
	limit int,
) (*ReviewSession, error) {
	decks, err := repo.List()
	if err != nil {
		return nil, fmt.Errorf("repo.List() > %w", err)
	}

	queue := flashcard.DueCards(decks, deckID, time.Now().UTC())
	if limit > 0 && len(queue) > limit {
		queue = queue[:limit]
	}

	return &ReviewSession{
		repo:         repo,
		history:      historyRepo,
		queue:        queue,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		now:          func() time.Time { return time.Now().UTC() },
	}, nil
}

// ShuffleCards shuffles the queued cards.
func (r *ReviewSession) ShuffleCards() {
	rand.Shuffle(len(r.queue), func(i, j int) {
		r.queue[i], r.queue[j] = r.queue[j], r.queue[i]
	})
}

// CardCount returns the number of cards left in the session.
func (r *ReviewSession) CardCount() int {
	return len(r.queue)
}

// Run drives the session until the queue is empty, the user quits, or
// an interrupt arrives.
func (r *ReviewSession) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := r.session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(r.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// session reviews a single card.
func (r *ReviewSession) session(ctx context.Context) error {
	if len(r.queue) == 0 {
		fmt.Fprintf(r.stdoutWriter, "No more cards to review. Reviewed %d in this session.\n", r.reviewed)
		return errEnd
	}
	current := r.queue[0]

	fmt.Fprintln(r.stdoutWriter)
	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", current.Card.Front)
	fmt.Fprint(r.stdoutWriter, "Press Enter to reveal the answer (q to quit): ")

	line, err := r.readLine()
	if err != nil {
		return err
	}
	if line == "q" || line == "quit" {
		fmt.Fprintf(r.stdoutWriter, "Stopped after %d cards.\n", r.reviewed)
		return errEnd
	}

	_, _ = r.italic.Fprintf(r.stdoutWriter, "%s\n", current.Card.Back)

	quality, err := r.readQuality()
	if err != nil {
		return err
	}

	updated := flashcard.Review(current.Card, quality, r.now())
	if err := r.persist(ctx, current.DeckID, updated, quality); err != nil {
		return err
	}

	if quality >= 3 {
		_, _ = color.New(color.FgGreen).Fprintf(r.stdoutWriter,
			"✅ Next review in %s.\n", formatDays(updated.Interval))
	} else {
		_, _ = color.New(color.FgRed).Fprintf(r.stdoutWriter,
			"❌ Back to the start, next review tomorrow.\n")
	}

	r.queue = r.queue[1:]
	r.reviewed++
	return nil
}

// readQuality prompts until the user enters an integer grade. The
// scheduler clamps out-of-range values, so any integer is accepted.
func (r *ReviewSession) readQuality() (int, error) {
	for {
		fmt.Fprint(r.stdoutWriter, "How well did you recall it? (0=blackout ... 5=perfect): ")
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}

		quality, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(r.stdoutWriter, "Please enter a number between 0 and 5.")
			continue
		}
		return quality, nil
	}
}

func (r *ReviewSession) readLine() (string, error) {
	line, err := r.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", errEnd
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// persist saves the updated card into its deck and records the review
// in history when enabled.
func (r *ReviewSession) persist(ctx context.Context, deckID string, card flashcard.Flashcard, quality int) error {
	deck, err := r.repo.Get(deckID)
	if err != nil {
		return fmt.Errorf("repo.Get(%s) > %w", deckID, err)
	}
	if !deck.UpdateCard(card) {
		return fmt.Errorf("card %s not found in deck %s", card.ID, deckID)
	}
	if err := r.repo.Save(deck); err != nil {
		return fmt.Errorf("repo.Save(%s) > %w", deckID, err)
	}

	if r.history == nil {
		return nil
	}
	log := &history.ReviewLog{
		DeckID:     deckID,
		CardID:     card.ID,
		Quality:    quality,
		EaseFactor: card.EaseFactor,
		Interval:   card.Interval,
		ReviewedAt: *card.LastReviewed,
	}
	if err := r.history.Create(ctx, log); err != nil {
		return fmt.Errorf("history.Create() > %w", err)
	}
	return nil
}

func formatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
