package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cornellnotes/cornell/internal/cli"
)

func newReviewCommand() *cobra.Command {
	var (
		limit     int
		noShuffle bool
	)

	command := &cobra.Command{
		Use:   "review [DECK_ID]",
		Short: "Review due flashcards interactively",
		Long: `Review due flashcards interactively.

Without arguments the session covers due cards from every deck; pass a
deck ID to restrict it. Each card shows its front, waits for Enter,
shows the back and asks for a recall grade from 0 (blackout) to 5
(perfect). Grades feed the SM-2 scheduler and decide when the card
comes back.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			deckID := ""
			if len(args) == 1 {
				deckID = args[0]
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Review.SessionLimit
			}

			repo, err := openDeckRepository(cfg)
			if err != nil {
				return err
			}

			historyRepo, closeHistory, err := openHistory(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeHistory()

			session, err := cli.NewReviewSession(repo, historyRepo, deckID, limit)
			if err != nil {
				return err
			}
			if session.CardCount() == 0 {
				fmt.Println("No cards due. Nothing to review.")
				return nil
			}
			if !noShuffle {
				session.ShuffleCards()
			}

			fmt.Printf("Starting review session with %d cards\n", session.CardCount())
			return session.Run(cmd.Context())
		},
	}

	command.Flags().IntVar(&limit, "limit", 0, "maximum cards in this session (0 = config value)")
	command.Flags().BoolVar(&noShuffle, "no-shuffle", false, "review cards in deck order")

	return command
}
