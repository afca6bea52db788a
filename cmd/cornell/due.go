package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cornellnotes/cornell/internal/cli"
	"github.com/cornellnotes/cornell/internal/flashcard"
)

func newDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due [DECK_ID]",
		Short: "List flashcards whose review is due",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			deckID := ""
			if len(args) == 1 {
				deckID = args[0]
			}

			repo, err := openDeckRepository(cfg)
			if err != nil {
				return err
			}
			decks, err := repo.List()
			if err != nil {
				return fmt.Errorf("repo.List() > %w", err)
			}

			due := flashcard.DueCards(decks, deckID, time.Now().UTC())
			cli.PrintDueCards(os.Stdout, decks, due)
			return nil
		},
	}
}
