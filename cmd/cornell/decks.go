package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cornellnotes/cornell/internal/cli"
	"github.com/cornellnotes/cornell/internal/flashcard"
)

func newDecksCommand() *cobra.Command {
	decksCommand := &cobra.Command{
		Use:   "decks",
		Short: "Manage flashcard decks",
	}

	decksCommand.AddCommand(
		newDecksListCommand(),
		newDecksDeleteCommand(),
		newDecksStatsCommand(),
		newDecksHistoryCommand(),
	)

	return decksCommand
}

func newDecksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			repo, err := openDeckRepository(cfg)
			if err != nil {
				return err
			}
			decks, err := repo.List()
			if err != nil {
				return fmt.Errorf("repo.List() > %w", err)
			}

			cli.PrintDecks(os.Stdout, decks)
			return nil
		},
	}
}

func newDecksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DECK_ID",
		Short: "Delete a deck and all its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			repo, err := openDeckRepository(cfg)
			if err != nil {
				return err
			}
			if err := repo.Delete(args[0]); err != nil {
				return fmt.Errorf("repo.Delete(%s) > %w", args[0], err)
			}

			fmt.Printf("Deleted deck %s\n", args[0])
			return nil
		},
	}
}

func newDecksHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history DECK_ID CARD_ID",
		Short: "Show the recorded reviews of one card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			historyRepo, closeHistory, err := openHistory(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeHistory()
			if historyRepo == nil {
				return fmt.Errorf("review history requires a configured database (set database.host)")
			}

			logs, err := historyRepo.FindByCard(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("historyRepo.FindByCard(%s, %s) > %w", args[0], args[1], err)
			}
			cli.PrintReviewLogs(os.Stdout, logs)
			return nil
		},
	}
}

func newDecksStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [DECK_ID]",
		Short: "Show review statistics per deck",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			repo, err := openDeckRepository(cfg)
			if err != nil {
				return err
			}
			decks, err := repo.List()
			if err != nil {
				return fmt.Errorf("repo.List() > %w", err)
			}

			now := time.Now().UTC()
			var stats []flashcard.Stats
			for _, deck := range decks {
				if len(args) == 1 && deck.ID != args[0] {
					continue
				}
				stats = append(stats, flashcard.CalculateStats(deck, now))
			}
			cli.PrintStats(os.Stdout, stats)

			historyRepo, closeHistory, err := openHistory(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeHistory()
			if historyRepo == nil {
				return nil
			}

			for _, s := range stats {
				count, err := historyRepo.CountByDeck(cmd.Context(), s.DeckID)
				if err != nil {
					return fmt.Errorf("historyRepo.CountByDeck(%s) > %w", s.DeckID, err)
				}
				fmt.Printf("%s: %d reviews recorded\n", s.DeckName, count)
			}
			return nil
		},
	}
}
