package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cornellnotes/cornell/internal/flashcard"
)

func newGenerateCommand() *cobra.Command {
	var (
		deckName    string
		description string
		tags        []string
		types       []string
		fromURL     bool
	)

	command := &cobra.Command{
		Use:   "generate SOURCE",
		Short: "Generate a flashcard deck from a markdown document",
		Long: `Generate a flashcard deck from a markdown document.

SOURCE is a local markdown file, or a URL when --from-url is given.
Every top-level section ("# Heading") of the document becomes one or
more cards, depending on the selected generator types.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			source := args[0]
			doc, err := readDocument(cmd.Context(), source, fromURL, cfg)
			if err != nil {
				return err
			}

			cardTypes, err := parseCardTypes(types)
			if err != nil {
				return err
			}

			cards := flashcard.GenerateAll(doc, tags, cardTypes...)
			if len(cards) == 0 {
				fmt.Println("No cards could be generated. The document needs top-level \"# \" headings with content.")
				return nil
			}

			if deckName == "" {
				deckName = deckNameFromSource(source)
			}

			repo, err := openDeckRepository(cfg)
			if err != nil {
				return err
			}

			deck := flashcard.NewDeck(deckName, description, source)
			deck.AddCards(cards...)
			if err := repo.Save(deck); err != nil {
				return fmt.Errorf("repo.Save() > %w", err)
			}

			fmt.Printf("Created deck %q (%s) with %d cards\n", deck.Name, deck.ID, len(deck.Cards))
			return nil
		},
	}

	command.Flags().StringVar(&deckName, "deck", "", "deck name (defaults to the source file name)")
	command.Flags().StringVar(&description, "description", "", "deck description")
	command.Flags().StringSliceVar(&tags, "tags", nil, "tags attached to every generated card")
	command.Flags().StringSliceVar(&types, "types", nil, "generator types: qa, feynman, cloze (default all)")
	command.Flags().BoolVar(&fromURL, "from-url", false, "treat SOURCE as a URL and download it")

	return command
}

// parseCardTypes translates the --types flag values. An empty list
// selects every generator.
func parseCardTypes(values []string) ([]flashcard.CardType, error) {
	var cardTypes []flashcard.CardType
	for _, value := range values {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "qa", "question-answer":
			cardTypes = append(cardTypes, flashcard.TypeQuestionAnswer)
		case "feynman":
			cardTypes = append(cardTypes, flashcard.TypeFeynman)
		case "cloze":
			cardTypes = append(cardTypes, flashcard.TypeCloze)
		default:
			return nil, fmt.Errorf("unknown card type %q (valid: qa, feynman, cloze)", value)
		}
	}
	return cardTypes, nil
}

func deckNameFromSource(source string) string {
	base := filepath.Base(source)
	if idx := strings.Index(base, "?"); idx >= 0 {
		base = base[:idx]
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == "/" {
		return "Imported notes"
	}
	return name
}
