package main

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cornellnotes/cornell/internal/pdf"
)

func newExportCommand() *cobra.Command {
	var (
		outputPath string
		fromURL    bool
	)

	command := &cobra.Command{
		Use:   "export SOURCE",
		Short: "Export a markdown document as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			source := args[0]

			if fromURL {
				doc, err := readDocument(cmd.Context(), source, true, cfg)
				if err != nil {
					return err
				}
				if outputPath == "" {
					outputPath = filepath.Join(cfg.Exports.Directory, pdfNameFromSource(source))
				}
				written, err := pdf.Convert([]byte(doc), outputPath)
				if err != nil {
					return fmt.Errorf("pdf.Convert() > %w", err)
				}
				fmt.Printf("Exported %s\n", written)
				return nil
			}

			if outputPath == "" {
				base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + ".pdf"
				outputPath = filepath.Join(cfg.Exports.Directory, base)
			}
			written, err := pdf.ConvertFile(source, outputPath)
			if err != nil {
				return fmt.Errorf("pdf.ConvertFile(%s) > %w", source, err)
			}
			fmt.Printf("Exported %s\n", written)
			return nil
		},
	}

	command.Flags().StringVarP(&outputPath, "output", "o", "", "output PDF path (defaults into the exports directory)")
	command.Flags().BoolVar(&fromURL, "from-url", false, "treat SOURCE as a URL and download it")

	return command
}

func pdfNameFromSource(source string) string {
	name := source
	if u, err := url.Parse(source); err == nil && u.Path != "" {
		name = u.Path
	}
	base := path.Base(name)
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "notes"
	}
	return base + ".pdf"
}
