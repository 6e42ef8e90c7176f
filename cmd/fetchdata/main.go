package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/skillgallery/internal/config"
	"github.com/dgallion1/skillgallery/internal/fetch"
	"github.com/dgallion1/skillgallery/internal/parser"
	"github.com/dgallion1/skillgallery/internal/pipeline"
	"github.com/spf13/cobra"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if err := newRootCmd(config.Load(), log).Execute(); err != nil {
		log.Error("fetchdata failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetchdata",
		Short: "Fetch the skills list and write the gallery data file",
		Long: `Downloads the curated skills markdown document, extracts its sections,
categories and skills, and replaces the JSON data file read by the gallery server.

Exits non-zero without touching the data file when the download fails.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run := cfg
			run.SourceURL, _ = cmd.Flags().GetString("url")
			run.DataPath, _ = cmd.Flags().GetString("out")
			run.FetchTimeout, _ = cmd.Flags().GetDuration("timeout")
			if err := run.Validate(); err != nil {
				return err
			}

			client := fetch.NewClient(run.FetchTimeout, run.MaxSourceBytes)
			defer client.Close()

			p := pipeline.New(client, parser.New(parser.DefaultPatterns()), log)
			sum, err := p.Run(cmd.Context(), run.SourceURL, run.DataPath)
			if err != nil {
				return err
			}
			printSummary(cmd, sum)
			return nil
		},
	}

	cmd.PersistentFlags().StringP("out", "o", cfg.DataPath, "Path of the JSON data file to write")
	cmd.Flags().StringP("url", "u", cfg.SourceURL, "URL of the skills markdown document")
	cmd.Flags().Duration("timeout", cfg.FetchTimeout, "HTTP timeout for the download")

	cmd.AddCommand(newParseCmd(log), newSchemaCmd())
	return cmd
}

func printSummary(cmd *cobra.Command, sum pipeline.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully saved data to %s\n", sum.OutputPath)
	fmt.Fprintf(out, "Categories found: %d\n", sum.Categories)
	fmt.Fprintf(out, "Total skills: %d\n", sum.Skills)
}
