package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/skillgallery/internal/artifact"
	"github.com/dgallion1/skillgallery/internal/parser"
	"github.com/dgallion1/skillgallery/internal/pipeline"
	"github.com/spf13/cobra"
)

func newParseCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a local markdown file instead of downloading it",
		Long: `Runs the same extraction as the root command on a local file.
Use --out - to print the JSON to stdout instead of writing the data file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}
			out, _ := cmd.Flags().GetString("out")
			p := parser.New(parser.DefaultPatterns())

			if out == "-" {
				data, err := artifact.Encode(p.ParseString(string(src)))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			sum, err := pipeline.New(nil, p, log).Process(args[0], src, out)
			if err != nil {
				return err
			}
			printSummary(cmd, sum)
			return nil
		},
	}
}
