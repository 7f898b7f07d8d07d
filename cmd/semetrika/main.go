// Command semetrika scans Latin dactylic hexameter.
//
// Subcommands:
//
//	scan   scan verses from a file or stdin
//	learn  learn vowel lengths from a corpus of hexameter files
//	dict   dump the learned length dictionary
//	stats  compare scansion with and without the length dictionary
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semetrika",
		Short: "Latin hexameter scansion",
		Long: `Semetrika determines the metrical scansion of Latin dactylic
hexameter: syllable weights, elisions, and every legal reading of an
ambiguous verse. A length dictionary learned from a corpus of
unambiguous verses can resolve otherwise-unmarked vowel quantities.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(newScanCmd(), newLearnCmd(), newDictCmd(), newStatsCmd())
	return cmd
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
