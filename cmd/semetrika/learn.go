package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vaclavhorky/semetrika"
)

var (
	learnOutFlag      string
	learnMinCount     int
	learnMaxContra    int
	learnParallelFlag int
)

func newLearnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn [corpus-dir]",
		Short: "Learn vowel lengths from a corpus of hexameter files",
		Long: `Learn reads every file in the corpus directory (one verse per
line), tallies vowel lengths over the unambiguously scanned verses, and
saves the resulting length dictionary.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			corpusDir := cfg.Corpus
			if len(args) > 0 {
				corpusDir = args[0]
			}
			if corpusDir == "" {
				return fmt.Errorf("no corpus directory given")
			}
			outPath := learnOutFlag
			if outPath == "" {
				outPath = cfg.Dictionary
			}
			minCount := learnMinCount
			if minCount == 0 {
				minCount = cfg.MinCount
			}
			maxContra := learnMaxContra
			if maxContra == 0 {
				maxContra = cfg.MaxContradictions
			}

			entries, err := os.ReadDir(corpusDir)
			if err != nil {
				return fmt.Errorf("corpus directory: %w", err)
			}
			var paths []string
			for _, e := range entries {
				if !e.IsDir() {
					paths = append(paths, filepath.Join(corpusDir, e.Name()))
				}
			}
			if len(paths) == 0 {
				return fmt.Errorf("no corpus files in %s", corpusDir)
			}

			slog.Info("learning unambiguous vowel lengths; a small corpus will finish fast and teach little",
				"files", len(paths), "min_count", minCount, "max_contradictions", maxContra)

			dict, err := semetrika.Learn(paths, semetrika.LearnOptions{
				MinCount:          minCount,
				MaxContradictions: maxContra,
				Parallel:          learnParallelFlag,
			})
			if err != nil {
				return err
			}
			if err := dict.Save(outPath); err != nil {
				return err
			}
			slog.Info("length dictionary saved", "path", outPath, "words", dict.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&learnOutFlag, "out", "o", "", "where to save the dictionary")
	cmd.Flags().IntVar(&learnMinCount, "min-count", 0, "minimum occurrences of a length before it is recorded")
	cmd.Flags().IntVar(&learnMaxContra, "max-contradictions", 0, "maximum tolerated occurrences of the opposite length")
	cmd.Flags().IntVarP(&learnParallelFlag, "parallel", "p", 0, "number of corpus files read concurrently (0 = unlimited)")
	return cmd
}
