package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vaclavhorky/semetrika"
)

// maxReadings: a hexameter verse cannot have more than six readings.
const maxReadings = 6

var (
	statsDictFlag  string
	statsDiffsFlag bool
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Compare scansion with and without the length dictionary",
		Long: `Stats scans every verse of a file twice, without and with the
length dictionary, and tabulates how many verses get 0 to 6 readings in
each mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dictPath := statsDictFlag
			if dictPath == "" {
				dictPath = cfg.Dictionary
			}
			ld, err := semetrika.LoadLengthDictionary(dictPath)
			if err != nil {
				return err
			}
			return runStats(args[0], ld)
		},
	}
	cmd.Flags().StringVar(&statsDictFlag, "dict", "", "length dictionary path")
	cmd.Flags().BoolVar(&statsDiffsFlag, "diffs", false, "print verses whose reading count differs between the two modes")
	return cmd
}

func runStats(path string, ld *semetrika.LengthDictionary) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}
	defer f.Close()

	var without, with [maxReadings + 1]int
	verseCount := 0
	differing := 0

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if utf8.RuneCountInString(line) < minVerseLength {
			continue
		}
		plain, err := semetrika.ScanLine(line, semetrika.Options{})
		if err != nil {
			warnf("skipping verse %q: %v", line, err)
			continue
		}
		resolved, err := semetrika.ScanLine(line, semetrika.Options{Lengths: ld})
		if err != nil {
			warnf("skipping verse %q: %v", line, err)
			continue
		}

		verseCount++
		without[clampReadings(plain.ReadingCount())]++
		with[clampReadings(resolved.ReadingCount())]++

		if plain.ReadingCount() != resolved.ReadingCount() {
			differing++
			if statsDiffsFlag {
				printDiff(plain, resolved)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if verseCount == 0 {
		return fmt.Errorf("no verses in %s", path)
	}

	fmt.Printf("NUMBER OF VERSES: %d\n\n", verseCount)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"readings", "w/o", "with", "w/o %", "with %"})
	for n := 0; n <= maxReadings; n++ {
		if without[n] == 0 && with[n] == 0 {
			continue
		}
		table.Append([]string{
			strconv.Itoa(n),
			strconv.Itoa(without[n]),
			strconv.Itoa(with[n]),
			fmt.Sprintf("%d %%", without[n]*100/verseCount),
			fmt.Sprintf("%d %%", with[n]*100/verseCount),
		})
	}
	table.Render()
	fmt.Printf("\nverses scanned differently with the dictionary: %d\n", differing)
	return nil
}

func clampReadings(n int) int {
	if n > maxReadings {
		return maxReadings
	}
	return n
}

func printDiff(plain, resolved *semetrika.Verse) {
	fmt.Println("DIFFERENT NUMBER OF READINGS:")
	fmt.Println("WITHOUT LENGTH DICTIONARY:")
	printScansions(os.Stdout, plain)
	fmt.Println("WITH LENGTH DICTIONARY:")
	printScansions(os.Stdout, resolved)
	fmt.Println("==============================")
}
