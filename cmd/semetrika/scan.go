package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/vaclavhorky/semetrika"
)

// minVerseLength: shorter lines are taken for verse numbers or separators
// and echoed verbatim.
const minVerseLength = 10

var (
	scanInputFlag     string
	scanBrevizeFlag   bool
	scanNoLengthsFlag bool
	scanDictFlag      string
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan verses from a file or stdin",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := semetrika.Options{UnmarkedShort: scanBrevizeFlag}
			if !scanBrevizeFlag && !scanNoLengthsFlag {
				dictPath := scanDictFlag
				if dictPath == "" {
					dictPath = cfg.Dictionary
				}
				opts.Lengths = openDictionary(dictPath)
			}

			in := io.Reader(os.Stdin)
			if scanInputFlag != "" {
				f, err := os.Open(scanInputFlag)
				if err != nil {
					return fmt.Errorf("input file: %w", err)
				}
				defer f.Close()
				in = f
			}
			return scanLines(in, os.Stdout, opts)
		},
	}
	cmd.Flags().StringVarP(&scanInputFlag, "input", "i", "", "file with verses to analyse (stdin when omitted)")
	cmd.Flags().BoolVar(&scanBrevizeFlag, "brevize", false, "for fully macronized input, treat unmarked vowels as short")
	cmd.Flags().BoolVar(&scanNoLengthsFlag, "nolengths", false, "don't try to add unambiguous lengths")
	cmd.Flags().StringVar(&scanDictFlag, "dict", "", "length dictionary path")
	return cmd
}

// scanLines analyses verses line by line. Errors are per-verse: a bad line
// is reported and the batch continues.
func scanLines(in io.Reader, out io.Writer, opts semetrika.Options) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if utf8.RuneCountInString(line) < minVerseLength {
			fmt.Fprintln(out, line)
			fmt.Fprintln(out)
			continue
		}
		verse, err := semetrika.ScanLine(line, opts)
		if err != nil {
			warnf("skipping verse %q: %v", line, err)
			fmt.Fprintln(out)
			continue
		}
		printScansions(out, verse)
		fmt.Fprintln(out)
	}
	return sc.Err()
}

// printScansions writes a verse's readings per the output protocol: the
// unresolved scheme when nothing fits, the single reading when the verse
// is unambiguous, a numbered list otherwise.
func printScansions(out io.Writer, verse *semetrika.Verse) {
	switch n := verse.ReadingCount(); {
	case n == 0:
		warnf("cannot scan this")
		view := verse.SchemeView()
		fmt.Fprintln(out, view.Text)
		fmt.Fprintln(out, view.Weights)
	case n == 1:
		reading := verse.Readings()[0]
		fmt.Fprintln(out, reading.Text)
		fmt.Fprintln(out, reading.Weights)
	default:
		warnf("cannot scan this unambiguously")
		for i, reading := range verse.Readings() {
			fmt.Fprintf(out, "%d. %s\n", i+1, reading.Text)
			fmt.Fprintf(out, "   %s\n", reading.Weights)
			if i != n-1 {
				fmt.Fprintln(out)
			}
		}
	}
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARNING: "+format+"\n", args...)
}
