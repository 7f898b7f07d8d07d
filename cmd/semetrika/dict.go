package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaclavhorky/semetrika"
)

var dictPathFlag string

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict [words...]",
		Short: "Dump the learned length dictionary",
		Long: `Dict prints dictionary words with their learned diacritics
applied. With no arguments the whole dictionary is printed, sorted.`,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path := dictPathFlag
			if path == "" {
				path = cfg.Dictionary
			}
			ld, err := semetrika.LoadLengthDictionary(path)
			if err != nil {
				return err
			}

			words := args
			if len(words) == 0 {
				words = ld.Words()
			}
			for _, word := range words {
				marked, err := ld.WordWithLengths(word)
				if err != nil {
					warnf("%s: %v", word, err)
					continue
				}
				fmt.Fprintln(os.Stdout, marked)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dictPathFlag, "dict", "", "length dictionary path")
	return cmd
}
