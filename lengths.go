package semetrika

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Corpus-learning thresholds controlling when a vowel's length is safe to
// record: it must occur at least MinCount times with one length and at
// most MaxContradictions times with the other.
const (
	DefaultMinCount          = 20
	DefaultMaxContradictions = 3
)

// VowelCounts tallies how often one vowel slot of a word scanned long,
// short, or undecidable across the corpus.
type VowelCounts struct {
	Long    int
	Short   int
	Unknown int
}

// LengthDictionary maps a diacritic-stripped word form to one length
// verdict per monophthong in the word, learned from unambiguously scanned
// verses. It is immutable after Build and safe for concurrent reads.
type LengthDictionary struct {
	frequencies map[string][]VowelCounts
	verdicts    map[string][]Length
}

// LearnOptions configures corpus learning.
type LearnOptions struct {
	// MinCount is the minimum occurrence count of a length
	// (DefaultMinCount when zero).
	MinCount int
	// MaxContradictions is the maximum tolerated count of the opposite
	// length (DefaultMaxContradictions when zero or negative).
	MaxContradictions int
	// Parallel limits the number of corpus files read concurrently;
	// zero means no limit.
	Parallel int
}

// Learn builds a length dictionary from corpus files, each holding one
// verse per line. Files are tallied into per-file shards concurrently and
// the shards are merged at the end, so no counter needs locking.
func Learn(paths []string, opts LearnOptions) (*LengthDictionary, error) {
	minCount := opts.MinCount
	if minCount == 0 {
		minCount = DefaultMinCount
	}
	maxContradictions := opts.MaxContradictions
	if maxContradictions <= 0 {
		maxContradictions = DefaultMaxContradictions
	}

	shards := make([]map[string][]VowelCounts, len(paths))
	var g errgroup.Group
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			freqs, err := tallyFile(path)
			if err != nil {
				return err
			}
			shards[i] = freqs
			slog.Info("corpus file tallied", "path", path, "words", len(freqs))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := &LengthDictionary{frequencies: mergeShards(shards)}
	d.Build(minCount, maxContradictions)
	return d, nil
}

// tallyFile counts length frequencies over one corpus file. Only verses
// with exactly one legal reading contribute; malformed lines are skipped,
// never fatal for the file.
func tallyFile(path string) (map[string][]VowelCounts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	freqs := make(map[string][]VowelCounts)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := ScanLine(line, Options{})
		if err != nil {
			continue
		}
		if len(v.Patterns) != 1 {
			continue
		}
		tallyVerse(freqs, v.Tokens, v.Patterns[0])
	}
	return freqs, sc.Err()
}

// tallyVerse accumulates one unambiguously scanned verse into freqs.
// sequence is the verse's single legal length-only pattern.
func tallyVerse(freqs map[string][]VowelCounts, tokens []*Token, sequence string) {
	seqI := 0
	for _, tok := range tokens {
		if tok.Kind != TokenWord {
			continue
		}
		form := StripLengthMarks(tok.lower)

		// Diphthongs and nasal-final vowels always scan long, so only
		// monophthongs get a slot.
		if _, ok := freqs[form]; !ok {
			var slots []VowelCounts
			for _, seg := range tok.Segments {
				if seg.Subtype == SubMonophthong {
					slots = append(slots, VowelCounts{})
				}
			}
			freqs[form] = slots
		}

		slots := freqs[form]
		vowelI := 0
		for _, seg := range tok.Segments {
			if seg.Subtype == SubMonophthong {
				if vowelI >= len(slots) {
					// Same stripped form, different segmentation
					// (marked vs unmarked eu/ui words). Skip the rest.
					break
				}
				c := &slots[vowelI]
				switch {
				// An explicit mark in the input counts directly,
				// elided or not.
				case seg.Length == LengthLong:
					c.Long++
				case seg.Length == LengthShort:
					c.Short++
				case seg.Elided:
					c.Unknown++
				// A short syllable forces a short vowel.
				case sequence[seqI] == weightShort:
					c.Short++
				// A long syllable proves a long vowel only in a
				// positively open syllable.
				case sequence[seqI] == weightLong && seg.Coda == CodaOpen:
					c.Long++
				default:
					c.Unknown++
				}
				vowelI++
			}
			if seg.Kind == SegVowel && !seg.Elided {
				seqI++
			}
		}
	}
}

func mergeShards(shards []map[string][]VowelCounts) map[string][]VowelCounts {
	merged := make(map[string][]VowelCounts)
	for _, shard := range shards {
		for form, slots := range shard {
			dst, ok := merged[form]
			if !ok {
				dst = make([]VowelCounts, len(slots))
				merged[form] = dst
			}
			for i := range slots {
				if i >= len(dst) {
					break
				}
				dst[i].Long += slots[i].Long
				dst[i].Short += slots[i].Short
				dst[i].Unknown += slots[i].Unknown
			}
		}
	}
	return merged
}

// Build derives the verdicts from the accumulated frequencies. A word is
// recorded only when at least one of its vowels can be safely decided.
func (d *LengthDictionary) Build(minCount, maxContradictions int) {
	verdicts := make(map[string][]Length)
	for word, slots := range d.frequencies {
		safe := false
		vs := make([]Length, len(slots))
		for i, c := range slots {
			switch {
			case c.Long >= minCount && c.Short <= maxContradictions:
				vs[i] = LengthLong
				safe = true
			case c.Short >= minCount && c.Long <= maxContradictions:
				vs[i] = LengthShort
				safe = true
			default:
				vs[i] = LengthUnknown
			}
		}
		if safe {
			verdicts[word] = vs
		}
	}
	d.verdicts = verdicts
}

// Lookup returns the per-monophthong verdicts for a diacritic-stripped
// word form.
func (d *LengthDictionary) Lookup(form string) ([]Length, bool) {
	vs, ok := d.verdicts[form]
	return vs, ok
}

// Len returns the number of recorded words.
func (d *LengthDictionary) Len() int { return len(d.verdicts) }

// Words returns all recorded word forms, sorted.
func (d *LengthDictionary) Words() []string {
	words := make([]string, 0, len(d.verdicts))
	for w := range d.verdicts {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Frequencies exposes the raw tallies (nil after loading from a store,
// which persists verdicts only).
func (d *LengthDictionary) Frequencies() map[string][]VowelCounts {
	return d.frequencies
}

// WordWithLengths renders a word with its learned diacritics applied. A
// word the dictionary does not know is returned parenthesized.
func (d *LengthDictionary) WordWithLengths(word string) (string, error) {
	tok := newToken(word, TokenWord)
	form := StripLengthMarks(tok.lower)
	if _, ok := d.verdicts[form]; !ok {
		return "(" + form + ")", nil
	}
	if err := tok.Segmentize(); err != nil {
		return "", err
	}
	if err := tok.AddLengths(d); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, seg := range tok.Segments {
		b.WriteString(seg.Form)
	}
	return b.String(), nil
}
