// Package semetrika scans Latin dactylic hexameter: it segments verse text
// into phonological units, detects elision, analyses syllable codas,
// and reports every way a verse can be read as a legal hexameter, with
// aligned scansion output. A length dictionary learned from a corpus of
// unambiguous verses can pre-resolve unmarked vowel quantities.
package semetrika

import "errors"

// Sentinel errors for the failure modes of the engine.
var (
	// ErrBadCharacter marks a word-token character no segmentation rule
	// recognizes. Fatal for that verse only.
	ErrBadCharacter = errors.New("cannot analyse character")

	// ErrNoLengthDictionary is returned when length resolution was
	// requested but no dictionary is loaded.
	ErrNoLengthDictionary = errors.New("no length dictionary specified")

	// ErrNotTokenized is returned by inspection methods used before
	// tokenization.
	ErrNotTokenized = errors.New("verse is not tokenized yet")

	// ErrNotSegmented is returned by rendering or inspection methods
	// used before segmentation.
	ErrNotSegmented = errors.New("token is not segmented yet")
)

// Options configures a scan. The two knobs are mutually exclusive in
// effect: with UnmarkedShort set, every unmarked vowel is taken as short
// and the dictionary is not consulted.
type Options struct {
	// UnmarkedShort treats unmarked vowels as short, for input that is
	// already fully macronized.
	UnmarkedShort bool

	// Lengths, when non-nil, resolves otherwise-unmarked vowels from
	// lengths learned off a corpus.
	Lengths *LengthDictionary
}

// ScanLine analyzes one line of verse text. Errors are per-verse: a
// malformed line does not poison its siblings in a batch.
func ScanLine(line string, opts Options) (*Verse, error) {
	v := &Verse{Original: line}
	if err := v.analyze(opts); err != nil {
		return nil, err
	}
	return v, nil
}
