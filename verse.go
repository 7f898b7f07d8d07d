package semetrika

import (
	"fmt"
	"sort"
	"strings"
)

// Verse is one analyzed line of hexameter.
type Verse struct {
	// Original is the raw input line.
	Original string
	// Normalized is the whitelisted, canonicalized form.
	Normalized string
	// Tokens is the ordered token sequence.
	Tokens []*Token

	// Scheme has one symbol per non-elided vowel: '-', 'u' or 'o'.
	Scheme string
	// Patterns are the legal length-only readings, sorted and merged.
	Patterns []string
	// FullPatterns are the same readings with foot boundaries, kept in
	// lock-step with Patterns.
	FullPatterns []string
	// Scansions holds the rendered readings. Scansions[0] is always the
	// unresolved scheme view; the rest align one-to-one with Patterns.
	Scansions []Scansion
}

// Scansion is one rendered reading: verse text with foot boundaries and
// resolved diacritics, plus the weight string aligned under its vowels.
type Scansion struct {
	Text    string
	Weights string
}

// ReadingCount is the number of legal hexameter readings (the scheme view
// does not count).
func (v *Verse) ReadingCount() int { return len(v.Scansions) - 1 }

// Readings returns the rendered legal readings, without the scheme view.
func (v *Verse) Readings() []Scansion { return v.Scansions[1:] }

// SchemeView returns the rendering of the unresolved scheme, used as a
// fallback when no legal reading exists.
func (v *Verse) SchemeView() Scansion { return v.Scansions[0] }

// analyze runs the whole pipeline on v.Original.
func (v *Verse) analyze(opts Options) error {
	v.Normalized = Normalize(v.Original)
	v.Tokens = Tokenize(v.Normalized)

	for _, tok := range v.Tokens {
		if err := tok.Segmentize(); err != nil {
			return err
		}
		if opts.UnmarkedShort {
			tok.Brevize()
		} else if opts.Lengths != nil {
			if err := tok.AddLengths(opts.Lengths); err != nil {
				return err
			}
		}
	}

	resolveElisions(v.Tokens)
	analyzeCodas(v.Tokens)
	v.makeScheme()
	v.solve(Hexameter)
	v.scan()
	return nil
}

// makeScheme derives the weight scheme, one symbol per non-elided vowel:
// diphthongs, nasal-final vowels, long monophthongs and closed syllables
// are long; a short vowel in an open syllable is short; everything else
// (unknown length in an open syllable, or muta cum liquida) is ambiguous.
func (v *Verse) makeScheme() {
	var b strings.Builder
	for _, tok := range v.Tokens {
		for _, seg := range tok.Segments {
			if seg.Kind != SegVowel || seg.Elided {
				continue
			}
			switch {
			case seg.Subtype == SubDiphthong,
				seg.Subtype == SubNasal,
				seg.Length == LengthLong,
				seg.Coda == CodaClosed:
				b.WriteByte(weightLong)
			case seg.Length == LengthShort && seg.Coda == CodaOpen:
				b.WriteByte(weightShort)
			default:
				b.WriteByte(weightAnceps)
			}
		}
	}
	v.Scheme = b.String()
}

// solve expands the scheme's ambiguous positions into all candidate weight
// strings, keeps the ones the meter accepts, and merges readings that
// differ only in the free verse-final position.
func (v *Verse) solve(meter *Meter) {
	// Iterative two-way expansion of every 'o'.
	candidates := []string{""}
	for i := 0; i < len(v.Scheme); i++ {
		el := v.Scheme[i]
		if el == weightAnceps {
			next := make([]string, 0, 2*len(candidates))
			for _, c := range candidates {
				next = append(next, c+string(weightLong), c+string(weightShort))
			}
			candidates = next
		} else {
			for j := range candidates {
				candidates[j] += string(el)
			}
		}
	}

	var legal []string
	for _, c := range candidates {
		if meter.Legal(c) {
			legal = append(legal, c)
		}
	}
	// Byte order puts '-' before 'u', the order the merge step relies on.
	sort.Strings(legal)

	full := make([]string, len(legal))
	for i, lengths := range legal {
		full[i], _ = meter.Full(lengths)
	}

	v.Patterns, v.FullPatterns = mergeFinalAnceps(legal, full)
}

// mergeFinalAnceps collapses adjacent sorted patterns that are identical
// except for their final symbol into a single entry ending in 'o': the
// final position is free in the meter, so the two are one reading. The
// decisions are computed on the length-only list and applied to the full
// list in lock-step, keeping the two aligned.
func mergeFinalAnceps(lengths, full []string) ([]string, []string) {
	mergedL := make([]string, 0, len(lengths))
	mergedF := make([]string, 0, len(full))
	i := 0
	for i < len(lengths)-1 {
		a, b := lengths[i], lengths[i+1]
		if len(a) == len(b) && a[:len(a)-1] == b[:len(b)-1] {
			mergedL = append(mergedL, a[:len(a)-1]+string(weightAnceps))
			f := full[i]
			mergedF = append(mergedF, f[:len(f)-1]+string(weightAnceps))
			i += 2
		} else {
			mergedL = append(mergedL, a)
			mergedF = append(mergedF, full[i])
			i++
		}
	}
	if i == len(lengths)-1 {
		mergedL = append(mergedL, lengths[i])
		mergedF = append(mergedF, full[i])
	}
	return mergedL, mergedF
}

// scan renders the scheme view plus every legal reading.
func (v *Verse) scan() {
	v.Scansions = make([]Scansion, 0, len(v.FullPatterns)+1)
	v.Scansions = append(v.Scansions, v.render(v.Scheme))
	for _, full := range v.FullPatterns {
		v.Scansions = append(v.Scansions, v.render(full))
	}
}

// TokenForms renders the token sequence for inspection, joined by |.
// It fails when the verse has not been tokenized yet.
func (v *Verse) TokenForms() (string, error) {
	if v.Tokens == nil {
		return "", fmt.Errorf("verse %q: %w", v.Original, ErrNotTokenized)
	}
	forms := make([]string, len(v.Tokens))
	for i, tok := range v.Tokens {
		forms[i] = tok.Original
	}
	return strings.Join(forms, "|"), nil
}

// SegmentForms renders each token's segmentation on its own line.
// It fails when the verse has not been segmented yet.
func (v *Verse) SegmentForms() (string, error) {
	if v.Tokens == nil {
		return "", fmt.Errorf("verse %q: %w", v.Original, ErrNotTokenized)
	}
	lines := make([]string, len(v.Tokens))
	for i, tok := range v.Tokens {
		line, err := tok.SegmentForms()
		if err != nil {
			return "", err
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n"), nil
}

// MarkedForm returns the verse text with resolved length marks and elision
// parentheses, original casing restored.
func (v *Verse) MarkedForm() (string, error) {
	if v.Tokens == nil {
		return "", fmt.Errorf("verse %q: %w", v.Original, ErrNotTokenized)
	}
	var b strings.Builder
	for _, tok := range v.Tokens {
		if tok.Segments == nil {
			return "", fmt.Errorf("token %q: %w", tok.Original, ErrNotSegmented)
		}
		for _, seg := range tok.Segments {
			b.WriteString(restoreCases(seg.Form, seg.Case))
		}
	}
	return b.String(), nil
}
