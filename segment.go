package semetrika

import (
	"fmt"
	"strings"
)

// SegmentKind is the phonological class of a segment.
type SegmentKind int

const (
	// SegVowel is a vowel nucleus (monophthong, diphthong or nasal-final).
	SegVowel SegmentKind = iota
	// SegConsonant is a consonant with surface text.
	SegConsonant
	// SegPlaceholder is a consonant with no surface text. It marks the
	// first half of a geminate i/j and of the double-valued x and z, so
	// that cluster counting stays uniform without empty strings.
	SegPlaceholder
	// SegH is the letter h: it never adds length by position and never
	// blocks elision, so it gets its own class.
	SegH
	// SegOther is the single segment of a non-word token.
	SegOther
)

// VowelSubtype refines SegVowel.
type VowelSubtype int

const (
	SubNone VowelSubtype = iota
	// SubMonophthong is a single vowel sound; the only subtype that
	// carries a Length.
	SubMonophthong
	// SubDiphthong is a two-vowel sound, always long.
	SubDiphthong
	// SubNasal is a word-final vowel+m, always long.
	SubNasal
)

// Length is a monophthong's vowel quantity.
type Length int

const (
	LengthUnknown Length = iota
	LengthLong
	LengthShort
)

// Coda classifies the syllable built on a vowel, assigned by the Coda
// Analyzer after segmentation and elision.
type Coda int

const (
	// CodaUnset means the Coda Analyzer has not run (or the segment is
	// not a vowel).
	CodaUnset Coda = iota
	CodaOpen
	CodaClosed
	// CodaAmbiguous marks a vowel before a word-internal muta cum
	// liquida, which may syllabify either way.
	CodaAmbiguous
)

// Segment is the smallest phonological unit of a token. Its Form is held
// lowercase; Case is the parallel mask ('U'/'L' per rune) for restoring the
// original casing. Length is meaningful only for oral monophthongs; Coda
// only for non-elided vowels.
type Segment struct {
	Form    string
	Case    string
	Kind    SegmentKind
	Subtype VowelSubtype
	Length  Length
	Coda    Coda
	Elided  bool
}

// Segmentize rewrites the token's characters into phonological segments.
//
// The rules below are applied first-match-wins, in this exact order; the
// order is linguistically significant (diphthong detection must run before
// generic vowel handling, consonantal i before vocalic i, and so on).
func (t *Token) Segmentize() error {
	if t.Kind != TokenWord {
		t.Segments = []*Segment{{Form: t.lower, Case: t.cases, Kind: SegOther}}
		return nil
	}

	// Sentinel spaces on both ends remove all bounds checks for the
	// one-character lookback and lookahead.
	form := []rune(" " + t.lower + " ")
	cases := " " + t.cases + " "

	var segments []*Segment
	i := 1
	for form[i] != ' ' {
		prev, char, next := form[i-1], form[i], form[i+1]
		pair := string(char) + string(next)
		charCase := cases[i : i+1]
		pairCase := cases[i : i+2]

		switch {
		// 1. Fixed diphthongs, plus eu/ui in their closed word lists.
		case diphthongs[pair],
			pair == "eu" && euWords[t.lower],
			pair == "ui" && uiWords[t.lower]:
			segments = append(segments, &Segment{
				Form: pair, Case: pairCase,
				Kind: SegVowel, Subtype: SubDiphthong,
			})
			i += 2

		// 2. Word-final vowel+m scans as a nasal vowel, always long.
		case isVowel(char) && next == 'm' && form[i+2] == ' ':
			segments = append(segments, &Segment{
				Form: pair, Case: pairCase,
				Kind: SegVowel, Subtype: SubNasal,
			})
			i += 2

		// 3. i before a vowel, word-initially or after a known prefix,
		// is a consonant.
		case char == 'i' && isVowel(next) &&
			(i == 1 || prefixes[string(form[1:i])]):
			segments = append(segments, &Segment{
				Form: "i", Case: charCase, Kind: SegConsonant,
			})
			i++

		// 4. Intervocalic i/j is a geminate consonant, except after qu
		// or ngu where the u is part of the consonant.
		case (char == 'i' || char == 'j') && isVowel(prev) && isVowel(next) &&
			!(i >= 2 && string(form[i-2:i]) == "qu") &&
			!(i >= 3 && string(form[i-3:i]) == "ngu"):
			segments = append(segments,
				&Segment{Kind: SegPlaceholder},
				&Segment{Form: string(char), Case: charCase, Kind: SegConsonant})
			i++

		// 5. qu is a single consonant.
		case pair == "qu":
			segments = append(segments, &Segment{
				Form: "qu", Case: pairCase, Kind: SegConsonant,
			})
			i += 2

		// 6. gu after n and before a vowel is a single consonant (the n
		// was already consumed as its own consonant).
		case prev == 'n' && pair == "gu" && isVowel(form[i+2]):
			segments = append(segments, &Segment{
				Form: "gu", Case: pairCase, Kind: SegConsonant,
			})
			i += 2

		// 7. x and z have double consonant value.
		case char == 'x' || char == 'z':
			segments = append(segments,
				&Segment{Kind: SegPlaceholder},
				&Segment{Form: string(char), Case: charCase, Kind: SegConsonant})
			i++

		// 8. h.
		case char == 'h':
			segments = append(segments, &Segment{
				Form: "h", Case: charCase, Kind: SegH,
			})
			i++

		// 9. y + combining breve: no precomposed character exists, so
		// the pair survived normalization and is handled here.
		case char == 'y' && next == combiningBreve:
			segments = append(segments, &Segment{
				Form: pair, Case: pairCase,
				Kind: SegVowel, Subtype: SubMonophthong, Length: LengthShort,
			})
			i += 2

		// 10. Any other vowel is a monophthong; its length comes from
		// its own diacritic.
		case isVowel(char):
			segments = append(segments, &Segment{
				Form: string(char), Case: charCase,
				Kind: SegVowel, Subtype: SubMonophthong,
				Length: lengthOfVowel(char),
			})
			i++

		// 11. Any other consonant.
		case isConsonant(char):
			segments = append(segments, &Segment{
				Form: string(char), Case: charCase, Kind: SegConsonant,
			})
			i++

		default:
			return fmt.Errorf("token %q: %w: %q", t.Original, ErrBadCharacter, char)
		}
	}

	t.Segments = segments
	return nil
}

// lengthOfVowel reads the length encoded by a vowel character's diacritic.
func lengthOfVowel(r rune) Length {
	switch {
	case strings.ContainsRune(vowelsLong, r):
		return LengthLong
	case strings.ContainsRune(vowelsShort, r):
		return LengthShort
	default:
		return LengthUnknown
	}
}

// Brevize marks every still-unknown monophthong as short. Meant for fully
// macronized input, where absence of a macron itself means short.
func (t *Token) Brevize() {
	for _, seg := range t.Segments {
		if seg.Subtype == SubMonophthong && seg.Length == LengthUnknown {
			seg.Length = LengthShort
			seg.Form = addBreve[seg.Form]
		}
	}
}

// AddLengths resolves unknown monophthong lengths from a learned length
// dictionary. Returns ErrNoLengthDictionary when ld is nil, since being
// asked to resolve without a dictionary is a distinct failure from not
// being asked at all.
func (t *Token) AddLengths(ld *LengthDictionary) error {
	if ld == nil {
		return ErrNoLengthDictionary
	}
	verdicts, ok := ld.Lookup(StripLengthMarks(t.lower))
	if !ok {
		return nil
	}

	monoI := 0
	for _, seg := range t.Segments {
		if seg.Subtype != SubMonophthong {
			continue
		}
		if monoI >= len(verdicts) {
			break
		}
		if seg.Length == LengthUnknown && verdicts[monoI] != LengthUnknown {
			seg.Length = verdicts[monoI]
			switch seg.Length {
			case LengthLong:
				seg.Form = addMacron[seg.Form]
			case LengthShort:
				if seg.Form == "y" {
					// y̆ is two runes; keep the case mask aligned.
					seg.Case += "L"
				}
				seg.Form = addBreve[seg.Form]
			}
		}
		monoI++
	}
	return nil
}

// SegmentForms renders the token's segmentation for inspection: segments
// joined by |, vowels uppercased, a space token shown as _. It fails when
// the token has not been segmented yet.
func (t *Token) SegmentForms() (string, error) {
	if t.Segments == nil {
		return "", fmt.Errorf("token %q: %w", t.Original, ErrNotSegmented)
	}
	if t.Segments[0].Form == " " {
		return "_", nil
	}
	forms := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		if seg.Kind == SegVowel {
			forms = append(forms, strings.ToUpper(seg.Form))
		} else {
			forms = append(forms, seg.Form)
		}
	}
	return strings.Join(forms, "|"), nil
}
