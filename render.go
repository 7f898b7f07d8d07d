package semetrika

import "strings"

// render re-walks the verse for one weight sequence (the plain scheme or a
// boundary-marked pattern) and produces the reading's text together with
// the weight string aligned under its vowels.
//
// Between vowels the renderer accumulates a chunk of consonants and
// punctuation. When the sequence calls for a foot boundary, the marker is
// placed into the flushed chunk by this tie-break ladder:
//
//	(a) the chunk contains an inter-word space not spanned by an elision:
//	    split at the space;
//	(b) the previous syllable is open, or ambiguous but resolved open by
//	    the chosen pattern, or the chunk is a geminate-consonant edge case
//	    (x/z/i, possibly opening an elision): marker before the chunk;
//	(c) the previous syllable is still ambiguous: marker after the first
//	    character, rendered as '\' to flag the unresolved placement;
//	(d) otherwise: marker after the first character.
func (v *Verse) render(sequence string) Scansion {
	var text, aligned strings.Builder

	i := 0
	chunk := ""
	chunkElision := false
	prevVowel := &Segment{} // sentinel before the first vowel

	for _, tok := range v.Tokens {
		for _, seg := range tok.Segments {
			if seg.Kind != SegVowel || seg.Elided {
				chunk += restoreCases(seg.Form, seg.Case)
				if seg.Elided {
					chunkElision = true
				}
				continue
			}

			chunkWeights := strings.Repeat(" ", runeLen(chunk))

			if sequence[i] == footBoundary {
				chunk, chunkWeights = placeBoundary(
					chunk, chunkWeights, chunkElision, prevVowel,
					sequence[i-1])
				i++
			}

			text.WriteString(chunk)
			aligned.WriteString(chunkWeights)
			chunk = ""
			chunkElision = false

			// An unknown-length monophthong in an open (or resolved-open)
			// syllable takes the diacritic implied by the chosen symbol.
			form := seg.Form
			if seg.Subtype == SubMonophthong && seg.Length == LengthUnknown &&
				(seg.Coda == CodaOpen ||
					(seg.Coda == CodaAmbiguous && sequence[i] == weightShort)) {
				switch sequence[i] {
				case weightLong:
					form = addMacron[form]
				case weightShort:
					form = addBreve[form]
				}
			}

			text.WriteString(restoreCases(form, seg.Case))
			aligned.WriteByte(sequence[i])
			// Two-character vowel renderings (diphthongs, nasal finals)
			// get a padding space to keep the alignment; y̆ is two runes
			// but one column.
			if runeLen(form) == 2 && form != "y̆" {
				aligned.WriteByte(' ')
			}

			i++
			prevVowel = seg
		}
	}

	// Whatever trails the last vowel.
	text.WriteString(chunk)
	aligned.WriteString(strings.Repeat(" ", runeLen(chunk)))

	return Scansion{Text: text.String(), Weights: aligned.String()}
}

// placeBoundary inserts the foot-boundary marker into a chunk and, at the
// same position, into its all-spaces weight counterpart.
func placeBoundary(chunk, weights string, chunkElision bool,
	prevVowel *Segment, prevSymbol byte) (string, string) {

	cr := []rune(chunk)
	wr := []rune(weights)

	// (a) split at an inter-word space, unless an elision spans it.
	if spaceID := indexRune(cr, ' '); spaceID != -1 && !chunkElision {
		return string(cr[:spaceID]) + " | " + string(cr[spaceID+1:]),
			string(wr[:spaceID]) + " | " + string(wr[spaceID+1:])
	}

	lower := strings.ToLower(chunk)
	resolvedOpen := prevVowel.Coda == CodaOpen ||
		(prevVowel.Coda == CodaAmbiguous &&
			(prevSymbol == weightShort ||
				prevVowel.Length == LengthLong ||
				prevVowel.Subtype == SubDiphthong))
	geminateEdge := lower == "x" || lower == "z" || lower == "i" ||
		strings.HasPrefix(lower, "x(") ||
		strings.HasPrefix(lower, "z(") ||
		strings.HasPrefix(lower, "i(")

	switch {
	// (b) the whole chunk opens the next syllable.
	case resolvedOpen || geminateEdge:
		return "|" + chunk, "|" + weights
	// (c) genuinely unresolved placement, flagged rather than decided.
	case prevVowel.Coda == CodaAmbiguous:
		return string(cr[0]) + string(ambiguousMarker) + string(cr[1:]),
			string(wr[0]) + string(ambiguousMarker) + string(wr[1:])
	// (d) the first consonant closes the previous syllable.
	default:
		return string(cr[0]) + "|" + string(cr[1:]),
			string(wr[0]) + "|" + string(wr[1:])
	}
}

func runeLen(s string) int { return len([]rune(s)) }

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}
