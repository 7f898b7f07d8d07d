package semetrika

// resolveElisions walks adjacent word pairs and marks elided segments.
//
// An elision candidate needs a vowel-final first word and a vowel- or
// h-initial second word. The interjection "o" is never elided. When the
// second word is an eliding form of esse (est/es), its own initial e is
// elided instead (prodelision). Sentence-final punctuation between the two
// words blocks elision entirely.
//
// Elided text is wrapped in one pair of parentheses spanning exactly the
// elided span, for rendering; the case masks grow in step so alignment
// with the parenthesized form is kept.
func resolveElisions(tokens []*Token) {
	var wordIDs []int
	for i, tok := range tokens {
		if tok.Kind == TokenWord {
			wordIDs = append(wordIDs, i)
		}
	}

	for i := 0; i+1 < len(wordIDs); i++ {
		word, nextWord := tokens[wordIDs[i]], tokens[wordIDs[i+1]]
		segments, nextSegments := word.Segments, nextWord.Segments

		if word.lower == "o" || word.lower == "ō" {
			continue
		}
		if elisionBlocked(tokens, wordIDs[i], wordIDs[i+1]) {
			continue
		}

		last := segments[len(segments)-1]
		first := nextSegments[0]

		vowelEnding := last.Kind == SegVowel
		vowelStart := first.Kind == SegVowel
		hStart := first.Kind == SegH // h is always followed by a vowel
		if !vowelEnding || !(vowelStart || hStart) {
			continue
		}

		// Prodelision: the e of est/es is elided, not the preceding vowel.
		if esseElisionForms[nextWord.lower] {
			first.Form = "(" + first.Form + ")"
			first.Case = "L" + first.Case + "L"
			first.Elided = true
			continue
		}

		// The first word's final vowel always starts the elided span.
		last.Form = "(" + last.Form
		last.Case = "L" + last.Case
		last.Elided = true

		// Elision swallows through a word-initial h.
		if hStart {
			first.Form += ")"
			first.Case += "L"
			first.Elided = true
		} else {
			last.Form += ")"
			last.Case += "L"
		}
	}
}

// elisionBlocked reports whether any token strictly between the two word
// tokens carries elision-blocking punctuation.
func elisionBlocked(tokens []*Token, from, to int) bool {
	for _, tok := range tokens[from+1 : to] {
		if tok.Kind == TokenOther && blocksElision(tok.lower) {
			return true
		}
	}
	return false
}
