package semetrika

import "strings"

// analyzeCodas classifies each non-elided vowel's syllable as open, closed
// or ambiguous in a single left-to-right pass over all segments.
//
// The pass tracks the consonant cluster accumulated since the last vowel;
// on reaching the next vowel, the cluster decides the *previous* vowel's
// coda: zero or one consonant means open, as does a cluster belonging
// entirely to the next word (a space marker is inserted at token
// boundaries so that word-initial clusters cannot close the previous
// word's final syllable); a word-internal muta cum liquida is ambiguous;
// anything else is closed. Placeholder segments count toward the cluster
// length but add no text.
func analyzeCodas(tokens []*Token) {
	// Sentinel absorbs the irrelevant cluster before the first vowel.
	thisVowel := &Segment{}
	count := 0
	cluster := ""

	for _, tok := range tokens {
		for _, seg := range tok.Segments {
			switch {
			case seg.Kind == SegConsonant:
				count++
				cluster += seg.Form
			case seg.Kind == SegPlaceholder:
				count++
			case seg.Kind == SegOther && seg.Form == " ":
				cluster += " "
			case seg.Kind == SegVowel && !seg.Elided:
				thisVowel.Coda = classifyCoda(count, cluster)
				thisVowel = seg
				count = 0
				cluster = ""
			}
		}
	}

	// The verse-final vowel: closed if any consonant remains, else open.
	if count == 0 {
		thisVowel.Coda = CodaOpen
	} else {
		thisVowel.Coda = CodaClosed
	}
}

func classifyCoda(count int, cluster string) Coda {
	switch {
	case count <= 1 || strings.HasPrefix(cluster, " "):
		return CodaOpen
	case isMutaCumLiquida(cluster):
		return CodaAmbiguous
	default:
		return CodaClosed
	}
}
