package semetrika

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes one line of raw verse text:
//
//  1. surrounding whitespace is trimmed;
//  2. combining diacritics are composed into precomposed characters (NFC);
//     y + combining breve survives as a two-character unit because no
//     precomposed y̆ exists;
//  3. acute-accented vowels (an alternate long-vowel convention) become
//     macron vowels, in both cases;
//  4. the æ/œ ligatures expand to their two-letter spellings;
//  5. any character whose lowercase form is not whitelisted is dropped.
//
// Normalization is lossy: out-of-scope symbols disappear silently rather
// than raising an error.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = norm.NFC.String(s)
	s = convertAcute.Replace(s)
	s = convertLigatures.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if allowedCharSet[unicode.ToLower(r)] {
			b.WriteRune(r)
		}
	}
	return b.String()
}
