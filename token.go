package semetrika

import (
	"strings"
	"unicode"
)

// TokenKind distinguishes word tokens from single non-word characters.
type TokenKind int

const (
	// TokenWord is a maximal run of word characters.
	TokenWord TokenKind = iota
	// TokenOther is a single punctuation mark, digit, or space.
	TokenOther
)

// Token is a word or a single non-word character of a verse. Word tokens
// own the ordered Segments produced by segmentation; the Elision Resolver
// and the Coda Analyzer mutate those segments in place.
type Token struct {
	// Original is the token text with its casing preserved.
	Original string
	// Kind tells whether this is a word or a non-word token.
	Kind TokenKind
	// Segments is the phonological segmentation, nil until Segmentize.
	Segments []*Segment

	// lower is the lowercase form; cases is the parallel mask with one
	// 'U' or 'L' per rune of lower.
	lower string
	cases string
}

// newToken creates a token and records the per-rune case mask so that the
// original casing can be restored after all rewriting happens in lowercase.
func newToken(original string, kind TokenKind) *Token {
	var cases strings.Builder
	for _, r := range original {
		if unicode.IsUpper(r) {
			cases.WriteByte('U')
		} else {
			cases.WriteByte('L')
		}
	}
	return &Token{
		Original: original,
		Kind:     kind,
		lower:    strings.ToLower(original),
		cases:    cases.String(),
	}
}

// LowerForm returns the lowercase form of the token.
func (t *Token) LowerForm() string { return t.lower }

// Tokenize splits normalized verse text into word tokens (maximal runs of
// word characters) and non-word tokens (every other character on its own,
// including the separating space, which matters for elision and coda
// analysis downstream).
func Tokenize(normalized string) []*Token {
	var tokens []*Token
	var word []rune

	flush := func() {
		if len(word) > 0 {
			tokens = append(tokens, newToken(string(word), TokenWord))
			word = word[:0]
		}
	}

	// A trailing sentinel space flushes the final word; the sentinel
	// token itself is discarded below.
	for _, r := range normalized + " " {
		if isWordChar(unicode.ToLower(r)) {
			word = append(word, r)
			continue
		}
		flush()
		tokens = append(tokens, newToken(string(r), TokenOther))
	}
	return tokens[:len(tokens)-1]
}

// restoreCases re-applies a case mask to a lowercase form, uppercasing
// every rune whose mask flag is 'U'. Runes beyond the mask (added by
// length resolution) stay lowercase.
func restoreCases(form, mask string) string {
	var b strings.Builder
	b.Grow(len(form))
	i := 0
	for _, r := range form {
		if i < len(mask) && mask[i] == 'U' {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}
