package semetrika

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aeneidUnmarked = "arma virumque cano, Trojae qui primus ab oris"
	aeneidMarked   = "ārmă vĭrūmquĕ cănō, Trōiae quī prīmŭs ăb ōrīs"
)

func TestScanLineUnmarked(t *testing.T) {
	v, err := ScanLine(aeneidUnmarked, Options{})
	require.NoError(t, err)

	// one scheme symbol per non-elided vowel
	assert.Len(t, v.Scheme, 15)
	assert.GreaterOrEqual(t, v.ReadingCount(), 1)
	assert.Len(t, v.Patterns, v.ReadingCount())
	assert.Len(t, v.FullPatterns, v.ReadingCount())
	assert.Len(t, v.Readings(), v.ReadingCount())

	// the true reading of Aeneid 1.1 must be among the candidates
	found := false
	for _, p := range v.Patterns {
		if p == "-uu-uu-----uu--" || p == "-uu-uu-----uu-o" {
			found = true
		}
	}
	assert.True(t, found, "patterns: %v", v.Patterns)

	// full patterns strip back down to their length-only counterparts
	for i, full := range v.FullPatterns {
		assert.Equal(t, v.Patterns[i], lengthsOnly(full))
	}
}

func TestScanLineMarked(t *testing.T) {
	v, err := ScanLine(aeneidMarked, Options{})
	require.NoError(t, err)

	assert.Equal(t, "-uu-uu-----uu--", v.Scheme)
	require.Equal(t, 1, v.ReadingCount())
	assert.Equal(t, []string{"-uu-uu-----uu--"}, v.Patterns)
	assert.Equal(t, []string{"-uu|-uu|--|--|-uu|--"}, v.FullPatterns)

	reading := v.Readings()[0]
	assert.Contains(t, reading.Text, "|")
	// the weight line carries exactly the pattern's symbols
	weights := strings.Map(func(r rune) rune {
		if r == ' ' {
			return -1
		}
		return r
	}, reading.Weights)
	assert.Equal(t, "-uu|-uu|--|--|-uu|--", weights)
}

func TestScanLineUnmarkedShort(t *testing.T) {
	// with every unmarked vowel forced short the line is no longer a
	// hexameter at all
	v, err := ScanLine(aeneidUnmarked, Options{UnmarkedShort: true})
	require.NoError(t, err)
	assert.Equal(t, 0, v.ReadingCount())

	// the scheme view survives as a fallback rendering
	view := v.SchemeView()
	assert.NotEmpty(t, view.Text)
}

func TestScanLineBadCharacter(t *testing.T) {
	_, err := ScanLine("arma b̆", Options{})
	assert.ErrorIs(t, err, ErrBadCharacter)
}

func TestScanLineEmpty(t *testing.T) {
	v, err := ScanLine("", Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, v.ReadingCount())
	assert.Empty(t, v.Scheme)
}

func TestSchemeViewAlignsWithScheme(t *testing.T) {
	v, err := ScanLine(aeneidUnmarked, Options{})
	require.NoError(t, err)

	view := v.SchemeView()
	weights := strings.ReplaceAll(view.Weights, " ", "")
	assert.Equal(t, v.Scheme, weights)
}

func TestMergeFinalAnceps(t *testing.T) {
	lengths := []string{"---", "--u", "-uu"}
	full := []string{"-|--", "-|-u", "-|uu"}
	gotL, gotF := mergeFinalAnceps(lengths, full)
	assert.Equal(t, []string{"--o", "-uu"}, gotL)
	assert.Equal(t, []string{"-|-o", "-|uu"}, gotF)

	// nothing to merge passes through untouched
	gotL, gotF = mergeFinalAnceps([]string{"--"}, []string{"|--"})
	assert.Equal(t, []string{"--"}, gotL)
	assert.Equal(t, []string{"|--"}, gotF)

	gotL, gotF = mergeFinalAnceps(nil, nil)
	assert.Empty(t, gotL)
	assert.Empty(t, gotF)
}

func TestPlaceBoundary(t *testing.T) {
	open := &Segment{Coda: CodaOpen}
	closed := &Segment{Coda: CodaClosed}
	ambiguous := &Segment{Coda: CodaAmbiguous}

	// split at an inter-word space
	text, weights := placeBoundary("m r", "   ", false, closed, '-')
	assert.Equal(t, "m | r", text)
	assert.Equal(t, "  |  ", weights)

	// open syllable: whole chunk opens the next foot
	text, weights = placeBoundary("r", " ", false, open, '-')
	assert.Equal(t, "|r", text)
	assert.Equal(t, "| ", weights)

	// ambiguous coda resolved short keeps the cluster together
	text, _ = placeBoundary("tr", "  ", false, ambiguous, 'u')
	assert.Equal(t, "|tr", text)

	// ambiguous coda under a long reading stays flagged
	text, weights = placeBoundary("tr", "  ", false, ambiguous, '-')
	assert.Equal(t, "t\\r", text)
	assert.Equal(t, " \\ ", weights)

	// closed syllable: first consonant stays behind
	text, _ = placeBoundary("rm", "  ", false, closed, '-')
	assert.Equal(t, "r|m", text)

	// geminate consonants always open the next syllable
	text, _ = placeBoundary("x", " ", false, closed, '-')
	assert.Equal(t, "|x", text)
}

func TestVerseInspection(t *testing.T) {
	v, err := ScanLine("arma virumque", Options{})
	require.NoError(t, err)

	forms, err := v.TokenForms()
	require.NoError(t, err)
	assert.Equal(t, "arma| |virumque", forms)

	segs, err := v.SegmentForms()
	require.NoError(t, err)
	lines := strings.Split(segs, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A|r|m|A", lines[0])
	assert.Equal(t, "_", lines[1])

	marked, err := v.MarkedForm()
	require.NoError(t, err)
	assert.Equal(t, "arma virumque", marked)
}

func TestVerseInspectionNotTokenized(t *testing.T) {
	v := &Verse{Original: "arma"}
	_, err := v.TokenForms()
	assert.True(t, errors.Is(err, ErrNotTokenized))
	_, err = v.SegmentForms()
	assert.True(t, errors.Is(err, ErrNotTokenized))
	_, err = v.MarkedForm()
	assert.True(t, errors.Is(err, ErrNotTokenized))
}
