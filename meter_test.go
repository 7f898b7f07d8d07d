package semetrika

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeterExpansion(t *testing.T) {
	m := NewMeter("-w")
	require.Equal(t, 2, m.Size())

	full, ok := m.Full("--")
	require.True(t, ok)
	assert.Equal(t, "--", full)

	full, ok = m.Full("-uu")
	require.True(t, ok)
	assert.Equal(t, "-uu", full)
}

func TestNewMeterAnceps(t *testing.T) {
	m := NewMeter("-o")
	require.Equal(t, 2, m.Size())
	assert.True(t, m.Legal("--"))
	assert.True(t, m.Legal("-u"))
	assert.False(t, m.Legal("-"))
}

func TestNewMeterKeepsBoundaries(t *testing.T) {
	m := NewMeter("-w | -o")
	full, ok := m.Full("-uu-u")
	require.True(t, ok)
	assert.Equal(t, "-uu|-u", full)
}

func TestHexameter(t *testing.T) {
	// four biceps feet and one anceps: 2^5 realizations
	require.Equal(t, 32, Hexameter.Size())

	// a holodactylic and a holospondaic line are both legal
	assert.True(t, Hexameter.Legal("-uu-uu-uu-uu-uu--"))
	assert.True(t, Hexameter.Legal("---------uu--"))
	assert.False(t, Hexameter.Legal("------------"))

	// length-only realizations run from 13 to 17 syllables
	for lengths := range Hexameter.patterns {
		assert.GreaterOrEqual(t, len(lengths), 13, "pattern %q", lengths)
		assert.LessOrEqual(t, len(lengths), 17, "pattern %q", lengths)
	}

	full, ok := Hexameter.Full("-uu-uu-----uu--")
	require.True(t, ok)
	assert.Equal(t, "-uu|-uu|--|--|-uu|--", full)
}
