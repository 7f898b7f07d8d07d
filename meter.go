package semetrika

import "strings"

// Weight scheme alphabet:
//
//	'-'  long syllable
//	'u'  short syllable
//	'o'  long or short (anceps)
//	'w'  long or short-short (spondee/dactyl choice)
//	'|'  foot boundary
const (
	weightLong      = '-'
	weightShort     = 'u'
	weightAnceps    = 'o'
	weightBiceps    = 'w'
	footBoundary    = '|'
	ambiguousMarker = '\\'
)

// Meter holds a metrical scheme together with its fully expanded set of
// legal realizations. It is built once and is immutable afterwards, so a
// single Meter is safely shared across all verses.
type Meter struct {
	// Scheme is the template string the meter was built from.
	Scheme string

	// patterns maps each length-only realization (boundaries stripped)
	// to its full form (boundaries retained). Keys are unique by
	// construction: every expansion path differs in some position.
	patterns map[string]string
}

// NewMeter expands every ambiguous symbol of scheme into its alternatives.
// The expansion is a short iterative worklist rather than a recursion, so
// stack use stays bounded for any scheme.
func NewMeter(scheme string) *Meter {
	m := &Meter{Scheme: scheme, patterns: make(map[string]string)}

	sequences := []string{""}
	for _, el := range scheme {
		switch el {
		case weightAnceps:
			next := make([]string, 0, 2*len(sequences))
			for _, s := range sequences {
				next = append(next, s+string(weightLong), s+string(weightShort))
			}
			sequences = next
		case weightBiceps:
			next := make([]string, 0, 2*len(sequences))
			for _, s := range sequences {
				next = append(next, s+string(weightLong), s+"uu")
			}
			sequences = next
		case weightLong, weightShort, footBoundary:
			for i := range sequences {
				sequences[i] += string(el)
			}
		default:
			// spaces and any other decoration are ignored
		}
	}

	for _, full := range sequences {
		m.patterns[lengthsOnly(full)] = full
	}
	return m
}

// lengthsOnly strips foot boundaries, keeping only syllable lengths.
func lengthsOnly(full string) string {
	var b strings.Builder
	for _, r := range full {
		if r == weightLong || r == weightShort {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Full returns the boundary-marked form of a legal length-only pattern.
func (m *Meter) Full(lengths string) (string, bool) {
	full, ok := m.patterns[lengths]
	return full, ok
}

// Legal reports whether lengths is a legal realization of the meter.
func (m *Meter) Legal(lengths string) bool {
	_, ok := m.patterns[lengths]
	return ok
}

// Size returns the number of legal realizations.
func (m *Meter) Size() int { return len(m.patterns) }

// Hexameter is the dactylic hexameter: four spondee/dactyl feet, a fixed
// dactyl fifth foot, and a final anceps syllable after the fixed long.
var Hexameter = NewMeter("-w | -w | -w | -w | -uu | -o")
