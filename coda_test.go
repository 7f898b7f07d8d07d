package semetrika

import "testing"

// vowelCodas collects the coda of every non-elided vowel across tokens.
func vowelCodas(tokens []*Token) []Coda {
	var codas []Coda
	for _, tok := range tokens {
		for _, seg := range tok.Segments {
			if seg.Kind == SegVowel && !seg.Elided {
				codas = append(codas, seg.Coda)
			}
		}
	}
	return codas
}

func TestAnalyzeCodas(t *testing.T) {
	tests := []struct {
		text  string
		codas []Coda
	}{
		// rm cluster closes the first a, final a is verse-final and open
		{"arma", []Coda{CodaClosed, CodaOpen}},
		// single consonants leave every syllable open
		{"canō", []Coda{CodaOpen, CodaOpen}},
		// word-internal muta cum liquida is ambiguous
		{"patris", []Coda{CodaAmbiguous, CodaClosed}},
		// a cluster belonging entirely to the next word does not close
		// the previous word's final vowel
		{"multa trahens", []Coda{CodaClosed, CodaOpen, CodaOpen, CodaClosed}},
		// a cluster split across the boundary does close it
		{"et trahens", []Coda{CodaClosed, CodaOpen, CodaClosed}},
		// x counts as two consonants through its placeholder
		{"axis", []Coda{CodaClosed, CodaClosed}},
		// verse-final vowel with a trailing consonant is closed
		{"amat", []Coda{CodaOpen, CodaClosed}},
		// a nasal segment swallows its m, leaving the coda open
		{"virum", []Coda{CodaOpen, CodaOpen}},
	}
	for _, tt := range tests {
		tokens := prepare(t, tt.text)
		resolveElisions(tokens)
		analyzeCodas(tokens)
		got := vowelCodas(tokens)
		if len(got) != len(tt.codas) {
			t.Errorf("%q: got %d vowels, want %d", tt.text, len(got), len(tt.codas))
			continue
		}
		for i := range got {
			if got[i] != tt.codas[i] {
				t.Errorf("%q: vowel[%d] coda = %v, want %v", tt.text, i, got[i], tt.codas[i])
			}
		}
	}
}

func TestAnalyzeCodasSkipsElided(t *testing.T) {
	tokens := prepare(t, "multum ille")
	resolveElisions(tokens)
	analyzeCodas(tokens)

	// the elided um keeps no coda; the surviving vowels are i (closed by
	// the geminate ll) and the open final e
	got := vowelCodas(tokens)
	want := []Coda{CodaClosed, CodaClosed, CodaOpen}
	if len(got) != len(want) {
		t.Fatalf("got %d vowels, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("vowel[%d] coda = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClassifyCoda(t *testing.T) {
	tests := []struct {
		count   int
		cluster string
		want    Coda
	}{
		{0, "", CodaOpen},
		{1, "r", CodaOpen},
		{2, " tr", CodaOpen},
		{2, "tr", CodaAmbiguous},
		{2, "rm", CodaClosed},
		{2, "t r", CodaClosed},
		{3, "ntr", CodaClosed},
	}
	for _, tt := range tests {
		if got := classifyCoda(tt.count, tt.cluster); got != tt.want {
			t.Errorf("classifyCoda(%d, %q) = %v, want %v", tt.count, tt.cluster, got, tt.want)
		}
	}
}
