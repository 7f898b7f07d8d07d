package semetrika

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim", "  arma virumque cano  ", "arma virumque cano"},
		// combining macron composes to the precomposed character
		{"compose macron", "a\u0304rma", "\u0101rma"},
		{"compose breve", "a\u0306rma", "\u0103rma"},
		// y + combining breve has no precomposed form and must survive
		{"keep y breve decomposed", "harpy\u0306ia", "harpy\u0306ia"},
		{"acute to macron", "cáno", "cāno"},
		{"acute uppercase", "Árma", "Ārma"},
		{"ligature ae", "æternum", "aeternum"},
		{"ligature capital", "Æneadum", "Aeneadum"},
		{"ligature oe", "fœdus", "foedus"},
		{"drop unknown symbols", "arma† virum*que", "arma virumque"},
		{"keep punctuation and digits", "cano, Troiae; 12", "cano, Troiae; 12"},
		{"keep marked vowels", "ārmă vĭrūmquĕ", "ārmă vĭrūmquĕ"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("%s: Normalize(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}
