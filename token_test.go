package semetrika

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		in    string
		forms []string
		kinds []TokenKind
	}{
		{
			"arma virumque cano",
			[]string{"arma", " ", "virumque", " ", "cano"},
			[]TokenKind{TokenWord, TokenOther, TokenWord, TokenOther, TokenWord},
		},
		{
			"cano, Troiae",
			[]string{"cano", ",", " ", "Troiae"},
			[]TokenKind{TokenWord, TokenOther, TokenOther, TokenWord},
		},
		{
			"12 anni",
			[]string{"1", "2", " ", "anni"},
			[]TokenKind{TokenOther, TokenOther, TokenOther, TokenWord},
		},
		{"", nil, nil},
	}
	for _, tt := range tests {
		tokens := Tokenize(tt.in)
		if len(tokens) != len(tt.forms) {
			t.Errorf("Tokenize(%q): got %d tokens, want %d", tt.in, len(tokens), len(tt.forms))
			continue
		}
		for i, tok := range tokens {
			if tok.Original != tt.forms[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.in, i, tok.Original, tt.forms[i])
			}
			if tok.Kind != tt.kinds[i] {
				t.Errorf("Tokenize(%q)[%d] kind = %v, want %v", tt.in, i, tok.Kind, tt.kinds[i])
			}
		}
	}
}

func TestTokenCaseMask(t *testing.T) {
	tok := newToken("Troiae", TokenWord)
	if tok.LowerForm() != "troiae" {
		t.Errorf("LowerForm = %q, want %q", tok.LowerForm(), "troiae")
	}
	if got := restoreCases(tok.lower, tok.cases); got != "Troiae" {
		t.Errorf("restoreCases = %q, want %q", got, "Troiae")
	}
}

func TestRestoreCasesBeyondMask(t *testing.T) {
	// runes added after the mask was built stay lowercase
	if got := restoreCases("ay̆", "U"); got != "Ay̆" {
		t.Errorf("restoreCases = %q, want %q", got, "Ay̆")
	}
}
