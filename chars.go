package semetrika

import "strings"

// Character classes and closed lexicons used by the scansion engine.
// All of these are package-level read-only data, built once at init.

const (
	vowelsUnknown = "aeiouyë"
	vowelsShort   = "ăĕĭŏŭ" // y̆ has no precomposed character, handled separately
	vowelsLong    = "āēīōūȳ"
	consonantRuns = "bcdfgjklmnpqrstvwxz"

	// combiningBreve follows y when y is marked short (y̆).
	combiningBreve = '\u0306'
)

// punctuationChars are the characters allowed in non-word tokens,
// including the token-separating space itself.
const punctuationChars = ",;.?!: ‐––—\"'„“‚‘»«›‹()[]/"

// noElisionChars are punctuation marks across which elision is blocked.
const noElisionChars = ";.?!"

var (
	vowelSet     = runeSet(vowelsUnknown + vowelsShort + vowelsLong)
	consonantSet = runeSet(consonantRuns)

	// wordCharSet holds every character that may appear inside a word
	// token: vowels in any length-marking state, consonants, h, and the
	// combining breve of y̆.
	wordCharSet = runeSet(vowelsUnknown + vowelsShort + vowelsLong +
		consonantRuns + "h" + string(combiningBreve))

	// allowedCharSet holds every character that survives normalization
	// (checked against the lowercase form of the character).
	allowedCharSet = runeSet(vowelsUnknown + vowelsShort + vowelsLong +
		consonantRuns + "h" + string(combiningBreve) + punctuationChars +
		"0123456789")
)

// diphthongs are vowel pairs that always form a diphthong.
var diphthongs = map[string]bool{"ae": true, "oe": true, "au": true}

// euWords are the words in which "eu" is diphthongal.
var euWords = stringSet("neu seu heu heus ceu")

// uiWords are the words in which "ui" is diphthongal.
var uiWords = stringSet("cui cuique hui huic")

// esseElisionForms are the forms of esse whose initial e is elided
// after a vowel-final word (prodelision), in any length-marking state.
var esseElisionForms = stringSet("est ĕst es ĕs")

// prefixes trigger the consonantal reading of a following i before a vowel.
var prefixes = stringSet("in sub super ad ante circum contra extra inter" +
	" intra ob per post praeter supra trans ab con de e prae pro dis re")

// mutes and liquids together form the muta-cum-liquida clusters, which are
// metrically ambiguous word-internally.
var (
	muteSet   = runeSet("bpdtgcf")
	liquidSet = runeSet("lr")
)

// addMacron maps an unmarked monophthong form to its long-marked form.
var addMacron = map[string]string{
	"a": "ā", "e": "ē", "i": "ī", "o": "ō", "u": "ū", "y": "ȳ", "ë": "ē",
}

// addBreve maps an unmarked monophthong form to its short-marked form.
// y has no precomposed short character, so its value is two runes.
var addBreve = map[string]string{
	"a": "ă", "e": "ĕ", "i": "ĭ", "o": "ŏ", "u": "ŭ", "y": "y̆", "ë": "ĕ",
}

// convertAcute rewrites the acute-accent long-vowel convention to macrons.
var convertAcute = strings.NewReplacer(
	"á", "ā", "é", "ē", "í", "ī", "ó", "ō", "ú", "ū", "ý", "ȳ",
	"Á", "Ā", "É", "Ē", "Í", "Ī", "Ó", "Ō", "Ú", "Ū", "Ý", "Ȳ",
)

// convertLigatures expands the æ/œ digraph ligatures.
var convertLigatures = strings.NewReplacer(
	"Æ", "Ae", "æ", "ae", "Œ", "Oe", "œ", "oe",
)

// stripMarksReplacer removes macrons and breves from vowels, so that
// length-marked forms reduce to their dictionary lookup form.
var stripMarksReplacer = strings.NewReplacer(
	"ā", "a", "ē", "e", "ī", "i", "ō", "o", "ū", "u", "ȳ", "y",
	"ă", "a", "ĕ", "e", "ĭ", "i", "ŏ", "o", "ŭ", "u",
	string(combiningBreve), "",
)

// StripLengthMarks removes all macron and breve marking from s, reducing
// every vowel to its unmarked form. y̆ collapses to y.
func StripLengthMarks(s string) string {
	return stripMarksReplacer.Replace(s)
}

func isVowel(r rune) bool     { return vowelSet[r] }
func isConsonant(r rune) bool { return consonantSet[r] }
func isWordChar(r rune) bool  { return wordCharSet[r] }

// isMutaCumLiquida reports whether cluster is exactly a stop followed by
// l or r.
func isMutaCumLiquida(cluster string) bool {
	rs := []rune(cluster)
	return len(rs) == 2 && muteSet[rs[0]] && liquidSet[rs[1]]
}

// blocksElision reports whether the token text contains punctuation that
// prevents elision across it (sentence-final marks).
func blocksElision(text string) bool {
	return strings.ContainsAny(text, noElisionChars)
}

func runeSet(chars string) map[rune]bool {
	set := make(map[rune]bool, len(chars))
	for _, r := range chars {
		set[r] = true
	}
	return set
}

func stringSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}
