package normalize

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokens lowercases a sentence and splits it into word tokens with
// punctuation and digits stripped. Lowercasing is locale-aware so that
// Turkish dotted/dotless I folds correctly (İ→i, I→ı). Tokens left empty
// after stripping (pure punctuation, standalone numbers) are dropped.
// Pure function; the same input always yields the same token sequence.
func Tokens(text string, lang string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	// cases.Caser carries internal state, so build one per call rather
	// than sharing across goroutines.
	lowered := cases.Lower(tagFor(lang)).String(text)

	var out []string
	iter := words.FromString(lowered)
	for iter.Next() {
		tok := stripNonLetters(iter.Value())
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func tagFor(lang string) language.Tag {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "tr", "tur", "turkish":
		return language.Turkish
	case "en", "eng", "english":
		return language.English
	default:
		return language.Und
	}
}

// stripNonLetters removes every rune that is not a letter, so "türkiye'de"
// becomes "türkiyede" and "covid19" becomes "covid". A token with no
// letters at all collapses to the empty string.
func stripNonLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
