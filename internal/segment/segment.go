// Package segment splits raw article text into sentences. Boundary
// detection is rule-table driven: each language carries an abbreviation
// set, and the scanner refuses to break on periods inside decimal numbers,
// after known abbreviations, or inside quoted and parenthetical spans.
package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rules is the tunable boundary-detection table for one language.
type Rules struct {
	// Abbreviations lists lowercase words that end in a period without
	// ending a sentence ("dr", "vb", "örn", ...).
	Abbreviations map[string]struct{}
}

// Options configures segmentation.
type Options struct {
	// Language selects the built-in rule table ("tr" or "en").
	Language string
	// MinChars drops sentences shorter than this many runes after
	// trimming. Zero keeps everything.
	MinChars int
	// Rules overrides the built-in table when non-nil.
	Rules *Rules
}

var turkishAbbrev = makeSet(
	"dr", "doç", "prof", "yrd", "av", "op", "uzm", "ecz", "sn", "hz",
	"alb", "gen", "yzb", "astsb", "vb", "vs", "örn", "bkz", "krş",
	"no", "sok", "cad", "mah", "apt", "tel", "st", "sh", "yy", "çev",
)

var englishAbbrev = makeSet(
	"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "vs", "etc",
	"fig", "al", "inc", "ltd", "co", "corp", "no", "approx", "dept",
	"est", "min", "max", "vol",
)

func makeSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// RulesFor returns the built-in rule table for a language tag. Unknown
// tags get the English table.
func RulesFor(lang string) *Rules {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "tr", "tur", "turkish":
		return &Rules{Abbreviations: turkishAbbrev}
	default:
		return &Rules{Abbreviations: englishAbbrev}
	}
}

// Sentences splits text into trimmed sentences in document order. It
// returns nil when no sentence survives.
func Sentences(text string, opt Options) []string {
	rules := opt.Rules
	if rules == nil {
		rules = RulesFor(opt.Language)
	}

	runes := []rune(text)
	var out []string
	var cur []rune
	depth := 0      // open parentheses/brackets
	quoted := false // inside a double-quoted span

	flush := func() {
		s := strings.TrimSpace(string(cur))
		cur = cur[:0]
		if s == "" {
			return
		}
		if opt.MinChars > 0 && utf8.RuneCountInString(s) < opt.MinChars {
			return
		}
		out = append(out, s)
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case '"':
			quoted = !quoted
		case '“', '«':
			quoted = true
		case '”', '»':
			quoted = false
		case '\n':
			// A blank line is a paragraph break and ends a sentence even
			// without terminal punctuation; a lone newline is a soft wrap.
			if nextIsNewline(runes, i) {
				flush()
				// Unbalanced quotes or brackets must not leak across
				// paragraphs and swallow the rest of the document.
				depth, quoted = 0, false
				for i+1 < len(runes) && (runes[i+1] == '\n' || runes[i+1] == '\r') {
					i++
				}
			} else {
				cur = append(cur, ' ')
			}
			continue
		}

		if !isTerminator(r) {
			cur = append(cur, r)
			continue
		}

		if r == '.' && (isDecimalPoint(runes, i) || endsAbbreviation(runes, i, rules)) {
			cur = append(cur, r)
			continue
		}

		cur = append(cur, r)
		// Fold a terminator run ("...", "?!") into the same boundary.
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
			cur = append(cur, runes[i])
		}
		// Closing quotes and brackets belong to the sentence they end.
		for i+1 < len(runes) && isCloser(runes[i+1]) {
			i++
			cur = append(cur, runes[i])
			switch runes[i] {
			case ')', ']':
				if depth > 0 {
					depth--
				}
			case '"', '”', '»':
				quoted = false
			}
		}

		if depth > 0 || quoted {
			continue
		}
		// A lowercase continuation right after the period means the
		// terminator was not a real boundary.
		if j := nextNonSpace(runes, i); j >= 0 && unicode.IsLower(runes[j]) {
			continue
		}
		flush()
	}
	flush()
	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isCloser(r rune) bool {
	return r == '"' || r == '\'' || r == '”' || r == '’' || r == ')' || r == ']' || r == '»'
}

func nextIsNewline(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		switch runes[j] {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return false
}

func nextNonSpace(runes []rune, i int) int {
	for j := i + 1; j < len(runes); j++ {
		if !unicode.IsSpace(runes[j]) {
			return j
		}
	}
	return -1
}

// isDecimalPoint reports whether the period at i sits between two digits,
// as in "3.5" or "1.234".
func isDecimalPoint(runes []rune, i int) bool {
	return i > 0 && i+1 < len(runes) &&
		unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])
}

// endsAbbreviation reports whether the word ending at the period at i is a
// known abbreviation or a single-letter initial ("F." in "John F. Kennedy").
func endsAbbreviation(runes []rune, i int, rules *Rules) bool {
	start := i
	for start > 0 && unicode.IsLetter(runes[start-1]) {
		start--
	}
	if start == i {
		return false
	}
	word := strings.ToLower(string(runes[start:i]))
	if i-start == 1 && unicode.IsUpper(runes[start]) {
		return true
	}
	_, ok := rules.Abbreviations[word]
	return ok
}
