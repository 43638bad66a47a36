// Package stopwords holds the bundled stopword lists and the filter that
// removes them from token sequences before scoring. Lists are embedded at
// build time, parsed once on first use, and read-only afterwards, so the
// sets can be shared freely across concurrent summarization calls.
package stopwords

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed turkish.txt
var turkishRaw string

//go:embed english.txt
var englishRaw string

// Set is a stopword lookup table.
type Set map[string]struct{}

var (
	once    sync.Once
	turkish Set
	english Set
)

func load() {
	english = parse(englishRaw)
	// The Turkish set is the curated domain list merged with the general
	// English list; wire-service articles mix both languages.
	turkish = parse(turkishRaw)
	for w := range english {
		turkish[w] = struct{}{}
	}
}

func parse(raw string) Set {
	s := make(Set, 256)
	for _, line := range strings.Split(raw, "\n") {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// ForLanguage returns the shared stopword set for a language tag. Unknown
// tags fall back to the English list. The returned set must not be mutated;
// use With to derive an extended copy.
func ForLanguage(lang string) Set {
	once.Do(load)
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "tr", "tur", "turkish":
		return turkish
	default:
		return english
	}
}

// Has reports whether tok is a stopword.
func (s Set) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// With returns a copy of the set extended with the given tokens, leaving
// the shared set untouched.
func (s Set) With(extra []string) Set {
	out := make(Set, len(s)+len(extra))
	for w := range s {
		out[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.TrimSpace(w)
		if w != "" {
			out[w] = struct{}{}
		}
	}
	return out
}

// Filter returns tokens with stopwords removed, order preserved. A sequence
// that is entirely stopwords yields an empty (nil) result.
func (s Set) Filter(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if s.Has(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
