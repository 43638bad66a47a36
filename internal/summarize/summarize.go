// Package summarize implements extractive summarization over a single
// document: sentences are segmented, normalized and scored, and the
// highest-scoring subset is re-emitted in document order. Two scoring
// strategies are provided, frequency-based (TF-IDF) and graph-based
// (TextRank), behind one Scorer interface.
package summarize

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/haberozet/haberozet/internal/normalize"
	"github.com/haberozet/haberozet/internal/segment"
	"github.com/haberozet/haberozet/internal/stopwords"
)

// ErrEmptyInput is returned when segmentation finds no sentences.
var ErrEmptyInput = errors.New("no sentences found in input")

// ErrInvalidRequest is returned when the requested sentence count cannot
// be satisfied because the collection is empty.
var ErrInvalidRequest = errors.New("invalid summary request")

// Sentence is one scorable unit of the document. Index is the 0-based
// position in the original text; Tokens holds the normalized,
// stopword-filtered words and may be empty without the sentence being
// dropped, so indices stay aligned with the original text.
type Sentence struct {
	Index  int
	Text   string
	Tokens []string
}

// Result is the outcome of one summarization call. Sentences are the
// selected subset in ascending document order; Scores maps each selected
// sentence index to its raw score.
type Result struct {
	Sentences        []Sentence
	Scores           map[int]float64
	SentenceCount    int
	CompressionRatio float64
}

// Text returns the summary as a single string, sentences joined in
// document order.
func (r *Result) Text() string {
	parts := make([]string, len(r.Sentences))
	for i, s := range r.Sentences {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}

// Scorer turns a sentence collection into one non-negative score per
// sentence, aligned by slice position. Implementations must be
// deterministic and must not retain state between calls.
type Scorer interface {
	Score(sentences []Sentence) []float64
}

// Options is the shared configuration surface of both summarizers.
type Options struct {
	// Language tag for segmentation rules, casing and stopwords.
	// Empty defaults to "tr".
	Language string
	// StopwordOverrides are merged into the built-in stopword set.
	StopwordOverrides []string
	// MinSentenceChars drops sentences shorter than this many runes at
	// segmentation time. Zero keeps everything.
	MinSentenceChars int

	// TextRank knobs. Zero values select the defaults (0.85, 100, 1e-4).
	Damping       float64
	MaxIterations int
	Tolerance     float64
}

func (o Options) language() string {
	if strings.TrimSpace(o.Language) == "" {
		return "tr"
	}
	return o.Language
}

// SummarizeTFIDF selects the n most important sentences using the
// frequency scorer.
func SummarizeTFIDF(text string, n int, opts Options) (*Result, error) {
	return Summarize(text, n, opts, TFIDF{})
}

// SummarizeTextRank selects the n most important sentences using the
// graph-centrality scorer.
func SummarizeTextRank(text string, n int, opts Options) (*Result, error) {
	return Summarize(text, n, opts, TextRank{
		Damping:       opts.Damping,
		MaxIterations: opts.MaxIterations,
		Tolerance:     opts.Tolerance,
	})
}

// Summarize runs the full pipeline with a caller-chosen scoring strategy.
// The input text is never mutated and no state survives the call.
func Summarize(text string, n int, opts Options, scorer Scorer) (*Result, error) {
	lang := opts.language()

	raw := segment.Sentences(text, segment.Options{
		Language: lang,
		MinChars: opts.MinSentenceChars,
	})
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}

	stop := stopwords.ForLanguage(lang)
	if len(opts.StopwordOverrides) > 0 {
		stop = stop.With(opts.StopwordOverrides)
	}

	sentences := make([]Sentence, len(raw))
	for i, s := range raw {
		sentences[i] = Sentence{
			Index:  i,
			Text:   s,
			Tokens: stop.Filter(normalize.Tokens(s, lang)),
		}
	}

	// A single sentence is its own summary; no ranking needed.
	if len(sentences) == 1 {
		return &Result{
			Sentences:        sentences,
			Scores:           map[int]float64{0: 1.0},
			SentenceCount:    1,
			CompressionRatio: ratio(sentences, text),
		}, nil
	}

	scores := scorer.Score(sentences)
	selected, selScores, err := selectTop(sentences, scores, n)
	if err != nil {
		return nil, err
	}

	return &Result{
		Sentences:        selected,
		Scores:           selScores,
		SentenceCount:    len(sentences),
		CompressionRatio: ratio(selected, text),
	}, nil
}

func ratio(selected []Sentence, original string) float64 {
	total := utf8.RuneCountInString(original)
	if total == 0 {
		return 0
	}
	var sum int
	for _, s := range selected {
		sum += utf8.RuneCountInString(s.Text)
	}
	return float64(sum) / float64(total)
}
