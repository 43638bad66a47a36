package summarize

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

var economyDoc = strings.Join([]string{
	"Enflasyon yükseldi.",
	"Merkez bankası faiz kararı aldı.",
	"Piyasalar tepki verdi.",
	"Enflasyon beklentileri arttı.",
}, " ")

func TestSummarize_EmptyInputFails(t *testing.T) {
	_, err := SummarizeTFIDF("", 3, Options{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	_, err = SummarizeTextRank("   \n ", 3, Options{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestSummarize_SingleSentenceShortCircuit(t *testing.T) {
	for name, fn := range map[string]func(string, int, Options) (*Result, error){
		"tfidf":    SummarizeTFIDF,
		"textrank": SummarizeTextRank,
	} {
		res, err := fn("Merkez bankası faiz kararını açıkladı.", 5, Options{})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if len(res.Sentences) != 1 {
			t.Fatalf("%s: expected 1 sentence, got %d", name, len(res.Sentences))
		}
		if res.Scores[0] != 1.0 {
			t.Fatalf("%s: expected score 1.0, got %v", name, res.Scores[0])
		}
	}
}

func TestSummarize_OrderPreservedAndCardinality(t *testing.T) {
	for n := 1; n <= 6; n++ {
		res, err := SummarizeTFIDF(economyDoc, n, Options{})
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		wantLen := n
		if wantLen > res.SentenceCount {
			wantLen = res.SentenceCount
		}
		if len(res.Sentences) != wantLen {
			t.Fatalf("n=%d: expected %d sentences, got %d", n, wantLen, len(res.Sentences))
		}
		for k := 0; k+1 < len(res.Sentences); k++ {
			if res.Sentences[k].Index >= res.Sentences[k+1].Index {
				t.Fatalf("n=%d: indices not strictly ascending: %d then %d",
					n, res.Sentences[k].Index, res.Sentences[k+1].Index)
			}
		}
	}
}

func TestSummarize_NClampedToCollection(t *testing.T) {
	res, err := SummarizeTextRank(economyDoc, 0, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Sentences) != 1 {
		t.Fatalf("n below 1 should clamp to 1, got %d sentences", len(res.Sentences))
	}
}

func TestSummarize_TextRankFavorsOverlappingSentences(t *testing.T) {
	// Only the two "enflasyon" sentences share a token, so they form the
	// only edge in the graph and out-rank the isolated sentences.
	res, err := SummarizeTextRank(economyDoc, 2, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []int{res.Sentences[0].Index, res.Sentences[1].Index}
	if !reflect.DeepEqual(got, []int{0, 3}) {
		t.Fatalf("expected indices [0 3], got %v", got)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	opts := Options{Language: "tr"}
	a, err := SummarizeTextRank(economyDoc, 2, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SummarizeTextRank(economyDoc, 2, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated runs differ:\n%+v\n%+v", a, b)
	}
}

func TestSummarize_CompressionRatio(t *testing.T) {
	res, err := SummarizeTFIDF(economyDoc, 2, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.CompressionRatio <= 0 || res.CompressionRatio >= 1 {
		t.Fatalf("expected ratio in (0,1) for a 2-of-4 summary, got %v", res.CompressionRatio)
	}
	full, err := SummarizeTFIDF(economyDoc, 4, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if full.CompressionRatio <= res.CompressionRatio {
		t.Fatalf("selecting more sentences should not shrink the ratio: %v vs %v",
			full.CompressionRatio, res.CompressionRatio)
	}
}

func TestSummarize_StopwordOverrides(t *testing.T) {
	res, err := SummarizeTFIDF(economyDoc, 4, Options{
		StopwordOverrides: []string{"enflasyon"},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range res.Sentences {
		for _, tok := range s.Tokens {
			if tok == "enflasyon" {
				t.Fatalf("override token survived filtering in %v", s.Tokens)
			}
		}
	}
}

func TestSummarize_ResultText(t *testing.T) {
	res, err := SummarizeTFIDF(economyDoc, 2, Options{})
	if err != nil {
		t.Fatal(err)
	}
	text := res.Text()
	if text == "" || !strings.Contains(economyDoc, res.Sentences[0].Text) {
		t.Fatalf("summary text should be built from original sentences, got %q", text)
	}
}

type constantScorer struct{ v float64 }

func (c constantScorer) Score(sentences []Sentence) []float64 {
	out := make([]float64, len(sentences))
	for i := range out {
		out[i] = c.v
	}
	return out
}

func TestSummarize_TieBreaksTowardEarlierSentence(t *testing.T) {
	res, err := Summarize(economyDoc, 2, Options{}, constantScorer{v: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	got := []int{res.Sentences[0].Index, res.Sentences[1].Index}
	if !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("expected earliest indices on ties, got %v", got)
	}
}

func TestSummarize_ScoresFiniteNonNegative(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 60; i++ {
		b.WriteString("Cümle numarası ")
		b.WriteString(strings.Repeat("uzun ", i%5+1))
		b.WriteString("metin içeriyor. ")
	}
	for name, fn := range map[string]func(string, int, Options) (*Result, error){
		"tfidf":    SummarizeTFIDF,
		"textrank": SummarizeTextRank,
	} {
		res, err := fn(b.String(), 5, Options{})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for idx, sc := range res.Scores {
			if math.IsNaN(sc) || math.IsInf(sc, 0) || sc < 0 {
				t.Fatalf("%s: degenerate score %v at index %d", name, sc, idx)
			}
		}
	}
}
