package summarize

import "math"

// TFIDF scores each sentence as the sum of its terms' tf-idf weights,
// treating every sentence as one pseudo-document. The idf is smoothed,
// log((1+S)/(1+df)) + 1, so it is always positive and never divides by
// zero; a sentence with no tokens scores 0.
type TFIDF struct{}

func (TFIDF) Score(sentences []Sentence) []float64 {
	total := len(sentences)

	// Document frequency per distinct term.
	df := make(map[string]int)
	for _, s := range sentences {
		seen := make(map[string]struct{}, len(s.Tokens))
		for _, t := range s.Tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	scores := make([]float64, total)
	for i, s := range sentences {
		n := len(s.Tokens)
		if n == 0 {
			continue
		}
		tf := make(map[string]int, n)
		for _, t := range s.Tokens {
			tf[t]++
		}
		// Sum in token order so float rounding is reproducible; map
		// iteration order is randomized.
		var sum float64
		done := make(map[string]struct{}, len(tf))
		for _, t := range s.Tokens {
			if _, ok := done[t]; ok {
				continue
			}
			done[t] = struct{}{}
			idf := math.Log(float64(1+total)/float64(1+df[t])) + 1
			sum += float64(tf[t]) / float64(n) * idf
		}
		scores[i] = sum
	}
	return scores
}
