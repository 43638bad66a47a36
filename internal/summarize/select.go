package summarize

import "sort"

// selectTop picks the n highest-scoring sentences and returns them in
// ascending document order so the summary reads coherently. Ties break
// toward the earlier sentence. n is clamped to [1, len(sentences)].
func selectTop(sentences []Sentence, scores []float64, n int) ([]Sentence, map[int]float64, error) {
	s := len(sentences)
	if s == 0 {
		return nil, nil, ErrInvalidRequest
	}
	if n < 1 {
		n = 1
	}
	if n > s {
		n = s
	}

	order := make([]int, s)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if scores[ia] != scores[ib] {
			return scores[ia] > scores[ib]
		}
		return ia < ib
	})

	picked := order[:n]
	sort.Ints(picked)

	selected := make([]Sentence, 0, n)
	selScores := make(map[int]float64, n)
	for _, idx := range picked {
		selected = append(selected, sentences[idx])
		selScores[idx] = scores[idx]
	}
	return selected, selScores, nil
}
