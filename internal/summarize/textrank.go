package summarize

import "math"

const (
	defaultDamping       = 0.85
	defaultMaxIterations = 100
	defaultTolerance     = 1e-4
)

// TextRank ranks sentences by centrality in a token-overlap similarity
// graph using damped power iteration, after Mihalcea & Tarau (2004).
// Zero-valued fields fall back to the defaults.
type TextRank struct {
	Damping       float64
	MaxIterations int
	Tolerance     float64
}

func (tr TextRank) damping() float64 {
	if tr.Damping <= 0 || tr.Damping >= 1 {
		return defaultDamping
	}
	return tr.Damping
}

func (tr TextRank) maxIterations() int {
	if tr.MaxIterations <= 0 {
		return defaultMaxIterations
	}
	return tr.MaxIterations
}

func (tr TextRank) tolerance() float64 {
	if tr.Tolerance <= 0 {
		return defaultTolerance
	}
	return tr.Tolerance
}

func (tr TextRank) Score(sentences []Sentence) []float64 {
	n := len(sentences)

	sets := make([]map[string]struct{}, n)
	for i, s := range sentences {
		set := make(map[string]struct{}, len(s.Tokens))
		for _, t := range s.Tokens {
			set[t] = struct{}{}
		}
		sets[i] = set
	}

	// Symmetric similarity matrix plus each node's total outgoing weight.
	// Isolated sentences keep outSum 0 and simply never distribute mass.
	weights := make([][]float64, n)
	for i := range weights {
		weights[i] = make([]float64, n)
	}
	outSum := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := overlapSimilarity(sets[i], sets[j])
			if w == 0 {
				continue
			}
			weights[i][j] = w
			weights[j][i] = w
			outSum[i] += w
			outSum[j] += w
		}
	}

	d := tr.damping()
	tol := tr.tolerance()
	base := (1 - d) / float64(n)

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / float64(n)
	}

	// Power iteration; on hitting the cap the last vector is returned
	// as a best-effort ranking rather than an error.
	for iter := 0; iter < tr.maxIterations(); iter++ {
		next := make([]float64, n)
		for i := 0; i < n; i++ {
			var sum float64
			for j := 0; j < n; j++ {
				if weights[j][i] == 0 || outSum[j] == 0 {
					continue
				}
				sum += weights[j][i] / outSum[j] * scores[j]
			}
			next[i] = base + d*sum
		}
		var delta float64
		for i := range next {
			delta += math.Abs(next[i] - scores[i])
		}
		scores = next
		if delta < tol {
			break
		}
	}
	return scores
}

// overlapSimilarity is the shared-token count normalized by the sum of the
// log set sizes. Sets of size 0 or 1 would make the denominator zero or
// negative-infinite, so those pairs get weight 0.
func overlapSimilarity(a, b map[string]struct{}) float64 {
	if len(a) <= 1 || len(b) <= 1 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	shared := 0
	for t := range small {
		if _, ok := large[t]; ok {
			shared++
		}
	}
	if shared == 0 {
		return 0
	}
	return float64(shared) / (math.Log(float64(len(a))) + math.Log(float64(len(b))))
}
