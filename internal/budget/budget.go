package budget

import "math"

// EstimateTokensFromChars converts a character count into an estimated
// token count using a conservative heuristic (~4 chars per token). The
// result is always at least 1 when chars > 0.
func EstimateTokensFromChars(charCount int) int {
	if charCount <= 0 {
		return 0
	}
	// Keep conservative to avoid overruns. Use ceiling for safety.
	return int(math.Ceil(float64(charCount) / 4.0))
}

// EstimateTokens returns the estimated token count of a string.
func EstimateTokens(s string) int {
	return EstimateTokensFromChars(len(s))
}

// FitsInput reports whether text fits the given input-token budget.
func FitsInput(text string, maxInputTokens int) bool {
	return EstimateTokens(text) <= maxInputTokens
}
