package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	// Summarization
	Language          string
	Method            string
	SentenceCount     int
	MinSentenceChars  int
	StopwordOverrides []string

	// TextRank knobs; zero values use the scorer defaults.
	Damping       float64
	MaxIterations int
	Tolerance     float64

	// Acquisition
	UserAgent     string
	FetchTimeout  time.Duration
	FetchAttempts int
	// MinContentChars rejects pages whose extracted body is shorter than
	// this; such pages are treated as failed extractions.
	MinContentChars int

	// Generation (abstractive)
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Server
	ListenAddr string

	Verbose bool
}

// DefaultConfig returns the defaults for Turkish news: 3-sentence
// TextRank summaries with short-fragment filtering.
func DefaultConfig() Config {
	return Config{
		Language:         "tr",
		Method:           MethodTextRank,
		SentenceCount:    3,
		MinSentenceChars: 20,
		UserAgent:        "haberozet/1.0 (+https://github.com/haberozet/haberozet)",
		FetchTimeout:     15 * time.Second,
		FetchAttempts:    2,
		MinContentChars:  100,
		ListenAddr:       ":8080",
	}
}
