package app

import (
	"os"
	"strconv"
	"time"
)

// ApplyEnv overlays HABEROZET_* environment variables onto cfg. Env wins
// over file values but loses to explicit flags, which the mains apply
// last.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("HABEROZET_LANG"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("HABEROZET_METHOD"); v != "" {
		cfg.Method = v
	}
	if v := os.Getenv("HABEROZET_SENTENCES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SentenceCount = n
		}
	}
	if v := os.Getenv("HABEROZET_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("HABEROZET_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.FetchTimeout = d
		}
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLMBaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLMModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLMAPIKey = v
	}
}
