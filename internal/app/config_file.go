package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration schema. Nested sections
// map naturally onto flags and environment variables.
type FileConfig struct {
	Language  string   `yaml:"language"`
	Method    string   `yaml:"method"`
	Sentences int      `yaml:"sentences"`
	Stopwords []string `yaml:"stopwords"`

	Segment struct {
		MinChars int `yaml:"minChars"`
	} `yaml:"segment"`

	TextRank struct {
		Damping       float64 `yaml:"damping"`
		MaxIterations int     `yaml:"maxIterations"`
		Tolerance     float64 `yaml:"tolerance"`
	} `yaml:"textrank"`

	Fetch struct {
		UserAgent string `yaml:"ua"`
		// Timeout is a Go duration string, e.g. "15s".
		Timeout  string `yaml:"timeout"`
		Attempts int    `yaml:"attempts"`
		MinChars int    `yaml:"minChars"`
	} `yaml:"fetch"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads and parses a YAML configuration file.
func LoadConfigFile(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// Apply overlays the file values onto cfg. Only fields the file actually
// sets are copied, so flags and defaults survive.
func (fc *FileConfig) Apply(cfg *Config) {
	if fc.Language != "" {
		cfg.Language = fc.Language
	}
	if fc.Method != "" {
		cfg.Method = fc.Method
	}
	if fc.Sentences > 0 {
		cfg.SentenceCount = fc.Sentences
	}
	if len(fc.Stopwords) > 0 {
		cfg.StopwordOverrides = fc.Stopwords
	}
	if fc.Segment.MinChars > 0 {
		cfg.MinSentenceChars = fc.Segment.MinChars
	}
	if fc.TextRank.Damping > 0 {
		cfg.Damping = fc.TextRank.Damping
	}
	if fc.TextRank.MaxIterations > 0 {
		cfg.MaxIterations = fc.TextRank.MaxIterations
	}
	if fc.TextRank.Tolerance > 0 {
		cfg.Tolerance = fc.TextRank.Tolerance
	}
	if fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if fc.Fetch.Timeout != "" {
		if d, err := time.ParseDuration(fc.Fetch.Timeout); err == nil && d > 0 {
			cfg.FetchTimeout = d
		}
	}
	if fc.Fetch.Attempts > 0 {
		cfg.FetchAttempts = fc.Fetch.Attempts
	}
	if fc.Fetch.MinChars > 0 {
		cfg.MinContentChars = fc.Fetch.MinChars
	}
	if fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if fc.Server.Addr != "" {
		cfg.ListenAddr = fc.Server.Addr
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
