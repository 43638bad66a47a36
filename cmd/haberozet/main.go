package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/haberozet/haberozet/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		articleURL string
		inputPath  string
		title      string
		method     string
		sentences  int
		language   string
		configPath string
		llmBaseURL string
		llmModel   string
		llmKey     string
		timeout    time.Duration
		verbose    bool
	)

	flag.StringVar(&articleURL, "url", "", "News article URL to fetch and summarize")
	flag.StringVar(&inputPath, "input", "", "Path to a plain-text file to summarize instead of a URL")
	flag.StringVar(&title, "title", "", "Title for the -input text (ignored for URLs)")
	flag.StringVar(&method, "method", "", "Summarization method: tfidf, textrank or abstractive")
	flag.IntVar(&sentences, "n", 0, "Number of summary sentences (extractive methods)")
	flag.StringVar(&language, "lang", "", "Language hint, e.g. 'tr' or 'en'")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for abstractive summaries")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for abstractive summaries")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the model server")
	flag.DurationVar(&timeout, "timeout", 60*time.Second, "Overall run timeout")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.DefaultConfig()
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config file")
		}
		fc.Apply(&cfg)
	}
	app.ApplyEnv(&cfg)
	// Flags win over file and environment.
	if method != "" {
		cfg.Method = method
	}
	if sentences > 0 {
		cfg.SentenceCount = sentences
	}
	if language != "" {
		cfg.Language = language
	}
	if llmBaseURL != "" {
		cfg.LLMBaseURL = llmBaseURL
	}
	if llmModel != "" {
		cfg.LLMModel = llmModel
	}
	if llmKey != "" {
		cfg.LLMAPIKey = llmKey
	}
	cfg.Verbose = verbose

	req := app.Request{URL: articleURL, Title: title}
	if inputPath != "" {
		b, err := os.ReadFile(inputPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", inputPath).Msg("read input")
		}
		req.Text = string(b)
	}
	if strings.TrimSpace(req.URL) == "" && strings.TrimSpace(req.Text) == "" {
		fmt.Fprintln(os.Stderr, "haberozet: provide -url or -input")
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := app.New(cfg).Summarize(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("summarization failed")
	}

	if res.Title != "" {
		fmt.Printf("%s\n%s\n\n", res.Title, strings.Repeat("=", len([]rune(res.Title))))
	}
	fmt.Println(res.Summary)
	fmt.Println()
	fmt.Printf("method: %s", res.Method)
	if res.SentenceCount > 0 {
		fmt.Printf("  sentences: %d/%d", len(res.Sentences), res.SentenceCount)
	}
	fmt.Printf("  compression: %.1f%%\n", res.CompressionRatio*100)
}
