package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/haberozet/haberozet/internal/abstractive"
	"github.com/haberozet/haberozet/internal/cache"
	"github.com/haberozet/haberozet/internal/extract"
	"github.com/haberozet/haberozet/internal/fetch"
	"github.com/haberozet/haberozet/internal/llm"
	"github.com/haberozet/haberozet/internal/summarize"
)

// Summarization methods selectable by the caller.
const (
	MethodTFIDF       = "tfidf"
	MethodTextRank    = "textrank"
	MethodAbstractive = "abstractive"
)

// ErrUnknownMethod is returned for a method outside the known set.
var ErrUnknownMethod = errors.New("unknown summarization method")

// ErrInsufficientContent is returned when a fetched page yields too little
// article text to summarize.
var ErrInsufficientContent = errors.New("not enough article content")

// App wires acquisition, the extractive core and the generation client
// together. It holds no per-request state; one App serves concurrent
// callers.
type App struct {
	cfg     Config
	fetcher *fetch.Client
	gen     *abstractive.Summarizer
	memo    *cache.Memo
}

// New builds an App from configuration. The abstractive path is only
// available when an LLM model is configured.
func New(cfg Config) *App {
	a := &App{
		cfg: cfg,
		fetcher: &fetch.Client{
			UserAgent:         cfg.UserAgent,
			MaxAttempts:       cfg.FetchAttempts,
			PerRequestTimeout: cfg.FetchTimeout,
		},
		memo: cache.NewMemo(),
	}
	if strings.TrimSpace(cfg.LLMModel) != "" {
		a.gen = &abstractive.Summarizer{
			Client:   llm.New(cfg.LLMBaseURL, cfg.LLMAPIKey),
			Model:    cfg.LLMModel,
			Language: cfg.Language,
		}
	}
	return a
}

// Request describes one summarization job. Exactly one of URL and Text
// must be set; zero-valued fields fall back to the App's configuration.
type Request struct {
	URL           string
	Text          string
	Title         string
	Method        string
	SentenceCount int
	Language      string
}

// Summary is the caller-facing result of one job.
type Summary struct {
	Title            string          `json:"title,omitempty"`
	URL              string          `json:"url,omitempty"`
	Method           string          `json:"method"`
	Summary          string          `json:"summary"`
	Sentences        []string        `json:"sentences"`
	SentenceCount    int             `json:"sentence_count"`
	CompressionRatio float64         `json:"compression_ratio"`
	Scores           map[int]float64 `json:"scores,omitempty"`
}

// Summarize runs one job end to end: acquire (if a URL was given), then
// summarize with the requested method. Results for identical inputs are
// memoized for the process lifetime.
func (a *App) Summarize(ctx context.Context, req Request) (*Summary, error) {
	method := strings.ToLower(strings.TrimSpace(req.Method))
	if method == "" {
		method = a.cfg.Method
	}
	switch method {
	case MethodTFIDF, MethodTextRank, MethodAbstractive:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, req.Method)
	}

	lang := req.Language
	if strings.TrimSpace(lang) == "" {
		lang = a.cfg.Language
	}
	n := req.SentenceCount
	if n <= 0 {
		n = a.cfg.SentenceCount
	}

	title := req.Title
	text := req.Text
	// Whitespace-only text is still a text request; segmentation reports
	// it as an empty document. Only a truly absent text falls back to the
	// URL.
	if text == "" {
		if strings.TrimSpace(req.URL) == "" {
			return nil, fmt.Errorf("%w: either url or text must be provided", summarize.ErrInvalidRequest)
		}
		art, err := a.fetchArticle(ctx, req.URL)
		if err != nil {
			return nil, err
		}
		title, text = art.Title, art.Text
	}

	key := cache.KeyFrom(text, method, strconv.Itoa(n), lang)
	if raw, ok := a.memo.Get(key); ok {
		var cached Summary
		if err := json.Unmarshal(raw, &cached); err == nil {
			log.Debug().Str("method", method).Msg("summary served from memo")
			cached.URL = req.URL
			return &cached, nil
		}
	}

	var out *Summary
	var err error
	if method == MethodAbstractive {
		out, err = a.generateSummary(ctx, text, lang)
	} else {
		out, err = a.extractSummary(text, method, n, lang)
	}
	if err != nil {
		return nil, err
	}
	out.Title = title
	out.URL = req.URL

	if raw, err := json.Marshal(out); err == nil {
		a.memo.Set(key, raw)
	}
	log.Info().
		Str("method", method).
		Int("sentences", len(out.Sentences)).
		Float64("compression", out.CompressionRatio).
		Msg("summary produced")
	return out, nil
}

func (a *App) extractSummary(text, method string, n int, lang string) (*Summary, error) {
	opts := summarize.Options{
		Language:          lang,
		StopwordOverrides: a.cfg.StopwordOverrides,
		MinSentenceChars:  a.cfg.MinSentenceChars,
		Damping:           a.cfg.Damping,
		MaxIterations:     a.cfg.MaxIterations,
		Tolerance:         a.cfg.Tolerance,
	}

	var res *summarize.Result
	var err error
	if method == MethodTFIDF {
		res, err = summarize.SummarizeTFIDF(text, n, opts)
	} else {
		res, err = summarize.SummarizeTextRank(text, n, opts)
	}
	if err != nil {
		return nil, err
	}

	sentences := make([]string, len(res.Sentences))
	for i, s := range res.Sentences {
		sentences[i] = s.Text
	}
	return &Summary{
		Method:           method,
		Summary:          res.Text(),
		Sentences:        sentences,
		SentenceCount:    res.SentenceCount,
		CompressionRatio: res.CompressionRatio,
		Scores:           res.Scores,
	}, nil
}

func (a *App) generateSummary(ctx context.Context, text, lang string) (*Summary, error) {
	if a.gen == nil {
		return nil, abstractive.ErrNotConfigured
	}
	generated, err := a.gen.Summarize(ctx, text)
	if err != nil {
		return nil, err
	}
	ratio := 0.0
	if total := utf8.RuneCountInString(text); total > 0 {
		ratio = float64(utf8.RuneCountInString(generated)) / float64(total)
	}
	return &Summary{
		Method:           MethodAbstractive,
		Summary:          generated,
		Sentences:        []string{generated},
		CompressionRatio: ratio,
	}, nil
}

// fetchArticle downloads and extracts one article, memoized per URL.
// Fetch errors are surfaced unmodified; the app never retries beyond the
// fetch client's own policy.
func (a *App) fetchArticle(ctx context.Context, url string) (*extract.Article, error) {
	key := cache.KeyFrom("article", url)
	if raw, ok := a.memo.Get(key); ok {
		var art extract.Article
		if err := json.Unmarshal(raw, &art); err == nil {
			return &art, nil
		}
	}

	body, _, err := a.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	art := extract.FromHTML(body)
	art.Text = extract.CleanArticleText(art.Text, art.Title)
	if utf8.RuneCountInString(art.Text) < a.cfg.MinContentChars {
		return nil, fmt.Errorf("%w: %s", ErrInsufficientContent, url)
	}

	if raw, err := json.Marshal(art); err == nil {
		a.memo.Set(key, raw)
	}
	log.Debug().Str("url", url).Int("chars", len(art.Text)).Msg("article fetched")
	return &art, nil
}
