// Package abstractive produces a generated summary by calling a chat
// model. Unlike the extractive core it emits novel sentences; the model
// is an external black box reached through llm.Client. Long inputs are
// split into sentence-aligned chunks that fit the model's input budget,
// each chunk is summarized separately, and the pieces are joined.
package abstractive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/haberozet/haberozet/internal/budget"
	"github.com/haberozet/haberozet/internal/llm"
	"github.com/haberozet/haberozet/internal/segment"
)

const (
	defaultMaxInputTokens  = 512
	defaultMaxOutputTokens = 150
)

var ErrNotConfigured = errors.New("abstractive summarizer not configured")

// Summarizer generates summaries through an OpenAI-compatible model.
type Summarizer struct {
	Client llm.Client
	Model  string
	// Language steers the output language; empty means Turkish.
	Language string
	// MaxInputTokens caps each request's input. Zero means 512.
	MaxInputTokens int
	// MaxOutputTokens caps the generated summary length. Zero means 150.
	MaxOutputTokens int
}

func (s *Summarizer) maxInput() int {
	if s.MaxInputTokens <= 0 {
		return defaultMaxInputTokens
	}
	return s.MaxInputTokens
}

func (s *Summarizer) maxOutput() int {
	if s.MaxOutputTokens <= 0 {
		return defaultMaxOutputTokens
	}
	return s.MaxOutputTokens
}

// Summarize generates a summary of text. Inputs over the token budget are
// chunked on sentence boundaries; each chunk yields one partial summary
// and the parts are joined with spaces.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if s.Client == nil || strings.TrimSpace(s.Model) == "" {
		return "", ErrNotConfigured
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("empty input text")
	}

	var parts []string
	for _, chunk := range s.chunk(text) {
		out, err := s.generate(ctx, chunk)
		if err != nil {
			return "", err
		}
		if out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, " "), nil
}

// chunk splits text into pieces that fit the input budget without breaking
// sentences. A single oversized sentence becomes its own chunk and is left
// to the model's server-side truncation.
func (s *Summarizer) chunk(text string) []string {
	if budget.FitsInput(text, s.maxInput()) {
		return []string{text}
	}

	sentences := segment.Sentences(text, segment.Options{Language: s.Language})
	if len(sentences) == 0 {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	for _, sent := range sentences {
		if cur.Len() > 0 && !budget.FitsInput(cur.String()+" "+sent, s.maxInput()) {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString(" ")
		}
		cur.WriteString(sent)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

func (s *Summarizer) generate(ctx context.Context, chunk string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.systemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: chunk},
		},
		MaxTokens:   s.maxOutput(),
		Temperature: 0.1,
		N:           1,
	}
	resp, err := s.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *Summarizer) systemPrompt() string {
	lang := s.Language
	if strings.TrimSpace(lang) == "" {
		lang = "tr"
	}
	if strings.HasPrefix(strings.ToLower(lang), "tr") {
		return "Aşağıdaki haber metnini birkaç cümleyle özetle. Yalnızca özeti yaz."
	}
	return "Summarize the following news article in a few sentences. Reply with the summary only."
}
