package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/haberozet/haberozet/internal/abstractive"
	"github.com/haberozet/haberozet/internal/app"
	"github.com/haberozet/haberozet/internal/summarize"
)

// SummarizeRequest is the JSON body of POST /api/summarize. Exactly one
// of url and text must be set.
type SummarizeRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
	// Title labels a pasted text; for URL requests the extracted title
	// takes precedence.
	Title     string `json:"title"`
	Method    string `json:"method"`
	Sentences int    `json:"sentences"`
	Language  string `json:"language"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	// A whitespace-only text is a present but empty document and must be
	// judged by the core, which reports it as unprocessable.
	if strings.TrimSpace(req.URL) == "" && req.Text == "" {
		respondError(w, http.StatusBadRequest, "either url or text must be provided")
		return
	}

	res, err := s.app.Summarize(r.Context(), app.Request{
		URL:           req.URL,
		Text:          req.Text,
		Title:         req.Title,
		Method:        req.Method,
		SentenceCount: req.Sentences,
		Language:      req.Language,
	})
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("url", req.URL).Msg("summarization failed")
		}
		respondError(w, status, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrUnknownMethod),
		errors.Is(err, summarize.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, summarize.ErrEmptyInput),
		errors.Is(err, app.ErrInsufficientContent):
		return http.StatusUnprocessableEntity
	case errors.Is(err, abstractive.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		// Acquisition and generation failures from upstream services.
		return http.StatusBadGateway
	}
}
