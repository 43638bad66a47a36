package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/haberozet/haberozet/internal/app"
)

const testArticle = "Merkez Bankası politika faizini sabit tuttu. " +
	"Piyasalar karara olumlu tepki gösterdi. " +
	"Analistler enflasyonun gerileyeceğini öngörüyor. " +
	"Yetkililer fiyat istikrarı hedefini yineledi."

func testServer() *Server {
	cfg := app.DefaultConfig()
	cfg.MinSentenceChars = 0
	return NewServer(app.New(cfg))
}

func postJSON(t *testing.T, srv *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSummarizeEndpoint_Text(t *testing.T) {
	srv := testServer()
	rec := postJSON(t, srv, SummarizeRequest{Text: testArticle, Method: "tfidf", Sentences: 2})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var res app.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(res.Sentences) != 2 || res.SentenceCount != 4 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Method != "tfidf" {
		t.Fatalf("unexpected method %q", res.Method)
	}
}

func TestSummarizeEndpoint_TitleEchoed(t *testing.T) {
	srv := testServer()
	rec := postJSON(t, srv, SummarizeRequest{Text: testArticle, Title: "Faiz kararı", Method: "tfidf"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var res app.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if res.Title != "Faiz kararı" {
		t.Fatalf("unexpected title %q", res.Title)
	}
}

func TestSummarizeEndpoint_WhitespaceTextNotMissing(t *testing.T) {
	// A whitespace-only text is present but empty, so it must not be
	// rejected as a missing input.
	srv := testServer()
	rec := postJSON(t, srv, SummarizeRequest{Text: "   ", Method: "tfidf"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body)
	}
	if strings.Contains(rec.Body.String(), "url or text") {
		t.Fatalf("whitespace text treated as missing: %s", rec.Body)
	}
}

func TestSummarizeEndpoint_MissingInput(t *testing.T) {
	srv := testServer()
	rec := postJSON(t, srv, SummarizeRequest{Method: "tfidf"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "url or text") {
		t.Fatalf("unexpected error body: %s", rec.Body)
	}
}

func TestSummarizeEndpoint_UnknownMethod(t *testing.T) {
	srv := testServer()
	rec := postJSON(t, srv, SummarizeRequest{Text: testArticle, Method: "bert"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body)
	}
}

func TestSummarizeEndpoint_EmptyDocument(t *testing.T) {
	srv := testServer()
	rec := postJSON(t, srv, SummarizeRequest{Text: "\n \n", Method: "textrank"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body)
	}
}

func TestSummarizeEndpoint_AbstractiveUnavailable(t *testing.T) {
	srv := testServer()
	rec := postJSON(t, srv, SummarizeRequest{Text: testArticle, Method: "abstractive"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rec.Code, rec.Body)
	}
}

func TestSummarizeEndpoint_InvalidJSON(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader("{bozuk"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
