package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFile_AppliesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "haberozet.yaml")
	content := `
language: en
method: tfidf
sentences: 5
stopwords: [haber, ajans]
textrank:
  damping: 0.9
  maxIterations: 50
fetch:
  ua: test-agent
  timeout: 5s
llm:
  model: test-model
server:
  addr: ":9000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	fc.Apply(&cfg)

	if cfg.Language != "en" || cfg.Method != "tfidf" || cfg.SentenceCount != 5 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Damping != 0.9 || cfg.MaxIterations != 50 {
		t.Fatalf("textrank section not applied: %+v", cfg)
	}
	if cfg.UserAgent != "test-agent" || cfg.FetchTimeout != 5*time.Second {
		t.Fatalf("fetch section not applied: %+v", cfg)
	}
	if cfg.LLMModel != "test-model" || cfg.ListenAddr != ":9000" {
		t.Fatalf("llm/server sections not applied: %+v", cfg)
	}
	if len(cfg.StopwordOverrides) != 2 {
		t.Fatalf("stopwords not applied: %v", cfg.StopwordOverrides)
	}
	// Untouched fields keep their defaults.
	if cfg.MinContentChars != 100 {
		t.Fatalf("default clobbered: %+v", cfg)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "yok.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("HABEROZET_LANG", "en")
	t.Setenv("HABEROZET_METHOD", "tfidf")
	t.Setenv("HABEROZET_SENTENCES", "7")
	t.Setenv("LLM_MODEL", "env-model")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)

	if cfg.Language != "en" || cfg.Method != "tfidf" || cfg.SentenceCount != 7 {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.LLMModel != "env-model" {
		t.Fatalf("LLM env not applied: %+v", cfg)
	}
}

func TestApplyEnv_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("HABEROZET_SENTENCES", "bozuk")
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	if cfg.SentenceCount != 3 {
		t.Fatalf("invalid env should keep default, got %d", cfg.SentenceCount)
	}
}
