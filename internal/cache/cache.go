// Package cache provides a process-scoped memoization store keyed by
// content hash. Fetched articles and computed summaries for the same
// URL/parameter combination are served from memory; nothing is written to
// disk and the store dies with the process.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
)

// Memo is a concurrency-safe in-memory key/value store.
type Memo struct {
	mu      sync.RWMutex
	entries map[string][]byte
	// MaxEntries bounds memory use; zero means 1024. On overflow the
	// store is reset rather than evicted per-entry, matching its role as
	// a best-effort memoization layer.
	MaxEntries int
}

// NewMemo returns an empty store.
func NewMemo() *Memo {
	return &Memo{entries: make(map[string][]byte)}
}

// KeyFrom derives a stable cache key from the given parts.
func KeyFrom(parts ...string) string {
	h := sha256.Sum256([]byte(strings.Join(parts, "\n\n")))
	return hex.EncodeToString(h[:])
}

// Get returns the cached bytes for key, if present.
func (m *Memo) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Set stores val under key, copying the slice so callers cannot mutate
// cached state afterwards.
func (m *Memo) Set(key string, val []byte) {
	cp := make([]byte, len(val))
	copy(cp, val)

	max := m.MaxEntries
	if max <= 0 {
		max = 1024
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil || len(m.entries) >= max {
		m.entries = make(map[string][]byte)
	}
	m.entries[key] = cp
}

// Len reports the number of cached entries.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
