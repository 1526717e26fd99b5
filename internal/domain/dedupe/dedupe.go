// Package dedupe tracks registered participant emails so the same person is
// not registered twice.
package dedupe

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
)

// Deduper records seen registration keys (emails) to keep registration
// idempotent.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Unrecord removes a key from the seen set. Used to roll back a
	// reservation when the registration that claimed it fails downstream.
	Unrecord(ctx context.Context, key string)

	Size() int64
}

// inMemoryDeduper implements Deduper with a mutex-guarded set. Keys are
// compared case-insensitively; the participant registry is small and never
// evicts.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
	size atomic.Int64
}

// NewInMemoryDeduper creates an empty in-memory deduper.
func NewInMemoryDeduper() Deduper {
	return &inMemoryDeduper{
		seen: make(map[string]struct{}),
	}
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	k := canonical(key)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[k]; exists {
		return true
	}
	d.seen[k] = struct{}{}
	d.size.Add(1)
	return false
}

func (d *inMemoryDeduper) Unrecord(_ context.Context, key string) {
	k := canonical(key)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[k]; exists {
		delete(d.seen, k)
		d.size.Add(-1)
	}
}

func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}

func canonical(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
