package history

import (
	"context"
	"sync"
	"time"

	"github.com/msto63/numtower/foundation/core/config"
	"github.com/msto63/numtower/foundation/core/log"
)

// Open returns the store selected by cfg: a SQLiteStore at cfg.History.Path,
// or a NopStore when history is disabled
func Open(cfg *config.Config, logger *log.Logger) (Store, error) {
	if !cfg.HistoryEnabled() {
		return NopStore{}, nil
	}
	return NewSQLiteStore(Config{Path: cfg.History.Path, Logger: logger})
}

// MemoryStore is an in-memory implementation for tests and short sessions
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make([]*Entry, 0)}
}

// Record stores a copy of entry
func (s *MemoryStore) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(entry)
	stored := *entry
	s.entries = append(s.entries, &stored)
	return nil
}

// Recent retrieves entries matching filter, newest first
func (s *MemoryStore) Recent(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*Entry
	for i := len(s.entries) - 1; i >= 0; i-- {
		entry := s.entries[i]
		if filter.SessionID != "" && entry.SessionID != filter.SessionID {
			continue
		}
		if !filter.Since.IsZero() && entry.Timestamp.Before(filter.Since) {
			continue
		}
		if filter.Failed != nil && entry.Failed() != *filter.Failed {
			continue
		}
		stored := *entry
		results = append(results, &stored)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(results) {
			return nil, nil
		}
		results = results[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(results) {
		results = results[:filter.Limit]
	}
	return results, nil
}

// Count returns the number of stored entries
func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.entries)), nil
}

// Clear deletes every entry
func (s *MemoryStore) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := int64(len(s.entries))
	s.entries = make([]*Entry, 0)
	return deleted, nil
}

// Prune removes entries older than olderThan
func (s *MemoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var deleted int64
	kept := make([]*Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.Timestamp.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, entry)
	}
	s.entries = kept
	return deleted, nil
}

// Close is a no-op for memory store
func (s *MemoryStore) Close() error {
	return nil
}

// NopStore discards everything; used when history is disabled
type NopStore struct{}

func (NopStore) Record(context.Context, *Entry) error { return nil }
func (NopStore) Recent(context.Context, Filter) ([]*Entry, error) { return nil, nil }
func (NopStore) Count(context.Context) (int64, error) { return 0, nil }
func (NopStore) Clear(context.Context) (int64, error) { return 0, nil }
func (NopStore) Prune(context.Context, time.Duration) (int64, error) { return 0, nil }
func (NopStore) Close() error { return nil }

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MemoryStore)(nil)
	_ Store = NopStore{}
)
