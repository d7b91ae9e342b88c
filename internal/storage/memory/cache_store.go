// Package memory provides an in-memory CacheStore for tests and for
// running without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"cryptochart/internal/domain"
	"cryptochart/internal/storage"
)

// CacheStore is an in-memory implementation of storage.CacheStore.
type CacheStore struct {
	mu      sync.RWMutex
	nextID  int64
	entries map[string][]domain.CacheEntry // keyed by request signature
}

// NewCacheStore creates a new in-memory cache store.
func NewCacheStore() *CacheStore {
	return &CacheStore{
		entries: make(map[string][]domain.CacheEntry),
	}
}

// Lookup returns the payload of the valid row with the latest valid_until.
func (s *CacheStore) Lookup(_ context.Context, request string, now time.Time) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *domain.CacheEntry
	for i := range s.entries[request] {
		entry := &s.entries[request][i]
		if entry.ValidUntil.Before(now) {
			continue
		}
		if best == nil || entry.ValidUntil.After(best.ValidUntil) {
			best = entry
		}
	}
	if best == nil {
		return nil, storage.ErrNotFound
	}

	data := make([]byte, len(best.Data))
	copy(data, best.Data)
	return data, nil
}

// Insert adds a new row. Rows for the same request accumulate.
func (s *CacheStore) Insert(_ context.Context, entry *domain.CacheEntry) error {
	if entry == nil || entry.Request == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *entry
	stored.ID = s.nextID
	stored.Data = make([]byte, len(entry.Data))
	copy(stored.Data, entry.Data)
	s.entries[entry.Request] = append(s.entries[entry.Request], stored)
	return nil
}

var _ storage.CacheStore = (*CacheStore)(nil)
