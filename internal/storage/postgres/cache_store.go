package postgres

import (
	"context"
	"fmt"
	"time"

	"cryptochart/internal/domain"
	"cryptochart/internal/storage"
)

// CacheStore implements storage.CacheStore using PostgreSQL.
type CacheStore struct {
	pool *Pool
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(pool *Pool) *CacheStore {
	return &CacheStore{pool: pool}
}

// Compile-time interface check.
var _ storage.CacheStore = (*CacheStore)(nil)

// Lookup returns the payload of the valid row with the latest valid_until.
// Returns ErrNotFound when no valid row exists.
func (s *CacheStore) Lookup(ctx context.Context, request string, now time.Time) ([]byte, error) {
	query := `
		SELECT data
		FROM request_cache
		WHERE request = $1 AND valid_until >= $2
		ORDER BY valid_until DESC
		LIMIT 1
	`

	var data []byte
	err := s.pool.QueryRow(ctx, query, request, now).Scan(&data)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("lookup cache entry: %w", err)
	}
	return data, nil
}

// Insert adds a new row. Rows for the same request accumulate.
func (s *CacheStore) Insert(ctx context.Context, entry *domain.CacheEntry) error {
	if entry == nil || entry.Request == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO request_cache (request, valid_until, data)
		VALUES ($1, $2, $3)
	`

	_, err := s.pool.Exec(ctx, query, entry.Request, entry.ValidUntil, entry.Data)
	if err != nil {
		return fmt.Errorf("insert cache entry: %w", err)
	}
	return nil
}
