package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cryptochart/internal/domain"
	"cryptochart/internal/storage"
)

// CacheStore implements storage.CacheStore using ClickHouse.
type CacheStore struct {
	conn *Conn
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(conn *Conn) *CacheStore {
	return &CacheStore{conn: conn}
}

// Compile-time interface check.
var _ storage.CacheStore = (*CacheStore)(nil)

// Lookup returns the payload of the valid row with the latest valid_until.
// Returns ErrNotFound when no valid row exists.
func (s *CacheStore) Lookup(ctx context.Context, request string, now time.Time) ([]byte, error) {
	query := `
		SELECT data
		FROM request_cache
		WHERE request = ? AND valid_until >= ?
		ORDER BY valid_until DESC
		LIMIT 1
	`

	var data string
	err := s.conn.QueryRow(ctx, query, request, now).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("lookup cache entry: %w", err)
	}
	return []byte(data), nil
}

// Insert adds a new row. Rows for the same request accumulate; MergeTree
// never rewrites them, expiry happens purely through the lookup predicate.
func (s *CacheStore) Insert(ctx context.Context, entry *domain.CacheEntry) error {
	if entry == nil || entry.Request == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO request_cache (request, valid_until, data)
		VALUES (?, ?, ?)
	`

	err := s.conn.Exec(ctx, query, entry.Request, entry.ValidUntil, string(entry.Data))
	if err != nil {
		return fmt.Errorf("insert cache entry: %w", err)
	}
	return nil
}
