// Package storage defines the persistence boundary of the request cache.
package storage

import (
	"context"
	"time"

	"cryptochart/internal/domain"
)

// CacheStore provides access to request_cache storage. The table is
// insert-only: rows are never updated or deleted, they simply stop
// matching lookups once their validity window passes.
type CacheStore interface {
	// Lookup returns the payload of a row for the given request signature
	// that is still valid at now. When several valid rows exist the one
	// with the latest valid_until wins, so repeated lookups are
	// deterministic. Returns ErrNotFound when no valid row exists.
	Lookup(ctx context.Context, request string, now time.Time) ([]byte, error)

	// Insert adds a new row. Existing rows for the same request are left
	// in place.
	Insert(ctx context.Context, entry *domain.CacheEntry) error
}
