package domain

import "time"

// CacheEntry is one row of the request cache table. Rows are insert-only:
// a row is never updated or deleted, it simply stops matching lookups once
// ValidUntil passes.
type CacheEntry struct {
	ID         int64     // assigned by the store, zero before insert
	Request    string    // canonical request signature
	ValidUntil time.Time // row is usable while now <= ValidUntil
	Data       []byte    // serialized response envelope
}
