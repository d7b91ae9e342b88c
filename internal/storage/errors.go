package storage

import "errors"

var (
	// ErrNotFound is returned when no currently valid row exists for a
	// request signature.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
