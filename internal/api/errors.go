package api

import "errors"

// Client errors, one per API failure mode. Wrapped with call context by the
// client; match with errors.Is.
var (
	// ErrInvalidParameter is returned for HTTP 400 responses.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnauthorized is returned for HTTP 401 responses.
	ErrUnauthorized = errors.New("unauthorized request")

	// ErrMethodNotAllowed is returned for HTTP 405 responses.
	ErrMethodNotAllowed = errors.New("request method not allowed")

	// ErrRateLimitExceeded is returned for HTTP 429 responses.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrServer is returned for HTTP 500 responses and for 200 responses
	// whose payload is missing the fields the called method requires.
	ErrServer = errors.New("server error")

	// ErrInvalidResponse is returned when a 200 response body is not a
	// JSON object.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrUnknown is returned when no response could be obtained at all,
	// or for any status code not covered above.
	ErrUnknown = errors.New("unknown error")
)
