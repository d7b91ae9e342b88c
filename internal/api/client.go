// Package api implements the CryptoCurrencyChart REST API client.
package api

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Default configuration values.
const (
	DefaultBaseURL    = "https://www.cryptocurrencychart.com/api"
	DefaultTimeout    = 30 * time.Second
	DefaultRetryDelay = 1 * time.Second
)

// Client issues authenticated requests against the CryptoCurrencyChart API.
// It knows nothing about caching; see internal/cache for the cached facade.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	logger     *logrus.Logger

	// maxRetries is zero by default: the API contract is a single
	// attempt per call. WithMaxRetries opts into backoff retries on
	// rate-limit and transport failures.
	maxRetries int
	retryDelay time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *logrus.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMaxRetries sets the maximum number of retries for rate-limited or
// failed-transport calls.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryDelay sets the initial retry delay. The delay doubles per attempt.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// NewClient creates a client for the given API key and secret.
func NewClient(apiKey, apiSecret string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logrus.StandardLogger(),
		maxRetries: 0,
		retryDelay: DefaultRetryDelay,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
