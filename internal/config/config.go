// Package config holds the plugin options: API credentials and the cache
// duration expression for each cacheable API method.
package config

import (
	"errors"
	"os"
)

// Default cache durations, matching the settings screen defaults.
const (
	DefaultCacheTimeViewCoin          = "+5 minutes"
	DefaultCacheTimeViewCoinHistory   = "+1 day"
	DefaultCacheTimeGetCoins          = "+1 day"
	DefaultCacheTimeGetDataTypes      = "+1 month"
	DefaultCacheTimeGetBaseCurrencies = "+1 month"
)

// ErrMissingCredentials is returned by Validate when no key or secret is set.
var ErrMissingCredentials = errors.New("api key and secret are not configured")

// Options is the configuration record consumed by the request cache and the
// API client. Cache times are relative-time expressions such as "+1 day",
// resolved against the current time when a cache row is written.
type Options struct {
	APIKey    string
	APISecret string

	CacheTimeGetCoins          string
	CacheTimeViewCoin          string
	CacheTimeViewCoinHistory   string
	CacheTimeGetDataTypes      string
	CacheTimeGetBaseCurrencies string
}

// Default returns options with empty credentials and the default cache times.
func Default() *Options {
	return &Options{
		CacheTimeGetCoins:          DefaultCacheTimeGetCoins,
		CacheTimeViewCoin:          DefaultCacheTimeViewCoin,
		CacheTimeViewCoinHistory:   DefaultCacheTimeViewCoinHistory,
		CacheTimeGetDataTypes:      DefaultCacheTimeGetDataTypes,
		CacheTimeGetBaseCurrencies: DefaultCacheTimeGetBaseCurrencies,
	}
}

// FromEnv builds options from environment variables, falling back to the
// defaults for unset cache times. Credentials have no fallback.
func FromEnv() *Options {
	return &Options{
		APIKey:    os.Getenv("CRYPTOCHART_API_KEY"),
		APISecret: os.Getenv("CRYPTOCHART_API_SECRET"),

		CacheTimeGetCoins:          getEnv("CRYPTOCHART_CACHE_TIME_GET_COINS", DefaultCacheTimeGetCoins),
		CacheTimeViewCoin:          getEnv("CRYPTOCHART_CACHE_TIME_VIEW_COIN", DefaultCacheTimeViewCoin),
		CacheTimeViewCoinHistory:   getEnv("CRYPTOCHART_CACHE_TIME_VIEW_COIN_HISTORY", DefaultCacheTimeViewCoinHistory),
		CacheTimeGetDataTypes:      getEnv("CRYPTOCHART_CACHE_TIME_GET_DATA_TYPES", DefaultCacheTimeGetDataTypes),
		CacheTimeGetBaseCurrencies: getEnv("CRYPTOCHART_CACHE_TIME_GET_BASE_CURRENCIES", DefaultCacheTimeGetBaseCurrencies),
	}
}

// Validate checks that credentials are present.
func (o *Options) Validate() error {
	if o.APIKey == "" || o.APISecret == "" {
		return ErrMissingCredentials
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
