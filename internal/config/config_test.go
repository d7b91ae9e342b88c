package config

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	options := Default()

	if options.APIKey != "" || options.APISecret != "" {
		t.Errorf("defaults must not carry credentials: %+v", options)
	}
	if options.CacheTimeViewCoin != "+5 minutes" {
		t.Errorf("CacheTimeViewCoin = %q", options.CacheTimeViewCoin)
	}
	if options.CacheTimeGetCoins != "+1 day" || options.CacheTimeViewCoinHistory != "+1 day" {
		t.Errorf("daily cache times wrong: %+v", options)
	}
	if options.CacheTimeGetDataTypes != "+1 month" || options.CacheTimeGetBaseCurrencies != "+1 month" {
		t.Errorf("monthly cache times wrong: %+v", options)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CRYPTOCHART_API_KEY", "key-from-env")
	t.Setenv("CRYPTOCHART_API_SECRET", "secret-from-env")
	t.Setenv("CRYPTOCHART_CACHE_TIME_VIEW_COIN", "+10 minutes")

	options := FromEnv()

	if options.APIKey != "key-from-env" || options.APISecret != "secret-from-env" {
		t.Errorf("credentials not read from env: %+v", options)
	}
	if options.CacheTimeViewCoin != "+10 minutes" {
		t.Errorf("CacheTimeViewCoin = %q, want override", options.CacheTimeViewCoin)
	}
	if options.CacheTimeGetCoins != DefaultCacheTimeGetCoins {
		t.Errorf("unset cache time should fall back to default, got %q", options.CacheTimeGetCoins)
	}
}

func TestValidate(t *testing.T) {
	options := Default()
	if err := options.Validate(); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("got %v, want ErrMissingCredentials", err)
	}

	options.APIKey = "key"
	if err := options.Validate(); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("key without secret: got %v, want ErrMissingCredentials", err)
	}

	options.APISecret = "secret"
	if err := options.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
