// Package cache memoizes CryptoCurrencyChart API calls in a persistent
// store, keyed by a canonical request signature with per-operation
// expiry.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"cryptochart/internal/config"
	"cryptochart/internal/domain"
	"cryptochart/internal/observability"
	"cryptochart/internal/storage"
)

// ErrCoinNotFound is returned by CoinByID when no coin has the given id.
var ErrCoinNotFound = errors.New("coin not found")

// ErrCacheTimeNotSet is returned when the cache duration for an operation
// is missing from the options. The check runs after the upstream call and
// before any store write.
var ErrCacheTimeNotSet = errors.New("cache time not configured")

// Client is the part of the API client the cache drives. Satisfied by
// *api.Client.
type Client interface {
	GetCoins(ctx context.Context) ([]domain.Coin, error)
	GetDataTypes(ctx context.Context) ([]string, error)
	GetBaseCurrencies(ctx context.Context) ([]string, error)
	ViewCoin(ctx context.Context, coinID int, date *time.Time, baseCurrency string) (*domain.Coin, error)
	ViewCoinHistory(ctx context.Context, coinID int, start, end time.Time, dataType, baseCurrency string) (*domain.CoinHistory, error)
}

// RequestCache wraps a Client with persistent, TTL-based memoization.
// Upstream errors propagate unchanged and are never cached; concurrent
// misses for one key each call upstream and insert their own row.
type RequestCache struct {
	client  Client
	store   storage.CacheStore
	options *config.Options
	logger  *logrus.Logger
	metrics *observability.Metrics
	now     func() time.Time
}

// Option configures a RequestCache.
type Option func(*RequestCache)

// WithLogger sets the logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *RequestCache) {
		c.logger = logger
	}
}

// WithMetrics enables metric collection.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(c *RequestCache) {
		c.metrics = metrics
	}
}

// WithClock overrides the time source, used by tests to simulate expiry.
func WithClock(now func() time.Time) Option {
	return func(c *RequestCache) {
		c.now = now
	}
}

// New creates a RequestCache over the given client, store and options.
func New(client Client, store storage.CacheStore, options *config.Options, opts ...Option) *RequestCache {
	c := &RequestCache{
		client:  client,
		store:   store,
		options: options,
		logger:  logrus.StandardLogger(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetCoins returns the cached coin list, fetching it on a miss.
func (c *RequestCache) GetCoins(ctx context.Context) ([]domain.Coin, error) {
	key := requestKey(OpGetCoins)

	env, hit, err := c.lookup(ctx, OpGetCoins, key)
	if err != nil {
		return nil, err
	}
	if hit {
		coins, err := env.decodeCoinList()
		if err != nil {
			return nil, c.corrupt(OpGetCoins, key, err)
		}
		return coins, nil
	}

	coins, err := callUpstream(c, OpGetCoins, func() ([]domain.Coin, error) {
		return c.client.GetCoins(ctx)
	})
	if err != nil {
		return nil, err
	}

	if err := c.persist(ctx, OpGetCoins, key, typeCoinList, coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// GetDataTypes returns the cached data type list, fetching it on a miss.
func (c *RequestCache) GetDataTypes(ctx context.Context) ([]string, error) {
	key := requestKey(OpGetDataTypes)

	env, hit, err := c.lookup(ctx, OpGetDataTypes, key)
	if err != nil {
		return nil, err
	}
	if hit {
		values, err := env.decodeStringList()
		if err != nil {
			return nil, c.corrupt(OpGetDataTypes, key, err)
		}
		return values, nil
	}

	values, err := callUpstream(c, OpGetDataTypes, func() ([]string, error) {
		return c.client.GetDataTypes(ctx)
	})
	if err != nil {
		return nil, err
	}

	if err := c.persist(ctx, OpGetDataTypes, key, typeStringList, values); err != nil {
		return nil, err
	}
	return values, nil
}

// GetBaseCurrencies returns the cached currency list, fetching it on a miss.
func (c *RequestCache) GetBaseCurrencies(ctx context.Context) ([]string, error) {
	key := requestKey(OpGetBaseCurrencies)

	env, hit, err := c.lookup(ctx, OpGetBaseCurrencies, key)
	if err != nil {
		return nil, err
	}
	if hit {
		values, err := env.decodeStringList()
		if err != nil {
			return nil, c.corrupt(OpGetBaseCurrencies, key, err)
		}
		return values, nil
	}

	values, err := callUpstream(c, OpGetBaseCurrencies, func() ([]string, error) {
		return c.client.GetBaseCurrencies(ctx)
	})
	if err != nil {
		return nil, err
	}

	if err := c.persist(ctx, OpGetBaseCurrencies, key, typeStringList, values); err != nil {
		return nil, err
	}
	return values, nil
}

// ViewCoin returns the cached snapshot for one coin, fetching it on a
// miss. A nil date means the most recent data; an empty baseCurrency
// means USD. Parameters are normalized before key derivation so that
// equivalent calls share a cache row.
func (c *RequestCache) ViewCoin(ctx context.Context, coinID int, date *time.Time, baseCurrency string) (*domain.Coin, error) {
	if baseCurrency == "" {
		baseCurrency = "USD"
	}
	key := requestKey(OpViewCoin, intKeyParam(coinID), optionalDateKeyParam(date), baseCurrency)

	env, hit, err := c.lookup(ctx, OpViewCoin, key)
	if err != nil {
		return nil, err
	}
	if hit {
		coin, err := env.decodeCoin()
		if err != nil {
			return nil, c.corrupt(OpViewCoin, key, err)
		}
		return coin, nil
	}

	coin, err := callUpstream(c, OpViewCoin, func() (*domain.Coin, error) {
		return c.client.ViewCoin(ctx, coinID, date, baseCurrency)
	})
	if err != nil {
		return nil, err
	}

	if err := c.persist(ctx, OpViewCoin, key, typeCoin, coin); err != nil {
		return nil, err
	}
	return coin, nil
}

// ViewCoinHistory returns the cached history series for one coin over
// [start, end], fetching it on a miss. Empty dataType means "price" and
// empty baseCurrency means USD.
func (c *RequestCache) ViewCoinHistory(ctx context.Context, coinID int, start, end time.Time, dataType, baseCurrency string) (*domain.CoinHistory, error) {
	if dataType == "" {
		dataType = "price"
	}
	if baseCurrency == "" {
		baseCurrency = "USD"
	}
	key := requestKey(OpViewCoinHistory,
		intKeyParam(coinID), dateKeyParam(start), dateKeyParam(end), dataType, baseCurrency)

	env, hit, err := c.lookup(ctx, OpViewCoinHistory, key)
	if err != nil {
		return nil, err
	}
	if hit {
		history, err := env.decodeCoinHistory()
		if err != nil {
			return nil, c.corrupt(OpViewCoinHistory, key, err)
		}
		return history, nil
	}

	history, err := callUpstream(c, OpViewCoinHistory, func() (*domain.CoinHistory, error) {
		return c.client.ViewCoinHistory(ctx, coinID, start, end, dataType, baseCurrency)
	})
	if err != nil {
		return nil, err
	}

	if err := c.persist(ctx, OpViewCoinHistory, key, typeCoinHistory, history); err != nil {
		return nil, err
	}
	return history, nil
}

// CoinByID resolves one coin from the cached coin list. It shares the
// getCoins cache row instead of producing entries per id.
func (c *RequestCache) CoinByID(ctx context.Context, coinID int) (*domain.Coin, error) {
	coins, err := c.GetCoins(ctx)
	if err != nil {
		return nil, err
	}

	for i := range coins {
		if coins[i].ID == coinID {
			return &coins[i], nil
		}
	}

	return nil, fmt.Errorf("%w: id %d", ErrCoinNotFound, coinID)
}

// lookup consults the store for a valid row and parses its envelope.
// A missing or expired row, or a row whose blob is not JSON at all, reads
// as a miss. Store read failures propagate.
func (c *RequestCache) lookup(ctx context.Context, op Operation, key string) (*envelope, bool, error) {
	blob, err := c.store.Lookup(ctx, key, c.now())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.observeMiss(op)
			return nil, false, nil
		}
		c.observeStoreError(op)
		return nil, false, fmt.Errorf("cache lookup for %q: %w", key, err)
	}

	env, ok, err := parseEnvelope(blob)
	if err != nil {
		return nil, false, c.corrupt(op, key, err)
	}
	if !ok {
		c.observeMiss(op)
		return nil, false, nil
	}

	c.observeHit(op)
	return env, true, nil
}

// persist resolves the operation's cache duration, encodes the payload and
// inserts the row. A write failure is logged and absorbed: the fetched
// result is still good, the next call will simply miss again.
func (c *RequestCache) persist(ctx context.Context, op Operation, key, envelopeType string, payload any) error {
	expr, err := c.cacheTime(op)
	if err != nil {
		return err
	}

	validUntil, err := config.ResolveRelative(expr, c.now())
	if err != nil {
		return fmt.Errorf("resolve cache time for %s: %w", op, err)
	}

	data, err := encodeEnvelope(envelopeType, payload)
	if err != nil {
		return fmt.Errorf("encode cache entry for %q: %w", key, err)
	}

	entry := &domain.CacheEntry{
		Request:    key,
		ValidUntil: validUntil,
		Data:       data,
	}
	if err := c.store.Insert(ctx, entry); err != nil {
		c.observeStoreError(op)
		c.logger.WithFields(map[string]any{
			"request": key,
			"error":   err.Error(),
		}).Warn("failed to write cache entry")
	}

	return nil
}

// cacheTime returns the configured duration expression for one operation.
func (c *RequestCache) cacheTime(op Operation) (string, error) {
	var expr string
	switch op {
	case OpGetCoins:
		expr = c.options.CacheTimeGetCoins
	case OpGetDataTypes:
		expr = c.options.CacheTimeGetDataTypes
	case OpGetBaseCurrencies:
		expr = c.options.CacheTimeGetBaseCurrencies
	case OpViewCoin:
		expr = c.options.CacheTimeViewCoin
	case OpViewCoinHistory:
		expr = c.options.CacheTimeViewCoinHistory
	}

	if expr == "" {
		return "", fmt.Errorf("%w for operation %s", ErrCacheTimeNotSet, op)
	}
	return expr, nil
}

// callUpstream runs one client call with metrics around it. A free
// function because methods cannot take type parameters.
func callUpstream[T any](c *RequestCache, op Operation, call func() (T, error)) (T, error) {
	start := time.Now()
	result, err := call()

	if c.metrics != nil {
		c.metrics.UpstreamCalls.WithLabelValues(op.String()).Inc()
		c.metrics.UpstreamLatency.WithLabelValues(op.String()).Observe(time.Since(start).Seconds())
		if err != nil {
			c.metrics.UpstreamErrors.WithLabelValues(op.String()).Inc()
		}
	}

	return result, err
}

func (c *RequestCache) corrupt(op Operation, key string, err error) error {
	if c.metrics != nil {
		c.metrics.CacheCorruptions.WithLabelValues(op.String()).Inc()
	}
	return fmt.Errorf("cached response for %q: %w", key, err)
}

func (c *RequestCache) observeHit(op Operation) {
	if c.metrics != nil {
		c.metrics.CacheHits.WithLabelValues(op.String()).Inc()
	}
}

func (c *RequestCache) observeMiss(op Operation) {
	if c.metrics != nil {
		c.metrics.CacheMisses.WithLabelValues(op.String()).Inc()
	}
}

func (c *RequestCache) observeStoreError(op Operation) {
	if c.metrics != nil {
		c.metrics.StoreErrors.WithLabelValues(op.String()).Inc()
	}
}
