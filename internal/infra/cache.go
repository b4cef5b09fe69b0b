package infra

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	CacheKeyDrugList   = "catalog:drugs"
	cacheKeyDrugPrefix = "catalog:drug:"
	cacheKeyPattern    = "catalog:*"
)

// CacheKeyDrug is the key of a single drug with its lots.
func CacheKeyDrug(id string) string { return cacheKeyDrugPrefix + id }

// CatalogCache is a best-effort read-through JSON cache for catalog reads.
// A nil *CatalogCache or a nil Redis client turns every call into a miss/no-op,
// and cache errors never fail the request that triggered them.
//
// A failed invalidation marks the cache stale: reads miss and writes are
// dropped until every catalog key has been flushed.
type CatalogCache struct {
	rdb *redis.Client
	cb  *CircuitBreaker
	ttl time.Duration

	stale atomic.Int64 // failed invalidations not yet flushed
}

func NewCatalogCache(rdb *redis.Client, cb *CircuitBreaker, ttl time.Duration) *CatalogCache {
	if cb == nil {
		cb = NewCircuitBreaker(DefaultBreakerConfig())
	}
	return &CatalogCache{rdb: rdb, cb: cb, ttl: ttl}
}

func (c *CatalogCache) enabled() bool { return c != nil && c.rdb != nil }

// Get decodes the cached value into dest and reports whether it was a hit.
func (c *CatalogCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if !c.enabled() || !c.flushIfStale(ctx) {
		return false
	}
	var raw []byte
	err := c.cb.Execute(func() error {
		b, err := c.rdb.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil // a miss is not a Redis failure
		}
		raw = b
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrCircuitOpen) {
			log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		return false
	}
	if raw == nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *CatalogCache) Set(ctx context.Context, key string, v interface{}) {
	if !c.enabled() || c.stale.Load() > 0 {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	err = c.cb.Execute(func() error {
		return c.rdb.Set(ctx, key, b, c.ttl).Err()
	})
	if err != nil && !errors.Is(err, ErrCircuitOpen) {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// Invalidate drops the given keys. When Redis cannot be reached, or the
// breaker is open, the cache goes stale instead of keeping old entries.
func (c *CatalogCache) Invalidate(ctx context.Context, keys ...string) {
	if !c.enabled() || len(keys) == 0 {
		return
	}
	err := c.cb.Execute(func() error {
		return c.rdb.Del(ctx, keys...).Err()
	})
	if err != nil {
		c.stale.Add(1)
		log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed; catalog cache marked stale")
	}
}

// flushIfStale reports whether Get may read Redis. A stale cache has every
// catalog key deleted first, and that read counts as a miss.
func (c *CatalogCache) flushIfStale(ctx context.Context) bool {
	pending := c.stale.Load()
	if pending == 0 {
		return true
	}
	err := c.cb.Execute(func() error {
		return c.flush(ctx)
	})
	if err != nil {
		if !errors.Is(err, ErrCircuitOpen) {
			log.Warn().Err(err).Msg("cache flush failed")
		}
		return false
	}
	// an invalidation that failed during the flush keeps the cache stale
	if c.stale.CompareAndSwap(pending, 0) {
		log.Info().Msg("catalog cache flushed")
	}
	return false
}

func (c *CatalogCache) flush(ctx context.Context) error {
	var keys []string
	iter := c.rdb.Scan(ctx, 0, cacheKeyPattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// State is reported by the health endpoint.
func (c *CatalogCache) State() string {
	if !c.enabled() {
		return "disabled"
	}
	return c.cb.State().String()
}
