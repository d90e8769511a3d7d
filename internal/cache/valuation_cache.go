package cache

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Forgeworks_Go/internal/catalog"
	"github.com/osse101/Forgeworks_Go/internal/metrics"
)

// CacheConfig holds configuration for the valuation cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Size: DefaultSize,
		TTL:  DefaultTTL,
	}
}

// Key addresses one cached valuation. Ruleset is the ruleset revision key, so
// replacing the ruleset orphans every older entry.
type Key struct {
	Ruleset string
	Item    catalog.Handle
	Season  string
	Kind    Kind
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// ValuationCache is an LRU of computed prices, costs and times with
// time-based expiry. It is safe for concurrent use.
type ValuationCache struct {
	lru    *expirable.LRU[Key, int]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewValuationCache creates a cache with the given size and TTL.
// A non-positive size falls back to DefaultSize.
func NewValuationCache(config CacheConfig) *ValuationCache {
	if config.Size <= 0 {
		config.Size = DefaultSize
	}
	return &ValuationCache{
		lru: expirable.NewLRU[Key, int](config.Size, nil, config.TTL),
	}
}

// Get returns the cached value for key
func (c *ValuationCache) Get(key Key) (int, bool) {
	value, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		metrics.CacheMisses.Inc()
		return 0, false
	}
	c.hits.Add(1)
	metrics.CacheHits.Inc()
	return value, true
}

// Set stores value under key
func (c *ValuationCache) Set(key Key, value int) {
	c.lru.Add(key, value)
}

// GetOrCompute returns the cached value or stores and returns compute()
func (c *ValuationCache) GetOrCompute(key Key, compute func() int) int {
	if value, ok := c.Get(key); ok {
		return value
	}
	value := compute()
	c.Set(key, value)
	return value
}

// Invalidate removes every entry computed under rulesetKey and returns how
// many were dropped
func (c *ValuationCache) Invalidate(rulesetKey string) int {
	removed := 0
	for _, key := range c.lru.Keys() {
		if key.Ruleset == rulesetKey && c.lru.Remove(key) {
			removed++
		}
	}
	metrics.CacheInvalidations.Add(float64(removed))
	return removed
}

// Clear removes all entries from the cache
func (c *ValuationCache) Clear() {
	metrics.CacheInvalidations.Add(float64(c.lru.Len()))
	c.lru.Purge()
}

// GetStats returns hit and miss counters and the current entry count
func (c *ValuationCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
