package analytics

import (
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/natyavidhan/uidai-hackathon/metrics"
)

// Cache memoizes analytics results for the lifetime of the process. The
// source data is immutable once loaded, so entries never expire; they are
// invalidated only by restart.
//
// The singleflight group guarantees at most one concurrent computation per
// key: a second request for an uncached key waits for the first computation
// instead of duplicating it.
type Cache struct {
	store   *gocache.Cache
	group   singleflight.Group
	metrics *metrics.Metrics
}

// NewCache builds a process-local cache. Construct once in main and inject
// into the service; nothing else should hold cache state.
func NewCache(m *metrics.Metrics) *Cache {
	return &Cache{
		store:   gocache.New(gocache.NoExpiration, 0),
		metrics: m,
	}
}

// Do returns the cached value for key, computing it with compute on first
// access. Errors are not cached; a failed computation will be retried by
// the next caller.
func (c *Cache) Do(key string, compute func() (interface{}, error)) (interface{}, error) {
	if value, found := c.store.Get(key); found {
		c.metrics.IncrementCacheHits()
		return value, nil
	}

	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check under the flight: a previous flight may have
		// populated the store between our miss and this call.
		if value, found := c.store.Get(key); found {
			return value, nil
		}
		c.metrics.IncrementCacheMisses()
		value, err := compute()
		if err != nil {
			return nil, err
		}
		c.store.Set(key, value, gocache.NoExpiration)
		return value, nil
	})
	return value, err
}

// Flush drops every entry. Only tests and shutdown paths use it.
func (c *Cache) Flush() {
	c.store.Flush()
}

// ItemCount reports how many results are memoized, for the detailed
// health endpoint.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}
