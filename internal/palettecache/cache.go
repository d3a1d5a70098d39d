// Package palettecache provides a bounded LRU store for completed colour
// palettes, keyed by a caller-supplied fingerprint, with hit-rate
// accounting.
//
// The cache is designed for a single logical owner: the same execution
// context that issues extraction requests and consumes results. It carries
// no internal locking; callers that share a cache across goroutines must
// serialize access themselves.
package palettecache

import (
	"container/list"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/colour"
)

// DefaultCapacity is the default maximum number of cached palettes.
const DefaultCapacity = 128

// CapacityError reports an unusable cache capacity at construction.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("cache capacity must be at least 1, got %d", e.Capacity)
}

// entry is a single cached palette together with its key, stored inside
// the recency list.
type entry struct {
	key     string
	palette *colour.ColorPalette
}

// Cache is a bounded LRU mapping fingerprint strings to palettes.
type Cache struct {
	capacity int
	entries  map[string]*list.Element

	// order tracks recency: front is most recently used, back is the
	// eviction candidate.
	order *list.List

	requests uint64
	hits     uint64

	logger hclog.Logger
}

// New creates a cache holding at most capacity palettes. A capacity below
// 1 yields a CapacityError.
func New(capacity int, logger hclog.Logger) (*Cache, error) {
	if capacity < 1 {
		return nil, &CapacityError{Capacity: capacity}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
		logger:   logger,
	}, nil
}

// Get returns the palette stored under key and marks it most recently
// used. Every call counts as a request; present keys also count as hits.
// The returned palette is a shared immutable view; callers must not
// modify it.
func (c *Cache) Get(key string) (*colour.ColorPalette, bool) {
	c.requests++

	elem, ok := c.entries[key]
	if !ok {
		c.logger.Debug("cache miss", "key", shortKey(key))
		return nil, false
	}

	c.hits++
	c.order.MoveToFront(elem)
	c.logger.Debug("cache hit", "key", shortKey(key))
	return elem.Value.(*entry).palette, true
}

// Put stores a palette under key. An existing key is overwritten and
// marked most recently used without eviction; a new key at capacity
// evicts the least recently used entry first.
func (c *Cache) Put(key string, palette *colour.ColorPalette) {
	if elem, ok := c.entries[key]; ok {
		elem.Value.(*entry).palette = palette
		c.order.MoveToFront(elem)
		c.logger.Debug("cache update", "key", shortKey(key))
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		evicted := oldest.Value.(*entry)
		c.order.Remove(oldest)
		delete(c.entries, evicted.key)
		c.logger.Debug("cache evict", "key", shortKey(evicted.key))
	}

	c.entries[key] = c.order.PushFront(&entry{key: key, palette: palette})
	c.logger.Debug("cache put", "key", shortKey(key), "size", c.order.Len())
}

// Invalidate removes the entry under key if present; otherwise it is a
// no-op.
func (c *Cache) Invalidate(key string) {
	elem, ok := c.entries[key]
	if !ok {
		return
	}
	c.order.Remove(elem)
	delete(c.entries, key)
	c.logger.Debug("cache invalidate", "key", shortKey(key))
}

// Clear empties the cache. Hit and request counters survive a clear.
func (c *Cache) Clear() {
	c.entries = make(map[string]*list.Element, c.capacity)
	c.order.Init()
	c.logger.Info("cache cleared")
}

// Len returns the current number of cached palettes.
func (c *Cache) Len() int {
	return c.order.Len()
}

// Contains reports whether key is cached, without touching recency or
// counters.
func (c *Cache) Contains(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Stats describes cache occupancy and effectiveness.
type Stats struct {
	Size     int     `json:"size"`
	Capacity int     `json:"capacity"`
	HitRate  float64 `json:"hit_rate"`
	Requests uint64  `json:"total_requests"`
	Hits     uint64  `json:"total_hits"`
}

// Stats returns a snapshot of the cache metrics. The hit rate is 0.0
// before the first request.
func (c *Cache) Stats() Stats {
	hitRate := 0.0
	if c.requests > 0 {
		hitRate = float64(c.hits) / float64(c.requests)
	}
	return Stats{
		Size:     c.order.Len(),
		Capacity: c.capacity,
		HitRate:  hitRate,
		Requests: c.requests,
		Hits:     c.hits,
	}
}

// shortKey truncates fingerprints for log lines.
func shortKey(key string) string {
	if len(key) > 8 {
		return key[:8]
	}
	return key
}
