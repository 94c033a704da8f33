package cache

import "sync"

// Cache is a generic thread-safe map that records hits and misses.
// Entries are never evicted; Set replaces the value stored for a key.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
	hits    uint64
	misses  uint64
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	c.record(ok)
	return v, ok
}

// Set stores value under key, replacing any previous value.
// It does not count as a lookup.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
}

// GetOrCreate returns the cached value or creates and stores it.
// create is called under the lock, so it runs at most once per key.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		c.record(true)
		return v
	}
	c.record(false)
	v := create()
	c.entries[key] = v
	return v
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var rate float64
	if total := c.hits + c.misses; total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return Stats{Len: len(c.entries), Hits: c.hits, Misses: c.misses, HitRate: rate}
}

// record counts one lookup. Caller must hold c.mu.
func (c *Cache[K, V]) record(hit bool) {
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is the cache hit rate (0.0 to 1.0).
	HitRate float64
}
