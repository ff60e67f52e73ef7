// Package cache provides an in-memory TTL cache used to memoize upstream
// lookups. Entries expire on an absolute deadline; expired entries are
// evicted lazily on read and swept periodically in the background so that
// write-once keys do not accumulate forever. There is no size bound or LRU
// eviction: entry count is the deployer's capacity concern.
package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Cache is a thread-safe TTL cache holding values of a single type.
type Cache[T any] struct {
	mu         sync.RWMutex
	entries    map[string]entry[T]
	defaultTTL time.Duration
	clock      clockwork.Clock

	stopOnce sync.Once
	stop     chan struct{}
}

// New creates a cache with a default TTL and starts its background sweep.
// The sweep interval is independent of any entry's TTL and should be coarser.
// Callers own the lifecycle and must call Stop when done.
func New[T any](defaultTTL, sweepInterval time.Duration, clock clockwork.Clock) *Cache[T] {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	c := &Cache[T]{
		entries:    make(map[string]entry[T]),
		defaultTTL: defaultTTL,
		clock:      clock,
		stop:       make(chan struct{}),
	}
	go c.sweepLoop(sweepInterval)
	return c
}

// Get returns the value for key. An entry past its deadline is treated as
// absent and evicted immediately.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false
	}
	if c.clock.Now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: the entry may have been replaced.
		if cur, ok := c.entries[key]; ok && c.clock.Now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

// Set stores value under key. A zero ttl uses the cache's default.
// Overwrites any existing entry.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.mu.Lock()
	c.entries[key] = entry[T]{value: value, expiresAt: c.clock.Now().Add(ttl)}
	c.mu.Unlock()
}

// Has reports whether key holds a live entry, with the same lazy-expiry
// semantics as Get.
func (c *Cache[T]) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Delete removes key unconditionally.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear removes all entries.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry[T])
	c.mu.Unlock()
}

// Len sweeps expired entries, then reports the live entry count.
func (c *Cache[T]) Len() int {
	c.sweep()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stop ends the background sweep. The cache remains usable afterwards;
// only lazy eviction applies.
func (c *Cache[T]) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache[T]) sweepLoop(interval time.Duration) {
	ticker := c.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			c.sweep()
		case <-c.stop:
			return
		}
	}
}

// sweep collects expired keys under the read lock, then deletes them under
// the write lock so lookups are never blocked for the whole scan.
func (c *Cache[T]) sweep() {
	now := c.clock.Now()

	c.mu.RLock()
	var expired []string
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			expired = append(expired, k)
		}
	}
	c.mu.RUnlock()

	if len(expired) == 0 {
		return
	}

	c.mu.Lock()
	for _, k := range expired {
		// An entry may have been overwritten with a fresh deadline since
		// the scan; only delete the ones still expired.
		if e, ok := c.entries[k]; ok && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}
