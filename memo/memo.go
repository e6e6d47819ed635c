// Package memo provides an unbounded in-memory memoization cache.
//
// The cache stores every computed value forever: there is no eviction, no
// TTL and no size cap. It suits pure computations whose key space is small
// and stable; it is not a general-purpose cache.
package memo

import (
	"sync"
	"sync/atomic"

	"github.com/rcrowley/go-metrics"
)

// Cache memoizes computed values by key. It is safe for concurrent use.
// Concurrent callers computing the same key are serialized so the
// computation runs at most once per key.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]

	hits   metrics.Counter
	misses metrics.Counter
}

// entry holds a computed value behind a per-key latch, so distinct keys
// never block each other during computation.
type entry[V any] struct {
	once  sync.Once
	ready atomic.Bool
	value V
	err   error
}

// New creates an empty cache.
func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		hits:    metrics.GetOrRegisterCounter("memo.hits", o.registry),
		misses:  metrics.GetOrRegisterCounter("memo.misses", o.registry),
	}
}

// GetOrCompute returns the cached value for key, computing and storing it on
// first use. If compute fails, the error is returned and nothing is cached,
// so a later call retries the computation.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry[V]{}
		c.entries[key] = e
		c.misses.Inc(1)
	} else {
		c.hits.Inc(1)
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.value, e.err = compute()
		e.ready.Store(true)
	})

	if e.err != nil {
		// drop the failed entry so the key can be recomputed
		c.mu.Lock()
		if c.entries[key] == e {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return e.value, e.err
	}

	return e.value, nil
}

// Get returns the cached value for key without computing.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.ready.Load() || e.err != nil {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Len returns the number of stored entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts accumulated so far.
func (c *Cache[K, V]) Stats() (hits, misses int64) {
	return c.hits.Count(), c.misses.Count()
}
