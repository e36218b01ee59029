package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of independent shards. Power of two.
	ShardCount = 8

	// DefaultCapacity is the per-shard capacity used when NewSharded is
	// given a non-positive value.
	DefaultCapacity = 16

	shardMask = ShardCount - 1
)

// Hasher computes the shard hash of a key.
type Hasher[K any] func(K) uint64

// StringHasher hashes a string with FNV-1a.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Sharded is a thread-safe LRU cache split into ShardCount shards, each
// with its own lock and its own capacity.
type Sharded[K comparable, V any] struct {
	shards   [ShardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	lru     lruList[K]
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// NewSharded creates a cache holding up to capacity entries per shard.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Sharded[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]*entry[K, V])}
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get returns the cached value for key and marks it most recently used.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	c.hits.Add(1)
	return e.value, true
}

// Set stores value under key, evicting the shard's oldest entries when full.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.setLocked(s, key, value)
}

// GetOrCreate returns the cached value or stores the result of create.
// create runs under the shard lock, so concurrent callers for one key
// invoke it once.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)
	v := create()
	c.setLocked(s, key, v)
	return v
}

// Delete removes key. It reports whether the key was present.
func (c *Sharded[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.Remove(e.node)
	delete(s.entries, key)
	return true
}

// Len returns the number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Stats returns the current counters.
func (c *Sharded[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func (c *Sharded[K, V]) setLocked(s *shard[K, V], key K, value V) {
	if e, ok := s.entries[key]; ok {
		e.value = value
		s.lru.MoveToFront(e.node)
		return
	}
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}
	s.entries[key] = &entry[K, V]{value: value, node: s.lru.PushFront(key)}
}
