// Package lru provides a bounded key-value cache with least-recently-used eviction.
//
// Capacity is counted in entries. A Cache is not safe for concurrent use;
// callers sharing one across goroutines must guard it themselves.
package lru

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cache is a bounded store that evicts its least recently used entry
// when an insertion pushes it over capacity.
type Cache[K, V any] struct {
	id        string
	name      string
	capacity  int
	createdAt time.Time

	recency *recencyList[K, V]
	index   index[K, V]

	logger *zap.Logger
	stats  counters
}

// New creates a cache for comparable keys.
func New[K comparable, V any](capacity int, opts ...Option) (*Cache[K, V], error) {
	return newCache[K, V](capacity, mapIndex[K, V]{}, opts)
}

// NewHashed creates a cache for keys that supply their own hash and equality.
func NewHashed[K Hashable[K], V any](capacity int, opts ...Option) (*Cache[K, V], error) {
	return NewWithFuncs[K, V](
		capacity,
		func(k K) uint64 { return k.Hash() },
		func(a, b K) bool { return a.Equal(b) },
		opts...,
	)
}

// NewWithFuncs creates a cache whose key lookup uses the given hasher and comparator.
func NewWithFuncs[K, V any](
	capacity int,
	hash func(K) uint64,
	equal func(a, b K) bool,
	opts ...Option,
) (*Cache[K, V], error) {
	if hash == nil || equal == nil {
		return nil, fmt.Errorf("%w: hash and equal functions are required", ErrInvalidConfig)
	}
	return newCache[K, V](capacity, newHashedIndex[K, V](hash, equal), opts)
}

func newCache[K, V any](capacity int, idx index[K, V], opts []Option) (*Cache[K, V], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	o := buildOptions(opts)
	id := uuid.New().String()
	c := &Cache[K, V]{
		id:        id,
		name:      o.name,
		capacity:  capacity,
		createdAt: time.Now(),
		recency:   newRecencyList[K, V](),
		index:     idx,
		logger: o.logger.With(
			zap.String("cache_id", id),
			zap.String("cache_name", o.name),
		),
	}
	c.logger.Debug("created cache", zap.Int("capacity", capacity))
	return c, nil
}

// Contains reports whether key is resident. It does not change recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index.load(key)
	return ok
}

// Put inserts or refreshes an entry and reports whether the key was already present.
//
// A present key has its value replaced and becomes the most recently used.
// An absent key is inserted as the most recently used; if that leaves the
// cache over capacity the least recently used entry is evicted. With a
// capacity of zero the inserted entry is evicted immediately.
func (c *Cache[K, V]) Put(key K, value V) bool {
	if e, ok := c.index.load(key); ok {
		e.value = value
		c.recency.moveToFront(e)
		c.stats.refreshes++
		return true
	}

	e := c.recency.pushFront(key, value)
	c.index.store(key, e)
	c.stats.inserts++

	if c.recency.len > c.capacity {
		c.evictOldest()
	}
	return false
}

// Get returns the value for key and marks it most recently used.
// An absent key yields an error wrapping ErrKeyNotFound.
func (c *Cache[K, V]) Get(key K) (V, error) {
	e, ok := c.index.load(key)
	if !ok {
		c.stats.misses++
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	c.recency.moveToFront(e)
	c.stats.hits++
	return e.value, nil
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	return c.recency.len
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns the resident keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	return c.recency.keys()
}

func (c *Cache[K, V]) ID() string {
	return c.id
}

func (c *Cache[K, V]) Name() string {
	return c.name
}

func (c *Cache[K, V]) Stats() Stats {
	return c.stats.snapshot(c.name, c.capacity, c.recency.len, c.createdAt)
}

func (c *Cache[K, V]) evictOldest() {
	e := c.recency.back()
	if e == nil {
		return
	}
	c.recency.remove(e)
	c.index.delete(e.key)
	c.stats.evictions++

	if ce := c.logger.Check(zap.DebugLevel, "evicted entry"); ce != nil {
		key := zap.Any("key", e.key)
		if s, ok := any(e.key).(fmt.Stringer); ok {
			key = zap.Stringer("key", s)
		}
		ce.Write(key, zap.Int("len", c.recency.len))
	}
}

// Logger returns the cache's logger, already carrying its id and name fields.
func (c *Cache[K, V]) Logger() *zap.Logger {
	return c.logger
}
