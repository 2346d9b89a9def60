package lru

import "slices"

// Hashable is implemented by keys that are not comparable with ==.
// Equal keys must hash alike for lookups to find them.
type Hashable[K any] interface {
	Hash() uint64
	Equal(other K) bool
}

// index maps a key to its recency list element.
type index[K, V any] interface {
	load(key K) (*element[K, V], bool)
	store(key K, e *element[K, V])
	delete(key K)
}

// --- comparable keys ---

type mapIndex[K comparable, V any] map[K]*element[K, V]

func (m mapIndex[K, V]) load(key K) (*element[K, V], bool) {
	e, ok := m[key]
	return e, ok
}

func (m mapIndex[K, V]) store(key K, e *element[K, V]) {
	m[key] = e
}

func (m mapIndex[K, V]) delete(key K) {
	delete(m, key)
}

// --- hashed keys ---

type hashedIndex[K, V any] struct {
	buckets map[uint64][]*element[K, V]
	hash    func(K) uint64
	equal   func(a, b K) bool
}

func newHashedIndex[K, V any](hash func(K) uint64, equal func(a, b K) bool) *hashedIndex[K, V] {
	return &hashedIndex[K, V]{
		buckets: make(map[uint64][]*element[K, V]),
		hash:    hash,
		equal:   equal,
	}
}

func (h *hashedIndex[K, V]) load(key K) (*element[K, V], bool) {
	for _, e := range h.buckets[h.hash(key)] {
		if h.equal(e.key, key) {
			return e, true
		}
	}
	return nil, false
}

func (h *hashedIndex[K, V]) store(key K, e *element[K, V]) {
	sum := h.hash(key)
	bucket := h.buckets[sum]
	for i, cur := range bucket {
		if h.equal(cur.key, key) {
			bucket[i] = e
			return
		}
	}
	h.buckets[sum] = append(bucket, e)
}

func (h *hashedIndex[K, V]) delete(key K) {
	sum := h.hash(key)
	bucket := h.buckets[sum]
	for i, cur := range bucket {
		if h.equal(cur.key, key) {
			bucket = slices.Delete(bucket, i, i+1)
			break
		}
	}
	if len(bucket) == 0 {
		delete(h.buckets, sum)
		return
	}
	h.buckets[sum] = bucket
}
