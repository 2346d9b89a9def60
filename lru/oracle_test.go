package lru_test

import (
	"math/rand"
	"testing"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/on-the-ground/recency_memo/lru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// simplelru shares the touch-on-get, update-on-add and peek-on-contains
// semantics, so random operation streams must leave both caches identical.
func TestCache_MatchesSimpleLRU(t *testing.T) {
	for _, capacity := range []int{1, 2, 5, 16} {
		rng := rand.New(rand.NewSource(int64(capacity)))

		ours, err := lru.New[int, int](capacity)
		require.NoError(t, err)
		oracle, err := simplelru.NewLRU(capacity, nil)
		require.NoError(t, err)

		for step := 0; step < 2000; step++ {
			key := rng.Intn(capacity * 3)
			switch rng.Intn(3) {
			case 0:
				existed := oracle.Contains(key)
				oracle.Add(key, step)
				assert.Equal(t, existed, ours.Put(key, step))
			case 1:
				want, ok := oracle.Get(key)
				got, err := ours.Get(key)
				if ok {
					require.NoError(t, err)
					assert.Equal(t, want, got)
				} else {
					assert.ErrorIs(t, err, lru.ErrKeyNotFound)
				}
			default:
				assert.Equal(t, oracle.Contains(key), ours.Contains(key))
			}
			require.LessOrEqual(t, ours.Len(), capacity)
		}

		oldestFirst := oracle.Keys()
		keys := ours.Keys()
		require.Len(t, keys, len(oldestFirst))
		for i, k := range keys {
			assert.Equal(t, oldestFirst[len(oldestFirst)-1-i], k)
		}
	}
}
