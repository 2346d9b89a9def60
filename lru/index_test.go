package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashedIndex_DeleteReleasesElement(t *testing.T) {
	h := newHashedIndex[int, string](
		func(int) uint64 { return 7 },
		func(a, b int) bool { return a == b },
	)
	l := newRecencyList[int, string]()
	for i := 0; i < 3; i++ {
		h.store(i, l.pushFront(i, "v"))
	}

	h.delete(1)

	bucket := h.buckets[7]
	require.Len(t, bucket, 2)
	assert.Equal(t, 0, bucket[0].key)
	assert.Equal(t, 2, bucket[1].key)
	assert.Nil(t, bucket[:3][2], "vacated slot must not keep the element reachable")

	_, ok := h.load(1)
	assert.False(t, ok)

	h.delete(0)
	h.delete(2)
	_, ok = h.buckets[7]
	assert.False(t, ok)
}
