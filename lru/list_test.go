package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecencyList_Ordering(t *testing.T) {
	l := newRecencyList[int, string]()
	assert.Nil(t, l.front())
	assert.Nil(t, l.back())

	a := l.pushFront(1, "a")
	l.pushFront(2, "b")
	c := l.pushFront(3, "c")
	assert.Equal(t, []int{3, 2, 1}, l.keys())
	assert.Same(t, a, l.back())

	l.moveToFront(a)
	assert.Equal(t, []int{1, 3, 2}, l.keys())

	l.moveToFront(a)
	assert.Equal(t, []int{1, 3, 2}, l.keys())

	l.remove(c)
	assert.Equal(t, []int{1, 2}, l.keys())
	assert.Equal(t, 2, l.len)

	l.remove(c)
	assert.Equal(t, 2, l.len)
}
