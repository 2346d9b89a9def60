package lru

// element is a node of the recency list.
type element[K, V any] struct {
	next, prev *element[K, V]
	list       *recencyList[K, V]

	key   K
	value V
}

// recencyList is a doubly linked list with a sentinel root.
// The front is the most recently used entry, the back the least.
type recencyList[K, V any] struct {
	root element[K, V]
	len  int
}

func newRecencyList[K, V any]() *recencyList[K, V] {
	l := &recencyList[K, V]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

func (l *recencyList[K, V]) front() *element[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *recencyList[K, V]) back() *element[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *recencyList[K, V]) insertAfter(e, at *element[K, V]) *element[K, V] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

func (l *recencyList[K, V]) pushFront(key K, value V) *element[K, V] {
	return l.insertAfter(&element[K, V]{key: key, value: value}, &l.root)
}

func (l *recencyList[K, V]) moveToFront(e *element[K, V]) {
	if e.list != l || l.root.next == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = &l.root
	e.next = l.root.next
	e.prev.next = e
	e.next.prev = e
}

func (l *recencyList[K, V]) remove(e *element[K, V]) {
	if e.list != l {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--
}

// keys returns the keys from most to least recently used.
func (l *recencyList[K, V]) keys() []K {
	keys := make([]K, 0, l.len)
	for e := l.front(); e != nil && e != &l.root; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}
