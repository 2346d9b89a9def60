package pure

import (
	"github.com/on-the-ground/recency_memo/lru"
	"go.uber.org/zap"
)

// Args are the positional and named arguments of one call.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Positional builds Args from positional values only.
func Positional(values ...any) Args {
	return Args{Positional: values}
}

// With returns a copy of a with name bound to value.
func (a Args) With(name string, value any) Args {
	named := make(map[string]any, len(a.Named)+1)
	for k, v := range a.Named {
		named[k] = v
	}
	named[name] = value
	return Args{Positional: a.Positional, Named: named}
}

// Func is a callable a Memoizer can wrap.
type Func[R any] func(Args) (R, error)

// MemoStats extends the cache stats with call counters.
type MemoStats struct {
	lru.Stats
	Calls        uint64
	Computations uint64
	Failures     uint64
}

// Memoizer routes calls of a Func through a bounded LRU cache keyed by
// the call's Signature. It is not safe for concurrent use.
type Memoizer[R any] struct {
	fn     Func[R]
	cache  *lru.Cache[Signature, R]
	logger *zap.Logger

	calls        uint64
	computations uint64
	failures     uint64
}

// NewMemoizer wraps fn with a cache holding at most capacity results.
// A logger passed with lru.WithLogger also receives the memoizer's failure logs.
func NewMemoizer[R any](fn Func[R], capacity int, opts ...lru.Option) (*Memoizer[R], error) {
	cache, err := lru.NewHashed[Signature, R](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Memoizer[R]{
		fn:     fn,
		cache:  cache,
		logger: cache.Logger(),
	}, nil
}

// Call returns the cached result for args, computing and caching it on a miss.
// Errors from the wrapped function are returned unchanged and never cached.
func (m *Memoizer[R]) Call(args Args) (R, error) {
	m.calls++
	s := NewSignature(args.Positional, args.Named)
	if !m.cache.Contains(s) {
		m.computations++
		res, err := m.fn(args)
		if err != nil {
			m.failures++
			m.logger.Debug("memoized call failed", zap.Stringer("signature", s), zap.Error(err))
			var zero R
			return zero, err
		}
		m.cache.Put(s, res)
		if m.cache.Capacity() == 0 {
			return res, nil
		}
	}
	return m.cache.Get(s)
}

// Invoke is Call with positional arguments only.
func (m *Memoizer[R]) Invoke(positional ...any) (R, error) {
	return m.Call(Positional(positional...))
}

// Func returns the memoized callable with the wrapped function's shape.
func (m *Memoizer[R]) Func() Func[R] {
	return m.Call
}

// Cached reports whether a result for args is resident, without touching recency.
func (m *Memoizer[R]) Cached(args Args) bool {
	return m.cache.Contains(NewSignature(args.Positional, args.Named))
}

// Len returns the number of cached results.
func (m *Memoizer[R]) Len() int {
	return m.cache.Len()
}

// Signatures returns the cached signatures from most to least recently used.
func (m *Memoizer[R]) Signatures() []Signature {
	return m.cache.Keys()
}

func (m *Memoizer[R]) Stats() MemoStats {
	return MemoStats{
		Stats:        m.cache.Stats(),
		Calls:        m.calls,
		Computations: m.computations,
		Failures:     m.failures,
	}
}
