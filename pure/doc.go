// Package pure memoizes function calls through a bounded LRU cache.
//
// A Memoizer wraps a Func and keys each call by its Signature: a snapshot of
// the positional and named arguments. Repeated calls with equal arguments
// return the cached result; the least recently used result is dropped once
// the cache is full.
//
// The Tableize family adapts fixed-arity Go functions:
//
//	var fib func(int) int
//	fib = pure.TableizeI1O1(func(n int) int {
//		if n <= 1 {
//			return n
//		}
//		return fib(n-2) + fib(n-1) // call order matters with a table of 2
//	}, 2)
//
// Arguments implementing fmt.Stringer are compared by their string form,
// other comparable values with ==, and the rest with reflect.DeepEqual.
//
// WARNING: memoize only pure functions. Results of calls depending on time,
// I/O or mutable state will be replayed stale.
package pure
