package pure

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Signature is an immutable snapshot of one call's positional and named arguments.
// It is the cache key of a Memoizer.
type Signature struct {
	positional []any
	named      map[string]any
	hash       uint64
}

// NewSignature copies the given arguments. No normalization is applied.
func NewSignature(positional []any, named map[string]any) Signature {
	s := Signature{
		positional: append([]any(nil), positional...),
		named:      make(map[string]any, len(named)),
	}
	for k, v := range named {
		s.named[k] = v
	}
	s.hash = s.computeHash()
	return s
}

// Equal compares positional arguments pairwise up to the shorter of the two
// lists, then requires identical name sets with equal values.
// Signatures of different positional length can therefore compare equal.
func (s Signature) Equal(other Signature) bool {
	n := min(len(s.positional), len(other.positional))
	for i := 0; i < n; i++ {
		if !argEqual(s.positional[i], other.positional[i]) {
			return false
		}
	}

	if len(s.named) != len(other.named) {
		return false
	}
	for name := range s.named {
		if _, ok := other.named[name]; !ok {
			return false
		}
	}
	for name, v := range s.named {
		if !argEqual(v, other.named[name]) {
			return false
		}
	}
	return true
}

// Hash covers the whole positional tuple and the set of argument names.
// Named values are left out, so signatures differing only there collide.
func (s Signature) Hash() uint64 {
	return s.hash
}

func (s Signature) computeHash() uint64 {
	d := xxhash.New()
	for _, arg := range s.positional {
		writeArg(d, arg)
	}

	var names uint64
	for name := range s.named {
		names += xxhash.Sum64String(name)
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], names)
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

// Positional returns a copy of the positional arguments.
func (s Signature) Positional() []any {
	return append([]any(nil), s.positional...)
}

// Named returns the value bound to name.
func (s Signature) Named(name string) (any, bool) {
	v, ok := s.named[name]
	return v, ok
}

// Names returns the argument names in sorted order.
func (s Signature) Names() []string {
	names := make([]string, 0, len(s.named))
	for name := range s.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Signature) String() string {
	parts := make([]string, 0, len(s.positional)+len(s.named))
	for _, arg := range s.positional {
		parts = append(parts, fmt.Sprintf("%v", arg))
	}
	for _, name := range s.Names() {
		parts = append(parts, fmt.Sprintf("%s=%v", name, s.named[name]))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// stringerKey stands in for a fmt.Stringer argument.
type stringerKey struct {
	typ string
	str string
}

func tableKey(arg any) any {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringerKey{typ: fmt.Sprintf("%T", arg), str: stringer.String()}
	}
	switch v := arg.(type) {
	case float64:
		if v == 0 {
			return float64(0)
		}
	case float32:
		if v == 0 {
			return float32(0)
		}
	}
	return arg
}

// isComparable checks the dynamic value, so an interface field holding a
// slice makes its enclosing struct or array non-comparable.
func isComparable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

func argEqual(a, b any) bool {
	ka, kb := tableKey(a), tableKey(b)
	if isComparable(ka) && isComparable(kb) {
		return ka == kb
	}
	return reflect.DeepEqual(ka, kb)
}

func writeArg(d *xxhash.Digest, arg any) {
	key := tableKey(arg)
	_, _ = d.WriteString(fmt.Sprintf("%T", key))
	_, _ = d.WriteString("\x00")
	if isComparable(key) {
		_, _ = d.WriteString(fmt.Sprintf("%v", key))
	}
	_, _ = d.WriteString("\x1f")
}
