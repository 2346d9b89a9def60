package pure

import (
	"fmt"
	"math"

	"github.com/on-the-ground/recency_memo/lru"
	"github.com/on-the-ground/recency_memo/shared/helper"
)

func TableizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
	opts ...lru.Option,
) func(I1) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(helper.ArgAs[I1](args, 0))
		},
		maxTableSize,
		opts,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
	opts ...lru.Option,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(helper.ArgAs[I1](args, 0), helper.ArgAs[I2](args, 1))
		},
		maxTableSize,
		opts,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
	opts ...lru.Option,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(helper.ArgAs[I1](args, 0), helper.ArgAs[I2](args, 1), helper.ArgAs[I3](args, 2))
		},
		maxTableSize,
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(i1, i2, i3)
	}
}

func TableizeI4O1[I1, I2, I3, I4, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	maxTableSize uint32,
	opts ...lru.Option,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(
				helper.ArgAs[I1](args, 0),
				helper.ArgAs[I2](args, 1),
				helper.ArgAs[I3](args, 2),
				helper.ArgAs[I4](args, 3),
			)
		},
		maxTableSize,
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(i1, i2, i3, i4)
	}
}

// tableCapacity converts a table size to a cache capacity, clamping to
// math.MaxInt where int is 32 bits wide.
func tableCapacity(maxTableSize uint32) int {
	if uint64(maxTableSize) > uint64(math.MaxInt) {
		return math.MaxInt
	}
	return int(maxTableSize)
}

// mustMemoizer builds a positional-only Memoizer. The capacity is never
// negative, so construction can only fail on a broken option.
func mustMemoizer[O any](pureFn func(...any) O, maxTableSize uint32, opts []lru.Option) *Memoizer[O] {
	memo, err := NewMemoizer(
		func(args Args) (O, error) {
			return pureFn(args.Positional...), nil
		},
		tableCapacity(maxTableSize),
		opts...,
	)
	if err != nil {
		panic(fmt.Sprintf("tableize: %v", err))
	}
	return memo
}

func tableize[O any](
	pureFn func(...any) O,
	maxTableSize uint32,
	opts []lru.Option,
) func(...any) O {
	memo := mustMemoizer(pureFn, maxTableSize, opts)
	return func(args ...any) O {
		// pureFn never fails, so neither does the lookup.
		v, _ := memo.Invoke(args...)
		return v
	}
}
