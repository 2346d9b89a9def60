package helper

import (
	"fmt"
)

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// LookupTyped reads key from bindings and asserts it to T.
// A missing key reports found == false; a present key of another type is an error.
func LookupTyped[T any](bindings map[string]any, key string) (val T, found bool, err error) {
	if _, found = bindings[key]; !found {
		return
	}
	val, err = GetTypedValueOf[T](func() (any, error) {
		return bindings[key], nil
	})
	if err != nil {
		err = fmt.Errorf("%s: %w", key, err)
	}
	return
}

// ArgAs asserts the i-th argument to T, panicking with a descriptive message
// when the argument list is too short or holds another type.
func ArgAs[T any](args []any, i int) T {
	if i >= len(args) {
		panic(fmt.Sprintf("argument %d missing: got %d arguments", i, len(args)))
	}
	if args[i] == nil {
		var zero T
		return zero
	}
	val, ok := args[i].(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("argument %d: expected %T, got %T", i, zero, args[i]))
	}
	return val
}
