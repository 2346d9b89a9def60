package lru

import "errors"

// ErrKeyNotFound is returned by Get when the key is not resident.
// Callers are expected to guard with Contains.
var ErrKeyNotFound = errors.New("key not found")

// ErrInvalidCapacity is returned when a cache is constructed with a negative capacity.
var ErrInvalidCapacity = errors.New("capacity must not be negative")

// ErrInvalidConfig is returned when configuration bindings carry a value of the wrong type.
var ErrInvalidConfig = errors.New("invalid cache config")
