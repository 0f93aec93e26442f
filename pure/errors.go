package pure

import "errors"

var (
	// ErrNilFunction is raised when a nil function is wrapped.
	ErrNilFunction = errors.New("memoized function must not be nil")

	// ErrNilKey is returned when an argument used as part of a cache key is nil.
	ErrNilKey = errors.New("nil value cannot be used as a cache key")

	// ErrNilResult is returned when the wrapped function produced a nil result.
	// Nil results are never cached.
	ErrNilResult = errors.New("nil result cannot be cached")

	// ErrStoreType is raised when WithStore is given a store for other key or value types.
	ErrStoreType = errors.New("store does not match table key and value types")
)
