package tinystl

import "errors"

var (
	// ErrIndexOutOfBounds signals a position at or beyond the container length.
	ErrIndexOutOfBounds = errors.New("tinystl: index out of bounds")
	// ErrInvalidConfig signals an invalid deque configuration.
	ErrInvalidConfig = errors.New("tinystl: invalid configuration")
)
