package storage

import "errors"

var (
	// ErrExhausted signals that an allocator cannot satisfy a request.
	ErrExhausted = errors.New("storage: allocator exhausted")
	// ErrInvalidCount signals a negative slot count.
	ErrInvalidCount = errors.New("storage: invalid slot count")
)
