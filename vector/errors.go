package vector

import "errors"

// ErrIndexOutOfBounds flags an index outside [0, Len).
var ErrIndexOutOfBounds = errors.New("vector: index out of bounds")
