/*
Package array provides a bounds-checked view of a fixed-size element run.

Go arrays and slices already give fixed-size storage; what this package adds
is the checked accessor surface shared with the other containers of this
module: At and Set report ErrIndexOutOfBounds instead of panicking, Fill
and All operate on the whole run. An Array never grows or shrinks.
*/
package array

import (
	"errors"
	"iter"
)

// ErrIndexOutOfBounds flags an index outside [0, Len).
var ErrIndexOutOfBounds = errors.New("array: index out of bounds")

// ErrSizeMismatch flags an operation across two arrays of different sizes.
var ErrSizeMismatch = errors.New("array: sizes differ")

// Array is a fixed-size run of elements.
type Array[T any] struct {
	slots []T
}

// New creates an array of n zero-valued elements.
func New[T any](n int) Array[T] {
	return Array[T]{slots: make([]T, n)}
}

// Of wraps a caller-provided backing slice. The array aliases the slice;
// writes through either are visible in both.
func Of[T any](backing []T) Array[T] {
	return Array[T]{slots: backing}
}

// Len returns the number of elements.
func (a Array[T]) Len() int {
	return len(a.slots)
}

// IsEmpty reports whether the array has size zero.
func (a Array[T]) IsEmpty() bool {
	return len(a.slots) == 0
}

// At returns the element at index i.
func (a Array[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(a.slots) {
		return zero, ErrIndexOutOfBounds
	}
	return a.slots[i], nil
}

// Set replaces the element at index i.
func (a Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.slots) {
		return ErrIndexOutOfBounds
	}
	a.slots[i] = v
	return nil
}

// Front returns the first element, or false for an empty array.
func (a Array[T]) Front() (T, bool) {
	var zero T
	if len(a.slots) == 0 {
		return zero, false
	}
	return a.slots[0], true
}

// Back returns the last element, or false for an empty array.
func (a Array[T]) Back() (T, bool) {
	var zero T
	if len(a.slots) == 0 {
		return zero, false
	}
	return a.slots[len(a.slots)-1], true
}

// Fill sets every element to v.
func (a Array[T]) Fill(v T) {
	for i := range a.slots {
		a.slots[i] = v
	}
}

// Swap exchanges the contents of two arrays of equal size.
func (a Array[T]) Swap(b Array[T]) error {
	if len(a.slots) != len(b.slots) {
		return ErrSizeMismatch
	}
	for i := range a.slots {
		a.slots[i], b.slots[i] = b.slots[i], a.slots[i]
	}
	return nil
}

// All returns an iterator over all elements in order.
func (a Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range a.slots {
			if !yield(a.slots[i]) {
				return
			}
		}
	}
}

// ToSlice returns the elements as a fresh slice.
func (a Array[T]) ToSlice() []T {
	out := make([]T, len(a.slots))
	copy(out, a.slots)
	return out
}
