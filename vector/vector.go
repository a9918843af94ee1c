/*
Package vector implements a growable array over pluggable storage.

A Vector keeps its elements in one contiguous slot run obtained from a
storage.Allocator. When the run is full the vector acquires a run of twice
the capacity, moves the elements over and releases the old run. Because the
new run is secured before anything moves, a failed growth leaves the vector
exactly as it was.

The zero value is an empty vector using unbounded heap allocation.
*/
package vector

import (
	"iter"

	"github.com/zhanghaoxvan/tinystl/storage"
)

// Vector is a growable array of T.
type Vector[T any] struct {
	alloc storage.Allocator[T]
	slots []T
	n     int
}

// New creates an empty vector drawing storage from alloc. A nil alloc
// selects unbounded heap allocation.
func New[T any](alloc storage.Allocator[T]) *Vector[T] {
	v := &Vector[T]{}
	v.alloc = alloc
	return v
}

// FromSlice creates a vector holding the elements of xs in order.
func FromSlice[T any](alloc storage.Allocator[T], xs []T) (*Vector[T], error) {
	v := New(alloc)
	if err := v.Reserve(len(xs)); err != nil {
		return nil, err
	}
	for _, x := range xs {
		v.allocator().Construct(&v.slots[v.n], x)
		v.n++
	}
	return v, nil
}

func (v *Vector[T]) allocator() storage.Allocator[T] {
	if v.alloc == nil {
		v.alloc = storage.NewHeap[T]()
	}
	return v.alloc
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.n
}

// Cap returns the number of slots currently held.
func (v *Vector[T]) Cap() int {
	return len(v.slots)
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.n == 0
}

// Reserve ensures capacity for at least n elements. It never shrinks. On
// allocation failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.slots) {
		return nil
	}
	return v.regrow(n)
}

// regrow moves the elements into a fresh run of exactly capacity slots.
func (v *Vector[T]) regrow(capacity int) error {
	alloc := v.allocator()
	fresh, err := alloc.Allocate(capacity)
	if err != nil {
		return err
	}
	for i := range v.n {
		alloc.Construct(&fresh[i], v.slots[i])
		alloc.Destroy(&v.slots[i])
	}
	if v.slots != nil {
		alloc.Deallocate(v.slots)
	}
	v.slots = fresh
	return nil
}

// grownCapacity doubles the capacity until it covers need.
func (v *Vector[T]) grownCapacity(need int) int {
	capacity := max(len(v.slots), 1)
	for capacity < need {
		capacity *= 2
	}
	return capacity
}

// PushBack appends x, growing the storage when full.
func (v *Vector[T]) PushBack(x T) error {
	if v.n == len(v.slots) {
		if err := v.regrow(v.grownCapacity(v.n + 1)); err != nil {
			return err
		}
	}
	v.allocator().Construct(&v.slots[v.n], x)
	v.n++
	return nil
}

// PopBack removes and returns the last element, or reports false when the
// vector is empty.
func (v *Vector[T]) PopBack() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	v.n--
	x := v.slots[v.n]
	v.allocator().Destroy(&v.slots[v.n])
	return x, true
}

// Insert places x before index i, shifting later elements one slot up.
// i == Len appends.
func (v *Vector[T]) Insert(i int, x T) error {
	if i < 0 || i > v.n {
		return ErrIndexOutOfBounds
	}
	if v.n == len(v.slots) {
		if err := v.regrow(v.grownCapacity(v.n + 1)); err != nil {
			return err
		}
	}
	alloc := v.allocator()
	alloc.Construct(&v.slots[v.n], x) // occupy the new tail slot first
	copy(v.slots[i+1:v.n+1], v.slots[i:v.n])
	v.slots[i] = x
	v.n++
	return nil
}

// Remove deletes the element at index i, shifting later elements down.
func (v *Vector[T]) Remove(i int) error {
	if i < 0 || i >= v.n {
		return ErrIndexOutOfBounds
	}
	copy(v.slots[i:v.n-1], v.slots[i+1:v.n])
	v.n--
	v.allocator().Destroy(&v.slots[v.n])
	return nil
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.n {
		return zero, ErrIndexOutOfBounds
	}
	return v.slots[i], nil
}

// Set replaces the element at index i.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.n {
		return ErrIndexOutOfBounds
	}
	v.slots[i] = x
	return nil
}

// Front returns the first element, or false for an empty vector.
func (v *Vector[T]) Front() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	return v.slots[0], true
}

// Back returns the last element, or false for an empty vector.
func (v *Vector[T]) Back() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	return v.slots[v.n-1], true
}

// Clear destroys every element. Capacity is retained.
func (v *Vector[T]) Clear() {
	for i := range v.n {
		v.allocator().Destroy(&v.slots[i])
	}
	v.n = 0
}

// Release destroys every element and returns the storage to the allocator.
// The vector reverts to its empty zero-capacity state and stays usable.
func (v *Vector[T]) Release() {
	v.Clear()
	if v.slots != nil {
		v.allocator().Deallocate(v.slots)
		v.slots = nil
	}
}

// Clone returns a deep copy sharing no storage with the receiver.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return FromSlice(v.alloc, v.slots[:v.n])
}

// All returns an iterator over all elements in order.
func (v *Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.n {
			if !yield(v.slots[i]) {
				return
			}
		}
	}
}

// ToSlice returns the elements as a fresh slice.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.n)
	copy(out, v.slots[:v.n])
	return out
}
