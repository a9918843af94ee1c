/*
Package storage defines the memory capability consumed by the container
packages of this module.

Containers never call make or new for element storage directly. They request
uninitialized slot runs from an Allocator, hand slots back when done, and
route every element lifetime transition (construct, destroy) through the same
capability. This keeps two properties in one place:

  - all-or-nothing allocation: a request for n slots either yields all n or
    fails with an error, never a partial run,
  - a defined slot state machine: a slot is unconstructed until Construct,
    live until Destroy, and unconstructed again afterwards.

Heap is the unbounded default. Limited enforces a shared Quota and is the
way tests (and memory-conscious callers) provoke allocation failure on
demand. Because Allocator is generic over the slot type, one Quota can
govern several instantiations at once — e.g. a deque's element blocks and
its map of block handles draw from the same budget.
*/
package storage

// Allocator hands out and reclaims runs of element slots.
//
// Allocate returns exactly n uninitialized slots or an error; there is no
// partial success. Deallocate requires a slice previously returned by
// Allocate on the same allocator. Construct and Destroy transition a single
// slot between its unconstructed and live states; Destroy zeroes the slot so
// that element-held references do not outlive the element.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(block []T)
	Construct(slot *T, v T)
	Destroy(slot *T)
}

// Heap is the unbounded allocator backed by the Go runtime.
//
// The zero value is ready to use.
type Heap[T any] struct{}

// NewHeap creates an unbounded allocator.
func NewHeap[T any]() Heap[T] {
	return Heap[T]{}
}

// Allocate returns n uninitialized slots.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate releases a slot run.
//
// The Go runtime reclaims the storage; Deallocate exists so that callers
// observe the same protocol across allocator implementations.
func (Heap[T]) Deallocate(block []T) {}

// Construct places v into an unconstructed slot.
func (Heap[T]) Construct(slot *T, v T) {
	*slot = v
}

// Destroy clears a live slot.
func (Heap[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}
