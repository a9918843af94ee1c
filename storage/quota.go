package storage

import "fmt"

// Quota is a shared slot budget.
//
// A Quota counts slots, not bytes, and is deliberately oblivious to the slot
// type: allocators for different element types may share one Quota, which is
// how a container charges both its element storage and its bookkeeping
// structures against a single budget.
//
// Quota carries no internal synchronization, matching the single-threaded
// contract of the container packages.
type Quota struct {
	capacity int
	used     int
}

// NewQuota creates a budget of n slots. A negative n means unbounded.
func NewQuota(n int) *Quota {
	return &Quota{capacity: n}
}

// Used returns the number of slots currently charged.
func (q *Quota) Used() int {
	return q.used
}

// Capacity returns the budget, or a negative value for unbounded.
func (q *Quota) Capacity() int {
	return q.capacity
}

func (q *Quota) reserve(n int) error {
	if q.capacity >= 0 && q.used+n > q.capacity {
		return fmt.Errorf("%w: %d slots requested, %d of %d in use",
			ErrExhausted, n, q.used, q.capacity)
	}
	q.used += n
	return nil
}

func (q *Quota) release(n int) {
	q.used -= n
	assert(q.used >= 0, "quota released more slots than were reserved")
}

// Limited is an allocator that charges a shared Quota.
type Limited[T any] struct {
	quota *Quota
}

// Limit creates an allocator drawing on quota q.
func Limit[T any](q *Quota) Limited[T] {
	assert(q != nil, "Limit requires a non-nil quota")
	return Limited[T]{quota: q}
}

// Allocate returns n uninitialized slots, or ErrExhausted when the budget
// cannot cover them. The budget is charged only on success.
func (a Limited[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	if n == 0 {
		return nil, nil
	}
	if err := a.quota.reserve(n); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Deallocate releases a slot run and refunds the budget.
func (a Limited[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	a.quota.release(len(block))
}

// Construct places v into an unconstructed slot.
func (a Limited[T]) Construct(slot *T, v T) {
	*slot = v
}

// Destroy clears a live slot.
func (a Limited[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
