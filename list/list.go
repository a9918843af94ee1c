/*
Package list implements a doubly linked list over pluggable storage.

Every element lives in its own single-slot run from a storage.Allocator, so
element addresses are stable for the element's whole lifetime and removal
returns exactly one slot to the allocator. Callers hold elements through
*Element handles, which double as insertion anchors.

The zero value is an empty list using unbounded heap allocation.
*/
package list

import (
	"iter"

	"github.com/zhanghaoxvan/tinystl/storage"
)

// Element is one list node. The Value field is free for the caller to
// read and write; the links belong to the list.
type Element[T any] struct {
	Value T

	next, prev *Element[T]
	list       *List[T]
	run        []Element[T] // backing slot run, returned on removal
}

// Next returns the following element, or nil at the back.
func (e *Element[T]) Next() *Element[T] {
	if n := e.next; e.list != nil && n != &e.list.root {
		return n
	}
	return nil
}

// Prev returns the preceding element, or nil at the front.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List is a doubly linked list of T. The root element is a sentinel
// closing the ring; it never carries a value.
type List[T any] struct {
	alloc storage.Allocator[Element[T]]
	root  Element[T]
	n     int
}

// New creates an empty list drawing storage from alloc. A nil alloc
// selects unbounded heap allocation.
func New[T any](alloc storage.Allocator[Element[T]]) *List[T] {
	l := &List[T]{}
	l.alloc = alloc
	return l
}

// FromSlice creates a list holding the elements of xs in order.
func FromSlice[T any](alloc storage.Allocator[Element[T]], xs []T) (*List[T], error) {
	l := New(alloc)
	for _, x := range xs {
		if _, err := l.PushBack(x); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

func (l *List[T]) allocator() storage.Allocator[Element[T]] {
	if l.alloc == nil {
		l.alloc = storage.NewHeap[Element[T]]()
	}
	return l.alloc
}

// lazyInit closes the sentinel ring of a zero-value list.
func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.n
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.n == 0
}

// Front returns the first element, or nil for an empty list.
func (l *List[T]) Front() *Element[T] {
	if l.n == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element, or nil for an empty list.
func (l *List[T]) Back() *Element[T] {
	if l.n == 0 {
		return nil
	}
	return l.root.prev
}

// newElement acquires and constructs a node holding v.
func (l *List[T]) newElement(v T) (*Element[T], error) {
	alloc := l.allocator()
	run, err := alloc.Allocate(1)
	if err != nil {
		return nil, err
	}
	alloc.Construct(&run[0], Element[T]{Value: v})
	e := &run[0]
	e.list = l
	e.run = run
	return e, nil
}

// insertAfter links e behind at.
func (l *List[T]) insertAfter(e, at *Element[T]) *Element[T] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	l.n++
	return e
}

// PushBack appends v and returns its element handle.
func (l *List[T]) PushBack(v T) (*Element[T], error) {
	l.lazyInit()
	e, err := l.newElement(v)
	if err != nil {
		return nil, err
	}
	return l.insertAfter(e, l.root.prev), nil
}

// PushFront prepends v and returns its element handle.
func (l *List[T]) PushFront(v T) (*Element[T], error) {
	l.lazyInit()
	e, err := l.newElement(v)
	if err != nil {
		return nil, err
	}
	return l.insertAfter(e, &l.root), nil
}

// InsertBefore places v before mark, which must be an element of this
// list. It returns the new element's handle.
func (l *List[T]) InsertBefore(v T, mark *Element[T]) (*Element[T], error) {
	if mark.list != l {
		return nil, ErrForeignElement
	}
	e, err := l.newElement(v)
	if err != nil {
		return nil, err
	}
	return l.insertAfter(e, mark.prev), nil
}

// InsertAfter places v after mark, which must be an element of this list.
// It returns the new element's handle.
func (l *List[T]) InsertAfter(v T, mark *Element[T]) (*Element[T], error) {
	if mark.list != l {
		return nil, ErrForeignElement
	}
	e, err := l.newElement(v)
	if err != nil {
		return nil, err
	}
	return l.insertAfter(e, mark), nil
}

// Remove unlinks e from the list and returns its value. The slot goes back
// to the allocator; e must not be used afterwards.
func (l *List[T]) Remove(e *Element[T]) (T, error) {
	var zero T
	if e.list != l {
		return zero, ErrForeignElement
	}
	v := e.Value
	e.prev.next = e.next
	e.next.prev = e.prev
	l.n--
	run := e.run
	alloc := l.allocator()
	alloc.Destroy(e)
	alloc.Deallocate(run)
	return v, nil
}

// PopFront removes and returns the first value, or reports false when the
// list is empty.
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	if l.n == 0 {
		return zero, false
	}
	v, err := l.Remove(l.root.next)
	if err != nil {
		return zero, false
	}
	return v, true
}

// PopBack removes and returns the last value, or reports false when the
// list is empty.
func (l *List[T]) PopBack() (T, bool) {
	var zero T
	if l.n == 0 {
		return zero, false
	}
	v, err := l.Remove(l.root.prev)
	if err != nil {
		return zero, false
	}
	return v, true
}

// Clear removes every element and returns all slots to the allocator.
func (l *List[T]) Clear() {
	l.lazyInit()
	alloc := l.allocator()
	for e := l.root.next; e != &l.root; {
		next := e.next
		run := e.run
		alloc.Destroy(e)
		alloc.Deallocate(run)
		e = next
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.n = 0
}

// All returns an iterator over all values from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.root.next == nil {
			return
		}
		for e := l.root.next; e != &l.root; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// ToSlice returns the values as a fresh slice, front to back.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.n)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}
