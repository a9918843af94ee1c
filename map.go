package tinystl

import "github.com/zhanghaoxvan/tinystl/storage"

// blockMap is the deque's indirection table: an ordered run of block handles
// with unused handle slots kept at both ends.
//
// The map does not know which of its slots are occupied; the deque's begin
// and end positions carry that range and pass it into every operation that
// moves handles around. Slots outside [first, last] hold nil handles.
type blockMap[T any] struct {
	slots [][]T
}

func newBlockMap[T any](alloc storage.Allocator[[]T], capacity int) (*blockMap[T], error) {
	slots, err := alloc.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	return &blockMap[T]{slots: slots}, nil
}

func (m *blockMap[T]) capacity() int {
	return len(m.slots)
}

// reserveAtBack ensures at least nodesToAdd unused handle slots past last.
//
// It returns the (possibly shifted) new index of the slot that held first.
func (m *blockMap[T]) reserveAtBack(alloc storage.Allocator[[]T], nodesToAdd, first, last int) (int, error) {
	if m.capacity()-1-last >= nodesToAdd {
		return first, nil
	}
	return m.reallocate(alloc, nodesToAdd, false, first, last)
}

// reserveAtFront ensures at least nodesToAdd unused handle slots before first.
//
// It returns the (possibly shifted) new index of the slot that held first.
func (m *blockMap[T]) reserveAtFront(alloc storage.Allocator[[]T], nodesToAdd, first, last int) (int, error) {
	if first >= nodesToAdd {
		return first, nil
	}
	return m.reallocate(alloc, nodesToAdd, true, first, last)
}

// reallocate makes room for nodesToAdd additional handles at one end.
//
// When the current capacity is more than twice the grown occupancy the
// occupied handles are recentered within the same storage. Otherwise a new
// map of capacity cap+max(cap, nodesToAdd)+2 is allocated, the handles are
// copied into its center and the old storage is released. Spare slots are
// split evenly between both ends, so repeated pushes at either end defer the
// next reallocation equally. On allocation failure the old map is intact.
//
// Returns the new index of the slot that held first. The caller shifts its
// boundary positions by the difference.
func (m *blockMap[T]) reallocate(alloc storage.Allocator[[]T], nodesToAdd int, addAtFront bool, first, last int) (int, error) {
	occupied := last - first + 1
	grown := occupied + nodesToAdd
	if m.capacity() > 2*grown {
		newFirst := (m.capacity() - grown) / 2
		if addAtFront {
			newFirst += nodesToAdd
		}
		// Go's copy handles overlapping ranges, no direction split needed.
		copy(m.slots[newFirst:newFirst+occupied], m.slots[first:last+1])
		for i := first; i <= last; i++ {
			if i < newFirst || i >= newFirst+occupied {
				m.slots[i] = nil
			}
		}
		tracer().Debugf("deque: map recentered, occupied %d of %d now at %d", occupied, m.capacity(), newFirst)
		return newFirst, nil
	}
	newCap := m.capacity() + max(m.capacity(), nodesToAdd) + 2
	fresh, err := alloc.Allocate(newCap)
	if err != nil {
		return first, err
	}
	newFirst := (newCap - grown) / 2
	if addAtFront {
		newFirst += nodesToAdd
	}
	copy(fresh[newFirst:newFirst+occupied], m.slots[first:last+1])
	old := m.slots
	m.slots = fresh
	alloc.Deallocate(old)
	tracer().Debugf("deque: map grown from %d to %d handle slots", len(old), newCap)
	return newFirst, nil
}
