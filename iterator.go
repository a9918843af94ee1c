package tinystl

// position identifies one element slot as a map-slot index plus an in-block
// offset. Offsets run from 0 to the block capacity; an offset equal to the
// capacity is a transient end-of-block sentinel that arithmetic produces
// while relocating across a boundary.
type position struct {
	node int
	cur  int
}

// Iterator is a random-access cursor over a deque.
//
// An iterator addresses elements by map-slot index and in-block offset, not
// by storage address. Moving past a block boundary consults the deque's map
// with plain integer arithmetic, so Advance and Distance are O(1) for any
// displacement.
//
// An iterator stays valid until the block it addresses is released (a pop
// that empties the block, Clear, Release) or until the map is reallocated
// by a push. A stale iterator yields defined failures — a wrong element or
// ErrIndexOutOfBounds — never memory corruption.
type Iterator[T any] struct {
	deq *Deque[T]
	pos position
}

// Begin returns an iterator at the first element.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{deq: d, pos: d.begin}
}

// End returns an iterator one past the last element.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{deq: d, pos: d.end}
}

// Next advances the iterator by one element, crossing into the next block
// when the current one is exhausted.
func (it *Iterator[T]) Next() {
	if it.deq == nil {
		return
	}
	if it.pos.cur >= it.deq.cfg.BlockCapacity {
		// a sentinel offset left behind by Advance
		it.pos.node++
		it.pos.cur = 0
	}
	it.pos.cur++
	if it.pos.cur == it.deq.cfg.BlockCapacity {
		it.pos.node++
		it.pos.cur = 0
	}
}

// Prev moves the iterator back by one element, crossing into the previous
// block from a block's first slot.
func (it *Iterator[T]) Prev() {
	if it.deq == nil {
		return
	}
	if it.pos.cur == 0 {
		it.pos.node--
		it.pos.cur = it.deq.cfg.BlockCapacity
	}
	it.pos.cur--
}

// Advance moves the iterator by n elements, n may be negative.
//
// Displacements that stay within the current block adjust the offset in
// place. Anything else relocates to the target block with floor-division
// semantics, so negative displacements land in the correct earlier block.
// An advance to exactly the end of a block leaves the iterator at the
// block's sentinel offset; Next, Value and Set normalize it.
func (it *Iterator[T]) Advance(n int) {
	if it.deq == nil {
		return
	}
	blockCap := it.deq.cfg.BlockCapacity
	offset := n + it.pos.cur
	if offset >= 0 && offset <= blockCap {
		it.pos.cur = offset
		return
	}
	var nodeOffset int
	if offset > 0 {
		nodeOffset = offset / blockCap
	} else {
		nodeOffset = -((-offset-1)/blockCap) - 1
	}
	it.pos.node += nodeOffset
	it.pos.cur = offset - nodeOffset*blockCap
}

// Distance returns the number of increments from it to other.
//
// The result is derived from block indices and in-block offsets alone and
// is O(1). It is negative when other precedes it. Both iterators must
// belong to the same deque; a zero-value iterator has no block geometry
// and reports 0.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	if it.deq == nil {
		return 0
	}
	blockCap := it.deq.cfg.BlockCapacity
	return blockCap*(other.pos.node-it.pos.node-1) + (blockCap - it.pos.cur) + other.pos.cur
}

// Value returns the element the iterator addresses.
//
// Positions outside the deque's occupied range, including the end position,
// yield ErrIndexOutOfBounds.
func (it Iterator[T]) Value() (T, error) {
	var zero T
	p, err := it.checked()
	if err != nil {
		return zero, err
	}
	return it.deq.m.slots[p.node][p.cur], nil
}

// Set replaces the element the iterator addresses.
func (it Iterator[T]) Set(v T) error {
	p, err := it.checked()
	if err != nil {
		return err
	}
	it.deq.m.slots[p.node][p.cur] = v
	return nil
}

// checked normalizes a sentinel offset and verifies the position lies in
// the occupied range [begin, end).
func (it Iterator[T]) checked() (position, error) {
	if it.deq == nil || it.deq.m == nil {
		return position{}, ErrIndexOutOfBounds
	}
	p := it.pos
	if p.cur == it.deq.cfg.BlockCapacity {
		p = position{node: p.node + 1, cur: 0}
	}
	if before(p, it.deq.begin) || !before(p, it.deq.end) {
		return position{}, ErrIndexOutOfBounds
	}
	return p, nil
}

// normalized resolves a sentinel offset to the equivalent position at the
// start of the next block, so that comparisons see one canonical position
// per element.
func (it Iterator[T]) normalized() position {
	if it.deq != nil && it.pos.cur == it.deq.cfg.BlockCapacity {
		return position{node: it.pos.node + 1, cur: 0}
	}
	return it.pos
}

// Equal reports whether both iterators address the same element.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.normalized() == other.normalized()
}

// Less reports whether it precedes other, comparing block index first and
// in-block offset second.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return before(it.normalized(), other.normalized())
}

// Compare orders two iterators: -1, 0 or +1 as it precedes, equals or
// follows other.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	a, b := it.normalized(), other.normalized()
	switch {
	case a == b:
		return 0
	case before(a, b):
		return -1
	default:
		return 1
	}
}

func before(a, b position) bool {
	if a.node != b.node {
		return a.node < b.node
	}
	return a.cur < b.cur
}
