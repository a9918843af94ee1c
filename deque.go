package tinystl

/*
BSD 3-Clause License

Copyright (c) 2024–25, Zhang Haoxvan

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
)

// Deque is a double-ended queue over segmented storage.
//
// Elements live in fixed-capacity blocks addressed through a map of block
// handles (see blockMap). The deque tracks a begin and an end position; all
// occupied blocks lie in the map range [begin.node, end.node]. Pushes and
// pops at both ends are amortized O(1), random access is O(1), and element
// storage never moves once constructed.
//
// A deque created by
//
//	Deque[int]{}
//
// is a valid empty deque using the default configuration. Deques must not
// be copied by assignment once used; use Clone, Assign or Take.
//
// All operations are single-threaded; callers needing concurrent access
// must synchronize externally.
type Deque[T any] struct {
	cfg   Config[T]
	m     *blockMap[T]
	begin position
	end   position
}

// New creates an empty deque with validated configuration.
func New[T any](cfg Config[T]) (*Deque[T], error) {
	return newWithCount(cfg, 0)
}

// Repeat creates a deque holding count copies of fill.
func Repeat[T any](cfg Config[T], count int, fill T) (*Deque[T], error) {
	d, err := newWithCount(cfg, count)
	if err != nil {
		return nil, err
	}
	d.forEachSlot(func(slot *T) bool {
		d.cfg.Alloc.Construct(slot, fill)
		return true
	})
	return d, nil
}

// FromSlice creates a deque holding the elements of xs in order.
func FromSlice[T any](cfg Config[T], xs []T) (*Deque[T], error) {
	d, err := newWithCount(cfg, len(xs))
	if err != nil {
		return nil, err
	}
	i := 0
	d.forEachSlot(func(slot *T) bool {
		d.cfg.Alloc.Construct(slot, xs[i])
		i++
		return true
	})
	return d, nil
}

// FromSeq creates a deque from a sequence of unknown length.
//
// Elements are pushed at the back as the sequence yields them. On
// allocation failure the partially built deque is released and the error
// returned.
func FromSeq[T any](cfg Config[T], seq iter.Seq[T]) (*Deque[T], error) {
	d, err := newWithCount(cfg, 0)
	if err != nil {
		return nil, err
	}
	for v := range seq {
		if err := d.PushBack(v); err != nil {
			d.Release()
			return nil, err
		}
	}
	return d, nil
}

func newWithCount[T any](cfg Config[T], count int) (*Deque[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", ErrInvalidConfig, count)
	}
	d := &Deque[T]{cfg: cfg.normalized()}
	if err := d.initializeMap(count); err != nil {
		return nil, err
	}
	return d, nil
}

// initializeMap sets up the map and the initially occupied blocks for count
// elements: count/B+1 blocks, centered in a map of max(8, blocks+2) handle
// slots. If block allocation fails partway, every block acquired so far and
// the map itself are released before the error propagates.
func (d *Deque[T]) initializeMap(count int) error {
	blockCap := d.cfg.BlockCapacity
	blocksNeeded := count/blockCap + 1
	mapCap := max(initialMapCapacity, blocksNeeded+2)
	m, err := newBlockMap[T](d.cfg.MapAlloc, mapCap)
	if err != nil {
		return err
	}
	g := &allocGuard{}
	defer g.rollback()
	g.add(func() { d.cfg.MapAlloc.Deallocate(m.slots) })
	first := (mapCap - blocksNeeded) / 2
	for i := range blocksNeeded {
		block, err := d.allocateBlock()
		if err != nil {
			return err
		}
		m.slots[first+i] = block
		g.add(func() { d.freeBlock(block) })
	}
	g.commit()
	d.m = m
	d.begin = position{node: first, cur: 0}
	d.end = position{node: first + blocksNeeded - 1, cur: count % blockCap}
	return nil
}

// ensureInit lazily initializes a zero-value deque.
func (d *Deque[T]) ensureInit() error {
	if d.m != nil {
		return nil
	}
	if err := d.cfg.validate(); err != nil {
		return err
	}
	d.cfg = d.cfg.normalized()
	return d.initializeMap(0)
}

// rebase shifts the boundary positions after the map moved its handles.
func (d *Deque[T]) rebase(newFirst int) {
	shift := newFirst - d.begin.node
	if shift == 0 {
		return
	}
	d.begin.node += shift
	d.end.node += shift
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	if d.m == nil {
		return 0
	}
	return (d.end.node-d.begin.node)*d.cfg.BlockCapacity - d.begin.cur + d.end.cur
}

// IsEmpty reports whether the deque has no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.Len() == 0
}

// PushBack appends v.
//
// At most one block allocation occurs, plus an occasional map reallocation
// when the map has no spare handle slot at the back. On allocation failure
// the deque is unchanged and the error is returned.
func (d *Deque[T]) PushBack(v T) error {
	if err := d.ensureInit(); err != nil {
		return err
	}
	if d.end.cur < d.cfg.BlockCapacity-1 {
		d.cfg.Alloc.Construct(&d.m.slots[d.end.node][d.end.cur], v)
		d.end.cur++
		return nil
	}
	// The write lands in the block's last usable slot; secure the next
	// block before touching anything.
	newFirst, err := d.m.reserveAtBack(d.cfg.MapAlloc, 1, d.begin.node, d.end.node)
	if err != nil {
		return err
	}
	d.rebase(newFirst)
	block, err := d.allocateBlock()
	if err != nil {
		return err
	}
	d.cfg.Alloc.Construct(&d.m.slots[d.end.node][d.end.cur], v)
	d.m.slots[d.end.node+1] = block
	d.end = position{node: d.end.node + 1, cur: 0}
	return nil
}

// PushFront prepends v.
//
// At most one block allocation occurs, plus an occasional map reallocation
// when the map has no spare handle slot at the front. On allocation failure
// the deque is unchanged and the error is returned.
func (d *Deque[T]) PushFront(v T) error {
	if err := d.ensureInit(); err != nil {
		return err
	}
	if d.begin.cur > 0 {
		d.begin.cur--
		d.cfg.Alloc.Construct(&d.m.slots[d.begin.node][d.begin.cur], v)
		return nil
	}
	newFirst, err := d.m.reserveAtFront(d.cfg.MapAlloc, 1, d.begin.node, d.end.node)
	if err != nil {
		return err
	}
	d.rebase(newFirst)
	block, err := d.allocateBlock()
	if err != nil {
		return err
	}
	d.m.slots[d.begin.node-1] = block
	d.begin = position{node: d.begin.node - 1, cur: d.cfg.BlockCapacity - 1}
	d.cfg.Alloc.Construct(&d.m.slots[d.begin.node][d.begin.cur], v)
	return nil
}

// PopBack removes and returns the last element.
//
// Popping an empty deque is a no-op and reports false.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.Len() == 0 {
		return zero, false
	}
	if d.end.cur > 0 {
		d.end.cur--
	} else {
		// The end block is the empty anchor; the last element lives in
		// the block before it.
		d.freeBlock(d.m.slots[d.end.node])
		d.m.slots[d.end.node] = nil
		d.end = position{node: d.end.node - 1, cur: d.cfg.BlockCapacity - 1}
	}
	slot := &d.m.slots[d.end.node][d.end.cur]
	v := *slot
	d.cfg.Alloc.Destroy(slot)
	return v, true
}

// PopFront removes and returns the first element.
//
// Popping an empty deque is a no-op and reports false.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.Len() == 0 {
		return zero, false
	}
	slot := &d.m.slots[d.begin.node][d.begin.cur]
	v := *slot
	d.cfg.Alloc.Destroy(slot)
	if d.begin.cur == d.cfg.BlockCapacity-1 {
		d.freeBlock(d.m.slots[d.begin.node])
		d.m.slots[d.begin.node] = nil
		d.begin = position{node: d.begin.node + 1, cur: 0}
	} else {
		d.begin.cur++
	}
	return v, true
}

// Front returns the first element, or false for an empty deque.
func (d *Deque[T]) Front() (T, bool) {
	var zero T
	if d.Len() == 0 {
		return zero, false
	}
	return d.m.slots[d.begin.node][d.begin.cur], true
}

// Back returns the last element, or false for an empty deque.
func (d *Deque[T]) Back() (T, bool) {
	var zero T
	if d.Len() == 0 {
		return zero, false
	}
	if d.end.cur > 0 {
		return d.m.slots[d.end.node][d.end.cur-1], true
	}
	return d.m.slots[d.end.node-1][d.cfg.BlockCapacity-1], true
}

// At returns the element at index i.
func (d *Deque[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= d.Len() {
		return zero, ErrIndexOutOfBounds
	}
	node, slot := d.locate(i)
	return d.m.slots[node][slot], nil
}

// Set replaces the element at index i.
func (d *Deque[T]) Set(i int, v T) error {
	if i < 0 || i >= d.Len() {
		return ErrIndexOutOfBounds
	}
	node, slot := d.locate(i)
	d.m.slots[node][slot] = v
	return nil
}

// locate maps a logical index to a map slot and an in-block offset.
func (d *Deque[T]) locate(i int) (node, slot int) {
	off := d.begin.cur + i
	return d.begin.node + off/d.cfg.BlockCapacity, off % d.cfg.BlockCapacity
}

// Clear destroys every element and releases every block except one, which
// is retained as the empty begin/end anchor (the layout of a freshly
// constructed empty deque). The map itself is kept. Clearing an empty
// deque is a no-op.
func (d *Deque[T]) Clear() {
	if d.m == nil {
		return
	}
	blockCap := d.cfg.BlockCapacity
	for node := d.begin.node + 1; node < d.end.node; node++ {
		block := d.m.slots[node]
		for i := range blockCap {
			d.cfg.Alloc.Destroy(&block[i])
		}
		d.freeBlock(block)
		d.m.slots[node] = nil
	}
	if d.begin.node != d.end.node {
		for i := d.begin.cur; i < blockCap; i++ {
			d.cfg.Alloc.Destroy(&d.m.slots[d.begin.node][i])
		}
		for i := range d.end.cur {
			d.cfg.Alloc.Destroy(&d.m.slots[d.end.node][i])
		}
		d.freeBlock(d.m.slots[d.end.node])
		d.m.slots[d.end.node] = nil
	} else {
		for i := d.begin.cur; i < d.end.cur; i++ {
			d.cfg.Alloc.Destroy(&d.m.slots[d.begin.node][i])
		}
	}
	d.begin = position{node: d.begin.node, cur: 0}
	d.end = d.begin
}

// Release destroys every element and returns all storage, blocks and map,
// to the allocators. The deque reverts to its zero state and may be used
// again, which lazily re-initializes it.
func (d *Deque[T]) Release() {
	if d.m == nil {
		return
	}
	d.Clear()
	d.freeBlock(d.m.slots[d.begin.node])
	d.m.slots[d.begin.node] = nil
	d.cfg.MapAlloc.Deallocate(d.m.slots)
	d.m = nil
	d.begin = position{}
	d.end = position{}
}

// Clone returns a deep copy sharing no storage with the receiver.
func (d *Deque[T]) Clone() (*Deque[T], error) {
	out, err := newWithCount(d.cfg, d.Len())
	if err != nil {
		return nil, err
	}
	srcNode, srcCur := d.begin.node, d.begin.cur
	out.forEachSlot(func(slot *T) bool {
		out.cfg.Alloc.Construct(slot, d.m.slots[srcNode][srcCur])
		srcCur++
		if srcCur == d.cfg.BlockCapacity {
			srcNode++
			srcCur = 0
		}
		return true
	})
	return out, nil
}

// Assign replaces the receiver's contents with a deep copy of src.
//
// The copy is built completely before the receiver's old storage is
// released, so a failed Assign leaves the receiver unchanged.
func (d *Deque[T]) Assign(src *Deque[T]) error {
	if d == src {
		return nil
	}
	if err := d.cfg.validate(); err != nil {
		return err
	}
	d.cfg = d.cfg.normalized()
	tmp, err := newWithCount(d.cfg, src.Len())
	if err != nil {
		return err
	}
	srcNode, srcCur := src.begin.node, src.begin.cur
	tmp.forEachSlot(func(slot *T) bool {
		tmp.cfg.Alloc.Construct(slot, src.m.slots[srcNode][srcCur])
		srcCur++
		if srcCur == src.cfg.BlockCapacity {
			srcNode++
			srcCur = 0
		}
		return true
	})
	d.Release()
	d.cfg = tmp.cfg
	d.m = tmp.m
	d.begin = tmp.begin
	d.end = tmp.end
	return nil
}

// Take moves src's contents into the receiver without copying elements.
//
// The receiver's previous storage is released; src reverts to its zero
// state and stays usable.
func (d *Deque[T]) Take(src *Deque[T]) {
	if d == src {
		return
	}
	d.Release()
	if src.m != nil {
		d.cfg = src.cfg
	}
	d.m = src.m
	d.begin = src.begin
	d.end = src.end
	src.m = nil
	src.begin = position{}
	src.end = position{}
}

// All returns an iterator over all elements in order.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		d.forEachSlot(func(slot *T) bool {
			return yield(*slot)
		})
	}
}

// ToSlice returns the elements as a fresh slice.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, 0, d.Len())
	for v := range d.All() {
		out = append(out, v)
	}
	return out
}

// forEachSlot visits the occupied slot range [begin, end) block by block.
func (d *Deque[T]) forEachSlot(fn func(slot *T) bool) {
	if d.m == nil {
		return
	}
	blockCap := d.cfg.BlockCapacity
	for node := d.begin.node; node <= d.end.node; node++ {
		lo, hi := 0, blockCap
		if node == d.begin.node {
			lo = d.begin.cur
		}
		if node == d.end.node {
			hi = d.end.cur
		}
		block := d.m.slots[node]
		for i := lo; i < hi; i++ {
			if !fn(&block[i]) {
				return
			}
		}
	}
}

// occupiedBlocks returns the number of blocks currently held by the map.
func (d *Deque[T]) occupiedBlocks() int {
	if d.m == nil {
		return 0
	}
	return d.end.node - d.begin.node + 1
}
