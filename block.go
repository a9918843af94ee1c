package tinystl

// A block is a contiguous run of exactly BlockCapacity element slots, handed
// out by the element allocator. Allocation is all-or-nothing; the allocator
// either reserves the full run or fails. Blocks hold no constructed state of
// their own — element construction and destruction within a block is the
// deque's responsibility.

func (d *Deque[T]) allocateBlock() ([]T, error) {
	return d.cfg.Alloc.Allocate(d.cfg.BlockCapacity)
}

func (d *Deque[T]) freeBlock(block []T) {
	d.cfg.Alloc.Deallocate(block)
}
