package tinystl

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/zhanghaoxvan/tinystl/storage"
)

func TestZeroValueDequeIsEmpty(t *testing.T) {
	var d Deque[int]
	if d.Len() != 0 || !d.IsEmpty() {
		t.Fatalf("zero-value deque should be empty, len=%d", d.Len())
	}
	if _, ok := d.PopBack(); ok {
		t.Fatalf("pop on empty deque must report false")
	}
	if err := d.PushBack(1); err != nil {
		t.Fatalf("unexpected PushBack error: %v", err)
	}
	if v, ok := d.Front(); !ok || v != 1 {
		t.Fatalf("unexpected front: %v %v", v, ok)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int]{BlockCapacity: -1})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPushPopConservesLen(t *testing.T) {
	d, err := New(Config[int]{BlockCapacity: 4})
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	pushes, pops := 0, 0
	ops := []func() bool{
		func() bool { pushes++; return d.PushBack(pushes) == nil },
		func() bool { pushes++; return d.PushFront(-pushes) == nil },
		func() bool { _, ok := d.PopBack(); return ok },
		func() bool { _, ok := d.PopFront(); return ok },
	}
	schedule := []int{0, 0, 1, 2, 0, 3, 3, 3, 1, 0, 0, 2, 2, 2, 2, 1}
	for _, op := range schedule {
		if ops[op]() && op >= 2 {
			pops++
		}
	}
	if d.Len() != pushes-pops {
		t.Fatalf("len %d, expected %d pushes - %d effective pops", d.Len(), pushes, pops)
	}
}

func TestRoundTripAcrossBlockBoundaries(t *testing.T) {
	const blockCap = 4
	for _, k := range []int{0, 1, blockCap - 1, blockCap, blockCap + 1, 3 * blockCap, 5*blockCap + 3} {
		xs := make([]int, k)
		for i := range xs {
			xs[i] = i * 7
		}
		d, err := FromSlice(Config[int]{BlockCapacity: blockCap}, xs)
		if err != nil {
			t.Fatalf("k=%d: unexpected FromSlice error: %v", k, err)
		}
		if d.Len() != k {
			t.Fatalf("k=%d: len %d", k, d.Len())
		}
		got := d.ToSlice()
		for i := range xs {
			if got[i] != xs[i] {
				t.Fatalf("k=%d: element %d is %d, expected %d", k, i, got[i], xs[i])
			}
		}
	}
}

func TestRandomAccessMatchesIteration(t *testing.T) {
	xs := make([]int, 23)
	for i := range xs {
		xs[i] = i * i
	}
	d, err := FromSlice(Config[int]{BlockCapacity: 4}, xs)
	if err != nil {
		t.Fatalf("unexpected FromSlice error: %v", err)
	}
	it := d.Begin()
	for i := range xs {
		byIndex, err := d.At(i)
		if err != nil {
			t.Fatalf("unexpected At(%d) error: %v", i, err)
		}
		byIter, err := it.Value()
		if err != nil {
			t.Fatalf("unexpected iterator value error at %d: %v", i, err)
		}
		if byIndex != byIter {
			t.Fatalf("At(%d)=%d but iterator sees %d", i, byIndex, byIter)
		}
		it.Next()
	}
	if !it.Equal(d.End()) {
		t.Fatalf("iterator should have reached End after %d steps", len(xs))
	}
}

func TestTenPushesWithSmallBlocks(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	d, err := New(Config[int]{BlockCapacity: 4})
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	for i := range 10 {
		if err := d.PushBack(i); err != nil {
			t.Fatalf("unexpected PushBack error: %v", err)
		}
	}
	if d.occupiedBlocks() != 3 {
		t.Fatalf("expected 3 occupied blocks, got %d", d.occupiedBlocks())
	}
	if d.Len() != 10 {
		t.Fatalf("expected len 10, got %d", d.Len())
	}
	if v, _ := d.Front(); v != 0 {
		t.Fatalf("expected front 0, got %d", v)
	}
	if v, _ := d.Back(); v != 9 {
		t.Fatalf("expected back 9, got %d", v)
	}
	if err := d.PushFront(-1); err != nil {
		t.Fatalf("unexpected PushFront error: %v", err)
	}
	if d.Len() != 11 {
		t.Fatalf("expected len 11, got %d", d.Len())
	}
	if v, _ := d.Front(); v != -1 {
		t.Fatalf("expected front -1, got %d", v)
	}
	if v, err := d.At(1); err != nil || v != 0 {
		t.Fatalf("expected former front at index 1, got %d (%v)", v, err)
	}
}

func TestMapReallocationPreservesContents(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	// One element per block exhausts the initial 8-slot map quickly and
	// forces at least one reallocation.
	d, err := New(Config[int]{BlockCapacity: 1})
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	const n = 40
	for i := range n {
		if err := d.PushBack(i); err != nil {
			t.Fatalf("unexpected PushBack error: %v", err)
		}
	}
	if d.m.capacity() <= initialMapCapacity {
		t.Fatalf("expected the map to have grown past %d slots", initialMapCapacity)
	}
	if d.Len() != n {
		t.Fatalf("expected len %d, got %d", n, d.Len())
	}
	for i := range n {
		if v, err := d.At(i); err != nil || v != i {
			t.Fatalf("element %d is %d (%v) after reallocation", i, v, err)
		}
	}
}

func TestPushFrontForcesFrontReallocation(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	d, err := New(Config[int]{BlockCapacity: 2})
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	const n = 30
	for i := range n {
		if err := d.PushFront(i); err != nil {
			t.Fatalf("unexpected PushFront error: %v", err)
		}
	}
	if d.Len() != n {
		t.Fatalf("expected len %d, got %d", n, d.Len())
	}
	for i := range n {
		if v, _ := d.At(i); v != n-1-i {
			t.Fatalf("element %d is %d, expected %d", i, v, n-1-i)
		}
	}
}

func TestClearIsIdempotent(t *testing.T) {
	d, err := FromSlice(Config[int]{BlockCapacity: 4}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		t.Fatalf("unexpected FromSlice error: %v", err)
	}
	d.Clear()
	if d.Len() != 0 || d.occupiedBlocks() != 1 {
		t.Fatalf("after Clear: len=%d blocks=%d", d.Len(), d.occupiedBlocks())
	}
	anchor := d.begin
	d.Clear()
	if d.Len() != 0 || d.begin != anchor || d.end != anchor {
		t.Fatalf("second Clear changed state")
	}
	// the retained anchor block must be reusable
	if err := d.PushBack(42); err != nil {
		t.Fatalf("unexpected PushBack error after Clear: %v", err)
	}
	if v, _ := d.Front(); v != 42 {
		t.Fatalf("expected 42 after Clear and push, got %d", v)
	}
}

func TestPopAcrossBlockBoundaryReleasesBlocks(t *testing.T) {
	d, err := FromSlice(Config[int]{BlockCapacity: 4}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		t.Fatalf("unexpected FromSlice error: %v", err)
	}
	blocks := d.occupiedBlocks()
	for i := 9; i >= 5; i-- {
		v, ok := d.PopBack()
		if !ok || v != i {
			t.Fatalf("PopBack returned %d/%v, expected %d", v, ok, i)
		}
	}
	if d.occupiedBlocks() >= blocks {
		t.Fatalf("expected pops to release a block, still %d occupied", d.occupiedBlocks())
	}
	for i := range 5 {
		v, ok := d.PopFront()
		if !ok || v != i {
			t.Fatalf("PopFront returned %d/%v, expected %d", v, ok, i)
		}
	}
	if !d.IsEmpty() {
		t.Fatalf("deque should be empty, len=%d", d.Len())
	}
}

func TestAtRejectsOutOfRange(t *testing.T) {
	d, err := FromSlice(Config[int]{BlockCapacity: 4}, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected FromSlice error: %v", err)
	}
	if _, err := d.At(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := d.At(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds for negative index, got %v", err)
	}
	if err := d.Set(3, 9); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds from Set, got %v", err)
	}
}

func TestSetReplacesElement(t *testing.T) {
	d, err := FromSlice(Config[string]{BlockCapacity: 2}, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected FromSlice error: %v", err)
	}
	if err := d.Set(2, "z"); err != nil {
		t.Fatalf("unexpected Set error: %v", err)
	}
	if v, _ := d.At(2); v != "z" {
		t.Fatalf("expected z, got %q", v)
	}
}

func TestRepeatFillsAllSlots(t *testing.T) {
	d, err := Repeat(Config[string]{BlockCapacity: 3}, 7, "x")
	if err != nil {
		t.Fatalf("unexpected Repeat error: %v", err)
	}
	if d.Len() != 7 {
		t.Fatalf("expected len 7, got %d", d.Len())
	}
	for v := range d.All() {
		if v != "x" {
			t.Fatalf("expected fill value, got %q", v)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	d, err := FromSlice(Config[int]{BlockCapacity: 4}, []int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected FromSlice error: %v", err)
	}
	c, err := d.Clone()
	if err != nil {
		t.Fatalf("unexpected Clone error: %v", err)
	}
	if err := c.Set(0, 99); err != nil {
		t.Fatalf("unexpected Set error: %v", err)
	}
	if v, _ := d.At(0); v != 1 {
		t.Fatalf("mutating the clone changed the source, got %d", v)
	}
	if v, _ := c.At(0); v != 99 {
		t.Fatalf("clone not mutated, got %d", v)
	}
}

func TestAssignReplacesContents(t *testing.T) {
	d, err := FromSlice(Config[int]{BlockCapacity: 4}, []int{9, 9, 9})
	if err != nil {
		t.Fatalf("unexpected FromSlice error: %v", err)
	}
	src, err := FromSlice(Config[int]{BlockCapacity: 4}, []int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected FromSlice error: %v", err)
	}
	if err := d.Assign(src); err != nil {
		t.Fatalf("unexpected Assign error: %v", err)
	}
	if d.Len() != 6 {
		t.Fatalf("expected len 6, got %d", d.Len())
	}
	for i := range 6 {
		if v, _ := d.At(i); v != i+1 {
			t.Fatalf("element %d is %d", i, v)
		}
	}
}

func TestTakeMovesWithoutCopying(t *testing.T) {
	src, err := FromSlice(Config[int]{BlockCapacity: 4}, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected FromSlice error: %v", err)
	}
	srcMap := src.m
	var d Deque[int]
	d.Take(src)
	if d.m != srcMap {
		t.Fatalf("Take should transfer the map, not copy it")
	}
	if d.Len() != 3 {
		t.Fatalf("expected len 3 after Take, got %d", d.Len())
	}
	if src.Len() != 0 || src.m != nil {
		t.Fatalf("source should be reset to its zero state")
	}
	// the source must stay usable
	if err := src.PushBack(7); err != nil {
		t.Fatalf("unexpected PushBack error on moved-from deque: %v", err)
	}
	if v, _ := src.Front(); v != 7 {
		t.Fatalf("expected revived source front 7, got %d", v)
	}
}

func TestFromSeqPushesInOrder(t *testing.T) {
	seq := func(yield func(int) bool) {
		for i := range 9 {
			if !yield(i * 3) {
				return
			}
		}
	}
	d, err := FromSeq(Config[int]{BlockCapacity: 2}, seq)
	if err != nil {
		t.Fatalf("unexpected FromSeq error: %v", err)
	}
	if d.Len() != 9 {
		t.Fatalf("expected len 9, got %d", d.Len())
	}
	for i := range 9 {
		if v, _ := d.At(i); v != i*3 {
			t.Fatalf("element %d is %d", i, v)
		}
	}
}

func TestConstructionRollsBackOnAllocationFailure(t *testing.T) {
	q := storage.NewQuota(8) // two blocks of four; three are needed
	_, err := FromSlice(Config[int]{
		BlockCapacity: 4,
		Alloc:         storage.Limit[int](q),
	}, make([]int, 9))
	if !errors.Is(err, storage.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if q.Used() != 0 {
		t.Fatalf("failed construction leaked %d slots", q.Used())
	}
}

func TestPushLeavesDequeIntactOnAllocationFailure(t *testing.T) {
	q := storage.NewQuota(4) // exactly the initial block
	d, err := New(Config[int]{
		BlockCapacity: 4,
		Alloc:         storage.Limit[int](q),
	})
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	for i := range 3 {
		if err := d.PushBack(i); err != nil {
			t.Fatalf("unexpected PushBack error: %v", err)
		}
	}
	// The fourth push fills the block's last slot and needs a fresh block.
	err = d.PushBack(3)
	if !errors.Is(err, storage.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("failed push changed len to %d", d.Len())
	}
	for i := range 3 {
		if v, _ := d.At(i); v != i {
			t.Fatalf("element %d is %d after failed push", i, v)
		}
	}
	if v, ok := d.PopBack(); !ok || v != 2 {
		t.Fatalf("deque unusable after failed push: %d/%v", v, ok)
	}
}

func TestReleaseRefundsSharedQuota(t *testing.T) {
	q := storage.NewQuota(-1)
	d, err := FromSlice(Config[int]{
		BlockCapacity: 4,
		Alloc:         storage.Limit[int](q),
		MapAlloc:      storage.Limit[[]int](q),
	}, make([]int, 20))
	if err != nil {
		t.Fatalf("unexpected FromSlice error: %v", err)
	}
	if q.Used() == 0 {
		t.Fatalf("expected blocks and map to be charged")
	}
	d.Release()
	if q.Used() != 0 {
		t.Fatalf("Release leaked %d slots", q.Used())
	}
	// released deque revives lazily
	if err := d.PushBack(1); err != nil {
		t.Fatalf("unexpected PushBack error after Release: %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("expected len 1, got %d", d.Len())
	}
}
