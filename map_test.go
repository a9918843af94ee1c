package tinystl

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/zhanghaoxvan/tinystl/storage"
)

// occupy plants distinguishable dummy blocks into slots [first, last].
func occupy(m *blockMap[int], first, last int) {
	for i := first; i <= last; i++ {
		m.slots[i] = []int{i}
	}
}

// verifyRun checks that the handles planted by occupy now sit in order at
// newFirst and that no stale handle remains elsewhere.
func verifyRun(t *testing.T, m *blockMap[int], newFirst, count int) {
	t.Helper()
	for i, slot := range m.slots {
		inRun := i >= newFirst && i < newFirst+count
		if inRun && slot == nil {
			t.Fatalf("slot %d in the occupied run is nil", i)
		}
		if !inRun && slot != nil {
			t.Fatalf("slot %d outside the occupied run holds a stale handle", i)
		}
	}
	for i := range count {
		if m.slots[newFirst+i][0] != m.slots[newFirst][0]+i {
			t.Fatalf("handle order broken at run offset %d", i)
		}
	}
}

func TestReserveWithSpareSlotsIsANoop(t *testing.T) {
	alloc := storage.NewHeap[[]int]()
	m, err := newBlockMap[int](alloc, 8)
	if err != nil {
		t.Fatalf("unexpected newBlockMap error: %v", err)
	}
	occupy(m, 3, 4)
	if first, err := m.reserveAtBack(alloc, 1, 3, 4); err != nil || first != 3 {
		t.Fatalf("reserveAtBack moved handles: first=%d err=%v", first, err)
	}
	if first, err := m.reserveAtFront(alloc, 2, 3, 4); err != nil || first != 3 {
		t.Fatalf("reserveAtFront moved handles: first=%d err=%v", first, err)
	}
	if m.capacity() != 8 {
		t.Fatalf("capacity changed to %d", m.capacity())
	}
}

func TestReallocateRecentersInPlace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	alloc := storage.NewHeap[[]int]()
	m, err := newBlockMap[int](alloc, 20)
	if err != nil {
		t.Fatalf("unexpected newBlockMap error: %v", err)
	}
	// handles crowd the back end; plenty of capacity overall
	occupy(m, 16, 19)
	newFirst, err := m.reserveAtBack(alloc, 1, 16, 19)
	if err != nil {
		t.Fatalf("unexpected reserveAtBack error: %v", err)
	}
	if m.capacity() != 20 {
		t.Fatalf("recentering must not reallocate, capacity %d", m.capacity())
	}
	if newFirst+4 >= m.capacity()-1 {
		t.Fatalf("no spare slot at the back after recentering, first=%d", newFirst)
	}
	verifyRun(t, m, newFirst, 4)
}

func TestReallocateGrowsTheMap(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	alloc := storage.NewHeap[[]int]()
	m, err := newBlockMap[int](alloc, 8)
	if err != nil {
		t.Fatalf("unexpected newBlockMap error: %v", err)
	}
	occupy(m, 3, 7)
	newFirst, err := m.reserveAtBack(alloc, 1, 3, 7)
	if err != nil {
		t.Fatalf("unexpected reserveAtBack error: %v", err)
	}
	if m.capacity() != 18 { // 8 + max(8, 1) + 2
		t.Fatalf("expected capacity 18, got %d", m.capacity())
	}
	verifyRun(t, m, newFirst, 5)
	if newFirst < 1 || newFirst+5 > m.capacity()-1 {
		t.Fatalf("spare slots not split across both ends, first=%d", newFirst)
	}
}

func TestReallocateAtFrontLeavesRoomAtFront(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	alloc := storage.NewHeap[[]int]()
	m, err := newBlockMap[int](alloc, 8)
	if err != nil {
		t.Fatalf("unexpected newBlockMap error: %v", err)
	}
	occupy(m, 0, 4)
	newFirst, err := m.reserveAtFront(alloc, 2, 0, 4)
	if err != nil {
		t.Fatalf("unexpected reserveAtFront error: %v", err)
	}
	if newFirst < 2 {
		t.Fatalf("reserveAtFront left only %d spare front slots", newFirst)
	}
	verifyRun(t, m, newFirst, 5)
}

func TestReallocateFailureLeavesMapIntact(t *testing.T) {
	q := storage.NewQuota(8)
	alloc := storage.Limit[[]int](q)
	m, err := newBlockMap[int](alloc, 8)
	if err != nil {
		t.Fatalf("unexpected newBlockMap error: %v", err)
	}
	occupy(m, 3, 7)
	newFirst, err := m.reserveAtBack(alloc, 1, 3, 7)
	if !errors.Is(err, storage.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if newFirst != 3 {
		t.Fatalf("failed reallocation reported a shifted first: %d", newFirst)
	}
	if m.capacity() != 8 {
		t.Fatalf("failed reallocation changed capacity to %d", m.capacity())
	}
	verifyRun(t, m, 3, 5)
	if q.Used() != 8 {
		t.Fatalf("failed reallocation changed the quota to %d", q.Used())
	}
}
