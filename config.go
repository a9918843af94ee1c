package tinystl

import (
	"fmt"

	"github.com/zhanghaoxvan/tinystl/storage"
)

const (
	// DefaultBlockCapacity is the number of element slots per storage block.
	DefaultBlockCapacity = 512
	// initialMapCapacity is the minimum number of handle slots in the map.
	initialMapCapacity = 8
)

// Config configures a Deque.
//
// The zero value selects the defaults: DefaultBlockCapacity slots per block
// and unbounded heap allocation for both blocks and the map.
type Config[T any] struct {
	// BlockCapacity is the slot count of one storage block.
	BlockCapacity int
	// Alloc hands out element storage, one block at a time.
	Alloc storage.Allocator[T]
	// MapAlloc hands out the map's block-handle storage.
	MapAlloc storage.Allocator[[]T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.BlockCapacity == 0 {
		cfg.BlockCapacity = DefaultBlockCapacity
	}
	if cfg.Alloc == nil {
		cfg.Alloc = storage.NewHeap[T]()
	}
	if cfg.MapAlloc == nil {
		cfg.MapAlloc = storage.NewHeap[[]T]()
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.BlockCapacity < 0 {
		return fmt.Errorf("%w: negative block capacity %d", ErrInvalidConfig, cfg.BlockCapacity)
	}
	return nil
}
