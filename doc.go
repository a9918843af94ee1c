/*
Package tinystl provides generic in-memory container types, built around a
segmented double-ended queue.

Deque

A Deque stores its elements in fixed-capacity storage blocks. Blocks are
addressed through an indirection table, called the map: an ordered sequence
of block handles with spare capacity at both ends. Pushing at either end
fills the boundary block and occasionally claims one fresh block; only when
the map itself runs out of spare handle slots is the map recentered or
reallocated. Elements never move once constructed, which gives the deque its
characteristic cost profile:

	Operation       |   Deque         |  Slice
	----------------+-----------------+--------
	Index           |   O(1)          |   O(1)
	PushBack        |   O(1) amort.   |   O(1) amort.
	PushFront       |   O(1) amort.   |   O(n)
	PopFront        |   O(1)          |   O(n)

Iterators address one element as a map-slot index plus an in-block offset
and cross block boundaries with plain integer arithmetic, so random access
and distance computations stay O(1) even though the underlying storage is
disjoint.

All element storage is requested from a storage.Allocator, never allocated
directly. Allocation failure is surfaced as an error and every multi-step
operation rolls back to its prior state, releasing partially acquired
blocks before returning.

The zero value of Deque is an empty deque with default configuration.

Companion packages vector, list and array provide the remaining container
types of the module; package storage defines the allocation capability they
all consume.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024–25, Zhang Haoxvan

Please refer to the License file in the repository root.
*/
package tinystl

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer. Not named T: inside the generic
// container methods that identifier is the type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
