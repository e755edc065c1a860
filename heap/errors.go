package heap

import "errors"

// Sentinel errors returned by IndexedKHeap. No operation panics on a
// caller-triggered condition; every failure mode below is one of these.
var (
	// ErrHeapEmpty is returned by PeekMin/PopMin when the heap holds no elements.
	ErrHeapEmpty = errors.New("heap: heap is empty")

	// ErrInvalidPosition is returned by Update when the handle's Position
	// field does not refer to a live slot (0, or outside [1, size]).
	ErrInvalidPosition = errors.New("heap: invalid position")

	// ErrBadArity is returned by New when k < 2.
	ErrBadArity = errors.New("heap: arity must be >= 2")
)
