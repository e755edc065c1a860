package heap

import "golang.org/x/exp/constraints"

// Handle is a mutable heap element: a tentative key and a back-pointer to
// the handle's own current slot. Payload is an opaque, caller-owned id
// (typically a vertex id) that the heap never interprets — it only moves
// the handle around and keeps Position in sync.
//
// Ownership: the heap borrows handles for the duration it holds them;
// Position is 0 exactly when the handle is not currently stored in any
// heap. Callers must not mutate Position directly.
type Handle[K constraints.Ordered] struct {
	Key      K   // tentative key (e.g. shortest-path distance); mutate then call Update
	Position int // 1-based slot in the heap's storage, or 0 if not in the heap
	Payload  int // caller-owned id carried alongside the handle, untouched by the heap
}

// IndexedKHeap is a k-ary min-heap of *Handle[K], arity k >= 2, with O(1)
// storage overhead per element (no duplicate entries, no lazy deletion).
//
// Invariants (see package doc and spec tests):
//   - for every non-root live slot p: Key(parent(p)) <= Key(p)
//   - for every live slot p: storage[p].Position == p
type IndexedKHeap[K constraints.Ordered] struct {
	k       int
	storage []*Handle[K] // 0-indexed slice; logical slot p lives at storage[p-1]
	size    int
}
