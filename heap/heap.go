package heap

import "golang.org/x/exp/constraints"

// New creates an empty IndexedKHeap of arity k (k >= 2).
// Complexity: O(1).
func New[K constraints.Ordered](k int) (*IndexedKHeap[K], error) {
	if k < 2 {
		return nil, ErrBadArity
	}

	return &IndexedKHeap[K]{k: k, storage: make([]*Handle[K], 0)}, nil
}

// Len returns the number of elements currently in the heap.
// Complexity: O(1).
func (h *IndexedKHeap[K]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no elements.
// Complexity: O(1).
func (h *IndexedKHeap[K]) IsEmpty() bool { return h.size == 0 }

// parentOf returns the 1-based position of the parent of p, or 0 if p is
// the root. For p mod k in {0,1} the parent is floor(p/k); otherwise it is
// floor((p + (k - p mod k)) / k). This is the same rule the AHU bottom-up
// build uses to locate the last non-leaf from n.
func (h *IndexedKHeap[K]) parentOf(p int) int {
	mod := p % h.k
	if mod <= 1 {
		return p / h.k
	}

	return (p + (h.k - mod)) / h.k
}

// foundingChild returns the 1-based position of p's founding child — the
// leftmost child in the contiguous storage layout. The remaining k-1
// children occupy the following positions.
func (h *IndexedKHeap[K]) foundingChild(p int) int {
	return p*h.k - (h.k - 2)
}

// at returns the handle at 1-based position p.
func (h *IndexedKHeap[K]) at(p int) *Handle[K] { return h.storage[p-1] }

// setAt places handle e at 1-based position p and updates e.Position.
func (h *IndexedKHeap[K]) setAt(p int, e *Handle[K]) {
	h.storage[p-1] = e
	e.Position = p
}

// swap exchanges the handles at positions a and b, updating both
// handles' Position fields so the bijective back-index holds.
func (h *IndexedKHeap[K]) swap(a, b int) {
	ea, eb := h.at(a), h.at(b)
	h.storage[a-1], h.storage[b-1] = eb, ea
	ea.Position = b
	eb.Position = a
}

// Build bulk-heapifies elems in O(n), assigning each handle its Position.
// Any prior contents of the heap are discarded.
func (h *IndexedKHeap[K]) Build(elems []*Handle[K]) {
	h.storage = make([]*Handle[K], len(elems))
	h.size = len(elems)
	for i, e := range elems {
		h.storage[i] = e
		e.Position = i + 1
	}

	firstNonLeaf := h.parentOf(h.size)
	for p := firstNonLeaf; p >= 1; p-- {
		h.siftDown(p)
	}
}

// Insert appends e at the next free slot and sifts it up.
// Complexity: O(log_k n).
func (h *IndexedKHeap[K]) Insert(e *Handle[K]) {
	h.storage = append(h.storage, nil)
	h.size++
	h.setAt(h.size, e)
	h.siftUp(h.size)
}

// PeekMin returns the minimum-key handle without removing it.
// Complexity: O(1).
func (h *IndexedKHeap[K]) PeekMin() (*Handle[K], error) {
	if h.size == 0 {
		return nil, ErrHeapEmpty
	}

	return h.at(1), nil
}

// PopMin removes and returns the minimum-key handle, restoring heap order.
// The popped handle's Position is reset to 0.
// Complexity: O(log_k n).
func (h *IndexedKHeap[K]) PopMin() (*Handle[K], error) {
	if h.size == 0 {
		return nil, ErrHeapEmpty
	}

	min := h.at(1)
	last := h.at(h.size)
	h.storage = h.storage[:h.size-1]
	h.size--
	min.Position = 0

	if h.size > 0 {
		h.setAt(1, last)
		h.siftDown(1)
	}

	return min, nil
}

// Update notifies the heap that e.Key has changed; e must currently be a
// live member of the heap (e.Position in [1, Len()]). It relocates e by
// sifting up then down from its current slot, which handles both
// decrease-key and increase-key uniformly.
// Complexity: O(log_k n).
func (h *IndexedKHeap[K]) Update(e *Handle[K]) error {
	if e.Position < 1 || e.Position > h.size {
		return ErrInvalidPosition
	}

	h.siftUp(e.Position)
	h.siftDown(e.Position)

	return nil
}

// siftUp moves the handle at position p toward the root while it is
// smaller than its parent.
func (h *IndexedKHeap[K]) siftUp(p int) {
	for p > 1 {
		parent := h.parentOf(p)
		if parent < 1 || !(h.at(p).Key < h.at(parent).Key) {
			break
		}
		h.swap(p, parent)
		p = parent
	}
}

// siftDown moves the handle at position p toward the leaves while some
// child holds a smaller key.
func (h *IndexedKHeap[K]) siftDown(p int) {
	for {
		smallest := h.smallestChild(p)
		if smallest == 0 {
			break
		}
		h.swap(p, smallest)
		p = smallest
	}
}

// smallestChild returns the 1-based position of p's smallest child, or 0
// if p is a leaf or none of its children beats p's own key.
func (h *IndexedKHeap[K]) smallestChild(p int) int {
	first := h.foundingChild(p)
	best := 0
	for c := first; c < first+h.k && c <= h.size; c++ {
		if best == 0 || h.at(c).Key < h.at(best).Key {
			best = c
		}
	}
	if best != 0 && !(h.at(best).Key < h.at(p).Key) {
		return 0
	}

	return best
}
