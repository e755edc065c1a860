// Package heap provides a generic, back-indexed k-ary min-heap.
//
// IndexedKHeap stores element handles contiguously and keeps each handle's
// current slot mirrored in the handle itself (its Position field), so a
// caller holding a *Handle[K] can call Update after mutating Key and get a
// true O(log_k n) decrease-key (or increase-key) instead of the
// lazy "push a duplicate, skip stale pops" trick used when the standard
// library's container/heap interface is the only tool available (compare
// the lazy approach in this module's sibling sssp package's predecessor,
// formerly dijkstra.go).
//
// Position arithmetic uses 1-based slots internally (root at 1) to keep
// parent/child arithmetic uniform across arities; Build, Insert, PeekMin,
// PopMin and Update are the only five operations callers need.
//
// Complexity:
//
//   - Build:   O(n)            (Floyd/AHU bottom-up heapify)
//   - Insert:  O(log_k n)
//   - PeekMin: O(1)
//   - PopMin:  O(log_k n)
//   - Update:  O(log_k n)
package heap
