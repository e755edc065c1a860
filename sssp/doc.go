// Package sssp computes single-source shortest paths on a general
// directed weighted graph read from a DIMACS-like edge list, reusing
// heap.IndexedKHeap with a true decrease-key instead of the
// lazy-decrease-key "push a duplicate, skip it later" strategy the
// dijkstra package uses against container/heap.
//
// This package shares no code with bipartite or matching: it exists to
// exercise the heap's Update path on a general (non-bipartite) graph,
// the kind of instance the matching engine's Non-goals explicitly
// exclude.
//
// Complexity: O((V + E) log_k V) for arity k.
package sssp
