// Package bimatch computes maximum-weight matchings on complete
// bipartite graphs with integer edge weights, using successive shortest
// augmenting paths under Johnson-style vertex-potential reweighting.
//
// The module is organized under five subpackages:
//
//	heap/      — generic indexed k-ary min-heap with O(log_k n) decrease-key
//	bipartite/ — the weighted instance: matrix storage, partitions, potentials
//	matching/  — the solver: successive shortest augmenting paths
//	sssp/      — an out-of-core demo reusing the heap on a general graph
//	present/   — plain-text pretty-printing for debugging and the CLI
//
// Typical use:
//
//	inst, err := bipartite.NewFromWeights(w)
//	sv, err := matching.NewSolver(inst)
//	m, err := sv.MaximumMatching()
//
// See cmd/bimatch for a runnable driver.
package bimatch
