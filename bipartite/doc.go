// Package bipartite owns the dense edge-weight matrix, vertex potentials,
// and current matching of a complete bipartite graph, and exposes the
// read/write primitives matching's successive-shortest-augmenting-path
// solver needs: weight access with the sign-flip residual-graph encoding,
// reduced-cost computation under Johnson potentials, and partition
// queries.
//
// Vertices are integers 0..2n-1: S = [0, n) on the left, T = [n, 2n) on
// the right. The weight matrix is the only edge store — matching
// membership is recorded by negating a matched edge's stored weight in
// place, so a single flat array serves both the forward and residual
// traversal directions (see Instance.SetRaw).
package bipartite
