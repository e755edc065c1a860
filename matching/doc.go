// Package matching implements successive shortest augmenting paths for
// maximum-weight bipartite matching on a complete bipartite graph.
//
// Each phase runs one Dijkstra sweep over reduced costs (built fresh on a
// heap.IndexedKHeap every phase), finds the nearest free vertex on the
// right-hand side, and — depending on the stopping policy — applies the
// augmenting path found, toggling matching membership and vertex
// potentials in place on the owning bipartite.Instance. MaximumMatching
// and MaximumPerfectMatching differ only in their stopping policy and
// share one phase routine, per the design note that the two variants are
// "the same algorithm parameterized by a stopping policy".
//
// Complexity: O(n) phases, each O(n² log_k n) for the sweep over a
// complete bipartite graph with arity-k heap.
package matching
