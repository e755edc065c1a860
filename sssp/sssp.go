package sssp

import (
	"math"

	"github.com/katalvlaran/bimatch/heap"
)

// ShortestPaths computes single-source shortest distances and a
// predecessor vector from source over g, using an arity-k
// heap.IndexedKHeap with true decrease-key in place of the
// lazy-decrease-key scheme dijkstra.Dijkstra uses against
// container/heap. Vertex ids are 1-based, matching the DIMACS-like
// input; dist and pred are sized g.Nodes()+1 with index 0 unused.
//
// dist[v] is math.MaxInt64 for any vertex unreachable from source.
// pred[v] is 0 for source and for any unreachable vertex.
func ShortestPaths(g *Graph, source int, k int) (dist []int64, pred []int, err error) {
	if source < 1 || source > g.Nodes() {
		return nil, nil, ErrEmptySource
	}

	n := g.Nodes()
	dist = make([]int64, n+1)
	pred = make([]int, n+1)
	settled := make([]bool, n+1)
	handles := make([]*heap.Handle[int64], n+1)
	for v := 1; v <= n; v++ {
		dist[v] = math.MaxInt64
		handles[v] = &heap.Handle[int64]{Key: math.MaxInt64, Payload: v}
	}

	h, herr := heap.New[int64](k)
	if herr != nil {
		return nil, nil, herr
	}

	dist[source] = 0
	handles[source].Key = 0
	h.Build([]*heap.Handle[int64]{handles[source]})
	for v := 1; v <= n; v++ {
		if v != source {
			h.Insert(handles[v])
		}
	}

	for !h.IsEmpty() {
		cur, perr := h.PopMin()
		if perr != nil {
			return nil, nil, perr
		}
		u := cur.Payload
		if settled[u] {
			continue
		}
		settled[u] = true
		if dist[u] == math.MaxInt64 {
			continue
		}

		for _, arc := range g.adj[u] {
			if settled[arc.To] {
				continue
			}
			candidate := dist[u] + arc.Weight
			if candidate < dist[arc.To] {
				dist[arc.To] = candidate
				pred[arc.To] = u
				handles[arc.To].Key = candidate
				if err := h.Update(handles[arc.To]); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return dist, pred, nil
}
