package bipartite

import "github.com/katalvlaran/bimatch/heap"

// NullNode is the sentinel used in Matching and Pred vectors to mean
// "no vertex" — unmatched, or no predecessor.
const NullNode = -1

// Side identifies which half of the bipartition a vertex belongs to.
type Side int

const (
	// S is the left side, vertex ids [0, n).
	S Side = iota
	// T is the right side, vertex ids [n, 2n).
	T
)

// String renders Side for diagnostics.
func (p Side) String() string {
	if p == S {
		return "S"
	}

	return "T"
}

// Instance owns the weight matrix, potentials, matching, and the vertex
// handles a matching.Solver drives an IndexedKHeap over. It is created
// once per problem and mutated only by the solver driving it.
type Instance struct {
	n int // size of each side; vertex ids run 0..2n-1

	// weights is the flat row-major store for T-indexed rows: entry for
	// (i in S, j in T) lives at weights[(j-n)*n+i], mirroring matrix.Dense's
	// flat layout and bounds-checked accessor style.
	weights []int64

	matching []int    // length 2n, NullNode if unmatched
	pi       []int64  // length 2n, vertex potentials

	// handles are the persistent vertex records the solver resets and
	// reuses to build a fresh IndexedKHeap every phase; Instance owns
	// their lifetime, the heap only borrows them during a phase.
	handles []*heap.Handle[int64]
}

// N returns the size of each side of the bipartition (so vertex ids run
// 0..2*N()-1).
func (inst *Instance) N() int { return inst.n }
