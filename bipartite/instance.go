package bipartite

import (
	"fmt"

	"github.com/katalvlaran/bimatch/heap"
)

// instanceErrorf wraps an underlying error with method context, following
// the same "Type.Method(args): sentinel" shape matrix.Dense uses.
func instanceErrorf(method string, u, v int, err error) error {
	return fmt.Errorf("Instance.%s(%d,%d): %w", method, u, v, err)
}

// NewFromWeights builds an Instance from an n×n weight matrix, one row
// per S-vertex. Initializes potentials so that every initial reduced cost
// under the search-cost (negated-weight) convention is non-negative:
// π(i)=0 for i in S, π(j)=-max_w for j in T.
// Complexity: O(n²).
func NewFromWeights(w [][]int64) (*Instance, error) {
	n := len(w)
	if n <= 0 {
		return nil, ErrBadSize
	}
	for _, row := range w {
		if len(row) != n {
			return nil, ErrInputSize
		}
	}

	flat := make([]int64, n*n)
	var maxW int64 = minInt64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			val := w[i][j]
			flat[j*n+i] = val
			if val > maxW {
				maxW = val
			}
		}
	}

	inst := newInstance(n, flat, maxW)

	return inst, nil
}

// newInstance allocates matching/potential/handle vectors for a 2n-vertex
// instance and initializes potentials from maxW as NewFromWeights does.
func newInstance(n int, flat []int64, maxW int64) *Instance {
	inst := &Instance{
		n:        n,
		weights:  flat,
		matching: make([]int, 2*n),
		pi:       make([]int64, 2*n),
		handles:  make([]*heap.Handle[int64], 2*n),
	}
	for v := 0; v < 2*n; v++ {
		inst.matching[v] = NullNode
		inst.handles[v] = &heap.Handle[int64]{Payload: v}
		if inst.partitionOf(v) == T {
			inst.pi[v] = -maxW
		}
	}

	return inst
}

const minInt64 = -1 << 63

// Valid reports whether v is a vertex id in [0, 2n).
func (inst *Instance) Valid(v int) bool { return v >= 0 && v < 2*inst.n }

// Partition returns S or T for vertex v, or ErrVertexRange if v is out of
// bounds.
func (inst *Instance) Partition(v int) (Side, error) {
	if !inst.Valid(v) {
		return S, ErrVertexRange
	}

	return inst.partitionOf(v), nil
}

// partitionOf assumes v is already validated.
func (inst *Instance) partitionOf(v int) Side {
	if v < inst.n {
		return S
	}

	return T
}

// canonical orders (u, v) into (s in S, t in T), swapping if necessary,
// and validates both that each endpoint is in range and that they
// straddle the partition.
func (inst *Instance) canonical(u, v int) (s, t int, err error) {
	if !inst.Valid(u) || !inst.Valid(v) {
		return 0, 0, ErrVertexRange
	}
	pu, pv := inst.partitionOf(u), inst.partitionOf(v)
	if pu == pv {
		return 0, 0, ErrSamePartition
	}
	if pu == T {
		u, v = v, u
	}

	return u, v, nil
}

// index computes the flat offset for the validated pair (s in S, t in T).
func (inst *Instance) index(s, t int) int {
	return (t-inst.n)*inst.n + s
}

// Raw returns the current stored signed weight of edge (u, v). Its sign
// encodes matching membership: while the edge is in the matching it is
// stored with the opposite sign of its original weight (see SetRaw).
func (inst *Instance) Raw(u, v int) (int64, error) {
	s, t, err := inst.canonical(u, v)
	if err != nil {
		return 0, instanceErrorf("Raw", u, v, err)
	}

	return inst.weights[inst.index(s, t)], nil
}

// SetRaw overwrites the stored weight of edge (u, v). The solver calls
// this with the negated current value to toggle an edge's matching
// membership in place, so the weight matrix alone — no separate
// reverse-edge list — records residual-graph direction.
func (inst *Instance) SetRaw(u, v int, w int64) error {
	s, t, err := inst.canonical(u, v)
	if err != nil {
		return instanceErrorf("SetRaw", u, v, err)
	}
	inst.weights[inst.index(s, t)] = w

	return nil
}

// SearchCost returns -Raw(u, v): the cost the shortest-path sweep
// minimizes so that maximizing the original weight along an augmenting
// path is minimizing the sum of SearchCost.
func (inst *Instance) SearchCost(u, v int) (int64, error) {
	raw, err := inst.Raw(u, v)
	if err != nil {
		return 0, err
	}

	return -raw, nil
}

// Reduced returns the Johnson-reweighted cost SearchCost(u,v) - (π(v) -
// π(u)). A valid potential assignment keeps this non-negative for every
// edge the sweep considers.
func (inst *Instance) Reduced(u, v int) (int64, error) {
	cost, err := inst.SearchCost(u, v)
	if err != nil {
		return 0, err
	}

	return cost - (inst.pi[v] - inst.pi[u]), nil
}

// Matched returns M[v], or NullNode if v is free.
func (inst *Instance) Matched(v int) int { return inst.matching[v] }

// SetMatched sets M[v] = u.
func (inst *Instance) SetMatched(v, u int) { inst.matching[v] = u }

// Matching returns a copy of the current matching vector (length 2n).
func (inst *Instance) Matching() []int {
	out := make([]int, len(inst.matching))
	copy(out, inst.matching)

	return out
}

// Potential returns π(v).
func (inst *Instance) Potential(v int) int64 { return inst.pi[v] }

// SetPotential sets π(v).
func (inst *Instance) SetPotential(v int, val int64) { inst.pi[v] = val }

// Handle returns the persistent heap handle Instance owns for vertex v.
// matching.Solver resets Key/Position on these each phase rather than
// allocating fresh handles, per the "vertex records live with the
// instance, heap borrows them" ownership model.
func (inst *Instance) Handle(v int) *heap.Handle[int64] { return inst.handles[v] }

// String renders the current stored weight matrix (matched edges with
// their flipped sign) for debugging, following matrix.Dense.String()'s
// informal row-dump convention. The matching itself is not rendered. No
// layout stability is guaranteed.
func (inst *Instance) String() string {
	out := ""
	for i := 0; i < inst.n; i++ {
		out += "["
		for j := 0; j < inst.n; j++ {
			w, _ := inst.Raw(i, inst.n+j)
			if j > 0 {
				out += ", "
			}
			out += fmt.Sprintf("%d", w)
		}
		out += "]\n"
	}

	return out
}
