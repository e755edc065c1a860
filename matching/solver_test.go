package matching_test

import (
	"testing"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/matching"
	"github.com/stretchr/testify/require"
)

func mustSolver(t *testing.T, w [][]int64, opts ...matching.Option) (*bipartite.Instance, *matching.Solver) {
	t.Helper()
	inst, err := bipartite.NewFromWeights(w)
	require.NoError(t, err)
	sv, err := matching.NewSolver(inst, opts...)
	require.NoError(t, err)

	return inst, sv
}

// weightOf sums Raw weight over every matched S-vertex's edge, using the
// sign the instance currently stores (matched edges are stored with their
// sign flipped, so we negate the value back to the original sign).
func weightOf(t *testing.T, inst *bipartite.Instance, m []int, n int) int64 {
	t.Helper()
	var total int64
	for i := 0; i < n; i++ {
		if m[i] == bipartite.NullNode {
			continue
		}
		raw, err := inst.Raw(i, m[i])
		require.NoError(t, err)
		// A matched edge's sign was flipped an odd number of times (once);
		// recover the original weight by negating it back.
		total += -raw
	}

	return total
}

// TestScenarioA_2x2Tie matches spec.md Scenario A: either perfect
// pairing sums to 5; the solver must return one of them.
func TestScenarioA_2x2Tie(t *testing.T) {
	w := [][]int64{{1, 2}, {3, 4}}
	inst, sv := mustSolver(t, w)

	m, err := sv.MaximumMatching()
	require.NoError(t, err)
	require.Equal(t, int64(5), weightOf(t, inst, m, 2))
}

// TestScenarioB_NegativeEntry matches spec.md Scenario B: the 3x3 matrix
// with one negative entry has a unique optimum of weight 10 (0↔5, 1↔3,
// 2↔4: 3+2+5), reached by both matching modes.
func TestScenarioB_NegativeEntry(t *testing.T) {
	w := [][]int64{
		{4, 1, 3},
		{2, 0, -1},
		{3, 5, 2},
	}

	inst, sv := mustSolver(t, w)
	m, err := sv.MaximumMatching()
	require.NoError(t, err)
	require.Equal(t, int64(10), weightOf(t, inst, m, 3))

	inst2, sv2 := mustSolver(t, w)
	mp, err := sv2.MaximumPerfectMatching()
	require.NoError(t, err)
	require.Equal(t, int64(10), weightOf(t, inst2, mp, 3))
}

// TestScenarioC_IdentityOptimum matches spec.md Scenario C: a diagonal-
// dominant matrix pairs i with n+i for every i, total 30.
func TestScenarioC_IdentityOptimum(t *testing.T) {
	n := 3
	w := make([][]int64, n)
	for i := 0; i < n; i++ {
		w[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			if i == j {
				w[i][j] = 10
			}
		}
	}

	inst, sv := mustSolver(t, w)
	m, err := sv.MaximumMatching()
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		require.Equal(t, n+i, m[i])
	}
	require.Equal(t, int64(30), weightOf(t, inst, m, n))
}

// TestScenarioF_AllNegative matches spec.md Scenario F: under
// MaximumMatching every augmentation has negative net score, so the
// empty matching is optimal; under MaximumPerfectMatching the solver
// must still produce a full pairing with total -5.
func TestScenarioF_AllNegative(t *testing.T) {
	w := [][]int64{{-1, -2}, {-3, -4}}

	inst, sv := mustSolver(t, w)
	m, err := sv.MaximumMatching()
	require.NoError(t, err)
	for _, v := range m {
		require.Equal(t, bipartite.NullNode, v)
	}

	inst2, sv2 := mustSolver(t, w)
	mp, err := sv2.MaximumPerfectMatching()
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		require.NotEqual(t, bipartite.NullNode, mp[i])
	}
	require.Equal(t, int64(-5), weightOf(t, inst2, mp, 2))
}

// TestBoundaryNSizeOne matches spec.md's n=1 boundary: the matching must
// pair 0 with 1 and the weight equals W[0][0].
func TestBoundaryNSizeOne(t *testing.T) {
	_, sv := mustSolver(t, [][]int64{{7}})
	m, err := sv.MaximumMatching()
	require.NoError(t, err)
	require.Equal(t, 1, m[0])
	require.Equal(t, 0, m[1])
}

// TestAllWeightsEqual matches spec.md's "all weights equal" boundary:
// any perfect matching is optimal, and the solver must return a complete
// pairing.
func TestAllWeightsEqual(t *testing.T) {
	n := 4
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
		for j := range w[i] {
			w[i][j] = 3
		}
	}

	inst, sv := mustSolver(t, w)
	m, err := sv.MaximumMatching()
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NotEqual(t, bipartite.NullNode, m[i])
	}
	require.Equal(t, int64(3*n), weightOf(t, inst, m, n))
}

// TestInvariantMatchingSymmetric checks invariants 1 and 2 of spec.md §8
// directly on the returned matching vector.
func TestInvariantMatchingSymmetric(t *testing.T) {
	w := [][]int64{
		{4, 1, 3},
		{2, 0, -1},
		{3, 5, 2},
	}
	inst, sv := mustSolver(t, w)
	m, err := sv.MaximumMatching()
	require.NoError(t, err)

	n := 3
	for v := 0; v < 2*n; v++ {
		if m[v] == bipartite.NullNode {
			continue
		}
		require.Equal(t, v, m[m[v]])
		pv, err := inst.Partition(v)
		require.NoError(t, err)
		pm, err := inst.Partition(m[v])
		require.NoError(t, err)
		require.NotEqual(t, pv, pm)
	}
}

// TestIdempotenceOnOptimum checks the idempotence-on-optimum law: running
// MaximumMatching again on an already-optimal instance returns the same
// matching. The number of phases run is not observed here.
func TestIdempotenceOnOptimum(t *testing.T) {
	w := [][]int64{
		{4, 1, 3},
		{2, 0, -1},
		{3, 5, 2},
	}
	inst, sv := mustSolver(t, w)
	m1, err := sv.MaximumMatching()
	require.NoError(t, err)

	sv2, err := matching.NewSolver(inst)
	require.NoError(t, err)
	m2, err := sv2.MaximumMatching()
	require.NoError(t, err)

	require.Equal(t, m1, m2)
}

// TestBadArityRejected ensures NewSolver validates the heap arity option
// rather than constructing a broken Solver.
func TestBadArityRejected(t *testing.T) {
	inst, err := bipartite.NewFromWeights([][]int64{{1}})
	require.NoError(t, err)

	_, err = matching.NewSolver(inst, matching.WithArity(1))
	require.ErrorIs(t, err, matching.ErrBadArity)
}

// TestDominantRowAndColumn matches spec.md's boundary: a strictly
// dominant row/column pairing must appear in the optimum.
func TestDominantRowAndColumn(t *testing.T) {
	w := [][]int64{
		{100, 1, 1},
		{1, 2, 3},
		{1, 3, 2},
	}
	inst, sv := mustSolver(t, w)
	m, err := sv.MaximumMatching()
	require.NoError(t, err)
	require.Equal(t, 3, m[0]) // S-vertex 0 pairs with T-vertex n+0=3
	_ = inst
}
