package matching

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/heap"
)

// Solver orchestrates successive shortest augmenting paths over a
// bipartite.Instance. A Solver call runs to completion and mutates the
// owning Instance exclusively; it is not safe to drive the same Instance
// from two Solvers concurrently.
type Solver struct {
	inst *bipartite.Instance
	opts Options
}

// NewSolver builds a Solver over inst, applying opts on top of sensible
// defaults (background context, no-op logger, arity 4).
func NewSolver(inst *bipartite.Instance, opts ...Option) (*Solver, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Arity < 2 {
		return nil, ErrBadArity
	}

	return &Solver{inst: inst, opts: cfg}, nil
}

// MaximumMatching returns a maximum-weight matching (not necessarily
// perfect): phases repeat while an augmenting path exists and applying it
// would not make net_score negative.
func (s *Solver) MaximumMatching() ([]int, error) {
	return s.run(true)
}

// MaximumPerfectMatching returns a maximum-weight perfect matching:
// phases repeat until no augmenting path exists, applying every path
// found regardless of its net score (feasible whenever both sides have
// size n, which holds for any Instance built over a complete bipartite
// graph).
func (s *Solver) MaximumPerfectMatching() ([]int, error) {
	return s.run(false)
}

// run is the shared driver both public entry points reduce to: the two
// variants differ only in their stopping policy (weightMode gates the
// net_score < 0 early stop).
func (s *Solver) run(weightMode bool) ([]int, error) {
	phaseIdx := 0
	for {
		if err := s.checkCanceled(); err != nil {
			return nil, err
		}

		done, err := s.phase(weightMode, phaseIdx)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		phaseIdx++
	}

	return s.inst.Matching(), nil
}

func (s *Solver) checkCanceled() error {
	if s.opts.Ctx == nil {
		return nil
	}
	if err := s.opts.Ctx.Err(); err != nil {
		return ErrCanceled
	}

	return nil
}

// phase runs one outer iteration of §4.3.1: a Dijkstra sweep on reduced
// costs, then — per the stopping policy — applies the augmenting path
// found and updates potentials, or stops. Returns done=true when the
// caller should stop iterating.
func (s *Solver) phase(weightMode bool, phaseIdx int) (done bool, err error) {
	n := s.inst.N()
	dist, pred, settled, freeT, err := s.sweep(n)
	if err != nil {
		return false, err
	}

	if freeT == bipartite.NullNode {
		s.opts.Logger.Debug("matching: no augmenting path", zap.Int("phase", phaseIdx))

		return true, nil
	}

	netScore, err := s.netScore(freeT, pred)
	if err != nil {
		return false, err
	}

	if weightMode && netScore < 0 {
		s.opts.Logger.Debug("matching: stopping on non-improving path",
			zap.Int("phase", phaseIdx), zap.Int64("net_score", netScore))

		return true, nil
	}

	if err := s.applyPath(freeT, pred); err != nil {
		return false, err
	}
	s.updatePotentials(dist, settled, n)

	s.opts.Logger.Debug("matching: applied augmenting path",
		zap.Int("phase", phaseIdx), zap.Int("sink", freeT), zap.Int64("net_score", netScore))

	return false, nil
}

// sweep runs the Dijkstra search of §4.3.1 steps 1-4 on reduced costs,
// returning the distance/predecessor arrays, a settled marker per
// vertex, and the settled free T-vertex with smallest distance (or
// bipartite.NullNode if none was reached).
func (s *Solver) sweep(n int) (dist []int64, pred []int, settled []bool, freeT int, err error) {
	total := 2 * n
	dist = make([]int64, total)
	pred = make([]int, total)
	settled = make([]bool, total)

	for v := 0; v < total; v++ {
		pred[v] = bipartite.NullNode
		dist[v] = math.MaxInt64
		h := s.inst.Handle(v)
		h.Position = 0
		h.Key = math.MaxInt64
	}

	h, herr := heap.New[int64](s.opts.Arity)
	if herr != nil {
		return nil, nil, nil, 0, herr
	}

	var initial []*heap.Handle[int64]
	for i := 0; i < n; i++ {
		if s.inst.Matched(i) == bipartite.NullNode {
			dist[i] = 0
			hdl := s.inst.Handle(i)
			hdl.Key = 0
			initial = append(initial, hdl)
		}
	}
	h.Build(initial)

	freeT = bipartite.NullNode
	for !h.IsEmpty() {
		cur, perr := h.PopMin()
		if perr != nil {
			return nil, nil, nil, 0, perr
		}
		u := cur.Payload
		if settled[u] {
			continue
		}
		settled[u] = true

		side, serr := s.inst.Partition(u)
		if serr != nil {
			return nil, nil, nil, 0, serr
		}

		switch side {
		case bipartite.S:
			for j := n; j < total; j++ {
				if j == s.inst.Matched(u) {
					continue
				}
				if err := s.relax(h, dist, pred, settled, u, j); err != nil {
					return nil, nil, nil, 0, err
				}
			}
		case bipartite.T:
			matched := s.inst.Matched(u)
			if matched != bipartite.NullNode {
				if err := s.relax(h, dist, pred, settled, u, matched); err != nil {
					return nil, nil, nil, 0, err
				}
			} else if freeT == bipartite.NullNode || dist[u] < dist[freeT] {
				freeT = u
			}
		}
	}

	return dist, pred, settled, freeT, nil
}

// relax implements §4.3.1 step 3: relax edge u -> w under reduced cost,
// inserting w into the heap the first time it is reached and calling
// Update on subsequent strict improvements.
func (s *Solver) relax(h *heap.IndexedKHeap[int64], dist []int64, pred []int, settled []bool, u, w int) error {
	if settled[w] {
		return nil
	}

	reduced, err := s.inst.Reduced(u, w)
	if err != nil {
		return err
	}

	candidate := dist[u] + reduced
	hdl := s.inst.Handle(w)

	if dist[w] == math.MaxInt64 {
		dist[w] = candidate
		pred[w] = u
		hdl.Key = candidate
		h.Insert(hdl)
	} else if candidate < dist[w] {
		dist[w] = candidate
		pred[w] = u
		hdl.Key = candidate
		if err := h.Update(hdl); err != nil {
			return err
		}
	}

	return nil
}

// netScore implements §4.3.1 step 5: walk the predecessor chain from t,
// alternating newPath starting true, summing raw weights of edges
// currently outside M ("new") separately from edges currently inside M
// ("old"). The loop condition tests pred[i] rather than i itself — the
// plain predecessor walk mandated by DESIGN.md's Open Question
// resolution — so it stops exactly at the path's free S-vertex endpoint
// instead of trying to read a non-existent edge out of it (the source
// bug the spec's ++i draft papered over).
func (s *Solver) netScore(t int, pred []int) (int64, error) {
	var newSum, oldSum int64
	newPath := true
	for i := t; pred[i] != bipartite.NullNode; i = pred[i] {
		p := pred[i]
		raw, err := s.inst.Raw(p, i)
		if err != nil {
			return 0, err
		}
		if newPath {
			newSum += raw
		} else {
			oldSum += raw
		}
		newPath = !newPath
	}

	return newSum - oldSum, nil
}

// applyPath implements §4.3.1 step 7: walk pred again with the same
// alternation, toggling matching membership and flipping each edge's
// stored sign so the weight matrix alone continues to encode residual
// direction.
func (s *Solver) applyPath(t int, pred []int) error {
	newPath := true
	for i := t; pred[i] != bipartite.NullNode; i = pred[i] {
		p := pred[i]
		if newPath {
			s.inst.SetMatched(i, p)
			s.inst.SetMatched(p, i)
		} else {
			s.inst.SetMatched(i, bipartite.NullNode)
			s.inst.SetMatched(p, bipartite.NullNode)
		}

		raw, err := s.inst.Raw(p, i)
		if err != nil {
			return err
		}
		if err := s.inst.SetRaw(p, i, -raw); err != nil {
			return err
		}

		newPath = !newPath
	}

	return nil
}

// updatePotentials implements §4.3.1 step 8: π(i) += dist[i] for every
// settled vertex; unsettled vertices keep their previous potential.
func (s *Solver) updatePotentials(dist []int64, settled []bool, n int) {
	for i := 0; i < 2*n; i++ {
		if settled[i] {
			s.inst.SetPotential(i, s.inst.Potential(i)+dist[i])
		}
	}
}
