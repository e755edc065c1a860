package matching

import (
	"context"

	"go.uber.org/zap"
)

// Options configures a Solver. Unlike the core algorithm these are purely
// ambient: they never change the weight of the matching returned, only
// the heap arity each sweep uses and how the call observes cancellation
// and emits diagnostics — the same split
// dijkstra.Options draws between algorithmic knobs and observability
// knobs, and the same cancellation-at-checkpoints idea flow.FlowOptions
// uses via its Ctx field.
type Options struct {
	Ctx    context.Context // checked once per phase boundary; nil means context.Background()
	Logger *zap.Logger     // phase/augmentation diagnostics; nil means a no-op logger
	Arity  int             // IndexedKHeap arity used for each phase's sweep; must be >= 2
}

// Option is a functional option for NewSolver.
type Option func(*Options)

// WithContext sets the cancellation context checked between phases.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithLogger attaches a zap.Logger for per-phase diagnostics. Pass
// zap.NewNop() (the default) to disable logging entirely.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithArity overrides the heap arity used for each phase's Dijkstra
// sweep. Default is 4.
func WithArity(k int) Option {
	return func(o *Options) { o.Arity = k }
}

// defaultOptions mirrors dijkstra.DefaultOptions's role: a safe baseline
// further option funcs are folded onto.
func defaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
		Arity:  4,
	}
}
