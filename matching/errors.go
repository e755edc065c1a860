package matching

import "errors"

// ErrBadArity is returned by NewSolver if WithArity was given a value < 2.
var ErrBadArity = errors.New("matching: heap arity must be >= 2")

// ErrCanceled is returned when the context passed via WithContext is
// canceled between phases. Phases are atomic; cancellation is only
// observed at a phase boundary, never mid-phase.
var ErrCanceled = errors.New("matching: context canceled")
