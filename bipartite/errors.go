package bipartite

import "errors"

// Sentinel errors returned by the bipartite package. The edge accessors
// (Raw, SetRaw, SearchCost, Reduced) and Partition never panic on
// caller-triggered conditions; GraphInvariant violations (vertex out of
// range, endpoints on the same side) are programmer errors and are
// surfaced the same way InputError conditions are — as a sentinel, never
// a panic — so a CLI boundary can always recover and report a diagnostic.
// The per-vertex accessors (Matched, SetMatched, Potential, SetPotential,
// Handle) do not check bounds and panic on an id outside [0, 2n).
var (
	// ErrVertexRange is returned when a vertex id falls outside [0, 2n).
	ErrVertexRange = errors.New("bipartite: vertex id out of range")

	// ErrSamePartition is returned when an edge accessor is called with
	// both endpoints on the same side of the bipartition.
	ErrSamePartition = errors.New("bipartite: endpoints must straddle the partition")

	// ErrBadSize is returned when n <= 0 at construction time.
	ErrBadSize = errors.New("bipartite: n must be > 0")

	// ErrInputSize is returned by FromMatrix when the declared size n or
	// the number of weight tokens read does not match the expected n*n.
	ErrInputSize = errors.New("bipartite: matrix size mismatch")

	// ErrInputToken is returned by FromMatrix when a weight token is not
	// a valid signed integer.
	ErrInputToken = errors.New("bipartite: malformed integer token")
)
