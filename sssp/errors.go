package sssp

import "errors"

var (
	// ErrEmptySource indicates the requested source vertex id is out of
	// the graph's declared [1, nodes] range.
	ErrEmptySource = errors.New("sssp: source vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight was encountered;
	// Dijkstra's algorithm requires non-negative weights.
	ErrNegativeWeight = errors.New("sssp: negative edge weight encountered")

	// ErrMalformedHeader indicates the "p sp nodes edges" problem line is
	// missing or malformed.
	ErrMalformedHeader = errors.New("sssp: malformed problem line")

	// ErrMalformedArc indicates an "a u v w" line is malformed or
	// references a vertex id outside [1, nodes].
	ErrMalformedArc = errors.New("sssp: malformed arc line")
)
