package bfsquery

import "errors"

// Sentinel errors for Run.
//
// ERROR PRIORITY: a cancelled context takes precedence over any partial
// result; an unknown source node is reported before any matrix work begins.
var (
	// ErrUnknownNode indicates a caller-supplied source node is not in the
	// data automaton's state index.
	ErrUnknownNode = errors.New("bfsquery: unknown node")

	// ErrCancelled is returned when the caller's context is cancelled
	// mid-computation; the partial frontier is discarded.
	ErrCancelled = errors.New("bfsquery: computation cancelled")
)
