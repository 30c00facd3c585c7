package cfpq

import "errors"

// Sentinel errors for Run.
var (
	// ErrUnknownAlgorithm is returned for an Algorithm value Run does not
	// recognize.
	ErrUnknownAlgorithm = errors.New("cfpq: unknown algorithm")

	// ErrUnknownNode indicates a caller-supplied start/final node is not
	// in the graph.
	ErrUnknownNode = errors.New("cfpq: unknown node")

	// ErrCancelled is returned when the caller's context is cancelled
	// mid-computation; the partial result is discarded.
	ErrCancelled = errors.New("cfpq: computation cancelled")
)
