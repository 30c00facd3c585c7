package automaton

import "errors"

var (
	// ErrCancelled is returned by TransitiveClosure when the caller's
	// context is cancelled mid-computation; any partial result is discarded.
	ErrCancelled = errors.New("automaton: computation cancelled")

	// ErrUnknownState indicates a referenced state name is not present in
	// the automaton's state set.
	ErrUnknownState = errors.New("automaton: unknown state")
)
