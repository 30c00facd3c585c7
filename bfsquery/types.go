package bfsquery

// Options holds tunable parameters for Run.
type Options struct {
	// Separate, when true, keeps each source's reachable set distinct
	// (one BFS block per source) instead of merging them into one set.
	Separate bool
}

// Option configures Run via functional arguments.
type Option func(*Options)

// DefaultOptions returns an Options with merged-frontier mode: all sources
// feed one shared reachable-node set.
func DefaultOptions() Options { return Options{} }

// WithSeparate keeps each source's result distinct, yielding (source, node)
// pairs instead of a merged node set.
func WithSeparate() Option {
	return func(o *Options) { o.Separate = true }
}

// NodeSet is a set of reachable node names, produced in merged mode.
type NodeSet map[string]struct{}

// PairSet is a set of (source, node) pairs, produced in separate mode.
type PairSet map[[2]string]struct{}

// Contains reports whether (source, node) is in the set.
func (s PairSet) Contains(source, node string) bool {
	_, ok := s[[2]string{source, node}]
	return ok
}

// Result holds Run's output: exactly one of Nodes or Pairs is populated,
// depending on whether WithSeparate was given.
type Result struct {
	Nodes NodeSet
	Pairs PairSet
}
