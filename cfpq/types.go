package cfpq

// Algorithm tags which evaluator Run uses.
type Algorithm int

const (
	// Hellings runs the worklist-based derivation closure.
	Hellings Algorithm = iota
	// Matrix runs the per-nonterminal boolean matrix fixed point.
	Matrix
	// Tensor runs the RSM-box intersection evaluator.
	Tensor
)

// Options holds tunable parameters for Run.
type Options struct {
	StartNodes  []string
	FinalNodes  []string
	StartSymbol string
	Algo        Algorithm
}

// Option configures Run via functional arguments.
type Option func(*Options)

// DefaultOptions returns full-graph reachability under the grammar's own
// Start symbol, evaluated with Hellings.
func DefaultOptions() Options {
	return Options{StartSymbol: "", Algo: Hellings}
}

// WithStartNodes restricts the query to the given start nodes.
func WithStartNodes(nodes ...string) Option {
	return func(o *Options) { o.StartNodes = nodes }
}

// WithFinalNodes restricts the query to the given final nodes.
func WithFinalNodes(nodes ...string) Option {
	return func(o *Options) { o.FinalNodes = nodes }
}

// WithStartSymbol overrides which nonterminal must derive the path label;
// defaults to the grammar's own Start.
func WithStartSymbol(symbol string) Option {
	return func(o *Options) { o.StartSymbol = symbol }
}

// WithAlgorithm selects the evaluator.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algo = a }
}

// PairSet is a set of (u, v) node-ID pairs.
type PairSet map[[2]string]struct{}

// Contains reports whether (u, v) is in the set.
func (s PairSet) Contains(u, v string) bool {
	_, ok := s[[2]string{u, v}]
	return ok
}

// Triple is one derivation fact: NonTerminal derives some path label
// sequence from From to To.
type Triple struct {
	NonTerminal, From, To string
}
