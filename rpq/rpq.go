// Package rpq answers Regular Path Queries: given a labeled directed
// multigraph and a regex, it returns every (u, v) pair joined by some path
// whose label sequence matches the regex.
package rpq

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/digraph"
	"github.com/katalvlaran/pathql/regexfa"
)

// Sentinel errors for rpq.Run.
var (
	// ErrUnknownNode indicates a caller-supplied start/final node is not
	// in the graph.
	ErrUnknownNode = errors.New("rpq: unknown node")

	// ErrCancelled is returned when the caller's context is cancelled
	// mid-computation; the partial result is discarded.
	ErrCancelled = errors.New("rpq: computation cancelled")
)

// Options holds tunable parameters for Run.
type Options struct {
	StartNodes []string
	FinalNodes []string
}

// Option configures Run via functional arguments.
type Option func(*Options)

// DefaultOptions returns an Options with full-graph reachability: every
// node is a candidate start and final node. Once either node set is given,
// only the given sets are used, so a query with start nodes and no final
// nodes has no final node and returns an empty result.
func DefaultOptions() Options { return Options{} }

// WithStartNodes sets the query's start nodes (see DefaultOptions).
func WithStartNodes(nodes ...string) Option {
	return func(o *Options) { o.StartNodes = nodes }
}

// WithFinalNodes sets the query's final nodes (see DefaultOptions).
func WithFinalNodes(nodes ...string) Option {
	return func(o *Options) { o.FinalNodes = nodes }
}

// PairSet is a set of (u, v) node-ID pairs.
type PairSet map[[2]string]struct{}

// Contains reports whether (u, v) is in the set.
func (s PairSet) Contains(u, v string) bool {
	_, ok := s[[2]string{u, v}]
	return ok
}

// Slice returns the set's members, order unspecified.
func (s PairSet) Slice() [][2]string {
	out := make([][2]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}

// Run evaluates an RPQ over g using the tensor method: intersect the
// graph's ABM with the regex's minimal-DFA ABM, take the transitive
// closure, and filter start/final pairs.
func Run(ctx context.Context, g *digraph.Graph, pattern string, opts ...Option) (PairSet, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var start, final []string
	if len(o.StartNodes) > 0 || len(o.FinalNodes) > 0 {
		start, final = o.StartNodes, o.FinalNodes
	}
	gABM, err := g.ToABM(start, final)
	if err != nil {
		return nil, fmt.Errorf("rpq: %w", mapGraphErr(err))
	}

	rABM, err := regexfa.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("rpq: %w", err)
	}

	if gABM.N == 0 || rABM.N == 0 {
		return PairSet{}, nil
	}

	inter := automaton.Intersect(gABM, rABM)
	closure, err := automaton.TransitiveClosure(ctx, inter)
	if err != nil {
		return nil, ErrCancelled
	}

	result := make(PairSet)
	rN := rABM.N
	emit := func(i, j int) {
		u := gABM.States[i/rN]
		v := gABM.States[j/rN]
		result[[2]string{u, v}] = struct{}{}
	}
	// TransitiveClosure is seeded from one-step transitions and never
	// reports a zero-length path, even from a product state that is both
	// start and final (e.g. a regex like "R*" accepting the empty word).
	// Those trivial (u, u) pairs are added explicitly here.
	for i := 0; i < inter.N; i++ {
		if inter.IsStart(i) && inter.IsFinal(i) {
			emit(i, i)
		}
	}
	for _, rc := range closure.NonZero() {
		i, j := rc[0], rc[1]
		if !inter.IsStart(i) || !inter.IsFinal(j) {
			continue
		}
		emit(i, j)
	}
	return result, nil
}

func mapGraphErr(err error) error {
	if errors.Is(err, digraph.ErrUnknownNode) {
		return ErrUnknownNode
	}
	return err
}
