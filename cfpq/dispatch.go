package cfpq

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathql/digraph"
	"github.com/katalvlaran/pathql/grammar"
)

// Run evaluates a CFPQ over g using the evaluator selected by
// WithAlgorithm (Hellings by default), then filters the closure down to
// (u, v) pairs derived by the query's start symbol between the caller's
// start and final nodes.
func Run(ctx context.Context, cfg grammar.CFG, g *digraph.Graph, opts ...Option) (PairSet, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	startSymbol := o.StartSymbol
	if startSymbol == "" {
		startSymbol = cfg.Start
	}

	if err := validateNodes(g, o.StartNodes); err != nil {
		return nil, err
	}
	if err := validateNodes(g, o.FinalNodes); err != nil {
		return nil, err
	}

	var triples []Triple
	var err error
	switch o.Algo {
	case Hellings:
		triples, err = hellingsClosure(ctx, cfg, g)
	case Matrix:
		triples, err = matrixClosure(ctx, cfg, g)
	case Tensor:
		triples, err = tensorClosure(ctx, cfg, g)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, o.Algo)
	}
	if err != nil {
		return nil, err
	}

	startSet := toSet(o.StartNodes)
	finalSet := toSet(o.FinalNodes)

	result := make(PairSet)
	for _, t := range triples {
		if t.NonTerminal != startSymbol {
			continue
		}
		if startSet != nil {
			if _, ok := startSet[t.From]; !ok {
				continue
			}
		}
		if finalSet != nil {
			if _, ok := finalSet[t.To]; !ok {
				continue
			}
		}
		result[[2]string{t.From, t.To}] = struct{}{}
	}
	return result, nil
}

func validateNodes(g *digraph.Graph, nodes []string) error {
	for _, n := range nodes {
		if !g.HasVertex(n) {
			return fmt.Errorf("%w: %s", ErrUnknownNode, n)
		}
	}
	return nil
}

func toSet(nodes []string) map[string]struct{} {
	if len(nodes) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		out[n] = struct{}{}
	}
	return out
}
