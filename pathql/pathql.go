package pathql

import (
	"context"
	"time"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/bfsquery"
	"github.com/katalvlaran/pathql/cfpq"
	"github.com/katalvlaran/pathql/digraph"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/rpq"
	"github.com/projectdiscovery/gologger"
)

// RunRPQ evaluates a Regular Path Query and logs its outcome.
func RunRPQ(ctx context.Context, g *digraph.Graph, pattern string, opts ...rpq.Option) (rpq.PairSet, error) {
	gologger.Verbose().Msgf("rpq: evaluating pattern %q", pattern)
	start := time.Now()
	result, err := rpq.Run(ctx, g, pattern, opts...)
	if err != nil {
		gologger.Error().Msgf("rpq: pattern %q failed after %s: %v", pattern, time.Since(start), err)
		return nil, err
	}
	gologger.Info().Msgf("rpq: pattern %q matched %d pair(s) in %s", pattern, len(result), time.Since(start))
	return result, nil
}

// RunBFS evaluates a constrained multi-source BFS and logs its outcome.
func RunBFS(ctx context.Context, constraint, data *automaton.ABM, sources []string, opts ...bfsquery.Option) (bfsquery.Result, error) {
	gologger.Verbose().Msgf("bfsquery: evaluating %d source(s)", len(sources))
	start := time.Now()
	res, err := bfsquery.Run(ctx, constraint, data, sources, opts...)
	if err != nil {
		gologger.Error().Msgf("bfsquery: failed after %s: %v", time.Since(start), err)
		return bfsquery.Result{}, err
	}
	gologger.Info().Msgf("bfsquery: completed in %s", time.Since(start))
	return res, nil
}

// RunCFPQ evaluates a Context-Free Path Query and logs its outcome.
func RunCFPQ(ctx context.Context, cfg grammar.CFG, g *digraph.Graph, opts ...cfpq.Option) (cfpq.PairSet, error) {
	gologger.Verbose().Msgf("cfpq: evaluating grammar start=%s", cfg.Start)
	start := time.Now()
	result, err := cfpq.Run(ctx, cfg, g, opts...)
	if err != nil {
		gologger.Error().Msgf("cfpq: start=%s failed after %s: %v", cfg.Start, time.Since(start), err)
		return nil, err
	}
	gologger.Info().Msgf("cfpq: start=%s matched %d pair(s) in %s", cfg.Start, len(result), time.Since(start))
	return result, nil
}
