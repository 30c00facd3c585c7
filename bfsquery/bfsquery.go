package bfsquery

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/bmatrix"
)

// Run finds every data state reachable from sources by a word the
// constraint automaton accepts. It works entirely over the direct sum of
// constraint and data: a k×(n+k) (or, in separate mode, a (|sources|·k)×(n+k))
// frontier is advanced one shared symbol at a time until it stops growing.
//
// constraint is typically a compiled regex or an RSM box; data is typically
// a graph lifted via digraph.ToABM. sources names data-automaton states by
// name, not index.
func Run(ctx context.Context, constraint, data *automaton.ABM, sources []string, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	shared := automaton.SharedSymbols(constraint, data)
	sort.Strings(shared)
	if len(shared) == 0 {
		return emptyResult(o), nil
	}

	srcIdx := make([]int, 0, len(sources))
	for _, name := range sources {
		i, ok := data.Index[name]
		if !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrUnknownNode, name)
		}
		srcIdx = append(srcIdx, i)
	}

	k := data.N
	s := automaton.DirectSum(constraint, data)

	var visited *bmatrix.Matrix
	if o.Separate {
		visited = automaton.MakeSeparateFront(constraint, data, srcIdx)
	} else {
		visited = automaton.MakeFront(constraint, data, srcIdx)
	}

	prevNNZ := -1
	for prevNNZ != visited.NNZ() {
		if err := ctx.Err(); err != nil {
			return Result{}, ErrCancelled
		}
		prevNNZ = visited.NNZ()

		for _, sym := range shared {
			mat, ok := s[sym]
			if !ok {
				continue
			}
			raw, err := bmatrix.MatMul(visited, mat)
			if err != nil {
				return Result{}, fmt.Errorf("bfsquery: %w", err)
			}
			visited.Or(normalize(raw, k))
		}
	}

	return extract(visited, constraint, data, sources, k, o.Separate), nil
}

// normalize reconciles a raw post-multiplication row into the frontier's
// row convention. A row that advanced both its data-state bit(s) and its
// constraint-state bit(s) on the same symbol is a genuine joint step: it is
// repositioned into the block-relative row keyed by the new data state. Any
// row that did not advance both halves together — a constraint-only move
// with no accompanying data-state transition, or a data-only move with no
// accompanying constraint transition — is not a valid joint step on this
// symbol and is dropped. Keeping a constraint-only row in place would let
// the constraint automaton advance on a symbol the data automaton has no
// matching edge for from the current node, which is exactly the
// desynchronization the product construction exists to rule out.
func normalize(raw *bmatrix.Matrix, k int) *bmatrix.Matrix {
	rows, cols := raw.Dims()
	out := bmatrix.New(rows, cols)
	for r := 0; r < rows; r++ {
		nz := raw.Row(r)
		if len(nz) == 0 {
			continue
		}

		var dataCols, ctrlCols []int
		for _, c := range nz {
			if c < k {
				dataCols = append(dataCols, c)
			} else {
				ctrlCols = append(ctrlCols, c)
			}
		}

		if len(dataCols) == 0 || len(ctrlCols) == 0 {
			continue
		}

		block := (r / k) * k
		for _, dc := range dataCols {
			newRow := block + dc
			out.Set(newRow, dc)
			for _, cc := range ctrlCols {
				out.Set(newRow, cc)
			}
		}
	}
	return out
}

// extract reads accepting (data-state, constraint-state) pairs out of the
// fixed-point frontier: column c ≥ k must name a constraint final state,
// and the data state named by row r mod k must be a data final state.
func extract(visited *bmatrix.Matrix, constraint, data *automaton.ABM, sources []string, k int, separate bool) Result {
	res := emptyResult(Options{Separate: separate})
	for _, rc := range visited.NonZero() {
		r, c := rc[0], rc[1]
		if c < k {
			continue
		}
		ctrlState := c - k
		if !constraint.IsFinal(ctrlState) {
			continue
		}
		dataState := r % k
		if !data.IsFinal(dataState) {
			continue
		}
		node := data.States[dataState]
		if separate {
			block := r / k
			res.Pairs[[2]string{sources[block], node}] = struct{}{}
		} else {
			res.Nodes[node] = struct{}{}
		}
	}
	return res
}

func emptyResult(o Options) Result {
	if o.Separate {
		return Result{Pairs: make(PairSet)}
	}
	return Result{Nodes: make(NodeSet)}
}
