package cfpq

import (
	"context"

	"github.com/katalvlaran/pathql/bmatrix"
	"github.com/katalvlaran/pathql/digraph"
	"github.com/katalvlaran/pathql/grammar"
)

// matrixClosure computes the same (nonterminal, from, to) facts as
// hellingsClosure, but represents each nonterminal's reachability as its
// own |V|×|V| boolean matrix and saturates by repeated matrix
// multiplication instead of a worklist — the per-nonterminal analogue of
// automaton.TransitiveClosure's repeated squaring.
func matrixClosure(ctx context.Context, cfg grammar.CFG, g *digraph.Graph) ([]Triple, error) {
	wcnf, err := cfg.ToWCNF()
	if err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	idx := make(map[string]int, len(vertices))
	for i, v := range vertices {
		idx[v] = i
	}
	nv := len(vertices)

	mats := make(map[string]*bmatrix.Matrix)
	get := func(nt string) *bmatrix.Matrix {
		m, ok := mats[nt]
		if !ok {
			m = bmatrix.New(nv, nv)
			mats[nt] = m
		}
		return m
	}

	var varProd []grammar.Production
	for _, p := range wcnf.Productions {
		switch {
		case len(p.Body) == 0:
			for _, v := range vertices {
				get(p.Head).Set(idx[v], idx[v])
			}
		case len(p.Body) == 1:
			for _, e := range g.Edges() {
				if e.Label == p.Body[0].Name {
					get(p.Head).Set(idx[e.From], idx[e.To])
				}
			}
		case len(p.Body) == 2:
			varProd = append(varProd, p)
			get(p.Head) // ensure a (possibly empty) matrix exists
		}
	}

	changed := true
	for changed {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled
		}
		changed = false
		for _, p := range varProd {
			left, right := mats[p.Body[0].Name], mats[p.Body[1].Name]
			if left == nil || right == nil {
				continue
			}
			product, err := bmatrix.MatMul(left, right)
			if err != nil {
				return nil, err
			}
			head := get(p.Head)
			before := head.NNZ()
			head.Or(product)
			if head.NNZ() != before {
				changed = true
			}
		}
	}

	var out []Triple
	for nt, m := range mats {
		for _, rc := range m.NonZero() {
			out = append(out, Triple{nt, vertices[rc[0]], vertices[rc[1]]})
		}
	}
	return out, nil
}
