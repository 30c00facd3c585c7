package cfpq

import (
	"context"

	"github.com/katalvlaran/pathql/digraph"
	"github.com/katalvlaran/pathql/grammar"
)

// tripleKey identifies a Triple for membership tests.
type tripleKey struct{ nt, from, to string }

// hellingsClosure computes every (nonterminal, from, to) triple derivable
// over g under cfg via the worklist algorithm: seed from terminal and
// epsilon productions, then saturate by combining adjacent triples through
// binary productions until no new triple appears.
//
// Epsilon productions are those with an empty body (len(body) == 0); the
// original project's equivalent pass classified them as len(body) > 2,
// which only coincidentally matched because its own decomposition pass
// never produced bodies longer than 2. This module classifies by the
// actual WCNF shape.
func hellingsClosure(ctx context.Context, cfg grammar.CFG, g *digraph.Graph) ([]Triple, error) {
	wcnf, err := cfg.ToWCNF()
	if err != nil {
		return nil, err
	}

	var termProd, varProd, epsProd []grammar.Production
	for _, p := range wcnf.Productions {
		switch {
		case len(p.Body) == 0:
			epsProd = append(epsProd, p)
		case len(p.Body) == 1:
			termProd = append(termProd, p)
		case len(p.Body) == 2:
			varProd = append(varProd, p)
		}
	}

	seen := make(map[tripleKey]struct{})
	var result []Triple
	add := func(t Triple) bool {
		k := tripleKey{t.NonTerminal, t.From, t.To}
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		result = append(result, t)
		return true
	}

	for _, e := range g.Edges() {
		for _, p := range termProd {
			if p.Body[0].Name == e.Label {
				add(Triple{p.Head, e.From, e.To})
			}
		}
	}
	for _, v := range g.Vertices() {
		for _, p := range epsProd {
			add(Triple{p.Head, v, v})
		}
	}

	worklist := append([]Triple(nil), result...)
	for len(worklist) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled
		}
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		// cur extends triples ending where cur starts: r --i_r--> cur.From --cur--> j
		for _, r := range result {
			if r.To != cur.From {
				continue
			}
			for _, p := range varProd {
				if p.Body[0].Name == r.NonTerminal && p.Body[1].Name == cur.NonTerminal {
					t := Triple{p.Head, r.From, cur.To}
					if add(t) {
						worklist = append(worklist, t)
					}
				}
			}
		}
		// cur extends triples starting where cur ends: cur.From --cur--> cur.To --i_r--> r
		for _, r := range result {
			if r.From != cur.To {
				continue
			}
			for _, p := range varProd {
				if p.Body[0].Name == cur.NonTerminal && p.Body[1].Name == r.NonTerminal {
					t := Triple{p.Head, cur.From, r.To}
					if add(t) {
						worklist = append(worklist, t)
					}
				}
			}
		}
	}
	return result, nil
}
