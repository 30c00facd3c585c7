package cfpq

import (
	"context"
	"sort"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/bmatrix"
	"github.com/katalvlaran/pathql/digraph"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/rsm"
)

// tensorClosure evaluates CFPQ by intersecting the graph automaton with a
// Recursive State Machine built from cfg's boxes. Each round, any box that
// has a path from one of its entry states to one of its exit states over
// some (v, w) in the current intersection's transitive closure contributes
// a new nonterminal-labeled edge v --head--> w into the graph automaton;
// rounds repeat until no new edge appears.
func tensorClosure(ctx context.Context, cfg grammar.CFG, g *digraph.Graph) ([]Triple, error) {
	wcnf, err := cfg.ToWCNF()
	if err != nil {
		return nil, err
	}

	machine, err := rsm.FromECFG(rsm.FromCFG(wcnf))
	if err != nil {
		return nil, err
	}
	rABM := automaton.FromNFA(machine.MergeBoxesToNFA())

	gABM, err := g.ToABM(nil, nil)
	if err != nil {
		return nil, err
	}
	if gABM.N == 0 || rABM.N == 0 {
		return nil, nil
	}

	heads := make([]string, 0, len(machine.Boxes))
	for head := range machine.Boxes {
		heads = append(heads, head)
	}
	sort.Strings(heads)

	vertices := g.Vertices()

	prevTotal := -1
	for {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled
		}

		inter := automaton.Intersect(gABM, rABM)
		closure, err := automaton.TransitiveClosure(ctx, inter)
		if err != nil {
			return nil, ErrCancelled
		}

		for _, head := range heads {
			starts, finals, err := machine.BoxStateNames(head)
			if err != nil {
				return nil, err
			}
			addBoxEdges(gABM, rABM, vertices, starts, finals, closure, head)
		}

		total := 0
		for _, m := range gABM.M {
			total += m.NNZ()
		}
		if total == prevTotal {
			break
		}
		prevTotal = total
	}

	var out []Triple
	for nt, m := range gABM.M {
		for _, rc := range m.NonZero() {
			out = append(out, Triple{nt, gABM.States[rc[0]], gABM.States[rc[1]]})
		}
	}
	return out, nil
}

// addBoxEdges finds every (v, w) pair the named box spans in the current
// intersection closure and records v --head--> w on gABM. i == j is
// treated as trivially spanned without consulting closure, since
// TransitiveClosure never reports a zero-length path even for an
// epsilon-accepting box.
func addBoxEdges(gABM, rABM *automaton.ABM, vertices, starts, finals []string, closure *bmatrix.Matrix, head string) {
	rN := rABM.N
	for _, vName := range vertices {
		v := gABM.Index[vName]
		for _, sName := range starts {
			bs, ok := rABM.Index[sName]
			if !ok {
				continue
			}
			i := v*rN + bs
			for _, wName := range vertices {
				w := gABM.Index[wName]
				for _, fName := range finals {
					bf, ok := rABM.Index[fName]
					if !ok {
						continue
					}
					j := w*rN + bf
					if i != j && !closure.Get(i, j) {
						continue
					}
					mat, ok := gABM.M[head]
					if !ok {
						mat = bmatrix.New(gABM.N, gABM.N)
						gABM.M[head] = mat
					}
					mat.Set(v, w)
				}
			}
		}
	}
}
