package digraph

import (
	"sort"

	"github.com/katalvlaran/pathql/automaton"
)

// ToNFA lifts the graph to an automaton.NFA: every labeled edge (u, σ, v)
// becomes a transition (u, σ, v). If both start and final are nil, every
// node is marked both start and final (full-graph reachability mode).
// Otherwise only the supplied node sets are marked, and any name not
// present in the graph is reported via ErrUnknownNode before the NFA is
// built.
func (g *Graph) ToNFA(start, final []string) (automaton.NFA, error) {
	verts := g.Vertices()
	sort.Strings(verts)

	if start == nil && final == nil {
		return automaton.NFA{
			States:      verts,
			Transitions: edgesToTransitions(g.Edges()),
			Start:       verts,
			Final:       verts,
		}, nil
	}

	for _, s := range start {
		if !g.HasVertex(s) {
			return automaton.NFA{}, ErrUnknownNode
		}
	}
	for _, f := range final {
		if !g.HasVertex(f) {
			return automaton.NFA{}, ErrUnknownNode
		}
	}

	return automaton.NFA{
		States:      verts,
		Transitions: edgesToTransitions(g.Edges()),
		Start:       append([]string(nil), start...),
		Final:       append([]string(nil), final...),
	}, nil
}

// ToABM is a convenience wrapper combining ToNFA and automaton.FromNFA.
func (g *Graph) ToABM(start, final []string) (*automaton.ABM, error) {
	n, err := g.ToNFA(start, final)
	if err != nil {
		return nil, err
	}
	return automaton.FromNFA(n), nil
}

func edgesToTransitions(edges []*Edge) []automaton.Transition {
	out := make([]automaton.Transition, 0, len(edges))
	for _, e := range edges {
		out = append(out, automaton.Transition{From: e.From, Symbol: e.Label, To: e.To})
	}
	return out
}
