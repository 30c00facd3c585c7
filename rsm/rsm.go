package rsm

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/regexfa"
)

// RSM is a Recursive State Machine: a start nonterminal and one compiled
// automaton box per nonterminal.
type RSM struct {
	Start string
	Boxes map[string]*automaton.ABM
}

// FromECFG compiles every ECFG production regex into its box.
func FromECFG(e ECFG) (RSM, error) {
	boxes := make(map[string]*automaton.ABM, len(e.Productions))
	for head, pattern := range e.Productions {
		abm, err := regexfa.Compile(pattern)
		if err != nil {
			return RSM{}, fmt.Errorf("rsm: box %s: %w", head, err)
		}
		boxes[head] = abm
	}
	return RSM{Start: e.Start, Boxes: boxes}, nil
}

// Minimize is a no-op here: regexfa.Compile already runs subset
// construction followed by partition refinement (Moore's algorithm), so every
// box is minimal the moment FromECFG returns. The method is kept so RSM
// exposes the same construction/minimize/merge pipeline shape regardless
// of how a box was produced.
func (r RSM) Minimize() RSM { return r }

// boxStateName gives a box's state a name unique across the merged NFA.
func boxStateName(head, state string) string { return head + "#" + state }

// MergeBoxesToNFA flattens every box into one NFA over disjoint,
// head-prefixed state names, used by the tensor CFPQ evaluator to build a
// single automaton for the whole grammar.
func (r RSM) MergeBoxesToNFA() automaton.NFA {
	var out automaton.NFA
	for head, box := range r.Boxes {
		for _, st := range box.States {
			out.States = append(out.States, boxStateName(head, st))
		}
		for i := range box.Start {
			out.Start = append(out.Start, boxStateName(head, box.States[i]))
		}
		for i := range box.Final {
			out.Final = append(out.Final, boxStateName(head, box.States[i]))
		}
		for sym, mat := range box.M {
			for _, rc := range mat.NonZero() {
				out.Transitions = append(out.Transitions, automaton.Transition{
					From:   boxStateName(head, box.States[rc[0]]),
					Symbol: sym,
					To:     boxStateName(head, box.States[rc[1]]),
				})
			}
		}
	}
	return out
}

// BoxStartStates returns the state indices (into r.Boxes[head]) that are
// start states of the named box's automaton.
func (r RSM) BoxStartStates(head string) ([]int, error) {
	box, ok := r.Boxes[head]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchBox, head)
	}
	out := make([]int, 0, len(box.Start))
	for i := range box.Start {
		out = append(out, i)
	}
	return out, nil
}

// BoxStateNames returns the merged-NFA names (as produced by
// MergeBoxesToNFA) of the named box's start and final states, letting a
// caller that only holds the merged automaton's state index look up a
// box's entry/exit points by name.
func (r RSM) BoxStateNames(head string) (starts, finals []string, err error) {
	box, ok := r.Boxes[head]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoSuchBox, head)
	}
	for i := range box.Start {
		starts = append(starts, boxStateName(head, box.States[i]))
	}
	for i := range box.Final {
		finals = append(finals, boxStateName(head, box.States[i]))
	}
	return starts, finals, nil
}
