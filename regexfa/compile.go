package regexfa

import "github.com/katalvlaran/pathql/automaton"

// Compile converts a regex pattern to its minimal deterministic automaton,
// returned directly as an automaton.ABM. The empty string compiles to the
// automaton accepting the empty language {} (no reachable final state).
func Compile(pattern string) (*automaton.ABM, error) {
	ast, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	thompsonNfa := buildThompson(ast)
	rawDFA := subsetConstruct(thompsonNfa)
	minDFA := minimizeDFA(rawDFA)

	n := automaton.NFA{
		States: minDFA.stateNames,
		Start:  []string{minDFA.start},
	}
	for f := range minDFA.final {
		n.Final = append(n.Final, f)
	}
	for from, row := range minDFA.trans {
		for sym, to := range row {
			n.Transitions = append(n.Transitions, automaton.Transition{From: from, Symbol: sym, To: to})
		}
	}
	return automaton.FromNFA(n), nil
}
