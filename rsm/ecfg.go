package rsm

import (
	"strings"

	"github.com/katalvlaran/pathql/grammar"
)

// epsilonPattern is the regex text for the production that derives the
// empty string. regexfa.Compile("") yields the empty *language*, so an
// epsilon production is instead spelled as the Kleene star of an empty
// group: "()*" always accepts ε regardless of what's inside the star.
const epsilonPattern = "()*"

// ECFG is an extended context-free grammar: one regex per nonterminal head,
// rather than a flat list of fixed-shape productions.
type ECFG struct {
	Start       string
	Productions map[string]string
}

// FromCFG builds an ECFG from a CFG by unioning, per head, the regex that
// spells out each of its production bodies.
func FromCFG(cfg grammar.CFG) ECFG {
	bodies := make(map[string][]string)
	var order []string
	for _, p := range cfg.Productions {
		if _, seen := bodies[p.Head]; !seen {
			order = append(order, p.Head)
		}
		bodies[p.Head] = append(bodies[p.Head], bodyPattern(p))
	}

	prods := make(map[string]string, len(bodies))
	for _, head := range order {
		prods[head] = strings.Join(bodies[head], " | ")
	}
	return ECFG{Start: cfg.Start, Productions: prods}
}

func bodyPattern(p grammar.Production) string {
	if p.IsEpsilon() {
		return epsilonPattern
	}
	toks := make([]string, len(p.Body))
	for i, sym := range p.Body {
		toks[i] = sym.Name
	}
	return strings.Join(toks, " ")
}
