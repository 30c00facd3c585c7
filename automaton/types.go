package automaton

import (
	"sort"

	"github.com/katalvlaran/pathql/bmatrix"
)

// Transition is one NFA edge (q, symbol, q').
type Transition struct {
	From, Symbol, To string
}

// NFA is the plain-value automaton form ABM round-trips through. States are
// deduplicated by name; multi-edges on the same (From, Symbol, To) collapse.
type NFA struct {
	States      []string
	Transitions []Transition
	Start       []string
	Final       []string
}

// ABM is an automaton represented as a symbol-indexed family of boolean
// matrices, a dense state index, and start/final state sets.
type ABM struct {
	N     int
	States []string
	Index  map[string]int
	M      map[string]*bmatrix.Matrix
	Start  map[int]struct{}
	Final  map[int]struct{}
}

// FromNFA builds an ABM from an NFA. States are assigned a stable index in
// the encounter order of n.States; absent symbols yield no matrix entry.
func FromNFA(n NFA) *ABM {
	a := &ABM{
		Index: make(map[string]int, len(n.States)),
		M:     make(map[string]*bmatrix.Matrix),
		Start: make(map[int]struct{}),
		Final: make(map[int]struct{}),
	}
	for _, s := range n.States {
		if _, dup := a.Index[s]; dup {
			continue
		}
		a.Index[s] = len(a.States)
		a.States = append(a.States, s)
	}
	a.N = len(a.States)
	for _, s := range n.Start {
		if i, ok := a.Index[s]; ok {
			a.Start[i] = struct{}{}
		}
	}
	for _, f := range n.Final {
		if i, ok := a.Index[f]; ok {
			a.Final[i] = struct{}{}
		}
	}
	for _, tr := range n.Transitions {
		fi, ok := a.Index[tr.From]
		if !ok {
			continue
		}
		ti, ok := a.Index[tr.To]
		if !ok {
			continue
		}
		mat, ok := a.M[tr.Symbol]
		if !ok {
			mat = bmatrix.New(a.N, a.N)
			a.M[tr.Symbol] = mat
		}
		mat.Set(fi, ti)
	}
	return a
}

// ToNFA converts an ABM back into the plain NFA value form.
func (a *ABM) ToNFA() NFA {
	out := NFA{
		States: append([]string(nil), a.States...),
	}
	for i := range a.Start {
		out.Start = append(out.Start, a.States[i])
	}
	for i := range a.Final {
		out.Final = append(out.Final, a.States[i])
	}
	for _, sym := range a.sortedSymbols() {
		mat := a.M[sym]
		for _, rc := range mat.NonZero() {
			out.Transitions = append(out.Transitions, Transition{
				From:   a.States[rc[0]],
				Symbol: sym,
				To:     a.States[rc[1]],
			})
		}
	}
	sort.Strings(out.Start)
	sort.Strings(out.Final)
	return out
}

// sortedSymbols returns the ABM's alphabet in deterministic order.
func (a *ABM) sortedSymbols() []string {
	out := make([]string, 0, len(a.M))
	for sym := range a.M {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// IsStart reports whether state index i is a start state.
func (a *ABM) IsStart(i int) bool {
	_, ok := a.Start[i]
	return ok
}

// IsFinal reports whether state index i is a final state.
func (a *ABM) IsFinal(i int) bool {
	_, ok := a.Final[i]
	return ok
}

// Union returns the OR of every per-symbol matrix (the adjacency relation
// of the automaton ignoring labels), used by TransitiveClosure.
func (a *ABM) Union() *bmatrix.Matrix {
	u := bmatrix.New(a.N, a.N)
	for _, sym := range a.sortedSymbols() {
		u.Or(a.M[sym])
	}
	return u
}
