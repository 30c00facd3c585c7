package automaton

import "github.com/katalvlaran/pathql/bmatrix"

// DirectSum builds, for every symbol shared between self (the constraint
// ABM) and other (the data ABM), M'[σ] = BlockDiag(other.M[σ], self.M[σ]).
// The resulting state space is other.States then self.States, matching the
// frontier convention in MakeFront/MakeSeparateFront.
func DirectSum(self, other *ABM) map[string]*bmatrix.Matrix {
	out := make(map[string]*bmatrix.Matrix)
	for sym, sm := range self.M {
		om, ok := other.M[sym]
		if !ok {
			continue
		}
		out[sym] = bmatrix.BlockDiag(om, sm)
	}
	return out
}

// SharedSymbols returns the symbols present in both a and b's alphabets.
func SharedSymbols(a, b *ABM) []string {
	var out []string
	for sym := range a.M {
		if _, ok := b.M[sym]; ok {
			out = append(out, sym)
		}
	}
	return out
}
