package automaton

import (
	"fmt"

	"github.com/katalvlaran/pathql/bmatrix"
)

// Intersect computes the tensor product a ⊗ b: states are pairs (i, j)
// indexed i*b.N+j, transitions are Kronecker products of the per-symbol
// matrices over the shared alphabet, and a pair-index is start/final iff
// both its components are.
func Intersect(a, b *ABM) *ABM {
	out := &ABM{
		N:     a.N * b.N,
		Index: make(map[string]int, a.N*b.N),
		M:     make(map[string]*bmatrix.Matrix),
		Start: make(map[int]struct{}),
		Final: make(map[int]struct{}),
	}
	out.States = make([]string, 0, out.N)
	for i, sa := range a.States {
		for j, sb := range b.States {
			idx := i*b.N + j
			name := fmt.Sprintf("%s⊗%s", sa, sb)
			out.States = append(out.States, name)
			out.Index[name] = idx
			if a.IsStart(i) && b.IsStart(j) {
				out.Start[idx] = struct{}{}
			}
			if a.IsFinal(i) && b.IsFinal(j) {
				out.Final[idx] = struct{}{}
			}
		}
	}
	for sym := range a.M {
		bm, ok := b.M[sym]
		if !ok {
			continue
		}
		out.M[sym] = bmatrix.Kron(a.M[sym], bm)
	}
	return out
}
