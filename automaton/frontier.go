package automaton

import "github.com/katalvlaran/pathql/bmatrix"

// MakeFront builds the merged multi-source BFS frontier: a k×(n+k) matrix
// where k = other.N (data states) and n = self.N (constraint states),
// populated only at the rows named in sources (data-state indices into
// other) — row src gets column src set in the left (identity) block and
// self's start-state indicator set in the right block. Rows outside
// sources stay zero: those graph nodes are not BFS sources for this query.
func MakeFront(self, other *ABM, sources []int) *bmatrix.Matrix {
	k, n := other.N, self.N
	front := bmatrix.New(k, n+k)
	for _, src := range sources {
		front.Set(src, src)
		for s := range self.Start {
			front.Set(src, k+s)
		}
	}
	return front
}

// MakeSeparateFront builds the per-source BFS frontier: one k-row block per
// element of sources (data-state indices into other), with only that
// source's own row populated — column src in the left block, and self's
// start indicator in the right block, restricted to that one row. Empty
// sources yields a zero matrix of shape (k, n+k), never a degenerate shape.
func MakeSeparateFront(self, other *ABM, sources []int) *bmatrix.Matrix {
	k, n := other.N, self.N
	if len(sources) == 0 {
		return bmatrix.New(k, n+k)
	}
	front := bmatrix.New(len(sources)*k, n+k)
	for blockIdx, src := range sources {
		row := blockIdx*k + src
		front.Set(row, src)
		for s := range self.Start {
			front.Set(row, k+s)
		}
	}
	return front
}
