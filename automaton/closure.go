package automaton

import (
	"context"

	"github.com/katalvlaran/pathql/bmatrix"
)

// TransitiveClosure computes the reflexive-free transitive closure of a's
// union matrix by repeated squaring (U ← U + U·U) until nnz(U) stabilizes.
// An empty automaton (N==0) returns a 0×0 matrix. The context is checked
// once per doubling; on cancellation the partial result is discarded and
// ErrCancelled is returned.
func TransitiveClosure(ctx context.Context, a *ABM) (*bmatrix.Matrix, error) {
	if a.N == 0 {
		return bmatrix.New(0, 0), nil
	}
	u := a.Union()
	for {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled
		}
		old := u.NNZ()
		squared, err := bmatrix.MatMul(u, u)
		if err != nil {
			return nil, err
		}
		next, err := bmatrix.Add(u, squared)
		if err != nil {
			return nil, err
		}
		u = next
		if u.NNZ() == old {
			return u, nil
		}
	}
}
