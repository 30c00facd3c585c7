package bmatrix

import "fmt"

// op-name tags, used only to annotate wrapped errors for easier grepping.
const (
	opAdd       = "add"
	opMatMul    = "matmul"
	opKron      = "kron"
	opBlockDiag = "blockdiag"
)

func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("bmatrix.%s: %w", tag, err)
}

// Add returns the elementwise boolean OR of a and b. Shapes must match
// exactly; false is the additive identity of the boolean semiring.
func Add(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opAdd, ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, matrixErrorf(opAdd, ErrDimensionMismatch)
	}
	out := a.Clone()
	out.Or(b)
	return out, nil
}

// MatMul returns the boolean matrix product a·b: a is m×k, b is k×n, the
// result is m×n, with entries ORed (not summed) over the shared dimension —
// the boolean semiring's "+" is OR and "×" is AND.
func MatMul(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMatMul, ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, matrixErrorf(opMatMul, ErrDimensionMismatch)
	}
	out := New(a.rows, b.cols)
	for i, rowA := range a.data {
		for k := range rowA {
			rowB, ok := b.data[k]
			if !ok {
				continue
			}
			for j := range rowB {
				out.Set(i, j)
			}
		}
	}
	return out, nil
}

// Kron returns the Kronecker product of a (p×q) and b (r×s): a (pr)×(qs)
// matrix with C[i*r+i', j*s+j'] = A[i,j] AND B[i',j'].
func Kron(a, b *Matrix) *Matrix {
	if a == nil || b == nil {
		return New(0, 0)
	}
	out := New(a.rows*b.rows, a.cols*b.cols)
	for i, rowA := range a.data {
		for j := range rowA {
			for ip, rowB := range b.data {
				for jp := range rowB {
					out.Set(i*b.rows+ip, j*b.cols+jp)
				}
			}
		}
	}
	return out
}

// BlockDiag returns the block-diagonal matrix with a in the top-left and
// b in the bottom-right: shape (a.rows+b.rows)×(a.cols+b.cols).
func BlockDiag(a, b *Matrix) *Matrix {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := New(ar+br, ac+bc)
	if a != nil {
		for i, row := range a.data {
			for j := range row {
				out.Set(i, j)
			}
		}
	}
	if b != nil {
		for i, row := range b.data {
			for j := range row {
				out.Set(ar+i, ac+j)
			}
		}
	}
	return out
}
