// Package bmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// bmatrix package. Add and MatMul report failures by wrapping these
// sentinels, so tests check them via errors.Is. No function in the package
// panics: methods on a nil receiver return zero values, an out-of-range Set
// is a no-op, and Kron/BlockDiag treat a nil operand as an empty matrix.
package bmatrix

import "errors"

// ERROR PRIORITY: a nil operand is reported before a dimension mismatch.
var (
	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("bmatrix: nil matrix")

	// ErrBadShape names an invalid shape (rows<=0 or cols<=0). No function in
	// this package returns it: New accepts any shape, including 0×0.
	ErrBadShape = errors.New("bmatrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, or MatMul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("bmatrix: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("bmatrix: index out of range")
)
