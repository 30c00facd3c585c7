// Package bmatrix implements a sparse boolean matrix kernel: the lowest
// layer of the path-query engine, used to represent automaton transition
// relations and their products.
//
// Determinism: every operation is a pure function of its inputs; there is
// no hidden state and no reliance on map iteration order in any exported
// result (NonZero always returns row-major sorted pairs).
//
// Concurrency: a *Matrix is not safe for concurrent mutation. Read-only
// operations (Get, NNZ, NonZero, Row) on a matrix no goroutine is writing
// to are safe to call concurrently.
//
// Complexity: Set/Get are O(1) amortized. NNZ/NonZero are O(nnz). Add is
// O(nnz(a)+nnz(b)). MatMul is O(nnz(a) * avg row width of b) using the
// row-keyed sparse representation. Kron is O(nnz(a)*nnz(b)). BlockDiag is
// O(nnz(a)+nnz(b)).
package bmatrix
