// Package automaton implements the Automaton Boolean-Matrix Form (ABM): an
// NFA represented as a symbol-indexed family of sparse boolean matrices
// plus start/final state sets and a state-to-index bijection, built on top
// of bmatrix.
//
// AI-HINT: every construction here is grounded on bool_matrix.py's
// BoolMatrix class from the original project this engine reimplements —
// to_automaton, intersect (Kronecker/tensor product), transitive_closure
// (repeated squaring to an nnz fixed point), direct_sum (block-diagonal),
// and the frontier constructors used by multi-source BFS.
//
// Determinism: Intersect/TransitiveClosure/DirectSum never depend on map
// iteration order for their results; symbol iteration is sorted wherever
// it could otherwise vary.
//
// Concurrency: an *ABM is immutable after construction except for the
// in-place Or helpers on its underlying matrices; callers must not mutate
// an ABM shared across goroutines.
//
// Complexity: Intersect is O(|Σ_shared| · nnz(A)·nnz(B)) dominated by Kron.
// TransitiveClosure is O(log d) matrix squarings where d is the diameter
// of the union graph.
package automaton
