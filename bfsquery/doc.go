// Package bfsquery implements constrained multi-source BFS: given a
// constraint automaton (a compiled regex or RSM box) and a data automaton
// (a graph lifted via digraph.ToABM), it finds every data state reachable
// from a set of sources by a word the constraint automaton accepts,
// entirely in terms of boolean-matrix operations over their direct sum.
//
// AI-HINT: grounded on the original project's BoolMatrix.constraint_bfs /
// transform_front, reconciled into a product-automaton reformulation: a
// frontier row only advances when its data-state half and constraint-state
// half move together on the same symbol; a row that moves on only one half
// is dropped rather than kept in place, since that half-move alone is not
// a word the constraint accepts against an edge the data graph actually has.
//
// Concurrency: Run accepts a context.Context and checks it once per outer
// fixed-point iteration; on cancellation it returns ErrCancelled and
// discards the partial result.
package bfsquery
