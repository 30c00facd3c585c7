// Package pathql is a path-constrained reachability query engine over
// labeled directed multigraphs.
//
//	A boolean-matrix-automaton engine that answers two kinds of question
//	over a graph whose edges carry string labels:
//
//	  • Regular Path Queries  — "which (u, v) pairs are joined by a path
//	    whose label sequence matches this regex?"
//	  • Context-Free Path Queries — "...matches this grammar?", evaluated
//	    by any of three interchangeable algorithms (Hellings, a matrix
//	    fixed-point, or a tensor/RSM product construction)
//
// Everything is built on one representation: an automaton lifted into
// boolean sparse matrix form (automaton.ABM), so intersection becomes a
// Kronecker product and transitive closure becomes repeated squaring.
//
// Subpackages:
//
//	bmatrix/        — sparse boolean matrix kernel (Set/Get/MatMul/Kron/BlockDiag)
//	automaton/      — automaton-as-boolean-matrices (ABM), intersection, closure
//	regexfa/        — regex to minimal DFA compiler
//	digraph/        — labeled directed multigraph + automaton adapter
//	digraph/digraphbuilder/ — synthetic graph constructors for tests and demos
//	grammar/        — context-free grammars and weak Chomsky normal form
//	cfgtext/        — plain-text grammar import
//	rsm/            — extended CFGs and recursive state machines
//	rpq/            — Regular Path Query evaluator
//	bfsquery/       — constrained multi-source BFS over a product automaton
//	cfpq/           — Context-Free Path Query evaluators (Hellings, matrix, tensor)
//	pathql/         — facade tying the above together with lifecycle logging
package pathql
