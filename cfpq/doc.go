// Package cfpq answers Context-Free Path Queries: given a labeled directed
// multigraph and a context-free grammar, it returns every (u, v) pair
// joined by a path whose label sequence derives from the grammar's start
// symbol. Three interchangeable evaluators are provided — Hellings
// (worklist-based derivation closure), Matrix (per-nonterminal boolean
// matrix fixed point), and Tensor (RSM-box intersection with the graph,
// iterated to a fixed point) — selected via the Algorithm option.
//
// AI-HINT: grounded on the original project's hellings.py (cfpq,
// hellings_closure), a matrix_cfpq.py-style per-nonterminal matrix fixed
// point, and rsm.py's box-merging for the tensor evaluator. All three
// evaluators classify epsilon productions by body length == 0, correcting
// a len(body) > 2 check the original's hellings_closure used in its place.
package cfpq
