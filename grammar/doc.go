// Package grammar models context-free grammars over string symbols and
// reduces them to weak Chomsky normal form (WCNF): every production body is
// either a single terminal, a pair of nonterminals, or empty.
//
// AI-HINT: grounded on the original project's cfg.py (cfg_to_wcnf) and its
// unit-production/useless-symbol elimination pipeline; the useless-symbol
// passes follow the visited-set traversal style of lvlath's dfs package
// rather than reusing core.Graph, since a grammar's symbol-dependency graph
// is not a labeled multigraph.
//
// Determinism: ToWCNF is deterministic given deterministic Production
// iteration order; fresh nonterminal names are "TermW"+terminal for terminal
// wrappers and "HeadX1", "HeadX2", ... for long-body helpers, with one
// counter running across the whole grammar.
package grammar
