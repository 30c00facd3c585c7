// Package regexfa converts a regular expression string to its minimal
// deterministic automaton, exposed directly as an automaton.ABM: regex ->
// ε-NFA (Thompson construction) -> deterministic (subset construction) ->
// minimized (partition refinement).
//
// Grammar: expr := term ('|' term)* ; term := factor* ; factor := atom '*'* ;
// atom := literal | '(' expr ')'. A literal is a maximal run of letters and
// digits, so "ab" is one symbol while "a b" concatenates two; juxtaposition
// also concatenates where no run joins, as in "(a|b)*c". The empty string
// denotes the empty language {} (not {ε}).
//
// AI-HINT: grounded on the original project's fa_utils.create_minimal_dfa
// for the three-stage pipeline shape; the ABM is built straight from the
// minimized DFA without exposing an intermediate automaton.NFA value,
// since nothing downstream needs it once the ABM exists.
package regexfa
