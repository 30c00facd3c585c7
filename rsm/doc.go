// Package rsm builds a Recursive State Machine from a context-free grammar:
// one finite-automaton "box" per nonterminal, compiled from the regex that
// describes its production bodies joined by alternation.
//
// AI-HINT: grounded on the original project's ecfg.py (ECFG, ecfg_from_cfg)
// and rsm.py (RSM, ecfg_to_rsm, minimize, merge_boxes_to_nfa). Unlike the
// original, which builds each box as an un-minimized epsilon-NFA and only
// minimizes in a later explicit step, this module's boxes are already
// minimal DFAs the moment regexfa.Compile returns them — see Minimize's
// doc comment.
package rsm
