// Package cfgtext parses the line-oriented grammar text format used by
// this project's CFPQ entry points: one "HEAD -> body | body | ..." rule
// per line, tokens separated by whitespace, uppercase-leading tokens are
// nonterminals, everything else is a terminal, and the literal token
// "eps" denotes the empty alternative.
//
// AI-HINT: grounded on the original project's cfg.py (get_cfg_from_file)
// and ecfg.py (ecfg_from_text)'s per-line "head -> body" convention.
package cfgtext
