package grammar

import "errors"

// Sentinel errors for grammar construction and reduction.
var (
	// ErrEmptyGrammar is returned when a CFG has no productions at all.
	ErrEmptyGrammar = errors.New("grammar: empty grammar")

	// ErrUnknownStart is returned when a CFG's start symbol names no
	// nonterminal appearing as a production head.
	ErrUnknownStart = errors.New("grammar: start symbol has no productions")
)
