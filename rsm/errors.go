package rsm

import "errors"

// ErrNoSuchBox is returned when an operation names a nonterminal with no
// corresponding box.
var ErrNoSuchBox = errors.New("rsm: no box for nonterminal")
