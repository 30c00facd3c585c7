package regexfa

import "errors"

var (
	// ErrInvalidRegex indicates malformed regex source: unbalanced
	// parentheses, a dangling operator, or an unexpected character.
	ErrInvalidRegex = errors.New("regexfa: invalid regex")
)
