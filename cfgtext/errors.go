package cfgtext

import "errors"

// Sentinel errors for Parse.
var (
	// ErrMalformedRule is returned for a non-blank line without exactly
	// one "->" separator, or with nothing before it.
	ErrMalformedRule = errors.New("cfgtext: malformed rule")

	// ErrEmptyAlternative is returned when an alternative between "|"
	// separators is blank without being the explicit "eps" token.
	ErrEmptyAlternative = errors.New("cfgtext: empty alternative")
)
