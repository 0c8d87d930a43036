package token

import "errors"

var (
	// ErrInvalidInput indicates input which does not conform to the
	// JSON grammar, or an argument violating an operation's
	// preconditions.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooDeep indicates container nesting beyond MaxDepth.
	ErrTooDeep = errors.New("too deep")
)
