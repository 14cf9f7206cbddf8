package polymorph

import "errors"

// Errors returned by the parser, the normalizer and the morph engine. They
// are wrapped with context, so test for them with errors.Is.
var (
	// ErrSyntax reports a path description containing a token that is
	// neither a command letter nor a number, or a command with the wrong
	// number of arguments.
	ErrSyntax = errors.New("syntax error")

	// ErrUnsupportedCommand reports a command letter outside the path grammar.
	ErrUnsupportedCommand = errors.New("unsupported command")

	// ErrInvalidArguments reports a morph with fewer than two keyframes.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrShapeMismatch reports keyframes with different geometry counts when
	// padding is disabled.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrNotFound reports a selector that matches no element of a document.
	ErrNotFound = errors.New("selector not found")
)
