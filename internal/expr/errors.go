package expr

import "errors"

// Domain errors for tree operations.
var (
	// ErrUnboundVar indicates evaluation hit a variable with no binding.
	ErrUnboundVar = errors.New("expr: unbound variable")

	// ErrArity indicates a node whose operand count does not match its
	// operation, which can only come from a hand-assembled tree.
	ErrArity = errors.New("expr: operand count mismatch")
)
