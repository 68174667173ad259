package expr

import (
	"fmt"
	"math"
)

// Evaluate reduces a tree to a number under the given bindings, operands
// first. A variable with no binding aborts the walk with an error wrapping
// ErrUnboundVar. Domain edge cases (log of a non-positive number, powers
// with negative bases) come back as NaN or Inf per float64 semantics rather
// than as errors. Every call is a fresh full walk; nothing is cached.
func Evaluate(n *Node, vars Bindings) (float64, error) {
	args := make([]float64, len(n.args))
	for i, a := range n.args {
		v, err := Evaluate(a, vars)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	switch n.op {
	case OpVar:
		v, ok := vars[n.name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnboundVar, n.name)
		}
		return v, nil
	case OpConst:
		return n.value, nil
	case OpAdd:
		return args[0] + args[1], nil
	case OpMul:
		return args[0] * args[1], nil
	case OpPow:
		return math.Pow(args[0], args[1]), nil
	case OpSin:
		return math.Sin(args[0]), nil
	case OpCos:
		return math.Cos(args[0]), nil
	default:
		// Log: first operand is the base, second the argument.
		return math.Log(args[1]) / math.Log(args[0]), nil
	}
}
