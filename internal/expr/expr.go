package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Op tags a node with its operation. The set is closed: arity and meaning
// are fixed per tag.
type Op int

const (
	OpAdd Op = iota
	OpMul
	OpPow
	OpSin
	OpCos
	OpLog
	OpVar
	OpConst
)

// Arity returns the exact number of operands a node with this tag carries.
func (op Op) Arity() int {
	switch op {
	case OpAdd, OpMul, OpPow, OpLog:
		return 2
	case OpSin, OpCos:
		return 1
	default:
		return 0
	}
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpMul:
		return "Mul"
	case OpPow:
		return "Pow"
	case OpSin:
		return "Sin"
	case OpCos:
		return "Cos"
	case OpLog:
		return "Log"
	case OpVar:
		return "Var"
	case OpConst:
		return "Const"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Bindings maps variable names to values for evaluation.
type Bindings map[string]float64

// Node is one element of an expression tree: an operation plus its ordered
// operands. Var nodes carry a name, Const nodes a value; both have no
// operands. Nodes are immutable once built.
type Node struct {
	op    Op
	args  []*Node
	name  string
	value float64
}

// Op returns the node's operation tag.
func (n *Node) Op() Op { return n.op }

// Args returns the node's operands. The returned slice is a copy; the
// operands themselves are shared and must not be mutated.
func (n *Node) Args() []*Node {
	out := make([]*Node, len(n.args))
	copy(out, n.args)
	return out
}

// Name returns the variable name of a Var node ("" otherwise).
func (n *Node) Name() string { return n.name }

// Value returns the literal of a Const node (0 otherwise).
func (n *Node) Value() float64 { return n.value }

// Clone returns a deep copy of the tree. Needed when the same subexpression
// appears under more than one parent, since every node has exactly one owner.
func (n *Node) Clone() *Node {
	c := &Node{op: n.op, name: n.name, value: n.value}
	if len(n.args) > 0 {
		c.args = make([]*Node, len(n.args))
		for i, a := range n.args {
			c.args[i] = a.Clone()
		}
	}
	return c
}

// Check walks the tree and verifies that every node carries exactly as many
// operands as its tag requires. Trees built through the constructors always
// pass; this guards hand-assembled trees.
func (n *Node) Check() error {
	if len(n.args) != n.op.Arity() {
		return fmt.Errorf("%w: %s has %d operands, want %d", ErrArity, n.op, len(n.args), n.op.Arity())
	}
	for _, a := range n.args {
		if err := a.Check(); err != nil {
			return err
		}
	}
	return nil
}

// String renders the tree for diagnostics: leaves as their name or value,
// internal nodes as OpName(operand, operand). Not meant to be parsed back.
func (n *Node) String() string {
	switch n.op {
	case OpVar:
		return n.name
	case OpConst:
		return strconv.FormatFloat(n.value, 'g', -1, 64)
	default:
		parts := make([]string, len(n.args))
		for i, a := range n.args {
			parts[i] = a.String()
		}
		return n.op.String() + "(" + strings.Join(parts, ", ") + ")"
	}
}

// std is the default builder behind the package-level constructors.
var std Builder

// Const builds a constant leaf.
func Const(v float64) *Node { return std.Const(v) }

// Var builds a variable leaf.
func Var(name string) *Node { return std.Var(name) }

// Add builds a+b.
func Add(a, b *Node) *Node { return std.Add(a, b) }

// Mul builds a*b.
func Mul(a, b *Node) *Node { return std.Mul(a, b) }

// Pow builds base^exp.
func Pow(base, exp *Node) *Node { return std.Pow(base, exp) }

// Sin builds sin(x).
func Sin(x *Node) *Node { return std.Sin(x) }

// Cos builds cos(x).
func Cos(x *Node) *Node { return std.Cos(x) }

// Log builds the logarithm of value in the given base. The base is the
// first operand.
func Log(base, value *Node) *Node { return std.Log(base, value) }

// Ln builds the natural logarithm, sugar for Log(Const(e), value).
func Ln(value *Node) *Node { return std.Ln(value) }

// Derivative returns the partial derivative of n with respect to variable,
// built with the default settings.
func Derivative(n *Node, variable string) *Node { return std.Derivative(n, variable) }

// SimplifyTree re-canonicalizes a whole tree depth-first with the default
// settings. Idempotent on trees that are already simplified.
func SimplifyTree(n *Node) *Node { return std.SimplifyTree(n) }

// Infix sugar. Go has no operator overloading, so a+b and a*b over nodes and
// numbers are spelled as methods; all of them go through the ordinary
// constructors (default settings) and therefore simplify on the way.

// Plus builds n+other.
func (n *Node) Plus(other *Node) *Node { return Add(n, other) }

// Times builds n*other.
func (n *Node) Times(other *Node) *Node { return Mul(n, other) }

// PlusK builds n+k.
func (n *Node) PlusK(k float64) *Node { return Add(n, Const(k)) }

// TimesK builds n*k.
func (n *Node) TimesK(k float64) *Node { return Mul(n, Const(k)) }

// Scale builds k*n.
func Scale(k float64, n *Node) *Node { return Mul(Const(k), n) }

// Shift builds k+n.
func Shift(k float64, n *Node) *Node { return Add(Const(k), n) }

// E mirrors math.E for readability at call sites building explicit bases.
const E = math.E
