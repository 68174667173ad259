package expr

import (
	"fmt"
	"io"
	"math"
)

// DefaultTol is the absolute tolerance used to recognize a constant operand
// as "equal to" an identity value (0 or 1) during simplification.
const DefaultTol = 1e-5

// Builder carries construction settings. The zero value simplifies every
// node with DefaultTol and no trace, which is what the package-level
// constructors use.
type Builder struct {
	// DisableSimplify skips the per-construction rewrite entirely, so
	// trees come out exactly as written. Useful when debugging the
	// simplifier itself.
	DisableSimplify bool

	// Trace, when non-nil, receives one line per rewrite the simplifier
	// performs.
	Trace io.Writer

	// Tol overrides DefaultTol when positive. The test is absolute, so it
	// can misfire on very large magnitudes; callers folding such constants
	// should set it accordingly.
	Tol float64
}

func (b *Builder) Const(v float64) *Node { return b.finish(&Node{op: OpConst, value: v}) }
func (b *Builder) Var(name string) *Node { return b.finish(&Node{op: OpVar, name: name}) }

func (b *Builder) Add(x, y *Node) *Node {
	return b.finish(&Node{op: OpAdd, args: []*Node{x, y}})
}

func (b *Builder) Mul(x, y *Node) *Node {
	return b.finish(&Node{op: OpMul, args: []*Node{x, y}})
}

func (b *Builder) Pow(base, exp *Node) *Node {
	return b.finish(&Node{op: OpPow, args: []*Node{base, exp}})
}

func (b *Builder) Sin(x *Node) *Node {
	return b.finish(&Node{op: OpSin, args: []*Node{x}})
}

func (b *Builder) Cos(x *Node) *Node {
	return b.finish(&Node{op: OpCos, args: []*Node{x}})
}

func (b *Builder) Log(base, value *Node) *Node {
	return b.finish(&Node{op: OpLog, args: []*Node{base, value}})
}

func (b *Builder) Ln(value *Node) *Node { return b.Log(b.Const(math.E), value) }

// finish is the tail of every constructor: run the node through one
// simplification step unless disabled.
func (b *Builder) finish(n *Node) *Node {
	if b.DisableSimplify {
		return n
	}
	return b.rewrite(n)
}

// rewrite applies at most one rule to n, assuming n's operands are already
// simplified. It returns either a replacement node or n unchanged; it never
// leaves n with an operand count that disagrees with its tag.
func (b *Builder) rewrite(n *Node) *Node {
	s := b.rewriteOnce(n)
	if s != n && b.Trace != nil {
		fmt.Fprintf(b.Trace, "simplified %s to %s\n", n, s)
	}
	return s
}

func (b *Builder) rewriteOnce(n *Node) *Node {
	tol := b.Tol
	if tol <= 0 {
		tol = DefaultTol
	}
	// near reports whether a node is a constant within tol of v.
	near := func(c *Node, v float64) bool {
		return c.op == OpConst && math.Abs(c.value-v) < tol
	}
	con := func(v float64) *Node { return &Node{op: OpConst, value: v} }

	switch n.op {
	case OpAdd:
		a, c := n.args[0], n.args[1]
		if near(a, 0) {
			return c
		}
		if near(c, 0) {
			return a
		}
		if a.op == OpConst && c.op == OpConst {
			return con(a.value + c.value)
		}
	case OpMul:
		a, c := n.args[0], n.args[1]
		if near(a, 1) {
			return c
		}
		if near(c, 1) {
			return a
		}
		if near(a, 0) || near(c, 0) {
			return con(0)
		}
		if a.op == OpConst && c.op == OpConst {
			return con(a.value * c.value)
		}
	case OpPow:
		base, exp := n.args[0], n.args[1]
		if near(exp, 1) {
			return base
		}
		if near(exp, 0) {
			return con(1)
		}
		if base.op == OpConst && exp.op == OpConst {
			return con(math.Pow(base.value, exp.value))
		}
	case OpSin:
		if a := n.args[0]; a.op == OpConst {
			return con(math.Sin(a.value))
		}
	case OpCos:
		if a := n.args[0]; a.op == OpConst {
			return con(math.Cos(a.value))
		}
	case OpLog:
		base, value := n.args[0], n.args[1]
		if base.op == OpConst && value.op == OpConst {
			return con(math.Log(value.value) / math.Log(base.value))
		}
	case OpVar, OpConst:
	}
	return n
}

// SimplifyTree re-simplifies a whole tree depth-first: operands first, then
// the node itself. It rebuilds rather than mutates, runs even on a builder
// with DisableSimplify set, and is idempotent on already-simplified trees.
// Constructor-built trees are simplified as they are assembled, so this is
// only needed for trees assembled by hand or rewritten after the fact.
func (b *Builder) SimplifyTree(n *Node) *Node {
	if len(n.args) == 0 {
		return n
	}
	args := make([]*Node, len(n.args))
	for i, a := range n.args {
		args[i] = b.SimplifyTree(a)
	}
	return b.rewrite(&Node{op: n.op, args: args, name: n.name, value: n.value})
}
