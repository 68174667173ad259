package expr

// Derivative computes the partial derivative of n with respect to the named
// variable, as a new tree. Purely structural: no part of the input is
// evaluated or mutated, and every intermediate node goes through the
// builder's constructors, so the result simplifies as it is assembled.
//
// The Pow rule uses the combined log-derivative form, which covers variable
// bases and variable exponents at once but evaluates ln(base); results are
// real only for positive bases. Division never appears as an operator: it is
// spelled as multiplication by a -1 (or -2) power throughout.
func (b *Builder) Derivative(n *Node, variable string) *Node {
	switch n.op {
	case OpVar:
		if n.name == variable {
			return b.Const(1)
		}
		return b.Const(0)
	case OpConst:
		return b.Const(0)
	case OpAdd:
		// (a + b)' = a' + b'
		da := b.Derivative(n.args[0], variable)
		db := b.Derivative(n.args[1], variable)
		return b.Add(da, db)
	case OpMul:
		// (a * b)' = a'*b + a*b'
		da := b.Derivative(n.args[0], variable)
		db := b.Derivative(n.args[1], variable)
		a := n.args[0].Clone()
		c := n.args[1].Clone()
		return b.Add(b.Mul(da, c), b.Mul(a, db))
	case OpPow:
		// (a ^ b)' = a^b * (b'*ln(a) + b*a'*a^-1)
		da := b.Derivative(n.args[0], variable)
		db := b.Derivative(n.args[1], variable)
		a := n.args[0]
		c := n.args[1]
		return b.Mul(
			b.Pow(a.Clone(), c.Clone()),
			b.Add(
				b.Mul(db, b.Ln(a.Clone())),
				b.Mul(b.Mul(c.Clone(), da), b.Pow(a.Clone(), b.Const(-1))),
			),
		)
	case OpSin:
		// (sin(a))' = cos(a) * a'
		da := b.Derivative(n.args[0], variable)
		return b.Mul(b.Cos(n.args[0].Clone()), da)
	case OpCos:
		// (cos(a))' = -1 * sin(a) * a'
		da := b.Derivative(n.args[0], variable)
		return b.Mul(b.Mul(b.Const(-1), b.Sin(n.args[0].Clone())), da)
	default:
		// (log_a(b))' = (b'*b^-1*ln(a) + -1*a'*a^-1*ln(b)) * ln(a)^-2,
		// the quotient rule on ln(b)/ln(a) with division expanded away.
		da := b.Derivative(n.args[0], variable)
		db := b.Derivative(n.args[1], variable)
		a := n.args[0]
		c := n.args[1]
		return b.Mul(
			b.Add(
				b.Mul(b.Mul(db, b.Pow(c.Clone(), b.Const(-1))), b.Ln(a.Clone())),
				b.Mul(b.Mul(b.Mul(b.Const(-1), da), b.Pow(a.Clone(), b.Const(-1))), b.Ln(c.Clone())),
			),
			b.Pow(b.Ln(a.Clone()), b.Const(-2)),
		)
	}
}
