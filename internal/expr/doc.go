// Package expr implements a symbolic expression tree over a fixed set of
// elementary operations, with algebraic simplification on construction,
// structural differentiation, and numeric evaluation.
//
// The building blocks:
//
//   - [Node]: one element of the tree, an [Op] tag plus owned operands
//   - [Builder]: construction settings (simplification, trace, tolerance)
//   - [Derivative]: partial derivative of a tree as a new tree
//   - [Evaluate]: reduce a tree to a float64 under variable [Bindings]
//
// # Example
//
//	x := expr.Var("x")
//	f := expr.Scale(3, x).PlusK(5)
//	df := expr.Derivative(f, "x")
//	v, _ := expr.Evaluate(df, expr.Bindings{"x": 1})
//
// Trees are strict: every node owns its operands exclusively, and nothing is
// mutated after construction. Reusing a subexpression under two parents
// requires [Node.Clone].
package expr
