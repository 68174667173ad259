// Package numdiff provides finite-difference derivative estimates. It sits
// outside the symbolic engine and is used to cross-check it and to handle
// vector-valued functions the engine does not model.
package numdiff

import (
	"math"

	"github.com/rvask/symgrad/internal/expr"
)

// VectorFunc maps a point to a vector of outputs.
type VectorFunc func(x []float64) []float64

// Jacobian estimates the derivative of f at x by forward differences, one
// input coordinate at a time. Row i of the result is df/dx_i across all
// outputs. When h <= 0 the step for coordinate i defaults to
// sqrt(machine epsilon) * x_i, falling back to sqrt(machine epsilon) when
// x_i is zero.
func Jacobian(f VectorFunc, x []float64, h float64) [][]float64 {
	fx := f(x)
	jac := make([][]float64, len(x))

	for i := range x {
		step := h
		if step <= 0 {
			step = math.Sqrt(eps) * x[i]
			if step == 0 {
				step = math.Sqrt(eps)
			}
		}

		xh := make([]float64, len(x))
		copy(xh, x)
		xh[i] += step

		fxh := f(xh)
		row := make([]float64, len(fx))
		for j := range fx {
			row[j] = (fxh[j] - fx[j]) / step
		}
		jac[i] = row
	}

	return jac
}

// Forward is the crude variant that perturbs every coordinate at once with
// the same step. It only resolves the diagonal of the Jacobian for functions
// whose outputs each depend on a single input; kept as the cheap estimate.
func Forward(f VectorFunc, x []float64, h float64) []float64 {
	if h <= 0 {
		h = 1e-5
	}
	xh := make([]float64, len(x))
	for i, v := range x {
		xh[i] = v + h
	}
	fx := f(x)
	fxh := f(xh)
	out := make([]float64, len(fx))
	for i := range fx {
		out[i] = (fxh[i] - fx[i]) / h
	}
	return out
}

// Gradient estimates the partial derivatives of a symbolic expression at a
// point, in the order given by vars. Used to cross-check the structural
// differentiator.
func Gradient(n *expr.Node, vars []string, at expr.Bindings, h float64) ([]float64, error) {
	x := make([]float64, len(vars))
	for i, name := range vars {
		x[i] = at[name]
	}

	var evalErr error
	f := func(x []float64) []float64 {
		vs := make(expr.Bindings, len(vars))
		for i, name := range vars {
			vs[name] = x[i]
		}
		v, err := expr.Evaluate(n, vs)
		if err != nil && evalErr == nil {
			evalErr = err
		}
		return []float64{v}
	}

	jac := Jacobian(f, x, h)
	if evalErr != nil {
		return nil, evalErr
	}

	grad := make([]float64, len(vars))
	for i := range vars {
		grad[i] = jac[i][0]
	}
	return grad, nil
}

// machine epsilon for float64
const eps = 2.220446049250313e-16
