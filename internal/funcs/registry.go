// Package funcs holds the built-in sample expressions the CLI demonstrates,
// plots, and differentiates. Each sample rebuilds its tree on demand so no
// node is ever shared between callers.
package funcs

import (
	"fmt"
	"sort"

	"github.com/rvask/symgrad/internal/expr"
)

// Sample is one named demonstration function.
type Sample struct {
	Name    string
	Formula string
	Vars    []string
	// At is the classic evaluation point used by the demo output.
	At expr.Bindings
	// Build returns a fresh expression tree each call.
	Build func() *expr.Node
}

var samples = map[string]Sample{
	"linear": {
		Name:    "linear",
		Formula: "3x + 4y + 5",
		Vars:    []string{"x", "y"},
		At:      expr.Bindings{"x": 1, "y": 2},
		Build: func() *expr.Node {
			return expr.Scale(3, expr.Var("x")).Plus(expr.Scale(4, expr.Var("y"))).PlusK(5)
		},
	},
	"product": {
		Name:    "product",
		Formula: "3xy + 5",
		Vars:    []string{"x", "y"},
		At:      expr.Bindings{"x": 1, "y": 2},
		Build: func() *expr.Node {
			return expr.Scale(3, expr.Var("x")).Times(expr.Var("y")).PlusK(5)
		},
	},
	"triple": {
		Name:    "triple",
		Formula: "5x + 3y + 4xyz",
		Vars:    []string{"x", "y", "z"},
		At:      expr.Bindings{"x": 1, "y": 2, "z": 3},
		Build: func() *expr.Node {
			xyz := expr.Scale(4, expr.Var("x")).Times(expr.Var("y")).Times(expr.Var("z"))
			return expr.Scale(5, expr.Var("x")).Plus(expr.Scale(3, expr.Var("y"))).Plus(xyz)
		},
	},
	"trig": {
		Name:    "trig",
		Formula: "2sin(x) + 3cos(y)",
		Vars:    []string{"x", "y"},
		At:      expr.Bindings{"x": 1, "y": 2},
		Build: func() *expr.Node {
			return expr.Scale(2, expr.Sin(expr.Var("x"))).Plus(expr.Scale(3, expr.Cos(expr.Var("y"))))
		},
	},
	"logs": {
		Name:    "logs",
		Formula: "2log_3(x) + ln(y)",
		Vars:    []string{"x", "y"},
		At:      expr.Bindings{"x": 1, "y": 2},
		Build: func() *expr.Node {
			return expr.Scale(2, expr.Log(expr.Const(3), expr.Var("x"))).Plus(expr.Ln(expr.Var("y")))
		},
	},
	"tanln": {
		Name:    "tanln",
		Formula: "tan(ln(x/y))",
		Vars:    []string{"x", "y"},
		At:      expr.Bindings{"x": 1, "y": 2},
		Build: func() *expr.Node {
			// tan spelled as sin * cos^-1; x/y as x * y^-1. The inner
			// ln(x/y) is rebuilt for each use since trees do not share.
			inner := func() *expr.Node {
				return expr.Ln(expr.Var("x").Times(expr.Pow(expr.Var("y"), expr.Const(-1))))
			}
			return expr.Sin(inner()).Times(expr.Pow(expr.Cos(inner()), expr.Const(-1)))
		},
	},
	"poly": {
		Name:    "poly",
		Formula: "x^3 + 4x^2 - 12",
		Vars:    []string{"x"},
		At:      expr.Bindings{"x": 2},
		Build: func() *expr.Node {
			cube := expr.Pow(expr.Var("x"), expr.Const(3))
			square := expr.Scale(4, expr.Pow(expr.Var("x"), expr.Const(2)))
			return cube.Plus(square).PlusK(-12)
		},
	},
}

// Get looks up a sample by name.
func Get(name string) (Sample, error) {
	s, ok := samples[name]
	if !ok {
		return Sample{}, fmt.Errorf("unknown function: %s (available: %v)", name, Names())
	}
	return s, nil
}

// All returns every sample sorted by name.
func All() []Sample {
	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted sample names.
func Names() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
