package expr

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	at := Bindings{"x": 2, "y": 3}
	tests := []struct {
		name     string
		node     *Node
		expected float64
	}{
		{"const", Const(7), 7},
		{"var", Var("x"), 2},
		{"add", Add(Var("x"), Var("y")), 5},
		{"mul", Mul(Var("x"), Var("y")), 6},
		{"pow", Pow(Var("x"), Var("y")), 8},
		{"sin", Sin(Var("x")), math.Sin(2)},
		{"cos", Cos(Var("x")), math.Cos(2)},
		{"log base first", Log(Var("x"), Var("y")), math.Log(3) / math.Log(2)},
	}

	for _, tt := range tests {
		v, err := Evaluate(tt.node, at)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if math.Abs(v-tt.expected) > 1e-12 {
			t.Errorf("%s: expected %f, got %f", tt.name, tt.expected, v)
		}
	}
}

func TestEvaluateUnboundVar(t *testing.T) {
	f := Add(Var("x"), Var("z"))
	_, err := Evaluate(f, Bindings{"x": 1})
	if !errors.Is(err, ErrUnboundVar) {
		t.Fatalf("expected ErrUnboundVar, got %v", err)
	}
	if !strings.Contains(err.Error(), "z") {
		t.Errorf("error should name the variable: %v", err)
	}
}

func TestEvaluateDomainEdges(t *testing.T) {
	// ln of a negative argument comes back as NaN, not an error.
	v, err := Evaluate(Ln(Var("x")), Bindings{"x": -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(v) {
		t.Errorf("expected NaN, got %f", v)
	}

	// ln(0) is -Inf.
	v, err = Evaluate(Ln(Var("x")), Bindings{"x": 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(v, -1) {
		t.Errorf("expected -Inf, got %f", v)
	}
}

func TestEvaluateFreshWalk(t *testing.T) {
	f := Mul(Var("x"), Var("x"))
	if v, _ := Evaluate(f, Bindings{"x": 3}); v != 9 {
		t.Errorf("expected 9, got %f", v)
	}
	// Same tree, new bindings: nothing is cached between calls.
	if v, _ := Evaluate(f, Bindings{"x": 4}); v != 16 {
		t.Errorf("expected 16, got %f", v)
	}
}

func TestClone(t *testing.T) {
	f := Scale(2, Sin(Var("x")))
	c := f.Clone()
	if c == f {
		t.Fatal("clone returned the same node")
	}
	if c.String() != f.String() {
		t.Errorf("clone renders differently: %s vs %s", c, f)
	}
	if err := c.Check(); err != nil {
		t.Errorf("clone fails arity check: %v", err)
	}
}
