package expr

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConstantFold(t *testing.T) {
	n := Add(Const(2), Const(3))
	if n.Op() != OpConst {
		t.Fatalf("expected Const node, got %s", n.Op())
	}
	if n.Value() != 5 {
		t.Errorf("expected 5, got %f", n.Value())
	}
	if n.String() != "5" {
		t.Errorf("expected rendering 5, got %s", n)
	}
}

func TestRewriteRules(t *testing.T) {
	tests := []struct {
		name     string
		node     *Node
		expected string
	}{
		{"add zero right", Add(Var("x"), Const(0)), "x"},
		{"add zero left", Add(Const(0), Var("x")), "x"},
		{"mul one right", Mul(Var("x"), Const(1)), "x"},
		{"mul one left", Mul(Const(1), Var("x")), "x"},
		{"mul zero right", Mul(Var("x"), Const(0)), "0"},
		{"mul zero left", Mul(Const(0), Var("x")), "0"},
		{"pow one", Pow(Var("x"), Const(1)), "x"},
		{"pow zero", Pow(Var("x"), Const(0)), "1"},
		{"pow fold", Pow(Const(2), Const(10)), "1024"},
		{"sin fold", Sin(Const(0)), "0"},
		{"cos fold", Cos(Const(0)), "1"},
		{"log fold", Log(Const(E), Const(1)), "0"},
		{"mul fold", Mul(Const(6), Const(7)), "42"},
		{"untouched", Add(Var("x"), Var("y")), "Add(x, y)"},
	}

	for _, tt := range tests {
		if got := tt.node.String(); got != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.expected, got)
		}
	}
}

func TestIdentityEliminationReturnsOperand(t *testing.T) {
	x := Var("x")
	n := Mul(Const(1), x)
	if n != x {
		t.Errorf("expected the identity rewrite to return the x node itself, got %s", n)
	}
}

func TestNearTolerance(t *testing.T) {
	// 1e-6 is within the default absolute tolerance of zero.
	n := Add(Var("x"), Const(1e-6))
	if n.String() != "x" {
		t.Errorf("expected x, got %s", n)
	}

	n = Add(Var("x"), Const(1e-4))
	if n.String() != "Add(x, 0.0001)" {
		t.Errorf("expected Add(x, 0.0001), got %s", n)
	}
}

func TestBuilderTolOverride(t *testing.T) {
	b := Builder{Tol: 1e-2}
	n := b.Mul(b.Var("x"), b.Const(0.999))
	if n.String() != "x" {
		t.Errorf("expected x under loose tolerance, got %s", n)
	}
}

func TestDisableSimplify(t *testing.T) {
	b := Builder{DisableSimplify: true}
	n := b.Add(b.Const(2), b.Const(3))
	if n.String() != "Add(2, 3)" {
		t.Errorf("expected raw Add(2, 3), got %s", n)
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	b := Builder{Trace: &buf}
	b.Mul(b.Const(1), b.Var("x"))
	if !strings.Contains(buf.String(), "simplified Mul(1, x) to x") {
		t.Errorf("expected trace line, got %q", buf.String())
	}
}

func TestSimplifyTree(t *testing.T) {
	raw := Builder{DisableSimplify: true}
	// (x*1) + (2+3), assembled without any simplification
	n := raw.Add(raw.Mul(raw.Var("x"), raw.Const(1)), raw.Add(raw.Const(2), raw.Const(3)))
	if n.String() != "Add(Mul(x, 1), Add(2, 3))" {
		t.Fatalf("unexpected raw tree: %s", n)
	}

	s := SimplifyTree(n)
	if s.String() != "Add(x, 5)" {
		t.Errorf("expected Add(x, 5), got %s", s)
	}

	// Idempotence: a second pass must not change the rendering.
	if again := SimplifyTree(s); again.String() != s.String() {
		t.Errorf("resimplification not idempotent: %s vs %s", s, again)
	}
}

func TestCheckArity(t *testing.T) {
	n := Add(Mul(Const(3), Var("x")), Sin(Var("y")))
	if err := n.Check(); err != nil {
		t.Errorf("constructor-built tree should pass: %v", err)
	}

	bad := &Node{op: OpAdd, args: []*Node{Var("x")}}
	err := bad.Check()
	if !errors.Is(err, ErrArity) {
		t.Errorf("expected ErrArity, got %v", err)
	}
}
