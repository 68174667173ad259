package funcs

import (
	"math"
	"testing"

	"github.com/rvask/symgrad/internal/expr"
)

func TestGet(t *testing.T) {
	s, err := Get("linear")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "linear" {
		t.Errorf("expected linear, got %s", s.Name)
	}

	if _, err := Get("nonexistent"); err == nil {
		t.Error("expected error for unknown function")
	}
}

func TestAllSamplesEvaluate(t *testing.T) {
	expected := map[string]float64{
		"linear":  16, // 3+8+5
		"product": 11, // 6+5
		"triple":  35, // 5+6+24
		"trig":    2*math.Sin(1) + 3*math.Cos(2),
		"logs":    math.Log(2), // log_3(1)=0
		"tanln":   math.Tan(math.Log(0.5)),
		"poly":    12, // 8+16-12
	}

	for _, s := range All() {
		f := s.Build()
		if err := f.Check(); err != nil {
			t.Errorf("%s: %v", s.Name, err)
			continue
		}
		v, err := expr.Evaluate(f, s.At)
		if err != nil {
			t.Errorf("%s: %v", s.Name, err)
			continue
		}
		if math.Abs(v-expected[s.Name]) > 1e-9 {
			t.Errorf("%s at %v: expected %f, got %f", s.Name, s.At, expected[s.Name], v)
		}
	}
}

func TestBuildReturnsFreshTrees(t *testing.T) {
	s, _ := Get("product")
	a := s.Build()
	b := s.Build()
	if a == b {
		t.Error("expected distinct trees from consecutive builds")
	}
}

func TestSampleDerivatives(t *testing.T) {
	// Spot-check the classic demo values.
	tests := []struct {
		fn, wrt  string
		expected float64
	}{
		{"linear", "x", 3},
		{"linear", "y", 4},
		{"product", "x", 6},
		{"product", "y", 3},
		{"triple", "x", 29}, // 5 + 4yz at (1,2,3)
		{"triple", "y", 15}, // 3 + 4xz
		{"triple", "z", 8},  // 4xy
		{"trig", "x", 2 * math.Cos(1)},
		{"trig", "y", -3 * math.Sin(2)},
	}

	for _, tt := range tests {
		s, err := Get(tt.fn)
		if err != nil {
			t.Fatal(err)
		}
		d := expr.Derivative(s.Build(), tt.wrt)
		v, err := expr.Evaluate(d, s.At)
		if err != nil {
			t.Errorf("%s wrt %s: %v", tt.fn, tt.wrt, err)
			continue
		}
		if math.Abs(v-tt.expected) > 1e-9 {
			t.Errorf("%s wrt %s: expected %f, got %f", tt.fn, tt.wrt, v, tt.expected)
		}
	}
}
