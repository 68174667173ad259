package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Function != "poly" {
		t.Errorf("expected function poly, got %s", cfg.Function)
	}
	if cfg.Samples <= 0 {
		t.Error("samples should be positive")
	}
	if cfg.From >= cfg.To {
		t.Error("range should be increasing")
	}
	if !cfg.Simplify {
		t.Error("simplification should default to on")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")

	cfg := DefaultConfig()
	cfg.Function = "trig"
	cfg.Variable = "y"
	cfg.At = map[string]float64{"x": 1, "y": 2}
	cfg.Tolerance = 1e-4

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Function != "trig" || loaded.Variable != "y" {
		t.Errorf("unexpected config: %+v", loaded)
	}
	if loaded.At["y"] != 2 {
		t.Errorf("expected y binding 2, got %f", loaded.At["y"])
	}
	if loaded.Tolerance != 1e-4 {
		t.Errorf("expected tolerance 1e-4, got %g", loaded.Tolerance)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("function: linear\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Function != "linear" {
		t.Errorf("expected linear, got %s", cfg.Function)
	}
	if cfg.Samples != DefaultSamples {
		t.Errorf("expected default samples, got %d", cfg.Samples)
	}
}
