// Package config loads and saves sweep settings as YAML.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFunction = "poly"
	DefaultVariable = "x"
	DefaultFrom     = -4.0
	DefaultTo       = 4.0
	DefaultSamples  = 80
)

type Config struct {
	Function  string             `yaml:"function"`
	Variable  string             `yaml:"variable"`
	From      float64            `yaml:"from"`
	To        float64            `yaml:"to"`
	Samples   int                `yaml:"samples"`
	At        map[string]float64 `yaml:"at"`
	Simplify  bool               `yaml:"simplify"`
	Trace     bool               `yaml:"trace"`
	Tolerance float64            `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	return &Config{
		Function: DefaultFunction,
		Variable: DefaultVariable,
		From:     DefaultFrom,
		To:       DefaultTo,
		Samples:  DefaultSamples,
		Simplify: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
