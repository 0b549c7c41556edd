package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Epochs       int     `yaml:"epochs"`
	BatchSize    int     `yaml:"batch_size"`
	LearningRate float64 `yaml:"learning_rate"`
	EvalSamples  int     `yaml:"eval_samples"`
	Workers      int     `yaml:"workers"`
	Samples      int     `yaml:"samples"`
	Seed         int64   `yaml:"seed"`
	Weights      string  `yaml:"weights"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Epochs:       10,
		BatchSize:    16,
		LearningRate: 0.05,
		EvalSamples:  0,
		Workers:      0,
		Samples:      500,
		Seed:         1,
		Weights:      "",
	}
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Epochs       int
	BatchSize    int
	LearningRate float64
	EvalSamples  int
	Workers      int
	Samples      int
	Seed         int64
	Weights      string
}

// Load reads and validates a Config from YAML.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.BatchSize > 0 {
		c.BatchSize = o.BatchSize
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.EvalSamples > 0 {
		c.EvalSamples = o.EvalSamples
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
	if o.Samples > 0 {
		c.Samples = o.Samples
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Weights != "" {
		c.Weights = o.Weights
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Epochs <= 0 {
		return errors.New("epochs must be positive")
	}
	if c.BatchSize <= 0 {
		return errors.New("batch_size must be positive")
	}
	if c.LearningRate <= 0 {
		return errors.New("learning_rate must be positive")
	}
	if c.Samples <= 0 {
		return errors.New("samples must be positive")
	}
	if c.EvalSamples < 0 || c.Workers < 0 {
		return errors.New("eval_samples and workers must not be negative")
	}
	return nil
}
