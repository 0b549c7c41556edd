package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
epochs: 25
batch_size: 8
learning_rate: 0.2
eval_samples: 100
workers: 4
samples: 300
seed: 7
weights: out.weights
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Epochs)
	assert.Equal(t, 8, cfg.BatchSize)
	assert.Equal(t, 0.2, cfg.LearningRate)
	assert.Equal(t, 100, cfg.EvalSamples)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 300, cfg.Samples)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "out.weights", cfg.Weights)
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := writeConfig(t, "epochs: 3\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Epochs)
	assert.Equal(t, DefaultConfig().BatchSize, cfg.BatchSize)
	assert.Equal(t, DefaultConfig().LearningRate, cfg.LearningRate)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "epochs: -1\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides(Overrides{Epochs: 99, LearningRate: 0.5, Weights: "w.bin"})

	assert.Equal(t, 99, cfg.Epochs)
	assert.Equal(t, 0.5, cfg.LearningRate)
	assert.Equal(t, "w.bin", cfg.Weights)
	assert.Equal(t, DefaultConfig().BatchSize, cfg.BatchSize, "unset overrides keep existing values")
}
