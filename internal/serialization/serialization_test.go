package serialization

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

func mustTensor(t *testing.T, data []float64, shape tensor.Shape) *tensor.Tensor {
	t.Helper()
	ten, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return ten
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.weights")

	layers := []LayerParams{
		{
			Trainable: true,
			Weight:    mustTensor(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2}),
			Bias:      mustTensor(t, []float64{0.5, -0.5, 0.25}, tensor.Shape{3, 1}),
		},
		{Trainable: false},
		{
			Trainable: true,
			Weight:    mustTensor(t, []float64{-1e300, 1e-300, 0, 3.14159}, tensor.Shape{2, 2}),
			Bias:      mustTensor(t, []float64{7, 8}, tensor.Shape{2, 1}),
		},
	}

	require.NoError(t, WriteSnapshot(path, layers))

	snap, err := ReadSnapshot(path)
	require.NoError(t, err)
	require.Len(t, snap.Layers, 3)
	assert.NotEmpty(t, snap.SnapshotID)
	assert.False(t, snap.CreatedAt.IsZero())

	for i, want := range layers {
		got := snap.Layers[i]
		require.Equal(t, want.Trainable, got.Trainable, "layer %d", i)
		if !want.Trainable {
			assert.Nil(t, got.Weight)
			assert.Nil(t, got.Bias)
			continue
		}
		assert.Equal(t, want.Weight.Shape(), got.Weight.Shape())
		assert.Equal(t, want.Weight.Data(), got.Weight.Data(), "layer %d weight", i)
		assert.Equal(t, want.Bias.Shape(), got.Bias.Shape())
		assert.Equal(t, want.Bias.Data(), got.Bias.Data(), "layer %d bias", i)
	}
}

func TestReadSnapshotOwnsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.weights")
	w := mustTensor(t, []float64{1, 2}, tensor.Shape{2, 1})
	b := mustTensor(t, []float64{3}, tensor.Shape{1, 1})
	require.NoError(t, WriteSnapshot(path, []LayerParams{{Trainable: true, Weight: w, Bias: b}}))

	snap, err := ReadSnapshot(path)
	require.NoError(t, err)

	w.Data()[0] = 99
	assert.Equal(t, 1.0, snap.Layers[0].Weight.Data()[0])
}

func TestReadSnapshotInvalidMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.weights")
	require.NoError(t, os.WriteFile(path, []byte("NOPE not a weights file"), 0o600))

	_, err := ReadSnapshot(path)
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestReadSnapshotUnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.weights")
	require.NoError(t, WriteSnapshot(path, []LayerParams{{Trainable: false}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[4] = 0xFF // Bump the little-endian version field.
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	_, err = ReadSnapshot(path)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestReadSnapshotMissingFile(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "absent.weights"))
	assert.Error(t, err)
}

func TestWriteSnapshotMissingParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.weights")
	err := WriteSnapshot(path, []LayerParams{{Trainable: true}})
	assert.Error(t, err)
}
