package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// ReadSnapshot reads a weights file written by WriteSnapshot.
//
// The returned snapshot owns fresh tensors; it shares nothing with the
// reader or the file.
func ReadSnapshot(path string) (*Snapshot, error) {
	//nolint:gosec // G304: the path is caller-chosen by design
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(file, magic); err != nil {
		return nil, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return nil, ErrInvalidMagic
	}

	var version uint32
	if err := binary.Read(file, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("failed to read version: %w", err)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	var headerSize uint64
	if err := binary.Read(file, binary.LittleEndian, &headerSize); err != nil {
		return nil, fmt.Errorf("failed to read header size: %w", err)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(file, headerJSON); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("failed to unmarshal header: %w", err)
	}

	// Skip the alignment padding before the data section.
	read := int64(len(MagicBytes)) + 4 + 8 + int64(headerSize)
	if pad := padding(read); pad > 0 {
		if _, err := file.Seek(pad, io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("failed to seek past padding: %w", err)
		}
	}

	snap := &Snapshot{
		SnapshotID: header.SnapshotID,
		CreatedAt:  header.CreatedAt,
		Layers:     make([]LayerParams, 0, len(header.Layers)),
	}
	for i, entry := range header.Layers {
		if !entry.Trainable {
			snap.Layers = append(snap.Layers, LayerParams{Trainable: false})
			continue
		}
		if entry.Weight == nil || entry.Bias == nil {
			return nil, fmt.Errorf("%w: trainable layer %d has missing arrays", ErrCorruptHeader, i)
		}
		w, err := readArray(file, entry.Weight)
		if err != nil {
			return nil, fmt.Errorf("layer %d weight: %w", i, err)
		}
		b, err := readArray(file, entry.Bias)
		if err != nil {
			return nil, fmt.Errorf("layer %d bias: %w", i, err)
		}
		snap.Layers = append(snap.Layers, LayerParams{Trainable: true, Weight: w, Bias: b})
	}
	return snap, nil
}

// readArray reads one tensor's values. Entries are written in order, so a
// sequential read matches the recorded offsets.
func readArray(file *os.File, entry *ArrayEntry) (*tensor.Tensor, error) {
	n := 1
	for _, d := range entry.Shape {
		if d <= 0 {
			return nil, fmt.Errorf("%w: non-positive dimension %d", ErrCorruptHeader, d)
		}
		n *= d
	}
	if int64(n)*8 != entry.Size {
		return nil, fmt.Errorf("%w: size %d does not match shape %v", ErrCorruptHeader, entry.Size, entry.Shape)
	}

	buf := make([]byte, entry.Size)
	if _, err := io.ReadFull(file, buf); err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return tensor.FromSlice(values, tensor.Shape(entry.Shape))
}
