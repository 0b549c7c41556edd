package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
)

// WriteSnapshot writes the layer parameters to path in the weights format.
//
// The file is created or truncated. Layer order in the file matches the
// order of layers.
func WriteSnapshot(path string, layers []LayerParams) error {
	header := Header{
		FormatVersion: FormatVersion,
		SnapshotID:    uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Layers:        make([]LayerEntry, 0, len(layers)),
	}

	// Lay out the data section and build the header entries.
	var offset int64
	for _, lp := range layers {
		if !lp.Trainable {
			header.Layers = append(header.Layers, LayerEntry{Trainable: false})
			continue
		}
		if lp.Weight == nil || lp.Bias == nil {
			return fmt.Errorf("serialization: trainable layer %d has missing parameters", len(header.Layers))
		}
		w := arrayEntry(lp.Weight.Shape(), &offset)
		b := arrayEntry(lp.Bias.Shape(), &offset)
		header.Layers = append(header.Layers, LayerEntry{Trainable: true, Weight: w, Bias: b})
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	//nolint:gosec // G304: the path is caller-chosen by design
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(MagicBytes); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	if err := binary.Write(file, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	if err := binary.Write(file, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := file.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// Pad so the data section starts on an aligned boundary.
	written := int64(len(MagicBytes)) + 4 + 8 + int64(len(headerJSON))
	if pad := padding(written); pad > 0 {
		if _, err := file.Write(make([]byte, pad)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	for _, lp := range layers {
		if !lp.Trainable {
			continue
		}
		if err := writeValues(file, lp.Weight.Data()); err != nil {
			return err
		}
		if err := writeValues(file, lp.Bias.Data()); err != nil {
			return err
		}
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync file: %w", err)
	}
	return nil
}

func writeValues(file *os.File, values []float64) error {
	buf := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	if _, err := file.Write(buf); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}
	return nil
}

func arrayEntry(shape []int, offset *int64) *ArrayEntry {
	n := 1
	for _, d := range shape {
		n *= d
	}
	size := int64(n) * 8
	e := &ArrayEntry{
		Shape:  append([]int(nil), shape...),
		Offset: *offset,
		Size:   size,
	}
	*offset += size
	return e
}

func padding(written int64) int64 {
	rem := written % HeaderAlignment
	if rem == 0 {
		return 0
	}
	return HeaderAlignment - rem
}
