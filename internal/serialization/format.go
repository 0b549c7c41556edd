// Package serialization implements the on-disk weights format.
//
// A weights file is a single self-describing blob:
//
//	magic bytes "CNNW" (4 bytes)
//	format version (uint32, little endian)
//	header size (uint64, little endian)
//	JSON header (variable length)
//	zero padding up to the next 64-byte boundary
//	tensor data section (float64 values, little endian, at header offsets)
//
// The header carries one ordered entry per network layer: trainable entries
// name the offsets of their weight and bias arrays, non-trainable entries
// are bare markers. Layer order and shapes must match the architecture that
// wrote the file; nothing beyond shape compatibility is validated.
package serialization

import (
	"time"

	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// Format constants.
const (
	MagicBytes      = "CNNW"
	FormatVersion   = 1
	HeaderAlignment = 64 // Tensor data starts on a 64-byte boundary.
)

// Header is the JSON header of a weights file.
type Header struct {
	FormatVersion int          `json:"format_version"`
	SnapshotID    string       `json:"snapshot_id"` // Random UUID of this snapshot.
	CreatedAt     time.Time    `json:"created_at"`
	Layers        []LayerEntry `json:"layers"`
}

// LayerEntry describes one layer slot of the architecture.
//
// Trainable entries carry both arrays; non-trainable entries carry neither
// and exist only to keep the blob aligned with the layer order.
type LayerEntry struct {
	Trainable bool        `json:"trainable"`
	Weight    *ArrayEntry `json:"weight,omitempty"`
	Bias      *ArrayEntry `json:"bias,omitempty"`
}

// ArrayEntry locates one tensor in the data section.
type ArrayEntry struct {
	Shape  []int `json:"shape"`
	Offset int64 `json:"offset"` // Bytes from the start of the data section.
	Size   int64 `json:"size"`   // Bytes.
}

// LayerParams is the in-memory form of one layer slot: the weight/bias pair
// of a trainable layer, or a bare non-trainable marker.
type LayerParams struct {
	Trainable bool
	Weight    *tensor.Tensor
	Bias      *tensor.Tensor
}

// Snapshot is an ordered list of per-layer parameter records together with
// the metadata of the file they were read from.
type Snapshot struct {
	SnapshotID string
	CreatedAt  time.Time
	Layers     []LayerParams
}
