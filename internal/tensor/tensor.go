// Package tensor implements the dense float64 array underlying the network:
// elementwise arithmetic, matrix product, 2-D valid/full cross-correlation
// and convolution, and zero/random initialization.
//
// Tensors are row-major and fixed-shape. Operations that combine two tensors
// require exactly matching shapes (there is no broadcasting); violations
// panic with a generic dimension error that propagates to the caller.
package tensor

import "fmt"

// Tensor is a dense row-major float64 array.
type Tensor struct {
	shape  Shape
	stride []int
	data   []float64
}

// New creates a zero-filled tensor with the given shape.
// Panics if the shape has a non-positive dimension.
func New(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: invalid shape: %v", err))
	}
	return &Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float64, shape.NumElements()),
	}
}

// FromSlice creates a tensor that copies data into the given shape.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	t := New(shape)
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the underlying storage.
// Mutating the returned slice mutates the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given multi-dimensional index.
func (t *Tensor) At(index ...int) float64 {
	return t.data[t.flatIndex(index)]
}

// Set stores v at the given multi-dimensional index.
func (t *Tensor) Set(v float64, index ...int) {
	t.data[t.flatIndex(index)] = v
}

func (t *Tensor) flatIndex(index []int) int {
	if len(index) != len(t.shape) {
		panic(fmt.Sprintf("tensor: index rank %d does not match shape %v", len(index), t.shape))
	}
	flat := 0
	for i, idx := range index {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d of shape %v", idx, i, t.shape))
		}
		flat += idx * t.stride[i]
	}
	return flat
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	c := New(t.shape)
	copy(c.data, t.data)
	return c
}

// Reshape returns a tensor with the same backing data and a new shape.
// The new shape must have the same number of elements.
//
// The returned tensor shares storage with the receiver.
func (t *Tensor) Reshape(dims ...int) *Tensor {
	shape := Shape(dims)
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: reshape: %v", err))
	}
	if shape.NumElements() != t.NumElements() {
		panic(fmt.Sprintf("tensor: cannot reshape %v into %v", t.shape, shape))
	}
	return &Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   t.data,
	}
}

// String renders the shape and an element count, not the full data.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(shape=%v, elements=%d)", t.shape, t.NumElements())
}
