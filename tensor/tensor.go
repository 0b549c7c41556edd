// Package tensor is the public API for the dense float64 tensor type used
// throughout the library.
//
// Tensors are row-major, fixed-shape arrays. Arithmetic requires exact shape
// matches; dimension errors are programming errors and panic.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	y := tensor.Zeros(tensor.Shape{2, 2})
//	z := x.Add(y)
package tensor

import (
	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// Shape is the ordered dimension list of a tensor.
type Shape = tensor.Shape

// Tensor is a dense float64 array.
type Tensor = tensor.Tensor

// New returns a zero tensor of the given shape.
func New(shape Shape) *Tensor {
	return tensor.New(shape)
}

// FromSlice builds a tensor from a copy of data.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros returns a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Full returns a tensor filled with value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Randn returns a tensor of standard normal samples.
func Randn(shape Shape) *Tensor {
	return tensor.Randn(shape)
}

// RandnScaled returns a tensor of N(0, scale²) samples.
func RandnScaled(shape Shape, scale float64) *Tensor {
	return tensor.RandnScaled(shape, scale)
}
