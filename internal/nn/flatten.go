package nn

import (
	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// Flatten reshapes an arbitrary-rank input into a column vector of shape
// [n, 1], preserving element order. It bridges convolutional volumes and
// fully connected layers.
type Flatten struct{}

// NewFlatten creates a new Flatten layer.
func NewFlatten() *Flatten {
	return &Flatten{}
}

// Forward reshapes the input into a column vector.
func (l *Flatten) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input.Reshape(input.NumElements(), 1)
}

// Backward reshapes the output gradient back to the original input shape.
func (l *Flatten) Backward(outputGrad, input *tensor.Tensor) (*tensor.Tensor, *ParamGrads) {
	return outputGrad.Reshape(input.Shape()...), nil
}

// Trainable reports false: Flatten owns no parameters.
func (l *Flatten) Trainable() bool {
	return false
}
