// Package nn implements the layer and loss primitives of the training
// framework.
//
// This package provides the building blocks a Network chains together:
//   - Layer interface: uniform forward/backward protocol
//   - Dense: fully connected layer
//   - Conv2D: convolutional layer over (height, width, depth) volumes
//   - Activations: LeakyReLU, Sigmoid, Softmax
//   - Flatten, Identity: shape plumbing
//   - Loss functions: MSE, sparse categorical cross-entropy
//
// Layers are stateless between calls: Backward receives the original forward
// input from the caller instead of caching it, which keeps a single layer
// instance safe to share across concurrently processed samples.
package nn

import (
	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// Layer is the uniform unit of the sequential network.
//
// Forward maps an input activation to an output activation. Backward maps
// the gradient of the cost with respect to the layer's output back to the
// gradient with respect to its input, and, for trainable layers, produces
// the parameter gradients as well.
//
// The input argument of Backward must be the exact tensor that was passed to
// Forward for the same sample: several backward formulas (the LeakyReLU mask,
// the convolutional correlations) need the untransformed input.
type Layer interface {
	// Forward computes the layer's output for the given input.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Backward computes the gradient with respect to the input, given the
	// gradient with respect to the output and the original forward input.
	// Trainable layers additionally return their parameter gradients;
	// non-trainable layers return nil grads.
	Backward(outputGrad, input *tensor.Tensor) (inputGrad *tensor.Tensor, grads *ParamGrads)

	// Trainable reports whether the layer owns parameters updated by the
	// optimizer step. The value is fixed at construction.
	Trainable() bool
}

// ParamGrads holds the parameter gradients produced by one Backward call of
// a trainable layer. Weight and Bias are shape-matched to the layer's own
// weight and bias tensors.
type ParamGrads struct {
	Weight *tensor.Tensor
	Bias   *tensor.Tensor
}

// Trainable is implemented by layers that own weight and bias parameters.
//
// Weight and Bias return the live parameter tensors: the optimizer step and
// weight loading mutate them in place, so their shapes never change after
// construction.
type Trainable interface {
	Layer
	Weight() *tensor.Tensor
	Bias() *tensor.Tensor
}

// Identity passes activations and gradients through unchanged.
//
// It is the neutral element of the layer protocol and doubles as a
// placeholder when an architecture slot must be filled.
type Identity struct{}

// NewIdentity creates a new Identity layer.
func NewIdentity() *Identity {
	return &Identity{}
}

// Forward returns the input unchanged.
func (l *Identity) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input
}

// Backward returns the output gradient unchanged.
func (l *Identity) Backward(outputGrad, _ *tensor.Tensor) (*tensor.Tensor, *ParamGrads) {
	return outputGrad, nil
}

// Trainable reports false: Identity owns no parameters.
func (l *Identity) Trainable() bool {
	return false
}
