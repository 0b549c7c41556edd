// Package nn is the public API for layers and losses.
//
// Layers implement a uniform forward/backward protocol; the network
// container in the network package drives them. Available layers: Dense,
// Conv2D, LeakyReLU, Sigmoid, Softmax, Flatten, Identity. Available losses:
// MSE and SparseCategoricalCrossEntropy.
package nn

import (
	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/nn"
	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// Layer is the uniform forward/backward protocol implemented by every
// layer variant.
type Layer = nn.Layer

// Trainable is implemented by layers that own weight and bias parameters.
type Trainable = nn.Trainable

// ParamGrads holds one backward call's parameter gradients.
type ParamGrads = nn.ParamGrads

// Label is the supervision attached to a training sample.
type Label = nn.Label

// Sample is one (input, label) pair.
type Sample = nn.Sample

// Loss scores network outputs against labels.
type Loss = nn.Loss

// Layer variants.
type (
	Dense     = nn.Dense
	Conv2D    = nn.Conv2D
	LeakyReLU = nn.LeakyReLU
	Sigmoid   = nn.Sigmoid
	Softmax   = nn.Softmax
	Flatten   = nn.Flatten
	Identity  = nn.Identity
)

// Losses.
type (
	MSE                           = nn.MSE
	SparseCategoricalCrossEntropy = nn.SparseCategoricalCrossEntropy
)

// NewDense creates a fully connected layer mapping [inputs,1] column
// vectors to [outputs,1].
func NewDense(inputs, outputs int) *Dense {
	return nn.NewDense(inputs, outputs)
}

// NewConv2D creates a valid 2-D convolutional layer over inputs of shape
// {height, width, depth} with square kernels of the given size.
func NewConv2D(inputShape tensor.Shape, kernelSize, outputDepth int) *Conv2D {
	return nn.NewConv2D(inputShape, kernelSize, outputDepth)
}

// NewLeakyReLU creates a leaky rectifier with negative slope 0.1.
func NewLeakyReLU() *LeakyReLU {
	return nn.NewLeakyReLU()
}

// NewSigmoid creates a logistic activation layer.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// NewSoftmax creates a softmax output layer. Its backward is the identity
// and is only correct when paired with SparseCategoricalCrossEntropy.
func NewSoftmax() *Softmax {
	return nn.NewSoftmax()
}

// NewFlatten creates a layer reshaping any input to a column vector.
func NewFlatten() *Flatten {
	return nn.NewFlatten()
}

// NewIdentity creates a pass-through layer.
func NewIdentity() *Identity {
	return nn.NewIdentity()
}

// NewMSE creates a mean-squared-error loss.
func NewMSE() *MSE {
	return nn.NewMSE()
}

// NewSparseCategoricalCrossEntropy creates a sparse cross-entropy loss over
// class-probability column vectors.
func NewSparseCategoricalCrossEntropy() *SparseCategoricalCrossEntropy {
	return nn.NewSparseCategoricalCrossEntropy()
}
