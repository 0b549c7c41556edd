package nn

import (
	"fmt"
	"math"

	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// Dense implements a fully connected layer over column vectors.
//
// Performs the transformation: y = W·x + b
// where:
//   - x is the input column vector with shape [inputs, 1]
//   - W is the weight matrix with shape [outputs, inputs]
//   - b is the bias column vector with shape [outputs, 1]
//   - y is the output column vector with shape [outputs, 1]
//
// Weights are initialized from N(0, 1/inputs) (variance scaling);
// biases are initialized to zeros.
type Dense struct {
	inputs  int
	outputs int
	weight  *tensor.Tensor // [outputs, inputs]
	bias    *tensor.Tensor // [outputs, 1]
}

// NewDense creates a new fully connected layer.
func NewDense(inputs, outputs int) *Dense {
	if inputs <= 0 || outputs <= 0 {
		panic(fmt.Sprintf("dense: invalid dimensions in=%d, out=%d", inputs, outputs))
	}
	return &Dense{
		inputs:  inputs,
		outputs: outputs,
		weight:  tensor.RandnScaled(tensor.Shape{outputs, inputs}, math.Sqrt(1.0/float64(inputs))),
		bias:    tensor.Zeros(tensor.Shape{outputs, 1}),
	}
}

// Forward computes W·input + b.
//
// Input shape: [inputs, 1]. Output shape: [outputs, 1].
func (l *Dense) Forward(input *tensor.Tensor) *tensor.Tensor {
	return l.weight.MatMul(input).Add(l.bias)
}

// Backward computes the dense layer gradients:
//
//	biasGrad   = outputGrad
//	weightGrad = outputGrad · inputᵀ
//	inputGrad  = Wᵀ · outputGrad
func (l *Dense) Backward(outputGrad, input *tensor.Tensor) (*tensor.Tensor, *ParamGrads) {
	grads := &ParamGrads{
		Weight: outputGrad.MatMul(input.Transpose()),
		Bias:   outputGrad.Clone(),
	}
	return l.weight.Transpose().MatMul(outputGrad), grads
}

// Trainable reports true: Dense owns weight and bias parameters.
func (l *Dense) Trainable() bool {
	return true
}

// Weight returns the live weight tensor, shape [outputs, inputs].
func (l *Dense) Weight() *tensor.Tensor {
	return l.weight
}

// Bias returns the live bias tensor, shape [outputs, 1].
func (l *Dense) Bias() *tensor.Tensor {
	return l.bias
}

// Inputs returns the number of input features.
func (l *Dense) Inputs() int {
	return l.inputs
}

// Outputs returns the number of output features.
func (l *Dense) Outputs() int {
	return l.outputs
}

// String returns a short description of the layer.
func (l *Dense) String() string {
	return fmt.Sprintf("Dense(inputs=%d, outputs=%d)", l.inputs, l.outputs)
}
