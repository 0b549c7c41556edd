package nn

import (
	"math"

	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// leakySlope is the negative-branch slope of LeakyReLU.
const leakySlope = 0.1

// LeakyReLU applies the element-wise function:
//
//	f(x) = x        if x >= 0
//	f(x) = 0.1 * x  if x < 0
//
// The small negative slope keeps gradients alive for negative inputs,
// avoiding the dead-unit problem of plain ReLU.
type LeakyReLU struct{}

// NewLeakyReLU creates a new LeakyReLU activation layer.
func NewLeakyReLU() *LeakyReLU {
	return &LeakyReLU{}
}

// Forward applies the piecewise-linear activation element-wise.
func (l *LeakyReLU) Forward(input *tensor.Tensor) *tensor.Tensor {
	out := input.Clone()
	data := out.Data()
	for i, v := range data {
		if v < 0 {
			data[i] = leakySlope * v
		}
	}
	return out
}

// Backward scales the output gradient by the activation's slope at each
// element. The mask is derived from the forward input, not the output.
func (l *LeakyReLU) Backward(outputGrad, input *tensor.Tensor) (*tensor.Tensor, *ParamGrads) {
	grad := outputGrad.Clone()
	data := grad.Data()
	for i, v := range input.Data() {
		if v < 0 {
			data[i] *= leakySlope
		}
	}
	return grad, nil
}

// Trainable reports false: LeakyReLU owns no parameters.
func (l *LeakyReLU) Trainable() bool {
	return false
}

// Sigmoid applies the element-wise logistic function σ(x) = 1/(1+exp(-x)).
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies the logistic function element-wise.
func (l *Sigmoid) Forward(input *tensor.Tensor) *tensor.Tensor {
	out := input.Clone()
	data := out.Data()
	for i, v := range data {
		data[i] = 1.0 / (1.0 + math.Exp(-v))
	}
	return out
}

// Backward computes outputGrad · s · (1-s) where s is the activation
// recomputed from the forward input.
func (l *Sigmoid) Backward(outputGrad, input *tensor.Tensor) (*tensor.Tensor, *ParamGrads) {
	grad := outputGrad.Clone()
	data := grad.Data()
	for i, v := range input.Data() {
		s := 1.0 / (1.0 + math.Exp(-v))
		data[i] *= s * (1.0 - s)
	}
	return grad, nil
}

// Trainable reports false: Sigmoid owns no parameters.
func (l *Sigmoid) Trainable() bool {
	return false
}

// Softmax normalizes its input into a probability distribution:
//
//	softmax(x)[i] = exp(x[i] - max(x)) / Σ_j exp(x[j] - max(x))
//
// The max shift keeps the exponentials finite for any input.
//
// Backward is an identity pass-through: the combined softmax+cross-entropy
// gradient is produced entirely by SparseCategoricalCrossEntropy.Backward.
// The end-to-end gradient is therefore only correct when Softmax is the last
// layer and is paired with that loss.
type Softmax struct{}

// NewSoftmax creates a new Softmax layer.
func NewSoftmax() *Softmax {
	return &Softmax{}
}

// Forward computes the numerically stabilized softmax.
func (l *Softmax) Forward(input *tensor.Tensor) *tensor.Tensor {
	out := input.Clone()
	data := out.Data()

	maxVal := data[0]
	for _, v := range data[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	var sum float64
	for i, v := range data {
		e := math.Exp(v - maxVal)
		data[i] = e
		sum += e
	}
	for i := range data {
		data[i] /= sum
	}
	return out
}

// Backward passes the output gradient through unchanged; see the type
// comment for the pairing constraint with the cross-entropy loss.
func (l *Softmax) Backward(outputGrad, _ *tensor.Tensor) (*tensor.Tensor, *ParamGrads) {
	return outputGrad, nil
}

// Trainable reports false: Softmax owns no parameters.
func (l *Softmax) Trainable() bool {
	return false
}
