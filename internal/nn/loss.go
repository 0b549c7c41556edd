package nn

import (
	"math"

	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// Label is the supervision attached to a training sample.
//
// Dense losses (MSE) read Values; sparse losses and the accuracy metric read
// Class. A driver sets whichever fields its loss needs; setting both is fine.
type Label struct {
	Class  int            // class index for sparse losses and accuracy
	Values *tensor.Tensor // dense target, shape-matched to the network output
}

// Sample is one (input, label) pair of the training dataset.
type Sample struct {
	Input *tensor.Tensor
	Label Label
}

// Loss scores a network output against a label and produces the gradient of
// that score with respect to the output.
type Loss interface {
	// Forward returns the scalar cost of output against label.
	Forward(output *tensor.Tensor, label Label) float64

	// Backward returns the gradient of the cost with respect to output.
	Backward(output *tensor.Tensor, label Label) *tensor.Tensor
}

// MSE is the mean-squared-error loss: mean((output - target)²).
// Output and target may have any matching shape.
type MSE struct{}

// NewMSE creates a new mean-squared-error loss.
func NewMSE() *MSE {
	return &MSE{}
}

// Forward returns the mean squared elementwise difference.
func (m *MSE) Forward(output *tensor.Tensor, label Label) float64 {
	diff := output.Sub(label.Values)
	return diff.Mul(diff).Mean()
}

// Backward returns 2·(output - target).
func (m *MSE) Backward(output *tensor.Tensor, label Label) *tensor.Tensor {
	return output.Sub(label.Values).Scale(2)
}

// probFloor is the clipping floor applied to predicted probabilities before
// taking the logarithm.
const probFloor = 1e-9

// SparseCategoricalCrossEntropy scores a column vector of class
// probabilities against an integer class index:
//
//	loss = -log(clip(output, 1e-9, 1)[class])
//
// Its Backward produces the combined softmax+cross-entropy gradient
// (output with 1 subtracted at the true class), which is why the paired
// Softmax layer's own backward must be an identity: the combination is only
// correct when the two are used together at the end of the network.
type SparseCategoricalCrossEntropy struct{}

// NewSparseCategoricalCrossEntropy creates a new sparse cross-entropy loss.
func NewSparseCategoricalCrossEntropy() *SparseCategoricalCrossEntropy {
	return &SparseCategoricalCrossEntropy{}
}

// Forward returns -log of the clipped probability at the label's class.
// An out-of-range class index panics with an index error.
func (s *SparseCategoricalCrossEntropy) Forward(output *tensor.Tensor, label Label) float64 {
	p := output.Data()[label.Class]
	if p < probFloor {
		p = probFloor
	}
	if p > 1 {
		p = 1
	}
	return -math.Log(p)
}

// Backward returns a copy of output with 1 subtracted at the label's class.
func (s *SparseCategoricalCrossEntropy) Backward(output *tensor.Tensor, label Label) *tensor.Tensor {
	grad := output.Clone()
	grad.Data()[label.Class] -= 1
	return grad
}
