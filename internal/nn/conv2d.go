package nn

import (
	"fmt"
	"math"

	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// Conv2D is a 2-D convolutional layer over (height, width, depth) volumes.
//
// For every output channel i the forward pass sums the valid 2-D
// cross-correlation of each input channel j with kernel plane [i, :, :, j]
// and adds the bias plane [:, :, i]:
//
//	output[:,:,i] = bias[:,:,i] + Σ_j Correlate2D(input[:,:,j], kernel[i,:,:,j])
//
// Shapes:
//
//	Input:  [height, width, inDepth]
//	Kernel: [outDepth, k, k, inDepth]
//	Bias:   [height-k+1, width-k+1, outDepth]  (same as the output)
//
// Kernel weights are initialized from N(0, 1/(k·k·inDepth)); the bias is a
// zero array of the full output shape.
type Conv2D struct {
	inputShape  tensor.Shape // [height, width, inDepth]
	outputShape tensor.Shape // [height-k+1, width-k+1, outDepth]
	kernelSize  int
	outDepth    int

	weight *tensor.Tensor // [outDepth, k, k, inDepth]
	bias   *tensor.Tensor // output shape
}

// NewConv2D creates a new convolutional layer for inputs of the given shape.
//
// inputShape is [height, width, inDepth]; kernelSize is the side of the
// square kernel; outDepth is the number of output channels.
func NewConv2D(inputShape tensor.Shape, kernelSize, outDepth int) *Conv2D {
	if len(inputShape) != 3 {
		panic(fmt.Sprintf("conv2d: input shape must be [height, width, depth], got %v", inputShape))
	}
	h, w, inDepth := inputShape[0], inputShape[1], inputShape[2]
	if kernelSize <= 0 || kernelSize > h || kernelSize > w {
		panic(fmt.Sprintf("conv2d: kernel size %d does not fit input %v", kernelSize, inputShape))
	}
	if outDepth <= 0 {
		panic(fmt.Sprintf("conv2d: invalid output depth %d", outDepth))
	}

	outputShape := tensor.Shape{h - kernelSize + 1, w - kernelSize + 1, outDepth}
	fanIn := kernelSize * kernelSize * inDepth

	return &Conv2D{
		inputShape:  inputShape.Clone(),
		outputShape: outputShape,
		kernelSize:  kernelSize,
		outDepth:    outDepth,
		weight: tensor.RandnScaled(
			tensor.Shape{outDepth, kernelSize, kernelSize, inDepth},
			math.Sqrt(1.0/float64(fanIn)),
		),
		bias: tensor.Zeros(outputShape),
	}
}

// Forward computes the multi-channel valid cross-correlation plus bias.
//
// Input shape: [height, width, inDepth]. Output shape equals the bias shape.
func (l *Conv2D) Forward(input *tensor.Tensor) *tensor.Tensor {
	if !input.Shape().Equal(l.inputShape) {
		panic(fmt.Sprintf("conv2d: input shape %v does not match layer input %v", input.Shape(), l.inputShape))
	}

	output := l.bias.Clone()
	inDepth := l.inputShape[2]
	for i := 0; i < l.outDepth; i++ {
		for j := 0; j < inDepth; j++ {
			plane := tensor.Correlate2D(input.Channel(j), l.weight.FilterChannel(i, j))
			output.AddChannel(i, plane)
		}
	}
	return output
}

// Backward computes the convolutional gradients:
//
//	weightGrad[i,:,:,j] = Correlate2D(input[:,:,j], outputGrad[:,:,i])
//	inputGrad[:,:,j]    = Σ_i Convolve2DFull(outputGrad[:,:,i], kernel[i,:,:,j])
//	biasGrad            = outputGrad
func (l *Conv2D) Backward(outputGrad, input *tensor.Tensor) (*tensor.Tensor, *ParamGrads) {
	inDepth := l.inputShape[2]
	weightGrad := tensor.Zeros(l.weight.Shape())
	inputGrad := tensor.Zeros(l.inputShape)

	for j := 0; j < inDepth; j++ {
		inPlane := input.Channel(j)
		for i := 0; i < l.outDepth; i++ {
			gradPlane := outputGrad.Channel(i)
			weightGrad.SetFilterChannel(i, j, tensor.Correlate2D(inPlane, gradPlane))
			inputGrad.AddChannel(j, tensor.Convolve2DFull(gradPlane, l.weight.FilterChannel(i, j)))
		}
	}

	grads := &ParamGrads{
		Weight: weightGrad,
		Bias:   outputGrad.Clone(),
	}
	return inputGrad, grads
}

// Trainable reports true: Conv2D owns kernel and bias parameters.
func (l *Conv2D) Trainable() bool {
	return true
}

// Weight returns the live kernel tensor, shape [outDepth, k, k, inDepth].
func (l *Conv2D) Weight() *tensor.Tensor {
	return l.weight
}

// Bias returns the live bias tensor, shaped like the layer output.
func (l *Conv2D) Bias() *tensor.Tensor {
	return l.bias
}

// InputShape returns the expected input shape [height, width, inDepth].
func (l *Conv2D) InputShape() tensor.Shape {
	return l.inputShape.Clone()
}

// OutputShape returns the output shape [height-k+1, width-k+1, outDepth].
func (l *Conv2D) OutputShape() tensor.Shape {
	return l.outputShape.Clone()
}

// String returns a short description of the layer.
func (l *Conv2D) String() string {
	return fmt.Sprintf("Conv2D(input=%v, kernel=%d, outDepth=%d)", l.inputShape, l.kernelSize, l.outDepth)
}
