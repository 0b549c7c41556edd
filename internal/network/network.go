// Package network implements the sequential training container: forward
// inference over an ordered layer stack, backpropagation, mini-batch
// gradient descent, dataset metrics, and weight persistence.
//
// A Network is driven by one caller at a time. Methods are synchronous and
// run to completion; the only internal concurrency is the optional worker
// split of batch gradient computation, which is invisible to the caller.
package network

import (
	"fmt"

	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/nn"
	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// Config tunes evaluation and training behavior.
type Config struct {
	// EvalSamples is the number of leading dataset samples the metrics
	// (AverageLoss, Accuracy) iterate over. Zero means the whole dataset.
	EvalSamples int

	// Workers is the number of goroutines used to compute batch gradients.
	// Values below 2 keep the batch loop sequential.
	Workers int
}

// Network is a sequential stack of layers trained against one loss.
//
// Layer shapes must chain: each layer's output must be an acceptable input
// for the next. Chaining is not validated at construction; a mismatch
// surfaces as a dimension panic at the first forward pass.
type Network struct {
	layers []nn.Layer
	loss   nn.Loss

	// trainables[i] is non-nil iff layers[i] owns parameters. Cached at
	// construction so the training loops skip the type assertion.
	trainables []nn.Trainable

	data []nn.Sample
	cfg  Config
}

// New creates a network over the given layers and loss with a default
// configuration (metrics over the whole dataset, sequential batches).
func New(loss nn.Loss, layers ...nn.Layer) *Network {
	return NewWithConfig(Config{}, loss, layers...)
}

// NewWithConfig creates a network with an explicit configuration.
func NewWithConfig(cfg Config, loss nn.Loss, layers ...nn.Layer) *Network {
	n := &Network{
		layers:     layers,
		loss:       loss,
		trainables: make([]nn.Trainable, len(layers)),
		cfg:        cfg,
	}
	for i, l := range layers {
		if l.Trainable() {
			tr, ok := l.(nn.Trainable)
			if !ok {
				panic(fmt.Sprintf("layer %d reports trainable but exposes no parameters", i))
			}
			n.trainables[i] = tr
		}
	}
	return n
}

// SetTrainingData replaces the training dataset. The network keeps the
// slice; callers must not mutate it afterwards.
func (n *Network) SetTrainingData(samples []nn.Sample) {
	n.data = samples
}

// TrainingData returns the stored dataset.
func (n *Network) TrainingData() []nn.Sample {
	return n.data
}

// Layers returns the layer stack in order.
func (n *Network) Layers() []nn.Layer {
	return n.layers
}

// Forward runs the input through every layer and returns the full ordered
// activation sequence z[0..L]: z[0] is a copy of the input, z[k] is the
// output of layer k-1. Every intermediate is kept because the backward pass
// needs each layer's original input.
func (n *Network) Forward(input *tensor.Tensor) []*tensor.Tensor {
	activations := make([]*tensor.Tensor, len(n.layers)+1)
	activations[0] = input.Clone()
	for i, l := range n.layers {
		activations[i+1] = l.Forward(activations[i])
	}
	return activations
}

// Predict returns the final activation for the input.
func (n *Network) Predict(input *tensor.Tensor) *tensor.Tensor {
	out := input
	for _, l := range n.layers {
		out = l.Forward(out)
	}
	return out
}

// Evaluate runs forward on the sample's input and returns both the
// activation sequence and the scalar loss against its label.
func (n *Network) Evaluate(sample nn.Sample) ([]*tensor.Tensor, float64) {
	activations := n.Forward(sample.Input)
	return activations, n.loss.Forward(activations[len(activations)-1], sample.Label)
}

// Gradient backpropagates one sample and returns the per-layer parameter
// gradients in original layer order. Entries for non-trainable layers are
// nil.
func (n *Network) Gradient(sample nn.Sample) []*nn.ParamGrads {
	activations := n.Forward(sample.Input)
	upstream := n.loss.Backward(activations[len(activations)-1], sample.Label)

	grads := make([]*nn.ParamGrads, len(n.layers))
	for i := len(n.layers) - 1; i >= 0; i-- {
		upstream, grads[i] = n.layers[i].Backward(upstream, activations[i])
	}
	return grads
}

// NumParameters returns the total number of trainable scalar parameters.
func (n *Network) NumParameters() int {
	total := 0
	for _, tr := range n.trainables {
		if tr == nil {
			continue
		}
		total += tr.Weight().NumElements() + tr.Bias().NumElements()
	}
	return total
}
