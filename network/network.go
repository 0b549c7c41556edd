// Package network is the public API for the sequential training container.
//
// Example:
//
//	net := network.New(nn.NewMSE(), nn.NewDense(2, 4), nn.NewSigmoid(), nn.NewDense(4, 1))
//	net.SetTrainingData(samples)
//	for epoch := 0; epoch < 100; epoch++ {
//		net.TrainEpoch(8, 0.1)
//	}
//	fmt.Println(net.AverageLoss())
package network

import (
	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/network"
	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/nn"
)

// Network is a sequential layer stack trained against one loss.
type Network = network.Network

// Config tunes metrics evaluation and batch parallelism.
type Config = network.Config

// DefaultWeightsFile is the weights path used by SaveWeights and
// LoadWeights.
const DefaultWeightsFile = network.DefaultWeightsFile

// New creates a network with the default configuration.
func New(loss nn.Loss, layers ...nn.Layer) *Network {
	return network.New(loss, layers...)
}

// NewWithConfig creates a network with an explicit configuration.
func NewWithConfig(cfg Config, loss nn.Loss, layers ...nn.Layer) *Network {
	return network.NewWithConfig(cfg, loss, layers...)
}
