package network

import (
	"fmt"

	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/serialization"
)

// DefaultWeightsFile is the weights path used by SaveWeights and
// LoadWeights.
const DefaultWeightsFile = "network.weights"

// SaveWeights writes the trainable parameters to DefaultWeightsFile.
func (n *Network) SaveWeights() error {
	return n.SaveWeightsTo(DefaultWeightsFile)
}

// SaveWeightsTo writes one ordered entry per layer: the weight/bias pair
// for trainable layers, a bare marker for the rest.
func (n *Network) SaveWeightsTo(path string) error {
	layers := make([]serialization.LayerParams, len(n.layers))
	for i, tr := range n.trainables {
		if tr == nil {
			continue
		}
		layers[i] = serialization.LayerParams{
			Trainable: true,
			Weight:    tr.Weight(),
			Bias:      tr.Bias(),
		}
	}
	return serialization.WriteSnapshot(path, layers)
}

// LoadWeights restores the trainable parameters from DefaultWeightsFile.
func (n *Network) LoadWeights() error {
	return n.LoadWeightsFrom(DefaultWeightsFile)
}

// LoadWeightsFrom overwrites every trainable layer's parameters from the
// file's corresponding entry. The file's layer count, trainability pattern,
// and parameter shapes must match the current architecture exactly; no
// validation happens beyond that, so a shape-coincident file from a
// different architecture loads silently.
func (n *Network) LoadWeightsFrom(path string) error {
	snap, err := serialization.ReadSnapshot(path)
	if err != nil {
		return err
	}
	if len(snap.Layers) != len(n.layers) {
		return fmt.Errorf("weights file has %d layers, network has %d", len(snap.Layers), len(n.layers))
	}
	for i, entry := range snap.Layers {
		tr := n.trainables[i]
		if entry.Trainable != (tr != nil) {
			return fmt.Errorf("layer %d trainability mismatch", i)
		}
		if tr == nil {
			continue
		}
		if !entry.Weight.Shape().Equal(tr.Weight().Shape()) {
			return fmt.Errorf("layer %d weight shape %v does not match %v", i, entry.Weight.Shape(), tr.Weight().Shape())
		}
		if !entry.Bias.Shape().Equal(tr.Bias().Shape()) {
			return fmt.Errorf("layer %d bias shape %v does not match %v", i, entry.Bias.Shape(), tr.Bias().Shape())
		}
		copy(tr.Weight().Data(), entry.Weight.Data())
		copy(tr.Bias().Data(), entry.Bias.Data())
	}
	return nil
}
