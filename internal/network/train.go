package network

import (
	"math/rand"

	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/nn"
	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/parallel"
	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

// TrainBatch accumulates the gradients of every sample in the batch and
// applies one batch-averaged gradient descent step:
//
//	w -= sum(grad_w) * learningRate / len(batch)
//
// Parameters change only after every sample has been accumulated. An empty
// batch is a no-op.
func (n *Network) TrainBatch(batch []nn.Sample, learningRate float64) {
	if len(batch) == 0 {
		return
	}

	var acc []*nn.ParamGrads
	if n.cfg.Workers > 1 {
		acc = n.batchGradientsParallel(batch)
	} else {
		acc = n.newAccumulators()
		for _, sample := range batch {
			addGrads(acc, n.Gradient(sample))
		}
	}

	step := learningRate / float64(len(batch))
	for i, tr := range n.trainables {
		if tr == nil {
			continue
		}
		tr.Weight().SubScaledInPlace(acc[i].Weight, step)
		tr.Bias().SubScaledInPlace(acc[i].Bias, step)
	}
}

// TrainEpoch shuffles the dataset and runs TrainBatch over consecutive
// chunks of batchSize; the last chunk may be smaller. Shuffling happens on
// a copy, so the stored dataset keeps its original order and repeated
// epochs reshuffle independently.
func (n *Network) TrainEpoch(batchSize int, learningRate float64) {
	if len(n.data) == 0 || batchSize <= 0 {
		return
	}

	shuffled := make([]nn.Sample, len(n.data))
	copy(shuffled, n.data)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for start := 0; start < len(shuffled); start += batchSize {
		end := start + batchSize
		if end > len(shuffled) {
			end = len(shuffled)
		}
		n.TrainBatch(shuffled[start:end], learningRate)
	}
}

// batchGradientsParallel splits the batch across workers, accumulates each
// chunk into its own partial sum, and merges the partials. Layers hold no
// per-call state, so concurrent Gradient calls on disjoint samples are
// safe; parameters are only read until the merge completes.
func (n *Network) batchGradientsParallel(batch []nn.Sample) []*nn.ParamGrads {
	pcfg := parallel.Config{Workers: n.cfg.Workers, MinChunkSize: 1}
	partials := make([][]*nn.ParamGrads, parallel.NumChunks(len(batch), pcfg))
	for i := range partials {
		partials[i] = n.newAccumulators()
	}

	parallel.Chunks(len(batch), pcfg, func(chunk, start, end int) {
		for _, sample := range batch[start:end] {
			addGrads(partials[chunk], n.Gradient(sample))
		}
	})

	acc := partials[0]
	for _, partial := range partials[1:] {
		for i := range acc {
			if acc[i] == nil {
				continue
			}
			acc[i].Weight.AddInPlace(partial[i].Weight)
			acc[i].Bias.AddInPlace(partial[i].Bias)
		}
	}
	return acc
}

// newAccumulators returns zero gradient accumulators shaped like each
// trainable layer's parameters, nil for non-trainable slots.
func (n *Network) newAccumulators() []*nn.ParamGrads {
	acc := make([]*nn.ParamGrads, len(n.trainables))
	for i, tr := range n.trainables {
		if tr == nil {
			continue
		}
		acc[i] = &nn.ParamGrads{
			Weight: tensor.Zeros(tr.Weight().Shape()),
			Bias:   tensor.Zeros(tr.Bias().Shape()),
		}
	}
	return acc
}

func addGrads(acc, grads []*nn.ParamGrads) {
	for i, g := range grads {
		if g == nil {
			continue
		}
		acc[i].Weight.AddInPlace(g.Weight)
		acc[i].Bias.AddInPlace(g.Bias)
	}
}
