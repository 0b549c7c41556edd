package network

// evalCount returns the number of leading dataset samples the metrics
// iterate over.
func (n *Network) evalCount() int {
	count := n.cfg.EvalSamples
	if count <= 0 || count > len(n.data) {
		count = len(n.data)
	}
	return count
}

// AverageLoss returns the mean loss over the evaluation prefix of the
// training dataset. Calling it with no training data is a programming
// error; the division by zero yields NaN.
func (n *Network) AverageLoss() float64 {
	count := n.evalCount()
	total := 0.0
	for _, sample := range n.data[:count] {
		total += n.loss.Forward(n.Predict(sample.Input), sample.Label)
	}
	return total / float64(count)
}

// Accuracy returns the percentage of evaluation-prefix samples whose
// predicted class (arg-max of the final activation) matches the label's
// class index.
func (n *Network) Accuracy() float64 {
	count := n.evalCount()
	correct := 0
	for _, sample := range n.data[:count] {
		if n.Predict(sample.Input).ArgMax() == sample.Label.Class {
			correct++
		}
	}
	return 100 * float64(correct) / float64(count)
}
