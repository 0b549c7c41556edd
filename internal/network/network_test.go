package network

import (
	"math"
	"testing"

	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/nn"
	"github.com/pradhyumna-battula/convolutional-neural-network-library/internal/tensor"
)

func colVec(t *testing.T, values ...float64) *tensor.Tensor {
	t.Helper()
	ten, err := tensor.FromSlice(values, tensor.Shape{len(values), 1})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return ten
}

// cloneDense builds a dense layer with the same parameters as src.
func cloneDense(src *nn.Dense) *nn.Dense {
	dst := nn.NewDense(src.Inputs(), src.Outputs())
	copy(dst.Weight().Data(), src.Weight().Data())
	copy(dst.Bias().Data(), src.Bias().Data())
	return dst
}

func TestForwardReturnsAllActivations(t *testing.T) {
	net := New(nn.NewMSE(), nn.NewDense(2, 3), nn.NewLeakyReLU())
	input := colVec(t, 1, -1)

	activations := net.Forward(input)
	if len(activations) != 3 {
		t.Fatalf("got %d activations, want 3", len(activations))
	}
	if !activations[0].Shape().Equal(tensor.Shape{2, 1}) {
		t.Errorf("z0 shape = %v", activations[0].Shape())
	}
	if !activations[1].Shape().Equal(tensor.Shape{3, 1}) {
		t.Errorf("z1 shape = %v", activations[1].Shape())
	}

	// z0 is a copy: mutating it must not touch the caller's input.
	activations[0].Data()[0] = 42
	if input.Data()[0] != 1 {
		t.Error("Forward mutated the caller's input")
	}
}

func TestPredictMatchesLastActivation(t *testing.T) {
	net := New(nn.NewMSE(), nn.NewDense(2, 2), nn.NewSigmoid())
	input := colVec(t, 0.5, -0.5)

	activations := net.Forward(input)
	pred := net.Predict(input)
	last := activations[len(activations)-1]
	for i, v := range pred.Data() {
		if v != last.Data()[i] {
			t.Fatalf("Predict[%d] = %v, forward gave %v", i, v, last.Data()[i])
		}
	}
}

func TestEvaluateReturnsLoss(t *testing.T) {
	net := New(nn.NewMSE(), nn.NewIdentity())
	sample := nn.Sample{Input: colVec(t, 3), Label: nn.Label{Values: colVec(t, 1)}}

	activations, loss := net.Evaluate(sample)
	if len(activations) != 2 {
		t.Fatalf("got %d activations, want 2", len(activations))
	}
	if loss != 4 {
		t.Errorf("loss = %v, want 4", loss)
	}
}

func TestGradientOrderAndNilSlots(t *testing.T) {
	net := New(nn.NewMSE(), nn.NewIdentity(), nn.NewDense(2, 2), nn.NewLeakyReLU())
	sample := nn.Sample{Input: colVec(t, 1, 2), Label: nn.Label{Values: colVec(t, 0, 0)}}

	grads := net.Gradient(sample)
	if len(grads) != 3 {
		t.Fatalf("got %d gradient slots, want 3", len(grads))
	}
	if grads[0] != nil || grads[2] != nil {
		t.Error("non-trainable slots must be nil")
	}
	if grads[1] == nil {
		t.Fatal("dense slot must carry gradients")
	}
	if !grads[1].Weight.Shape().Equal(tensor.Shape{2, 2}) {
		t.Errorf("weight grad shape = %v", grads[1].Weight.Shape())
	}
	if !grads[1].Bias.Shape().Equal(tensor.Shape{2, 1}) {
		t.Errorf("bias grad shape = %v", grads[1].Bias.Shape())
	}
}

func TestTrainBatchSizeOneIsSingleStep(t *testing.T) {
	d1 := nn.NewDense(2, 1)
	d2 := cloneDense(d1)
	sample := nn.Sample{Input: colVec(t, 1, -2), Label: nn.Label{Values: colVec(t, 0.5)}}
	const lr = 0.3

	// Manual single gradient descent step on the copy.
	manual := New(nn.NewMSE(), d2)
	grads := manual.Gradient(sample)
	d2.Weight().SubScaledInPlace(grads[0].Weight, lr)
	d2.Bias().SubScaledInPlace(grads[0].Bias, lr)

	net := New(nn.NewMSE(), d1)
	net.TrainBatch([]nn.Sample{sample}, lr)

	for i, v := range d1.Weight().Data() {
		if v != d2.Weight().Data()[i] {
			t.Errorf("weight[%d] = %v, want %v", i, v, d2.Weight().Data()[i])
		}
	}
	for i, v := range d1.Bias().Data() {
		if v != d2.Bias().Data()[i] {
			t.Errorf("bias[%d] = %v, want %v", i, v, d2.Bias().Data()[i])
		}
	}
}

func TestTrainBatchParallelMatchesSequential(t *testing.T) {
	d1 := nn.NewDense(3, 2)
	d2 := cloneDense(d1)

	batch := make([]nn.Sample, 8)
	for i := range batch {
		batch[i] = nn.Sample{
			Input: colVec(t, float64(i), float64(-i), 0.5),
			Label: nn.Label{Values: colVec(t, 1, 0)},
		}
	}

	seq := New(nn.NewMSE(), d1)
	par := NewWithConfig(Config{Workers: 4}, nn.NewMSE(), d2)
	seq.TrainBatch(batch, 0.1)
	par.TrainBatch(batch, 0.1)

	for i, v := range d1.Weight().Data() {
		if math.Abs(v-d2.Weight().Data()[i]) > 1e-12 {
			t.Errorf("weight[%d]: sequential %v vs parallel %v", i, v, d2.Weight().Data()[i])
		}
	}
	for i, v := range d1.Bias().Data() {
		if math.Abs(v-d2.Bias().Data()[i]) > 1e-12 {
			t.Errorf("bias[%d]: sequential %v vs parallel %v", i, v, d2.Bias().Data()[i])
		}
	}
}

func TestTrainEpochKeepsDatasetOrder(t *testing.T) {
	net := New(nn.NewMSE(), nn.NewDense(1, 1))
	samples := make([]nn.Sample, 10)
	for i := range samples {
		samples[i] = nn.Sample{Input: colVec(t, float64(i)), Label: nn.Label{Values: colVec(t, 0)}}
	}
	net.SetTrainingData(samples)

	net.TrainEpoch(3, 0.01)

	for i, sample := range net.TrainingData() {
		if sample.Input.Data()[0] != float64(i) {
			t.Fatalf("dataset order mutated at %d: got %v", i, sample.Input.Data()[0])
		}
	}
}

func TestMetrics(t *testing.T) {
	// Fixed dense layer acting as the identity on 2-vectors.
	d := nn.NewDense(2, 2)
	copy(d.Weight().Data(), []float64{1, 0, 0, 1})
	copy(d.Bias().Data(), []float64{0, 0})
	net := New(nn.NewMSE(), d)
	net.SetTrainingData([]nn.Sample{
		{Input: colVec(t, 3, 1), Label: nn.Label{Class: 0, Values: colVec(t, 3, 1)}},
		{Input: colVec(t, 1, 3), Label: nn.Label{Class: 1, Values: colVec(t, 1, 3)}},
		{Input: colVec(t, 5, 0), Label: nn.Label{Class: 1, Values: colVec(t, 5, 2)}},
	})

	// First two predictions are exact, the third misses by (0, -2).
	wantLoss := (0.0 + 0.0 + (0.0+4.0)/2) / 3
	if got := net.AverageLoss(); math.Abs(got-wantLoss) > 1e-12 {
		t.Errorf("AverageLoss = %v, want %v", got, wantLoss)
	}
	if got := net.Accuracy(); math.Abs(got-200.0/3) > 1e-9 {
		t.Errorf("Accuracy = %v, want %v", got, 200.0/3)
	}
}

func TestMetricsEvalPrefix(t *testing.T) {
	d := nn.NewDense(2, 2)
	copy(d.Weight().Data(), []float64{1, 0, 0, 1})
	copy(d.Bias().Data(), []float64{0, 0})
	net := NewWithConfig(Config{EvalSamples: 1}, nn.NewMSE(), d)
	net.SetTrainingData([]nn.Sample{
		{Input: colVec(t, 2, 1), Label: nn.Label{Class: 0}}, // correct
		{Input: colVec(t, 2, 1), Label: nn.Label{Class: 1}}, // wrong, outside prefix
	})

	if got := net.Accuracy(); got != 100 {
		t.Errorf("Accuracy = %v, want 100", got)
	}
}

func TestNumParameters(t *testing.T) {
	net := New(nn.NewMSE(), nn.NewDense(3, 2), nn.NewLeakyReLU(), nn.NewDense(2, 1))
	// 3*2+2 for the first dense, 2*1+1 for the second.
	if got := net.NumParameters(); got != 11 {
		t.Errorf("NumParameters = %d, want 11", got)
	}
}

func TestTrainingConverges(t *testing.T) {
	net := New(nn.NewMSE(), nn.NewDense(2, 1))
	net.SetTrainingData([]nn.Sample{
		{Input: colVec(t, 1, 0), Label: nn.Label{Values: colVec(t, 1)}},
		{Input: colVec(t, 0, 1), Label: nn.Label{Values: colVec(t, 0)}},
	})

	for epoch := 0; epoch < 2000; epoch++ {
		net.TrainEpoch(1, 0.1)
	}

	if loss := net.AverageLoss(); loss >= 0.01 {
		t.Errorf("average loss after training = %v, want < 0.01", loss)
	}
}
