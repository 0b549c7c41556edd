package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	// Data is already zero-initialized by make()
	return New(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Tensor {
	t := New(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Randn creates a tensor with values drawn from the standard normal
// distribution N(0, 1).
//
// Uses math/rand, which is appropriate for weight initialization and
// statistical sampling (not security-critical).
func Randn(shape Shape) *Tensor {
	t := New(shape)
	for i := range t.data {
		t.data[i] = rand.NormFloat64()
	}
	return t
}

// RandnScaled creates a tensor with values drawn from N(0, scale²).
//
// This is the variance-scaling initialization used by trainable layers:
// scale is typically sqrt(1/fanIn).
func RandnScaled(shape Shape, scale float64) *Tensor {
	t := New(shape)
	for i := range t.data {
		t.data[i] = rand.NormFloat64() * scale
	}
	return t
}
