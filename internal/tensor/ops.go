package tensor

import "fmt"

func (t *Tensor) assertSameShape(op string, other *Tensor) {
	if !t.shape.Equal(other.shape) {
		panic(fmt.Sprintf("tensor: %s: shape mismatch %v vs %v", op, t.shape, other.shape))
	}
}

// Add performs element-wise addition. Shapes must match exactly.
func (t *Tensor) Add(other *Tensor) *Tensor {
	t.assertSameShape("add", other)
	result := New(t.shape)
	for i := range t.data {
		result.data[i] = t.data[i] + other.data[i]
	}
	return result
}

// Sub performs element-wise subtraction. Shapes must match exactly.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	t.assertSameShape("sub", other)
	result := New(t.shape)
	for i := range t.data {
		result.data[i] = t.data[i] - other.data[i]
	}
	return result
}

// Mul performs element-wise multiplication. Shapes must match exactly.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	t.assertSameShape("mul", other)
	result := New(t.shape)
	for i := range t.data {
		result.data[i] = t.data[i] * other.data[i]
	}
	return result
}

// Scale returns the tensor multiplied by a scalar.
func (t *Tensor) Scale(s float64) *Tensor {
	result := New(t.shape)
	for i := range t.data {
		result.data[i] = t.data[i] * s
	}
	return result
}

// AddInPlace accumulates other into the receiver. Shapes must match exactly.
func (t *Tensor) AddInPlace(other *Tensor) {
	t.assertSameShape("add", other)
	for i := range t.data {
		t.data[i] += other.data[i]
	}
}

// SubScaledInPlace subtracts other*factor from the receiver.
// This is the gradient-descent update step: param -= grad * factor.
func (t *Tensor) SubScaledInPlace(other *Tensor, factor float64) {
	t.assertSameShape("sub", other)
	for i := range t.data {
		t.data[i] -= other.data[i] * factor
	}
}

// MatMul performs 2-D matrix multiplication: (M, K) @ (K, N) -> (M, N).
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	if len(t.shape) != 2 || len(other.shape) != 2 {
		panic(fmt.Sprintf("tensor: matmul requires 2D operands, got %v and %v", t.shape, other.shape))
	}
	m, k := t.shape[0], t.shape[1]
	k2, n := other.shape[0], other.shape[1]
	if k != k2 {
		panic(fmt.Sprintf("tensor: matmul: inner dimensions do not match: %v @ %v", t.shape, other.shape))
	}

	result := New(Shape{m, n})
	for i := 0; i < m; i++ {
		row := t.data[i*k : (i+1)*k]
		out := result.data[i*n : (i+1)*n]
		for kk := 0; kk < k; kk++ {
			a := row[kk]
			if a == 0 {
				continue
			}
			bRow := other.data[kk*n : (kk+1)*n]
			for j := 0; j < n; j++ {
				out[j] += a * bRow[j]
			}
		}
	}
	return result
}

// Transpose returns the 2-D transpose (rows and columns swapped).
func (t *Tensor) Transpose() *Tensor {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("tensor: transpose requires a 2D tensor, got %v", t.shape))
	}
	rows, cols := t.shape[0], t.shape[1]
	result := New(Shape{cols, rows})
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result.data[j*rows+i] = t.data[i*cols+j]
		}
	}
	return result
}

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 {
	var sum float64
	for _, v := range t.data {
		sum += v
	}
	return sum
}

// Mean returns the mean of all elements.
func (t *Tensor) Mean() float64 {
	return t.Sum() / float64(len(t.data))
}

// ArgMax returns the flat index of the maximum element.
func (t *Tensor) ArgMax() int {
	maxIdx := 0
	maxVal := t.data[0]
	for i := 1; i < len(t.data); i++ {
		if t.data[i] > maxVal {
			maxVal = t.data[i]
			maxIdx = i
		}
	}
	return maxIdx
}

// Max returns the maximum element.
func (t *Tensor) Max() float64 {
	return t.data[t.ArgMax()]
}
