package tensor

import "fmt"

// assert2D panics unless t has rank 2.
func assert2D(op string, t *Tensor) {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("tensor: %s requires a 2D tensor, got %v", op, t.shape))
	}
}

// Correlate2D computes the valid 2-D cross-correlation of input with kernel.
//
// Output shape is (H-kh+1, W-kw+1): the kernel slides only over positions
// where it fully overlaps the input.
func Correlate2D(input, kernel *Tensor) *Tensor {
	assert2D("correlate2d", input)
	assert2D("correlate2d", kernel)

	h, w := input.shape[0], input.shape[1]
	kh, kw := kernel.shape[0], kernel.shape[1]
	if kh > h || kw > w {
		panic(fmt.Sprintf("tensor: correlate2d: kernel %v larger than input %v", kernel.shape, input.shape))
	}

	out := New(Shape{h - kh + 1, w - kw + 1})
	oh, ow := out.shape[0], out.shape[1]
	for y := 0; y < oh; y++ {
		for x := 0; x < ow; x++ {
			var sum float64
			for i := 0; i < kh; i++ {
				inRow := input.data[(y+i)*w+x:]
				kRow := kernel.data[i*kw : (i+1)*kw]
				for j := 0; j < kw; j++ {
					sum += inRow[j] * kRow[j]
				}
			}
			out.data[y*ow+x] = sum
		}
	}
	return out
}

// Correlate2DFull computes the full 2-D cross-correlation of input with
// kernel.
//
// Output shape is (H+kh-1, W+kw-1): every overlap between kernel and input
// contributes, with out-of-range input positions treated as zero.
func Correlate2DFull(input, kernel *Tensor) *Tensor {
	assert2D("correlate2d", input)
	assert2D("correlate2d", kernel)

	h, w := input.shape[0], input.shape[1]
	kh, kw := kernel.shape[0], kernel.shape[1]

	out := New(Shape{h + kh - 1, w + kw - 1})
	oh, ow := out.shape[0], out.shape[1]
	for y := 0; y < oh; y++ {
		for x := 0; x < ow; x++ {
			var sum float64
			for i := 0; i < kh; i++ {
				iy := y - kh + 1 + i
				if iy < 0 || iy >= h {
					continue
				}
				for j := 0; j < kw; j++ {
					ix := x - kw + 1 + j
					if ix < 0 || ix >= w {
						continue
					}
					sum += input.data[iy*w+ix] * kernel.data[i*kw+j]
				}
			}
			out.data[y*ow+x] = sum
		}
	}
	return out
}

// Convolve2D computes the valid 2-D convolution (cross-correlation with the
// kernel rotated 180 degrees).
func Convolve2D(input, kernel *Tensor) *Tensor {
	return Correlate2D(input, rotate180(kernel))
}

// Convolve2DFull computes the full 2-D convolution (full cross-correlation
// with the kernel rotated 180 degrees).
func Convolve2DFull(input, kernel *Tensor) *Tensor {
	return Correlate2DFull(input, rotate180(kernel))
}

// rotate180 flips a 2-D kernel along both axes.
func rotate180(kernel *Tensor) *Tensor {
	assert2D("rotate", kernel)
	kh, kw := kernel.shape[0], kernel.shape[1]
	out := New(kernel.shape)
	n := kh * kw
	for i := 0; i < n; i++ {
		out.data[i] = kernel.data[n-1-i]
	}
	return out
}

// Channel returns a copy of the 2-D plane t[:, :, c] of a rank-3 tensor laid
// out as (height, width, channels).
func (t *Tensor) Channel(c int) *Tensor {
	if len(t.shape) != 3 {
		panic(fmt.Sprintf("tensor: channel requires a 3D tensor, got %v", t.shape))
	}
	h, w, depth := t.shape[0], t.shape[1], t.shape[2]
	if c < 0 || c >= depth {
		panic(fmt.Sprintf("tensor: channel %d out of range for shape %v", c, t.shape))
	}

	out := New(Shape{h, w})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.data[y*w+x] = t.data[(y*w+x)*depth+c]
		}
	}
	return out
}

// SetChannel writes a 2-D plane into channel c of a rank-3 tensor.
func (t *Tensor) SetChannel(c int, plane *Tensor) {
	t.forEachChannelIndex(c, plane, func(dst, src int) {
		t.data[dst] = plane.data[src]
	})
}

// AddChannel accumulates a 2-D plane into channel c of a rank-3 tensor.
func (t *Tensor) AddChannel(c int, plane *Tensor) {
	t.forEachChannelIndex(c, plane, func(dst, src int) {
		t.data[dst] += plane.data[src]
	})
}

func (t *Tensor) forEachChannelIndex(c int, plane *Tensor, apply func(dst, src int)) {
	if len(t.shape) != 3 {
		panic(fmt.Sprintf("tensor: channel requires a 3D tensor, got %v", t.shape))
	}
	h, w, depth := t.shape[0], t.shape[1], t.shape[2]
	if c < 0 || c >= depth {
		panic(fmt.Sprintf("tensor: channel %d out of range for shape %v", c, t.shape))
	}
	if !plane.shape.Equal(Shape{h, w}) {
		panic(fmt.Sprintf("tensor: channel plane shape %v does not match %v", plane.shape, Shape{h, w}))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			apply((y*w+x)*depth+c, y*w+x)
		}
	}
}

// FilterChannel returns a copy of the 2-D plane t[f, :, :, c] of a rank-4
// kernel tensor laid out as (filters, height, width, channels).
func (t *Tensor) FilterChannel(f, c int) *Tensor {
	kh, kw := t.filterCheck(f, c)
	out := New(Shape{kh, kw})
	depth := t.shape[3]
	base := f * t.stride[0]
	for y := 0; y < kh; y++ {
		for x := 0; x < kw; x++ {
			out.data[y*kw+x] = t.data[base+(y*kw+x)*depth+c]
		}
	}
	return out
}

// SetFilterChannel writes a 2-D plane into t[f, :, :, c] of a rank-4 kernel
// tensor.
func (t *Tensor) SetFilterChannel(f, c int, plane *Tensor) {
	kh, kw := t.filterCheck(f, c)
	if !plane.shape.Equal(Shape{kh, kw}) {
		panic(fmt.Sprintf("tensor: filter plane shape %v does not match %v", plane.shape, Shape{kh, kw}))
	}
	depth := t.shape[3]
	base := f * t.stride[0]
	for y := 0; y < kh; y++ {
		for x := 0; x < kw; x++ {
			t.data[base+(y*kw+x)*depth+c] = plane.data[y*kw+x]
		}
	}
}

func (t *Tensor) filterCheck(f, c int) (kh, kw int) {
	if len(t.shape) != 4 {
		panic(fmt.Sprintf("tensor: filter channel requires a 4D tensor, got %v", t.shape))
	}
	if f < 0 || f >= t.shape[0] || c < 0 || c >= t.shape[3] {
		panic(fmt.Sprintf("tensor: filter index (%d, %d) out of range for shape %v", f, c, t.shape))
	}
	return t.shape[1], t.shape[2]
}
