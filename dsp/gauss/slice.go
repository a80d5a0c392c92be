package gauss

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SmoothSlice returns one line of SmoothElliptic(m, sigma0, sigma1) without
// smoothing the whole matrix. With dim == Dim0 it returns row index; with
// dim == Dim1 it returns column index.
//
// Only the band of lines within the kernel radius of index is smoothed in the
// first pass, so the cost scales with the kernel width rather than the matrix
// size.
func SmoothSlice(m mat.Matrix, sigma0, sigma1 float64, index int, dim Dimension, opts ...Option) ([]float64, error) {
	if !dim.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	rows, cols := m.Dims()
	if err := validateMatrix(rows, cols, sigma0, sigma1); err != nil {
		return nil, err
	}

	limit := rows
	if dim == Dim1 {
		limit = cols
	}
	if index < 0 || index >= limit {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSliceIndex, index, limit)
	}

	cfg := applyOptions(opts)
	k0, err := NewKernel(sigma0)
	if err != nil {
		return nil, err
	}
	k1, err := NewKernel(sigma1)
	if err != nil {
		return nil, err
	}
	src := mat.DenseCopyOf(m).RawMatrix().Data

	if dim == Dim0 {
		return smoothRow(src, rows, cols, index, k0, k1, cfg)
	}
	return smoothColumn(src, rows, cols, index, k0, k1, cfg)
}

// smoothRow evaluates the Dim0 pass at a single row, then runs the Dim1
// pass along that row.
func smoothRow(src []float64, rows, cols, row int, k0, k1 []float64, cfg config) ([]float64, error) {
	r0, r1 := band(row, len(k0)/2, rows)
	column := make([]float64, r1-r0)
	mid := make([]float64, cols)
	for j := 0; j < cols; j++ {
		for i := r0; i < r1; i++ {
			column[i-r0] = src[i*cols+j]
		}
		mid[j] = ConvolveAt(column, k0, row-r0)
	}

	lc, err := newLineConvolver(k1, cols, cfg)
	if err != nil {
		return nil, err
	}
	out := make([]float64, cols)
	if err := lc.convolve(out, mid); err != nil {
		return nil, err
	}
	return out, nil
}

// smoothColumn runs the Dim0 pass over the columns the Dim1 kernel reaches,
// then evaluates the Dim1 pass at a single column of every row.
func smoothColumn(src []float64, rows, cols, col int, k0, k1 []float64, cfg config) ([]float64, error) {
	c0, c1 := band(col, len(k1)/2, cols)
	width := c1 - c0
	mid := make([]float64, rows*width)
	if err := passDim0(mid, width, src, rows, cols, c0, c1, k0, cfg); err != nil {
		return nil, err
	}

	out := make([]float64, rows)
	for i := range out {
		out[i] = ConvolveAt(mid[i*width:(i+1)*width], k1, col-c0)
	}
	return out, nil
}

// band returns the half-open range of lines within radius of center,
// clipped to [0, n).
func band(center, radius, n int) (lo, hi int) {
	return max(0, center-radius), min(n, center+radius+1)
}
