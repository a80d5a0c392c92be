package cwt

import (
	"fmt"

	"github.com/cwbudde/algo-cwt/cwt/axis"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// binWidth is the number of columns averaged per compressed bin. The last
// bin holds the remainder and may be narrower.
func binWidth(cols, n int) int {
	return (cols + n - 1) / n
}

// CompressTime averages runs of ceil(cols/n) consecutive columns of m. The
// result has ceil(cols/width) columns, which is n or fewer.
func CompressTime(m mat.Matrix, n int) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrShapeMismatch)
	}
	rows, cols := m.Dims()
	if err := validateBins(n, cols); err != nil {
		return nil, err
	}

	src := mat.DenseCopyOf(m)
	width := binWidth(cols, n)
	bins := (cols + width - 1) / width
	out := mat.NewDense(rows, bins, nil)
	for i := 0; i < rows; i++ {
		compressInto(out.RawRowView(i), src.RawRowView(i), width)
	}
	return out, nil
}

// CompressAxis averages a time axis the way [CompressTime] averages columns,
// so the compressed axis lines up with the compressed matrix.
func CompressAxis(t *axis.TimeAxis, n int) (*axis.TimeAxis, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil time axis", ErrShapeMismatch)
	}
	if err := validateBins(n, t.Len()); err != nil {
		return nil, err
	}
	values := t.Values()
	width := binWidth(len(values), n)
	out := make([]float64, (len(values)+width-1)/width)
	compressInto(out, values, width)
	return axis.NewTimeAxisFromValues(out, t.Unit())
}

func compressInto(dst, src []float64, width int) {
	for b := range dst {
		lo := b * width
		hi := min(lo+width, len(src))
		dst[b] = floats.Sum(src[lo:hi]) / float64(hi-lo)
	}
}

func indexError(i, n int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexRange, i, n)
}
