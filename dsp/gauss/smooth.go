package gauss

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Dimension selects an axis of a matrix indexed [row, col].
type Dimension int

const (
	// Dim0 runs across rows (down a column). For CWT output this is the
	// frequency direction.
	Dim0 Dimension = iota
	// Dim1 runs across columns (along a row). For CWT output this is the
	// time direction.
	Dim1
)

func (d Dimension) valid() bool {
	return d == Dim0 || d == Dim1
}

// Smooth1D smooths signal with the normalized Gaussian of deviation sigma.
// The signal must hold at least 6σ+1 samples.
func Smooth1D(signal []float64, sigma float64, opts ...Option) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateSpan(len(signal), sigma, "signal"); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	kernel, err := NewKernel(sigma)
	if err != nil {
		return nil, err
	}
	lc, err := newLineConvolver(kernel, len(signal), cfg)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	if err := lc.convolve(out, signal); err != nil {
		return nil, err
	}
	return out, nil
}

// Smooth2D applies the same Gaussian along both dimensions of m: first
// along Dim0, then along Dim1 of that intermediate. Both dimensions must hold
// at least 6σ+1 samples.
func Smooth2D(m mat.Matrix, sigma float64, opts ...Option) (*mat.Dense, error) {
	return SmoothElliptic(m, sigma, sigma, opts...)
}

// SmoothElliptic is [Smooth2D] with independent deviations: sigma0 along
// Dim0 and sigma1 along Dim1. The Dim0 pass runs first.
func SmoothElliptic(m mat.Matrix, sigma0, sigma1 float64, opts ...Option) (*mat.Dense, error) {
	rows, cols := m.Dims()
	if err := validateMatrix(rows, cols, sigma0, sigma1); err != nil {
		return nil, err
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
	mid := make([]float64, rows*cols)
	if err := passDim0(mid, cols, src, rows, cols, 0, cols, k0, cfg); err != nil {
		return nil, err
	}

	out := make([]float64, rows*cols)
	if err := passDim1(out, mid, rows, cols, k1, cfg); err != nil {
		return nil, err
	}
	return mat.NewDense(rows, cols, out), nil
}

func validateMatrix(rows, cols int, sigma0, sigma1 float64) error {
	if err := validateSpan(rows, sigma0, "dimension 0"); err != nil {
		return err
	}
	return validateSpan(cols, sigma1, "dimension 1")
}

// passDim0 smooths columns [c0, c1) of the row-major rows x cols matrix src.
// Column j lands in column j-c0 of dst, a row-major matrix dstCols wide.
func passDim0(dst []float64, dstCols int, src []float64, rows, cols, c0, c1 int, kernel []float64, cfg config) error {
	return parallelLines(c1-c0, cfg.workers, func() (func(int) error, error) {
		lc, err := newLineConvolver(kernel, rows, cfg)
		if err != nil {
			return nil, err
		}
		in := make([]float64, rows)
		res := make([]float64, rows)
		return func(n int) error {
			j := c0 + n
			for i := 0; i < rows; i++ {
				in[i] = src[i*cols+j]
			}
			if err := lc.convolve(res, in); err != nil {
				return err
			}
			for i := 0; i < rows; i++ {
				dst[i*dstCols+n] = res[i]
			}
			return nil
		}, nil
	})
}

// passDim1 smooths every row of the row-major rows x cols matrix src into dst.
func passDim1(dst, src []float64, rows, cols int, kernel []float64, cfg config) error {
	return parallelLines(rows, cfg.workers, func() (func(int) error, error) {
		lc, err := newLineConvolver(kernel, cols, cfg)
		if err != nil {
			return nil, err
		}
		return func(i int) error {
			return lc.convolve(dst[i*cols:(i+1)*cols], src[i*cols:(i+1)*cols])
		}, nil
	})
}

// parallelLines runs n independent line jobs on up to workers goroutines.
// newWorker is called once per goroutine so scratch state is never shared.
func parallelLines(n, workers int, newWorker func() (func(int) error, error)) error {
	if n <= 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		job, err := newWorker()
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := job(i); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			job, err := newWorker()
			for i := lo; err == nil && i < hi; i++ {
				err = job(i)
			}
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("gauss: line %d..%d: %w", lo, hi, err)
				}
				mu.Unlock()
			}
		}(lo, hi)
	}
	wg.Wait()
	return firstErr
}
