package cwt

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by result construction, windowing and compression.
var (
	ErrShapeMismatch  = errors.New("cwt: matrix shape mismatch")
	ErrInvalidBins    = errors.New("cwt: invalid bin count")
	ErrIndexRange     = errors.New("cwt: index out of range")
	ErrInvalidFeature = errors.New("cwt: invalid feature")
	ErrNilTransformer = errors.New("cwt: nil transformer")
	ErrEmptySignal    = errors.New("cwt: empty signal")
)

func validateShape(re, im *mat.Dense, rows, cols int) error {
	if re == nil || im == nil {
		return fmt.Errorf("%w: missing real or imaginary part", ErrShapeMismatch)
	}
	rr, rc := re.Dims()
	ir, ic := im.Dims()
	if rr != ir || rc != ic {
		return fmt.Errorf("%w: real %dx%d, imaginary %dx%d", ErrShapeMismatch, rr, rc, ir, ic)
	}
	if rows >= 0 && (rr != rows || rc != cols) {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrShapeMismatch, rr, rc, rows, cols)
	}
	return nil
}

func validateBins(n, cols int) error {
	if n <= 0 || n > cols {
		return fmt.Errorf("%w: %d bins for %d samples", ErrInvalidBins, n, cols)
	}
	return nil
}
