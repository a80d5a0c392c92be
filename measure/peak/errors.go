package peak

import (
	"errors"
	"fmt"
)

// Errors returned by the peak pipeline.
var (
	ErrEmptyInput       = errors.New("peak: empty input")
	ErrInvalidThreshold = errors.New("peak: threshold must be in (0, 1]")
	ErrInvalidDistance  = errors.New("peak: invalid derivative distance")
	ErrLengthMismatch   = errors.New("peak: length mismatch")
	ErrIndexRange       = errors.New("peak: trace index outside signal")

	// ErrEmptyResult is wrapped by errors reporting that a stage produced
	// no output for the whole trace.
	ErrEmptyResult         = errors.New("peak: empty result")
	ErrNoDerivativePoints  = fmt.Errorf("%w: no derivative points, derivative distance may be too large for the data", ErrEmptyResult)
	ErrNoSpacedRegions     = fmt.Errorf("%w: no regions of correctly spaced data", ErrEmptyResult)
	ErrSmoothingNotApplied = fmt.Errorf("%w: no packet long enough for smoothing, kernel too large", ErrEmptyResult)
)

func validateThreshold(threshold float64) error {
	if !(threshold > 0 && threshold <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}
	return nil
}

func validateDistance(d, lowest int) error {
	if d < lowest {
		return fmt.Errorf("%w: %d < %d", ErrInvalidDistance, d, lowest)
	}
	return nil
}
