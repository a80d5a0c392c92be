package gauss

import (
	"errors"
	"fmt"
)

// Errors returned by kernel construction and smoothing.
var (
	ErrInvalidDeviation = errors.New("gauss: deviation must be > 0")
	ErrKernelTooLarge   = errors.New("gauss: kernel larger than data")
	ErrInvalidDimension = errors.New("gauss: invalid dimension")
	ErrEmptyInput       = errors.New("gauss: empty input")
	ErrSliceIndex       = errors.New("gauss: slice index out of range")
)

func validateDeviation(sigma float64) error {
	if !(sigma > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDeviation, sigma)
	}
	return nil
}

// validateSpan checks that a line of n samples can hold a kernel of
// deviation sigma, i.e. n >= 6σ+1.
func validateSpan(n int, sigma float64, name string) error {
	if err := validateDeviation(sigma); err != nil {
		return err
	}
	if float64(n) < 6*sigma+1 {
		return fmt.Errorf("%w: %s length %d < 6*%v+1", ErrKernelTooLarge, name, n, sigma)
	}
	return nil
}
