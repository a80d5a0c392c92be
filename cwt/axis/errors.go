package axis

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by axis construction, conversion and range queries.
var (
	ErrBelowMinimum   = errors.New("axis: start below axis minimum")
	ErrAboveMaximum   = errors.New("axis: end above axis maximum")
	ErrEmptyRange     = errors.New("axis: end must be greater than start")
	ErrMZOrder        = errors.New("axis: m/z start must be greater than end")
	ErrInvalidUnit    = errors.New("axis: invalid unit")
	ErrInvalidOctaves = errors.New("axis: invalid octave parameters")
	ErrNotAscending   = errors.New("axis: frequencies must be strictly ascending")
	ErrInvalidValue   = errors.New("axis: invalid value")

	// ErrNotConfigured is wrapped by every error caused by missing optional
	// context rather than bad input.
	ErrNotConfigured  = errors.New("axis: not configured")
	ErrNoSamplingRate = fmt.Errorf("%w: sampling rate not set", ErrNotConfigured)
	ErrNoCalibration  = fmt.Errorf("%w: calibration coefficient not set", ErrNotConfigured)
)

func validateOctaves(start, end, voices int, c0 float64) error {
	if end < start {
		return fmt.Errorf("%w: end octave %d < start octave %d", ErrInvalidOctaves, end, start)
	}
	if voices <= 0 {
		return fmt.Errorf("%w: voices per octave must be > 0: %d", ErrInvalidOctaves, voices)
	}
	if !(c0 > 0) {
		return fmt.Errorf("%w: center frequency must be > 0: %v", ErrInvalidOctaves, c0)
	}
	return nil
}

func validateRange(start, end, lo, hi float64) error {
	if math.IsNaN(start) {
		return fmt.Errorf("%w: start is NaN", ErrInvalidValue)
	}
	if math.IsNaN(end) {
		return fmt.Errorf("%w: end is NaN", ErrInvalidValue)
	}
	if start < lo {
		return fmt.Errorf("%w: %v < %v", ErrBelowMinimum, start, lo)
	}
	if start >= end {
		return fmt.Errorf("%w: start %v, end %v", ErrEmptyRange, start, end)
	}
	if end > hi {
		return fmt.Errorf("%w: %v > %v", ErrAboveMaximum, end, hi)
	}
	return nil
}
