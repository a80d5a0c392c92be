package peak

import (
	"fmt"

	"github.com/cwbudde/algo-cwt/dsp/trace"
	"gonum.org/v1/gonum/floats"
)

// FindMaxima returns the positions of the local maxima of raw, located where
// derivative changes from positive to non-positive between i and i+1. Of the
// two samples the one with the larger raw value is reported, and only if
// that value is above floor.
func FindMaxima(derivative, raw []float64, floor float64) ([]int, error) {
	if len(derivative) != len(raw) {
		return nil, fmt.Errorf("%w: derivative %d, raw %d", ErrLengthMismatch, len(derivative), len(raw))
	}

	var peaks []int
	for i := 0; i+1 < len(derivative); i++ {
		if !(derivative[i] > 0 && derivative[i+1] <= 0) {
			continue
		}
		p := i
		if raw[i+1] > raw[i] {
			p = i + 1
		}
		peaks = appendPeak(peaks, p, raw, floor)
	}
	return peaks, nil
}

// FindSparseMaxima is [FindMaxima] for a sparse derivative whose packets are
// spaced step apart. A crossing between keys a and b reports the largest raw
// sample in [a, b]. Crossings never span a gap.
func FindSparseMaxima(derivative *trace.Trace, raw []float64, floor float64, step int) ([]int, error) {
	if step < 1 {
		return nil, fmt.Errorf("%w: step %d", ErrInvalidDistance, step)
	}

	var peaks []int
	for _, run := range derivative.Runs(step) {
		if run.First() < 0 || run.Last() >= len(raw) {
			return nil, fmt.Errorf("%w: keys [%d,%d], signal length %d", ErrIndexRange, run.First(), run.Last(), len(raw))
		}
		for k := 0; k+1 < len(run); k++ {
			a, b := run[k], run[k+1]
			if !(a.Value > 0 && b.Value <= 0) {
				continue
			}
			p := a.Index + floats.MaxIdx(raw[a.Index:b.Index+1])
			peaks = appendPeak(peaks, p, raw, floor)
		}
	}
	return peaks, nil
}

func appendPeak(peaks []int, p int, raw []float64, floor float64) []int {
	if raw[p] <= floor {
		return peaks
	}
	if n := len(peaks); n > 0 && peaks[n-1] == p {
		return peaks
	}
	return append(peaks, p)
}
