package gauss

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Size returns the default kernel length for deviation sigma: 2*ceil(3σ)+1.
func Size(sigma float64) int {
	return 2*int(math.Ceil(3*sigma)) + 1
}

// Sample returns the unnormalized sampled Gaussian of deviation sigma.
//
// Element i is exp(-(i-half)²/(2σ²)) / (σ√(2π)) with half = size/2. The
// length is [Size] unless overridden with [WithSize]. The elements of a
// default-length kernel sum to slightly less than 1; use [NewKernel] for the
// normalized form.
func Sample(sigma float64, opts ...Option) ([]float64, error) {
	if err := validateDeviation(sigma); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	size := cfg.size
	if size <= 0 {
		size = Size(sigma)
	}

	out := make([]float64, size)
	half := size / 2
	scale := 1 / (sigma * math.Sqrt(2*math.Pi))
	den := 2 * sigma * sigma
	for i := range out {
		d := float64(i - half)
		out[i] = scale * math.Exp(-d*d/den)
	}
	return out, nil
}

// Normalize returns a copy of k scaled so its elements sum to 1.
// A kernel whose sum is exactly zero is returned unchanged (as a copy).
func Normalize(k []float64) []float64 {
	out := make([]float64, len(k))
	sum := vecmath.Sum(k)
	if sum == 0 {
		copy(out, k)
		return out
	}
	for i, v := range k {
		out[i] = v / sum
	}
	return out
}

// NewKernel returns the normalized sampled Gaussian of deviation sigma.
func NewKernel(sigma float64, opts ...Option) ([]float64, error) {
	k, err := Sample(sigma, opts...)
	if err != nil {
		return nil, err
	}
	return Normalize(k), nil
}
