package gauss

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ConvolveAt returns the kernel-weighted sum of signal centred on index:
//
//	sum_i signal[index+i-half] * kernel[i],  half = len(kernel)/2
//
// Taps that land outside [0, len(signal)) contribute zero. There is no
// reflection or clamping at the edges.
func ConvolveAt(signal, kernel []float64, index int) float64 {
	lo := index - len(kernel)/2
	kStart, kEnd := 0, len(kernel)
	if lo < 0 {
		kStart = -lo
	}
	if lo+kEnd > len(signal) {
		kEnd = len(signal) - lo
	}
	if kStart >= kEnd {
		return 0
	}
	return vecmath.DotProduct(signal[lo+kStart:lo+kEnd], kernel[kStart:kEnd])
}

// lineConvolver smooths one contiguous line of a fixed length. Instances are
// not safe for concurrent use; each worker owns one.
type lineConvolver interface {
	convolve(dst, src []float64) error
}

func newLineConvolver(kernel []float64, n int, cfg config) (lineConvolver, error) {
	if len(kernel) >= cfg.fftThreshold && n >= len(kernel) {
		return newFFTLine(kernel, n)
	}
	return directLine{kernel: kernel}, nil
}

type directLine struct {
	kernel []float64
}

func (d directLine) convolve(dst, src []float64) error {
	for i := range dst {
		dst[i] = ConvolveAt(src, d.kernel, i)
	}
	return nil
}

// fftLine computes the same zero-padded correlation as directLine via one
// linear FFT convolution per line with the reversed kernel.
type fftLine struct {
	plan      *algofft.Plan[complex128]
	kernelFFT []complex128
	buf       []complex128
	offset    int
}

func newFFTLine(kernel []float64, n int) (*fftLine, error) {
	m := len(kernel)
	size := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("gauss: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, size)
	for i, v := range kernel {
		padded[m-1-i] = complex(v, 0)
	}

	f := &fftLine{
		plan:      plan,
		kernelFFT: make([]complex128, size),
		buf:       make([]complex128, size),
		offset:    m - 1 - m/2,
	}
	if err := plan.Forward(f.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("gauss: failed to compute kernel FFT: %w", err)
	}
	return f, nil
}

func (f *fftLine) convolve(dst, src []float64) error {
	for i := range f.buf {
		f.buf[i] = 0
	}
	for i, v := range src {
		f.buf[i] = complex(v, 0)
	}

	if err := f.plan.Forward(f.buf, f.buf); err != nil {
		return fmt.Errorf("gauss: forward FFT failed: %w", err)
	}
	for i := range f.buf {
		f.buf[i] *= f.kernelFFT[i]
	}
	if err := f.plan.Inverse(f.buf, f.buf); err != nil {
		return fmt.Errorf("gauss: inverse FFT failed: %w", err)
	}

	for i := range dst {
		dst[i] = real(f.buf[i+f.offset])
	}
	return nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
