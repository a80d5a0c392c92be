package peak

import (
	"fmt"

	"github.com/cwbudde/algo-cwt/dsp/trace"
)

// Derivative returns the central difference of signal with distance d on
// both sides. Within d of an edge the difference is taken to the edge sample
// instead:
//
//	i-d < 0:     (s[i+d] - s[0]) / (i+d)
//	i+d >= n:    (s[n-1] - s[i-d]) / (n-1-i+d)
//	otherwise:   (s[i+d] - s[i-d]) / 2d
//
// d must be in [1, len(signal)/2].
func Derivative(signal []float64, d int) ([]float64, error) {
	n := len(signal)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateDistance(d, 1); err != nil {
		return nil, err
	}
	if d > n/2 {
		return nil, fmt.Errorf("%w: %d exceeds half the signal length %d", ErrInvalidDistance, d, n)
	}

	out := make([]float64, n)
	for i := range out {
		switch {
		case i-d < 0:
			out[i] = (signal[i+d] - signal[0]) / float64(i+d)
		case i+d >= n:
			out[i] = (signal[n-1] - signal[i-d]) / float64(n-1-i+d)
		default:
			out[i] = (signal[i+d] - signal[i-d]) / float64(2*d)
		}
	}
	return out, nil
}

// DownsampledDerivative takes one central difference for every 2d+1
// contiguous samples of t. Within each packet of consecutive keys, the
// sample at run offset k = 2d, 4d+1, ... pairs with the sample 2d before it:
//
//	out[key-d] = (t[key] - t[key-2d]) / 2d
//
// A gap in the keys starts a new packet, so no difference spans a gap. The
// first key after a gap is counted as offset 0 of the new packet. The result
// keys are spaced 2d+1 apart within a packet.
func DownsampledDerivative(t *trace.Trace, d int) (*trace.Trace, error) {
	if err := validateDistance(d, 1); err != nil {
		return nil, err
	}

	span := 2 * d
	out := trace.New(t.Len() / (span + 1))
	for _, run := range t.Runs(1) {
		for k := span; k < len(run); k += span + 1 {
			out.Set(run[k].Index-d, (run[k].Value-run[k-span].Value)/float64(span))
		}
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%w: distance %d, %d points", ErrNoDerivativePoints, d, t.Len())
	}
	return out, nil
}

// StandardDerivative differentiates a sparse trace without downsampling.
// Packets are runs of keys spaced 2d+1 apart, where d is the distance used
// by a previous [DownsampledDerivative], or 0 for raw filtered data. Inside
// a packet every point with a neighbor on both sides gets
//
//	(next - prev) / (next.key - prev.key)
//
// so each packet loses its first and last point. The key that breaks a
// packet opens the next one.
func StandardDerivative(t *trace.Trace, d int) (*trace.Trace, error) {
	if err := validateDistance(d, 0); err != nil {
		return nil, err
	}

	out := trace.New(t.Len())
	for _, run := range t.Runs(2*d + 1) {
		for k := 2; k < len(run); k++ {
			prev, next := run[k-2], run[k]
			out.Set(run[k-1].Index, (next.Value-prev.Value)/float64(next.Index-prev.Index))
		}
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%w: spacing %d", ErrNoSpacedRegions, 2*d+1)
	}
	return out, nil
}
