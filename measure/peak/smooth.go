package peak

import (
	"fmt"

	"github.com/cwbudde/algo-cwt/dsp/gauss"
	"github.com/cwbudde/algo-cwt/dsp/trace"
)

// SmoothDownsampledDerivative smooths each packet of a downsampled
// derivative. sigma is given in samples of the original signal; packets
// (keys spaced 2d+1 apart) are smoothed at sigma/(2d+1). A packet is
// smoothed only if it holds more than 6·sigma/(2d+1)+1 points; shorter
// packets pass through unchanged.
//
// The final key of t never joins a packet and is left out of the result.
// At least one packet must be long enough to smooth.
func SmoothDownsampledDerivative(t *trace.Trace, sigma float64, d int, opts ...gauss.Option) (*trace.Trace, error) {
	if !(sigma > 0) {
		return nil, fmt.Errorf("%w: %v", gauss.ErrInvalidDeviation, sigma)
	}
	if err := validateDistance(d, 0); err != nil {
		return nil, err
	}

	pts := t.Points()
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: %d points", ErrNoSpacedRegions, len(pts))
	}
	body := trace.FromPoints(pts[:len(pts)-1]...)

	step := 2*d + 1
	scaled := sigma / float64(step)
	minLen := 6*scaled + 1

	out := trace.New(body.Len())
	applied := false
	for _, run := range body.Runs(step) {
		if float64(len(run)) <= minLen {
			for _, p := range run {
				out.Set(p.Index, p.Value)
			}
			continue
		}

		smoothed, err := gauss.Smooth1D(run.Values(), scaled, opts...)
		if err != nil {
			return nil, fmt.Errorf("peak: smoothing packet at %d: %w", run.First(), err)
		}
		for i, p := range run {
			out.Set(p.Index, smoothed[i])
		}
		applied = true
	}

	if !applied {
		return nil, fmt.Errorf("%w: deviation %v at spacing %d", ErrSmoothingNotApplied, sigma, step)
	}
	return out, nil
}
