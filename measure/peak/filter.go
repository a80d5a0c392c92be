package peak

import (
	"math"

	"github.com/cwbudde/algo-cwt/dsp/trace"
	"gonum.org/v1/gonum/floats"
)

// IntensityFloor returns threshold times the larger of |max(signal)| and
// |min(signal)|.
func IntensityFloor(signal []float64, threshold float64) (float64, error) {
	if len(signal) == 0 {
		return 0, ErrEmptyInput
	}
	if err := validateThreshold(threshold); err != nil {
		return 0, err
	}
	return threshold * math.Max(math.Abs(floats.Max(signal)), math.Abs(floats.Min(signal))), nil
}

// FilterByIntensity keeps the samples whose magnitude is strictly above
// [IntensityFloor]. Kept values are copied unchanged and keyed by their
// position in signal.
func FilterByIntensity(signal []float64, threshold float64) (*trace.Trace, error) {
	floor, err := IntensityFloor(signal, threshold)
	if err != nil {
		return nil, err
	}

	out := trace.New(len(signal) / 2)
	for i, v := range signal {
		if math.Abs(v) > floor {
			out.Set(i, v)
		}
	}
	return out, nil
}
