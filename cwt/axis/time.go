package axis

import (
	"fmt"
	"math"
	"sort"
)

// TimeUnit selects the unit of a [TimeAxis].
type TimeUnit int

const (
	Seconds TimeUnit = iota
	Milliseconds
)

// TimeAxis is the uniform sample-time axis of a CWT output, one entry per
// column.
type TimeAxis struct {
	values []float64
	step   float64
	unit   TimeUnit
}

// NewTimeAxis builds n sample times starting at 0 with step 1/rate seconds or
// 1000/rate milliseconds.
func NewTimeAxis(rate, n int, unit TimeUnit) (*TimeAxis, error) {
	if rate <= 0 {
		return nil, ErrNoSamplingRate
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: time axis length must be >= 1: %d", ErrEmptyRange, n)
	}

	var step float64
	switch unit {
	case Seconds:
		step = 1 / float64(rate)
	case Milliseconds:
		step = 1000 / float64(rate)
	default:
		return nil, fmt.Errorf("%w: time unit %d", ErrInvalidUnit, unit)
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i) * step
	}
	return &TimeAxis{values: values, step: step, unit: unit}, nil
}

// NewTimeAxisFromValues wraps precomputed ascending sample times, as produced
// by time compression. The slice is copied.
func NewTimeAxisFromValues(values []float64, unit TimeUnit) (*TimeAxis, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty time axis", ErrEmptyRange)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: t[%d]=%v", ErrInvalidValue, i, v)
		}
	}
	for i := 1; i < len(values); i++ {
		if !(values[i] > values[i-1]) {
			return nil, fmt.Errorf("%w: t[%d]=%v, t[%d]=%v", ErrNotAscending, i-1, values[i-1], i, values[i])
		}
	}
	step := math.NaN()
	if len(values) > 1 {
		step = values[1] - values[0]
	}
	return &TimeAxis{values: append([]float64(nil), values...), step: step, unit: unit}, nil
}

// Len returns the number of samples.
func (t *TimeAxis) Len() int { return len(t.values) }

// At returns the time of sample i.
func (t *TimeAxis) At(i int) float64 { return t.values[i] }

// Step returns the spacing between the first two samples, NaN for a single
// sample axis.
func (t *TimeAxis) Step() float64 { return t.step }

// Unit returns the axis time unit.
func (t *TimeAxis) Unit() TimeUnit { return t.unit }

// Values returns a copy of the sample times.
func (t *TimeAxis) Values() []float64 {
	return append([]float64(nil), t.values...)
}

// Indices returns the inclusive column range covering [start, end]: the
// greatest index whose time is <= start and the smallest index whose time is
// >= end.
func (t *TimeAxis) Indices(start, end float64) (lo, hi int, err error) {
	n := len(t.values)
	if err := validateRange(start, end, t.values[0], t.values[n-1]); err != nil {
		return 0, 0, err
	}

	lo = sort.SearchFloat64s(t.values, start)
	if t.values[lo] > start {
		lo--
	}
	hi = sort.SearchFloat64s(t.values, end)
	return lo, hi, nil
}
