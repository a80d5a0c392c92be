package cwt

import (
	"github.com/cwbudde/algo-cwt/cwt/axis"
	"gonum.org/v1/gonum/mat"
)

// FrequencyWindow is a band of rows cut from a [Result].
type FrequencyWindow struct {
	// Data holds rows Lo..Hi of the selected feature.
	Data *mat.Dense
	// Axis is the frequency axis of Data's rows.
	Axis   *axis.FrequencyAxis
	Lo, Hi int
}

// TimeWindow is a span of columns cut from a [Result].
type TimeWindow struct {
	// Data holds columns Lo..Hi of the selected feature.
	Data *mat.Dense
	// Axis is the time axis of Data's columns.
	Axis   *axis.TimeAxis
	Lo, Hi int
}

// WindowFrequency returns feature f over the frequency range [start, end]
// given in unit. For [axis.MZ] start must be greater than end.
func (r *Result) WindowFrequency(start, end float64, unit axis.Unit, f Feature) (*FrequencyWindow, error) {
	lo, hi, err := r.freq.IndicesIn(start, end, unit)
	if err != nil {
		return nil, err
	}
	sub, err := r.freq.Sub(lo, hi)
	if err != nil {
		return nil, err
	}

	_, cols := r.Dims()
	data, err := featureOf(f, r.re.Slice(lo, hi+1, 0, cols), r.im.Slice(lo, hi+1, 0, cols))
	if err != nil {
		return nil, err
	}
	return &FrequencyWindow{Data: data, Axis: sub, Lo: lo, Hi: hi}, nil
}

// WindowTime returns feature f over the time range [start, end] given in
// unit. It needs the sampling rate.
func (r *Result) WindowTime(start, end float64, unit axis.TimeUnit, f Feature) (*TimeWindow, error) {
	ta, err := r.TimeAxis(unit)
	if err != nil {
		return nil, err
	}
	lo, hi, err := ta.Indices(start, end)
	if err != nil {
		return nil, err
	}
	sub, err := axis.NewTimeAxisFromValues(ta.Values()[lo:hi+1], unit)
	if err != nil {
		return nil, err
	}

	rows, _ := r.Dims()
	data, err := featureOf(f, r.re.Slice(0, rows, lo, hi+1), r.im.Slice(0, rows, lo, hi+1))
	if err != nil {
		return nil, err
	}
	return &TimeWindow{Data: data, Axis: sub, Lo: lo, Hi: hi}, nil
}

// Row returns a copy of row i of the feature matrix f, a single frequency
// slice over time.
func (r *Result) Row(i int, f Feature) ([]float64, error) {
	rows, cols := r.Dims()
	if i < 0 || i >= rows {
		return nil, indexError(i, rows)
	}
	data, err := featureOf(f, r.re.Slice(i, i+1, 0, cols), r.im.Slice(i, i+1, 0, cols))
	if err != nil {
		return nil, err
	}
	return data.RawRowView(0), nil
}
