package cwt

import (
	"fmt"

	"github.com/cwbudde/algo-cwt/cwt/axis"
)

// Params are the transform parameters handed to a [Transformer] and kept
// with its [Result].
type Params struct {
	StartOctave     int
	EndOctave       int
	VoicesPerOctave int
	// C0 is the wavelet center frequency.
	C0 float64
	// Threads is passed through to the engine.
	Threads int
	// Optimize asks the engine to plan its FFTs before running.
	Optimize bool

	// SamplingRate in Hz, 0 when unknown.
	SamplingRate int
	// Calibration is the coefficient A of m/z = A / f², 0 when unknown.
	Calibration float64
}

// Rows returns the number of frequency bins the transform produces.
func (p Params) Rows() int {
	return (p.EndOctave - p.StartOctave + 1) * p.VoicesPerOctave
}

// FrequencyAxis builds the frequency axis described by p.
func (p Params) FrequencyAxis() (*axis.FrequencyAxis, error) {
	a, err := axis.FromOctaves(p.StartOctave, p.EndOctave, p.VoicesPerOctave, p.C0,
		axis.WithSamplingRate(p.SamplingRate),
		axis.WithCalibration(p.Calibration),
	)
	if err != nil {
		return nil, fmt.Errorf("cwt: %w", err)
	}
	return a, nil
}
