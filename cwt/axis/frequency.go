package axis

import (
	"fmt"
	"math"
	"sort"
)

// FrequencyAxis holds the ascending center frequencies of a CWT output, one
// per row. It is read-only after construction.
type FrequencyAxis struct {
	freqs  []float64
	voices int

	samplingRate int
	hasRate      bool
	calibration  float64
	hasCal       bool
}

// Option supplies optional unit-conversion context to a FrequencyAxis.
type Option func(*FrequencyAxis)

// WithSamplingRate sets the acquisition sampling rate in Hz.
// Non-positive values are ignored.
func WithSamplingRate(rate int) Option {
	return func(a *FrequencyAxis) {
		if rate > 0 {
			a.samplingRate = rate
			a.hasRate = true
		}
	}
}

// WithCalibration sets the calibration coefficient A of m/z = A / f².
// Non-positive values are ignored.
func WithCalibration(coefficient float64) Option {
	return func(a *FrequencyAxis) {
		if coefficient > 0 {
			a.calibration = coefficient
			a.hasCal = true
		}
	}
}

// FromOctaves builds the axis produced by a transform over octaves
// [start, end] with voices entries per octave and wavelet center
// frequency c0. The result has (end-start+1)*voices entries:
//
//	c0 / 2^(start + (i+1)/voices),  i = 0..n-1
//
// stored in reverse (ascending) order.
func FromOctaves(start, end, voices int, c0 float64, opts ...Option) (*FrequencyAxis, error) {
	if err := validateOctaves(start, end, voices, c0); err != nil {
		return nil, err
	}

	n := (end - start + 1) * voices
	freqs := make([]float64, n)
	for i := 0; i < n; i++ {
		exp := float64(start) + float64(i+1)/float64(voices)
		freqs[n-1-i] = c0 / math.Pow(2, exp)
	}
	return newAxis(freqs, voices, opts), nil
}

// New wraps already computed ascending center frequencies. The slice is
// copied. At least two strictly ascending entries are required.
func New(freqs []float64, voices int, opts ...Option) (*FrequencyAxis, error) {
	if voices <= 0 {
		return nil, fmt.Errorf("%w: voices per octave must be > 0: %d", ErrInvalidOctaves, voices)
	}
	if len(freqs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 entries, got %d", ErrNotAscending, len(freqs))
	}
	for i := 1; i < len(freqs); i++ {
		if !(freqs[i] > freqs[i-1]) {
			return nil, fmt.Errorf("%w: f[%d]=%v, f[%d]=%v", ErrNotAscending, i-1, freqs[i-1], i, freqs[i])
		}
	}
	return newAxis(append([]float64(nil), freqs...), voices, opts), nil
}

func newAxis(freqs []float64, voices int, opts []Option) *FrequencyAxis {
	a := &FrequencyAxis{freqs: freqs, voices: voices}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Len returns the number of rows the axis describes.
func (a *FrequencyAxis) Len() int { return len(a.freqs) }

// At returns the wavelet frequency of row i.
func (a *FrequencyAxis) At(i int) float64 { return a.freqs[i] }

// Min returns the lowest frequency on the axis.
func (a *FrequencyAxis) Min() float64 { return a.freqs[0] }

// Max returns the highest frequency on the axis.
func (a *FrequencyAxis) Max() float64 { return a.freqs[len(a.freqs)-1] }

// VoicesPerOctave returns the number of entries per octave.
func (a *FrequencyAxis) VoicesPerOctave() int { return a.voices }

// Frequencies returns a copy of the wavelet frequencies.
func (a *FrequencyAxis) Frequencies() []float64 {
	return append([]float64(nil), a.freqs...)
}

// SamplingRate returns the sampling rate and whether it is set.
func (a *FrequencyAxis) SamplingRate() (int, bool) { return a.samplingRate, a.hasRate }

// Calibration returns the calibration coefficient and whether it is set.
func (a *FrequencyAxis) Calibration() (float64, bool) { return a.calibration, a.hasCal }

// Sub returns the axis of rows [lo, hi] inclusive, carrying the same
// conversion context.
func (a *FrequencyAxis) Sub(lo, hi int) (*FrequencyAxis, error) {
	if lo < 0 || hi >= len(a.freqs) || lo > hi {
		return nil, fmt.Errorf("%w: rows [%d,%d] of %d", ErrEmptyRange, lo, hi, len(a.freqs))
	}
	sub := *a
	sub.freqs = append([]float64(nil), a.freqs[lo:hi+1]...)
	return &sub, nil
}

// ToTrueFrequency converts a wavelet frequency to Hz.
func (a *FrequencyAxis) ToTrueFrequency(wavelet float64) (float64, error) {
	if !a.hasRate {
		return 0, ErrNoSamplingRate
	}
	return wavelet * float64(a.samplingRate), nil
}

// ToWaveletFrequency converts a frequency in Hz to wavelet units.
func (a *FrequencyAxis) ToWaveletFrequency(hz float64) (float64, error) {
	if !a.hasRate {
		return 0, ErrNoSamplingRate
	}
	return hz / float64(a.samplingRate), nil
}

// MZToWaveletFrequency converts an m/z value to wavelet units via
// f = sqrt(A / mz). mz must be > 0.
func (a *FrequencyAxis) MZToWaveletFrequency(mz float64) (float64, error) {
	if !a.hasCal {
		return 0, ErrNoCalibration
	}
	if !(mz > 0) {
		return 0, fmt.Errorf("%w: m/z must be > 0: %v", ErrInvalidValue, mz)
	}
	return a.ToWaveletFrequency(math.Sqrt(a.calibration / mz))
}

// TrueFrequencies returns the axis in Hz.
func (a *FrequencyAxis) TrueFrequencies() ([]float64, error) {
	if !a.hasRate {
		return nil, ErrNoSamplingRate
	}
	out := make([]float64, len(a.freqs))
	for i, f := range a.freqs {
		out[i] = f * float64(a.samplingRate)
	}
	return out, nil
}

// MZValues returns the m/z value of every row. Because m/z falls as
// frequency rises, the result is descending.
func (a *FrequencyAxis) MZValues() ([]float64, error) {
	hz, err := a.TrueFrequencies()
	if err != nil {
		return nil, err
	}
	if !a.hasCal {
		return nil, ErrNoCalibration
	}
	for i, f := range hz {
		hz[i] = a.calibration / (f * f)
	}
	return hz, nil
}

// Indices returns the inclusive row range covering wavelet frequencies
// [start, end].
//
// The start row is the greatest row whose frequency is <= start. The end row
// is found in closed form from the log2 spacing, counting voice steps from
// the first row at or above start. Queries whose start lies in the top two
// rows return the last two rows.
func (a *FrequencyAxis) Indices(start, end float64) (lo, hi int, err error) {
	n := len(a.freqs)
	if err := validateRange(start, end, a.freqs[0], a.freqs[n-1]); err != nil {
		return 0, 0, err
	}
	if a.freqs[n-2] <= start {
		return n - 2, n - 1, nil
	}

	p := sort.SearchFloat64s(a.freqs, start)
	lo = p
	if a.freqs[p] > start {
		lo = p - 1
	}

	steps := int(math.Ceil(math.Log2(end/a.freqs[p]) * float64(a.voices)))
	hi = min(max(lo+steps, lo), n-1)
	return lo, hi, nil
}

// IndicesIn is [FrequencyAxis.Indices] for values in the given unit. For
// [MZ], start must be greater than end since m/z is inversely related to
// frequency.
func (a *FrequencyAxis) IndicesIn(start, end float64, unit Unit) (lo, hi int, err error) {
	var ws, we float64
	switch unit {
	case WaveletFrequency:
		ws, we = start, end
	case TrueFrequency:
		if ws, err = a.ToWaveletFrequency(start); err != nil {
			return 0, 0, err
		}
		if we, err = a.ToWaveletFrequency(end); err != nil {
			return 0, 0, err
		}
	case MZ:
		if start <= end {
			return 0, 0, fmt.Errorf("%w: start %v, end %v", ErrMZOrder, start, end)
		}
		if ws, err = a.MZToWaveletFrequency(start); err != nil {
			return 0, 0, err
		}
		if we, err = a.MZToWaveletFrequency(end); err != nil {
			return 0, 0, err
		}
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidUnit, unit)
	}
	return a.Indices(ws, we)
}
