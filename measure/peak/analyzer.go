package peak

import (
	"fmt"

	"github.com/cwbudde/algo-cwt/dsp/gauss"
	"github.com/cwbudde/algo-cwt/dsp/trace"
	"gonum.org/v1/gonum/mat"
)

// Default analyzer settings.
const (
	DefaultThreshold          = 0.2
	DefaultDerivativeDistance = 1
	DefaultSmoothingDeviation = 3.0
)

// Config controls an [Analyzer].
type Config struct {
	// Threshold is the intensity filter fraction in (0, 1].
	Threshold float64
	// DerivativeDistance is d of the downsampled derivative, >= 1.
	DerivativeDistance int
	// SmoothingDeviation is the derivative smoothing sigma in original
	// samples. 0 disables smoothing.
	SmoothingDeviation float64

	gaussOpts []gauss.Option
}

// DefaultConfig returns the default analyzer configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:          DefaultThreshold,
		DerivativeDistance: DefaultDerivativeDistance,
		SmoothingDeviation: DefaultSmoothingDeviation,
	}
}

// Option mutates analyzer configuration.
type Option func(*Config)

// WithThreshold sets the intensity filter fraction. Values outside (0, 1]
// are ignored.
func WithThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if validateThreshold(threshold) == nil {
			cfg.Threshold = threshold
		}
	}
}

// WithDerivativeDistance sets d. Values below 1 are ignored.
func WithDerivativeDistance(d int) Option {
	return func(cfg *Config) {
		if d >= 1 {
			cfg.DerivativeDistance = d
		}
	}
}

// WithSmoothingDeviation sets the derivative smoothing sigma. 0 disables
// smoothing; negative values are ignored.
func WithSmoothingDeviation(sigma float64) Option {
	return func(cfg *Config) {
		if sigma >= 0 {
			cfg.SmoothingDeviation = sigma
		}
	}
}

// WithSmoothingOptions passes options through to the Gaussian smoother.
func WithSmoothingOptions(opts ...gauss.Option) Option {
	return func(cfg *Config) {
		cfg.gaussOpts = append(cfg.gaussOpts, opts...)
	}
}

// Report holds every stage of one slice analysis.
type Report struct {
	// Floor is the intensity floor of the slice.
	Floor float64
	// Filtered holds the samples above Floor.
	Filtered *trace.Trace
	// Derivative is the downsampled derivative of Filtered.
	Derivative *trace.Trace
	// Smoothed is the smoothed derivative, or Derivative when smoothing is
	// disabled.
	Smoothed *trace.Trace
	// Peaks are slice positions of the detected maxima.
	Peaks []int
}

// Analyzer runs the peak pipeline over frequency slices.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer returns an analyzer with [DefaultConfig] modified by opts.
func NewAnalyzer(opts ...Option) *Analyzer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Analyzer{cfg: cfg}
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// Analyze filters, differentiates, smooths and searches one slice.
func (a *Analyzer) Analyze(slice []float64) (*Report, error) {
	floor, err := IntensityFloor(slice, a.cfg.Threshold)
	if err != nil {
		return nil, err
	}
	filtered, err := FilterByIntensity(slice, a.cfg.Threshold)
	if err != nil {
		return nil, err
	}

	d := a.cfg.DerivativeDistance
	deriv, err := DownsampledDerivative(filtered, d)
	if err != nil {
		return nil, err
	}

	smoothed := deriv
	if a.cfg.SmoothingDeviation > 0 {
		smoothed, err = SmoothDownsampledDerivative(deriv, a.cfg.SmoothingDeviation, d, a.cfg.gaussOpts...)
		if err != nil {
			return nil, err
		}
	}

	peaks, err := FindSparseMaxima(smoothed, slice, floor, 2*d+1)
	if err != nil {
		return nil, err
	}
	return &Report{
		Floor:      floor,
		Filtered:   filtered,
		Derivative: deriv,
		Smoothed:   smoothed,
		Peaks:      peaks,
	}, nil
}

// AnalyzeRows analyzes every row of m, such as a frequency window of a CWT
// modulus. The first failing row aborts the call.
func (a *Analyzer) AnalyzeRows(m mat.Matrix) ([]*Report, error) {
	rows, cols := m.Dims()
	reports := make([]*Report, rows)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, m)
		r, err := a.Analyze(row)
		if err != nil {
			return nil, fmt.Errorf("peak: row %d: %w", i, err)
		}
		reports[i] = r
	}
	return reports, nil
}
