package cwt

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-cwt/cwt/axis"
	"gonum.org/v1/gonum/mat"
)

// Transformer is an external continuous wavelet transform engine.
//
// Transform returns the real and imaginary coefficients of signal, each
// shaped [p.Rows(), len(signal)] with row 0 at the lowest frequency.
type Transformer interface {
	Transform(ctx context.Context, signal []float64, p Params) (re, im *mat.Dense, err error)
}

// TransformerFunc adapts a plain function to [Transformer].
type TransformerFunc func(ctx context.Context, signal []float64, p Params) (re, im *mat.Dense, err error)

// Transform calls f.
func (f TransformerFunc) Transform(ctx context.Context, signal []float64, p Params) (re, im *mat.Dense, err error) {
	return f(ctx, signal, p)
}

// Result is the output of one transform. The matrices are owned by the
// Result and must not be modified by callers.
type Result struct {
	params Params
	re, im *mat.Dense
	freq   *axis.FrequencyAxis
}

// Run transforms signal with t and validates the engine output.
func Run(ctx context.Context, t Transformer, signal []float64, p Params) (*Result, error) {
	if t == nil {
		return nil, ErrNilTransformer
	}
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	freq, err := p.FrequencyAxis()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	re, im, err := t.Transform(ctx, signal, p)
	if err != nil {
		return nil, fmt.Errorf("cwt: transform: %w", err)
	}
	if err := validateShape(re, im, p.Rows(), len(signal)); err != nil {
		return nil, err
	}
	return &Result{params: p, re: re, im: im, freq: freq}, nil
}

// NewResult wraps precomputed coefficients. The shape must match p.
func NewResult(p Params, re, im *mat.Dense) (*Result, error) {
	freq, err := p.FrequencyAxis()
	if err != nil {
		return nil, err
	}
	if re == nil || im == nil {
		return nil, fmt.Errorf("%w: missing real or imaginary part", ErrShapeMismatch)
	}
	_, cols := re.Dims()
	if err := validateShape(re, im, p.Rows(), cols); err != nil {
		return nil, err
	}
	return &Result{params: p, re: re, im: im, freq: freq}, nil
}

// Params returns the transform parameters.
func (r *Result) Params() Params { return r.params }

// Dims returns the number of frequency bins and time samples.
func (r *Result) Dims() (rows, cols int) { return r.re.Dims() }

// Real returns the real coefficients.
func (r *Result) Real() *mat.Dense { return r.re }

// Imag returns the imaginary coefficients.
func (r *Result) Imag() *mat.Dense { return r.im }

// FrequencyAxis returns the frequency axis of the rows.
func (r *Result) FrequencyAxis() *axis.FrequencyAxis { return r.freq }

// TimeAxis returns the sample-time axis of the columns. It needs the
// sampling rate.
func (r *Result) TimeAxis(unit axis.TimeUnit) (*axis.TimeAxis, error) {
	_, cols := r.Dims()
	return axis.NewTimeAxis(r.params.SamplingRate, cols, unit)
}
