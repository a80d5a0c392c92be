package cwt

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Feature selects the per-coefficient quantity extracted from a transform.
type Feature int

const (
	Real Feature = iota
	Imag
	// Modulus is sqrt(re² + im²).
	Modulus
	// Phase is atan(im/re), in (-π/2, π/2). A zero real part gives ±π/2,
	// and a zero coefficient gives NaN.
	Phase
)

// String returns the feature name.
func (f Feature) String() string {
	switch f {
	case Real:
		return "real"
	case Imag:
		return "imag"
	case Modulus:
		return "modulus"
	case Phase:
		return "phase"
	default:
		return "unknown"
	}
}

// ParseFeature maps a name as returned by [Feature.String] to its Feature.
func ParseFeature(s string) (Feature, error) {
	for _, f := range []Feature{Real, Imag, Modulus, Phase} {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFeature, s)
}

// Feature returns a new matrix holding feature f of every coefficient.
func (r *Result) Feature(f Feature) (*mat.Dense, error) {
	return featureOf(f, r.re, r.im)
}

// ModulusOf returns sqrt(re² + im²) elementwise.
func ModulusOf(re, im mat.Matrix) (*mat.Dense, error) {
	rd, id, err := rawPair(re, im)
	if err != nil {
		return nil, err
	}
	rows, cols := rd.Dims()
	out := mat.NewDense(rows, cols, nil)
	vecmath.Magnitude(out.RawMatrix().Data, rd.RawMatrix().Data, id.RawMatrix().Data)
	return out, nil
}

// PhaseOf returns atan(im/re) elementwise.
func PhaseOf(re, im mat.Matrix) (*mat.Dense, error) {
	rd, id, err := rawPair(re, im)
	if err != nil {
		return nil, err
	}
	rows, cols := rd.Dims()
	out := mat.NewDense(rows, cols, nil)
	dst := out.RawMatrix().Data
	reData, imData := rd.RawMatrix().Data, id.RawMatrix().Data
	for i := range dst {
		dst[i] = math.Atan(imData[i] / reData[i])
	}
	return out, nil
}

func featureOf(f Feature, re, im mat.Matrix) (*mat.Dense, error) {
	switch f {
	case Real:
		return mat.DenseCopyOf(re), nil
	case Imag:
		return mat.DenseCopyOf(im), nil
	case Modulus:
		return ModulusOf(re, im)
	case Phase:
		return PhaseOf(re, im)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidFeature, f)
	}
}

// rawPair copies re and im into contiguous dense storage of equal shape.
func rawPair(re, im mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	if re == nil || im == nil {
		return nil, nil, fmt.Errorf("%w: missing real or imaginary part", ErrShapeMismatch)
	}
	rr, rc := re.Dims()
	ir, ic := im.Dims()
	if rr != ir || rc != ic {
		return nil, nil, fmt.Errorf("%w: real %dx%d, imaginary %dx%d", ErrShapeMismatch, rr, rc, ir, ic)
	}
	return mat.DenseCopyOf(re), mat.DenseCopyOf(im), nil
}
