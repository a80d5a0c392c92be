package axis

// Unit identifies the unit of a frequency value passed to a range query.
type Unit int

const (
	// WaveletFrequency is the transform's native unit, cycles per sample.
	WaveletFrequency Unit = iota
	// TrueFrequency is wavelet frequency times the sampling rate, in Hz.
	TrueFrequency
	// MZ is mass-to-charge ratio, A / TrueFrequency². It decreases as
	// frequency increases.
	MZ
)

// String returns a human-readable unit name.
func (u Unit) String() string {
	switch u {
	case WaveletFrequency:
		return "wavelet"
	case TrueFrequency:
		return "hz"
	case MZ:
		return "mz"
	default:
		return "unknown"
	}
}

// ParseUnit maps a unit name as returned by [Unit.String] back to its Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "wavelet":
		return WaveletFrequency, nil
	case "hz":
		return TrueFrequency, nil
	case "mz":
		return MZ, nil
	default:
		return 0, ErrInvalidUnit
	}
}
