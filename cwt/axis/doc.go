// Package axis models the frequency and time axes of a CWT output matrix.
//
// A [FrequencyAxis] stores one center frequency per matrix row in ascending
// order, log2-spaced with VoicesPerOctave entries per octave:
//
//	f[i+1] = f[i] * 2^(1/VoicesPerOctave)
//
// The transform engine emits rows from high to low frequency; the axis is
// stored reversed so row 0 is the lowest analyzed frequency and binary search
// is valid. Range queries rely on the log-uniform spacing to compute the end
// index in closed form; an axis that breaks the spacing gives undefined
// results.
//
// Frequencies are kept in wavelet units (cycles per sample). Conversions to
// true frequency (Hz) and m/z need the sampling rate and the instrument
// calibration coefficient (m/z = A / f²). Both are optional; conversions
// without them fail with errors wrapping [ErrNotConfigured].
package axis
