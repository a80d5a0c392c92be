// Package cwt holds the output of a continuous wavelet transform and the
// operations that slice it up for peak analysis.
//
// The transform itself runs in an external engine behind the [Transformer]
// interface. [Run] invokes it, checks the returned shape and wraps the real
// and imaginary matrices in a [Result]. Both matrices are indexed
// [frequencyBin, timeSample]; row 0 is the lowest analyzed frequency, matching
// [axis.FrequencyAxis].
//
// From a Result callers derive per-sample features (modulus, phase), cut
// frequency or time windows, and compress the time dimension into averaged
// bins.
package cwt
