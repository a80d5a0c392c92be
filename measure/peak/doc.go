// Package peak locates peaks in a single CWT frequency slice.
//
// Mass-spectrometry beat signals carry information only in bursts separated
// by near-silent stretches. The pipeline therefore works on sparse traces
// (see [trace.Trace]) whose gaps are discovered rather than stored:
//
//	FilterByIntensity        keep |v| above a fraction of the slice extremum
//	DownsampledDerivative    one central difference per 2d+1 contiguous samples
//	SmoothDownsampledDerivative
//	                         Gaussian smoothing of each long-enough packet
//	FindSparseMaxima         positive to non-positive derivative crossings
//
// Every stage that works on packets takes the key step of its input: 1 for
// filtered data and 2d+1 for data downsampled with derivative distance d.
// Values are never computed across a gap.
//
// A stage that produces nothing at all fails with an error wrapping
// [ErrEmptyResult]; an empty result almost always means the distance or the
// deviation does not fit the data.
//
// [Analyzer] chains the stages with a [Config].
package peak
