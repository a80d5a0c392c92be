// Package gauss provides sampled Gaussian kernels and separable Gaussian
// smoothing of 1D traces and 2D time/frequency matrices.
//
// All smoothing uses zero padding: kernel taps that fall outside the data
// contribute nothing. Values near the edges are therefore attenuated, and the
// total intensity of a matrix is not preserved. Downstream peak detection is
// tuned against this behavior, so it is part of the contract.
//
// # Usage
//
//	k, err := gauss.NewKernel(2)                 // normalized, length 2*ceil(3σ)+1
//	y, err := gauss.Smooth1D(trace, 2)            // 1D smoothing
//	m2, err := gauss.Smooth2D(m, 2)               // isotropic, rows pass then columns pass
//	m3, err := gauss.SmoothElliptic(m, 1, 4)      // independent σ per dimension
//	row, err := gauss.SmoothSlice(m, 1, 4, k, gauss.Dim0)
//
// [SmoothSlice] returns exactly the row (Dim0) or column (Dim1) that
// [SmoothElliptic] would produce, but only smooths the band of the matrix the
// kernel reaches.
//
// # Performance
//
// Line convolutions use a direct dot-product form for short kernels and an
// FFT path for kernels of [DefaultFFTThreshold] taps or more. Both produce
// the same zero-padded result. Matrix passes are split across worker
// goroutines; see [WithWorkers].
package gauss
