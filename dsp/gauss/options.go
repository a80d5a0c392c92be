package gauss

import "runtime"

// DefaultFFTThreshold is the kernel length from which line convolutions
// switch from the direct form to the FFT form.
const DefaultFFTThreshold = 64

// Option configures kernel construction and smoothing.
type Option func(*config)

type config struct {
	size         int
	workers      int
	fftThreshold int
}

func defaultConfig() config {
	return config{
		workers:      runtime.GOMAXPROCS(0),
		fftThreshold: DefaultFFTThreshold,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSize overrides the kernel length used by [Sample] and [NewKernel].
// Non-positive values are ignored.
func WithSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.size = n
		}
	}
}

// WithWorkers sets the number of goroutines used per matrix pass.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithFFTThreshold sets the kernel length from which the FFT convolution
// path is used. Values below 1 are ignored.
func WithFFTThreshold(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.fftThreshold = n
		}
	}
}
