package gauss

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-cwt/internal/testutil"
)

func BenchmarkSmooth1D(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1, 16384)
	for _, sigma := range []float64{2, 8, 32} {
		b.Run("sigma="+strconv.FormatFloat(sigma, 'f', -1, 64), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Smooth1D(signal, sigma)
			}
		})
	}
}

func BenchmarkSmoothElliptic(b *testing.B) {
	m := testutil.NoiseMatrix(1, 200, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = SmoothElliptic(m, 2, 16)
	}
}

func BenchmarkSmoothSlice(b *testing.B) {
	m := testutil.NoiseMatrix(1, 200, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = SmoothSlice(m, 2, 16, 100, Dim0)
	}
}
