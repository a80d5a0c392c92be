package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// ImpulseMatrix returns a rows x cols zero matrix with value at [row, col].
func ImpulseMatrix(rows, cols, row, col int, value float64) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	m.Set(row, col, value)
	return m
}

// NoiseMatrix returns a rows x cols matrix of seeded white noise in [-1, 1).
func NoiseMatrix(seed int64, rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, DeterministicNoise(seed, 1, rows*cols))
}

// Bursts generates a sine carrier whose amplitude is 1 inside the given
// half-open [start, end) sample ranges and quiet elsewhere.
func Bursts(length int, period, quiet float64, ranges ...[2]int) []float64 {
	out := make([]float64, length)
	for i := range out {
		amp := quiet
		for _, r := range ranges {
			if i >= r[0] && i < r[1] {
				amp = 1
				break
			}
		}
		out[i] = amp * math.Sin(math.Pi*float64(i)/period)
	}
	return out
}
