package axis

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func mustReferenceAxis(t *testing.T, opts ...Option) *FrequencyAxis {
	t.Helper()
	a, err := FromOctaves(1, 6, 200, 2*math.Pi, opts...)
	if err != nil {
		t.Fatalf("FromOctaves: %v", err)
	}
	return a
}

func TestFromOctavesShape(t *testing.T) {
	a := mustReferenceAxis(t)
	if a.Len() != 1200 {
		t.Fatalf("len=%d, want 1200", a.Len())
	}
	if got, want := a.At(0), 2*math.Pi/128; math.Abs(got-want) > 1e-15 {
		t.Fatalf("f[0]=%v, want %v", got, want)
	}
	if got, want := a.At(1199), 2*math.Pi/math.Pow(2, 1.005); math.Abs(got-want) > 1e-12 {
		t.Fatalf("f[last]=%v, want %v", got, want)
	}
	for i := 1; i < a.Len(); i++ {
		ratio := a.At(i) / a.At(i-1)
		if math.Abs(ratio-math.Pow(2, 1.0/200)) > 1e-12 {
			t.Fatalf("ratio at %d = %v", i, ratio)
		}
	}
}

func TestFromOctavesInvalid(t *testing.T) {
	tests := []struct {
		name              string
		start, end, voice int
		c0                float64
	}{
		{"end before start", 3, 2, 10, 1},
		{"zero voices", 1, 2, 0, 1},
		{"zero c0", 1, 2, 10, 0},
		{"nan c0", 1, 2, 10, math.NaN()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromOctaves(tc.start, tc.end, tc.voice, tc.c0)
			if !errors.Is(err, ErrInvalidOctaves) {
				t.Fatalf("err=%v, want ErrInvalidOctaves", err)
			}
		})
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New([]float64{1, 1, 2}, 1); !errors.Is(err, ErrNotAscending) {
		t.Fatalf("duplicate entries: err=%v", err)
	}
	if _, err := New([]float64{1}, 1); !errors.Is(err, ErrNotAscending) {
		t.Fatalf("single entry: err=%v", err)
	}
	if _, err := New([]float64{1, 2}, 0); !errors.Is(err, ErrInvalidOctaves) {
		t.Fatalf("zero voices: err=%v", err)
	}

	in := []float64{1, 2, 4}
	a, err := New(in, 1)
	if err != nil {
		t.Fatal(err)
	}
	in[0] = 99
	if a.At(0) != 1 {
		t.Fatal("New did not copy its input")
	}
}

func TestIndices(t *testing.T) {
	a := mustReferenceAxis(t)
	tests := []struct {
		name       string
		start, end float64
		lo, hi     int
	}{
		{"bottom", 0.04909, 0.06, 0, 57},
		{"inner start", 0.05, 0.06, 5, 57},
		{"one octave", 1.0, 2.0, 869, 1069},
		{"top edge", 3.12, 3.13, 1198, 1199},
		{"top edge at entry", 3.1199, 3.13, 1198, 1199},
		{"below top edge", 3.10, 3.11, 1196, 1197},
		{"wide", 0.05, 3.13, 5, 1198},
		{"narrow", 0.0491, 0.0493, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi, err := a.Indices(tc.start, tc.end)
			if err != nil {
				t.Fatalf("Indices: %v", err)
			}
			if lo != tc.lo || hi != tc.hi {
				t.Fatalf("got (%d,%d), want (%d,%d)", lo, hi, tc.lo, tc.hi)
			}
		})
	}
}

func TestIndicesErrors(t *testing.T) {
	a := mustReferenceAxis(t)
	tests := []struct {
		name       string
		start, end float64
		want       error
	}{
		{"below minimum", 0.01, 2, ErrBelowMinimum},
		{"above maximum", 0.09, 28, ErrAboveMaximum},
		{"reversed", 0.09, 0.08, ErrEmptyRange},
		{"equal", 0.09, 0.09, ErrEmptyRange},
		{"below minimum wins over reversed", 0.01, 0.005, ErrBelowMinimum},
		{"NaN start", math.NaN(), 0.06, ErrInvalidValue},
		{"NaN end", 0.05, math.NaN(), ErrInvalidValue},
		{"infinite start", math.Inf(-1), 0.06, ErrBelowMinimum},
		{"infinite end", 0.05, math.Inf(1), ErrAboveMaximum},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := a.Indices(tc.start, tc.end)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
		})
	}
}

func TestIndicesStartAtEntry(t *testing.T) {
	a := mustReferenceAxis(t)
	for i := 0; i < a.Len()-2; i++ {
		f := a.At(i)
		lo, hi, err := a.Indices(f, f*1.0001)
		if err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
		if lo != i {
			t.Fatalf("row %d: lo=%d", i, lo)
		}
		if hi < lo || hi > lo+1 {
			t.Fatalf("row %d: hi=%d", i, hi)
		}
	}
}

func TestIndicesMatchesLinearScan(t *testing.T) {
	a := mustReferenceAxis(t)
	n := a.Len()
	step := math.Pow(2, 1.0/200)
	rng := rand.New(rand.NewPCG(42, 0))

	for k := 0; k < 2000; k++ {
		i := rng.IntN(n - 2)
		j := i + rng.IntN(n-1-i)
		// Fractional voice offsets keep log2 counts away from integers.
		start := a.At(i) * math.Pow(step, 0.1+0.8*rng.Float64())
		if k%4 == 0 {
			start = a.At(i)
		}
		end := a.At(j) * math.Pow(step, 0.1+0.8*rng.Float64())
		if end <= start {
			continue
		}

		wantLo, p, q := -1, n, n
		for r := 0; r < n; r++ {
			f := a.At(r)
			if f <= start {
				wantLo = r
			}
			if f >= start && p == n {
				p = r
			}
			if f >= end && q == n {
				q = r
			}
		}
		// Voice steps from the insertion point of start to the first row
		// at or above end, applied to the start row.
		wantHi := min(wantLo+q-p, n-1)

		lo, hi, err := a.Indices(start, end)
		if err != nil {
			t.Fatalf("[%v,%v]: %v", start, end, err)
		}
		if lo != wantLo || hi != wantHi {
			t.Fatalf("[%v,%v] rows %d..%d: got (%d,%d), want (%d,%d)", start, end, i, j, lo, hi, wantLo, wantHi)
		}
	}
}

func TestIndicesIn(t *testing.T) {
	a := mustReferenceAxis(t, WithSamplingRate(100000), WithCalibration(7.5e12))

	lo, hi, err := a.IndicesIn(4925.781, 5242.714, TrueFrequency)
	if err != nil {
		t.Fatal(err)
	}
	if lo != 1 || hi != 18 {
		t.Fatalf("true frequency: got (%d,%d), want (1,18)", lo, hi)
	}

	lo, hi, err = a.IndicesIn(309108.469, 294468.634, MZ)
	if err != nil {
		t.Fatal(err)
	}
	if lo != 1 || hi != 8 {
		t.Fatalf("m/z: got (%d,%d), want (1,8)", lo, hi)
	}

	lo, hi, err = a.IndicesIn(0.04909, 0.06, WaveletFrequency)
	if err != nil || lo != 0 || hi != 57 {
		t.Fatalf("wavelet: got (%d,%d,%v)", lo, hi, err)
	}

	if _, _, err := a.IndicesIn(294468.634, 309108.469, MZ); !errors.Is(err, ErrMZOrder) {
		t.Fatalf("ascending m/z: err=%v", err)
	}
	if _, _, err := a.IndicesIn(1, 2, Unit(7)); !errors.Is(err, ErrInvalidUnit) {
		t.Fatalf("bad unit: err=%v", err)
	}

	invalid := []struct {
		name       string
		start, end float64
		unit       Unit
	}{
		{"negative m/z", -5, -10, MZ},
		{"negative m/z end", 309108.469, -10, MZ},
		{"zero m/z end", 309108.469, 0, MZ},
		{"NaN m/z", math.NaN(), 294468.634, MZ},
		{"NaN true frequency", math.NaN(), 5242.714, TrueFrequency},
		{"NaN wavelet frequency", 0.05, math.NaN(), WaveletFrequency},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := a.IndicesIn(tc.start, tc.end, tc.unit)
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("err=%v, want %v", err, ErrInvalidValue)
			}
		})
	}
}

func TestMissingContext(t *testing.T) {
	bare := mustReferenceAxis(t)
	rateOnly := mustReferenceAxis(t, WithSamplingRate(100000))

	if _, err := bare.ToTrueFrequency(0.1); !errors.Is(err, ErrNoSamplingRate) {
		t.Fatalf("ToTrueFrequency: %v", err)
	}
	if _, err := bare.ToWaveletFrequency(100); !errors.Is(err, ErrNoSamplingRate) {
		t.Fatalf("ToWaveletFrequency: %v", err)
	}
	if _, err := bare.TrueFrequencies(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("TrueFrequencies: %v", err)
	}
	if _, _, err := bare.IndicesIn(4925.781, 5242.714, TrueFrequency); !errors.Is(err, ErrNoSamplingRate) {
		t.Fatalf("IndicesIn hz: %v", err)
	}
	if _, err := rateOnly.MZToWaveletFrequency(300000); !errors.Is(err, ErrNoCalibration) {
		t.Fatalf("MZToWaveletFrequency: %v", err)
	}
	if _, err := rateOnly.MZValues(); !errors.Is(err, ErrNoCalibration) {
		t.Fatalf("MZValues: %v", err)
	}
	if errors.Is(ErrNoCalibration, ErrNoSamplingRate) {
		t.Fatal("missing-context errors must stay distinguishable")
	}

	a := mustReferenceAxis(t, WithSamplingRate(-5), WithCalibration(0))
	if _, ok := a.SamplingRate(); ok {
		t.Fatal("negative sampling rate was accepted")
	}
	if _, ok := a.Calibration(); ok {
		t.Fatal("zero calibration was accepted")
	}
}

func TestUnitRoundTrip(t *testing.T) {
	a := mustReferenceAxis(t, WithSamplingRate(50000), WithCalibration(7.5e12))
	for _, x := range []float64{0, 0.049, 0.1, 0.5, 1.7, 3.13} {
		hz, err := a.ToTrueFrequency(x)
		if err != nil {
			t.Fatal(err)
		}
		back, err := a.ToWaveletFrequency(hz)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(back-x) > 1e-15*math.Max(1, x) {
			t.Fatalf("round trip %v -> %v", x, back)
		}
	}

	w, err := a.ToWaveletFrequency(5000)
	if err != nil || w != 0.1 {
		t.Fatalf("5000 Hz at 50 kHz = %v, %v", w, err)
	}

	w, err = a.MZToWaveletFrequency(7.5e12 / (5000.0 * 5000.0))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(w-0.1) > 1e-12 {
		t.Fatalf("m/z to wavelet = %v, want 0.1", w)
	}
}

func TestTrueFrequenciesAndMZ(t *testing.T) {
	a := mustReferenceAxis(t, WithSamplingRate(100000), WithCalibration(7.5e12))
	hz, err := a.TrueFrequencies()
	if err != nil {
		t.Fatal(err)
	}
	mz, err := a.MZValues()
	if err != nil {
		t.Fatal(err)
	}
	if len(hz) != a.Len() || len(mz) != a.Len() {
		t.Fatalf("lengths %d, %d", len(hz), len(mz))
	}
	if hz[0] != a.At(0)*100000 {
		t.Fatalf("hz[0]=%v", hz[0])
	}
	want := 7.5e12 / (hz[0] * hz[0])
	if math.Abs(mz[0]-want) > 1e-9*want {
		t.Fatalf("mz[0]=%v, want %v", mz[0], want)
	}
	for i := 1; i < len(mz); i++ {
		if !(mz[i] < mz[i-1]) {
			t.Fatalf("m/z not descending at %d", i)
		}
	}
}

func TestSub(t *testing.T) {
	a := mustReferenceAxis(t, WithSamplingRate(100000))
	sub, err := a.Sub(5, 57)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Len() != 53 || sub.At(0) != a.At(5) || sub.Max() != a.At(57) {
		t.Fatalf("sub axis = len %d [%v, %v]", sub.Len(), sub.Min(), sub.Max())
	}
	if rate, ok := sub.SamplingRate(); !ok || rate != 100000 {
		t.Fatal("sub axis lost the sampling rate")
	}
	if _, err := a.Sub(10, 5); !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("reversed sub: %v", err)
	}
	if _, err := a.Sub(0, a.Len()); !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("out of range sub: %v", err)
	}
}

func TestParseUnit(t *testing.T) {
	for _, u := range []Unit{WaveletFrequency, TrueFrequency, MZ} {
		got, err := ParseUnit(u.String())
		if err != nil || got != u {
			t.Fatalf("ParseUnit(%q) = %v, %v", u.String(), got, err)
		}
	}
	if _, err := ParseUnit("khz"); !errors.Is(err, ErrInvalidUnit) {
		t.Fatalf("ParseUnit(khz): %v", err)
	}
}
