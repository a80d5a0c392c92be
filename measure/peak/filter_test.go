package peak

import (
	"errors"
	"math"
	"testing"
)

func TestFilterByIntensity(t *testing.T) {
	signal := make([]float64, 17)
	for i := range signal {
		signal[i] = math.Sin(math.Pi * float64(i) / 8)
	}

	got, err := FilterByIntensity(signal, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{2, 3, 4, 5, 6, 10, 11, 12, 13, 14}
	idx := got.Indices()
	if len(idx) != len(want) {
		t.Fatalf("kept %v, want %v", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("kept %v, want %v", idx, want)
		}
	}
	for i, v := range got.All() {
		if math.Abs(v) < 0.5 {
			t.Fatalf("kept |s[%d]|=%v below 0.5", i, v)
		}
		if v != signal[i] {
			t.Fatalf("s[%d]=%v changed to %v", i, signal[i], v)
		}
	}
}

func TestFilterByIntensityNegativeExtremum(t *testing.T) {
	signal := []float64{0.1, -4, 0.5, 2.5, -1.9}
	got, err := FilterByIntensity(signal, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 {
		t.Fatalf("kept %v, want [1 3]", got.Indices())
	}
	if v, ok := got.Get(3); !ok || v != 2.5 {
		t.Fatalf("s[3]=%v,%v", v, ok)
	}
}

func TestFilterByIntensityInvalid(t *testing.T) {
	signal := []float64{1, 2, 3}
	for _, thr := range []float64{-1, 0, 2, math.NaN()} {
		if _, err := FilterByIntensity(signal, thr); !errors.Is(err, ErrInvalidThreshold) {
			t.Fatalf("threshold %v: err=%v", thr, err)
		}
	}
	if _, err := FilterByIntensity(nil, 0.5); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("empty: err=%v", err)
	}
	if _, err := FilterByIntensity(signal, 1); err != nil {
		t.Fatalf("threshold 1: err=%v", err)
	}
}

func TestIntensityFloor(t *testing.T) {
	floor, err := IntensityFloor([]float64{-3, 1, 2}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if floor != 1.5 {
		t.Fatalf("floor=%v, want 1.5", floor)
	}
}
