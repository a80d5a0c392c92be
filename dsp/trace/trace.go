// Package trace provides a sparse, ordered index→value trace.
//
// A Trace keeps unique integer keys in ascending order. Keys may have gaps;
// maximal runs of keys separated by a fixed step are called packets and are
// discovered on demand with [Trace.Runs] rather than stored.
package trace

import (
	"iter"
	"sort"
)

// Point is one sample of a sparse trace.
type Point struct {
	Index int
	Value float64
}

// Trace is an ordered index→value mapping. The zero value is an empty trace
// ready to use.
type Trace struct {
	points []Point
}

// New returns an empty trace with room for capacity points.
func New(capacity int) *Trace {
	return &Trace{points: make([]Point, 0, max(capacity, 0))}
}

// FromPoints builds a trace from pts in any order. Later duplicates replace
// earlier ones.
func FromPoints(pts ...Point) *Trace {
	t := New(len(pts))
	for _, p := range pts {
		t.Set(p.Index, p.Value)
	}
	return t
}

// Set stores value at index, replacing any existing value.
// Appending in ascending index order is O(1).
func (t *Trace) Set(index int, value float64) {
	n := len(t.points)
	if n == 0 || t.points[n-1].Index < index {
		t.points = append(t.points, Point{Index: index, Value: value})
		return
	}

	pos := t.search(index)
	if pos < n && t.points[pos].Index == index {
		t.points[pos].Value = value
		return
	}
	t.points = append(t.points, Point{})
	copy(t.points[pos+1:], t.points[pos:])
	t.points[pos] = Point{Index: index, Value: value}
}

// Get returns the value stored at index.
func (t *Trace) Get(index int) (float64, bool) {
	pos := t.search(index)
	if pos < len(t.points) && t.points[pos].Index == index {
		return t.points[pos].Value, true
	}
	return 0, false
}

// Len returns the number of stored points.
func (t *Trace) Len() int {
	return len(t.points)
}

// At returns the i-th point in ascending index order.
func (t *Trace) At(i int) Point {
	return t.points[i]
}

// Last returns the point with the greatest index.
func (t *Trace) Last() (Point, bool) {
	if len(t.points) == 0 {
		return Point{}, false
	}
	return t.points[len(t.points)-1], true
}

// Points returns a copy of the stored points in ascending index order.
func (t *Trace) Points() []Point {
	return append([]Point(nil), t.points...)
}

// Indices returns the stored keys in ascending order.
func (t *Trace) Indices() []int {
	out := make([]int, len(t.points))
	for i, p := range t.points {
		out[i] = p.Index
	}
	return out
}

// Values returns the stored values in ascending key order.
func (t *Trace) Values() []float64 {
	out := make([]float64, len(t.points))
	for i, p := range t.points {
		out[i] = p.Value
	}
	return out
}

// All iterates over index, value pairs in ascending index order.
func (t *Trace) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for _, p := range t.points {
			if !yield(p.Index, p.Value) {
				return
			}
		}
	}
}

// Dense expands the trace into a slice of length n. Missing indices and
// indices outside [0, n) are filled with fill and dropped respectively.
func (t *Trace) Dense(n int, fill float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = fill
	}
	for _, p := range t.points {
		if p.Index >= 0 && p.Index < n {
			out[p.Index] = p.Value
		}
	}
	return out
}

func (t *Trace) search(index int) int {
	return sort.Search(len(t.points), func(i int) bool {
		return t.points[i].Index >= index
	})
}
