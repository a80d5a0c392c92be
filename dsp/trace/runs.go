package trace

// Run is a maximal packet of points whose consecutive indices differ by
// exactly the step passed to [Trace.Runs].
type Run []Point

// First returns the index of the first point of the run.
func (r Run) First() int { return r[0].Index }

// Last returns the index of the last point of the run.
func (r Run) Last() int { return r[len(r)-1].Index }

// Values returns the run's values in index order.
func (r Run) Values() []float64 {
	out := make([]float64, len(r))
	for i, p := range r {
		out[i] = p.Value
	}
	return out
}

// Runs splits the trace into packets: a new packet starts wherever the gap
// to the previous key is not step. The returned runs share no memory with
// the trace.
func (t *Trace) Runs(step int) []Run {
	if len(t.points) == 0 {
		return nil
	}

	var runs []Run
	start := 0
	for i := 1; i <= len(t.points); i++ {
		if i == len(t.points) || t.points[i].Index-t.points[i-1].Index != step {
			runs = append(runs, append(Run(nil), t.points[start:i]...))
			start = i
		}
	}
	return runs
}
