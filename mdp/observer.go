package mdp

import (
	"fmt"
	"io"
)

// Observer receives per-iteration diagnostics from a running solve.
// Implementations must not retain the value slice across calls without
// copying it: solvers reuse their buffers between iterations.
//
// Solvers attach no observer by default; diagnostics are strictly
// opt-in.
type Observer interface {
	// Begin is called once before the first iteration.
	Begin()
	// Observe is called after each outer iteration with the 1-based
	// iteration number, the variation measure (span of the value change
	// for value iteration, differing-action count for policy
	// iteration), and the current value function.
	Observe(iteration int, variation float64, value []float64)
	// End is called once with the termination reason.
	End(reason TerminationReason)
}

// TableObserver writes the classic two-column iteration/variation table
// followed by the stop message. Purely diagnostic; write errors are
// ignored.
type TableObserver struct {
	W io.Writer
}

// Begin prints the table header.
func (t TableObserver) Begin() {
	fmt.Fprintf(t.W, "%10s%12s\n", "Iteration", "Variation")
}

// Observe prints one table row.
func (t TableObserver) Observe(iteration int, variation float64, _ []float64) {
	fmt.Fprintf(t.W, "%10d%12f\n", iteration, variation)
}

// End prints the stop message.
func (t TableObserver) End(reason TerminationReason) {
	fmt.Fprintln(t.W, reason)
}

// Recorder accumulates per-iteration variations and value-function
// snapshots for convergence plotting. With MaxEntries > 0 the oldest
// entries are dropped once the cap is reached, so memory stays bounded
// on slow-converging problems; 0 keeps everything.
type Recorder struct {
	MaxEntries int

	Variations []float64
	Values     [][]float64
	Reason     TerminationReason
}

// Begin implements Observer.
func (r *Recorder) Begin() {}

// Observe appends the variation and a copy of the value function,
// evicting the oldest entry when the cap is exceeded.
func (r *Recorder) Observe(_ int, variation float64, value []float64) {
	if r.MaxEntries > 0 && len(r.Variations) >= r.MaxEntries {
		r.Variations = r.Variations[1:]
		r.Values = r.Values[1:]
	}
	r.Variations = append(r.Variations, variation)
	r.Values = append(r.Values, append([]float64(nil), value...))
}

// End stores the termination reason.
func (r *Recorder) End(reason TerminationReason) {
	r.Reason = reason
}
