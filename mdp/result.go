package mdp

import "time"

// TerminationReason reports why a solve stopped. Reaching the iteration
// cap is a valid outcome, not an error; callers distinguish it from
// convergence through this field.
type TerminationReason int

const (
	// ReasonEpsilonOptimal: the value-function variation fell below the
	// ε-derived threshold; the returned policy is ε-optimal.
	ReasonEpsilonOptimal TerminationReason = iota

	// ReasonPolicyUnchanged: policy improvement produced zero differing
	// actions (policy iteration's natural fixed point).
	ReasonPolicyUnchanged

	// ReasonMaxIterations: the iteration cap was reached before the
	// convergence criterion.
	ReasonMaxIterations
)

// String returns the classic toolbox stop message for the reason.
func (r TerminationReason) String() string {
	switch r {
	case ReasonEpsilonOptimal:
		return "Iterating stopped, epsilon-optimal policy found."
	case ReasonPolicyUnchanged:
		return "Iterating stopped, unchanging policy found."
	case ReasonMaxIterations:
		return "Iterating stopped due to maximum number of iterations condition."
	default:
		return "Iterating stopped for an unknown reason."
	}
}

// Result carries the outputs of a completed solve. Policy and Value are
// owned by the caller after return but should be treated as frozen:
// they are the terminal state of a single-use solve.
type Result struct {
	// Policy maps each state to its greedy action index, length S.
	Policy []int
	// Value is the final value function, length S.
	Value []float64
	// Iterations is the number of outer iterations performed.
	Iterations int
	// Runtime is the wall-clock duration of the run loop.
	Runtime time.Duration
	// Reason records how the solve terminated.
	Reason TerminationReason
}
