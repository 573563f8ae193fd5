package mdp

import (
	"fmt"
	"math"
)

// probSumTolerance is the floating tolerance used by Validate when
// checking that a probability row sums to 1.
const probSumTolerance = 1e-9

// CompactModel holds the compact (CP) transition tensors of an MDP:
// for each action a and source state s, an ordered list of successor
// state indices and a parallel list of transition probabilities.
// It is immutable once built; a single model may back any number of
// independent solves.
type CompactModel struct {
	numStates  int
	numActions int
	branching  int // successors per (action, state) pair

	// succ[a][s] and prob[a][s] are views into the flat per-action
	// arrays supplied at construction, split one chunk per source state.
	succ [][][]int
	prob [][][]float64

	// Opaque pass-through metadata from the external model builder.
	// The algorithms never interpret these.
	shape     []int
	terminals []int
	obstacles []int
}

// ModelOption configures optional metadata on a CompactModel.
type ModelOption func(*CompactModel)

// WithShape attaches the dimension descriptor of the originating state
// space (for example {rows, cols} of a grid). Pass-through only.
func WithShape(shape []int) ModelOption {
	return func(m *CompactModel) {
		m.shape = append([]int(nil), shape...)
	}
}

// WithTerminals attaches the state indices the builder marked terminal.
// Pass-through only; the solvers derive nothing from it.
func WithTerminals(states []int) ModelOption {
	return func(m *CompactModel) {
		m.terminals = append([]int(nil), states...)
	}
}

// WithObstacles attaches the state indices the builder marked as
// obstacles. Pass-through only.
func WithObstacles(states []int) ModelOption {
	return func(m *CompactModel) {
		m.obstacles = append([]int(nil), states...)
	}
}

// NewCompactModel builds a CompactModel from per-action flat arrays.
//
// succ[a] and prob[a] are parallel arrays of length S×B (B = branching
// factor); each is split into numStates equal chunks, one per source
// state, so chunk s holds the successors of state s under action a.
//
// Validation (in order):
//  1. numStates ≥ 1 (ErrBadSplit) and at least one action (ErrNoActions).
//  2. len(succ) == len(prob) (ErrRaggedTensor).
//  3. Every per-action pair has equal length, identical across actions,
//     and divisible by numStates (ErrRaggedTensor, ErrBadSplit).
//  4. Every successor index lies in [0, numStates) (ErrStateIndex).
//
// The flat arrays are copied; callers may reuse their buffers.
// Complexity: O(S·A·B) time and memory.
func NewCompactModel(succ [][]int, prob [][]float64, numStates int, opts ...ModelOption) (*CompactModel, error) {
	if numStates < 1 {
		return nil, fmt.Errorf("%w: numStates=%d", ErrBadSplit, numStates)
	}
	numActions := len(succ)
	if numActions == 0 {
		return nil, ErrNoActions
	}
	if len(prob) != numActions {
		return nil, fmt.Errorf("%w: %d successor arrays vs %d probability arrays",
			ErrRaggedTensor, numActions, len(prob))
	}

	flat := len(succ[0])
	if flat%numStates != 0 {
		return nil, fmt.Errorf("%w: action 0 has %d entries for %d states",
			ErrBadSplit, flat, numStates)
	}
	branching := flat / numStates

	m := &CompactModel{
		numStates:  numStates,
		numActions: numActions,
		branching:  branching,
		succ:       make([][][]int, numActions),
		prob:       make([][][]float64, numActions),
	}

	for a := 0; a < numActions; a++ {
		if len(succ[a]) != flat || len(prob[a]) != flat {
			return nil, fmt.Errorf("%w: action %d has %d successors and %d probabilities, want %d",
				ErrRaggedTensor, a, len(succ[a]), len(prob[a]), flat)
		}

		sCopy := append([]int(nil), succ[a]...)
		pCopy := append([]float64(nil), prob[a]...)

		m.succ[a] = make([][]int, numStates)
		m.prob[a] = make([][]float64, numStates)
		for s := 0; s < numStates; s++ {
			lo, hi := s*branching, (s+1)*branching
			m.succ[a][s] = sCopy[lo:hi]
			m.prob[a][s] = pCopy[lo:hi]
		}

		for i, sp := range sCopy {
			if sp < 0 || sp >= numStates {
				return nil, fmt.Errorf("%w: action %d entry %d points to state %d (S=%d)",
					ErrStateIndex, a, i, sp, numStates)
			}
		}
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// NumStates returns S, the number of states.
func (m *CompactModel) NumStates() int { return m.numStates }

// NumActions returns A, the number of actions.
func (m *CompactModel) NumActions() int { return m.numActions }

// Branching returns B, the number of stored successors per
// (action, state) pair.
func (m *CompactModel) Branching() int { return m.branching }

// Successors returns the successor state indices of state s under
// action a. The returned slice is a view into the model and must not be
// modified.
func (m *CompactModel) Successors(a, s int) []int { return m.succ[a][s] }

// Probabilities returns the transition probabilities parallel to
// Successors(a, s). Read-only view.
func (m *CompactModel) Probabilities(a, s int) []float64 { return m.prob[a][s] }

// Shape returns the opaque dimension descriptor attached via WithShape,
// or nil.
func (m *CompactModel) Shape() []int { return m.shape }

// Terminals returns the terminal state indices attached via
// WithTerminals, or nil.
func (m *CompactModel) Terminals() []int { return m.terminals }

// Obstacles returns the obstacle state indices attached via
// WithObstacles, or nil.
func (m *CompactModel) Obstacles() []int { return m.obstacles }

// Validate checks the stochastic invariant: every probability row sums
// to 1 within tolerance. Rows whose total mass is exactly 0 are treated
// as unreachable padding and skipped, since reachability cannot be
// determined from the tensors alone.
// Returns ErrBadProbabilitySum (with the offending action and state)
// on the first violation. Complexity: O(S·A·B).
func (m *CompactModel) Validate() error {
	for a := 0; a < m.numActions; a++ {
		for s := 0; s < m.numStates; s++ {
			sum := 0.0
			for _, p := range m.prob[a][s] {
				sum += p
			}
			if sum == 0 {
				continue
			}
			if math.Abs(sum-1) > probSumTolerance {
				return fmt.Errorf("%w: action %d state %d sums to %g", ErrBadProbabilitySum, a, s, sum)
			}
		}
	}

	return nil
}
