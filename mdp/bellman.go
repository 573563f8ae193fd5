package mdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// BellmanBackup applies one synchronous Bellman optimality backup to v:
//
//	Q(s,a)    = R[a][s] + discount·Σ_i prob[a][s][i]·v[succ[a][s][i]]
//	policy[s] = argmax_a Q(s,a)   (ties broken at the lowest action index)
//	value[s]  = max_a    Q(s,a)
//
// v is read only; fresh policy and value slices are returned. Callers
// own the loop — the operator itself never terminates anything.
//
// Errors:
//   - ErrNilModel if m is nil.
//   - ErrShapeMismatch if len(v) != S or the reward table does not
//     cover A×S.
//
// Complexity: O(S·A·B) time, O(S+B) extra memory.
func BellmanBackup(m *CompactModel, r Rewards, discount float64, v []float64) (policy []int, value []float64, err error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}
	if len(v) != m.numStates {
		return nil, nil, fmt.Errorf("%w: value function has %d entries, want S=%d",
			ErrShapeMismatch, len(v), m.numStates)
	}
	if err = checkRewards(m, r); err != nil {
		return nil, nil, err
	}

	policy = make([]int, m.numStates)
	value = make([]float64, m.numStates)
	buf := make([]float64, m.branching)
	for s := 0; s < m.numStates; s++ {
		best := math.Inf(-1)
		bestA := 0
		for a := 0; a < m.numActions; a++ {
			q := r[a][s] + discount*m.expectedValue(a, s, v, buf)
			if q > best {
				best, bestA = q, a
			}
		}
		policy[s], value[s] = bestA, best
	}

	return policy, value, nil
}

// expectedValue computes Σ_i prob[a][s][i]·v[succ[a][s][i]] by
// gathering the successor values into buf and taking a dot product.
// The gather keeps the summation order identical to the stored
// successor order, so repeated runs reduce in the same order.
func (m *CompactModel) expectedValue(a, s int, v, buf []float64) float64 {
	succ := m.succ[a][s]
	buf = buf[:len(succ)]
	for i, sp := range succ {
		buf[i] = v[sp]
	}

	return floats.Dot(m.prob[a][s], buf)
}

// checkRewards verifies that r covers the full A×S table.
func checkRewards(m *CompactModel, r Rewards) error {
	if len(r) != m.numActions {
		return fmt.Errorf("%w: reward table has %d action rows, want A=%d",
			ErrShapeMismatch, len(r), m.numActions)
	}
	for a, row := range r {
		if len(row) != m.numStates {
			return fmt.Errorf("%w: reward row %d has %d entries, want S=%d",
				ErrShapeMismatch, a, len(row), m.numStates)
		}
	}

	return nil
}

// Span returns the span seminorm of x: max(x) − min(x). The span is
// invariant under constant shifts, which makes it the convergence
// metric of choice for discounted value iteration.
// Panics on an empty slice.
func Span(x []float64) float64 {
	return floats.Max(x) - floats.Min(x)
}
