package mdp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Rewards is the canonical reward table R[a][s]: one length-S row per
// action. It is produced once by ResolveReward and read-only thereafter.
type Rewards [][]float64

// RewardSpec is a tagged reward input, resolved exactly once against a
// CompactModel. Use one of the New*Reward constructors; the dynamic
// shape probing of loosely-typed toolboxes becomes a closed set of
// variants here.
type RewardSpec interface {
	resolve(m *CompactModel) (Rewards, error)
}

// NewVectorReward declares a length-S state reward vector, reused for
// every action: R[a][s] == r[s].
func NewVectorReward(r []float64) RewardSpec { return vectorReward(r) }

// NewMatrixReward declares an (S, A) state×action reward matrix;
// column a becomes R[a]. The CSR type is rejected with ErrSparseReward:
// sparse rewards are only defined in per-action matrix form.
func NewMatrixReward(r mat.Matrix) RewardSpec { return matrixReward{r} }

// NewPerActionRewards declares A already-reduced per-action reward
// vectors, each of length S.
func NewPerActionRewards(rows [][]float64) RewardSpec { return perActionRewards(rows) }

// NewPerActionMatrixRewards declares A per-action S×S reward matrices
// (dense or CSR). Each is reduced row-wise against the transition
// probabilities: R[a][s] = Σ_i prob[a][s][i]·m_a(s, succ[a][s][i]),
// covering rewards that depend on source, action and destination state.
func NewPerActionMatrixRewards(ms []mat.Matrix) RewardSpec { return perActionMatrixRewards(ms) }

// ResolveReward normalizes spec into the canonical R[a][s] table for
// the given model.
//
// Errors:
//   - ErrNilModel if m is nil.
//   - ErrShapeMismatch if any supplied vector or matrix disagrees with
//     the model's S and A.
//   - ErrSparseReward for sparse input in vector or matrix position.
//   - ErrAmbiguousReward if a per-action input does not have exactly A
//     entries.
func ResolveReward(spec RewardSpec, m *CompactModel) (Rewards, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	return spec.resolve(m)
}

type vectorReward []float64

func (r vectorReward) resolve(m *CompactModel) (Rewards, error) {
	if len(r) != m.numStates {
		return nil, fmt.Errorf("%w: reward vector has %d entries, want S=%d",
			ErrShapeMismatch, len(r), m.numStates)
	}
	// One defensive copy, shared across actions: every row is the same
	// state reward regardless of the action taken.
	row := append([]float64(nil), r...)
	out := make(Rewards, m.numActions)
	for a := range out {
		out[a] = row
	}

	return out, nil
}

type matrixReward struct{ m mat.Matrix }

func (r matrixReward) resolve(m *CompactModel) (Rewards, error) {
	if _, sparse := r.m.(*CSR); sparse {
		return nil, fmt.Errorf("%w: (S, A) matrix given as CSR", ErrSparseReward)
	}
	rows, cols := r.m.Dims()
	if rows != m.numStates || cols != m.numActions {
		return nil, fmt.Errorf("%w: reward matrix is %d×%d, want %d×%d",
			ErrShapeMismatch, rows, cols, m.numStates, m.numActions)
	}
	out := make(Rewards, m.numActions)
	for a := 0; a < m.numActions; a++ {
		out[a] = make([]float64, m.numStates)
		for s := 0; s < m.numStates; s++ {
			out[a][s] = r.m.At(s, a)
		}
	}

	return out, nil
}

type perActionRewards [][]float64

func (r perActionRewards) resolve(m *CompactModel) (Rewards, error) {
	if len(r) != m.numActions {
		return nil, fmt.Errorf("%w: %d per-action vectors, want A=%d",
			ErrAmbiguousReward, len(r), m.numActions)
	}
	out := make(Rewards, m.numActions)
	for a, row := range r {
		if len(row) != m.numStates {
			return nil, fmt.Errorf("%w: per-action vector %d has %d entries, want S=%d",
				ErrShapeMismatch, a, len(row), m.numStates)
		}
		out[a] = append([]float64(nil), row...)
	}

	return out, nil
}

type perActionMatrixRewards []mat.Matrix

func (r perActionMatrixRewards) resolve(m *CompactModel) (Rewards, error) {
	if len(r) != m.numActions {
		return nil, fmt.Errorf("%w: %d per-action matrices, want A=%d",
			ErrAmbiguousReward, len(r), m.numActions)
	}
	out := make(Rewards, m.numActions)
	for a, rm := range r {
		rows, cols := rm.Dims()
		if rows != m.numStates || cols != m.numStates {
			return nil, fmt.Errorf("%w: per-action matrix %d is %d×%d, want %d×%d",
				ErrShapeMismatch, a, rows, cols, m.numStates, m.numStates)
		}
		out[a] = make([]float64, m.numStates)
		for s := 0; s < m.numStates; s++ {
			// Row-wise transition ⊙ reward sum: only the reachable
			// successors carry probability mass, so the dense row
			// reduction collapses to the compact lists.
			sum := 0.0
			succ := m.succ[a][s]
			prob := m.prob[a][s]
			for i, sp := range succ {
				sum += prob[i] * rm.At(s, sp)
			}
			out[a][s] = sum
		}
	}

	return out, nil
}
