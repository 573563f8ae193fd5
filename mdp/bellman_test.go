package mdp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/mdp"
)

// twoStateRewards is the reward table of the canonical fixture:
// action 0 pays 10 in state 0, everything else pays nothing.
func twoStateRewards() mdp.Rewards {
	return mdp.Rewards{{10, 0}, {0, 0}}
}

// TestBellmanBackup_Values checks Q against hand-computed values on the
// 2-state fixture: from V = 0 the backup is the immediate reward, from
// V = (10, 0) the self-loop action earns the discounted value.
func TestBellmanBackup_Values(t *testing.T) {
	m := twoStateModel(t)
	r := twoStateRewards()

	policy, value, err := mdp.BellmanBackup(m, r, 0.9, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, policy)
	assert.Equal(t, []float64{10, 0}, value)

	// Q(0,0) = 10 + 0.9·V[1] = 10, Q(0,1) = 0 + 0.9·V[0] = 9.
	policy, value, err = mdp.BellmanBackup(m, r, 0.9, []float64{10, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, policy)
	assert.Equal(t, []float64{10, 0}, value)
}

// TestBellmanBackup_FixedPoint verifies idempotence: applying the
// operator to a fixed-point V returns the same V and a consistent
// greedy policy.
func TestBellmanBackup_FixedPoint(t *testing.T) {
	m := twoStateModel(t)
	r := twoStateRewards()
	fixed := []float64{10, 0}

	policy1, value1, err := mdp.BellmanBackup(m, r, 0.9, fixed)
	require.NoError(t, err)
	require.Equal(t, fixed, value1, "precondition: V is a fixed point")

	policy2, value2, err := mdp.BellmanBackup(m, r, 0.9, value1)
	require.NoError(t, err)
	assert.Equal(t, value1, value2)
	assert.Equal(t, policy1, policy2)
}

// TestBellmanBackup_TieBreak verifies argmax ties resolve to the
// lowest action index (first-max scan order).
func TestBellmanBackup_TieBreak(t *testing.T) {
	m := twoStateModel(t)
	equal := mdp.Rewards{{1, 1}, {1, 1}}

	policy, _, err := mdp.BellmanBackup(m, equal, 0.9, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, policy, "equal Q must pick action 0")

	// Make action 1 strictly better in state 0 only.
	better := mdp.Rewards{{1, 1}, {2, 1}}
	policy, _, err = mdp.BellmanBackup(m, better, 0.9, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, policy)
}

// TestBellmanBackup_Bounds verifies the output contracts on a valid
// input: lengths equal S and every action index lies in [0, A).
func TestBellmanBackup_Bounds(t *testing.T) {
	m := twoStateModel(t)

	policy, value, err := mdp.BellmanBackup(m, twoStateRewards(), 0.9, []float64{1, 2})
	require.NoError(t, err)
	assert.Len(t, policy, m.NumStates())
	assert.Len(t, value, m.NumStates())
	for s, a := range policy {
		assert.GreaterOrEqual(t, a, 0, "state %d", s)
		assert.Less(t, a, m.NumActions(), "state %d", s)
	}
}

// TestBellmanBackup_Errors covers nil model, wrong V length and a
// reward table that does not span A×S.
func TestBellmanBackup_Errors(t *testing.T) {
	m := twoStateModel(t)
	r := twoStateRewards()

	_, _, err := mdp.BellmanBackup(nil, r, 0.9, []float64{0, 0})
	assert.ErrorIs(t, err, mdp.ErrNilModel)

	_, _, err = mdp.BellmanBackup(m, r, 0.9, []float64{0, 0, 0})
	assert.ErrorIs(t, err, mdp.ErrShapeMismatch)

	_, _, err = mdp.BellmanBackup(m, r[:1], 0.9, []float64{0, 0})
	assert.ErrorIs(t, err, mdp.ErrShapeMismatch)

	_, _, err = mdp.BellmanBackup(m, mdp.Rewards{{10}, {0}}, 0.9, []float64{0, 0})
	assert.ErrorIs(t, err, mdp.ErrShapeMismatch)
}

// TestSpan checks the span seminorm and its shift invariance.
func TestSpan(t *testing.T) {
	assert.Equal(t, 4.0, mdp.Span([]float64{3, -1, 2}))
	assert.Equal(t, 4.0, mdp.Span([]float64{103, 99, 102}), "span ignores constant shifts")
	assert.Equal(t, 0.0, mdp.Span([]float64{7}))
}
