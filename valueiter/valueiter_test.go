package valueiter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/mdp"
	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/valueiter"
)

// twoStateFixture is the canonical scenario: state 1 absorbing with no
// reward; state 0 action 0 jumps to state 1 for reward 10, action 1
// loops on state 0 for nothing.
func twoStateFixture(t *testing.T) (*mdp.CompactModel, mdp.RewardSpec) {
	t.Helper()

	m, err := mdp.NewCompactModel(
		[][]int{{1, 1}, {0, 1}},
		[][]float64{{1, 1}, {1, 1}},
		2,
	)
	require.NoError(t, err)

	r := mdp.NewMatrixReward(mat.NewDense(2, 2, []float64{
		10, 0,
		0, 0,
	}))

	return m, r
}

// singleStateFixture is a one-state self-loop paying 5 every step.
func singleStateFixture(t *testing.T) (*mdp.CompactModel, mdp.RewardSpec) {
	t.Helper()

	m, err := mdp.NewCompactModel([][]int{{0}}, [][]float64{{1}}, 1)
	require.NoError(t, err)

	return m, mdp.NewVectorReward([]float64{5})
}

// TestSolve_TwoState runs the canonical scenario: the rewarding jump is
// chosen and V converges to (10, 0) in two iterations.
func TestSolve_TwoState(t *testing.T) {
	m, r := twoStateFixture(t)

	res, err := valueiter.Solve(m, r, 0.9, valueiter.WithEpsilon(0.01))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0}, res.Policy)
	assert.InDelta(t, 10, res.Value[0], 0.01)
	assert.InDelta(t, 0, res.Value[1], 1e-12)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, mdp.ReasonEpsilonOptimal, res.Reason)
	assert.Positive(t, res.Runtime)
}

// TestSolve_SingleStateGeometric verifies the geometric-series limit:
// reward 5 at γ = 0.5 sums to 10, and the analytic bound (9 iterations
// here) guarantees the ε accuracy on its own.
func TestSolve_SingleStateGeometric(t *testing.T) {
	m, r := singleStateFixture(t)

	res, err := valueiter.Solve(m, r, 0.5)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, res.Policy)
	assert.InDelta(t, 10, res.Value[0], 0.05)
	assert.Equal(t, 9, res.Iterations, "analytic bound: ceil(log(0.002)/log(0.5))")
	assert.Equal(t, mdp.ReasonMaxIterations, res.Reason)
}

// TestSolve_BoundOverridesCap verifies the analytic bound replaces a
// generous user cap when the discount is below 1.
func TestSolve_BoundOverridesCap(t *testing.T) {
	m, r := singleStateFixture(t)

	res, err := valueiter.Solve(m, r, 0.5, valueiter.WithMaxIter(100000))
	require.NoError(t, err)

	assert.Equal(t, 9, res.Iterations)
}

// TestSolve_SeedAtFixedPoint seeds V at the fixed point: the probing
// backup has zero span (cap kept), and the first iteration converges
// immediately.
func TestSolve_SeedAtFixedPoint(t *testing.T) {
	m, r := twoStateFixture(t)

	res, err := valueiter.Solve(m, r, 0.9,
		valueiter.WithInitialValue([]float64{10, 0}),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, mdp.ReasonEpsilonOptimal, res.Reason)
	assert.Equal(t, []float64{10, 0}, res.Value)
}

// TestSolve_UndiscountedMaxIter pins the γ = 1 path: the threshold is ε
// itself, no bound is derived, and an ever-growing value function runs
// to the configured cap.
func TestSolve_UndiscountedMaxIter(t *testing.T) {
	m, r := singleStateFixture(t)

	res, err := valueiter.Solve(m, r, 1, valueiter.WithMaxIter(5))
	require.NoError(t, err)

	assert.Equal(t, 5, res.Iterations)
	assert.Equal(t, mdp.ReasonMaxIterations, res.Reason)
	assert.InDelta(t, 25, res.Value[0], 1e-12, "5 undiscounted steps of reward 5")
}

// TestSolve_ConfigErrors covers the fail-fast validation surface.
func TestSolve_ConfigErrors(t *testing.T) {
	m, r := twoStateFixture(t)

	_, err := valueiter.Solve(nil, r, 0.9)
	assert.ErrorIs(t, err, mdp.ErrNilModel)

	_, err = valueiter.Solve(m, r, 0)
	assert.ErrorIs(t, err, mdp.ErrBadDiscount)

	_, err = valueiter.Solve(m, r, 1.5)
	assert.ErrorIs(t, err, mdp.ErrBadDiscount)

	_, err = valueiter.Solve(m, r, 0.9, valueiter.WithEpsilon(0))
	assert.ErrorIs(t, err, mdp.ErrBadEpsilon)

	_, err = valueiter.Solve(m, r, 0.9, valueiter.WithMaxIter(-1))
	assert.ErrorIs(t, err, mdp.ErrBadMaxIter)

	_, err = valueiter.Solve(m, r, 0.9, valueiter.WithInitialValue([]float64{1}))
	assert.ErrorIs(t, err, mdp.ErrShapeMismatch)

	_, err = valueiter.Solve(m, mdp.NewVectorReward([]float64{1}), 0.9)
	assert.ErrorIs(t, err, mdp.ErrShapeMismatch, "reward resolution errors surface unchanged")
}

// TestSolve_Observer verifies the diagnostic sink sees one entry per
// iteration, non-increasing variations on this contraction, and the
// final reason.
func TestSolve_Observer(t *testing.T) {
	m, r := twoStateFixture(t)
	rec := &mdp.Recorder{}

	res, err := valueiter.Solve(m, r, 0.9, valueiter.WithObserver(rec))
	require.NoError(t, err)

	require.Len(t, rec.Variations, res.Iterations)
	for i := 1; i < len(rec.Variations); i++ {
		assert.LessOrEqual(t, rec.Variations[i], rec.Variations[i-1])
	}
	assert.Equal(t, res.Reason, rec.Reason)
	assert.Equal(t, res.Value, rec.Values[len(rec.Values)-1])
}
