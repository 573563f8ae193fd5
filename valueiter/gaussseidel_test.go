package valueiter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/gridworld"
	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/mdp"
	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/valueiter"
)

// TestGaussSeidel_TwoState runs the canonical scenario through the
// in-place variant: same fixed point, same policy from the final pass.
func TestGaussSeidel_TwoState(t *testing.T) {
	m, r := twoStateFixture(t)

	res, err := valueiter.GaussSeidel(m, r, 0.9)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0}, res.Policy)
	assert.InDelta(t, 10, res.Value[0], 0.01)
	assert.InDelta(t, 0, res.Value[1], 1e-12)
	assert.Equal(t, mdp.ReasonEpsilonOptimal, res.Reason)
}

// TestGaussSeidel_Chain solves a 3-state chain 0→1→2 whose last state
// pays 8 forever at γ = 0.5 (true values 4, 8, 16). The span criterion
// is blind to constant shifts, so both variants are compared to the
// true value function in span seminorm rather than pointwise.
func TestGaussSeidel_Chain(t *testing.T) {
	m, err := mdp.NewCompactModel(
		[][]int{{1, 2, 2}},
		[][]float64{{1, 1, 1}},
		3,
	)
	require.NoError(t, err)
	r := mdp.NewPerActionRewards([][]float64{{0, 0, 8}})
	truth := []float64{4, 8, 16}

	gs, err := valueiter.GaussSeidel(m, r, 0.5)
	require.NoError(t, err)
	sync, err := valueiter.Solve(m, r, 0.5)
	require.NoError(t, err)

	assert.Equal(t, sync.Policy, gs.Policy)
	for _, res := range []*mdp.Result{gs, sync} {
		dev := make([]float64, len(truth))
		for s := range truth {
			dev[s] = res.Value[s] - truth[s]
		}
		assert.InDelta(t, 0, mdp.Span(dev), 0.02,
			"value must match the fixed point up to a constant shift")
	}
}

// TestGaussSeidel_AgreesWithStandard solves the same deterministic
// corridor with both variants: identical policies, matching values.
func TestGaussSeidel_AgreesWithStandard(t *testing.T) {
	world, err := gridworld.Build(1, 4,
		gridworld.WithNoise(0),
		gridworld.WithTerminal(3, 0, 1),
	)
	require.NoError(t, err)

	std, err := valueiter.Solve(world.Model(), world.Reward(), 0.9)
	require.NoError(t, err)
	gs, err := valueiter.GaussSeidel(world.Model(), world.Reward(), 0.9)
	require.NoError(t, err)

	assert.Equal(t, std.Policy, gs.Policy)
	for s := range std.Value {
		assert.InDelta(t, std.Value[s], gs.Value[s], 0.01, "state %d", s)
	}
	assert.LessOrEqual(t, gs.Iterations, std.Iterations)
}

// TestGaussSeidel_DefaultCap verifies the variant's smaller default
// sweep cap applies when no bound can be derived (γ = 1).
func TestGaussSeidel_DefaultCap(t *testing.T) {
	m, r := singleStateFixture(t)

	res, err := valueiter.GaussSeidel(m, r, 1)
	require.NoError(t, err)

	assert.Equal(t, valueiter.DefaultGaussSeidelMaxIter, res.Iterations)
	assert.Equal(t, mdp.ReasonMaxIterations, res.Reason)
}

// TestGaussSeidel_ConfigErrors shares the validation surface with the
// standard variant.
func TestGaussSeidel_ConfigErrors(t *testing.T) {
	m, r := twoStateFixture(t)

	_, err := valueiter.GaussSeidel(nil, r, 0.9)
	assert.ErrorIs(t, err, mdp.ErrNilModel)

	_, err = valueiter.GaussSeidel(m, r, -0.1)
	assert.ErrorIs(t, err, mdp.ErrBadDiscount)

	_, err = valueiter.GaussSeidel(m, r, 0.9, valueiter.WithEpsilon(-1))
	assert.ErrorIs(t, err, mdp.ErrBadEpsilon)

	_, err = valueiter.GaussSeidel(m, r, 0.9, valueiter.WithMaxIter(0))
	assert.ErrorIs(t, err, mdp.ErrBadMaxIter)
}
