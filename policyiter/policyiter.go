package policyiter

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/mdp"
)

// Solve runs policy iteration on the compact model m with the given
// reward specification and discount factor.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (mdp.ErrNilModel).
//  2. discount must be in (0, 1] (mdp.ErrBadDiscount).
//  3. MaxIter, EvalEpsilon and EvalMaxIter must be positive
//     (mdp.ErrBadMaxIter, mdp.ErrBadEpsilon).
//  4. reward must resolve against m (see mdp.ResolveReward).
//  5. Policy0, if set, must have length S (mdp.ErrShapeMismatch) and
//     entries in [0, A) (ErrBadPolicy).
//
// Each outer iteration evaluates the current policy iteratively (from
// the zero vector, an inexact evaluation by design) and improves it
// with one Bellman backup. The solve stops when the improved policy
// differs in zero states (mdp.ReasonPolicyUnchanged) or at the outer
// cap (mdp.ReasonMaxIterations; the last candidate is discarded).
func Solve(m *mdp.CompactModel, reward mdp.RewardSpec, discount float64, opts ...Option) (*mdp.Result, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return nil, mdp.ErrNilModel
	}
	if discount <= 0 || discount > 1 {
		return nil, fmt.Errorf("%w: got %g", mdp.ErrBadDiscount, discount)
	}
	if cfg.MaxIter <= 0 {
		return nil, fmt.Errorf("%w: got %d", mdp.ErrBadMaxIter, cfg.MaxIter)
	}
	if cfg.EvalEpsilon <= 0 {
		return nil, fmt.Errorf("%w: evaluation epsilon %g", mdp.ErrBadEpsilon, cfg.EvalEpsilon)
	}
	if cfg.EvalMaxIter <= 0 {
		return nil, fmt.Errorf("%w: evaluation cap %d", mdp.ErrBadMaxIter, cfg.EvalMaxIter)
	}

	r, err := mdp.ResolveReward(reward, m)
	if err != nil {
		return nil, err
	}

	S := m.NumStates()
	policy, err := initialPolicy(m, r, discount, cfg.Policy0)
	if err != nil {
		return nil, err
	}

	if cfg.Observer != nil {
		cfg.Observer.Begin()
	}
	start := time.Now()

	res := &mdp.Result{Reason: mdp.ReasonMaxIterations}
	v := make([]float64, S)
	for {
		res.Iterations++

		v = evalPolicy(m, r, policy, discount, cfg)

		candidate, _, berr := mdp.BellmanBackup(m, r, discount, v)
		if berr != nil {
			return nil, berr
		}

		nDifferent := 0
		for s := range candidate {
			if candidate[s] != policy[s] {
				nDifferent++
			}
		}
		if cfg.Observer != nil {
			cfg.Observer.Observe(res.Iterations, float64(nDifferent), v)
		}

		if nDifferent == 0 {
			res.Reason = mdp.ReasonPolicyUnchanged
			break
		}
		if res.Iterations == cfg.MaxIter {
			// The candidate is discarded: the reported policy is the
			// last fully evaluated one.
			break
		}
		policy = candidate
	}

	res.Policy = policy
	res.Value = v
	res.Runtime = time.Since(start)
	if cfg.Observer != nil {
		cfg.Observer.End(res.Reason)
	}

	return res, nil
}

// initialPolicy validates the caller's seed or, absent one, derives the
// policy maximizing the expected immediate reward (one backup off the
// zero value function).
func initialPolicy(m *mdp.CompactModel, r mdp.Rewards, discount float64, seed []int) ([]int, error) {
	if seed == nil {
		policy, _, err := mdp.BellmanBackup(m, r, discount, make([]float64, m.NumStates()))

		return policy, err
	}

	if len(seed) != m.NumStates() {
		return nil, fmt.Errorf("%w: policy0 has %d entries, want S=%d",
			mdp.ErrShapeMismatch, len(seed), m.NumStates())
	}
	for s, a := range seed {
		if a < 0 || a >= m.NumActions() {
			return nil, fmt.Errorf("%w: state %d has action %d (A=%d)",
				ErrBadPolicy, s, a, m.NumActions())
		}
	}

	return append([]int(nil), seed...), nil
}

// evalPolicy evaluates the fixed policy iteratively. The compact
// tensors are first restricted to the policy — for each state, the
// successor/probability row of its chosen action and the matching
// reward entry — then V[s] = Rπ[s] + γ·Σ prob·V[succ] is swept
// synchronously from the zero vector until max|ΔV| falls below
// ((1−γ)/γ)·EvalEpsilon or EvalMaxIter sweeps are done. At γ = 1 the
// threshold is zero, so the evaluation always runs to the sweep cap.
func evalPolicy(m *mdp.CompactModel, r mdp.Rewards, policy []int, discount float64, cfg Options) []float64 {
	S := m.NumStates()

	// Policy-restricted views into the model; no copying.
	succ := make([][]int, S)
	prob := make([][]float64, S)
	rPol := make([]float64, S)
	for s, a := range policy {
		succ[s] = m.Successors(a, s)
		prob[s] = m.Probabilities(a, s)
		rPol[s] = r[a][s]
	}

	thresh := (1 - discount) / discount * cfg.EvalEpsilon

	v := make([]float64, S)
	prev := make([]float64, S)
	diff := make([]float64, S)
	buf := make([]float64, m.Branching())
	for itr := 1; ; itr++ {
		copy(prev, v)
		for s := 0; s < S; s++ {
			b := buf[:len(succ[s])]
			for i, sp := range succ[s] {
				b[i] = prev[sp]
			}
			v[s] = rPol[s] + discount*floats.Dot(prob[s], b)
		}

		floats.SubTo(diff, v, prev)
		if floats.Norm(diff, math.Inf(1)) < thresh {
			break
		}
		if itr == cfg.EvalMaxIter {
			break
		}
	}

	return v
}
