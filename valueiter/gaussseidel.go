package valueiter

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/mdp"
)

// GaussSeidel runs the Gauss-Seidel variant of value iteration: within
// each sweep over s = 0..S−1, V[s] is replaced immediately after its
// backup, so later states in the same sweep read the already updated
// values of the earlier ones. This asymmetric update order typically
// converges in fewer sweeps than the synchronous backup (default cap
// DefaultGaussSeidelMaxIter) but is strictly sequential: parallelizing
// the sweep would change its semantics.
//
// Stopping criteria, analytic bound and validation are identical to
// Solve. The policy is not tracked during sweeps; after the loop one
// final full backup pass recomputes V state-by-state and records the
// greedy action (lowest index on ties).
func GaussSeidel(m *mdp.CompactModel, reward mdp.RewardSpec, discount float64, opts ...Option) (*mdp.Result, error) {
	cfg := defaultGaussSeidelOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r, v, err := prepare(m, reward, discount, cfg)
	if err != nil {
		return nil, err
	}

	thresh := threshold(discount, cfg.Epsilon)
	maxIter := cfg.MaxIter
	if discount < 1 {
		if bound, ok := boundIterations(m, r, discount, cfg.Epsilon, v); ok {
			maxIter = bound
		}
	}

	if cfg.Observer != nil {
		cfg.Observer.Begin()
	}
	start := time.Now()

	S, A := m.NumStates(), m.NumActions()
	res := &mdp.Result{Reason: mdp.ReasonMaxIterations}
	prev := make([]float64, S)
	diff := make([]float64, S)
	buf := make([]float64, m.Branching())
	for {
		res.Iterations++

		copy(prev, v)
		for s := 0; s < S; s++ {
			best := math.Inf(-1)
			for a := 0; a < A; a++ {
				q := r[a][s] + discount*gather(m, a, s, v, buf)
				if q > best {
					best = q
				}
			}
			// In-place update: states after s in this sweep see it.
			v[s] = best
		}

		vary := variation(v, prev, diff)
		if cfg.Observer != nil {
			cfg.Observer.Observe(res.Iterations, vary, v)
		}

		if vary < thresh {
			res.Reason = mdp.ReasonEpsilonOptimal
			break
		}
		if res.Iterations == maxIter {
			break
		}
	}

	// Final full pass: recompute each state's action values from the
	// converged V and derive the greedy policy.
	res.Policy = make([]int, S)
	for s := 0; s < S; s++ {
		best, bestA := math.Inf(-1), 0
		for a := 0; a < A; a++ {
			q := r[a][s] + discount*gather(m, a, s, v, buf)
			if q > best {
				best, bestA = q, a
			}
		}
		v[s] = best
		res.Policy[s] = bestA
	}

	res.Value = v
	res.Runtime = time.Since(start)
	if cfg.Observer != nil {
		cfg.Observer.End(res.Reason)
	}

	return res, nil
}

// gather computes Σ_i prob[a][s][i]·v[succ[a][s][i]] using buf as the
// gather scratch; summation order follows the stored successor order.
func gather(m *mdp.CompactModel, a, s int, v, buf []float64) float64 {
	succ := m.Successors(a, s)
	buf = buf[:len(succ)]
	for i, sp := range succ {
		buf[i] = v[sp]
	}

	return floats.Dot(m.Probabilities(a, s), buf)
}
