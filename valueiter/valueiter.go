package valueiter

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/mdp"
)

// Solve runs standard (synchronous) value iteration on the compact
// model m with the given reward specification and discount factor.
//
// Each iteration applies one Bellman optimality backup and measures the
// span-seminorm variation of the value update. Iteration stops when the
// variation falls below ε·(1−γ)/γ (ε itself at γ = 1) or when the
// iteration cap is reached; both are valid outcomes, reported through
// Result.Reason. For γ < 1 the cap is replaced by the analytic
// span-seminorm bound derived from one probing backup.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (mdp.ErrNilModel).
//  2. discount must be in (0, 1] (mdp.ErrBadDiscount).
//  3. Epsilon must be > 0 (mdp.ErrBadEpsilon).
//  4. MaxIter must be > 0 (mdp.ErrBadMaxIter).
//  5. reward must resolve against m (see mdp.ResolveReward).
//  6. InitialValue, if set, must have exactly S entries
//     (mdp.ErrShapeMismatch).
//
// The solve is single-use and synchronous; no state is shared with the
// caller until the Result is returned.
func Solve(m *mdp.CompactModel, reward mdp.RewardSpec, discount float64, opts ...Option) (*mdp.Result, error) {
	cfg := defaultOptions()
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
		// The probing backup runs off the (possibly seeded) initial V;
		// the analytic bound replaces any configured cap.
		if bound, ok := boundIterations(m, r, discount, cfg.Epsilon, v); ok {
			maxIter = bound
		}
	}

	if cfg.Observer != nil {
		cfg.Observer.Begin()
	}
	start := time.Now()

	res := &mdp.Result{Reason: mdp.ReasonMaxIterations}
	prev := make([]float64, m.NumStates())
	diff := make([]float64, m.NumStates())
	for {
		res.Iterations++

		copy(prev, v)
		policy, value, berr := mdp.BellmanBackup(m, r, discount, v)
		if berr != nil {
			return nil, berr
		}
		res.Policy, v = policy, value

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

	res.Value = v
	res.Runtime = time.Since(start)
	if cfg.Observer != nil {
		cfg.Observer.End(res.Reason)
	}

	return res, nil
}

// prepare validates the shared configuration surface of both variants
// and returns the resolved reward table and the working value function.
func prepare(m *mdp.CompactModel, reward mdp.RewardSpec, discount float64, cfg Options) (mdp.Rewards, []float64, error) {
	if m == nil {
		return nil, nil, mdp.ErrNilModel
	}
	if discount <= 0 || discount > 1 {
		return nil, nil, fmt.Errorf("%w: got %g", mdp.ErrBadDiscount, discount)
	}
	if cfg.Epsilon <= 0 {
		return nil, nil, fmt.Errorf("%w: got %g", mdp.ErrBadEpsilon, cfg.Epsilon)
	}
	if cfg.MaxIter <= 0 {
		return nil, nil, fmt.Errorf("%w: got %d", mdp.ErrBadMaxIter, cfg.MaxIter)
	}

	r, err := mdp.ResolveReward(reward, m)
	if err != nil {
		return nil, nil, err
	}

	v := make([]float64, m.NumStates())
	if cfg.InitialValue != nil {
		if len(cfg.InitialValue) != m.NumStates() {
			return nil, nil, fmt.Errorf("%w: initial value has %d entries, want S=%d",
				mdp.ErrShapeMismatch, len(cfg.InitialValue), m.NumStates())
		}
		copy(v, cfg.InitialValue)
	}

	return r, v, nil
}

// threshold returns the variation threshold for an ε-optimal policy:
// ε·(1−γ)/γ for γ < 1, ε for γ = 1.
func threshold(discount, epsilon float64) float64 {
	if discount < 1 {
		return epsilon * (1 - discount) / discount
	}

	return epsilon
}

// boundIterations derives the analytic iteration bound for γ < 1 from
// one Bellman backup off v (Puterman, Prop. 6.6.5):
//
//	maxIter = ceil( log(ε·(1−γ)/γ / span(V₁−V₀)) / log(γ·k) )
//
// with k = 1 — the compact model holds back no absorbing probability
// mass, so the contraction modulus is the discount itself. The bound is
// clamped to at least 1. A zero probing span means the seed is already
// a span fixed point; the configured cap is kept (ok = false) since the
// bound is undefined there.
func boundIterations(m *mdp.CompactModel, r mdp.Rewards, discount, epsilon float64, v []float64) (int, bool) {
	_, value, err := mdp.BellmanBackup(m, r, discount, v)
	if err != nil {
		return 0, false
	}

	diff := make([]float64, len(v))
	span := variation(value, v, diff)
	if span == 0 {
		return 0, false
	}

	bound := math.Log(epsilon*(1-discount)/discount/span) / math.Log(discount)
	n := int(math.Ceil(bound))
	if n < 1 {
		n = 1
	}

	return n, true
}

// variation measures the value-function change: the span seminorm of
// curr−prev, computed into diff. A single-state MDP degenerates the
// span to an identical zero, so |ΔV| is used there instead to keep the
// stopping rule meaningful.
func variation(curr, prev, diff []float64) float64 {
	floats.SubTo(diff, curr, prev)
	if len(diff) == 1 {
		return math.Abs(diff[0])
	}

	return mdp.Span(diff)
}
