// Package valueiter implements value iteration for compact (CP)
// tensor-based MDPs, in standard (synchronous) and Gauss-Seidel
// (in-place) variants.
//
// Standard value iteration (Solve):
//
//  1. Start from the zero value function, or a caller-supplied seed.
//  2. For discount < 1, derive the iteration bound analytically: run one
//     probing Bellman backup, measure span(V₁−V₀), and cap iterations at
//     ceil(log(thresh/span)/log(discount)) (Puterman, Prop. 6.6.5, with
//     contraction modulus γ — no probability mass is held back by the
//     compact model). The analytic bound replaces a configured cap.
//  3. Repeat synchronous Bellman backups, measuring the span-seminorm
//     variation of each update, until variation < ε·(1−γ)/γ
//     (ε at γ = 1) or the iteration cap is hit.
//
// Gauss-Seidel value iteration (GaussSeidel):
//
//	Same stopping rule and bound, but each sweep updates V[s] in place
//	immediately, so later states in the same sweep read the already
//	updated values of earlier states. Convergence is typically faster
//	per sweep (default cap: 10 sweeps) at the cost of a strict
//	sequential dependency — the sweep must not be parallelized. The
//	policy is derived by one final full backup pass after the loop, not
//	tracked during sweeps.
//
// Both entry points validate configuration first (sentinels from the
// mdp package: ErrBadDiscount, ErrBadEpsilon, ErrBadMaxIter,
// ErrShapeMismatch, reward resolution errors) and otherwise run to a
// terminal state: mdp.ReasonEpsilonOptimal or mdp.ReasonMaxIterations.
//
// Complexity per iteration: O(S·A·B), B = branching factor.
// Memory: O(S) on top of the model.
//
// Example:
//
//	res, err := valueiter.Solve(model, mdp.NewVectorReward(r), 0.9,
//	    valueiter.WithEpsilon(0.01),
//	    valueiter.WithObserver(mdp.TableObserver{W: os.Stdout}),
//	)
package valueiter
