// Package policyiter implements policy iteration for compact (CP)
// tensor-based MDPs: alternate policy evaluation with one-step policy
// improvement until the policy stabilizes.
//
// Algorithm outline:
//
//  1. Init — take the caller-supplied starting policy (validated:
//     length S, entries in [0, A)), or derive one from a single Bellman
//     backup off the zero value function.
//  2. Evaluate — restrict the compact tensors to the current policy
//     (each state keeps the successor/probability row of its chosen
//     action, plus the matching reward entry) and iterate
//     V[s] = Rπ[s] + γ·Σ prob·V[succ] synchronously from the zero
//     vector until max|ΔV| < ((1−γ)/γ)·ε_eval or the inner cap
//     (default 100) is hit. This is a deliberately inexact evaluation,
//     not a linear solve.
//  3. Improve — one Bellman backup off the evaluated V yields a
//     candidate policy; count the states whose action changed.
//  4. Stop with mdp.ReasonPolicyUnchanged when the count is zero, or
//     mdp.ReasonMaxIterations at the outer cap (the candidate is then
//     discarded); otherwise adopt the candidate and go to 2.
//
// Ties in improvement break at the lowest action index, matching the
// Bellman operator. An attached observer receives the differing-action
// count as the per-iteration variation.
//
// Complexity: O(S·A·B) per improvement, O(S·B) per evaluation sweep.
//
// Example:
//
//	res, err := policyiter.Solve(model, mdp.NewVectorReward(r), 0.9,
//	    policyiter.WithPolicy(seed),
//	)
package policyiter
