// Package cpmdp solves discrete-time Markov Decision Processes stored in
// a compact (CP) tensor form: instead of a dense S×S transition matrix
// per action, every state-action pair keeps only its reachable successor
// states and their probabilities, so a Bellman backup costs
// O(successors) rather than O(S).
//
// What is in the box?
//
//	A small, focused dynamic-programming toolkit:
//		• Compact transition model: per-action/per-state successor & probability lists
//		• Reward normalization: vector, (S,A) matrix, or per-action S×S (dense or CSR) inputs
//		• Bellman optimality operator: greedy policy + improved value function
//		• Value iteration with an analytic span-seminorm iteration bound
//		• Gauss-Seidel value iteration: in-place sweeps, faster per-sweep convergence
//		• Policy iteration with iterative (inexact) policy evaluation
//
// Everything is organized under four subpackages:
//
//	mdp/        — compact model, reward resolution, Bellman backup, results & observers
//	valueiter/  — standard and Gauss-Seidel value iteration
//	policyiter/ — policy iteration (evaluate / improve / stabilize)
//	gridworld/  — stochastic grid-world builder producing the compact tensors
//
// A solve is single-use: build the model and reward once (read-only
// thereafter), call one of the Solve functions, read the returned
// policy, value function, iteration count and termination reason.
//
// Quick sketch:
//
//	world, _ := gridworld.Build(3, 4,
//	    gridworld.WithTerminal(3, 0, 1),
//	    gridworld.WithObstacle(1, 1),
//	)
//	res, _ := valueiter.Solve(world.Model(), world.Reward(), 0.9)
//	fmt.Println(res.Policy, res.Reason)
//
// The solvers are single-threaded and compute-bound; model and reward
// tensors are never mutated, so distinct solves on the same model are
// independent.
//
//	go get github.com/danielakuinchtner/mdp-tensor-solver-multidimensional
package cpmdp
