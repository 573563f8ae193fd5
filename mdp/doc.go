// Package mdp provides the shared core for compact (CP) tensor-based
// Markov Decision Process solvers: the compact transition model, reward
// normalization, the Bellman optimality operator, and the result and
// diagnostic types consumed by the valueiter and policyiter packages.
//
// Compact transition model:
//
//	For each action a and source state s the model stores an ordered
//	list of successor states succ[a][s] and a parallel list of
//	probabilities prob[a][s]. Rows of a reachable (a,s) pair sum to 1.
//	The model is built once from per-action flat arrays (split into one
//	equal chunk per source state) and is read-only afterwards.
//
// Reward normalization:
//
//	Rewards arrive in one of several shapes and are resolved exactly
//	once into the canonical table R[a][s]:
//	  – a length-S vector, reused for every action;
//	  – an (S,A) matrix, column a becoming R[a];
//	  – A per-action length-S vectors, used as-is;
//	  – A per-action S×S matrices (dense gonum mat.Matrix or the CSR
//	    type), reduced row-wise against the transition probabilities.
//	Sparse input in vector or matrix position is not defined and fails
//	with ErrSparseReward.
//
// Bellman backup:
//
//	Q(s,a) = R[a][s] + γ·Σ_i prob[a][s][i]·V[succ[a][s][i]]
//
//	BellmanBackup returns the greedy policy (argmax over actions, ties
//	broken at the lowest action index) and the improved value function.
//	The inner reduction is a gathered dot product with a fixed
//	left-to-right summation order, so results are reproducible.
//
// Complexity:
//
//   - One backup: O(S·A·B) time, where B is the branching factor
//     (successors per state-action pair); O(S) extra memory.
//   - Reward resolution: O(S·A) for vector/matrix shapes,
//     O(S·A·B) for per-action matrix shapes.
//
// Diagnostics are pushed through the Observer interface (TableObserver
// prints the classic iteration/variation table, Recorder keeps a
// bounded history); solvers attach no observer by default.
package mdp
