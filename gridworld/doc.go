// Package gridworld builds compact (CP) MDP tensors from a rectangular
// stochastic grid world — the external model builder the solver
// packages consume.
//
// The world is a rows×cols grid addressed by (x, y) cell coordinates
// (x = column, y = row) and mapped to state indices row-major:
// index = y·cols + x. An agent picks one of four movement actions
// (up, right, down, left); with probability 1−noise it moves in the
// intended direction and with probability noise/2 it slips to each
// perpendicular side. A move off the grid or into an obstacle leaves
// the agent in place. Terminal and obstacle cells are absorbing
// self-loops.
//
// Every (action, state) pair therefore has exactly three stored
// successors (intended, left slip, right slip — duplicates allowed when
// moves collapse onto the same cell), which fixes the branching factor
// of the compact tensors at 3 regardless of grid size.
//
// Rewards are destination-based: landing on a terminal cell pays that
// terminal's reward, every other transition out of a live cell pays the
// step reward (default 0). They are expressed as per-action CSR
// matrices, so the mdp package reduces them against the transition
// probabilities during reward resolution.
//
// Example:
//
//	world, err := gridworld.Build(3, 4,
//	    gridworld.WithTerminal(3, 0, 1),    // goal, reward +1
//	    gridworld.WithTerminal(3, 1, -1),   // pit, reward −1
//	    gridworld.WithObstacle(1, 1),
//	    gridworld.WithNoise(0.2),
//	    gridworld.WithStepReward(-0.04),
//	)
//	if err != nil { … }
//	res, err := valueiter.Solve(world.Model(), world.Reward(), 0.95)
//
// Complexity: Build is O(S·A·B) = O(rows·cols·12) time and memory.
package gridworld
