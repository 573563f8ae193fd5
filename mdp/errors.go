package mdp

import "errors"

// Sentinel errors shared by the compact model, reward resolution and the
// solver packages. Solvers wrap them with fmt.Errorf("%w: context", …)
// where extra detail helps; match with errors.Is.
var (
	// ErrNilModel indicates a nil *CompactModel was passed to a solver
	// or to reward resolution.
	ErrNilModel = errors.New("mdp: compact model is nil")

	// ErrNoActions indicates the transition tensors contain no actions.
	ErrNoActions = errors.New("mdp: transition tensors must cover at least one action")

	// ErrRaggedTensor indicates successor and probability arrays disagree
	// in length, either with each other or across actions.
	ErrRaggedTensor = errors.New("mdp: successor and probability arrays must have equal lengths")

	// ErrBadSplit indicates a per-action flat array cannot be split into
	// numStates equal per-state chunks.
	ErrBadSplit = errors.New("mdp: per-action array length must be divisible by the state count")

	// ErrStateIndex indicates a successor state index outside [0, S).
	ErrStateIndex = errors.New("mdp: successor state index out of range")

	// ErrBadProbabilitySum indicates a reachable probability row does not
	// sum to 1 within tolerance.
	ErrBadProbabilitySum = errors.New("mdp: probability row must sum to 1")

	// ErrBadDiscount indicates a discount factor outside (0, 1].
	ErrBadDiscount = errors.New("mdp: discount must be in (0, 1]")

	// ErrBadEpsilon indicates a non-positive accuracy target.
	ErrBadEpsilon = errors.New("mdp: epsilon must be greater than 0")

	// ErrBadMaxIter indicates a non-positive iteration cap.
	ErrBadMaxIter = errors.New("mdp: max iterations must be greater than 0")

	// ErrShapeMismatch indicates a supplied vector (value function,
	// reward, initial policy) whose length disagrees with the model.
	ErrShapeMismatch = errors.New("mdp: vector length disagrees with the model dimensions")

	// ErrSparseReward indicates a sparse reward paired with the vector or
	// (S,A) matrix shape; only per-action S×S sparse rewards are defined.
	ErrSparseReward = errors.New("mdp: sparse rewards are only supported in per-action matrix form")

	// ErrAmbiguousReward indicates a per-action reward whose outer length
	// is not the number of actions, so the shape cannot be resolved.
	ErrAmbiguousReward = errors.New("mdp: reward shape cannot be resolved to vector, matrix or per-action form")
)
