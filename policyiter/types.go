package policyiter

import (
	"errors"

	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/mdp"
)

// ErrBadPolicy indicates a starting policy containing an entry outside
// the action range [0, A).
var ErrBadPolicy = errors.New("policyiter: policy0 entries must be action indices in [0, A)")

const (
	// DefaultMaxIter is the default cap on outer evaluate/improve
	// iterations.
	DefaultMaxIter = 1000

	// DefaultEvalEpsilon is the default accuracy target of the inner
	// iterative policy evaluation.
	DefaultEvalEpsilon = 1e-4

	// DefaultEvalMaxIter is the default sweep cap of the inner
	// iterative policy evaluation.
	DefaultEvalMaxIter = 100
)

// Options configures a policy iteration run.
//
// MaxIter     – outer iteration cap > 0 (mdp.ErrBadMaxIter otherwise).
// Policy0     – optional starting policy, length S with entries in
//
//	[0, A); nil derives one from a backup off the zero vector.
//
// EvalEpsilon – inner evaluation accuracy > 0 (mdp.ErrBadEpsilon).
// EvalMaxIter – inner evaluation sweep cap > 0 (mdp.ErrBadMaxIter).
// Observer    – optional diagnostic sink; the variation reported per
//
//	outer iteration is the differing-action count.
type Options struct {
	MaxIter     int
	Policy0     []int
	EvalEpsilon float64
	EvalMaxIter int
	Observer    mdp.Observer
}

// Option is a functional option for Solve.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		MaxIter:     DefaultMaxIter,
		EvalEpsilon: DefaultEvalEpsilon,
		EvalMaxIter: DefaultEvalMaxIter,
	}
}

// WithMaxIter sets the outer iteration cap. Values ≤ 0 are rejected
// with mdp.ErrBadMaxIter.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		o.MaxIter = n
	}
}

// WithPolicy seeds the starting policy. The slice is copied; it must
// have exactly S entries (mdp.ErrShapeMismatch) with every entry in
// [0, A) (ErrBadPolicy).
func WithPolicy(policy []int) Option {
	return func(o *Options) {
		o.Policy0 = append([]int(nil), policy...)
	}
}

// WithEvalEpsilon sets the inner evaluation accuracy target. Values ≤ 0
// are rejected with mdp.ErrBadEpsilon.
func WithEvalEpsilon(eps float64) Option {
	return func(o *Options) {
		o.EvalEpsilon = eps
	}
}

// WithEvalMaxIter sets the inner evaluation sweep cap. Values ≤ 0 are
// rejected with mdp.ErrBadMaxIter.
func WithEvalMaxIter(n int) Option {
	return func(o *Options) {
		o.EvalMaxIter = n
	}
}

// WithObserver attaches a diagnostic observer. The default is none.
func WithObserver(obs mdp.Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}
