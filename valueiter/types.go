package valueiter

import (
	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/mdp"
)

const (
	// DefaultEpsilon is the default value-function accuracy target.
	DefaultEpsilon = 0.01

	// DefaultMaxIter is the default iteration cap for standard value
	// iteration (subject to the analytic override when discount < 1).
	DefaultMaxIter = 1000

	// DefaultGaussSeidelMaxIter is the default sweep cap for the
	// Gauss-Seidel variant, lower because each sweep propagates value
	// information through the whole state ordering at once.
	DefaultGaussSeidelMaxIter = 10
)

// Options configures a value iteration run.
//
// Epsilon      – accuracy target ε > 0 (mdp.ErrBadEpsilon otherwise).
// MaxIter      – iteration cap > 0 (mdp.ErrBadMaxIter otherwise);
//
//	replaced by the analytic bound when discount < 1.
//
// InitialValue – optional length-S seed for V (mdp.ErrShapeMismatch on
//
//	a length disagreement); nil means the zero vector.
//
// Observer     – optional diagnostic sink; nil means silent.
type Options struct {
	Epsilon      float64
	MaxIter      int
	InitialValue []float64
	Observer     mdp.Observer
}

// Option is a functional option for Solve and GaussSeidel.
type Option func(*Options)

// defaultOptions returns the options for standard value iteration.
func defaultOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		MaxIter: DefaultMaxIter,
	}
}

// defaultGaussSeidelOptions returns the options for the Gauss-Seidel
// variant (smaller sweep cap).
func defaultGaussSeidelOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		MaxIter: DefaultGaussSeidelMaxIter,
	}
}

// WithEpsilon sets the accuracy target ε. Values ≤ 0 are rejected at
// the Solve entry with mdp.ErrBadEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithMaxIter sets the iteration cap. Values ≤ 0 are rejected with
// mdp.ErrBadMaxIter. For discount < 1 the analytic bound still replaces
// the cap once derived.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		o.MaxIter = n
	}
}

// WithInitialValue seeds the value function. The slice is copied; it
// must have exactly S entries or the solve fails with
// mdp.ErrShapeMismatch.
func WithInitialValue(v []float64) Option {
	return func(o *Options) {
		o.InitialValue = append([]float64(nil), v...)
	}
}

// WithObserver attaches a diagnostic observer (see mdp.TableObserver
// and mdp.Recorder). The default is no observer.
func WithObserver(obs mdp.Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}
