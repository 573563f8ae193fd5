package gridworld

import "errors"

// Sentinel errors for grid-world construction.
var (
	// ErrEmptyGrid indicates a world with no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: world must have at least one row and one column")

	// ErrCellBounds indicates an obstacle or terminal cell outside the
	// grid.
	ErrCellBounds = errors.New("gridworld: cell coordinates out of range")

	// ErrCellConflict indicates a cell marked both terminal and
	// obstacle.
	ErrCellConflict = errors.New("gridworld: cell cannot be both terminal and obstacle")

	// ErrBadNoise indicates a slip probability outside [0, 1).
	ErrBadNoise = errors.New("gridworld: noise must be in [0, 1)")
)

// Action is a movement action index. The order fixes the action axis of
// the generated tensors.
type Action int

const (
	// ActionUp moves one cell up (y−1).
	ActionUp Action = iota
	// ActionRight moves one cell right (x+1).
	ActionRight
	// ActionDown moves one cell down (y+1).
	ActionDown
	// ActionLeft moves one cell left (x−1).
	ActionLeft

	// NumActions is the size of the action axis.
	NumActions = 4
)

// String returns the action's direction name.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionRight:
		return "right"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	default:
		return "invalid"
	}
}

// offsets holds the (dx, dy) step of each action, indexed by Action.
var offsets = [NumActions][2]int{
	{0, -1}, // up
	{1, 0},  // right
	{0, 1},  // down
	{-1, 0}, // left
}

// terminal marks a cell that ends the episode with a reward.
type terminal struct {
	x, y   int
	reward float64
}

// Options collects the tunable parameters of a world build.
//
// Noise      – total slip probability, split evenly between the two
//
//	perpendicular directions. Must be in [0, 1); default 0.2.
//
// StepReward – reward of every non-terminal transition; default 0.
type Options struct {
	Noise      float64
	StepReward float64

	obstacles [][2]int
	terminals []terminal
}

// Option is a functional option for Build.
type Option func(*Options)

func defaultOptions() Options {
	return Options{Noise: 0.2}
}

// WithNoise sets the total slip probability. Values outside [0, 1) are
// rejected at Build with ErrBadNoise.
func WithNoise(noise float64) Option {
	return func(o *Options) {
		o.Noise = noise
	}
}

// WithStepReward sets the reward paid by every transition that does not
// land on a terminal cell.
func WithStepReward(r float64) Option {
	return func(o *Options) {
		o.StepReward = r
	}
}

// WithObstacle marks cell (x, y) impassable and absorbing.
func WithObstacle(x, y int) Option {
	return func(o *Options) {
		o.obstacles = append(o.obstacles, [2]int{x, y})
	}
}

// WithTerminal marks cell (x, y) terminal: landing on it pays reward,
// and the episode is absorbed there with no further reward.
func WithTerminal(x, y int, reward float64) Option {
	return func(o *Options) {
		o.terminals = append(o.terminals, terminal{x: x, y: y, reward: reward})
	}
}
