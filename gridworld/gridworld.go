package gridworld

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/mdp"
)

// branching is the number of stored successors per (action, state)
// pair: intended move plus the two perpendicular slips.
const branching = 3

// World is a built grid world: the compact transition model, the
// reward specification, and the coordinate mapping. Immutable once
// built.
type World struct {
	rows, cols int
	model      *mdp.CompactModel
	reward     mdp.RewardSpec
	terminals  map[int]float64
	obstacles  map[int]bool
}

// Build constructs a rows×cols stochastic grid world.
//
// Validation (in order):
//  1. rows and cols ≥ 1 (ErrEmptyGrid).
//  2. Noise in [0, 1) (ErrBadNoise).
//  3. Every obstacle and terminal cell inside the grid (ErrCellBounds).
//  4. No cell both terminal and obstacle (ErrCellConflict).
//
// The resulting model carries the grid shape and the terminal/obstacle
// state indices as pass-through metadata.
func Build(rows, cols int, opts ...Option) (*World, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, rows, cols)
	}
	if cfg.Noise < 0 || cfg.Noise >= 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadNoise, cfg.Noise)
	}

	w := &World{
		rows:      rows,
		cols:      cols,
		terminals: make(map[int]float64, len(cfg.terminals)),
		obstacles: make(map[int]bool, len(cfg.obstacles)),
	}

	for _, c := range cfg.obstacles {
		if !w.inBounds(c[0], c[1]) {
			return nil, fmt.Errorf("%w: obstacle (%d,%d)", ErrCellBounds, c[0], c[1])
		}
		w.obstacles[w.Index(c[0], c[1])] = true
	}
	for _, t := range cfg.terminals {
		if !w.inBounds(t.x, t.y) {
			return nil, fmt.Errorf("%w: terminal (%d,%d)", ErrCellBounds, t.x, t.y)
		}
		idx := w.Index(t.x, t.y)
		if w.obstacles[idx] {
			return nil, fmt.Errorf("%w: cell (%d,%d)", ErrCellConflict, t.x, t.y)
		}
		w.terminals[idx] = t.reward
	}

	if err := w.build(cfg); err != nil {
		return nil, err
	}

	return w, nil
}

// build assembles the flat tensors and the per-action reward matrices.
func (w *World) build(cfg Options) error {
	S := w.rows * w.cols

	succ := make([][]int, NumActions)
	prob := make([][]float64, NumActions)
	rewards := make([]mat.Matrix, NumActions)

	probs := [branching]float64{1 - cfg.Noise, cfg.Noise / 2, cfg.Noise / 2}

	for a := Action(0); a < NumActions; a++ {
		succ[a] = make([]int, 0, S*branching)
		prob[a] = make([]float64, 0, S*branching)

		// CSR storage of the destination-based reward matrix.
		indptr := make([]int, 1, S+1)
		var indices []int
		var data []float64

		for s := 0; s < S; s++ {
			if _, isTerminal := w.terminals[s]; isTerminal || w.obstacles[s] {
				// Absorbing self-loop, no further reward.
				succ[a] = append(succ[a], s, s, s)
				prob[a] = append(prob[a], 1, 0, 0)
				indptr = append(indptr, len(data))

				continue
			}

			x, y := w.Coordinate(s)
			// Intended direction first, then the two perpendicular
			// slips; the probability pattern is fixed across states.
			dests := [branching]int{
				w.move(x, y, a),
				w.move(x, y, (a+3)%NumActions),
				w.move(x, y, (a+1)%NumActions),
			}
			succ[a] = append(succ[a], dests[0], dests[1], dests[2])
			prob[a] = append(prob[a], probs[0], probs[1], probs[2])

			for _, dest := range uniqueSorted(dests) {
				r := cfg.StepReward
				if tr, ok := w.terminals[dest]; ok {
					r = tr
				}
				if r == 0 {
					continue
				}
				indices = append(indices, dest)
				data = append(data, r)
			}
			indptr = append(indptr, len(data))
		}

		csr, err := mdp.NewCSR(S, S, indptr, indices, data)
		if err != nil {
			return err
		}
		rewards[a] = csr
	}

	model, err := mdp.NewCompactModel(succ, prob, S,
		mdp.WithShape([]int{w.rows, w.cols}),
		mdp.WithTerminals(sortedKeys(w.terminals)),
		mdp.WithObstacles(sortedBoolKeys(w.obstacles)),
	)
	if err != nil {
		return err
	}

	w.model = model
	w.reward = mdp.NewPerActionMatrixRewards(rewards)

	return nil
}

// move returns the state reached from (x, y) by taking action a:
// the neighboring cell, or the current one when the step leaves the
// grid or enters an obstacle.
func (w *World) move(x, y int, a Action) int {
	nx, ny := x+offsets[a][0], y+offsets[a][1]
	if !w.inBounds(nx, ny) || w.obstacles[w.Index(nx, ny)] {
		return w.Index(x, y)
	}

	return w.Index(nx, ny)
}

// inBounds reports whether (x, y) lies within the grid.
func (w *World) inBounds(x, y int) bool {
	return x >= 0 && x < w.cols && y >= 0 && y < w.rows
}

// Index maps cell (x, y) to its row-major state index: y·cols + x.
func (w *World) Index(x, y int) int { return y*w.cols + x }

// Coordinate converts a state index back to cell coordinates.
func (w *World) Coordinate(idx int) (x, y int) { return idx % w.cols, idx / w.cols }

// Rows returns the number of grid rows.
func (w *World) Rows() int { return w.rows }

// Cols returns the number of grid columns.
func (w *World) Cols() int { return w.cols }

// Model returns the compact transition model of the world.
func (w *World) Model() *mdp.CompactModel { return w.model }

// Reward returns the destination-based reward specification, ready for
// any of the solver packages.
func (w *World) Reward() mdp.RewardSpec { return w.reward }

// IsTerminal reports whether state idx is a terminal cell.
func (w *World) IsTerminal(idx int) bool {
	_, ok := w.terminals[idx]

	return ok
}

// IsObstacle reports whether state idx is an obstacle cell.
func (w *World) IsObstacle(idx int) bool { return w.obstacles[idx] }

// uniqueSorted returns the distinct destinations in ascending order,
// as CSR rows require strictly increasing columns.
func uniqueSorted(dests [branching]int) []int {
	out := append([]int(nil), dests[:]...)
	sort.Ints(out)
	k := 0
	for i := 1; i < len(out); i++ {
		if out[i] != out[k] {
			k++
			out[k] = out[i]
		}
	}

	return out[:k+1]
}

func sortedKeys(m map[int]float64) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

func sortedBoolKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
