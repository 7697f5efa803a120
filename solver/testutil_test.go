package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gs-coelho/cifra-carmesim/grid"
	"github.com/gs-coelho/cifra-carmesim/solver"
)

// crystal is one input record: 1-based position, brightness and r/u/l/d flags.
type crystal struct {
	row, col, brightness  int
	right, up, left, down bool
}

// plain returns an unconnected crystal.
func plain(row, col, brightness int) crystal {
	return crystal{row: row, col: col, brightness: brightness}
}

// mustGrid builds a rows×cols grid holding cs.
func mustGrid(t testing.TB, rows, cols int, cs ...crystal) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	for _, c := range cs {
		g.PlaceCrystal(c.row, c.col, c.brightness, c.right, c.up, c.left, c.down)
	}
	return g
}

// mustSolver wraps mustGrid with default options.
func mustSolver(t testing.TB, rows, cols int, cs ...crystal) *solver.Solver {
	t.Helper()
	s, err := solver.New(mustGrid(t, rows, cols, cs...), nil)
	require.NoError(t, err)
	return s
}

// randomGrid fills roughly two thirds of a rows×cols grid with random crystals.
func randomGrid(t testing.TB, rng *rand.Rand, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			if rng.Intn(3) == 0 {
				continue
			}
			g.PlaceCrystal(r, c, rng.Intn(10),
				rng.Intn(3) == 0, rng.Intn(3) == 0, rng.Intn(3) == 0, rng.Intn(3) == 0)
		}
	}
	return g
}

// bruteForce enumerates every assignment of one Config per row and returns
// the best total under the same rules as the solver: each row internally
// consistent, row r compatible with row r-1 under row r's Up bits, and row 0
// compatible with row L-1 under row 0's Up bits.
func bruteForce(g *grid.Grid) int {
	rows, cols := g.Rows(), g.Cols()
	n := solver.NumConfigs(cols)
	consistent := func(r int, conf solver.Config) bool {
		for j := 0; j < cols; j++ {
			if !conf.Has(j) {
				continue
			}
			cell := g.Cell(r, j)
			if !cell.HasCrystal() {
				return false
			}
			if conf.Has((j+1)%cols) && cell.Connected(grid.Right) {
				return false
			}
		}
		return true
	}
	compatible := func(r int, lower, upper solver.Config) bool {
		for j := 0; j < cols; j++ {
			if lower.Has(j) && upper.Has(j) && g.Cell(r, j).Connected(grid.Up) {
				return false
			}
		}
		return true
	}
	value := func(r int, conf solver.Config) int {
		sum := 0
		for j := 0; j < cols; j++ {
			if conf.Has(j) {
				sum += g.Cell(r, j).Brightness
			}
		}
		return sum
	}

	best := solver.Infeasible
	assign := make([]solver.Config, rows)
	var walk func(r int)
	walk = func(r int) {
		if r == rows {
			total := 0
			for i := 0; i < rows; i++ {
				if i > 0 && !compatible(i, assign[i], assign[i-1]) {
					return
				}
				total += value(i, assign[i])
			}
			if !compatible(0, assign[0], assign[rows-1]) {
				return
			}
			if total > best {
				best = total
			}
			return
		}
		for c := 0; c < n; c++ {
			if consistent(r, solver.Config(c)) {
				assign[r] = solver.Config(c)
				walk(r + 1)
			}
		}
	}
	walk(0)

	return best
}
