package solver

import (
	"fmt"
	"slices"

	"github.com/gs-coelho/cifra-carmesim/grid"
)

// Solver owns one grid and its memo table for the lifetime of a solve.
// It is not safe for concurrent use.
type Solver struct {
	grid       *grid.Grid
	rows, cols int
	n          int // 2^cols
	memo       *memoTable
	solution   *Solution
}

// New prepares a Solver for g. The memo table is allocated eagerly.
//
// Errors:
//   - ErrNilGrid:        g is nil.
//   - ErrTooManyColumns: g.Cols() > MaxColumns.
//   - ErrTableTooLarge:  L × 2^C × 2^C > opts.MaxTableEntries.
//
// The grid must not be modified after New; the memo table assumes it is fixed.
func New(g *grid.Grid, opts *Options) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	limit := opts.MaxTableEntries
	if limit <= 0 {
		limit = DefaultMaxTableEntries
	}
	rows, cols := g.Rows(), g.Cols()
	if cols > MaxColumns {
		return nil, fmt.Errorf("%w: %d columns, max %d", ErrTooManyColumns, cols, MaxColumns)
	}
	n := NumConfigs(cols)
	if !tableFits(rows, n, limit) {
		return nil, fmt.Errorf("%w: %d×%d×%d entries, limit %d", ErrTableTooLarge, rows, n, n, limit)
	}

	return &Solver{
		grid: g,
		rows: rows,
		cols: cols,
		n:    n,
		memo: newMemoTable(rows, n),
	}, nil
}

// NumConfigs returns 2^C for the solver's grid.
func (s *Solver) NumConfigs() int { return s.n }

// Entry returns the memo entry for (row, conf, anchor). Entries not yet
// reached by Solve have Computed == false.
func (s *Solver) Entry(row int, conf, anchor Config) MemoEntry {
	return s.memo.get(row, conf, anchor)
}

// ComputedEntries returns how many memo entries Solve has finalised.
func (s *Solver) ComputedEntries() int {
	return s.memo.computed()
}

// Solve evaluates f(L-1, i, i) for every Config i, keeps the first i with
// the highest value and replays the memo table from it.
// A second call returns the same Solution without recomputation.
// Complexity: O(L · 4^C · C) on the first call.
func (s *Solver) Solve() Solution {
	if s.solution == nil {
		sol := s.solve()
		s.solution = &sol
	}
	out := *s.solution
	out.Cells = slices.Clone(s.solution.Cells)

	return out
}

func (s *Solver) solve() Solution {
	best, anchor, found := Infeasible, Config(0), false
	top := s.rows - 1
	for i := 0; i < s.n; i++ {
		conf := Config(i)
		e := s.f(top, conf, conf)
		if e.Value > best {
			best, anchor, found = e.Value, conf, true
		}
	}
	if !found {
		return Solution{Brightness: Infeasible}
	}

	return s.reconstruct(best, anchor)
}

// f is the memoised recurrence over (row, conf, anchor).
func (s *Solver) f(row int, conf, anchor Config) MemoEntry {
	if e := s.memo.get(row, conf, anchor); e.Computed {
		return e
	}
	if !s.IsInternallyConsistent(row, conf) {
		return s.memo.put(row, conf, anchor, Infeasible, 0)
	}
	value := s.rowValue(row, conf)

	// Row 0 closes the cycle against the anchor.
	if row == 0 {
		if !s.AreCompatible(0, conf, anchor) {
			return s.memo.put(row, conf, anchor, Infeasible, 0)
		}
		return s.memo.put(row, conf, anchor, value, anchor)
	}

	best, source := Infeasible, Config(0)
	for p := 0; p < s.n; p++ {
		poss := Config(p)
		if !s.AreCompatible(row, conf, poss) {
			continue
		}
		e := s.f(row-1, poss, anchor)
		if e.Value == Infeasible {
			continue
		}
		if total := e.Value + value; total > best {
			best, source = total, poss
		}
	}

	return s.memo.put(row, conf, anchor, best, source)
}
