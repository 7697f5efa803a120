package solver

import (
	"errors"
	"math/bits"
)

// Sentinel errors returned by New.
var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("solver: grid must be non-nil")

	// ErrTooManyColumns indicates 2^C does not fit the Config type.
	ErrTooManyColumns = errors.New("solver: too many columns for the configuration space")

	// ErrTableTooLarge indicates L × 2^C × 2^C exceeds Options.MaxTableEntries.
	ErrTableTooLarge = errors.New("solver: memo table exceeds MaxTableEntries")
)

// Infeasible marks a memo entry or solution with no admissible selection.
const Infeasible = -1

// MaxColumns is the widest grid whose configuration count 2^C is exactly
// representable as a Config.
const MaxColumns = 30

// DefaultMaxTableEntries bounds the memo arena at 16Mi entries.
const DefaultMaxTableEntries = 1 << 24

// Config is a row configuration: bit j set means column j is selected.
type Config uint32

// Has reports whether column col is selected.
func (c Config) Has(col int) bool {
	return c>>uint(col)&1 == 1
}

// Count returns the number of selected columns.
func (c Config) Count() int {
	return bits.OnesCount32(uint32(c))
}

// NumConfigs returns 2^cols, the number of configurations of a row.
func NumConfigs(cols int) int {
	return 1 << uint(cols)
}

// MemoEntry is one cell of the memo table.
//
//   - Computed: the entry is final and will never be rewritten. Entries
//     not yet computed hold Value Infeasible.
//   - Value:    best total from row 0 up to this row, or Infeasible.
//   - Source:   Config chosen for the next row processed (row-1) to reach
//     Value; for row 0 it is the anchor. Meaningless when Value is Infeasible.
type MemoEntry struct {
	Computed bool
	Value    int
	Source   Config
}

// Position is a 1-based (row, column) coordinate of a used crystal.
type Position struct {
	Row, Col int
}

// Solution is the result of Solve.
//
// Cells are listed bottom row to top row (row L first) and, within a row,
// right column to left column.
type Solution struct {
	Crystals   int
	Brightness int
	Anchor     Config
	Cells      []Position
}

// Feasible reports whether any admissible selection was found.
func (s Solution) Feasible() bool {
	return s.Brightness != Infeasible
}

// Options configures a Solver.
//
// Fields:
//   - MaxTableEntries: upper bound on L × 2^C × 2^C; New fails with
//     ErrTableTooLarge beyond it. Zero or negative means DefaultMaxTableEntries.
type Options struct {
	MaxTableEntries int
}

// DefaultOptions returns Options{MaxTableEntries: DefaultMaxTableEntries}.
func DefaultOptions() *Options {
	return &Options{MaxTableEntries: DefaultMaxTableEntries}
}
