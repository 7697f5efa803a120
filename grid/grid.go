package grid

import (
	"fmt"
	"io"
)

// New allocates a rows×cols grid with every cell empty.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = Cell{Brightness: NoCrystal}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows (L).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (C).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether the 0-based (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// index maps a 0-based (row, col) to its row-major offset.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Cell returns the cell at the 0-based (row, col).
func (g *Grid) Cell(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// PlaceCrystal stores a crystal at the 1-based (row, col), overwriting any
// previous cell there. Coordinates are not checked: out-of-range positions
// are the caller's responsibility and panic or alias another cell.
func (g *Grid) PlaceCrystal(row, col, brightness int, right, up, left, down bool) {
	g.cells[g.index(row-1, col-1)] = Cell{
		Brightness:  brightness,
		Connections: NewConnections(right, up, left, down),
	}
}

// PlaceCrystalChecked is PlaceCrystal with validation. It returns an error
// wrapping ErrInvalidInput when (row, col) is outside 1..Rows × 1..Cols or
// brightness is negative, and leaves the grid untouched in that case.
func (g *Grid) PlaceCrystalChecked(row, col, brightness int, right, up, left, down bool) error {
	if !g.InBounds(row-1, col-1) {
		return fmt.Errorf("%w: position (%d,%d) outside %d×%d grid", ErrInvalidInput, row, col, g.rows, g.cols)
	}
	if brightness < 0 {
		return fmt.Errorf("%w: negative brightness %d at (%d,%d)", ErrInvalidInput, brightness, row, col)
	}
	g.PlaceCrystal(row, col, brightness, right, up, left, down)

	return nil
}

// CrystalCount returns the number of non-empty cells.
func (g *Grid) CrystalCount() int {
	n := 0
	for _, c := range g.cells {
		if c.HasCrystal() {
			n++
		}
	}
	return n
}

// Dump writes the brightness matrix, one row per line, empty cells as -1.
func (g *Grid) Dump(w io.Writer) error {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if _, err := fmt.Fprintf(w, "%3d ", g.Cell(r, c).Brightness); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
