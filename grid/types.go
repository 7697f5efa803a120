package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the requested grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrInvalidInput indicates a crystal placement with malformed coordinates or values.
	ErrInvalidInput = errors.New("grid: invalid input")
)

// NoCrystal is the brightness stored in an empty cell.
const NoCrystal = -1

// Direction names one bit of a Cell's connection mask.
type Direction uint8

const (
	// Right is set when the crystal is connected to its right neighbour.
	Right Direction = iota
	// Up is set when the crystal is connected to the neighbour above.
	Up
	// Left is set when the crystal is connected to its left neighbour.
	Left
	// Down is set when the crystal is connected to the neighbour below.
	Down
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	}
	return "unknown"
}

// Connections is the packed 4-bit connection mask of a crystal.
type Connections uint8

// NewConnections packs the four neighbour flags into a mask.
func NewConnections(right, up, left, down bool) Connections {
	var c Connections
	for d, on := range [4]bool{right, up, left, down} {
		if on {
			c |= 1 << d
		}
	}
	return c
}

// Has reports whether the connection bit for d is set.
func (c Connections) Has(d Direction) bool {
	return c>>d&1 == 1
}

// Cell is a single position of the box. An empty cell has Brightness
// NoCrystal and no connections.
type Cell struct {
	Brightness  int
	Connections Connections
}

// HasCrystal reports whether a crystal was placed in the cell.
func (c Cell) HasCrystal() bool {
	return c.Brightness != NoCrystal
}

// Connected reports whether the crystal is connected towards d.
func (c Cell) Connected(d Direction) bool {
	return c.Connections.Has(d)
}

// Grid is the L×C crystal box. Dimensions are fixed at construction;
// cells are stored row-major in a single slice.
type Grid struct {
	rows, cols int
	cells      []Cell
}
