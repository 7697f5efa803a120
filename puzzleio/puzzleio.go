// Package puzzleio reads Cifra Carmesim boxes from whitespace-separated
// integer text and writes solutions in the matching output format.
//
// Input:
//
//	L C N
//	x y v d c e b      (N records: row, col, brightness, right/up/left/down)
//
// Output:
//
//	crystals brightness
//	row col            (one line per used crystal, in solution order)
package puzzleio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gs-coelho/cifra-carmesim/grid"
	"github.com/gs-coelho/cifra-carmesim/solver"
)

var (
	// ErrUnexpectedEOF indicates fewer integers than the header declares.
	ErrUnexpectedEOF = errors.New("puzzleio: unexpected end of input")
	// ErrBadToken indicates a token that is not a decimal integer.
	ErrBadToken = errors.New("puzzleio: token is not an integer")
)

// recordFields is the number of integers per crystal record.
const recordFields = 7

// Header is the first line of the input.
type Header struct {
	Rows, Cols, Crystals int
}

// tokenReader yields whitespace-separated integers.
type tokenReader struct {
	sc *bufio.Scanner
	n  int // tokens consumed
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) next() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: after %d tokens", ErrUnexpectedEOF, t.n)
	}
	t.n++
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q", ErrBadToken, t.n, t.sc.Text())
	}
	return v, nil
}

// Read parses a header and its crystal records into a new grid.
//
// Coordinates are always range-checked, since an out-of-range placement
// would corrupt the grid. With strict set, connection flags must be 0 or 1
// and brightness must be non-negative; otherwise a flag counts as a
// connection only when it equals 1 and brightness is stored as given.
// Validation failures wrap grid.ErrInvalidInput.
func Read(r io.Reader, strict bool) (*grid.Grid, Header, error) {
	tr := newTokenReader(r)
	var h Header
	for _, dst := range []*int{&h.Rows, &h.Cols, &h.Crystals} {
		v, err := tr.next()
		if err != nil {
			return nil, h, fmt.Errorf("header: %w", err)
		}
		*dst = v
	}
	if h.Crystals < 0 {
		return nil, h, fmt.Errorf("header: %w: negative crystal count %d", grid.ErrInvalidInput, h.Crystals)
	}
	g, err := grid.New(h.Rows, h.Cols)
	if err != nil {
		return nil, h, fmt.Errorf("header: %w", err)
	}

	var rec [recordFields]int
	for i := 0; i < h.Crystals; i++ {
		for k := range rec {
			if rec[k], err = tr.next(); err != nil {
				return nil, h, fmt.Errorf("crystal %d: %w", i+1, err)
			}
		}
		if err := place(g, rec, strict); err != nil {
			return nil, h, fmt.Errorf("crystal %d: %w", i+1, err)
		}
	}

	return g, h, nil
}

// place stores one record.
func place(g *grid.Grid, rec [recordFields]int, strict bool) error {
	row, col, brightness := rec[0], rec[1], rec[2]
	flags := rec[3:]
	if strict {
		for k, f := range flags {
			if f != 0 && f != 1 {
				return fmt.Errorf("%w: %s flag must be 0 or 1, got %d", grid.ErrInvalidInput, grid.Direction(k), f)
			}
		}
		return g.PlaceCrystalChecked(row, col, brightness, flags[0] == 1, flags[1] == 1, flags[2] == 1, flags[3] == 1)
	}
	if !g.InBounds(row-1, col-1) {
		return fmt.Errorf("%w: position (%d,%d) outside %d×%d grid", grid.ErrInvalidInput, row, col, g.Rows(), g.Cols())
	}
	g.PlaceCrystal(row, col, brightness, flags[0] == 1, flags[1] == 1, flags[2] == 1, flags[3] == 1)

	return nil
}

// Write prints the solution header and one "row col" line per used crystal.
func Write(w io.Writer, sol solver.Solution) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", sol.Crystals, sol.Brightness)
	for _, p := range sol.Cells {
		fmt.Fprintf(bw, "%d %d\n", p.Row, p.Col)
	}
	return bw.Flush()
}
