package puzzleio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gs-coelho/cifra-carmesim/grid"
	"github.com/gs-coelho/cifra-carmesim/puzzleio"
	"github.com/gs-coelho/cifra-carmesim/solver"
)

const twoByTwo = `2 2 4
1 1 5 1 0 0 0
1 2 3 0 0 0 0
2 1 4 0 0 0 0
2 2 2 0 0 0 0
`

func TestRead_Valid(t *testing.T) {
	g, h, err := puzzleio.Read(strings.NewReader(twoByTwo), true)
	require.NoError(t, err)
	assert.Equal(t, puzzleio.Header{Rows: 2, Cols: 2, Crystals: 4}, h)
	assert.Equal(t, 4, g.CrystalCount())
	assert.Equal(t, grid.Cell{Brightness: 5, Connections: 0b0001}, g.Cell(0, 0))
	assert.Equal(t, grid.Cell{Brightness: 2}, g.Cell(1, 1))
}

// TestRead_AnyWhitespace accepts records split across arbitrary whitespace.
func TestRead_AnyWhitespace(t *testing.T) {
	in := "1 3\n2\t1 1 4 0 1 0 0   1 3\n\n 6 0 0 0 1"
	g, h, err := puzzleio.Read(strings.NewReader(in), true)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Crystals)
	assert.True(t, g.Cell(0, 0).Connected(grid.Up))
	assert.True(t, g.Cell(0, 2).Connected(grid.Down))
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		strict bool
		err    error
	}{
		{"EmptyInput", "", false, puzzleio.ErrUnexpectedEOF},
		{"ShortHeader", "2 2", false, puzzleio.ErrUnexpectedEOF},
		{"MissingRecord", "2 2 2\n1 1 5 0 0 0 0\n", false, puzzleio.ErrUnexpectedEOF},
		{"TruncatedRecord", "2 2 1\n1 1 5 0", false, puzzleio.ErrUnexpectedEOF},
		{"BadToken", "2 x 1", false, puzzleio.ErrBadToken},
		{"ZeroRows", "0 2 0", false, grid.ErrEmptyGrid},
		{"NegativeCount", "1 1 -1", false, grid.ErrInvalidInput},
		{"OutOfRange", "1 1 1\n2 1 5 0 0 0 0", false, grid.ErrInvalidInput},
		{"StrictFlag", "1 1 1\n1 1 5 2 0 0 0", true, grid.ErrInvalidInput},
		{"StrictBrightness", "1 1 1\n1 1 -3 0 0 0 0", true, grid.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := puzzleio.Read(strings.NewReader(tc.in), tc.strict)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestRead_LenientFlags treats any flag other than 1 as unconnected.
func TestRead_LenientFlags(t *testing.T) {
	g, _, err := puzzleio.Read(strings.NewReader("1 1 1\n1 1 5 2 1 -1 0"), false)
	require.NoError(t, err)
	assert.Equal(t, grid.Connections(0b0010), g.Cell(0, 0).Connections)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	sol := solver.Solution{Crystals: 2, Brightness: 9,
		Cells: []solver.Position{{Row: 2, Col: 1}, {Row: 1, Col: 2}}}
	require.NoError(t, puzzleio.Write(&buf, sol))
	assert.Equal(t, "2 9\n2 1\n1 2\n", buf.String())

	buf.Reset()
	require.NoError(t, puzzleio.Write(&buf, solver.Solution{}))
	assert.Equal(t, "0 0\n", buf.String())
}

// TestRoundTrip runs input text through the solver and back to text.
func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"NoCrystals", "3 2 0\n", "0 0\n"},
		{"SingleCrystal", "1 1 1\n1 1 7 0 0 0 0\n", "1 7\n1 1\n"},
		{"Unconnected", "2 2 4\n1 1 5 0 0 0 0\n1 2 3 0 0 0 0\n2 1 4 0 0 0 0\n2 2 2 0 0 0 0\n",
			"4 14\n2 2\n2 1\n1 2\n1 1\n"},
		{"RightConnected", twoByTwo, "3 11\n2 2\n2 1\n1 1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _, err := puzzleio.Read(strings.NewReader(tc.in), true)
			require.NoError(t, err)
			s, err := solver.New(g, nil)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, puzzleio.Write(&buf, s.Solve()))
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
