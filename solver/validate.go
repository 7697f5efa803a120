package solver

import "github.com/gs-coelho/cifra-carmesim/grid"

// IsInternallyConsistent reports whether conf is admissible for the
// 0-based row on its own: every selected column holds a crystal, and no
// selected column j whose cell is right-connected has column (j+1) mod C
// selected too. The last column's right neighbour is column 0.
// Complexity: O(C).
func (s *Solver) IsInternallyConsistent(row int, conf Config) bool {
	for j := 0; j < s.cols; j++ {
		if !conf.Has(j) {
			continue
		}
		cell := s.grid.Cell(row, j)
		if !cell.HasCrystal() {
			return false
		}
		if conf.Has((j+1)%s.cols) && cell.Connected(grid.Right) {
			return false
		}
	}

	return true
}

// AreCompatible reports whether lower, used in the 0-based row, can sit
// below upper in the next row processed. Only row's Up bits are consulted,
// so the predicate is directional: swapping the arguments does not swap
// which row's mask is read.
// Complexity: O(C).
func (s *Solver) AreCompatible(row int, lower, upper Config) bool {
	both := lower & upper
	for j := 0; j < s.cols; j++ {
		if both.Has(j) && s.grid.Cell(row, j).Connected(grid.Up) {
			return false
		}
	}

	return true
}

// rowValue sums the brightness of the columns selected by conf.
func (s *Solver) rowValue(row int, conf Config) int {
	sum := 0
	for j := 0; j < s.cols; j++ {
		if conf.Has(j) {
			sum += s.grid.Cell(row, j).Brightness
		}
	}
	return sum
}
