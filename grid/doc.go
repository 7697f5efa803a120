// Package grid stores the crystal box of a Cifra Carmesim puzzle: a
// rectangular L×C array of cells, each either empty or holding a crystal
// with a brightness value and a 4-bit mask of connections to its
// neighbours.
//
// What:
//
//   - Grid owns an immutable-size, row-major slice of Cell values.
//   - PlaceCrystal writes a crystal at a 1-based (row, col) position,
//     overwriting whatever was there before.
//   - PlaceCrystalChecked is the validating variant used at input
//     boundaries; it rejects out-of-range coordinates and negative
//     brightness with ErrInvalidInput.
//
// Connections:
//
//	bit 0 = Right, bit 1 = Up, bit 2 = Left, bit 3 = Down
//
// Complexity:
//
//   - New:          O(L×C) time and memory.
//   - PlaceCrystal: O(1).
//   - Dump:         O(L×C).
//
// Errors:
//
//   - ErrEmptyGrid:    rows or cols is not positive.
//   - ErrInvalidInput: a checked placement is out of range or malformed.
package grid
