// Package solver finds the brightest admissible selection of crystals in a
// Cifra Carmesim box using a bitmask dynamic program over row
// configurations.
//
// 🚀 What is solved?
//
//	Each row of the box is assigned a Config: a C-bit mask of selected
//	columns. A Config is internally consistent for its row when every
//	selected column holds a crystal and no selected column is
//	right-connected to a selected right neighbour (column C−1 wraps to
//	column 0). Two vertically adjacent Configs are compatible when no
//	column selected in both has its Up bit set in the lower row's cell.
//	The box is treated as cyclic: the last row's Config (the anchor) is
//	checked against row 0 as well.
//
// ⚙️ Algorithm:
//
//	f(row, conf, anchor) =
//	    -1                                 if conf is inconsistent for row
//	    sum(row, conf)                     if row == 0 and compatible(0, conf, anchor)
//	    -1                                 if row == 0 otherwise
//	    sum(row, conf) + max f(row-1, p, anchor)
//	                                       over p compatible(row, conf, p), f ≠ -1
//
//	The answer is max over i of f(L-1, i, i). Every (row, conf, anchor)
//	triple is evaluated at most once and memoised in a flat arena of
//	L × 2^C × 2^C entries, together with the winning p so the optimal
//	selection can be replayed from the best anchor down to row 0.
//
//	Ties keep the first maximum found in ascending Config order.
//
// Performance:
//
//   - Time:   O(L · 4^C · C)
//   - Memory: O(L · 4^C)
//
// Infeasibility is data, not an error: it is the Infeasible (-1) value in
// the memo table and in Solution.Brightness.
//
// Usage:
//
//	g, _ := grid.New(2, 2)
//	g.PlaceCrystal(1, 1, 5, false, false, false, false)
//	s, err := solver.New(g, nil)
//	if err != nil {
//		// ErrTooManyColumns or ErrTableTooLarge
//	}
//	sol := s.Solve()
//	fmt.Println(sol.Crystals, sol.Brightness, sol.Cells)
package solver
