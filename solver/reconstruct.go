package solver

// reconstruct walks the Source pointers from the anchor row down to row 0,
// collecting the selected cells right to left within each row.
func (s *Solver) reconstruct(value int, anchor Config) Solution {
	sol := Solution{Brightness: value, Anchor: anchor}
	conf := anchor
	for row := s.rows - 1; row >= 0; row-- {
		for j := s.cols - 1; j >= 0; j-- {
			if conf.Has(j) {
				sol.Cells = append(sol.Cells, Position{Row: row + 1, Col: j + 1})
			}
		}
		conf = s.memo.get(row, conf, anchor).Source
	}
	sol.Crystals = len(sol.Cells)

	return sol
}
