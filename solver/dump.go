package solver

import (
	"fmt"
	"io"
)

// DumpMemo writes the memo table grouped by anchor: one line per row with a
// "(computed value source)" triple per Config.
func (s *Solver) DumpMemo(w io.Writer) error {
	for k := 0; k < s.n; k++ {
		if _, err := fmt.Fprintf(w, "anchor %d:\n", k); err != nil {
			return err
		}
		for row := 0; row < s.rows; row++ {
			if _, err := io.WriteString(w, "\t"); err != nil {
				return err
			}
			for j := 0; j < s.n; j++ {
				e := s.memo.get(row, Config(j), Config(k))
				computed := 0
				if e.Computed {
					computed = 1
				}
				if _, err := fmt.Fprintf(w, "(%3d %3d %3d) ", computed, e.Value, e.Source); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
