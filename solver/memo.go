package solver

// memoTable is the dense L × 2^C × 2^C table kept as one flat arena.
type memoTable struct {
	n       int
	entries []MemoEntry
}

// newMemoTable allocates rows×n×n entries, all uncomputed and Infeasible.
func newMemoTable(rows, n int) *memoTable {
	entries := make([]MemoEntry, rows*n*n)
	for i := range entries {
		entries[i].Value = Infeasible
	}
	return &memoTable{n: n, entries: entries}
}

// offset maps (row, conf, anchor) to its arena index.
func (m *memoTable) offset(row int, conf, anchor Config) int {
	return (row*m.n+int(conf))*m.n + int(anchor)
}

func (m *memoTable) get(row int, conf, anchor Config) MemoEntry {
	return m.entries[m.offset(row, conf, anchor)]
}

// put finalises an entry. Entries are written once.
func (m *memoTable) put(row int, conf, anchor Config, value int, source Config) MemoEntry {
	e := MemoEntry{Computed: true, Value: value, Source: source}
	m.entries[m.offset(row, conf, anchor)] = e
	return e
}

// computed counts final entries.
func (m *memoTable) computed() int {
	n := 0
	for i := range m.entries {
		if m.entries[i].Computed {
			n++
		}
	}
	return n
}

// tableFits reports whether rows × n × n ≤ limit without overflowing.
func tableFits(rows, n, limit int) bool {
	if rows <= 0 || n <= 0 {
		return true
	}
	l, r, nn := uint64(limit), uint64(rows), uint64(n)
	if nn > l/nn {
		return false
	}
	return r <= l/(nn*nn)
}
