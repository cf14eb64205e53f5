package profile

import (
	"encoding/json"
)

// CorrelationMatrix maps unordered column pairs to a coefficient. One entry
// is stored per pair, so entry(A,B) and entry(B,A) are the same value by
// construction. The diagonal is always a defined 1.
type CorrelationMatrix struct {
	columns []string
	index   map[string]int
	entries map[[2]int]Stat
}

// NewCorrelationMatrix creates an empty matrix over the given columns,
// preserving their order.
func NewCorrelationMatrix(columns []string) *CorrelationMatrix {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}
	return &CorrelationMatrix{
		columns: columns,
		index:   index,
		entries: make(map[[2]int]Stat),
	}
}

// Columns returns the member column names in their original order
func (m *CorrelationMatrix) Columns() []string {
	return m.columns
}

// Size returns the number of member columns
func (m *CorrelationMatrix) Size() int {
	return len(m.columns)
}

func (m *CorrelationMatrix) key(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// Set records the coefficient for an unordered pair. Unknown columns and
// self-pairs are ignored.
func (m *CorrelationMatrix) Set(a, b string, value Stat) {
	ia, okA := m.index[a]
	ib, okB := m.index[b]
	if !okA || !okB || ia == ib {
		return
	}
	m.entries[m.key(ia, ib)] = value
}

// At returns the coefficient for a pair of member columns. Self-pairs return
// a defined 1; pairs without a recorded entry return undefined.
func (m *CorrelationMatrix) At(a, b string) Stat {
	ia, okA := m.index[a]
	ib, okB := m.index[b]
	if !okA || !okB {
		return UndefinedStat()
	}
	if ia == ib {
		return NewStat(1)
	}
	if s, ok := m.entries[m.key(ia, ib)]; ok {
		return s
	}
	return UndefinedStat()
}

// Entry is one off-diagonal cell of the matrix in serialized form
type Entry struct {
	X     string `json:"x"`
	Y     string `json:"y"`
	Value Stat   `json:"value"`
}

// Entries returns all recorded pairs ordered by column position, X before Y.
// The order is deterministic so serialized profiles are reproducible.
func (m *CorrelationMatrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for i := 0; i < len(m.columns); i++ {
		for j := i + 1; j < len(m.columns); j++ {
			if s, ok := m.entries[[2]int{i, j}]; ok {
				out = append(out, Entry{X: m.columns[i], Y: m.columns[j], Value: s})
			}
		}
	}
	return out
}

type matrixJSON struct {
	Columns []string `json:"columns"`
	Entries []Entry  `json:"entries"`
}

// MarshalJSON serializes the matrix with deterministic entry order
func (m *CorrelationMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(matrixJSON{Columns: m.columns, Entries: m.Entries()})
}

// UnmarshalJSON restores a matrix serialized by MarshalJSON
func (m *CorrelationMatrix) UnmarshalJSON(data []byte) error {
	var raw matrixJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	restored := NewCorrelationMatrix(raw.Columns)
	for _, e := range raw.Entries {
		restored.Set(e.X, e.Y, e.Value)
	}
	*m = *restored
	return nil
}
