package table

import (
	"cognia/domain/core"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Value is a single cell: a scalar (string, numeric, bool, or time.Time) or
// the explicit missing marker. Missing is represented as nil so readers can
// hand over sparse data without inventing sentinel strings.
type Value interface{}

// Missing is the explicit missing-value marker.
var Missing Value = nil

// IsMissing reports whether a cell holds no recorded value. An untyped nil
// and a NaN float are both treated as missing; readers that parse "NaN"
// tokens produce the latter.
func IsMissing(v Value) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return true
	}
	return false
}

// Column is a named, ordered sequence of cells. Owned exclusively by its
// Table and never mutated by the engine.
type Column struct {
	name   string
	values []Value
}

// NewColumn creates a column from a name and its cells.
func NewColumn(name string, values []Value) Column {
	return Column{name: name, values: values}
}

// Name returns the column name, unique within its table.
func (c Column) Name() string {
	return c.name
}

// Len returns the number of rows in the column.
func (c Column) Len() int {
	return len(c.values)
}

// Value returns the cell at row i.
func (c Column) Value(i int) Value {
	return c.values[i]
}

// Values returns the ordered cells. Callers must not modify the slice.
func (c Column) Values() []Value {
	return c.values
}

// Table is an ordered sequence of named columns of uniform length.
// Read-only to the analysis engine.
type Table struct {
	columns []Column
	byName  map[string]int
	rows    int
}

// New validates and builds a table from ordered columns. The first column's
// length defines the table's row count; every other column must match it.
func New(columns []Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, core.ErrNoColumns
	}

	rows := columns[0].Len()
	byName := make(map[string]int, len(columns))
	for i, col := range columns {
		if col.Len() != rows {
			return nil, core.NewRowCountError(col.Name(), col.Len(), rows)
		}
		if _, dup := byName[col.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", core.ErrDuplicateColumn, col.Name())
		}
		byName[col.Name()] = i
	}

	return &Table{columns: columns, byName: byName, rows: rows}, nil
}

// RowCount returns the number of rows shared by all columns.
func (t *Table) RowCount() int {
	return t.rows
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name()
	}
	return names
}

// ColumnAt returns the column at position i.
func (t *Table) ColumnAt(i int) Column {
	return t.columns[i]
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", core.ErrColumnNotFound, name)
	}
	return t.columns[i], nil
}

// FormatValue renders a cell for display, hashing, and frequency counting.
// Missing cells render as the empty string.
func FormatValue(v Value) string {
	if IsMissing(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", x)
	}
}
