package table

import (
	"testing"

	"cognia/domain/core"
)

func TestNew_RejectsEmptyTable(t *testing.T) {
	_, err := New(nil)
	if err == nil {
		t.Fatal("expected error for table with no columns")
	}
	if !core.IsInputError(err) {
		t.Errorf("expected input error, got %v", err)
	}
}

func TestNew_RejectsRowCountMismatch(t *testing.T) {
	_, err := New([]Column{
		NewColumn("a", []Value{1, 2, 3}),
		NewColumn("b", []Value{1, 2}),
	})
	if err == nil {
		t.Fatal("expected error for mismatched row counts")
	}
	if !core.IsInputError(err) {
		t.Errorf("expected input error, got %v", err)
	}
}

func TestNew_RejectsDuplicateColumnNames(t *testing.T) {
	_, err := New([]Column{
		NewColumn("a", []Value{1}),
		NewColumn("a", []Value{2}),
	})
	if err == nil {
		t.Fatal("expected error for duplicate column names")
	}
	if !core.IsInputError(err) {
		t.Errorf("expected input error, got %v", err)
	}
}

func TestNew_ValidTable(t *testing.T) {
	tbl, err := New([]Column{
		NewColumn("a", []Value{1, 2, 3}),
		NewColumn("b", []Value{"x", nil, "z"}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.RowCount() != 3 {
		t.Errorf("expected 3 rows, got %d", tbl.RowCount())
	}
	if tbl.ColumnCount() != 2 {
		t.Errorf("expected 2 columns, got %d", tbl.ColumnCount())
	}

	col, err := tbl.Column("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsMissing(col.Value(1)) {
		t.Error("expected row 1 of column b to be missing")
	}

	if _, err := tbl.Column("nope"); err == nil {
		t.Error("expected error for unknown column")
	}
}

func TestIsMissing(t *testing.T) {
	if !IsMissing(nil) {
		t.Error("nil should be missing")
	}
	if IsMissing("") {
		t.Error("empty string is a recorded value, not missing")
	}
	if IsMissing(0.0) {
		t.Error("zero is a recorded value, not missing")
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   Value
		want string
	}{
		{nil, ""},
		{"hello", "hello"},
		{true, "true"},
		{42, "42"},
		{int64(42), "42"},
		{3.5, "3.5"},
	}
	for _, c := range cases {
		if got := FormatValue(c.in); got != c.want {
			t.Errorf("FormatValue(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
