package analysis

import (
	"math"
	"testing"

	"cognia/domain/profile"
)

func numericView(name string, values []float64, rows []int) *ColumnView {
	return &ColumnView{
		Name:       name,
		Type:       profile.TypeNumeric,
		Rows:       len(rows),
		Numbers:    values,
		NumberRows: rows,
	}
}

func labelView(name string, labels []string, rows []int) *ColumnView {
	return &ColumnView{
		Name:      name,
		Type:      profile.TypeCategorical,
		Rows:      len(rows),
		Labels:    labels,
		LabelRows: rows,
	}
}

func TestPearson_PerfectCorrelation(t *testing.T) {
	a := NewCorrelationAnalyzer()
	x := numericView("x", []float64{1, 2, 3, 4}, []int{0, 1, 2, 3})
	y := numericView("y", []float64{2, 4, 6, 8}, []int{0, 1, 2, 3})

	r, ok := a.Pearson(x, y).Value()
	if !ok {
		t.Fatal("expected a defined coefficient")
	}
	if math.Abs(r-1) > 1e-9 {
		t.Errorf("r = %g, want 1", r)
	}

	inv := numericView("inv", []float64{8, 6, 4, 2}, []int{0, 1, 2, 3})
	r, _ = a.Pearson(x, inv).Value()
	if math.Abs(r+1) > 1e-9 {
		t.Errorf("r = %g, want -1", r)
	}
}

func TestPearson_PairwiseCompleteRowsOnly(t *testing.T) {
	// x is missing at row 3, y at row 0; the overlap is rows 1 and 2.
	x := numericView("x", []float64{10, 1, 2}, []int{0, 1, 2})
	y := numericView("y", []float64{5, 7, 99}, []int{1, 2, 3})

	r, ok := NewCorrelationAnalyzer().Pearson(x, y).Value()
	if !ok {
		t.Fatal("expected a defined coefficient over the overlap")
	}
	// Rows 1 and 2 line up as (1,5) and (2,7): a perfect line.
	if math.Abs(r-1) > 1e-9 {
		t.Errorf("r = %g, want 1 over pairwise-complete rows", r)
	}
}

func TestPearson_UndefinedCases(t *testing.T) {
	a := NewCorrelationAnalyzer()

	// Fewer than two pairwise-complete rows.
	x := numericView("x", []float64{1}, []int{0})
	y := numericView("y", []float64{2}, []int{0})
	if a.Pearson(x, y).Defined() {
		t.Error("single overlapping row must be undefined")
	}

	// Disjoint rows.
	x = numericView("x", []float64{1, 2}, []int{0, 1})
	y = numericView("y", []float64{3, 4}, []int{2, 3})
	if a.Pearson(x, y).Defined() {
		t.Error("disjoint columns must be undefined")
	}

	// Zero variance on one side.
	x = numericView("x", []float64{5, 5, 5}, []int{0, 1, 2})
	y = numericView("y", []float64{1, 2, 3}, []int{0, 1, 2})
	if a.Pearson(x, y).Defined() {
		t.Error("zero-variance column must be undefined, not NaN")
	}
}

func TestAssociation_PerfectDependence(t *testing.T) {
	x := labelView("x", []string{"a", "a", "b", "b"}, []int{0, 1, 2, 3})
	y := labelView("y", []string{"u", "u", "v", "v"}, []int{0, 1, 2, 3})

	v, ok := NewCorrelationAnalyzer().Association(x, y).Value()
	if !ok {
		t.Fatal("expected a defined coefficient")
	}
	if math.Abs(v-1) > 1e-9 {
		t.Errorf("Cramér's V = %g, want 1 for perfect dependence", v)
	}
}

func TestAssociation_Independence(t *testing.T) {
	x := labelView("x", []string{"a", "a", "b", "b"}, []int{0, 1, 2, 3})
	y := labelView("y", []string{"u", "v", "u", "v"}, []int{0, 1, 2, 3})

	v, ok := NewCorrelationAnalyzer().Association(x, y).Value()
	if !ok {
		t.Fatal("expected a defined coefficient")
	}
	if v > 1e-9 {
		t.Errorf("Cramér's V = %g, want 0 for independent columns", v)
	}
}

func TestAssociation_UndefinedCases(t *testing.T) {
	a := NewCorrelationAnalyzer()

	// One column shows a single level over the overlap.
	x := labelView("x", []string{"a", "a", "a"}, []int{0, 1, 2})
	y := labelView("y", []string{"u", "v", "u"}, []int{0, 1, 2})
	if a.Association(x, y).Defined() {
		t.Error("single-level column must be undefined")
	}

	// Fewer than two pairwise-complete rows.
	x = labelView("x", []string{"a"}, []int{0})
	y = labelView("y", []string{"u"}, []int{0})
	if a.Association(x, y).Defined() {
		t.Error("single overlapping row must be undefined")
	}
}

func TestAssociation_StaysWithinUnitInterval(t *testing.T) {
	x := labelView("x", []string{"a", "b", "a", "b", "c", "c"}, []int{0, 1, 2, 3, 4, 5})
	y := labelView("y", []string{"u", "u", "v", "v", "u", "v"}, []int{0, 1, 2, 3, 4, 5})

	v, ok := NewCorrelationAnalyzer().Association(x, y).Value()
	if !ok {
		t.Fatal("expected a defined coefficient")
	}
	if v < 0 || v > 1 {
		t.Errorf("Cramér's V = %g, want within [0, 1]", v)
	}
}
