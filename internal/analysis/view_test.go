package analysis

import (
	"reflect"
	"testing"

	"cognia/domain/profile"
	"cognia/domain/table"
)

func TestBuildView_NumericSkipsMissingRows(t *testing.T) {
	col := table.NewColumn("n", []table.Value{10, nil, 20, nil, 30})
	view := BuildView(col, profile.TypeNumeric)

	if !view.NumericLike() {
		t.Fatal("numeric column should expose numbers")
	}
	if view.MissingCount != 2 {
		t.Errorf("missing count = %d, want 2", view.MissingCount)
	}
	if !reflect.DeepEqual(view.Numbers, []float64{10, 20, 30}) {
		t.Errorf("numbers = %v, want [10 20 30]", view.Numbers)
	}
	if !reflect.DeepEqual(view.NumberRows, []int{0, 2, 4}) {
		t.Errorf("number rows = %v, want [0 2 4]", view.NumberRows)
	}
}

func TestBuildView_NumericConstantGetsNumbers(t *testing.T) {
	col := table.NewColumn("c", []table.Value{5, 5, 5})
	view := BuildView(col, profile.TypeConstant)

	if !view.NumericLike() {
		t.Fatal("numeric-valued constant column should expose numbers")
	}
	if view.CategoricalLike() {
		t.Error("numeric-valued constant column should not also expose labels")
	}
}

func TestBuildView_TextConstantGetsLabels(t *testing.T) {
	col := table.NewColumn("c", []table.Value{"on", "on"})
	view := BuildView(col, profile.TypeConstant)

	if view.NumericLike() {
		t.Error("text constant column should not expose numbers")
	}
	if !view.CategoricalLike() {
		t.Fatal("text constant column should expose labels")
	}
	if !reflect.DeepEqual(view.Labels, []string{"on", "on"}) {
		t.Errorf("labels = %v, want [on on]", view.Labels)
	}
}

func TestBuildView_AllMissingConstant(t *testing.T) {
	col := table.NewColumn("gone", []table.Value{nil, nil, nil})
	view := BuildView(col, profile.TypeConstant)

	if !view.NumericLike() {
		t.Fatal("all-missing column should expose an empty numeric sample")
	}
	if len(view.Numbers) != 0 {
		t.Errorf("numbers = %v, want empty", view.Numbers)
	}
	if view.NonMissing() != 0 {
		t.Errorf("non-missing = %d, want 0", view.NonMissing())
	}
}

func TestBuildView_CategoricalFormatsLabels(t *testing.T) {
	col := table.NewColumn("flag", []table.Value{true, false, nil, true})
	view := BuildView(col, profile.TypeBoolean)

	if !view.CategoricalLike() {
		t.Fatal("boolean column should expose labels")
	}
	if !reflect.DeepEqual(view.Labels, []string{"true", "false", "true"}) {
		t.Errorf("labels = %v, want [true false true]", view.Labels)
	}
	if !reflect.DeepEqual(view.LabelRows, []int{0, 1, 3}) {
		t.Errorf("label rows = %v, want [0 1 3]", view.LabelRows)
	}
}
