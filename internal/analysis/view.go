package analysis

import (
	"cognia/domain/profile"
	"cognia/domain/table"
	"cognia/internal/typer"
)

// ColumnView is the typed, parsed representation of one column for a single
// profiling run. It is built exactly once per column so downstream analyzers
// never re-infer the type or re-parse values, and discarded with the run.
type ColumnView struct {
	Name         string
	Type         profile.ColumnType
	Rows         int
	MissingCount int

	// Numbers holds parsed non-missing values for numeric-like columns;
	// NumberRows maps each value back to its original row index.
	Numbers    []float64
	NumberRows []int

	// Labels holds formatted non-missing values for categorical-like
	// columns, in row order.
	Labels    []string
	LabelRows []int
}

// NonMissing returns the count of recorded values
func (v *ColumnView) NonMissing() int {
	return v.Rows - v.MissingCount
}

// NumericLike reports whether numeric statistics apply: Numeric columns,
// plus Constant columns whose values parse as numbers (so a constant column
// still reports IQR = 0 and zero outliers rather than nothing).
func (v *ColumnView) NumericLike() bool {
	return v.Numbers != nil
}

// CategoricalLike reports whether frequency statistics apply
func (v *ColumnView) CategoricalLike() bool {
	return v.Labels != nil
}

// BuildView extracts the typed representation for an already-inferred
// column type.
func BuildView(col table.Column, typ profile.ColumnType) *ColumnView {
	view := &ColumnView{
		Name: col.Name(),
		Type: typ,
		Rows: col.Len(),
	}

	wantNumbers := typ == profile.TypeNumeric || typ == profile.TypeConstant
	wantLabels := typ.IsCategoricalFamily() || typ == profile.TypeConstant

	var numbers []float64
	var numberRows []int
	var labels []string
	var labelRows []int
	numeric := true

	for i := 0; i < col.Len(); i++ {
		v := col.Value(i)
		if table.IsMissing(v) {
			view.MissingCount++
			continue
		}
		if wantNumbers && numeric {
			if f, ok := typer.AsFloat(v); ok {
				numbers = append(numbers, f)
				numberRows = append(numberRows, i)
			} else {
				// Constant column of non-numeric values.
				numeric = false
				numbers, numberRows = nil, nil
			}
		}
		if wantLabels {
			labels = append(labels, table.FormatValue(v))
			labelRows = append(labelRows, i)
		}
	}

	if wantNumbers && numeric {
		if numbers == nil {
			numbers = []float64{}
			numberRows = []int{}
		}
		view.Numbers = numbers
		view.NumberRows = numberRows
	}
	// A numeric-valued constant column keeps the numeric representation
	// only; categorical treatment applies to the rest of the family.
	if wantLabels && !(typ == profile.TypeConstant && view.Numbers != nil) {
		if labels == nil {
			labels = []string{}
			labelRows = []int{}
		}
		view.Labels = labels
		view.LabelRows = labelRows
	}

	return view
}
