package typer

import (
	"cognia/domain/profile"
	"cognia/domain/table"
)

// Typer infers exactly one semantic type per column. It is a pure function
// of the column values and its thresholds; callers cache the result per
// profiling run so no analyzer re-infers.
type Typer struct {
	cardinalityThreshold float64
	maxDistinct          int
}

// New creates a typer with the run's cardinality options
func New(opts profile.Options) *Typer {
	return &Typer{
		cardinalityThreshold: opts.CategoricalCardinalityThreshold,
		maxDistinct:          opts.CategoricalMaxDistinct,
	}
}

// columnSummary collects everything the cascade predicates need in one pass
type columnSummary struct {
	nonMissing    int
	distinct      int
	allIdentical  bool
	allBool       bool
	allNumeric    bool
	allDatetime   bool
	allIdentifier bool
}

func (t *Typer) summarize(col table.Column) columnSummary {
	s := columnSummary{
		allIdentical:  true,
		allBool:       true,
		allNumeric:    true,
		allDatetime:   true,
		allIdentifier: true,
	}

	seen := make(map[string]struct{})
	first := ""
	for i := 0; i < col.Len(); i++ {
		v := col.Value(i)
		if table.IsMissing(v) {
			continue
		}
		s.nonMissing++

		formatted := table.FormatValue(v)
		if s.nonMissing == 1 {
			first = formatted
		} else if formatted != first {
			s.allIdentical = false
		}
		seen[formatted] = struct{}{}

		if _, ok := AsBool(v); !ok {
			s.allBool = false
		}
		if _, ok := AsFloat(v); !ok {
			s.allNumeric = false
		}
		if _, ok := AsDatetime(v); !ok {
			s.allDatetime = false
		}
		if !isIdentifierScalar(v) {
			s.allIdentifier = false
		}
	}
	s.distinct = len(seen)
	return s
}

// Infer resolves the column to exactly one type via a fixed priority
// cascade; the first matching rule wins. There is no "unknown" terminal
// state: a column that matches nothing is Text.
func (t *Typer) Infer(col table.Column) profile.ColumnType {
	s := t.summarize(col)

	rules := []struct {
		match bool
		typ   profile.ColumnType
	}{
		// An all-missing or zero-row column degenerates to Constant.
		{s.nonMissing == 0 || s.allIdentical, profile.TypeConstant},
		{s.allBool, profile.TypeBoolean},
		{s.allNumeric, profile.TypeNumeric},
		{s.allDatetime, profile.TypeDatetime},
		{t.isCategorical(s), profile.TypeCategorical},
		{s.distinct == s.nonMissing && s.allIdentifier, profile.TypeIdentifier},
	}

	for _, rule := range rules {
		if rule.match {
			return rule.typ
		}
	}
	return profile.TypeText
}

func (t *Typer) isCategorical(s columnSummary) bool {
	if s.nonMissing == 0 {
		return false
	}
	ratio := float64(s.distinct) / float64(s.nonMissing)
	return ratio < t.cardinalityThreshold && s.distinct <= t.maxDistinct
}
