package profile

import (
	"encoding/json"
	"strconv"

	"cognia/domain/core"
)

// ColumnType is the semantic type inferred for a column. Derived once per
// profiling run, never stored on the column itself.
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeBoolean     ColumnType = "boolean"
	TypeCategorical ColumnType = "categorical"
	TypeDatetime    ColumnType = "datetime"
	TypeText        ColumnType = "text"
	TypeConstant    ColumnType = "constant"
	TypeIdentifier  ColumnType = "identifier"
)

// String returns the type tag
func (t ColumnType) String() string {
	return string(t)
}

// IsNumeric reports whether the column participates in numeric analysis.
func (t ColumnType) IsNumeric() bool {
	return t == TypeNumeric
}

// IsCategoricalFamily reports whether the column participates in
// categorical analysis (frequency tables, contingency association).
func (t ColumnType) IsCategoricalFamily() bool {
	return t == TypeCategorical || t == TypeBoolean
}

// Stat is an explicitly optional statistic: either a computed value or
// undefined. Undefined is a legitimate per-statistic state (skewness on a
// two-row column), never an error and never a sentinel number.
type Stat struct {
	value   float64
	defined bool
}

// NewStat creates a defined statistic
func NewStat(v float64) Stat {
	return Stat{value: v, defined: true}
}

// UndefinedStat creates an undefined statistic
func UndefinedStat() Stat {
	return Stat{}
}

// Defined reports whether the statistic was computed
func (s Stat) Defined() bool {
	return s.defined
}

// Value returns the computed value and whether it is defined
func (s Stat) Value() (float64, bool) {
	return s.value, s.defined
}

// Float returns the computed value, or 0 for undefined statistics.
// Callers must check Defined first; this accessor exists for formatting.
func (s Stat) Float() float64 {
	return s.value
}

// String renders the statistic, with "N/A" for undefined
func (s Stat) String() string {
	if !s.defined {
		return "N/A"
	}
	return strconv.FormatFloat(s.value, 'g', 6, 64)
}

// MarshalJSON renders undefined statistics as null
func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.defined {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON reads null as undefined
func (s *Stat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Stat{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = NewStat(v)
	return nil
}

// MissingStats tracks missing value counts for one column
type MissingStats struct {
	MissingCount int     `json:"missing_count"`
	MissingRatio float64 `json:"missing_ratio"`
	FullyMissing bool    `json:"fully_missing"`
	// Empty flags a zero-row column, whose ratio is 0 by convention.
	Empty bool `json:"empty"`
}

// NumericStats contains the descriptive statistics of a numeric column.
// Moments that cannot be computed for the column are undefined.
type NumericStats struct {
	Count    int  `json:"count"` // non-missing values
	Mean     Stat `json:"mean"`
	StdDev   Stat `json:"std_dev"` // population standard deviation
	Min      Stat `json:"min"`
	Max      Stat `json:"max"`
	Q25      Stat `json:"q25"`
	Median   Stat `json:"median"`
	Q75      Stat `json:"q75"`
	Skewness Stat `json:"skewness"` // defined when count >= 3 and std > 0
	Kurtosis Stat `json:"kurtosis"` // defined when count >= 4 and std > 0
	// NormalityP is a moment-based normality heuristic, defined for
	// samples of at least 8 values with positive variance.
	NormalityP Stat `json:"normality_p"`
}

// FrequencyEntry is one value of a categorical frequency table
type FrequencyEntry struct {
	Value string  `json:"value"`
	Count int     `json:"count"`
	Ratio float64 `json:"ratio"`
}

// CategoricalStats contains the descriptive statistics of a categorical or
// boolean column. TopValues is capped; the remainder aggregates into
// OtherCount.
type CategoricalStats struct {
	Count         int              `json:"count"` // non-missing values
	DistinctCount int              `json:"distinct_count"`
	Mode          string           `json:"mode"`
	ModeCount     int              `json:"mode_count"`
	TopValues     []FrequencyEntry `json:"top_values"`
	OtherCount    int              `json:"other_count"`
}

// OutlierStats flags numeric values outside the IQR fences
type OutlierStats struct {
	Indices    []int   `json:"indices"` // original row indices, ascending
	Count      int     `json:"count"`
	Ratio      float64 `json:"ratio"`
	LowerFence Stat    `json:"lower_fence"`
	UpperFence Stat    `json:"upper_fence"`
}

// ColumnProfile is the complete per-column analysis result. Immutable once
// built by the profiler.
type ColumnProfile struct {
	Name        string            `json:"name"`
	Type        ColumnType        `json:"type"`
	Count       int               `json:"count"` // non-missing values
	Missing     MissingStats      `json:"missing"`
	Numeric     *NumericStats     `json:"numeric,omitempty"`
	Categorical *CategoricalStats `json:"categorical,omitempty"`
	Outliers    *OutlierStats     `json:"outliers,omitempty"`
}

// Shape describes the table dimensions
type Shape struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// TableMissingness is the table-wide missingness summary
type TableMissingness struct {
	TotalCells          int      `json:"total_cells"`
	MissingCells        int      `json:"missing_cells"`
	MissingRatio        float64  `json:"missing_ratio"`
	FullyMissingColumns []string `json:"fully_missing_columns"`
}

// DataQuality summarizes table-level quality signals
type DataQuality struct {
	DuplicateRows      int     `json:"duplicate_rows"`
	DuplicateRatio     float64 `json:"duplicate_ratio"`
	NumericColumns     int     `json:"numeric_columns"`
	CategoricalColumns int     `json:"categorical_columns"`
}

// AlertSeverity grades data quality alerts
type AlertSeverity string

const (
	SeverityWarning AlertSeverity = "warning"
	SeverityInfo    AlertSeverity = "info"
)

// Alert is a data quality warning attached to the profile
type Alert struct {
	Severity AlertSeverity `json:"severity"`
	Column   string        `json:"column,omitempty"` // empty for table-wide alerts
	Message  string        `json:"message"`
}

// Profile is the top-level analysis aggregate: one per call, immutable,
// deterministic for identical input and options. It deliberately carries no
// ID or timestamp so repeated profiling of an unchanged table is
// bit-identical; the Report layer owns generation metadata.
type Profile struct {
	Shape                   Shape              `json:"shape"`
	Columns                 []ColumnProfile    `json:"columns"` // table column order
	NumericCorrelations     *CorrelationMatrix `json:"numeric_correlations"`
	CategoricalCorrelations *CorrelationMatrix `json:"categorical_correlations"`
	Missingness             TableMissingness   `json:"missingness"`
	Quality                 DataQuality        `json:"quality"`
	Alerts                  []Alert            `json:"alerts"`
	Fingerprint             core.Fingerprint   `json:"fingerprint"`
}

// ColumnByName finds a column profile by name
func (p *Profile) ColumnByName(name string) (ColumnProfile, bool) {
	for _, cp := range p.Columns {
		if cp.Name == name {
			return cp, true
		}
	}
	return ColumnProfile{}, false
}
