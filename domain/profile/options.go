package profile

import (
	"cognia/domain/core"
	"fmt"
)

// Options configures a profiling run. The zero value is not valid; start
// from DefaultOptions and override fields.
type Options struct {
	// CategoricalCardinalityThreshold is the distinct/non-missing ratio
	// below which a low-cardinality string column is Categorical.
	CategoricalCardinalityThreshold float64 `json:"categorical_cardinality_threshold"`
	// CategoricalMaxDistinct caps the distinct count a Categorical column
	// may have.
	CategoricalMaxDistinct int `json:"categorical_max_distinct"`
	// OutlierIQRMultiplier scales the IQR when placing outlier fences.
	OutlierIQRMultiplier float64 `json:"outlier_iqr_multiplier"`
	// TopKFrequency caps the frequency table; the remainder aggregates
	// into the "other" bucket.
	TopKFrequency int `json:"top_k_frequency"`
	// Workers bounds the column analysis pool. Zero means one worker per
	// logical CPU.
	Workers int `json:"workers,omitempty"`
}

// DefaultOptions returns the engineering defaults
func DefaultOptions() Options {
	return Options{
		CategoricalCardinalityThreshold: 0.05,
		CategoricalMaxDistinct:          50,
		OutlierIQRMultiplier:            1.5,
		TopKFrequency:                   20,
	}
}

// Validate rejects option values outside their valid domain. Out-of-range
// values are an error, never silently clamped.
func (o Options) Validate() error {
	if o.CategoricalCardinalityThreshold <= 0 || o.CategoricalCardinalityThreshold > 1 {
		return core.NewConfigurationError("categorical_cardinality_threshold",
			fmt.Sprintf("must be in (0, 1], got %g", o.CategoricalCardinalityThreshold))
	}
	if o.CategoricalMaxDistinct <= 0 {
		return core.NewConfigurationError("categorical_max_distinct",
			fmt.Sprintf("must be positive, got %d", o.CategoricalMaxDistinct))
	}
	if o.OutlierIQRMultiplier <= 0 {
		return core.NewConfigurationError("outlier_iqr_multiplier",
			fmt.Sprintf("must be positive, got %g", o.OutlierIQRMultiplier))
	}
	if o.TopKFrequency <= 0 {
		return core.NewConfigurationError("top_k_frequency",
			fmt.Sprintf("must be positive, got %d", o.TopKFrequency))
	}
	if o.Workers < 0 {
		return core.NewConfigurationError("workers",
			fmt.Sprintf("must be non-negative, got %d", o.Workers))
	}
	return nil
}
