package analysis

import (
	"cognia/domain/profile"
)

// OutlierDetector flags numeric values outside the interquartile-range
// fences.
type OutlierDetector struct {
	multiplier float64
}

// NewOutlierDetector creates a detector with the run's IQR multiplier
func NewOutlierDetector(opts profile.Options) *OutlierDetector {
	return &OutlierDetector{multiplier: opts.OutlierIQRMultiplier}
}

// Detect flags values below Q1 - k*IQR or above Q3 + k*IQR. Row indices are
// the values' original table rows, returned in ascending order. When the
// quartiles are undefined or IQR is zero, no value is flagged: a degenerate
// fence must not condemn a near-constant column.
func (d *OutlierDetector) Detect(values []float64, rows []int, ns *profile.NumericStats) *profile.OutlierStats {
	out := &profile.OutlierStats{Indices: []int{}}

	q1, q1OK := ns.Q25.Value()
	q3, q3OK := ns.Q75.Value()
	if !q1OK || !q3OK {
		return out
	}
	iqr := q3 - q1
	if iqr == 0 {
		return out
	}

	lower := q1 - d.multiplier*iqr
	upper := q3 + d.multiplier*iqr
	out.LowerFence = profile.NewStat(lower)
	out.UpperFence = profile.NewStat(upper)

	for i, v := range values {
		if v < lower || v > upper {
			out.Indices = append(out.Indices, rows[i])
		}
	}
	out.Count = len(out.Indices)
	if len(values) > 0 {
		out.Ratio = float64(out.Count) / float64(len(values))
	}
	return out
}
