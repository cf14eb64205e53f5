package reporting

import (
	"fmt"

	"cognia/domain/profile"
)

// Interpretation bands for skewness and kurtosis. Kurtosis is carried on
// the plain scale (normal = 3), so the bands compare its excess against the
// normal baseline.
const (
	symmetricSkewBound = 0.5
	moderateTailsBound = 1.0
)

// skewnessNarrative describes the distribution's asymmetry
func skewnessNarrative(skew profile.Stat) string {
	v, ok := skew.Value()
	if !ok {
		return "Skewness is undefined for this column."
	}
	switch {
	case v > -symmetricSkewBound && v < symmetricSkewBound:
		return "The distribution is approximately symmetric."
	case v > 0:
		return "The distribution is right-skewed, indicating the presence of higher-value outliers."
	default:
		return "The distribution is left-skewed, indicating the presence of lower-value outliers."
	}
}

// kurtosisNarrative describes the distribution's tail weight
func kurtosisNarrative(kurt profile.Stat) string {
	v, ok := kurt.Value()
	if !ok {
		return "Kurtosis is undefined for this column."
	}
	excess := v - 3
	switch {
	case excess > -moderateTailsBound && excess < moderateTailsBound:
		return "The distribution has moderate tails, similar to a normal distribution."
	case excess > 0:
		return "The distribution has heavy tails, suggesting a higher likelihood of extreme values."
	default:
		return "The distribution has light tails, suggesting fewer extreme values."
	}
}

// distributionNarrative combines the per-column interpretation sentence
func distributionNarrative(name string, ns *profile.NumericStats) string {
	return fmt.Sprintf("%s (skewness %s, kurtosis %s): %s %s",
		name, ns.Skewness, ns.Kurtosis,
		skewnessNarrative(ns.Skewness), kurtosisNarrative(ns.Kurtosis))
}

// overviewNarrative summarizes the table shape and type mix
func overviewNarrative(p *profile.Profile) string {
	return fmt.Sprintf("Dataset has %d rows and %d columns: %d numeric, %d categorical.",
		p.Shape.Rows, p.Shape.Columns,
		p.Quality.NumericColumns, p.Quality.CategoricalColumns)
}

// qualityNarrative summarizes duplicate rows
func qualityNarrative(q profile.DataQuality) string {
	if q.DuplicateRows == 0 {
		return "No duplicate rows detected."
	}
	return fmt.Sprintf("%d duplicate rows detected (%.2f%% of the table).",
		q.DuplicateRows, q.DuplicateRatio*100)
}

// missingnessNarrative summarizes table-wide missingness
func missingnessNarrative(m profile.TableMissingness) string {
	s := fmt.Sprintf("%d of %d cells are missing (%.2f%%).",
		m.MissingCells, m.TotalCells, m.MissingRatio*100)
	if len(m.FullyMissingColumns) > 0 {
		s += fmt.Sprintf(" %d columns are entirely missing.", len(m.FullyMissingColumns))
	}
	return s
}
