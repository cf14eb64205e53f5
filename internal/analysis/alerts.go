package analysis

import (
	"fmt"

	"cognia/domain/profile"
)

// Alert thresholds. Not recovered from any standard; chosen to flag what a
// reviewer of the rendered report would want called out.
const (
	highMissingRatio        = 0.5
	highOutlierRatio        = 0.05
	highDuplicateRows       = 0
	highCategoricalDistinct = 20
)

// GenerateAlerts derives data quality warnings from the assembled column
// profiles and table-level quality summary. Order is deterministic: column
// alerts in table column order, table-wide alerts last.
func GenerateAlerts(columns []profile.ColumnProfile, quality profile.DataQuality) []profile.Alert {
	alerts := []profile.Alert{}

	for _, cp := range columns {
		switch {
		case cp.Missing.Empty:
			alerts = append(alerts, profile.Alert{
				Severity: profile.SeverityInfo,
				Column:   cp.Name,
				Message:  fmt.Sprintf("column %q has no rows", cp.Name),
			})
		case cp.Missing.FullyMissing:
			alerts = append(alerts, profile.Alert{
				Severity: profile.SeverityWarning,
				Column:   cp.Name,
				Message:  fmt.Sprintf("column %q is entirely missing", cp.Name),
			})
		case cp.Missing.MissingRatio > highMissingRatio:
			alerts = append(alerts, profile.Alert{
				Severity: profile.SeverityWarning,
				Column:   cp.Name,
				Message: fmt.Sprintf("column %q is %.1f%% missing",
					cp.Name, cp.Missing.MissingRatio*100),
			})
		}

		if cp.Type == profile.TypeConstant && !cp.Missing.FullyMissing && !cp.Missing.Empty {
			alerts = append(alerts, profile.Alert{
				Severity: profile.SeverityInfo,
				Column:   cp.Name,
				Message:  fmt.Sprintf("column %q is constant and carries no information", cp.Name),
			})
		}

		if cp.Numeric != nil {
			if std, ok := cp.Numeric.StdDev.Value(); ok && std == 0 && cp.Type == profile.TypeNumeric {
				alerts = append(alerts, profile.Alert{
					Severity: profile.SeverityInfo,
					Column:   cp.Name,
					Message:  fmt.Sprintf("column %q has zero variance", cp.Name),
				})
			}
		}

		if cp.Categorical != nil && cp.Categorical.DistinctCount > highCategoricalDistinct {
			alerts = append(alerts, profile.Alert{
				Severity: profile.SeverityInfo,
				Column:   cp.Name,
				Message: fmt.Sprintf("column %q has high cardinality (%d distinct values)",
					cp.Name, cp.Categorical.DistinctCount),
			})
		}

		if cp.Outliers != nil && cp.Outliers.Ratio > highOutlierRatio {
			alerts = append(alerts, profile.Alert{
				Severity: profile.SeverityWarning,
				Column:   cp.Name,
				Message: fmt.Sprintf("column %q has %d outliers (%.1f%% of values)",
					cp.Name, cp.Outliers.Count, cp.Outliers.Ratio*100),
			})
		}

		if cp.Type == profile.TypeIdentifier {
			alerts = append(alerts, profile.Alert{
				Severity: profile.SeverityInfo,
				Column:   cp.Name,
				Message:  fmt.Sprintf("column %q looks like an identifier; excluded from correlation", cp.Name),
			})
		}
	}

	if quality.DuplicateRows > highDuplicateRows {
		alerts = append(alerts, profile.Alert{
			Severity: profile.SeverityWarning,
			Message: fmt.Sprintf("table contains %d duplicate rows (%.1f%%)",
				quality.DuplicateRows, quality.DuplicateRatio*100),
		})
	}

	return alerts
}
