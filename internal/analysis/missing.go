package analysis

import (
	"cognia/domain/profile"
)

// MissingnessAnalyzer computes null/empty-value counts per column and
// table-wide.
type MissingnessAnalyzer struct{}

// NewMissingnessAnalyzer creates a missingness analyzer
func NewMissingnessAnalyzer() *MissingnessAnalyzer {
	return &MissingnessAnalyzer{}
}

// Analyze reports missing counts for a column of the given length. A
// zero-row column reports ratio 0 by convention and is flagged Empty.
func (a *MissingnessAnalyzer) Analyze(rows, missing int) profile.MissingStats {
	if rows == 0 {
		return profile.MissingStats{Empty: true}
	}
	ratio := float64(missing) / float64(rows)
	return profile.MissingStats{
		MissingCount: missing,
		MissingRatio: ratio,
		FullyMissing: ratio == 1.0,
	}
}

// Summarize aggregates column missingness into the table-wide summary.
// Column order is preserved in the fully-missing list.
func (a *MissingnessAnalyzer) Summarize(columns []profile.ColumnProfile, rows int) profile.TableMissingness {
	summary := profile.TableMissingness{
		TotalCells:          rows * len(columns),
		FullyMissingColumns: []string{},
	}
	for _, cp := range columns {
		summary.MissingCells += cp.Missing.MissingCount
		if cp.Missing.FullyMissing {
			summary.FullyMissingColumns = append(summary.FullyMissingColumns, cp.Name)
		}
	}
	if summary.TotalCells > 0 {
		summary.MissingRatio = float64(summary.MissingCells) / float64(summary.TotalCells)
	}
	return summary
}
