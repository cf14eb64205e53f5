package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"cognia/domain/profile"
)

// CorrelationAnalyzer scores pairwise association within a type family:
// Pearson for numeric pairs, Cramér's V for categorical/boolean pairs.
// Numeric-categorical pairs are never scored.
type CorrelationAnalyzer struct{}

// NewCorrelationAnalyzer creates a correlation analyzer
func NewCorrelationAnalyzer() *CorrelationAnalyzer {
	return &CorrelationAnalyzer{}
}

// Pearson computes the linear correlation of two numeric columns over
// pairwise-complete rows. Undefined when fewer than 2 complete rows exist
// or either column has zero variance over those rows.
func (a *CorrelationAnalyzer) Pearson(x, y *ColumnView) profile.Stat {
	xa, ya := alignNumbers(x, y)
	if len(xa) < 2 {
		return profile.UndefinedStat()
	}
	if !hasVariance(xa) || !hasVariance(ya) {
		return profile.UndefinedStat()
	}

	r := stat.Correlation(xa, ya, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return profile.UndefinedStat()
	}
	// Guard floating point drift outside [-1, 1].
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return profile.NewStat(r)
}

// Association computes Cramér's V for two categorical/boolean columns over
// pairwise-complete rows: sqrt(chi² / (n * min(r-1, c-1))), in [0, 1].
// Undefined when fewer than 2 complete rows exist or either column shows a
// single level over those rows.
func (a *CorrelationAnalyzer) Association(x, y *ColumnView) profile.Stat {
	xl, yl := alignLabels(x, y)
	if len(xl) < 2 {
		return profile.UndefinedStat()
	}

	table, rows, cols := buildContingencyTable(xl, yl)
	minDim := math.Min(float64(rows-1), float64(cols-1))
	if minDim < 1 {
		return profile.UndefinedStat()
	}

	chiSq := computeChiSquare(table, rows, cols)
	v := math.Sqrt(chiSq / (float64(len(xl)) * minDim))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return profile.UndefinedStat()
	}
	if v > 1 {
		v = 1
	}
	return profile.NewStat(v)
}

// alignNumbers merges two numeric views into slices restricted to rows
// where both columns are non-missing. Row index slices are ascending, so a
// two-pointer merge suffices.
func alignNumbers(x, y *ColumnView) ([]float64, []float64) {
	var xa, ya []float64
	i, j := 0, 0
	for i < len(x.NumberRows) && j < len(y.NumberRows) {
		switch {
		case x.NumberRows[i] < y.NumberRows[j]:
			i++
		case x.NumberRows[i] > y.NumberRows[j]:
			j++
		default:
			xa = append(xa, x.Numbers[i])
			ya = append(ya, y.Numbers[j])
			i++
			j++
		}
	}
	return xa, ya
}

// alignLabels merges two categorical views over pairwise-complete rows
func alignLabels(x, y *ColumnView) ([]string, []string) {
	var xl, yl []string
	i, j := 0, 0
	for i < len(x.LabelRows) && j < len(y.LabelRows) {
		switch {
		case x.LabelRows[i] < y.LabelRows[j]:
			i++
		case x.LabelRows[i] > y.LabelRows[j]:
			j++
		default:
			xl = append(xl, x.Labels[i])
			yl = append(yl, y.Labels[j])
			i++
			j++
		}
	}
	return xl, yl
}

func hasVariance(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return true
		}
	}
	return false
}

// buildContingencyTable cross-tabulates two aligned label slices. Level
// indices follow first appearance, keeping the table deterministic.
func buildContingencyTable(xl, yl []string) ([][]int, int, int) {
	xLevels := make(map[string]int)
	yLevels := make(map[string]int)
	for _, l := range xl {
		if _, ok := xLevels[l]; !ok {
			xLevels[l] = len(xLevels)
		}
	}
	for _, l := range yl {
		if _, ok := yLevels[l]; !ok {
			yLevels[l] = len(yLevels)
		}
	}

	table := make([][]int, len(xLevels))
	for i := range table {
		table[i] = make([]int, len(yLevels))
	}
	for k := range xl {
		table[xLevels[xl[k]]][yLevels[yl[k]]]++
	}
	return table, len(xLevels), len(yLevels)
}

// computeChiSquare calculates the chi-square statistic of a contingency
// table against independence.
func computeChiSquare(table [][]int, rows, cols int) float64 {
	total := 0
	rowTotals := make([]int, rows)
	colTotals := make([]int, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rowTotals[i] += table[i][j]
			colTotals[j] += table[i][j]
			total += table[i][j]
		}
	}

	chiSq := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			expected := float64(rowTotals[i]*colTotals[j]) / float64(total)
			if expected > 0 {
				observed := float64(table[i][j])
				chiSq += (observed - expected) * (observed - expected) / expected
			}
		}
	}
	return chiSq
}
