package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"cognia/domain/profile"
)

// minNormalitySample is the smallest sample the moment-based normality
// check is meaningful for.
const minNormalitySample = 8

// DistributionAnalyzer computes per-column descriptive statistics
// appropriate to the column's inferred type.
type DistributionAnalyzer struct {
	topK int
}

// NewDistributionAnalyzer creates a distribution analyzer
func NewDistributionAnalyzer(opts profile.Options) *DistributionAnalyzer {
	return &DistributionAnalyzer{topK: opts.TopKFrequency}
}

// NumericStats computes moments and quantiles over non-missing values.
// Statistics that cannot be computed for the sample are undefined, never a
// sentinel number; a degenerate column is not an error.
func (a *DistributionAnalyzer) NumericStats(values []float64) *profile.NumericStats {
	ns := &profile.NumericStats{Count: len(values)}
	if len(values) == 0 {
		return ns
	}

	data := stats.Float64Data(values)
	ns.Mean = fromResult(stats.Mean(data))
	ns.StdDev = fromResult(stats.StandardDeviationPopulation(data))
	ns.Min = fromResult(stats.Min(data))
	ns.Max = fromResult(stats.Max(data))
	ns.Q25 = fromResult(stats.Percentile(data, 25))
	ns.Median = fromResult(stats.Median(data))
	ns.Q75 = fromResult(stats.Percentile(data, 75))

	mean, meanOK := ns.Mean.Value()
	std, stdOK := ns.StdDev.Value()
	if meanOK && stdOK && std > 0 {
		if len(values) >= 3 {
			ns.Skewness = profile.NewStat(standardizedMoment(values, mean, std, 3))
		}
		if len(values) >= 4 {
			ns.Kurtosis = profile.NewStat(standardizedMoment(values, mean, std, 4))
		}
		if len(values) >= minNormalitySample && ns.Skewness.Defined() && ns.Kurtosis.Defined() {
			ns.NormalityP = profile.NewStat(normalityPValue(ns.Skewness.Float(), ns.Kurtosis.Float()))
		}
	}

	return ns
}

// CategoricalStats builds the cardinality and frequency summary. Labels
// arrive in column order, so tie-breaking on first appearance is
// deterministic.
func (a *DistributionAnalyzer) CategoricalStats(labels []string) *profile.CategoricalStats {
	cs := &profile.CategoricalStats{
		Count:     len(labels),
		TopValues: []profile.FrequencyEntry{},
	}
	if len(labels) == 0 {
		return cs
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := make([]string, 0)
	for i, label := range labels {
		if _, ok := counts[label]; !ok {
			firstSeen[label] = i
			order = append(order, label)
		}
		counts[label]++
	}
	cs.DistinctCount = len(counts)

	// Higher count first; ties resolve to the value appearing first.
	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := counts[order[i]], counts[order[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	cs.Mode = order[0]
	cs.ModeCount = counts[order[0]]

	total := float64(len(labels))
	for i, label := range order {
		if i >= a.topK {
			cs.OtherCount += counts[label]
			continue
		}
		cs.TopValues = append(cs.TopValues, profile.FrequencyEntry{
			Value: label,
			Count: counts[label],
			Ratio: float64(counts[label]) / total,
		})
	}

	return cs
}

// fromResult converts a montanaflynn result to an optional statistic
func fromResult(v float64, err error) profile.Stat {
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return profile.UndefinedStat()
	}
	return profile.NewStat(v)
}

// standardizedMoment computes the nth standardized moment over the
// population standard deviation.
func standardizedMoment(values []float64, mean, std float64, n int) float64 {
	sum := 0.0
	for _, x := range values {
		d := (x - mean) / std
		m := d
		for i := 1; i < n; i++ {
			m *= d
		}
		sum += m
	}
	return sum / float64(len(values))
}

// normalityPValue approximates a moment-based normality test: the combined
// skewness and excess-kurtosis statistic against a chi-squared distribution
// with 2 degrees of freedom. A heuristic, not a substitute for a proper
// Shapiro-Wilk test.
func normalityPValue(skewness, kurtosis float64) float64 {
	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2
	chiDist := distuv.ChiSquared{K: 2}
	p := 1 - chiDist.CDF(testStat*testStat)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
