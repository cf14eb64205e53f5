package reporting

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"

	"cognia/domain/core"
	"cognia/domain/profile"
	"cognia/domain/report"
	"cognia/ports"
)

// Top correlated pairs table parameters, matching the report this engine
// descends from.
const (
	topPairThreshold = 0.6
	topPairLimit     = 10
)

// Assembler renders a Profile into an ordered, serializable Report. It
// performs layout and narrative templating only; plot generation is
// delegated to the attached renderer, and every section degrades to
// text/tables when none is attached.
type Assembler struct {
	renderer ports.PlotRenderer
}

// NewAssembler creates an assembler. renderer may be nil.
func NewAssembler(renderer ports.PlotRenderer) *Assembler {
	return &Assembler{renderer: renderer}
}

// Assemble builds the report. Section order is fixed; per-section table
// rows follow the table's original column order.
func (a *Assembler) Assemble(p *profile.Profile, title string) *report.Report {
	if title == "" {
		title = "Exploratory Data Analysis Report"
	}
	return &report.Report{
		ID:          core.ReportID(core.NewID()),
		Title:       title,
		GeneratedAt: core.Now(),
		Fingerprint: p.Fingerprint,
		Sections: []report.Section{
			a.overviewSection(p),
			a.missingnessSection(p),
			a.distributionsSection(p),
			a.outliersSection(p),
			a.correlationsSection(p),
			a.alertsSection(p),
		},
	}
}

func (a *Assembler) overviewSection(p *profile.Profile) report.Section {
	tbl := report.Table{
		Title:   "Column Overview",
		Columns: []string{"Column", "Type", "Count", "Missing %", "Distinct"},
	}
	for _, cp := range p.Columns {
		distinct := "N/A"
		if cp.Categorical != nil {
			distinct = strconv.Itoa(cp.Categorical.DistinctCount)
		}
		tbl.Rows = append(tbl.Rows, []string{
			cp.Name,
			cp.Type.String(),
			strconv.Itoa(cp.Count),
			formatPercent(cp.Missing.MissingRatio),
			distinct,
		})
	}
	return report.Section{
		Name:       report.SectionOverview,
		Title:      "Dataset Overview",
		Narratives: []string{overviewNarrative(p), qualityNarrative(p.Quality)},
		Tables:     []report.Table{tbl},
	}
}

func (a *Assembler) missingnessSection(p *profile.Profile) report.Section {
	tbl := report.Table{
		Title:   "Missing Value Analysis",
		Columns: []string{"Column", "Missing Count", "Missing Ratio", "Fully Missing"},
	}
	for _, cp := range p.Columns {
		tbl.Rows = append(tbl.Rows, []string{
			cp.Name,
			strconv.Itoa(cp.Missing.MissingCount),
			formatFloat(cp.Missing.MissingRatio),
			strconv.FormatBool(cp.Missing.FullyMissing),
		})
	}
	return report.Section{
		Name:       report.SectionMissingness,
		Title:      "Missing Value Analysis",
		Narratives: []string{missingnessNarrative(p.Missingness)},
		Tables:     []report.Table{tbl},
	}
}

func (a *Assembler) distributionsSection(p *profile.Profile) report.Section {
	section := report.Section{
		Name:  report.SectionDistributions,
		Title: "Statistical Summary",
	}

	numeric := report.Table{
		Title: "Numeric Columns",
		Columns: []string{"Column", "Count", "Mean", "Std Dev", "Min",
			"Q25", "Median", "Q75", "Max", "Skewness", "Kurtosis"},
	}
	categorical := report.Table{
		Title:   "Categorical Columns",
		Columns: []string{"Column", "Count", "Distinct", "Mode", "Mode Count"},
	}

	for _, cp := range p.Columns {
		if cp.Numeric != nil {
			ns := cp.Numeric
			numeric.Rows = append(numeric.Rows, []string{
				cp.Name, strconv.Itoa(ns.Count),
				ns.Mean.String(), ns.StdDev.String(), ns.Min.String(),
				ns.Q25.String(), ns.Median.String(), ns.Q75.String(),
				ns.Max.String(), ns.Skewness.String(), ns.Kurtosis.String(),
			})
			section.Narratives = append(section.Narratives, distributionNarrative(cp.Name, ns))
			a.addPlot(&section, ports.PlotHistogram, ports.PlotData{
				Column: cp.Name,
				Labels: []string{"min", "q25", "median", "q75", "max", "mean", "std_dev"},
				Values: fiveNumberSummary(ns),
			})
		}
		if cp.Categorical != nil {
			cs := cp.Categorical
			categorical.Rows = append(categorical.Rows, []string{
				cp.Name, strconv.Itoa(cs.Count), strconv.Itoa(cs.DistinctCount),
				cs.Mode, strconv.Itoa(cs.ModeCount),
			})
			section.Tables = append(section.Tables, frequencyTable(cp.Name, cs))
			labels, values := frequencyPlotData(cs)
			a.addPlot(&section, ports.PlotBarFrequency, ports.PlotData{
				Column: cp.Name,
				Labels: labels,
				Values: values,
			})
		}
	}

	// Summary tables lead, per-column frequency tables follow.
	tables := []report.Table{}
	if len(numeric.Rows) > 0 {
		tables = append(tables, numeric)
	}
	if len(categorical.Rows) > 0 {
		tables = append(tables, categorical)
	}
	section.Tables = append(tables, section.Tables...)
	return section
}

func (a *Assembler) outliersSection(p *profile.Profile) report.Section {
	tbl := report.Table{
		Title:   "Outlier Analysis (IQR rule)",
		Columns: []string{"Column", "Outliers", "Ratio", "Lower Fence", "Upper Fence"},
	}
	for _, cp := range p.Columns {
		if cp.Outliers == nil {
			continue
		}
		tbl.Rows = append(tbl.Rows, []string{
			cp.Name,
			strconv.Itoa(cp.Outliers.Count),
			formatFloat(cp.Outliers.Ratio),
			cp.Outliers.LowerFence.String(),
			cp.Outliers.UpperFence.String(),
		})
	}
	return report.Section{
		Name:   report.SectionOutliers,
		Title:  "Outlier Analysis",
		Tables: []report.Table{tbl},
	}
}

func (a *Assembler) correlationsSection(p *profile.Profile) report.Section {
	section := report.Section{
		Name:  report.SectionCorrelations,
		Title: "Correlation Analysis",
	}

	if p.NumericCorrelations.Size() >= 2 {
		section.Tables = append(section.Tables,
			matrixTable("Numeric Correlation (Pearson)", p.NumericCorrelations))
		if pairs := topPairsTable(p.NumericCorrelations); len(pairs.Rows) > 0 {
			section.Tables = append(section.Tables, pairs)
		}
		labels, matrix := heatmapData(p.NumericCorrelations)
		a.addPlot(&section, ports.PlotHeatmap, ports.PlotData{Labels: labels, Matrix: matrix})
	}
	if p.CategoricalCorrelations.Size() >= 2 {
		section.Tables = append(section.Tables,
			matrixTable("Categorical Association (Cramér's V)", p.CategoricalCorrelations))
	}
	if len(section.Tables) == 0 {
		section.Narratives = append(section.Narratives,
			"Not enough columns of a shared type family for correlation analysis.")
	}
	return section
}

func (a *Assembler) alertsSection(p *profile.Profile) report.Section {
	section := report.Section{
		Name:  report.SectionAlerts,
		Title: "Alerts & Warnings",
	}
	if len(p.Alerts) == 0 {
		section.Narratives = []string{"No major data quality issues detected."}
		return section
	}
	for _, alert := range p.Alerts {
		section.Narratives = append(section.Narratives,
			fmt.Sprintf("[%s] %s", alert.Severity, alert.Message))
	}
	return section
}

// addPlot delegates to the renderer when one is attached. Rendering
// failures degrade to a text-only section rather than failing the report.
func (a *Assembler) addPlot(section *report.Section, kind string, data ports.PlotData) {
	if a.renderer == nil {
		return
	}
	handle, err := a.renderer.RenderPlot(kind, data)
	if err != nil {
		log.Printf("[Assembler] skipping %s plot for %q: %v", kind, data.Column, err)
		return
	}
	section.Plots = append(section.Plots, handle)
}

// matrixTable renders a correlation matrix as a square table with the
// member columns on both axes.
func matrixTable(title string, m *profile.CorrelationMatrix) report.Table {
	cols := m.Columns()
	tbl := report.Table{Title: title, Columns: append([]string{""}, cols...)}
	for _, rowName := range cols {
		row := []string{rowName}
		for _, colName := range cols {
			row = append(row, m.At(rowName, colName).String())
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl
}

// topPairsTable lists the strongest absolute correlations above the
// threshold, strongest first, capped.
func topPairsTable(m *profile.CorrelationMatrix) report.Table {
	tbl := report.Table{
		Title:   "Top Correlated Pairs",
		Columns: []string{"Feature 1", "Feature 2", "Correlation"},
	}
	entries := m.Entries()
	kept := entries[:0]
	for _, e := range entries {
		if v, ok := e.Value.Value(); ok && math.Abs(v) >= topPairThreshold {
			kept = append(kept, e)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		vi, _ := kept[i].Value.Value()
		vj, _ := kept[j].Value.Value()
		return math.Abs(vi) > math.Abs(vj)
	})
	if len(kept) > topPairLimit {
		kept = kept[:topPairLimit]
	}
	for _, e := range kept {
		tbl.Rows = append(tbl.Rows, []string{e.X, e.Y, e.Value.String()})
	}
	return tbl
}

func frequencyTable(name string, cs *profile.CategoricalStats) report.Table {
	tbl := report.Table{
		Title:   fmt.Sprintf("%s – Frequency", name),
		Columns: []string{"Value", "Count", "Ratio"},
	}
	for _, entry := range cs.TopValues {
		tbl.Rows = append(tbl.Rows, []string{
			entry.Value, strconv.Itoa(entry.Count), formatFloat(entry.Ratio),
		})
	}
	if cs.OtherCount > 0 {
		tbl.Rows = append(tbl.Rows, []string{
			"(other)", strconv.Itoa(cs.OtherCount),
			formatFloat(float64(cs.OtherCount) / float64(cs.Count)),
		})
	}
	return tbl
}

func frequencyPlotData(cs *profile.CategoricalStats) ([]string, []float64) {
	labels := make([]string, len(cs.TopValues))
	values := make([]float64, len(cs.TopValues))
	for i, entry := range cs.TopValues {
		labels[i] = entry.Value
		values[i] = float64(entry.Count)
	}
	return labels, values
}

// fiveNumberSummary packages the precomputed distribution markers a
// renderer needs for a summary plot; the engine never hands over raw rows.
func fiveNumberSummary(ns *profile.NumericStats) []float64 {
	pick := func(s profile.Stat) float64 {
		if v, ok := s.Value(); ok {
			return v
		}
		return math.NaN()
	}
	return []float64{
		pick(ns.Min), pick(ns.Q25), pick(ns.Median),
		pick(ns.Q75), pick(ns.Max), pick(ns.Mean), pick(ns.StdDev),
	}
}

func heatmapData(m *profile.CorrelationMatrix) ([]string, [][]float64) {
	cols := m.Columns()
	matrix := make([][]float64, len(cols))
	for i, rowName := range cols {
		matrix[i] = make([]float64, len(cols))
		for j, colName := range cols {
			if v, ok := m.At(rowName, colName).Value(); ok {
				matrix[i][j] = v
			} else {
				matrix[i][j] = math.NaN()
			}
		}
	}
	return cols, matrix
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
