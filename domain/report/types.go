package report

import (
	"encoding/json"

	"cognia/domain/core"
)

// SectionName identifies a report section. Section order is fixed.
type SectionName string

const (
	SectionOverview      SectionName = "overview"
	SectionMissingness   SectionName = "missingness"
	SectionDistributions SectionName = "distributions"
	SectionOutliers      SectionName = "outliers"
	SectionCorrelations  SectionName = "correlations"
	SectionAlerts        SectionName = "alerts"
)

// SectionOrder is the canonical ordering of report sections
var SectionOrder = []SectionName{
	SectionOverview,
	SectionMissingness,
	SectionDistributions,
	SectionOutliers,
	SectionCorrelations,
	SectionAlerts,
}

// Table is a rendered statistics table: a header row and string cells.
// Undefined statistics appear as "N/A", never omitted.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// PlotHandle references an externally rendered plot. The engine only
// forwards precomputed data to a renderer; the handle is whatever the
// renderer returned (a path, a URL, inline image data).
type PlotHandle struct {
	Kind   string `json:"kind"` // "histogram", "bar-frequency", "heatmap"
	Column string `json:"column,omitempty"`
	Ref    string `json:"ref"`
}

// Section is one ordered block of the report
type Section struct {
	Name       SectionName  `json:"name"`
	Title      string       `json:"title"`
	Narratives []string     `json:"narratives,omitempty"`
	Tables     []Table      `json:"tables,omitempty"`
	Plots      []PlotHandle `json:"plots,omitempty"`
}

// Report is the rendered, section-structured presentation of a Profile.
// Immutable once assembled.
type Report struct {
	ID          core.ReportID    `json:"id"`
	Title       string           `json:"title"`
	GeneratedAt core.Timestamp   `json:"generated_at"`
	Fingerprint core.Fingerprint `json:"fingerprint"`
	Sections    []Section        `json:"sections"`
}

// Section finds a section by name
func (r *Report) Section(name SectionName) (Section, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// ToMap converts the report into a nested key-value representation suitable
// for serialization to any interchange format.
func (r *Report) ToMap() map[string]interface{} {
	sections := make([]map[string]interface{}, len(r.Sections))
	for i, s := range r.Sections {
		tables := make([]map[string]interface{}, len(s.Tables))
		for j, t := range s.Tables {
			tables[j] = map[string]interface{}{
				"title":   t.Title,
				"columns": t.Columns,
				"rows":    t.Rows,
			}
		}
		plots := make([]map[string]interface{}, len(s.Plots))
		for j, p := range s.Plots {
			plots[j] = map[string]interface{}{
				"kind":   p.Kind,
				"column": p.Column,
				"ref":    p.Ref,
			}
		}
		sections[i] = map[string]interface{}{
			"name":       string(s.Name),
			"title":      s.Title,
			"narratives": s.Narratives,
			"tables":     tables,
			"plots":      plots,
		}
	}
	return map[string]interface{}{
		"id":           r.ID.String(),
		"title":        r.Title,
		"generated_at": r.GeneratedAt.String(),
		"fingerprint":  r.Fingerprint.String(),
		"sections":     sections,
	}
}

// JSON serializes the report
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
