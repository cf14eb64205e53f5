package ports

import (
	"cognia/domain/report"
)

// Plot kinds passed to a renderer
const (
	PlotHistogram    = "histogram"
	PlotBarFrequency = "bar-frequency"
	PlotHeatmap      = "heatmap"
)

// PlotData carries the precomputed values a renderer needs. The engine
// never plots; it hands over statistics and receives an opaque handle.
type PlotData struct {
	Column string    `json:"column,omitempty"`
	Labels []string  `json:"labels,omitempty"` // bar-frequency, heatmap axes
	Values []float64 `json:"values,omitempty"` // histogram samples, bar counts
	Matrix [][]float64 `json:"matrix,omitempty"` // heatmap cells, NaN for undefined
}

// PlotRenderer turns precomputed statistics into a plot and returns a
// handle to the rendered artifact. The report assembler functions without
// one attached.
type PlotRenderer interface {
	RenderPlot(kind string, data PlotData) (report.PlotHandle, error)
}
