package render

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"cognia/domain/report"
	"cognia/ports"
)

// InlineDataRenderer implements the plot renderer port without a graphics
// backend: it packages the precomputed plot data into a data URI so a
// downstream viewer (or a browser-side charting script) can draw it. Useful
// as the default renderer and as a test double.
type InlineDataRenderer struct{}

// NewInlineDataRenderer creates an inline data renderer
func NewInlineDataRenderer() *InlineDataRenderer {
	return &InlineDataRenderer{}
}

// RenderPlot encodes the plot data as an application/json data URI handle
func (r *InlineDataRenderer) RenderPlot(kind string, data ports.PlotData) (report.PlotHandle, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return report.PlotHandle{}, fmt.Errorf("failed to encode %s plot data: %w", kind, err)
	}
	return report.PlotHandle{
		Kind:   kind,
		Column: data.Column,
		Ref:    "data:application/json;base64," + base64.StdEncoding.EncodeToString(payload),
	}, nil
}
