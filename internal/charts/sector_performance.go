package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

// BuildSectorPerformance draws horizontal bars for two periods of sector
// returns. Sectors read top to bottom in dataset order.
func BuildSectorPerformance(d datasets.SectorPerformance, t *theme.Theme) *spec.ChartSpec {
	x := spec.Axis{ID: axisX, Dim: spec.X, Type: spec.Value, Position: "bottom", Label: percent, SplitLine: true}
	y := spec.Axis{ID: axisY, Dim: spec.Y, Type: spec.Category, Position: "left", Categories: append([]string(nil), d.Sectors...), Inverse: true}

	return &spec.ChartSpec{
		Kind:  spec.KindBar,
		Title: "Sector Performance",
		Series: []spec.Series{
			{Name: "2025 Full Year", Kind: spec.KindBar, Data: values(d.FullYear), Color: t.Primary(), BarWidth: "35%"},
			{Name: "2026 YTD", Kind: spec.KindBar, Data: values(d.YTD), Color: t.Accent(), BarWidth: "35%"},
		},
		Axes:   []spec.Axis{x, y},
		Legend: legend(),
		Grid:   grid("100", "30", "40", "16"),
		Tooltip: spec.Tooltip{
			Trigger:     spec.TriggerAxis,
			AxisPointer: "shadow",
			Formatter:   tooltip.Axis(t, tooltip.SignedPercent(1)),
		},
	}
}
