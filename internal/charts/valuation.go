package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

// BuildValuation compares Shiller CAPE and forward P/E at past peaks.
func BuildValuation(d datasets.Valuation, t *theme.Theme) *spec.ChartSpec {
	y := valueY(spec.LabelFormat{Suffix: "x"})
	y.Min = spec.Float(0)

	return &spec.ChartSpec{
		Kind:  spec.KindBar,
		Title: "Valuation vs Historical Peaks",
		Series: []spec.Series{
			{Name: "Shiller CAPE Ratio", Kind: spec.KindBar, Data: values(d.CAPE), Color: t.Primary(), BarWidth: "30%"},
			{Name: "Forward P/E", Kind: spec.KindBar, Data: values(d.ForwardPE), Color: t.Accent(), BarWidth: "30%"},
		},
		Axes:   []spec.Axis{categoryX(d.Peaks), y},
		Legend: legend(),
		Grid:   grid("50", "16", "40", "40"),
		Tooltip: spec.Tooltip{
			Trigger:     spec.TriggerAxis,
			AxisPointer: "shadow",
			Formatter:   tooltip.Axis(t, tooltip.Multiple(1)),
		},
	}
}
