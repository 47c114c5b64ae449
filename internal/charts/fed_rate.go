package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

const (
	rateSeries  = "Fed Funds Rate"
	indexSeries = "S&P 500"
)

// BuildFedRate plots the policy rate and the index on separate y axes.
// Each axis is named in its series colour and only accepts that series.
func BuildFedRate(d datasets.FedRate, t *theme.Theme) *spec.ChartSpec {
	line := func(name, axis, color string, data []float64) spec.Series {
		return spec.Series{
			Name:       name,
			Kind:       spec.KindLine,
			Data:       values(data),
			YAxis:      axis,
			Color:      color,
			Smooth:     true,
			Symbol:     "circle",
			SymbolSize: 5,
			LineWidth:  2.5,
		}
	}

	x := categoryX(d.Labels)
	x.LabelRotate = 30

	return &spec.ChartSpec{
		Kind:  spec.KindLine,
		Title: "Fed Funds Rate vs S&P 500",
		Series: []spec.Series{
			line(rateSeries, "rate", t.Palette.Orange, d.Rate),
			line(indexSeries, "index", t.Primary(), d.SP500),
		},
		Axes: []spec.Axis{
			x,
			{
				ID: "rate", Dim: spec.Y, Type: spec.Value, Position: "left",
				Name: rateSeries, NameColor: t.Palette.Orange, Label: percent, SplitLine: true, For: rateSeries,
			},
			{
				ID: "index", Dim: spec.Y, Type: spec.Value, Position: "right",
				Name: indexSeries, NameColor: t.Primary(), Label: thousands, For: indexSeries,
			},
		},
		Legend: legend(),
		Grid:   grid("55", "60", "45", "40"),
		Tooltip: spec.Tooltip{
			Trigger: spec.TriggerAxis,
			Formatter: tooltip.Dual(t,
				tooltip.Line{Series: rateSeries, Label: "Fed Rate", Format: tooltip.RawPercent()},
				tooltip.Line{Series: indexSeries, Label: indexSeries, Format: tooltip.Thousands(0)},
			),
		},
	}
}
