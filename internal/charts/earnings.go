package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

const (
	epsSeries    = "EPS ($)"
	growthSeries = "YoY Growth %"
)

// BuildEarnings draws quarterly EPS as bars on the left axis and growth as
// a line on the right axis. Estimated quarters are faded.
func BuildEarnings(d datasets.Earnings, t *theme.Theme) *spec.ChartSpec {
	eps := values(d.EPS)
	for i := range eps {
		eps[i].Color = t.Primary()
		if i >= d.FirstEstimate {
			eps[i].Color = theme.Alpha(t.Primary(), 0.5)
		}
	}

	x := categoryX(d.Quarters)
	x.LabelRotate = 30

	return &spec.ChartSpec{
		Kind:  spec.KindBar,
		Title: "Earnings Growth Projection",
		Series: []spec.Series{
			{Name: epsSeries, Kind: spec.KindBar, Data: eps, YAxis: "eps", Color: t.Primary(), BarWidth: "50%"},
			{
				Name:       growthSeries,
				Kind:       spec.KindLine,
				Data:       values(d.YoYGrowth),
				YAxis:      "growth",
				Color:      t.Positive(),
				Smooth:     true,
				Symbol:     "circle",
				SymbolSize: 7,
				LineWidth:  2,
			},
		},
		Axes: []spec.Axis{
			x,
			{ID: "eps", Dim: spec.Y, Type: spec.Value, Position: "left", Label: spec.LabelFormat{Prefix: "$"}, SplitLine: true, For: epsSeries},
			{ID: "growth", Dim: spec.Y, Type: spec.Value, Position: "right", Label: percent, For: growthSeries},
		},
		Legend: legend(),
		Grid:   grid("55", "55", "40", "40"),
		Tooltip: spec.Tooltip{
			Trigger:     spec.TriggerAxis,
			AxisPointer: "shadow",
			Formatter: tooltip.Dual(t,
				tooltip.Line{Series: epsSeries, Label: "EPS", Format: tooltip.Currency(1)},
				tooltip.Line{Series: growthSeries, Label: "YoY Growth", Format: tooltip.Percent(1)},
			),
		},
	}
}
