package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

// BuildSP500History plots twenty years of year-end index levels.
func BuildSP500History(d datasets.SP500History, t *theme.Theme) *spec.ChartSpec {
	s := spec.Series{
		Name:      "S&P 500",
		Kind:      spec.KindLine,
		Data:      values(d.Values),
		Color:     t.Primary(),
		Smooth:    true,
		Symbol:    "none",
		LineWidth: 2.5,
	}
	area(&s, t.Primary())

	return &spec.ChartSpec{
		Kind:   spec.KindLine,
		Title:  "S&P 500 Historical Performance",
		Series: []spec.Series{s},
		Axes:   []spec.Axis{categoryX(d.Labels), valueY(thousands)},
		Grid:   grid("60", "20", "20", "40"),
		Tooltip: spec.Tooltip{
			Trigger:   spec.TriggerAxis,
			Formatter: tooltip.Single(t, tooltip.Line{Series: s.Name, Format: tooltip.Thousands(0)}),
		},
	}
}
