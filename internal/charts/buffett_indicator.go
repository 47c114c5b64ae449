package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

// BuildBuffettIndicator plots market cap to GDP against its long-run
// average, drawn as a dashed flat line.
func BuildBuffettIndicator(d datasets.BuffettIndicator, t *theme.Theme) *spec.ChartSpec {
	ratio := spec.Series{
		Name:       "Market Cap / GDP",
		Kind:       spec.KindLine,
		Data:       values(d.Values),
		Color:      t.Primary(),
		Smooth:     true,
		Symbol:     "circle",
		SymbolSize: 5,
		LineWidth:  2.5,
	}
	area(&ratio, t.Primary())

	baseline := make([]float64, len(d.Labels))
	for i := range baseline {
		baseline[i] = d.Baseline
	}

	return &spec.ChartSpec{
		Kind:  spec.KindLine,
		Title: "Buffett Indicator",
		Series: []spec.Series{
			ratio,
			{
				Name:      "Historical Average (" + tooltip.Raw()(d.Baseline) + "%)",
				Kind:      spec.KindLine,
				Data:      values(baseline),
				Color:     t.Palette.Orange,
				Dashed:    true,
				Symbol:    "none",
				LineWidth: 1.5,
			},
		},
		Axes:    []spec.Axis{categoryX(d.Labels), valueY(percent)},
		Legend:  legend(),
		Grid:    grid("50", "16", "40", "40"),
		Tooltip: spec.Tooltip{Trigger: spec.TriggerAxis, Formatter: tooltip.Axis(t, tooltip.RawPercent())},
	}
}
