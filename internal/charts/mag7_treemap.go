package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

// BuildMag7Treemap draws the same weights as the doughnut as tiles sized
// by weight.
func BuildMag7Treemap(d datasets.Concentration, t *theme.Theme) *spec.ChartSpec {
	return &spec.ChartSpec{
		Kind:  spec.KindTreemap,
		Title: "Magnificent 7 Market Cap Treemap",
		Series: []spec.Series{{
			Name:   "S&P 500 Weight",
			Kind:   spec.KindTreemap,
			Data:   weights(d, t),
			Labels: spec.Labels{Show: true, Format: percent, Color: t.Palette.White},
		}},
		Tooltip: spec.Tooltip{
			Trigger:   spec.TriggerItem,
			Formatter: tooltip.Item(t, tooltip.Line{Label: "S&P 500 Weight", Format: tooltip.Percent(1)}),
		},
	}
}
