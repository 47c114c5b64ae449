package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

func weights(d datasets.Concentration, t *theme.Theme) []spec.Datum {
	out := make([]spec.Datum, len(d.Weights))
	for i, w := range d.Weights {
		out[i] = spec.Datum{Name: w.Name, Value: w.Value, Color: t.Tone(w.Tone)}
	}
	return out
}

// BuildMag7Concentration draws the index weight of the seven largest
// constituents as a doughnut. Legend entries carry the weight.
func BuildMag7Concentration(d datasets.Concentration, t *theme.Theme) *spec.ChartSpec {
	weight := tooltip.Percent(1)
	labels := make(map[string]string, len(d.Weights))
	for _, w := range d.Weights {
		labels[w.Name] = w.Name + "  " + weight(w.Value)
	}

	return &spec.ChartSpec{
		Kind:  spec.KindPie,
		Title: "Magnificent 7 Concentration",
		Series: []spec.Series{{
			Name:   "S&P 500 Weight",
			Kind:   spec.KindPie,
			Data:   weights(d, t),
			Radius: [2]string{"55%", "82%"},
		}},
		Legend: spec.Legend{Show: true, Position: "right", Orient: "vertical", Labels: labels},
		Tooltip: spec.Tooltip{
			Trigger:   spec.TriggerItem,
			Formatter: tooltip.Item(t, tooltip.Line{Label: "Weight", Format: weight}),
		},
	}
}
