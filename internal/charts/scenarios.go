package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

// BuildScenarios draws the year-end target of each outlook as a labelled
// bar in the outlook's colour.
func BuildScenarios(d datasets.Scenarios, t *theme.Theme) *spec.ChartSpec {
	names := make([]string, len(d.Cases))
	data := make([]spec.Datum, len(d.Cases))
	for i, c := range d.Cases {
		names[i] = c.Name
		data[i] = spec.Datum{Name: c.Name, Value: c.Target, Color: t.Tone(c.Tone)}
	}

	y := valueY(thousands)
	y.Min = spec.Float(d.Floor)

	const name = "S&P 500 Year-End Target"
	return &spec.ChartSpec{
		Kind:  spec.KindBar,
		Title: "Bull vs Bear Scenarios",
		Series: []spec.Series{{
			Name:     name,
			Kind:     spec.KindBar,
			Data:     data,
			BarWidth: "45%",
			Labels:   spec.Labels{Show: true, Position: "top", Format: thousands, Color: t.Palette.White},
		}},
		Axes: []spec.Axis{categoryX(names), y},
		Grid: grid("60", "20", "20", "40"),
		Tooltip: spec.Tooltip{
			Trigger:     spec.TriggerAxis,
			AxisPointer: "shadow",
			Formatter:   tooltip.Single(t, tooltip.Line{Series: name, Label: "Target", Format: tooltip.Thousands(0)}),
		},
	}
}
