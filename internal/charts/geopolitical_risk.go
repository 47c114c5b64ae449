package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

// BuildGeopoliticalRisk plots the policy uncertainty and geopolitical risk
// indices month by month.
func BuildGeopoliticalRisk(d datasets.Geopolitical, t *theme.Theme) *spec.ChartSpec {
	epu := spec.Series{
		Name:       "Economic Policy Uncertainty Index",
		Kind:       spec.KindLine,
		Data:       values(d.EPU),
		Color:      t.Negative(),
		Smooth:     true,
		Symbol:     "circle",
		SymbolSize: 5,
		LineWidth:  2.5,
	}
	area(&epu, t.Negative())

	gpr := spec.Series{
		Name:       "Geopolitical Risk Index",
		Kind:       spec.KindLine,
		Data:       values(d.GPR),
		Color:      t.Palette.Orange,
		Smooth:     true,
		Symbol:     "circle",
		SymbolSize: 5,
		LineWidth:  2,
	}

	return &spec.ChartSpec{
		Kind:    spec.KindLine,
		Title:   "Geopolitical Risk Timeline",
		Series:  []spec.Series{epu, gpr},
		Axes:    []spec.Axis{categoryX(d.Labels), valueY(spec.LabelFormat{})},
		Legend:  legend(),
		Grid:    grid("50", "16", "40", "40"),
		Tooltip: spec.Tooltip{Trigger: spec.TriggerAxis, Formatter: tooltip.Axis(t, tooltip.Raw())},
	}
}
