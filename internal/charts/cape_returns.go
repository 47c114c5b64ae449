package charts

import (
	"fmt"

	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

const currentSeries = "Current Position"

// BuildCapeReturns scatters starting CAPE against the following decade's
// return and marks where the market stands today.
func BuildCapeReturns(d datasets.CapeReturns, t *theme.Theme) *spec.ChartSpec {
	history := make([]spec.Datum, len(d.Points))
	for i, p := range d.Points {
		history[i] = spec.Datum{Coords: []float64{p[0], p[1]}}
	}

	cape := tooltip.Fixed(1)(d.Current[0])
	current := fmt.Sprintf(`<span style="color:%s;font-weight:600;">Current CAPE: %sx</span><br/>`+
		`Implied forward return: <span style="color:%s;font-weight:600;">~0%%</span>`,
		t.Negative(), cape, t.Palette.White)

	return &spec.ChartSpec{
		Kind:  spec.KindScatter,
		Title: "CAPE vs 10-Year Forward Returns",
		Series: []spec.Series{
			{
				Name:       "CAPE vs 10yr Forward Return",
				Kind:       spec.KindScatter,
				Data:       history,
				Color:      t.Primary(),
				Symbol:     "circle",
				SymbolSize: 10,
			},
			{
				Name:       currentSeries,
				Kind:       spec.KindScatter,
				Data:       []spec.Datum{{Coords: []float64{d.Current[0], d.Current[1]}}},
				Color:      t.Negative(),
				Symbol:     "diamond",
				SymbolSize: 18,
				MarkLines: []spec.MarkLine{{
					Dim:    spec.X,
					Value:  d.Current[0],
					Label:  "Current CAPE: " + cape,
					Color:  t.Negative(),
					Dashed: true,
				}},
			},
		},
		Axes: []spec.Axis{
			{ID: axisX, Dim: spec.X, Type: spec.Value, Position: "bottom", Name: "Shiller CAPE Ratio", SplitLine: true},
			{ID: axisY, Dim: spec.Y, Type: spec.Value, Position: "left", Name: "10-Year Annualized Return", Label: percent, SplitLine: true},
		},
		Legend: legend(),
		Grid:   grid("60", "30", "45", "50"),
		Tooltip: spec.Tooltip{
			Trigger: spec.TriggerItem,
			Formatter: tooltip.PerSeries(
				tooltip.Scatter(t,
					tooltip.Line{Label: "CAPE", Format: tooltip.Multiple(1)},
					tooltip.Line{Label: "10yr Fwd Return", Format: tooltip.Percent(1)}),
				map[string]tooltip.Formatter{currentSeries: tooltip.Static(current)},
			),
		},
	}
}
