package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

// heatRamp runs from the negative colour through a near-transparent zero to
// the positive colour.
func heatRamp(t *theme.Theme) []string {
	return []string{
		t.Negative(), "#cc372e", "#7a2119", "#3a1510",
		t.GridLine,
		"#0f2a14", "#1a5428", "#24993c", t.Positive(),
	}
}

// BuildSectorHeatmap grids monthly sector returns. The colour scale is
// symmetric around zero so equal gains and losses get equal intensity.
func BuildSectorHeatmap(d datasets.SectorHeatmap, t *theme.Theme) *spec.ChartSpec {
	var cells []spec.Datum
	for m, row := range d.Returns {
		for s, v := range row {
			cells = append(cells, spec.Datum{Coords: []float64{float64(m), float64(s), v}})
		}
	}

	signedLabel := spec.LabelFormat{Signed: true, Decimals: 1}
	absMax := d.AbsMax()

	x := categoryX(d.Months)
	x.Position = "top"
	y := spec.Axis{ID: axisY, Dim: spec.Y, Type: spec.Category, Position: "left", Categories: append([]string(nil), d.Sectors...), Inverse: true}

	return &spec.ChartSpec{
		Kind:  spec.KindHeatmap,
		Title: "Sector Monthly Performance",
		Series: []spec.Series{{
			Name:   "Sector Returns",
			Kind:   spec.KindHeatmap,
			Data:   cells,
			Labels: spec.Labels{Show: true, Format: signedLabel, Color: t.Palette.Label},
		}},
		Axes: []spec.Axis{x, y},
		VisualMap: &spec.VisualMap{
			Min:    -absMax,
			Max:    absMax,
			Colors: heatRamp(t),
			Show:   true,
			Label:  spec.LabelFormat{Signed: true, Decimals: 1, Suffix: "%"},
		},
		Grid: grid("100", "30", "30", "50"),
		Tooltip: spec.Tooltip{
			Trigger:   spec.TriggerItem,
			Formatter: tooltip.Cell(t, d.Months, d.Sectors, tooltip.SignedPercent(1)),
		},
	}
}
