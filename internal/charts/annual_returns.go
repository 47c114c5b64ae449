package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

// BuildAnnualReturns draws one bar per calendar year, green for gains and
// red for losses.
func BuildAnnualReturns(d datasets.AnnualReturns, t *theme.Theme) *spec.ChartSpec {
	x := categoryX(d.Labels)
	x.LabelRotate = 45

	return &spec.ChartSpec{
		Kind:  spec.KindBar,
		Title: "S&P 500 Annual Returns",
		Series: []spec.Series{{
			Name:     "Annual Return",
			Kind:     spec.KindBar,
			Data:     signed(d.Values, t),
			BarWidth: "60%",
		}},
		Axes: []spec.Axis{x, valueY(percent)},
		Grid: grid("50", "16", "16", "40"),
		Tooltip: spec.Tooltip{
			Trigger:     spec.TriggerAxis,
			AxisPointer: "shadow",
			Formatter: tooltip.Single(t, tooltip.Line{
				Series: "Annual Return",
				Label:  "Return",
				Format: tooltip.SignedPercent(1),
				BySign: true,
			}),
		},
	}
}
