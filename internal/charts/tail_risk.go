package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

// bubbleScale converts a severity score into a symbol diameter in pixels.
const bubbleScale = 2.5

// BuildTailRisk places each tail event by probability and drawdown, sized
// by severity. Every event is its own series so the legend can toggle it.
func BuildTailRisk(d datasets.TailRisks, t *theme.Theme) *spec.ChartSpec {
	series := make([]spec.Series, len(d.Risks))
	for i, r := range d.Risks {
		border := t.Tone(r.Tone)
		series[i] = spec.Series{
			Name:       r.Name,
			Kind:       spec.KindScatter,
			Data:       []spec.Datum{{Name: r.Name, Coords: []float64{r.Probability, r.Impact}, Size: r.Severity * bubbleScale}},
			Color:      theme.Alpha(border, r.Opacity),
			Border:     border,
			Symbol:     "circle",
			SymbolSize: r.Severity * bubbleScale,
		}
	}

	return &spec.ChartSpec{
		Kind:   spec.KindScatter,
		Title:  "Tail Risk Probability vs Impact",
		Series: series,
		Axes: []spec.Axis{
			{
				ID: axisX, Dim: spec.X, Type: spec.Value, Position: "bottom", Name: "12-Month Probability (%)",
				Min: spec.Float(0), Max: spec.Float(d.MaxProbability), Label: percent, SplitLine: true,
			},
			{
				ID: axisY, Dim: spec.Y, Type: spec.Value, Position: "left", Name: "Potential S&P 500 Drawdown (%)",
				Min: spec.Float(0), Max: spec.Float(d.MaxImpact), Label: spec.LabelFormat{Suffix: "%", Negate: true}, SplitLine: true,
			},
		},
		Legend: spec.Legend{Show: true, Position: "bottom"},
		Grid:   grid("65", "30", "20", "80"),
		Tooltip: spec.Tooltip{
			Trigger: spec.TriggerItem,
			Formatter: tooltip.Bubble(t,
				tooltip.Line{Label: "Probability", Format: tooltip.RawPercent()},
				tooltip.Line{Label: "S&P 500 Impact", Format: tooltip.Drawdown()}),
		},
	}
}
