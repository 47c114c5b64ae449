package charts

import (
	"strings"

	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
	"marketdash/internal/tooltip"
)

// BuildSentimentRadar overlays the current sentiment reading on the profile
// of an extreme-bullish market.
func BuildSentimentRadar(d datasets.Sentiment, t *theme.Theme) *spec.ChartSpec {
	indicators := make([]spec.Indicator, len(d.Indicators))
	names := make([]string, len(d.Indicators))
	for i, ind := range d.Indicators {
		indicators[i] = spec.Indicator{Name: ind.Name, Max: ind.Max}
		names[i] = strings.ReplaceAll(ind.Name, "\n", " ")
	}

	polygon := func(name string, v []float64) []spec.Datum {
		return []spec.Datum{{Name: name, Coords: append([]float64(nil), v...)}}
	}

	return &spec.ChartSpec{
		Kind:  spec.KindRadar,
		Title: "Sentiment Indicators",
		Series: []spec.Series{
			{
				Name:       "Current Reading",
				Kind:       spec.KindRadar,
				Data:       polygon("Current Reading", d.Current),
				Color:      t.Primary(),
				AreaFrom:   theme.Alpha(t.Primary(), 0.15),
				Symbol:     "circle",
				SymbolSize: 6,
				LineWidth:  2,
			},
			{
				Name:      "Extreme Bullish (Danger)",
				Kind:      spec.KindRadar,
				Data:      polygon("Extreme Bullish (Danger)", d.Extreme),
				Color:     t.Negative(),
				AreaFrom:  theme.Alpha(t.Negative(), 0.06),
				Dashed:    true,
				Symbol:    "none",
				LineWidth: 1.5,
			},
		},
		Radar:   &spec.Radar{Indicators: indicators, Shape: "polygon", Radius: "70%"},
		Legend:  legend(),
		Tooltip: spec.Tooltip{Trigger: spec.TriggerItem, Formatter: tooltip.Vector(t, names, tooltip.Raw())},
	}
}
