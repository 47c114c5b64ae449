package charts

import (
	"strings"

	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
)

// RiskBands classifies a 0-100 composite risk score.
func RiskBands(t *theme.Theme) []spec.Band {
	return []spec.Band{
		{Upper: 25, Label: "Low", Color: t.Positive()},
		{Upper: 50, Label: "Moderate", Color: t.Palette.Yellow},
		{Upper: 75, Label: "Elevated", Color: t.Palette.Orange},
		{Upper: 100, Label: "High", Color: t.Negative()},
	}
}

// BuildRiskGauge shows the composite risk score on a banded dial with the
// band name as caption.
func BuildRiskGauge(d datasets.RiskScore, t *theme.Theme) *spec.ChartSpec {
	g := &spec.Gauge{
		Name:  d.Name,
		Value: d.Value,
		Min:   0,
		Max:   100,
		Bands: RiskBands(t),
		Unit:  "%",
		Ticks: map[float64]string{0: "Low", 25: "Moderate", 50: "Elevated", 75: "High", 100: "Extreme"},
	}
	g.Detail = strings.ToUpper(g.Level()) + " RISK"

	return &spec.ChartSpec{
		Kind:    spec.KindGauge,
		Title:   "Composite Risk Score",
		Gauge:   g,
		Tooltip: spec.Tooltip{Trigger: spec.TriggerNone},
	}
}
