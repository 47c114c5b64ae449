// Package charts turns the fixed datasets into chart specs. Every builder
// is a pure function of its dataset and the theme.
package charts

import (
	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
)

// Page sections a chart can belong to.
const (
	SectionMarket    = "market"
	SectionValuation = "valuation"
	SectionSectors   = "sectors"
	SectionSentiment = "sentiment"
	SectionMacro     = "macro"
	SectionRisk      = "risk"
)

// Definition binds a builder to the mount target it is painted into.
type Definition struct {
	Target  string
	Title   string
	Section string
	Build   func(t *theme.Theme) *spec.ChartSpec
}

// Catalog returns every chart in paint order.
func Catalog() []Definition {
	return []Definition{
		{"sp500HistoricalChart", "S&P 500 Historical Performance", SectionMarket,
			func(t *theme.Theme) *spec.ChartSpec { return BuildSP500History(datasets.SP500(), t) }},
		{"annualReturnsChart", "S&P 500 Annual Returns", SectionMarket,
			func(t *theme.Theme) *spec.ChartSpec { return BuildAnnualReturns(datasets.Returns(), t) }},
		{"valuationChart", "Valuation vs Historical Peaks", SectionValuation,
			func(t *theme.Theme) *spec.ChartSpec { return BuildValuation(datasets.Valuations(), t) }},
		{"sectorChart", "Sector Performance", SectionSectors,
			func(t *theme.Theme) *spec.ChartSpec { return BuildSectorPerformance(datasets.Sectors(), t) }},
		{"mag7Chart", "Magnificent 7 Concentration", SectionMarket,
			func(t *theme.Theme) *spec.ChartSpec { return BuildMag7Concentration(datasets.Mag7(), t) }},
		{"buffettChart", "Buffett Indicator", SectionValuation,
			func(t *theme.Theme) *spec.ChartSpec { return BuildBuffettIndicator(datasets.Buffett(), t) }},
		{"sentimentRadar", "Sentiment Indicators", SectionSentiment,
			func(t *theme.Theme) *spec.ChartSpec { return BuildSentimentRadar(datasets.SentimentReadings(), t) }},
		{"earningsChart", "Earnings Growth Projection", SectionMacro,
			func(t *theme.Theme) *spec.ChartSpec { return BuildEarnings(datasets.EarningsOutlook(), t) }},
		{"fedRateChart", "Fed Funds Rate vs S&P 500", SectionMacro,
			func(t *theme.Theme) *spec.ChartSpec { return BuildFedRate(datasets.Rates(), t) }},
		{"scenarioChart", "Bull vs Bear Scenarios", SectionMacro,
			func(t *theme.Theme) *spec.ChartSpec { return BuildScenarios(datasets.Outlooks(), t) }},
		{"capeReturnsChart", "CAPE vs 10-Year Forward Returns", SectionValuation,
			func(t *theme.Theme) *spec.ChartSpec { return BuildCapeReturns(datasets.Cape(), t) }},
		{"geopoliticalChart", "Geopolitical Risk Timeline", SectionRisk,
			func(t *theme.Theme) *spec.ChartSpec { return BuildGeopoliticalRisk(datasets.Uncertainty(), t) }},
		{"tailRiskChart", "Tail Risk Probability vs Impact", SectionRisk,
			func(t *theme.Theme) *spec.ChartSpec { return BuildTailRisk(datasets.Tails(), t) }},
		{"riskGaugeChart", "Composite Risk Score", SectionRisk,
			func(t *theme.Theme) *spec.ChartSpec { return BuildRiskGauge(datasets.CompositeRisk(), t) }},
		{"mag7TreemapChart", "Magnificent 7 Market Cap Treemap", SectionMarket,
			func(t *theme.Theme) *spec.ChartSpec { return BuildMag7Treemap(datasets.Mag7Treemap(), t) }},
		{"sectorHeatmapChart", "Sector Monthly Performance", SectionSectors,
			func(t *theme.Theme) *spec.ChartSpec { return BuildSectorHeatmap(datasets.MonthlySectors(), t) }},
	}
}

// Lookup returns the catalog entry painted into target.
func Lookup(target string) (Definition, bool) {
	for _, d := range Catalog() {
		if d.Target == target {
			return d, true
		}
	}
	return Definition{}, false
}

// Sections returns the distinct sections in first-appearance order.
func Sections() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range Catalog() {
		if !seen[d.Section] {
			seen[d.Section] = true
			out = append(out, d.Section)
		}
	}
	return out
}
