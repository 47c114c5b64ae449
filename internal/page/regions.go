package page

import "marketdash/internal/charts"

// SectionTitles maps catalog sections to their headings.
var SectionTitles = map[string]string{
	charts.SectionMarket:    "Market Overview",
	charts.SectionValuation: "Valuation",
	charts.SectionSectors:   "Sector Rotation",
	charts.SectionSentiment: "Sentiment",
	charts.SectionMacro:     "Macro & Earnings",
	charts.SectionRisk:      "Risk Monitor",
}

var wide = map[string]bool{
	"sp500HistoricalChart": true,
	"sectorHeatmapChart":   true,
	"tailRiskChart":        true,
}

var heights = map[string]int{
	"sectorHeatmapChart": 440,
	"tailRiskChart":      420,
	"riskGaugeChart":     300,
	"sentimentRadar":     380,
}

var notes = map[string]string{
	"sp500HistoricalChart": "Year-end index closes since **2006**.",
	"annualReturnsChart":   "Calendar-year total returns; 2008 (**-37.0%**) remains the worst year in the window.",
	"valuationChart":       "Current multiples against prior cycle peaks.",
	"sectorChart":          "Full-year and year-to-date returns by GICS sector.",
	"mag7Chart":            "Index weight of the seven largest constituents.",
	"buffettChart":         "Total market cap to GDP against its long-run average of *100%*.",
	"sentimentRadar":       "Current readings against the extreme-greed profile.",
	"earningsChart":        "Operating EPS with year-over-year growth. Faded bars are estimates.",
	"fedRateChart":         "Fed funds target rate plotted against the index level.",
	"scenarioChart":        "Year-end targets for the bear, base and bull cases.",
	"capeReturnsChart":     "Starting CAPE against the annualised return of the following decade.",
	"geopoliticalChart":    "Economic policy uncertainty and geopolitical risk indices.",
	"tailRiskChart":        "Probability against estimated drawdown; bubble size is severity.",
	"riskGaugeChart":       "Composite of valuation, sentiment, macro and geopolitical inputs.",
	"mag7TreemapChart":     "Market cap share of the largest names against the rest of the index.",
	"sectorHeatmapChart":   "Monthly sector returns. The colour scale is symmetric around zero.",
}

// DefaultRegions returns one region per catalog entry, in paint order,
// leaving out sections for which skip reports true.
func DefaultRegions(skip func(section string) bool) []Region {
	var out []Region
	for _, d := range charts.Catalog() {
		if skip != nil && skip(d.Section) {
			continue
		}
		r := Region{
			ID:      d.Target,
			Section: d.Section,
			Title:   d.Title,
			Note:    notes[d.Target],
			Span:    1,
			Height:  heights[d.Target],
		}
		if wide[d.Target] {
			r.Span = 2
		}
		out = append(out, r)
	}
	return out
}
