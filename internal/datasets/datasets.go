// Package datasets holds the fixed figures the dashboard plots. Values are
// compiled in; nothing here is fetched at runtime.
package datasets

// Labeled is a category series: Labels[i] is the category of Values[i].
type Labeled struct {
	Labels []string
	Values []float64
}

// SP500History is the index level at each year end.
type SP500History struct {
	Labeled
}

// AnnualReturns are calendar-year total returns in percent.
type AnnualReturns struct {
	Labeled
}

// Valuation compares CAPE and forward P/E at historical peaks.
type Valuation struct {
	Peaks     []string
	CAPE      []float64
	ForwardPE []float64
}

// SectorPerformance compares two periods of sector returns in percent.
type SectorPerformance struct {
	Sectors  []string
	FullYear []float64
	YTD      []float64
}

// Weight is one constituent's share of the index, in percent. Tone names
// the palette colour it is drawn in; the remainder has none.
type Weight struct {
	Name  string
	Value float64
	Tone  string
}

// Concentration is the index weight of the largest constituents plus the
// remainder.
type Concentration struct {
	Weights []Weight
}

// Total sums every weight.
func (c Concentration) Total() float64 {
	var sum float64
	for _, w := range c.Weights {
		sum += w.Value
	}
	return sum
}

// BuffettIndicator is total market cap over GDP in percent.
type BuffettIndicator struct {
	Labeled
	Baseline float64
}

// RadarIndicator is one spoke of the sentiment radar.
type RadarIndicator struct {
	Name string
	Max  float64
}

// Sentiment holds two readings across the same indicators.
type Sentiment struct {
	Indicators []RadarIndicator
	Current    []float64
	Extreme    []float64
}

// Earnings are quarterly EPS with year-over-year growth. Quarters from
// FirstEstimate on are estimates.
type Earnings struct {
	Quarters      []string
	EPS           []float64
	YoYGrowth     []float64
	FirstEstimate int
}

// FedRate pairs the policy rate with the index level.
type FedRate struct {
	Labels []string
	Rate   []float64
	SP500  []float64
}

// Scenario is a year-end target under one outlook.
type Scenario struct {
	Name   string
	Target float64
	Tone   string
}

// Scenarios lists the outlooks with the axis floor for the bars.
type Scenarios struct {
	Cases []Scenario
	Floor float64
}

// CapeReturns relates starting CAPE to subsequent 10-year returns.
type CapeReturns struct {
	Points  [][2]float64
	Current [2]float64
}

// Geopolitical holds two monthly uncertainty indices.
type Geopolitical struct {
	Labels []string
	EPU    []float64
	GPR    []float64
}

// TailRisk is one low-probability, high-impact event. Probability and
// Impact are percentages; Severity scales the bubble. The bubble is filled
// with the Tone colour at Opacity.
type TailRisk struct {
	Name        string
	Probability float64
	Impact      float64
	Severity    float64
	Tone        string
	Opacity     float64
}

// TailRisks is the tail-risk bubble set with the plot bounds.
type TailRisks struct {
	Risks          []TailRisk
	MaxProbability float64
	MaxImpact      float64
}

// RiskScore is the composite risk reading shown on the gauge.
type RiskScore struct {
	Name  string
	Value float64
}

// SectorHeatmap holds monthly sector returns: Returns[m][s] is the return
// of Sectors[s] in Months[m].
type SectorHeatmap struct {
	Months  []string
	Sectors []string
	Returns [][]float64
}

// AbsMax is the largest absolute monthly return, the half-width of a
// colour scale symmetric around zero.
func (h SectorHeatmap) AbsMax() float64 {
	var m float64
	for _, row := range h.Returns {
		for _, v := range row {
			if v < 0 {
				v = -v
			}
			if v > m {
				m = v
			}
		}
	}
	return m
}
