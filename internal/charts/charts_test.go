package charts

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketdash/internal/datasets"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
)

func TestCatalogOrder(t *testing.T) {
	want := []string{
		"sp500HistoricalChart", "annualReturnsChart", "valuationChart", "sectorChart",
		"mag7Chart", "buffettChart", "sentimentRadar", "earningsChart",
		"fedRateChart", "scenarioChart", "capeReturnsChart", "geopoliticalChart",
		"tailRiskChart", "riskGaugeChart", "mag7TreemapChart", "sectorHeatmapChart",
	}
	var got []string
	for _, d := range Catalog() {
		got = append(got, d.Target)
	}
	assert.Equal(t, want, got)

	_, ok := Lookup("fedRateChart")
	assert.True(t, ok)
	_, ok = Lookup("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{SectionMarket, SectionValuation, SectionSectors, SectionSentiment, SectionMacro, SectionRisk}, Sections())
}

func TestEveryBuilderProducesAValidSpec(t *testing.T) {
	th := theme.Get()
	for _, d := range Catalog() {
		t.Run(d.Target, func(t *testing.T) {
			c := d.Build(th)
			require.NotNil(t, c)
			assert.Equal(t, d.Title, c.Title)
			assert.NoError(t, c.Validate())
		})
	}
}

// stripped drops the formatter, whose closures cannot be compared.
func stripped(c *spec.ChartSpec) *spec.ChartSpec {
	cp := *c
	cp.Tooltip.Formatter = nil
	return &cp
}

func TestBuildersAreDeterministic(t *testing.T) {
	th := theme.Get()
	for _, d := range Catalog() {
		a, b := d.Build(th), d.Build(th)
		assert.True(t, reflect.DeepEqual(stripped(a), stripped(b)), "%s differs between builds", d.Target)
		assert.Equal(t, a.Tooltips(), b.Tooltips(), "%s tooltips differ between builds", d.Target)
	}
}

func TestBuildersDoNotAliasDatasets(t *testing.T) {
	d := datasets.SP500()
	c := BuildSP500History(d, theme.Get())
	d.Labels[0] = "changed"
	d.Values[0] = -1

	x, ok := c.CategoryAxis()
	require.True(t, ok)
	assert.Equal(t, "2006", x.Categories[0])
	assert.Equal(t, 1418.0, c.Series[0].Data[0].Value)
}

func TestAnnualReturnsColourBySign(t *testing.T) {
	th := theme.Get()
	c := BuildAnnualReturns(datasets.Returns(), th)
	for _, p := range c.Series[0].Data {
		if p.Value >= 0 {
			assert.Equal(t, th.Positive(), p.Color, "%v", p.Value)
		} else {
			assert.Equal(t, th.Negative(), p.Color, "%v", p.Value)
		}
	}

	tips := c.Tooltips()
	require.Len(t, tips.Axis, 20)
	assert.Contains(t, tips.Axis[2], "2008")
	assert.Contains(t, tips.Axis[2], "-37.0%")
	assert.Contains(t, tips.Axis[3], "+26.5%")
}

func TestEarningsEstimatesAreFaded(t *testing.T) {
	th := theme.Get()
	c := BuildEarnings(datasets.EarningsOutlook(), th)
	eps := c.Series[0].Data
	assert.Equal(t, th.Primary(), eps[3].Color)
	assert.Equal(t, "rgba(41, 151, 255, 0.5)", eps[4].Color)

	tips := c.Tooltips()
	assert.Contains(t, tips.Axis[0], "$57.2")
	assert.Contains(t, tips.Axis[0], "5.8%")
}

func TestFedRateAxisBindings(t *testing.T) {
	th := theme.Get()
	c := BuildFedRate(datasets.Rates(), th)
	require.NoError(t, c.Validate())

	rate, ok := c.SeriesAxis(c.Series[0], spec.Y)
	require.True(t, ok)
	assert.Equal(t, "Fed Funds Rate", rate.Name)
	assert.Equal(t, th.Palette.Orange, rate.NameColor)

	index, ok := c.SeriesAxis(c.Series[1], spec.Y)
	require.True(t, ok)
	assert.Equal(t, "S&P 500", index.Name)
	assert.Equal(t, th.Primary(), index.NameColor)

	c.Series[0].YAxis, c.Series[1].YAxis = c.Series[1].YAxis, c.Series[0].YAxis
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, spec.ErrMalformed))
}

func TestRiskGauge(t *testing.T) {
	c := BuildRiskGauge(datasets.CompositeRisk(), theme.Get())
	require.NotNil(t, c.Gauge)
	assert.Equal(t, "Elevated", c.Gauge.Level())
	assert.Equal(t, "ELEVATED RISK", c.Gauge.Detail)
	assert.Empty(t, c.Series)
}

func TestSectorHeatmapScaleIsSymmetric(t *testing.T) {
	th := theme.Get()
	c := BuildSectorHeatmap(datasets.MonthlySectors(), th)
	require.NotNil(t, c.VisualMap)
	assert.Equal(t, -5.1, c.VisualMap.Min)
	assert.Equal(t, 5.1, c.VisualMap.Max)
	assert.Len(t, c.Series[0].Data, 66)

	tips := c.Tooltips()
	require.Len(t, tips.Items, 1)
	assert.Contains(t, tips.Items[0][0], "Technology")
	assert.Contains(t, tips.Items[0][0], "Sep 2025")
	assert.Contains(t, tips.Items[0][0], "-1.8%")
}

func TestTailRiskSeriesPerEvent(t *testing.T) {
	c := BuildTailRisk(datasets.Tails(), theme.Get())
	require.Len(t, c.Series, 8)
	assert.Equal(t, "China-Taiwan Invasion", c.Series[0].Name)
	assert.Equal(t, 55.0, c.Series[0].SymbolSize)
	assert.Equal(t, "rgba(255, 69, 58, 0.6)", c.Series[0].Color)

	tips := c.Tooltips()
	assert.Contains(t, tips.Items[0][0], "-35%")
}

func TestMag7LegendCarriesWeights(t *testing.T) {
	th := theme.Get()
	c := BuildMag7Concentration(datasets.Mag7(), th)
	assert.Equal(t, "Apple  7.3%", c.Legend.Labels["Apple"])
	data := c.Series[0].Data
	assert.Equal(t, th.MutedFill, data[len(data)-1].Color)
	assert.Equal(t, th.Palette.Purple, data[2].Color)
}

func TestCapeCurrentPosition(t *testing.T) {
	c := BuildCapeReturns(datasets.Cape(), theme.Get())
	require.Len(t, c.Series, 2)
	cur := c.Series[1]
	assert.Equal(t, "diamond", cur.Symbol)
	require.Len(t, cur.MarkLines, 1)
	assert.Equal(t, 39.7, cur.MarkLines[0].Value)
	assert.Equal(t, "Current CAPE: 39.7", cur.MarkLines[0].Label)

	tips := c.Tooltips()
	assert.True(t, strings.Contains(tips.Items[1][0], "Implied forward return"))
	assert.Contains(t, tips.Items[0][0], "CAPE: 10.0x")
}
