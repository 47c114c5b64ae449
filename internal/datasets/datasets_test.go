package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesLengthsMatchLabels(t *testing.T) {
	sp := SP500()
	assert.Len(t, sp.Values, len(sp.Labels))
	assert.Equal(t, "Feb 2026", sp.Labels[len(sp.Labels)-1])

	r := Returns()
	assert.Len(t, r.Values, len(r.Labels))

	v := Valuations()
	assert.Len(t, v.CAPE, len(v.Peaks))
	assert.Len(t, v.ForwardPE, len(v.Peaks))

	s := Sectors()
	assert.Len(t, s.FullYear, len(s.Sectors))
	assert.Len(t, s.YTD, len(s.Sectors))

	b := Buffett()
	assert.Len(t, b.Values, len(b.Labels))

	e := EarningsOutlook()
	assert.Len(t, e.EPS, len(e.Quarters))
	assert.Len(t, e.YoYGrowth, len(e.Quarters))
	assert.Equal(t, "Q1 2026E", e.Quarters[e.FirstEstimate])

	f := Rates()
	assert.Len(t, f.Rate, len(f.Labels))
	assert.Len(t, f.SP500, len(f.Labels))

	g := Uncertainty()
	assert.Len(t, g.EPU, len(g.Labels))
	assert.Len(t, g.GPR, len(g.Labels))

	sent := SentimentReadings()
	assert.Len(t, sent.Current, len(sent.Indicators))
	assert.Len(t, sent.Extreme, len(sent.Indicators))
}

func TestHeatmapGrid(t *testing.T) {
	h := MonthlySectors()
	require.Len(t, h.Returns, len(h.Months))
	for i, row := range h.Returns {
		assert.Len(t, row, len(h.Sectors), "month %s", h.Months[i])
	}
	assert.Equal(t, 5.1, h.AbsMax())
}

func TestConcentrationSumsToHundred(t *testing.T) {
	assert.InDelta(t, 100.0, Mag7().Total(), 1e-9)
	assert.Equal(t, "Other 493 Stocks", Mag7().Weights[7].Name)
	assert.Equal(t, "Other 493", Mag7Treemap().Weights[7].Name)
}

func TestAccessorsReturnFreshSlices(t *testing.T) {
	a := Sectors()
	a.Sectors[0] = "changed"
	a.FullYear[0] = 0
	b := Sectors()
	assert.Equal(t, "Technology", b.Sectors[0])
	assert.Equal(t, 24.0, b.FullYear[0])
	assert.Equal(t, "Technology", MonthlySectors().Sectors[0])
}
