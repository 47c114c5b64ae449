package tooltip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketdash/internal/theme"
)

func TestSingleTooltip(t *testing.T) {
	th := theme.Get()
	f := Single(th, Line{Series: "Annual Return", Label: "Return", Format: SignedPercent(1), BySign: true})

	assert.Equal(t, 1, f.Arity())
	assert.Equal(t, []string{"Annual Return"}, f.Series())

	out := f.Format(Point{Category: "2008", Values: []SeriesValue{{Series: "Annual Return", Value: -37}}})
	assert.Contains(t, out, "2008")
	assert.Contains(t, out, "Return: ")
	assert.Contains(t, out, "-37.0%")
	assert.Contains(t, out, th.Negative())
}

func TestDualIsConcatenationOfSingles(t *testing.T) {
	th := theme.Get()
	eps := Line{Series: "EPS ($)", Label: "EPS", Format: Currency(1)}
	yoy := Line{Series: "YoY Growth %", Label: "YoY", Format: Percent(1)}
	f := Dual(th, eps, yoy)

	assert.Equal(t, 2, f.Arity())
	assert.Equal(t, []string{"EPS ($)", "YoY Growth %"}, f.Series())

	p := Point{Category: "Q1 2025", Values: []SeriesValue{
		{Series: "EPS ($)", Value: 57.2},
		{Series: "YoY Growth %", Value: 5.8},
	}}
	first := Single(th, eps).Format(Point{Category: p.Category, Values: p.Values[:1]})
	second := Single(th, yoy).Format(Point{Category: p.Category, Values: p.Values[1:]})
	header := Single(th, eps).Format(Point{Category: p.Category})

	assert.Equal(t, first+strings.TrimPrefix(second, header), f.Format(p))
	assert.Contains(t, f.Format(p), "$57.2")
	assert.Contains(t, f.Format(p), "5.8%")
}

func TestAxisTooltipListsEverySeries(t *testing.T) {
	f := Axis(theme.Get(), Raw())
	out := f.Format(Point{Category: "Feb 26", Values: []SeriesValue{
		{Series: "EPU Index", Value: 370, Color: "#ff453a"},
		{Series: "GPR Index", Value: 185, Color: "#ff9f0a"},
	}})
	assert.Equal(t, 0, f.Arity())
	assert.Nil(t, f.Series())
	assert.Contains(t, out, "EPU Index: ")
	assert.Contains(t, out, "370")
	assert.Contains(t, out, "GPR Index: ")
	assert.Contains(t, out, "#ff9f0a")
}

func TestNamesAreEscaped(t *testing.T) {
	f := Item(theme.Get(), Line{Label: "Weight", Format: Percent(1)})
	out := f.Format(Point{Category: "<b>Apple</b>", Values: []SeriesValue{{Value: 7.3}}})
	assert.NotContains(t, out, "<b>Apple</b>")
	assert.Contains(t, out, "&lt;b&gt;Apple&lt;/b&gt;")
	assert.Contains(t, out, "7.3%")
}

func TestScatterAndBubble(t *testing.T) {
	th := theme.Get()
	scatter := Scatter(th, Line{Label: "CAPE", Format: Multiple(1)}, Line{Label: "10Y Return", Format: SignedPercent(1)})
	out := scatter.Format(Point{Values: []SeriesValue{{Coords: []float64{39.7, -0.5}}}})
	assert.Contains(t, out, "CAPE: 39.7x")
	assert.Contains(t, out, "-0.5%")

	bubble := Bubble(th, Line{Label: "Probability", Format: RawPercent()}, Line{Label: "Impact", Format: Drawdown()})
	out = bubble.Format(Point{Values: []SeriesValue{{Series: "China-Taiwan Invasion", Coords: []float64{4, 35}}}})
	assert.Contains(t, out, "China-Taiwan Invasion")
	assert.Contains(t, out, "4%")
	assert.Contains(t, out, "-35%")
	assert.Contains(t, out, th.Negative())
}

func TestCellTooltip(t *testing.T) {
	th := theme.Get()
	f := Cell(th, []string{"Technology", "Healthcare"}, []string{"Sep 2025", "Oct 2025"}, SignedPercent(1))
	out := f.Format(Point{Values: []SeriesValue{{Coords: []float64{1, 0, 0.4}}}})
	assert.Contains(t, out, "Sep 2025")
	assert.Contains(t, out, "Healthcare: ")
	assert.Contains(t, out, "+0.4%")
	assert.Contains(t, out, th.Positive())

	// Out-of-range indices render empty names rather than panicking.
	assert.NotPanics(t, func() { f.Format(Point{Values: []SeriesValue{{Coords: []float64{9, 9, 1}}}}) })
}

func TestPerSeriesOverride(t *testing.T) {
	th := theme.Get()
	fallback := Item(th, Line{Label: "Return", Format: SignedPercent(1)})
	f := PerSeries(fallback, map[string]Formatter{"Current Position": Static("current")})

	assert.Equal(t, "current", f.Format(Point{Values: []SeriesValue{{Series: "Current Position"}}}))
	assert.Contains(t, f.Format(Point{Category: "x", Values: []SeriesValue{{Series: "Historical", Value: 2.1}}}), "+2.1%")
}
