package echarts

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketdash/internal/charts"
	"marketdash/internal/datasets"
	"marketdash/internal/theme"
)

type mountPoint struct {
	id   string
	w, h int
}

func (m *mountPoint) ID() string       { return m.id }
func (m *mountPoint) Size() (int, int) { return m.w, m.h }

func newBackend(t *testing.T) *Backend {
	t.Helper()
	b := New("", 0)
	require.NoError(t, theme.Register(b, theme.Get()))
	return b
}

func TestInitRequiresRegisteredTheme(t *testing.T) {
	b := New("", 0)
	c := charts.BuildSP500History(datasets.SP500(), theme.Get())
	_, err := b.Init(&mountPoint{id: "sp500HistoricalChart", w: 600, h: 360}, theme.Name, c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrThemeNotRegistered))
}

func TestRegisterThemeTwice(t *testing.T) {
	b := newBackend(t)
	assert.NoError(t, theme.Register(b, theme.Get()))
	err := b.RegisterTheme(theme.Name, map[string]interface{}{"color": []interface{}{"#000"}})
	assert.True(t, errors.Is(err, theme.ErrThemeConflict))
}

func TestEveryCatalogChartMarshals(t *testing.T) {
	b := newBackend(t)
	for _, d := range charts.Catalog() {
		inst, err := b.Init(&mountPoint{id: d.Target, w: 600, h: 360}, theme.Name, d.Build(theme.Get()))
		require.NoError(t, err, d.Target)
		var opt map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(inst.(*Chart).Option()), &opt), d.Target)
		assert.NotEmpty(t, opt["series"], d.Target)
	}
}

func TestDualAxisIndices(t *testing.T) {
	opt := Option(charts.BuildFedRate(datasets.Rates(), theme.Get()))
	yAxes := opt["yAxis"].([]interface{})
	require.Len(t, yAxes, 2)
	assert.Equal(t, "Fed Funds Rate", yAxes[0].(object)["name"])

	series := opt["series"].([]interface{})
	assert.Equal(t, 0, series[0].(object)["yAxisIndex"])
	assert.Equal(t, 1, series[1].(object)["yAxisIndex"])
}

func TestLabelFormatsUseMarkers(t *testing.T) {
	opt := Option(charts.BuildValuation(datasets.Valuations(), theme.Get()))
	y := opt["yAxis"].([]interface{})[0].(object)
	assert.Equal(t, "{value}x", y["axisLabel"].(object)["formatter"])

	opt = Option(charts.BuildTailRisk(datasets.Tails(), theme.Get()))
	y = opt["yAxis"].([]interface{})[0].(object)
	marker := y["axisLabel"].(object)["formatter"].(object)
	assert.Equal(t, true, marker[keyFormat].(object)["negate"])
}

func TestGaugeOption(t *testing.T) {
	opt := Option(charts.BuildRiskGauge(datasets.CompositeRisk(), theme.Get()))
	series := opt["series"].([]interface{})
	require.Len(t, series, 1)
	g := series[0].(object)
	assert.Equal(t, "gauge", g["type"])
	assert.Equal(t, 4, g["splitNumber"])
	ticks := g["axisLabel"].(object)["formatter"].(object)[keyTicks].(object)
	assert.Equal(t, "Elevated", ticks["50"])
	assert.Contains(t, g["detail"].(object)["formatter"], "ELEVATED RISK")
	assert.Equal(t, false, opt["tooltip"].(object)["show"])
}

func TestSnippetMountsThroughRuntime(t *testing.T) {
	b := newBackend(t)
	mp := &mountPoint{id: "annualReturnsChart", w: 600, h: 360}
	inst, err := b.Init(mp, theme.Name, charts.BuildAnnualReturns(datasets.Returns(), theme.Get()))
	require.NoError(t, err)

	s := inst.(*Chart).Snippet()
	assert.Equal(t, "annualReturnsChart", s.ID)
	assert.Equal(t, `<div id="annualReturnsChart" style="width:100%;height:360px;"></div>`, s.Div)
	assert.True(t, strings.HasPrefix(s.Script, `<script>window.marketdash.mount("annualReturnsChart","marketIntelligence",`))
	assert.Contains(t, s.Script, `"axis":[`)
	assert.NotContains(t, s.Script, "addEventListener")
}

func TestResizeFollowsMountPoint(t *testing.T) {
	b := newBackend(t)
	mp := &mountPoint{id: "mag7Chart", w: 600, h: 360}
	inst, err := b.Init(mp, theme.Name, charts.BuildMag7Concentration(datasets.Mag7(), theme.Get()))
	require.NoError(t, err)
	ch := inst.(*Chart)

	mp.w, mp.h = 400, 300
	require.NoError(t, ch.Resize())
	w, h := ch.Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
	assert.Equal(t, 1, ch.Resizes())

	ch.Dispose()
	assert.True(t, ch.IsDisposed())
	assert.True(t, errors.Is(ch.Resize(), ErrDisposed))
}

func TestHeadAndFooter(t *testing.T) {
	b := New("https://example.test/echarts.js", 200*time.Millisecond)
	require.NoError(t, theme.Register(b, theme.Get()))

	head := string(b.Head())
	assert.Contains(t, head, `<script src="https://example.test/echarts.js"></script>`)
	assert.Equal(t, 1, strings.Count(head, "addEventListener('resize'"))
	assert.Contains(t, head, `echarts.registerTheme("marketIntelligence", {`)
	assert.Equal(t, "<script>window.marketdash.listen(200);</script>", string(b.Footer()))
}

func TestTreemapTooltipsLookUpByTileName(t *testing.T) {
	b := newBackend(t)
	mp := &mountPoint{id: "mag7TreemapChart", w: 600, h: 360}
	inst, err := b.Init(mp, theme.Name, charts.BuildMag7Treemap(datasets.Mag7Treemap(), theme.Get()))
	require.NoError(t, err)

	var tips map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(inst.(*Chart).tips), &tips))
	assert.NotContains(t, tips, "items")
	names, ok := tips["names"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, names, 8)
	assert.Contains(t, names["Apple"], "Apple")
	assert.Contains(t, names, "Other 493")
}

func TestRuntimeIgnoresNonSeriesHovers(t *testing.T) {
	assert.Contains(t, runtimeJS, "p.componentType !== 'series'")
	assert.Contains(t, runtimeJS, "tips.names[p.name]")
}
