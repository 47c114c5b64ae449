package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsSameTheme(t *testing.T) {
	a := Get()
	b := Get()
	assert.Same(t, a, b)
	assert.Equal(t, Name, a.Name)
}

func TestSemanticColors(t *testing.T) {
	th := Get()
	assert.Equal(t, "#30d158", th.Positive())
	assert.Equal(t, "#ff453a", th.Negative())
	assert.Equal(t, th.Positive(), th.SignColor(0))
	assert.Equal(t, th.Positive(), th.SignColor(26.5))
	assert.Equal(t, th.Negative(), th.SignColor(-37))
}

func TestSeriesColorsIsACopy(t *testing.T) {
	th := Get()
	colors := th.SeriesColors()
	require.Len(t, colors, 8)
	colors[0] = "#000000"
	assert.Equal(t, "#2997ff", th.SeriesColor(0))
	assert.Equal(t, th.SeriesColor(1), th.SeriesColor(9))
}

func TestEChartsDefinitionIsFresh(t *testing.T) {
	th := Get()
	def := th.ECharts()
	def["backgroundColor"] = "red"
	assert.Equal(t, "transparent", th.ECharts()["backgroundColor"])

	tooltip, ok := def["tooltip"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, th.TooltipBackground, tooltip["backgroundColor"])
}

func TestRegisterIsIdempotent(t *testing.T) {
	table := NewTable()
	th := Get()

	require.NoError(t, Register(table, th))
	require.NoError(t, Register(table, th))

	def, ok := table.Lookup(Name)
	require.True(t, ok)
	assert.Equal(t, th.ECharts(), def)
	assert.Equal(t, []string{Name}, table.Names())
}

func TestRegisterConflict(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.RegisterTheme("marketIntelligence", map[string]interface{}{"color": "a"}))

	err := table.RegisterTheme("marketIntelligence", map[string]interface{}{"color": "b"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrThemeConflict))

	assert.Error(t, table.RegisterTheme("", nil))
}

func TestRegisterNilRegistrar(t *testing.T) {
	assert.NoError(t, Register(nil, Get()))
}

func TestToneAndAlpha(t *testing.T) {
	th := Get()
	assert.Equal(t, th.Palette.Purple, th.Tone("purple"))
	assert.Equal(t, th.Palette.Teal, th.Tone("Teal"))
	assert.Equal(t, th.MutedFill, th.Tone(""))

	assert.Equal(t, "rgba(41, 151, 255, 0.12)", Alpha("#2997ff", 0.12))
	assert.Equal(t, "rgba(255, 69, 58, 0)", Alpha("#ff453a", 0))
	assert.Equal(t, "rgba(255,255,255,0.08)", Alpha("rgba(255,255,255,0.08)", 0.5))
}
