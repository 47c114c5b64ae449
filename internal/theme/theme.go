// Package theme holds the single visual theme shared by every chart on the
// dashboard. The theme is built once during package initialisation and is
// never mutated afterwards; builders receive it by pointer.
package theme

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// Name is the name the theme is registered under with rendering backends.
const Name = "marketIntelligence"

// Palette is the named colour set. Semantic roles are methods on Theme.
type Palette struct {
	Blue   string
	Green  string
	Red    string
	Orange string
	Purple string
	Teal   string
	Yellow string
	Pink   string
	White  string
	Gray   string
	Label  string
	Title  string
}

// Typography holds the font family and the three size tokens.
type Typography struct {
	Family      string
	TitleSize   int
	LabelSize   int
	LegendSize  int
	TitleWeight int
	CompactSize int
}

// Theme is the immutable style object consumed by every builder.
type Theme struct {
	Name       string
	Palette    Palette
	Typography Typography

	GridLine          string
	AxisLine          string
	TooltipBackground string
	TooltipBorder     string
	InactiveLegend    string
	MutedFill         string

	// AnimationMs and Easing apply to every chart.
	AnimationMs int
	Easing      string

	series []string
}

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Get returns the dashboard theme. Every call returns the same pointer.
func Get() *Theme {
	defaultOnce.Do(func() {
		defaultTheme = newMarketIntelligence()
	})
	return defaultTheme
}

func newMarketIntelligence() *Theme {
	p := Palette{
		Blue:   "#2997ff",
		Green:  "#30d158",
		Red:    "#ff453a",
		Orange: "#ff9f0a",
		Purple: "#bf5af2",
		Teal:   "#64d2ff",
		Yellow: "#ffd60a",
		Pink:   "#ff375f",
		White:  "#f5f5f7",
		Gray:   "#6e6e73",
		Label:  "#a1a1a6",
		Title:  "#f5f5f7",
	}
	return &Theme{
		Name:    Name,
		Palette: p,
		Typography: Typography{
			Family:      "'Inter', -apple-system, BlinkMacSystemFont, 'SF Pro Text', 'Helvetica Neue', sans-serif",
			TitleSize:   14,
			LabelSize:   12,
			LegendSize:  12,
			TitleWeight: 600,
			CompactSize: 10,
		},
		GridLine:          "rgba(255,255,255,0.03)",
		AxisLine:          "rgba(255,255,255,0.06)",
		TooltipBackground: "rgba(9,9,11,0.95)",
		TooltipBorder:     "rgba(255,255,255,0.08)",
		InactiveLegend:    "rgba(255,255,255,0.15)",
		MutedFill:         "rgba(255,255,255,0.08)",
		AnimationMs:       800,
		Easing:            "cubicOut",
		series:            []string{p.Blue, p.Green, p.Red, p.Orange, p.Purple, p.Teal, p.Yellow, p.Pink},
	}
}

// Positive is the colour for values >= 0.
func (t *Theme) Positive() string { return t.Palette.Green }

// Negative is the colour for values < 0.
func (t *Theme) Negative() string { return t.Palette.Red }

// Primary is the default single-series colour.
func (t *Theme) Primary() string { return t.Palette.Blue }

// Accent is the second-series colour.
func (t *Theme) Accent() string { return t.Palette.Teal }

// SignColor picks Positive or Negative for v.
func (t *Theme) SignColor(v float64) string {
	if v >= 0 {
		return t.Positive()
	}
	return t.Negative()
}

// Tone resolves a palette colour by its lower-case name ("blue", "teal").
// Unknown names resolve to MutedFill.
func (t *Theme) Tone(name string) string {
	p := t.Palette
	switch strings.ToLower(name) {
	case "blue":
		return p.Blue
	case "green":
		return p.Green
	case "red":
		return p.Red
	case "orange":
		return p.Orange
	case "purple":
		return p.Purple
	case "teal":
		return p.Teal
	case "yellow":
		return p.Yellow
	case "pink":
		return p.Pink
	case "white":
		return p.White
	case "gray":
		return p.Gray
	}
	return t.MutedFill
}

// Alpha turns a "#rrggbb" colour into "rgba(r, g, b, a)". Other colour
// syntaxes are returned unchanged.
func Alpha(hex string, a float64) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	rgb, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return hex
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb>>16&0xff, rgb>>8&0xff, rgb&0xff, strconv.FormatFloat(a, 'f', -1, 64))
}

// SeriesColors returns a copy of the colour cycle.
func (t *Theme) SeriesColors() []string {
	out := make([]string, len(t.series))
	copy(out, t.series)
	return out
}

// SeriesColor returns the i-th colour of the cycle, wrapping around.
func (t *Theme) SeriesColor(i int) string {
	if i < 0 {
		i = -i
	}
	return t.series[i%len(t.series)]
}

// ECharts returns the theme as an ECharts registerTheme object.
// A fresh map is built on every call so callers may not alias theme state.
func (t *Theme) ECharts() map[string]interface{} {
	p := t.Palette
	ty := t.Typography
	text := func(color string, size int) map[string]interface{} {
		return map[string]interface{}{"color": color, "fontFamily": ty.Family, "fontSize": size}
	}
	axis := func() map[string]interface{} {
		return map[string]interface{}{
			"axisLine":  map[string]interface{}{"lineStyle": map[string]interface{}{"color": t.AxisLine}},
			"axisTick":  map[string]interface{}{"lineStyle": map[string]interface{}{"color": t.AxisLine}},
			"axisLabel": map[string]interface{}{"color": p.Label},
			"splitLine": map[string]interface{}{"lineStyle": map[string]interface{}{"color": t.GridLine}},
		}
	}
	colors := make([]interface{}, 0, len(t.series))
	for _, c := range t.series {
		colors = append(colors, c)
	}
	title := text(p.Title, ty.TitleSize)
	title["fontWeight"] = ty.TitleWeight

	return map[string]interface{}{
		"color":           colors,
		"backgroundColor": "transparent",
		"textStyle":       text(p.Label, ty.LabelSize),
		"title": map[string]interface{}{
			"textStyle":    title,
			"subtextStyle": text(p.Label, ty.LabelSize),
		},
		"legend": map[string]interface{}{
			"textStyle":     text(p.Label, ty.LegendSize),
			"pageTextStyle": map[string]interface{}{"color": p.Label},
			"inactiveColor": t.InactiveLegend,
		},
		"tooltip":      t.TooltipStyle(),
		"categoryAxis": axis(),
		"valueAxis":    axis(),
		"line": map[string]interface{}{
			"smooth":     true,
			"symbolSize": 0,
			"lineStyle":  map[string]interface{}{"width": 2.5},
		},
		"bar": map[string]interface{}{
			"barWidth":  "60%",
			"itemStyle": map[string]interface{}{"borderRadius": []interface{}{6, 6, 0, 0}},
		},
		"radar": map[string]interface{}{
			"axisLine":  map[string]interface{}{"lineStyle": map[string]interface{}{"color": t.AxisLine}},
			"splitLine": map[string]interface{}{"lineStyle": map[string]interface{}{"color": t.AxisLine}},
			"splitArea": map[string]interface{}{"areaStyle": map[string]interface{}{"color": []interface{}{"transparent", "rgba(255,255,255,0.01)"}}},
		},
	}
}

// TooltipStyle is the tooltip box style shared by every chart.
func (t *Theme) TooltipStyle() map[string]interface{} {
	return map[string]interface{}{
		"backgroundColor": t.TooltipBackground,
		"borderColor":     t.TooltipBorder,
		"borderWidth":     1,
		"textStyle": map[string]interface{}{
			"color":      t.Palette.Label,
			"fontFamily": t.Typography.Family,
			"fontSize":   t.Typography.LabelSize,
		},
		"extraCssText": "border-radius: 8px; box-shadow: 0 8px 32px rgba(0,0,0,0.5);",
	}
}

// ErrThemeConflict is returned when a different definition is registered
// under a name that is already taken.
var ErrThemeConflict = errors.New("theme: conflicting definition")

// Registrar is implemented by backends that support named themes.
type Registrar interface {
	RegisterTheme(name string, definition map[string]interface{}) error
}

// Register registers t with r under t.Name.
func Register(r Registrar, t *Theme) error {
	if r == nil {
		return nil
	}
	if err := r.RegisterTheme(t.Name, t.ECharts()); err != nil {
		return fmt.Errorf("register theme %s: %w", t.Name, err)
	}
	return nil
}

// Table is a name-keyed theme store for backends that keep their own
// registry. Registering the same name twice is allowed only with an equal
// definition.
type Table struct {
	mu     sync.RWMutex
	themes map[string]map[string]interface{}
}

// NewTable returns an empty theme table.
func NewTable() *Table {
	return &Table{themes: make(map[string]map[string]interface{})}
}

// RegisterTheme implements Registrar.
func (tb *Table) RegisterTheme(name string, definition map[string]interface{}) error {
	if name == "" {
		return fmt.Errorf("theme: name is required")
	}
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if existing, ok := tb.themes[name]; ok {
		if reflect.DeepEqual(existing, definition) {
			return nil
		}
		return fmt.Errorf("%w: %q", ErrThemeConflict, name)
	}
	tb.themes[name] = definition
	return nil
}

// Lookup returns the definition registered under name.
func (tb *Table) Lookup(name string) (map[string]interface{}, bool) {
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	def, ok := tb.themes[name]
	return def, ok
}

// Names returns the registered theme names in no particular order.
func (tb *Table) Names() []string {
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	names := make([]string, 0, len(tb.themes))
	for n := range tb.themes {
		names = append(names, n)
	}
	return names
}
