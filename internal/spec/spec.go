// Package spec is the backend-neutral chart description produced by the
// builders and consumed once by a rendering backend.
package spec

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/types"

	"marketdash/internal/tooltip"
)

// Kind names a chart or series type. Values match the ECharts series types.
type Kind string

const (
	KindLine    Kind = types.ChartLine
	KindBar     Kind = types.ChartBar
	KindPie     Kind = types.ChartPie
	KindRadar   Kind = types.ChartRadar
	KindGauge   Kind = types.ChartGauge
	KindHeatmap Kind = types.ChartHeatMap
	KindScatter Kind = types.ChartScatter
	KindTreemap Kind = "treemap"
)

// Cartesian reports whether the kind is drawn on x/y axes.
func (k Kind) Cartesian() bool {
	switch k {
	case KindLine, KindBar, KindScatter, KindHeatmap:
		return true
	}
	return false
}

// Dimension is the direction of an axis.
type Dimension string

const (
	X Dimension = "x"
	Y Dimension = "y"
)

// AxisType distinguishes category axes from value axes.
type AxisType string

const (
	Category AxisType = "category"
	Value    AxisType = "value"
)

// Trigger selects what the pointer must rest on to show a tooltip.
type Trigger string

const (
	TriggerAxis Trigger = "axis"
	TriggerItem Trigger = "item"
	TriggerNone Trigger = "none"
)

// LabelFormat describes axis and data label text. It is kept declarative so
// that every backend can render it.
type LabelFormat struct {
	Prefix    string
	Suffix    string
	Thousands bool
	// Negate prints magnitudes as losses: 10 -> "-10%".
	Negate bool
	// Signed prints an explicit sign with Decimals fixed decimals.
	Signed   bool
	Decimals int
}

// Plain reports whether the format is a pure prefix/suffix template.
func (f LabelFormat) Plain() bool { return !f.Thousands && !f.Negate && !f.Signed }

// Template renders the format as an ECharts "{value}" template.
func (f LabelFormat) Template() string { return f.Prefix + "{value}" + f.Suffix }

// Apply formats v.
func (f LabelFormat) Apply(v float64) string {
	body := tooltip.Raw()
	switch {
	case f.Signed:
		return tooltip.Signed(f.Decimals)(v) + f.Suffix
	case f.Thousands:
		body = tooltip.Thousands(0)
	}
	if f.Negate && v != 0 {
		return "-" + f.Prefix + body(math.Abs(v)) + f.Suffix
	}
	return f.Prefix + body(v) + f.Suffix
}

// Axis is one x or y axis.
type Axis struct {
	ID         string
	Dim        Dimension
	Type       AxisType
	Position   string
	Name       string
	NameColor  string
	Categories []string
	Min        *float64
	Max        *float64
	Label      LabelFormat
	// LabelRotate rotates category labels, in degrees.
	LabelRotate int
	Inverse     bool
	SplitLine   bool
	// For names the only series allowed on this axis. Empty means any.
	For string
}

// Datum is one data point. Which fields matter depends on the series kind:
// Value for line/bar/pie/treemap/gauge, Coords for scatter ([x, y]),
// heatmap ([col, row, v]) and radar (one value per indicator).
type Datum struct {
	Name   string
	Value  float64
	Coords []float64
	Color  string
	Size   float64
}

// Labels are the data labels drawn on the series itself.
type Labels struct {
	Show     bool
	Position string
	Format   LabelFormat
	Color    string
}

// MarkLine is a reference line drawn across the plot at a fixed value.
type MarkLine struct {
	Dim    Dimension
	Value  float64
	Label  string
	Color  string
	Dashed bool
}

// Series is one data series.
type Series struct {
	Name  string
	Kind  Kind
	Data  []Datum
	XAxis string
	YAxis string

	Color  string
	Border string
	// AreaFrom and AreaTo draw a vertical gradient under a line.
	AreaFrom   string
	AreaTo     string
	Dashed     bool
	Smooth     bool
	Symbol     string
	SymbolSize float64
	LineWidth  float64
	BarWidth   string
	// Radius is the inner and outer radius of a pie ("55%", "82%").
	Radius    [2]string
	Labels    Labels
	MarkLines []MarkLine
}

// Values returns the Value of every datum.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.Data))
	for i, d := range s.Data {
		out[i] = d.Value
	}
	return out
}

// Legend controls the legend box. Labels replaces the text shown for an
// entry, keyed by series or item name.
type Legend struct {
	Show     bool
	Position string
	Orient   string
	Labels   map[string]string
}

// Tooltip pairs a trigger with the formatter that writes its HTML.
type Tooltip struct {
	Trigger     Trigger
	AxisPointer string
	Formatter   tooltip.Formatter
}

// Indicator is one radar spoke.
type Indicator struct {
	Name string
	Max  float64
}

// Radar is the coordinate system of a radar chart.
type Radar struct {
	Indicators []Indicator
	Shape      string
	Radius     string
}

// VisualMap maps cell values onto a continuous colour ramp.
type VisualMap struct {
	Min    float64
	Max    float64
	Colors []string
	Show   bool
	Label  LabelFormat
}

// Grid is the plot area padding, in CSS units.
type Grid struct {
	Left   string
	Right  string
	Top    string
	Bottom string
}

// ChartSpec is the complete declarative description of one chart.
type ChartSpec struct {
	Kind      Kind
	Title     string
	Subtitle  string
	Series    []Series
	Axes      []Axis
	Legend    Legend
	Tooltip   Tooltip
	Grid      *Grid
	Radar     *Radar
	Gauge     *Gauge
	VisualMap *VisualMap
}

// AxisByID returns the axis with the given id.
func (c *ChartSpec) AxisByID(id string) (Axis, bool) {
	for _, a := range c.Axes {
		if a.ID == id {
			return a, true
		}
	}
	return Axis{}, false
}

// AxesOf returns the axes of one dimension in declaration order.
func (c *ChartSpec) AxesOf(dim Dimension) []Axis {
	var out []Axis
	for _, a := range c.Axes {
		if a.Dim == dim {
			out = append(out, a)
		}
	}
	return out
}

// SeriesAxis resolves the axis a series is drawn against on dim. A series
// without an explicit binding uses the first axis of that dimension.
func (c *ChartSpec) SeriesAxis(s Series, dim Dimension) (Axis, bool) {
	id := s.XAxis
	if dim == Y {
		id = s.YAxis
	}
	if id != "" {
		a, ok := c.AxisByID(id)
		if !ok || a.Dim != dim {
			return Axis{}, false
		}
		return a, true
	}
	axes := c.AxesOf(dim)
	if len(axes) == 0 {
		return Axis{}, false
	}
	return axes[0], true
}

// CategoryAxis returns the first category axis, if any.
func (c *ChartSpec) CategoryAxis() (Axis, bool) {
	for _, a := range c.Axes {
		if a.Type == Category {
			return a, true
		}
	}
	return Axis{}, false
}

// SeriesNames returns the series names in order.
func (c *ChartSpec) SeriesNames() []string {
	out := make([]string, len(c.Series))
	for i, s := range c.Series {
		out[i] = s.Name
	}
	return out
}

// Float returns a pointer to v, for optional axis bounds.
func Float(v float64) *float64 { return &v }
