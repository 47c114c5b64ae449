package static

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"marketdash/internal/spec"
)

// maxTicks caps the category labels drawn on a line chart's x axis.
const maxTicks = 12

// Render draws c as a w x h PNG.
func Render(c *spec.ChartSpec, w, h int, out io.Writer) error {
	if err := Supported(c); err != nil {
		return err
	}
	switch c.Kind {
	case spec.KindLine:
		g, err := lineChart(c, w, h)
		if err != nil {
			return err
		}
		return g.Render(chart.PNG, out)
	case spec.KindScatter:
		g, err := scatterChart(c, w, h)
		if err != nil {
			return err
		}
		return g.Render(chart.PNG, out)
	case spec.KindBar:
		g, err := barChart(c, w, h)
		if err != nil {
			return err
		}
		return g.Render(chart.PNG, out)
	case spec.KindPie:
		return pieChart(c, w, h, out)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedKind, c.Kind)
}

func titleStyle() chart.Style {
	return chart.Style{FontSize: 14, FontColor: drawing.ColorBlack}
}

func padding() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}}
}

// parseColor reads "#rrggbb" and "rgba(r, g, b, a)". Anything else is gray.
func parseColor(s string) drawing.Color {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#") && len(s) == 7:
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			break
		}
		return drawing.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[len("rgba("):len(s)-1], ",")
		if len(parts) != 4 {
			break
		}
		var ch [4]float64
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return drawing.ColorFromHex("6e6e73")
			}
			ch[i] = f
		}
		return drawing.Color{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2]), A: uint8(math.Round(ch[3] * 255))}
	}
	return drawing.ColorFromHex("6e6e73")
}

func formatter(f spec.LabelFormat) chart.ValueFormatter {
	return func(v interface{}) string {
		if x, ok := v.(float64); ok {
			return f.Apply(x)
		}
		return fmt.Sprintf("%v", v)
	}
}

// valueRange honours the axis bounds, filling a missing bound from the data.
func valueRange(a spec.Axis, data []float64) *chart.ContinuousRange {
	if a.Min == nil && a.Max == nil {
		return nil
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	r := &chart.ContinuousRange{Min: lo, Max: hi * 1.1}
	if a.Min != nil {
		r.Min = *a.Min
	}
	if a.Max != nil {
		r.Max = *a.Max
	}
	return r
}

// yAxis leaves Range unset without bounds: a nil *ContinuousRange stored in
// the Range interface is not a nil interface and go-chart would call it.
func yAxis(a spec.Axis, data []float64) chart.YAxis {
	y := chart.YAxis{
		Name:           a.Name,
		NameStyle:      chart.Style{FontSize: 12},
		Style:          chart.Style{FontSize: 10},
		ValueFormatter: formatter(a.Label),
	}
	if r := valueRange(a, data); r != nil {
		y.Range = r
	}
	return y
}

// categoryTicks labels at most maxTicks evenly spaced categories.
func categoryTicks(categories []string) []chart.Tick {
	step := 1
	if len(categories) > maxTicks {
		step = int(math.Ceil(float64(len(categories)) / maxTicks))
	}
	var ticks []chart.Tick
	for i := 0; i < len(categories); i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: strings.ReplaceAll(categories[i], "\n", " ")})
	}
	return ticks
}

func lineStyle(s spec.Series) chart.Style {
	color := parseColor(s.Color)
	width := s.LineWidth
	if width == 0 {
		width = 2
	}
	st := chart.Style{StrokeColor: color, StrokeWidth: width}
	if s.Dashed {
		st.StrokeDashArray = []float64{5, 5}
	}
	if s.AreaFrom != "" {
		st.FillColor = parseColor(s.AreaFrom)
	}
	return st
}

func lineChart(c *spec.ChartSpec, w, h int) (chart.Chart, error) {
	cat, ok := c.CategoryAxis()
	if !ok || len(cat.Categories) < 2 {
		return chart.Chart{}, fmt.Errorf("line chart %q needs at least two categories", c.Title)
	}
	ys := c.AxesOf(spec.Y)
	primary := ys[0]

	g := chart.Chart{
		Title:      c.Title,
		TitleStyle: titleStyle(),
		Background: padding(),
		Width:      w,
		Height:     h,
		XAxis: chart.XAxis{
			Style: chart.Style{FontSize: 9},
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(cat.Categories) - 1)},
			Ticks: categoryTicks(cat.Categories),
		},
	}

	var primaryData, secondaryData []float64
	var secondary *spec.Axis
	for _, s := range c.Series {
		vs := s.Values()
		xs := make([]float64, len(vs))
		for i := range xs {
			xs[i] = float64(i)
		}
		cs := chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: vs, Style: lineStyle(s)}
		if a, ok := c.SeriesAxis(s, spec.Y); ok && a.ID != primary.ID {
			cs.YAxis = chart.YAxisSecondary
			secondary = &a
			secondaryData = append(secondaryData, vs...)
		} else {
			primaryData = append(primaryData, vs...)
		}
		g.Series = append(g.Series, cs)
	}
	g.YAxis = yAxis(primary, primaryData)
	if secondary != nil {
		g.YAxisSecondary = yAxis(*secondary, secondaryData)
	}
	if c.Legend.Show && len(c.Series) > 1 {
		g.Elements = []chart.Renderable{chart.Legend(&g)}
	}
	return g, nil
}

func scatterChart(c *spec.ChartSpec, w, h int) (chart.Chart, error) {
	xAxes, yAxes := c.AxesOf(spec.X), c.AxesOf(spec.Y)
	xa, ya := xAxes[0], yAxes[0]

	g := chart.Chart{
		Title:      c.Title,
		TitleStyle: titleStyle(),
		Background: padding(),
		Width:      w,
		Height:     h,
	}

	var allX, allY []float64
	for _, s := range c.Series {
		size := s.SymbolSize / 2
		if size < 3 {
			size = 3
		}
		for _, d := range s.Data {
			xs, ys := []float64{d.Coords[0]}, []float64{d.Coords[1]}
			allX, allY = append(allX, xs...), append(allY, ys...)
			color := d.Color
			if color == "" {
				color = s.Color
			}
			g.Series = append(g.Series, chart.ContinuousSeries{
				Name:    s.Name,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: drawing.ColorTransparent,
					DotColor:    parseColor(color),
					DotWidth:    size,
				},
			})
		}
	}
	if len(allX) == 0 {
		return chart.Chart{}, fmt.Errorf("scatter chart %q has no points", c.Title)
	}

	xr := valueRange(xa, allX)
	yr := valueRange(ya, allY)
	g.XAxis = chart.XAxis{
		Name:           xa.Name,
		NameStyle:      chart.Style{FontSize: 12},
		Style:          chart.Style{FontSize: 10},
		ValueFormatter: formatter(xa.Label),
	}
	if xr != nil {
		g.XAxis.Range = xr
	}
	g.YAxis = yAxis(ya, allY)

	// Vertical mark lines span the y extent of the plot.
	lo, hi := extent(allY)
	if yr != nil {
		lo, hi = yr.Min, yr.Max
	}
	for _, s := range c.Series {
		for _, m := range s.MarkLines {
			if m.Dim != spec.X {
				continue
			}
			st := chart.Style{StrokeColor: parseColor(m.Color), StrokeWidth: 1}
			if m.Dashed {
				st.StrokeDashArray = []float64{5, 5}
			}
			g.Series = append(g.Series, chart.ContinuousSeries{
				Name:    m.Label,
				XValues: []float64{m.Value, m.Value},
				YValues: []float64{lo, hi},
				Style:   st,
			})
		}
	}
	return g, nil
}

func extent(vs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return lo, hi
}

// barChart draws one bar per category, or interleaved groups when the
// chart has several bar series.
func barChart(c *spec.ChartSpec, w, h int) (chart.BarChart, error) {
	cat, ok := c.CategoryAxis()
	if !ok {
		return chart.BarChart{}, fmt.Errorf("bar chart %q has no category axis", c.Title)
	}
	var valueAxis spec.Axis
	for _, a := range c.Axes {
		if a.Type == spec.Value {
			valueAxis = a
			break
		}
	}

	var bars []chart.Value
	var all []float64
	negative := false
	for i, label := range cat.Categories {
		for j, s := range c.Series {
			if i >= len(s.Data) {
				continue
			}
			d := s.Data[i]
			color := d.Color
			if color == "" {
				color = s.Color
			}
			v := chart.Value{Value: d.Value, Style: chart.Style{FillColor: parseColor(color), StrokeColor: parseColor(color)}}
			if j == 0 {
				v.Label = strings.ReplaceAll(label, "\n", " ")
			}
			bars = append(bars, v)
			all = append(all, d.Value)
			negative = negative || d.Value < 0
		}
	}
	if len(bars) == 0 {
		return chart.BarChart{}, fmt.Errorf("bar chart %q has no bars", c.Title)
	}

	barWidth := (w - 80) / (len(bars) + len(bars)/2 + 1)
	if barWidth < 4 {
		barWidth = 4
	}
	return chart.BarChart{
		Title:        c.Title,
		TitleStyle:   titleStyle(),
		Background:   padding(),
		Width:        w,
		Height:       h,
		Bars:         bars,
		BarWidth:     barWidth,
		XAxis:        chart.Style{FontSize: 9},
		YAxis:        yAxis(valueAxis, all),
		UseBaseValue: negative,
		BaseValue:    0,
	}, nil
}

func pieChart(c *spec.ChartSpec, w, h int, out io.Writer) error {
	if len(c.Series) == 0 {
		return fmt.Errorf("pie chart %q has no series", c.Title)
	}
	s := c.Series[0]
	values := make([]chart.Value, 0, len(s.Data))
	for _, d := range s.Data {
		label := d.Name
		if l, ok := c.Legend.Labels[d.Name]; ok {
			label = l
		}
		values = append(values, chart.Value{
			Value: d.Value,
			Label: label,
			Style: chart.Style{FillColor: parseColor(d.Color), FontSize: 9},
		})
	}

	if inner := s.Radius[0]; inner != "" && inner != "0" && inner != "0%" {
		donut := chart.DonutChart{
			Title:      c.Title,
			TitleStyle: titleStyle(),
			Background: padding(),
			Width:      w,
			Height:     h,
			Values:     values,
		}
		return donut.Render(chart.PNG, out)
	}
	pie := chart.PieChart{
		Title:      c.Title,
		TitleStyle: titleStyle(),
		Background: padding(),
		Width:      w,
		Height:     h,
		Values:     values,
	}
	return pie.Render(chart.PNG, out)
}
