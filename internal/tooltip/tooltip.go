package tooltip

import (
	"fmt"
	"html"
	"strings"

	"marketdash/internal/theme"
)

// SeriesValue is one resolved series value at a data point.
type SeriesValue struct {
	Series string
	Value  float64
	// Coords holds the full tuple for scatter ([x, y]) and heatmap ([col, row, v]) points.
	Coords []float64
	Color  string
}

// Point is what a tooltip formatter sees when the pointer rests on the chart.
type Point struct {
	Category string
	Values   []SeriesValue
}

// Formatter turns a resolved data point into tooltip HTML.
type Formatter interface {
	// Arity is the number of series values the formatter composes; 0 accepts any.
	Arity() int
	// Series lists the series names the formatter expects, in order; nil accepts any.
	Series() []string
	Format(p Point) string
}

// Line describes how one series is written inside a tooltip.
type Line struct {
	Series string
	Label  string
	Format ValueFormatter
	// BySign colours the value with the theme's positive/negative colour.
	BySign bool
}

type styler struct {
	t *theme.Theme
}

func (s styler) header(text string) string {
	return fmt.Sprintf(`<span style="color:%s;font-weight:600;">%s</span><br/>`, s.t.Palette.Title, html.EscapeString(text))
}

func (s styler) value(color, text string) string {
	return fmt.Sprintf(`<span style="color:%s;font-weight:600;">%s</span>`, color, text)
}

func (s styler) line(l Line, v SeriesValue) string {
	label := l.Label
	if label == "" {
		label = v.Series
	}
	valueColor := s.t.Palette.White
	if l.BySign {
		valueColor = s.t.SignColor(v.Value)
	}
	var b strings.Builder
	if v.Color != "" {
		fmt.Fprintf(&b, `<span style="color:%s;">●</span> `, v.Color)
	}
	b.WriteString(html.EscapeString(label))
	b.WriteString(": ")
	b.WriteString(s.value(valueColor, l.Format(v.Value)))
	b.WriteString("<br/>")
	return b.String()
}

// single is the one-series axis tooltip; Dual is built from two of these.
type single struct {
	s styler
	l Line
}

// Single renders the category followed by one series line.
func Single(t *theme.Theme, l Line) Formatter {
	return single{s: styler{t}, l: l}
}

func (f single) Arity() int { return 1 }

func (f single) Series() []string {
	if f.l.Series == "" {
		return nil
	}
	return []string{f.l.Series}
}

func (f single) body(v SeriesValue) string { return f.s.line(f.l, v) }

func (f single) Format(p Point) string {
	if len(p.Values) == 0 {
		return f.s.header(p.Category)
	}
	return f.s.header(p.Category) + f.body(p.Values[0])
}

type dual struct {
	s      styler
	first  single
	second single
}

// Dual composes two single-series lines under one category header. It is
// only valid on a spec with exactly the two named series, in that order.
func Dual(t *theme.Theme, first, second Line) Formatter {
	s := styler{t}
	return dual{s: s, first: single{s: s, l: first}, second: single{s: s, l: second}}
}

func (f dual) Arity() int { return 2 }

func (f dual) Series() []string {
	return []string{f.first.l.Series, f.second.l.Series}
}

func (f dual) Format(p Point) string {
	out := f.s.header(p.Category)
	for _, v := range p.Values {
		switch v.Series {
		case f.first.l.Series:
			out += f.first.body(v)
		case f.second.l.Series:
			out += f.second.body(v)
		}
	}
	return out
}

type axis struct {
	s styler
	l Line
}

// Axis writes one line per series, labelled with the series name and
// formatted the same way.
func Axis(t *theme.Theme, format ValueFormatter) Formatter {
	return axis{s: styler{t}, l: Line{Format: format}}
}

// SignedAxis is Axis with values coloured by sign.
func SignedAxis(t *theme.Theme, format ValueFormatter) Formatter {
	return axis{s: styler{t}, l: Line{Format: format, BySign: true}}
}

func (f axis) Arity() int       { return 0 }
func (f axis) Series() []string { return nil }

func (f axis) Format(p Point) string {
	out := f.s.header(p.Category)
	for _, v := range p.Values {
		out += f.s.line(f.l, v)
	}
	return out
}

type item struct {
	s styler
	l Line
}

// Item is the tooltip of a pie slice or treemap tile: the item name then
// one labelled value.
func Item(t *theme.Theme, l Line) Formatter {
	return item{s: styler{t}, l: l}
}

func (f item) Arity() int       { return 0 }
func (f item) Series() []string { return nil }

func (f item) Format(p Point) string {
	out := f.s.header(p.Category)
	if len(p.Values) > 0 {
		out += f.s.line(f.l, p.Values[0])
	}
	return out
}

type coords struct {
	s      styler
	header string
	x, y   Line
	yColor string
}

// Scatter labels a [x, y] point. The header is the x line.
func Scatter(t *theme.Theme, x, y Line) Formatter {
	return coords{s: styler{t}, x: x, y: y}
}

// Bubble labels a [x, y] point under its series name, with the y value in
// the negative colour (bubbles plot losses).
func Bubble(t *theme.Theme, x, y Line) Formatter {
	return coords{s: styler{t}, header: "series", x: x, y: y, yColor: t.Negative()}
}

func (f coords) Arity() int       { return 0 }
func (f coords) Series() []string { return nil }

func (f coords) Format(p Point) string {
	if len(p.Values) == 0 || len(p.Values[0].Coords) < 2 {
		return f.s.header(p.Category)
	}
	v := p.Values[0]
	x, y := v.Coords[0], v.Coords[1]
	yColor := f.s.t.Palette.White
	if f.yColor != "" {
		yColor = f.yColor
	}
	if f.header == "series" {
		return f.s.header(v.Series) +
			html.EscapeString(f.x.Label) + ": " + f.s.value(f.s.t.Palette.White, f.x.Format(x)) + "<br/>" +
			html.EscapeString(f.y.Label) + ": " + f.s.value(yColor, f.y.Format(y))
	}
	return f.s.header(f.x.Label+": "+f.x.Format(x)) +
		html.EscapeString(f.y.Label) + ": " + f.s.value(yColor, f.y.Format(y))
}

type cell struct {
	s          styler
	cols, rows []string
	format     ValueFormatter
}

// Cell labels a heatmap cell [col, row, value]: the row name, then
// "column: value" coloured by sign.
func Cell(t *theme.Theme, cols, rows []string, format ValueFormatter) Formatter {
	return cell{s: styler{t}, cols: append([]string(nil), cols...), rows: append([]string(nil), rows...), format: format}
}

func (f cell) Arity() int       { return 0 }
func (f cell) Series() []string { return nil }

func (f cell) Format(p Point) string {
	if len(p.Values) == 0 || len(p.Values[0].Coords) < 3 {
		return f.s.header(p.Category)
	}
	c := p.Values[0].Coords
	col, row, v := int(c[0]), int(c[1]), c[2]
	colName, rowName := "", ""
	if col >= 0 && col < len(f.cols) {
		colName = f.cols[col]
	}
	if row >= 0 && row < len(f.rows) {
		rowName = f.rows[row]
	}
	return f.s.header(rowName) + html.EscapeString(colName) + ": " + f.s.value(f.s.t.SignColor(v), f.format(v))
}

type vector struct {
	s      styler
	labels []string
	format ValueFormatter
}

// Vector labels a radar polygon: the polygon name, then one line per
// indicator.
func Vector(t *theme.Theme, labels []string, format ValueFormatter) Formatter {
	return vector{s: styler{t}, labels: append([]string(nil), labels...), format: format}
}

func (f vector) Arity() int       { return 0 }
func (f vector) Series() []string { return nil }

func (f vector) Format(p Point) string {
	out := f.s.header(p.Category)
	if len(p.Values) == 0 {
		return out
	}
	v := p.Values[0]
	for i, c := range v.Coords {
		if i >= len(f.labels) {
			break
		}
		out += f.s.line(Line{Label: f.labels[i], Format: f.format}, SeriesValue{Value: c, Color: v.Color})
	}
	return out
}

type static struct {
	text string
}

// Static always returns the same HTML.
func Static(text string) Formatter { return static{text: text} }

func (f static) Arity() int         { return 0 }
func (f static) Series() []string   { return nil }
func (f static) Format(Point) string { return f.text }

type perSeries struct {
	fallback  Formatter
	overrides map[string]Formatter
}

// PerSeries dispatches on the series of the first value, falling back to
// fallback for series without an override.
func PerSeries(fallback Formatter, overrides map[string]Formatter) Formatter {
	cp := make(map[string]Formatter, len(overrides))
	for k, v := range overrides {
		cp[k] = v
	}
	return perSeries{fallback: fallback, overrides: cp}
}

func (f perSeries) Arity() int       { return f.fallback.Arity() }
func (f perSeries) Series() []string { return f.fallback.Series() }

func (f perSeries) Format(p Point) string {
	if len(p.Values) > 0 {
		if o, ok := f.overrides[p.Values[0].Series]; ok {
			return o.Format(p)
		}
	}
	return f.fallback.Format(p)
}
