package spec

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned for a spec that no backend can render faithfully.
var ErrMalformed = errors.New("malformed chart spec")

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// Validate checks the structural invariants of the spec: axis references
// resolve, axis bindings respect dedicated axes, category lengths match the
// data, and the tooltip formatter expects exactly the series present.
func (c *ChartSpec) Validate() error {
	if c == nil {
		return malformed("nil spec")
	}
	if c.Kind == "" {
		return malformed("kind is required")
	}

	if err := c.validateAxes(); err != nil {
		return err
	}
	if err := c.validateSeries(); err != nil {
		return err
	}
	if err := c.validateTooltip(); err != nil {
		return err
	}

	switch c.Kind {
	case KindGauge:
		return c.validateGauge()
	case KindRadar:
		return c.validateRadar()
	case KindHeatmap:
		if c.VisualMap == nil {
			return malformed("heatmap %q has no visual map", c.Title)
		}
		if c.VisualMap.Min > c.VisualMap.Max {
			return malformed("visual map min %v above max %v", c.VisualMap.Min, c.VisualMap.Max)
		}
	}
	return nil
}

func (c *ChartSpec) validateAxes() error {
	seen := make(map[string]bool, len(c.Axes))
	for _, a := range c.Axes {
		if a.ID == "" {
			return malformed("axis without id")
		}
		if seen[a.ID] {
			return malformed("duplicate axis id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Dim != X && a.Dim != Y {
			return malformed("axis %q has dimension %q", a.ID, a.Dim)
		}
		if a.Type == Category && len(a.Categories) == 0 {
			return malformed("category axis %q has no categories", a.ID)
		}
		if a.Min != nil && a.Max != nil && *a.Min > *a.Max {
			return malformed("axis %q min %v above max %v", a.ID, *a.Min, *a.Max)
		}
	}
	if c.Kind.Cartesian() && (len(c.AxesOf(X)) == 0 || len(c.AxesOf(Y)) == 0) {
		return malformed("%s chart %q needs an x and a y axis", c.Kind, c.Title)
	}
	return nil
}

func (c *ChartSpec) validateSeries() error {
	if len(c.Series) == 0 && c.Kind != KindGauge {
		return malformed("%s chart %q has no series", c.Kind, c.Title)
	}

	names := make(map[string]bool, len(c.Series))
	for _, s := range c.Series {
		if s.Name == "" {
			return malformed("series without name in %q", c.Title)
		}
		if names[s.Name] {
			return malformed("duplicate series %q", s.Name)
		}
		names[s.Name] = true

		kind := s.Kind
		if kind == "" {
			kind = c.Kind
		}
		if !kind.Cartesian() {
			if s.XAxis != "" || s.YAxis != "" {
				return malformed("%s series %q bound to an axis", kind, s.Name)
			}
			continue
		}
		if err := c.validateBinding(s, X); err != nil {
			return err
		}
		if err := c.validateBinding(s, Y); err != nil {
			return err
		}
		if err := c.validateData(s, kind); err != nil {
			return err
		}
	}

	// A series an axis is dedicated to must actually be drawn against it.
	for _, a := range c.Axes {
		if a.For == "" {
			continue
		}
		if !names[a.For] {
			return malformed("axis %q dedicated to unknown series %q", a.ID, a.For)
		}
		for _, s := range c.Series {
			if s.Name != a.For {
				continue
			}
			bound, ok := c.SeriesAxis(s, a.Dim)
			if !ok || bound.ID != a.ID {
				return malformed("series %q is not drawn against its axis %q", s.Name, a.ID)
			}
		}
	}
	return nil
}

func (c *ChartSpec) validateBinding(s Series, dim Dimension) error {
	id := s.XAxis
	if dim == Y {
		id = s.YAxis
	}
	if id == "" && len(c.AxesOf(dim)) > 1 {
		return malformed("series %q must name its %s axis on a multi-axis chart", s.Name, dim)
	}
	a, ok := c.SeriesAxis(s, dim)
	if !ok {
		return malformed("series %q references unknown %s axis %q", s.Name, dim, id)
	}
	if a.For != "" && a.For != s.Name {
		return malformed("series %q bound to axis %q reserved for %q", s.Name, a.ID, a.For)
	}
	return nil
}

func (c *ChartSpec) validateData(s Series, kind Kind) error {
	switch kind {
	case KindScatter:
		for i, d := range s.Data {
			if len(d.Coords) != 2 {
				return malformed("scatter point %d of %q has %d coordinates", i, s.Name, len(d.Coords))
			}
		}
	case KindHeatmap:
		x, _ := c.SeriesAxis(s, X)
		y, _ := c.SeriesAxis(s, Y)
		for i, d := range s.Data {
			if len(d.Coords) != 3 {
				return malformed("heatmap cell %d of %q has %d coordinates", i, s.Name, len(d.Coords))
			}
			col, row := int(d.Coords[0]), int(d.Coords[1])
			if col < 0 || col >= len(x.Categories) || row < 0 || row >= len(y.Categories) {
				return malformed("heatmap cell %d of %q outside the grid", i, s.Name)
			}
		}
	default:
		for _, dim := range []Dimension{X, Y} {
			a, _ := c.SeriesAxis(s, dim)
			if a.Type == Category && len(a.Categories) != len(s.Data) {
				return malformed("series %q has %d points for %d categories on axis %q",
					s.Name, len(s.Data), len(a.Categories), a.ID)
			}
		}
	}
	return nil
}

func (c *ChartSpec) validateTooltip() error {
	f := c.Tooltip.Formatter
	if f == nil {
		return nil
	}
	if n := f.Arity(); n > 0 && n != len(c.Series) {
		return malformed("tooltip composes %d series but %q has %d", n, c.Title, len(c.Series))
	}
	want := f.Series()
	if want == nil {
		return nil
	}
	if len(want) != len(c.Series) {
		return malformed("tooltip expects series %v, chart has %v", want, c.SeriesNames())
	}
	for i, name := range want {
		if c.Series[i].Name != name {
			return malformed("tooltip expects series %v, chart has %v", want, c.SeriesNames())
		}
	}
	return nil
}

func (c *ChartSpec) validateGauge() error {
	g := c.Gauge
	if g == nil {
		return malformed("gauge %q has no dial", c.Title)
	}
	if g.Min >= g.Max {
		return malformed("gauge range [%v, %v] is empty", g.Min, g.Max)
	}
	if len(g.Bands) == 0 {
		return malformed("gauge %q has no bands", c.Title)
	}
	prev := g.Min
	for _, b := range g.Bands {
		if b.Upper <= prev {
			return malformed("gauge bands must ascend, %v after %v", b.Upper, prev)
		}
		prev = b.Upper
	}
	if prev != g.Max {
		return malformed("gauge bands end at %v, range ends at %v", prev, g.Max)
	}
	return nil
}

func (c *ChartSpec) validateRadar() error {
	if c.Radar == nil || len(c.Radar.Indicators) == 0 {
		return malformed("radar %q has no indicators", c.Title)
	}
	n := len(c.Radar.Indicators)
	for _, s := range c.Series {
		for i, d := range s.Data {
			if len(d.Coords) != n {
				return malformed("radar polygon %d of %q has %d values for %d indicators", i, s.Name, len(d.Coords), n)
			}
		}
	}
	return nil
}
