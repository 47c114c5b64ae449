package spec

// Band is one coloured range of a gauge. A value belongs to the first band
// whose Upper bound it does not exceed.
type Band struct {
	Upper float64
	Label string
	Color string
}

// Gauge is the single-value dial of a gauge chart.
type Gauge struct {
	Name  string
	Value float64
	Min   float64
	Max   float64
	Bands []Band
	// Unit is appended to the value in the detail text ("72%").
	Unit string
	// Detail is the caption under the value ("ELEVATED RISK").
	Detail string
	// Ticks labels the major ticks, keyed by tick value.
	Ticks map[float64]string
}

// Classify returns the band v falls into. Values above the last bound fall
// into the last band; ok is false only when there are no bands.
func (g *Gauge) Classify(v float64) (Band, bool) {
	if len(g.Bands) == 0 {
		return Band{}, false
	}
	for _, b := range g.Bands {
		if v <= b.Upper {
			return b, true
		}
	}
	return g.Bands[len(g.Bands)-1], true
}

// Level is the label of the band the gauge value falls into.
func (g *Gauge) Level() string {
	b, _ := g.Classify(g.Value)
	return b.Label
}

// Stops returns the bands as ECharts axisLine colour stops: each upper bound
// as a fraction of the gauge range.
func (g *Gauge) Stops() [][2]interface{} {
	span := g.Max - g.Min
	out := make([][2]interface{}, 0, len(g.Bands))
	for _, b := range g.Bands {
		frac := 1.0
		if span > 0 {
			frac = (b.Upper - g.Min) / span
		}
		out = append(out, [2]interface{}{frac, b.Color})
	}
	return out
}
