package spec

import "marketdash/internal/tooltip"

// TooltipTable holds every tooltip a chart can show, rendered ahead of
// time. Axis-triggered charts index Axis by category; item-triggered
// charts index Items by series then datum. Treemaps index Names by tile
// name, since their data indices count the hidden root node.
type TooltipTable struct {
	Trigger Trigger
	Axis    []string
	Items   [][]string
	Names   map[string]string
}

// Empty reports whether the table holds no tooltips.
func (t TooltipTable) Empty() bool {
	return len(t.Axis) == 0 && len(t.Items) == 0 && len(t.Names) == 0
}

// Tooltips renders the tooltip formatter over every point of the chart.
// A spec without a formatter yields an empty table.
func (c *ChartSpec) Tooltips() TooltipTable {
	table := TooltipTable{Trigger: c.Tooltip.Trigger}
	f := c.Tooltip.Formatter
	if f == nil {
		return table
	}

	if c.Tooltip.Trigger == TriggerAxis {
		axis, ok := c.CategoryAxis()
		if !ok {
			return table
		}
		table.Axis = make([]string, len(axis.Categories))
		for i, cat := range axis.Categories {
			p := tooltip.Point{Category: cat}
			for _, s := range c.Series {
				if i < len(s.Data) {
					p.Values = append(p.Values, c.seriesValue(s, s.Data[i]))
				}
			}
			table.Axis[i] = f.Format(p)
		}
		return table
	}

	if c.Kind == KindGauge && c.Gauge != nil {
		p := tooltip.Point{Category: c.Gauge.Name, Values: []tooltip.SeriesValue{{Series: c.Gauge.Name, Value: c.Gauge.Value}}}
		table.Items = [][]string{{f.Format(p)}}
		return table
	}

	if c.Kind == KindTreemap {
		table.Names = make(map[string]string)
		for _, s := range c.Series {
			for _, d := range s.Data {
				table.Names[d.Name] = f.Format(tooltip.Point{Category: d.Name, Values: []tooltip.SeriesValue{c.seriesValue(s, d)}})
			}
		}
		return table
	}

	table.Items = make([][]string, len(c.Series))
	for i, s := range c.Series {
		row := make([]string, len(s.Data))
		for j, d := range s.Data {
			category := d.Name
			if category == "" {
				category = s.Name
			}
			row[j] = f.Format(tooltip.Point{Category: category, Values: []tooltip.SeriesValue{c.seriesValue(s, d)}})
		}
		table.Items[i] = row
	}
	return table
}

func (c *ChartSpec) seriesValue(s Series, d Datum) tooltip.SeriesValue {
	color := d.Color
	if color == "" {
		color = s.Color
	}
	return tooltip.SeriesValue{Series: s.Name, Value: d.Value, Coords: d.Coords, Color: color}
}
