package echarts

import (
	"sort"
	"strconv"

	"marketdash/internal/spec"
)

// Keys the page runtime replaces with functions when it hydrates an option.
const (
	keyFormat = "__fmt"
	keyTicks  = "__ticks"
	keyLabels = "__labels"
)

type object = map[string]interface{}

// Option translates a chart spec into an ECharts option. The result holds
// only JSON values; label formats and tick names travel as marker objects.
func Option(c *spec.ChartSpec) map[string]interface{} {
	opt := object{
		"tooltip": tooltipOption(c),
	}
	if l := legendOption(c.Legend); l != nil {
		opt["legend"] = l
	}
	if c.Grid != nil {
		opt["grid"] = object{
			"left":         c.Grid.Left,
			"right":        c.Grid.Right,
			"top":          c.Grid.Top,
			"bottom":       c.Grid.Bottom,
			"containLabel": true,
		}
	}

	xIndex, yIndex := map[string]int{}, map[string]int{}
	if c.Kind.Cartesian() {
		opt["xAxis"] = axesOption(c.AxesOf(spec.X), xIndex)
		opt["yAxis"] = axesOption(c.AxesOf(spec.Y), yIndex)
	}
	if c.Radar != nil {
		opt["radar"] = radarOption(c.Radar)
	}
	if c.VisualMap != nil {
		opt["visualMap"] = visualMapOption(c.VisualMap)
	}

	series := make([]interface{}, 0, len(c.Series)+1)
	for _, s := range c.Series {
		series = append(series, seriesOption(c, s, xIndex, yIndex))
	}
	if c.Kind == spec.KindGauge && c.Gauge != nil {
		series = append(series, gaugeOption(c.Gauge))
	}
	opt["series"] = series
	return opt
}

// formatOption renders a label format: nil when there is nothing to do, a
// "{value}" template when prefix and suffix suffice, otherwise a marker.
func formatOption(f spec.LabelFormat) interface{} {
	if f == (spec.LabelFormat{}) {
		return nil
	}
	if f.Plain() {
		return f.Template()
	}
	return object{keyFormat: object{
		"prefix":    f.Prefix,
		"suffix":    f.Suffix,
		"thousands": f.Thousands,
		"negate":    f.Negate,
		"signed":    f.Signed,
		"decimals":  f.Decimals,
	}}
}

func tooltipOption(c *spec.ChartSpec) object {
	trigger := c.Tooltip.Trigger
	if trigger == "" {
		trigger = spec.TriggerItem
	}
	tip := object{"trigger": string(trigger)}
	if trigger == spec.TriggerNone {
		tip["show"] = false
	}
	if c.Tooltip.AxisPointer != "" {
		tip["axisPointer"] = object{"type": c.Tooltip.AxisPointer}
	}
	return tip
}

func legendOption(l spec.Legend) object {
	if !l.Show {
		return nil
	}
	out := object{"show": true, "icon": "roundRect", "itemWidth": 12, "itemHeight": 12}
	switch l.Position {
	case "top-right":
		out["top"], out["right"] = 0, 0
	case "right":
		out["right"], out["top"] = 0, "middle"
	case "bottom":
		out["bottom"] = 0
	case "left":
		out["left"], out["top"] = 0, "middle"
	default:
		out["top"] = 0
	}
	if l.Orient != "" {
		out["orient"] = l.Orient
	}
	if len(l.Labels) > 0 {
		labels := object{}
		for k, v := range l.Labels {
			labels[k] = v
		}
		out["formatter"] = object{keyLabels: labels}
	}
	return out
}

func axesOption(axes []spec.Axis, index map[string]int) []interface{} {
	out := make([]interface{}, 0, len(axes))
	for i, a := range axes {
		index[a.ID] = i
		ax := object{
			"type":      string(a.Type),
			"splitLine": object{"show": a.SplitLine},
		}
		if a.Position != "" {
			ax["position"] = a.Position
		}
		if a.Name != "" {
			ax["name"] = a.Name
			ax["nameLocation"] = "middle"
			ax["nameGap"] = 40
			if a.NameColor != "" {
				ax["nameTextStyle"] = object{"color": a.NameColor}
			}
		}
		if a.Type == spec.Category {
			ax["data"] = a.Categories
		}
		if a.Min != nil {
			ax["min"] = *a.Min
		}
		if a.Max != nil {
			ax["max"] = *a.Max
		}
		if a.Inverse {
			ax["inverse"] = true
		}
		label := object{}
		if f := formatOption(a.Label); f != nil {
			label["formatter"] = f
		}
		if a.LabelRotate != 0 {
			label["rotate"] = a.LabelRotate
		}
		if len(label) > 0 {
			ax["axisLabel"] = label
		}
		out = append(out, ax)
	}
	return out
}

func radarOption(r *spec.Radar) object {
	indicators := make([]interface{}, len(r.Indicators))
	for i, ind := range r.Indicators {
		indicators[i] = object{"name": ind.Name, "max": ind.Max}
	}
	out := object{"indicator": indicators}
	if r.Shape != "" {
		out["shape"] = r.Shape
	}
	if r.Radius != "" {
		out["radius"] = r.Radius
	}
	return out
}

func visualMapOption(v *spec.VisualMap) object {
	colors := make([]interface{}, len(v.Colors))
	for i, c := range v.Colors {
		colors[i] = c
	}
	out := object{
		"min":        v.Min,
		"max":        v.Max,
		"show":       v.Show,
		"calculable": true,
		"orient":     "horizontal",
		"left":       "center",
		"bottom":     0,
		"inRange":    object{"color": colors},
	}
	if f := formatOption(v.Label); f != nil {
		out["formatter"] = f
	}
	return out
}

func itemStyle(color, border string) object {
	style := object{}
	if color != "" {
		style["color"] = color
	}
	if border != "" {
		style["borderColor"] = border
		style["borderWidth"] = 1
	}
	return style
}

func seriesOption(c *spec.ChartSpec, s spec.Series, xIndex, yIndex map[string]int) object {
	kind := s.Kind
	if kind == "" {
		kind = c.Kind
	}
	out := object{"name": s.Name, "type": string(kind)}
	if style := itemStyle(s.Color, s.Border); len(style) > 0 {
		out["itemStyle"] = style
	}

	if kind.Cartesian() {
		if a, ok := c.SeriesAxis(s, spec.X); ok {
			out["xAxisIndex"] = xIndex[a.ID]
		}
		if a, ok := c.SeriesAxis(s, spec.Y); ok {
			out["yAxisIndex"] = yIndex[a.ID]
		}
	}

	if kind == spec.KindLine || kind == spec.KindRadar {
		line := object{}
		if s.Color != "" {
			line["color"] = s.Color
		}
		if s.LineWidth > 0 {
			line["width"] = s.LineWidth
		}
		if s.Dashed {
			line["type"] = "dashed"
		}
		out["lineStyle"] = line
	}

	switch kind {
	case spec.KindLine:
		out["smooth"] = s.Smooth
		if s.AreaFrom != "" {
			out["areaStyle"] = object{"color": object{
				"type": "linear", "x": 0, "y": 0, "x2": 0, "y2": 1,
				"colorStops": []interface{}{
					object{"offset": 0, "color": s.AreaFrom},
					object{"offset": 1, "color": s.AreaTo},
				},
			}}
		}
		out["data"] = valueData(s.Data)
	case spec.KindBar:
		if s.BarWidth != "" {
			out["barWidth"] = s.BarWidth
		}
		out["data"] = valueData(s.Data)
	case spec.KindScatter:
		out["data"] = coordData(s.Data)
	case spec.KindHeatmap:
		out["data"] = coordData(s.Data)
	case spec.KindPie:
		out["radius"] = []interface{}{s.Radius[0], s.Radius[1]}
		out["avoidLabelOverlap"] = true
		out["data"] = namedData(s.Data)
	case spec.KindTreemap:
		out["roam"] = false
		out["nodeClick"] = false
		out["breadcrumb"] = object{"show": false}
		out["data"] = namedData(s.Data)
	case spec.KindRadar:
		data := make([]interface{}, len(s.Data))
		for i, d := range s.Data {
			item := object{"name": s.Name, "value": d.Coords}
			if s.AreaFrom != "" {
				item["areaStyle"] = object{"color": s.AreaFrom}
			}
			data[i] = item
		}
		out["data"] = data
	}

	if s.Symbol != "" {
		out["symbol"] = s.Symbol
	}
	if s.SymbolSize > 0 {
		out["symbolSize"] = s.SymbolSize
	}
	if s.Labels.Show {
		label := object{"show": true}
		if s.Labels.Position != "" {
			label["position"] = s.Labels.Position
		}
		if s.Labels.Color != "" {
			label["color"] = s.Labels.Color
		}
		if f := formatOption(s.Labels.Format); f != nil {
			label["formatter"] = f
		}
		out["label"] = label
	} else if kind == spec.KindPie {
		out["label"] = object{"show": false}
	}
	if len(s.MarkLines) > 0 {
		out["markLine"] = markLineOption(s.MarkLines)
	}
	return out
}

// valueData emits plain values unless a datum carries its own colour.
func valueData(ds []spec.Datum) []interface{} {
	out := make([]interface{}, len(ds))
	for i, d := range ds {
		if d.Color == "" && d.Name == "" {
			out[i] = d.Value
			continue
		}
		item := object{"value": d.Value}
		if d.Name != "" {
			item["name"] = d.Name
		}
		if d.Color != "" {
			item["itemStyle"] = object{"color": d.Color}
		}
		out[i] = item
	}
	return out
}

func coordData(ds []spec.Datum) []interface{} {
	out := make([]interface{}, len(ds))
	for i, d := range ds {
		if d.Color == "" && d.Size == 0 && d.Name == "" {
			out[i] = d.Coords
			continue
		}
		item := object{"value": d.Coords}
		if d.Name != "" {
			item["name"] = d.Name
		}
		if d.Color != "" {
			item["itemStyle"] = object{"color": d.Color}
		}
		if d.Size > 0 {
			item["symbolSize"] = d.Size
		}
		out[i] = item
	}
	return out
}

func namedData(ds []spec.Datum) []interface{} {
	out := make([]interface{}, len(ds))
	for i, d := range ds {
		item := object{"name": d.Name, "value": d.Value}
		if d.Color != "" {
			item["itemStyle"] = object{"color": d.Color}
		}
		out[i] = item
	}
	return out
}

func markLineOption(lines []spec.MarkLine) object {
	data := make([]interface{}, len(lines))
	for i, m := range lines {
		style := object{"color": m.Color, "width": 1}
		if m.Dashed {
			style["type"] = "dashed"
		}
		axis := "yAxis"
		if m.Dim == spec.X {
			axis = "xAxis"
		}
		data[i] = object{
			axis:        m.Value,
			"lineStyle": style,
			"label":     object{"formatter": m.Label, "color": m.Color},
		}
	}
	return object{
		"silent": true,
		"symbol": []interface{}{"none", "none"},
		"data":   data,
	}
}

func gaugeOption(g *spec.Gauge) object {
	stops := make([]interface{}, 0, len(g.Bands))
	for _, s := range g.Stops() {
		stops = append(stops, []interface{}{s[0], s[1]})
	}
	ticks := object{}
	keys := make([]float64, 0, len(g.Ticks))
	for k := range g.Ticks {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	for _, k := range keys {
		ticks[strconv.FormatFloat(k, 'f', -1, 64)] = g.Ticks[k]
	}
	detail := "{value}" + g.Unit
	if g.Detail != "" {
		detail += "\n" + g.Detail
	}
	var split int
	if len(keys) > 1 {
		split = len(keys) - 1
	}

	out := object{
		"name":       g.Name,
		"type":       string(spec.KindGauge),
		"min":        g.Min,
		"max":        g.Max,
		"startAngle": 200,
		"endAngle":   -20,
		"radius":     "90%",
		"axisLine":   object{"lineStyle": object{"width": 18, "color": stops}},
		"pointer":    object{"itemStyle": object{"color": "auto"}, "width": 5},
		"axisTick":   object{"show": false},
		"splitLine":  object{"length": 12, "lineStyle": object{"color": "auto", "width": 2}},
		"axisLabel":  object{"color": "inherit", "distance": 28, "formatter": object{keyTicks: ticks}},
		"title":      object{"show": false},
		"detail": object{
			"valueAnimation": true,
			"formatter":      detail,
			"color":          "inherit",
			"fontSize":       20,
			"fontWeight":     "bold",
			"offsetCenter":   []interface{}{0, "60%"},
		},
		"data": []interface{}{object{"value": g.Value, "name": g.Name}},
	}
	if split > 0 {
		out["splitNumber"] = split
	}
	return out
}
