package standalone

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"marketdash/internal/spec"
)

// Render writes c as an HTML page holding one w x h chart with element id.
func Render(c *spec.ChartSpec, id string, w, h int, out io.Writer) error {
	if err := Supported(c); err != nil {
		return err
	}
	global := globalOptions(c, id, w, h)
	switch c.Kind {
	case spec.KindLine:
		return lineChart(c, global).Render(out)
	case spec.KindBar:
		return barChart(c, global).Render(out)
	case spec.KindPie:
		return pieChart(c, global).Render(out)
	case spec.KindRadar:
		return radarChart(c, global).Render(out)
	case spec.KindHeatmap:
		return heatmapChart(c, global).Render(out)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedKind, c.Kind)
}

func globalOptions(c *spec.ChartSpec, id string, w, h int) []charts.GlobalOpts {
	o := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			ChartID:   id,
			Width:     fmt.Sprintf("%dpx", w),
			Height:    fmt.Sprintf("%dpx", h),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: c.Subtitle,
		}),
		charts.WithLegendOpts(legend(c.Legend)),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    c.Tooltip.Trigger != spec.TriggerNone,
			Trigger: string(c.Tooltip.Trigger),
		}),
	}
	if g := c.Grid; g != nil {
		o = append(o, charts.WithGridOpts(opts.Grid{Left: g.Left, Right: g.Right, Top: g.Top, Bottom: g.Bottom}))
	}
	return o
}

// legend places the box from a "top-right" style position.
func legend(l spec.Legend) opts.Legend {
	out := opts.Legend{Show: l.Show, Orient: l.Orient}
	for _, p := range strings.Split(l.Position, "-") {
		switch p {
		case "top", "bottom":
			out.Top = p
		case "left", "right", "center":
			out.Left = p
		}
	}
	if out.Top == "" && out.Orient == "vertical" {
		out.Top = "middle"
	}
	return out
}

// axisLabel keeps templates ECharts can apply itself. Computed formats fall
// back to the raw value.
func axisLabel(a spec.Axis) *opts.AxisLabel {
	l := &opts.AxisLabel{Show: true, ShowMinLabel: true, ShowMaxLabel: true, Rotate: float64(a.LabelRotate)}
	if a.Type == spec.Value && a.Label.Plain() {
		l.Formatter = a.Label.Template()
	}
	return l
}

func splitLine(a spec.Axis) *opts.SplitLine {
	return &opts.SplitLine{Show: a.SplitLine}
}

// ordered returns the categories of a in display order with the matching
// source indices. go-echarts has no axis inversion, so inverse axes are
// reversed here.
func ordered(a spec.Axis) ([]string, []int) {
	n := len(a.Categories)
	names := make([]string, n)
	index := make([]int, n)
	for i := range a.Categories {
		j := i
		if a.Inverse {
			j = n - 1 - i
		}
		names[i], index[i] = a.Categories[j], j
	}
	return names, index
}

func xAxis(a spec.Axis, categories []string) opts.XAxis {
	x := opts.XAxis{Name: a.Name, Type: string(a.Type), AxisLabel: axisLabel(a), SplitLine: splitLine(a)}
	if categories != nil {
		x.Data = categories
	}
	if a.Min != nil {
		x.Min = *a.Min
	}
	if a.Max != nil {
		x.Max = *a.Max
	}
	return x
}

func yAxis(a spec.Axis, categories []string) opts.YAxis {
	y := opts.YAxis{Name: a.Name, Type: string(a.Type), AxisLabel: axisLabel(a), SplitLine: splitLine(a)}
	if categories != nil {
		y.Data = categories
	}
	if a.Min != nil {
		y.Min = *a.Min
	}
	if a.Max != nil {
		y.Max = *a.Max
	}
	return y
}

func lineStyle(s spec.Series) opts.LineStyle {
	ls := opts.LineStyle{Color: s.Color, Width: float32(s.LineWidth)}
	if s.Dashed {
		ls.Type = "dashed"
	}
	return ls
}

func markLines(s spec.Series) []charts.SeriesOpts {
	var out []charts.SeriesOpts
	for _, m := range s.MarkLines {
		if m.Dim == spec.X {
			out = append(out, charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{Name: m.Label, XAxis: m.Value}))
			continue
		}
		out = append(out, charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: m.Label, YAxis: m.Value}))
	}
	return out
}

func lineChart(c *spec.ChartSpec, global []charts.GlobalOpts) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(global...)

	cat, _ := c.CategoryAxis()
	names, index := ordered(cat)
	line.SetGlobalOptions(charts.WithXAxisOpts(xAxis(cat, nil)))
	ys := c.AxesOf(spec.Y)
	for i, a := range ys {
		if i == 0 {
			line.SetGlobalOptions(charts.WithYAxisOpts(yAxis(a, nil)))
			continue
		}
		line.ExtendYAxis(yAxis(a, nil))
	}
	line.SetXAxis(names)

	for _, s := range c.Series {
		data := make([]opts.LineData, len(index))
		for i, j := range index {
			if j < len(s.Data) {
				data[i] = opts.LineData{Value: s.Data[j].Value}
			}
		}
		so := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     s.Smooth,
				YAxisIndex: axisIndex(c, s, ys),
				ShowSymbol: s.Symbol != "none",
				Symbol:     s.Symbol,
				Color:      s.Color,
			}),
			charts.WithLineStyleOpts(lineStyle(s)),
		}
		if s.AreaFrom != "" {
			so = append(so, charts.WithAreaStyleOpts(opts.AreaStyle{Color: s.AreaFrom}))
		}
		line.AddSeries(s.Name, data, append(so, markLines(s)...)...)
	}
	return line
}

// axisIndex is the position of the series' y axis among ys.
func axisIndex(c *spec.ChartSpec, s spec.Series, ys []spec.Axis) int {
	a, ok := c.SeriesAxis(s, spec.Y)
	if !ok {
		return 0
	}
	for i, y := range ys {
		if y.ID == a.ID {
			return i
		}
	}
	return 0
}

func barChart(c *spec.ChartSpec, global []charts.GlobalOpts) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(global...)

	cat, _ := c.CategoryAxis()
	names, index := ordered(cat)
	if cat.Dim == spec.Y {
		var value spec.Axis
		if xs := c.AxesOf(spec.X); len(xs) > 0 {
			value = xs[0]
		}
		bar.SetGlobalOptions(
			charts.WithXAxisOpts(xAxis(value, nil)),
			charts.WithYAxisOpts(yAxis(cat, nil)),
		)
		bar.XYReversal()
	} else {
		var value spec.Axis
		if ys := c.AxesOf(spec.Y); len(ys) > 0 {
			value = ys[0]
		}
		bar.SetGlobalOptions(
			charts.WithXAxisOpts(xAxis(cat, nil)),
			charts.WithYAxisOpts(yAxis(value, nil)),
		)
	}
	bar.SetXAxis(names)

	for _, s := range c.Series {
		data := make([]opts.BarData, len(index))
		for i, j := range index {
			if j >= len(s.Data) {
				continue
			}
			d := s.Data[j]
			data[i] = opts.BarData{Value: d.Value}
			if d.Color != "" {
				data[i].ItemStyle = &opts.ItemStyle{Color: d.Color}
			}
		}
		var so []charts.SeriesOpts
		if s.Color != "" {
			so = append(so, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
		}
		if s.Labels.Show {
			so = append(so, charts.WithLabelOpts(opts.Label{Show: true, Color: s.Labels.Color}))
		}
		bar.AddSeries(s.Name, data, append(so, markLines(s)...)...)
	}
	return bar
}

func pieChart(c *spec.ChartSpec, global []charts.GlobalOpts) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(global...)

	for _, s := range c.Series {
		data := make([]opts.PieData, len(s.Data))
		for i, d := range s.Data {
			data[i] = opts.PieData{Name: d.Name, Value: d.Value}
			if d.Color != "" {
				data[i].ItemStyle = &opts.ItemStyle{Color: d.Color}
			}
		}
		var so []charts.SeriesOpts
		if s.Radius[1] != "" {
			so = append(so, charts.WithPieChartOpts(opts.PieChart{Radius: []string{s.Radius[0], s.Radius[1]}}))
		}
		so = append(so, charts.WithLabelOpts(opts.Label{Show: s.Labels.Show, Color: s.Labels.Color}))
		pie.AddSeries(s.Name, data, so...)
	}
	return pie
}

func radarChart(c *spec.ChartSpec, global []charts.GlobalOpts) *charts.Radar {
	radar := charts.NewRadar()
	radar.SetGlobalOptions(global...)

	rc := opts.RadarComponent{}
	if c.Radar != nil {
		rc.Shape = c.Radar.Shape
		for _, ind := range c.Radar.Indicators {
			rc.Indicator = append(rc.Indicator, &opts.Indicator{Name: ind.Name, Max: float32(ind.Max)})
		}
	}
	radar.SetGlobalOptions(charts.WithRadarComponentOpts(rc))

	for _, s := range c.Series {
		data := make([]opts.RadarData, len(s.Data))
		for i, d := range s.Data {
			data[i] = opts.RadarData{Name: d.Name, Value: d.Coords}
		}
		so := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			charts.WithLineStyleOpts(lineStyle(s)),
		}
		if s.AreaFrom != "" {
			so = append(so, charts.WithAreaStyleOpts(opts.AreaStyle{Color: s.AreaFrom}))
		}
		radar.AddSeries(s.Name, data, so...)
	}
	return radar
}

func heatmapChart(c *spec.ChartSpec, global []charts.GlobalOpts) *charts.HeatMap {
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(global...)

	var xs, ys spec.Axis
	if a := c.AxesOf(spec.X); len(a) > 0 {
		xs = a[0]
	}
	if a := c.AxesOf(spec.Y); len(a) > 0 {
		ys = a[0]
	}
	xNames, xIndex := ordered(xs)
	yNames, yIndex := ordered(ys)
	hm.SetGlobalOptions(
		charts.WithXAxisOpts(xAxis(xs, xNames)),
		charts.WithYAxisOpts(yAxis(ys, yNames)),
	)
	if vm := c.VisualMap; vm != nil {
		hm.SetGlobalOptions(charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        float32(vm.Min),
			Max:        float32(vm.Max),
			Show:       vm.Show,
			InRange:    &opts.VisualMapInRange{Color: vm.Colors},
		}))
	}

	col := position(xIndex)
	row := position(yIndex)
	for _, s := range c.Series {
		data := make([]opts.HeatMapData, 0, len(s.Data))
		for _, d := range s.Data {
			if len(d.Coords) < 3 {
				continue
			}
			x, y := int(d.Coords[0]), int(d.Coords[1])
			data = append(data, opts.HeatMapData{Value: [3]interface{}{col[x], row[y], d.Coords[2]}})
		}
		var so []charts.SeriesOpts
		if s.Labels.Show {
			so = append(so, charts.WithLabelOpts(opts.Label{Show: true, Color: s.Labels.Color}))
		}
		hm.AddSeries(s.Name, data, so...)
	}
	return hm
}

// position inverts an ordered index: source index -> display position.
func position(index []int) map[int]int {
	out := make(map[int]int, len(index))
	for i, j := range index {
		out[j] = i
	}
	return out
}
