package xlsx

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"marketdash/internal/spec"
)

// Chart anchor and default size, in pixels.
const (
	chartAnchor   = "H2"
	defaultWidth  = 640
	defaultHeight = 360
)

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// ref is an absolute range reference into sheet, e.g. 'fedRateChart'!$B$2:$B$13.
func ref(sheet string, col, fromRow, toRow int) string {
	c, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("'%s'!$%s$%d:$%s$%d", sheet, c, fromRow, c, toRow)
}

func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	return f.SetSheetRow(sheet, cell(1, row), &values)
}

// hexColor converts "#rrggbb" or "rgba(r, g, b, a)" to an Excel RRGGBB
// colour. Alpha is dropped.
func hexColor(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		return strings.ToUpper(s[1:])
	}
	if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[len("rgba("):len(s)-1], ",")
		if len(parts) != 4 {
			return ""
		}
		var ch [3]int
		for i := range ch {
			v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil {
				return ""
			}
			ch[i] = v
		}
		return fmt.Sprintf("%02X%02X%02X", ch[0], ch[1], ch[2])
	}
	return ""
}

func solid(color string) excelize.Fill {
	hex := hexColor(color)
	if hex == "" {
		return excelize.Fill{}
	}
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}}
}

func title(c *spec.ChartSpec) []excelize.RichTextRun {
	return []excelize.RichTextRun{{Text: c.Title}}
}

func dimension(w, h int) excelize.ChartDimension {
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return excelize.ChartDimension{Width: uint(w), Height: uint(h)}
}

func axis(a spec.Axis) excelize.ChartAxis {
	out := excelize.ChartAxis{MajorGridLines: a.SplitLine, ReverseOrder: a.Inverse, Minimum: a.Min, Maximum: a.Max}
	if a.Name != "" {
		out.Title = []excelize.RichTextRun{{Text: a.Name}}
	}
	return out
}

func legendPosition(l spec.Legend) string {
	if !l.Show {
		return "none"
	}
	switch l.Position {
	case "right", "left", "bottom":
		return l.Position
	}
	return "top"
}

// writeChart lays the data of c out on sheet and adds a native chart when
// Excel has one for the kind.
func writeChart(f *excelize.File, sheet string, c *spec.ChartSpec, w, h int) error {
	if err := f.SetCellValue(sheet, "A1", c.Title); err != nil {
		return err
	}
	switch c.Kind {
	case spec.KindLine, spec.KindBar:
		return writeCategorical(f, sheet, c, w, h)
	case spec.KindPie:
		return writePie(f, sheet, c, w, h)
	case spec.KindRadar:
		return writeRadar(f, sheet, c, w, h)
	case spec.KindScatter:
		return writeScatter(f, sheet, c, w, h)
	case spec.KindGauge:
		return writeGauge(f, sheet, c)
	case spec.KindTreemap:
		return writeNamed(f, sheet, c)
	case spec.KindHeatmap:
		return writeGrid(f, sheet, c)
	}
	return fmt.Errorf("unknown chart kind %s", c.Kind)
}

// writeCategorical writes one row per category and one column per series,
// then draws bars and lines, putting series on a second value axis onto a
// combo chart.
func writeCategorical(f *excelize.File, sheet string, c *spec.ChartSpec, w, h int) error {
	cat, ok := c.CategoryAxis()
	if !ok {
		return fmt.Errorf("chart %q has no category axis", c.Title)
	}
	header := []interface{}{""}
	for _, s := range c.Series {
		header = append(header, s.Name)
	}
	if err := writeRow(f, sheet, 2, header...); err != nil {
		return err
	}
	for i, label := range cat.Categories {
		row := []interface{}{strings.ReplaceAll(label, "\n", " ")}
		for _, s := range c.Series {
			if i < len(s.Data) {
				row = append(row, s.Data[i].Value)
			} else {
				row = append(row, nil)
			}
		}
		if err := writeRow(f, sheet, i+3, row...); err != nil {
			return err
		}
	}

	last := len(cat.Categories) + 2
	categories := ref(sheet, 1, 3, last)
	values := c.AxesOf(spec.Y)
	if cat.Dim == spec.Y {
		values = c.AxesOf(spec.X)
	}
	if len(values) == 0 {
		return fmt.Errorf("chart %q has no value axis", c.Title)
	}
	primary := values[0]

	var base, combo *excelize.Chart
	for i, s := range c.Series {
		kind := s.Kind
		if kind == "" {
			kind = c.Kind
		}
		series := excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$2", sheet, columnName(i+2)),
			Categories: categories,
			Values:     ref(sheet, i+2, 3, last),
			Fill:       solid(s.Color),
		}
		if kind == spec.KindLine {
			series.Line = excelize.ChartLine{Smooth: s.Smooth, Width: s.LineWidth}
			series.Marker = excelize.ChartMarker{Symbol: "none"}
		}
		chartType := excelize.Line
		if kind == spec.KindBar {
			chartType = excelize.Col
			if cat.Dim == spec.Y {
				chartType = excelize.Bar
			}
		}

		a, _ := c.SeriesAxis(s, primary.Dim)
		secondary := a.ID != "" && a.ID != primary.ID
		target := &base
		if secondary || (base != nil && base.Type != chartType) {
			target = &combo
		}
		if *target == nil {
			*target = &excelize.Chart{
				Type:      chartType,
				Dimension: dimension(w, h),
				Legend:    excelize.ChartLegend{Position: legendPosition(c.Legend)},
				Title:     title(c),
				XAxis:     excelize.ChartAxis{ReverseOrder: cat.Inverse},
				YAxis:     axis(primary),
			}
			if target == &combo {
				(*target).YAxis = axis(a)
				(*target).YAxis.Secondary = secondary
			}
		}
		(*target).Series = append((*target).Series, series)
	}
	if base == nil {
		return nil
	}
	if combo != nil {
		return f.AddChart(sheet, chartAnchor, base, combo)
	}
	return f.AddChart(sheet, chartAnchor, base)
}

func columnName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}

func writePie(f *excelize.File, sheet string, c *spec.ChartSpec, w, h int) error {
	if len(c.Series) == 0 {
		return nil
	}
	s := c.Series[0]
	if err := writeRow(f, sheet, 2, "Name", s.Name); err != nil {
		return err
	}
	points := make([]excelize.ChartDataPoint, 0, len(s.Data))
	for i, d := range s.Data {
		if err := writeRow(f, sheet, i+3, d.Name, d.Value); err != nil {
			return err
		}
		points = append(points, excelize.ChartDataPoint{Index: i, Fill: solid(d.Color)})
	}
	last := len(s.Data) + 2

	chartType, hole := excelize.Pie, 0
	if inner := s.Radius[0]; inner != "" && inner != "0" && inner != "0%" {
		chartType = excelize.Doughnut
		hole, _ = strconv.Atoi(strings.TrimSuffix(inner, "%"))
	}
	return f.AddChart(sheet, chartAnchor, &excelize.Chart{
		Type:      chartType,
		Dimension: dimension(w, h),
		Legend:    excelize.ChartLegend{Position: legendPosition(c.Legend)},
		Title:     title(c),
		HoleSize:  hole,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$2", sheet),
			Categories: ref(sheet, 1, 3, last),
			Values:     ref(sheet, 2, 3, last),
			DataPoint:  points,
		}},
	})
}

func writeRadar(f *excelize.File, sheet string, c *spec.ChartSpec, w, h int) error {
	if c.Radar == nil {
		return fmt.Errorf("radar chart %q has no indicators", c.Title)
	}
	header := []interface{}{"Indicator"}
	for _, s := range c.Series {
		header = append(header, s.Name)
	}
	if err := writeRow(f, sheet, 2, header...); err != nil {
		return err
	}
	for i, ind := range c.Radar.Indicators {
		row := []interface{}{strings.ReplaceAll(ind.Name, "\n", " ")}
		for _, s := range c.Series {
			if len(s.Data) > 0 && i < len(s.Data[0].Coords) {
				row = append(row, s.Data[0].Coords[i])
			}
		}
		if err := writeRow(f, sheet, i+3, row...); err != nil {
			return err
		}
	}
	last := len(c.Radar.Indicators) + 2
	chart := &excelize.Chart{
		Type:      excelize.Radar,
		Dimension: dimension(w, h),
		Legend:    excelize.ChartLegend{Position: legendPosition(c.Legend)},
		Title:     title(c),
	}
	for i, s := range c.Series {
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$2", sheet, columnName(i+2)),
			Categories: ref(sheet, 1, 3, last),
			Values:     ref(sheet, i+2, 3, last),
			Line:       excelize.ChartLine{Width: s.LineWidth},
			Fill:       solid(s.Color),
		})
	}
	return f.AddChart(sheet, chartAnchor, chart)
}

// writeScatter gives each series an x, y and size column. Charts whose
// series are single sized points become bubble charts.
func writeScatter(f *excelize.File, sheet string, c *spec.ChartSpec, w, h int) error {
	bubble := len(c.Series) > 1
	for _, s := range c.Series {
		if len(s.Data) != 1 || s.SymbolSize == 0 {
			bubble = false
		}
	}

	xs, ys := c.AxesOf(spec.X), c.AxesOf(spec.Y)
	chartType := excelize.Scatter
	if bubble {
		chartType = excelize.Bubble
	}
	chart := &excelize.Chart{
		Type:      chartType,
		Dimension: dimension(w, h),
		Legend:    excelize.ChartLegend{Position: legendPosition(c.Legend)},
		Title:     title(c),
		XAxis:     axis(xs[0]),
		YAxis:     axis(ys[0]),
	}

	for i, s := range c.Series {
		col := 3*i + 1
		if err := f.SetCellValue(sheet, cell(col, 2), s.Name); err != nil {
			return err
		}
		for j, d := range s.Data {
			size := d.Size
			if size == 0 {
				size = s.SymbolSize
			}
			if err := f.SetSheetRow(sheet, cell(col, j+3), &[]interface{}{d.Coords[0], d.Coords[1], size}); err != nil {
				return err
			}
		}
		last := len(s.Data) + 2
		series := excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$2", sheet, columnName(col)),
			Categories: ref(sheet, col, 3, last),
			Values:     ref(sheet, col+1, 3, last),
			Fill:       solid(s.Color),
			Marker:     excelize.ChartMarker{Symbol: "circle", Size: markerSize(s.SymbolSize)},
		}
		if bubble {
			series.Sizes = ref(sheet, col+2, 3, last)
		}
		chart.Series = append(chart.Series, series)
	}
	return f.AddChart(sheet, chartAnchor, chart)
}

// markerSize maps a symbol size in pixels onto Excel's 2..72 marker range.
func markerSize(px float64) int {
	if px <= 0 {
		return 5
	}
	return int(math.Max(2, math.Min(72, px/2)))
}

func writeGauge(f *excelize.File, sheet string, c *spec.ChartSpec) error {
	g := c.Gauge
	if g == nil {
		return fmt.Errorf("gauge chart %q has no dial", c.Title)
	}
	rows := [][]interface{}{
		{"Name", g.Name},
		{"Value", g.Value},
		{"Min", g.Min},
		{"Max", g.Max},
		{"Level", g.Level()},
		{},
		{"Upper", "Band"},
	}
	for _, b := range g.Bands {
		rows = append(rows, []interface{}{b.Upper, b.Label})
	}
	for i, r := range rows {
		if err := writeRow(f, sheet, i+2, r...); err != nil {
			return err
		}
	}
	return nil
}

func writeNamed(f *excelize.File, sheet string, c *spec.ChartSpec) error {
	row := 2
	if err := writeRow(f, sheet, row, "Name", "Value"); err != nil {
		return err
	}
	for _, s := range c.Series {
		for _, d := range s.Data {
			row++
			if err := writeRow(f, sheet, row, d.Name, d.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeGrid writes heatmap cells as a matrix: x categories across, y
// categories down.
func writeGrid(f *excelize.File, sheet string, c *spec.ChartSpec) error {
	xa, ya := c.AxesOf(spec.X), c.AxesOf(spec.Y)
	if len(xa) == 0 || len(ya) == 0 {
		return fmt.Errorf("heatmap %q needs two category axes", c.Title)
	}
	header := []interface{}{""}
	for _, x := range xa[0].Categories {
		header = append(header, x)
	}
	if err := writeRow(f, sheet, 2, header...); err != nil {
		return err
	}
	for i, y := range ya[0].Categories {
		if err := f.SetCellValue(sheet, cell(1, i+3), y); err != nil {
			return err
		}
	}
	for _, s := range c.Series {
		for _, d := range s.Data {
			x, y := int(d.Coords[0]), int(d.Coords[1])
			if err := f.SetCellValue(sheet, cell(x+2, y+3), d.Coords[2]); err != nil {
				return err
			}
		}
	}
	return nil
}
