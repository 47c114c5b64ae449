package charts

import (
	"marketdash/internal/spec"
	"marketdash/internal/theme"
)

// Axis ids shared by the single-grid builders.
const (
	axisX = "x"
	axisY = "y"
)

func categoryX(categories []string) spec.Axis {
	return spec.Axis{ID: axisX, Dim: spec.X, Type: spec.Category, Position: "bottom", Categories: append([]string(nil), categories...)}
}

func valueY(label spec.LabelFormat) spec.Axis {
	return spec.Axis{ID: axisY, Dim: spec.Y, Type: spec.Value, Position: "left", Label: label, SplitLine: true}
}

func values(vs []float64) []spec.Datum {
	out := make([]spec.Datum, len(vs))
	for i, v := range vs {
		out[i] = spec.Datum{Value: v}
	}
	return out
}

// signed colours each bar by the sign of its value.
func signed(vs []float64, t *theme.Theme) []spec.Datum {
	out := values(vs)
	for i := range out {
		out[i].Color = t.SignColor(out[i].Value)
	}
	return out
}

func grid(left, right, top, bottom string) *spec.Grid {
	return &spec.Grid{Left: left, Right: right, Top: top, Bottom: bottom}
}

func legend() spec.Legend {
	return spec.Legend{Show: true, Position: "top-right"}
}

// area is the fading gradient drawn under a line in colour c.
func area(s *spec.Series, c string) {
	s.AreaFrom = theme.Alpha(c, 0.12)
	s.AreaTo = theme.Alpha(c, 0)
}

var (
	percent   = spec.LabelFormat{Suffix: "%"}
	thousands = spec.LabelFormat{Thousands: true}
)
