// Package tooltip is the shared formatting vocabulary of the dashboard:
// value formatters for axis labels and tooltips, and tooltip formatters
// that compose them into the HTML shown on hover.
package tooltip

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValueFormatter renders one numeric value for display.
type ValueFormatter func(v float64) string

var printer = message.NewPrinter(language.English)

func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func grouped(v float64, decimals int) string {
	if math.IsInf(v, 0) {
		return strings.TrimPrefix(fixed(v, decimals), "+")
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// magnitude formats |v| with body. strconv and fmt print +Inf with a
// leading "+", which is dropped so callers own the sign.
func magnitude(v float64, body func(float64) string) string {
	return strings.TrimPrefix(body(math.Abs(v)), "+")
}

// withSign prefixes "+" for v >= 0 and "-" for v < 0 and formats |v|.
// NaN carries no sign.
func withSign(v float64, body func(float64) string) string {
	switch {
	case math.IsNaN(v):
		return body(v)
	case v < 0:
		return "-" + magnitude(v, body)
	default:
		return "+" + magnitude(v, body)
	}
}

// unsigned formats |v| with body and prefixes "-" only for negatives.
func unsigned(v float64, body func(float64) string) string {
	if v < 0 {
		return "-" + magnitude(v, body)
	}
	return magnitude(v, body)
}

// Raw prints the shortest exact representation ("4.375", "280").
func Raw() ValueFormatter {
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// Fixed prints v with a fixed number of decimals.
func Fixed(decimals int) ValueFormatter {
	return func(v float64) string {
		return unsigned(v, func(a float64) string { return fixed(a, decimals) })
	}
}

// Thousands prints v with thousands separators ("6,845").
func Thousands(decimals int) ValueFormatter {
	return func(v float64) string {
		return unsigned(v, func(a float64) string { return grouped(a, decimals) })
	}
}

// Currency prints a dollar amount ("$57.2", "-$3.0").
func Currency(decimals int) ValueFormatter {
	return func(v float64) string {
		return unsigned(v, func(a float64) string { return "$" + grouped(a, decimals) })
	}
}

// Percent prints v as a percentage without a forced sign ("5.8%").
func Percent(decimals int) ValueFormatter {
	return func(v float64) string {
		return unsigned(v, func(a float64) string { return fixed(a, decimals) + "%" })
	}
}

// RawPercent prints the exact value followed by "%" ("4.375%").
func RawPercent() ValueFormatter {
	raw := Raw()
	return func(v float64) string { return raw(v) + "%" }
}

// Signed prints v with an explicit sign ("+1.1", "-2.0").
func Signed(decimals int) ValueFormatter {
	return func(v float64) string {
		return withSign(v, func(a float64) string { return fixed(a, decimals) })
	}
}

// SignedPercent prints a return with an explicit sign ("+26.5%", "-37.0%").
func SignedPercent(decimals int) ValueFormatter {
	return func(v float64) string {
		return withSign(v, func(a float64) string { return fixed(a, decimals) + "%" })
	}
}

// Multiple prints a valuation multiple ("39.7x").
func Multiple(decimals int) ValueFormatter {
	return func(v float64) string {
		return unsigned(v, func(a float64) string { return fixed(a, decimals) + "x" })
	}
}

// Drawdown prints a loss magnitude as a negative percentage ("-35%").
// Zero prints without a sign.
func Drawdown() ValueFormatter {
	raw := Raw()
	return func(v float64) string {
		if v == 0 {
			return "0%"
		}
		return "-" + magnitude(v, raw) + "%"
	}
}
