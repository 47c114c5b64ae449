package tooltip

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueFormatters(t *testing.T) {
	tests := []struct {
		name   string
		format ValueFormatter
		in     float64
		want   string
	}{
		{"raw integer", Raw(), 280, "280"},
		{"raw fraction", Raw(), 4.375, "4.375"},
		{"fixed", Fixed(1), 33.1, "33.1"},
		{"fixed negative", Fixed(1), -0.5, "-0.5"},
		{"thousands", Thousands(0), 6845, "6,845"},
		{"thousands small", Thousands(0), 903, "903"},
		{"currency", Currency(1), 57.2, "$57.2"},
		{"currency negative", Currency(1), -3, "-$3.0"},
		{"percent", Percent(1), 5.8, "5.8%"},
		{"raw percent", RawPercent(), 4.375, "4.375%"},
		{"signed percent negative", SignedPercent(1), -37.0, "-37.0%"},
		{"signed percent positive", SignedPercent(1), 26.5, "+26.5%"},
		{"signed", Signed(1), -2.0, "-2.0"},
		{"multiple", Multiple(1), 39.7, "39.7x"},
		{"drawdown", Drawdown(), 35, "-35%"},
		{"drawdown zero", Drawdown(), 0, "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format(tt.in))
		})
	}
}

func TestSignedPercentSignProperty(t *testing.T) {
	format := SignedPercent(1)
	for _, v := range []float64{-100, -37, -0.04, 0.04, 0, 1.4, 32.4} {
		out := format(v)
		if v < 0 {
			assert.True(t, strings.HasPrefix(out, "-"), "%v -> %s", v, out)
		} else {
			assert.True(t, strings.HasPrefix(out, "+"), "%v -> %s", v, out)
		}
	}

	assert.Equal(t, "+0.0%", format(0))
	assert.Equal(t, "+0.0%", format(math.Copysign(0, -1)))
	assert.Equal(t, "NaN%", format(math.NaN()))
}

func TestInfinityCarriesOneSign(t *testing.T) {
	assert.Equal(t, "+Inf%", SignedPercent(1)(math.Inf(1)))
	assert.Equal(t, "-Inf%", SignedPercent(1)(math.Inf(-1)))
	assert.Equal(t, "-Inf", Signed(2)(math.Inf(-1)))
	assert.Equal(t, "Inf", Fixed(1)(math.Inf(1)))
	assert.Equal(t, "-Inf", Fixed(1)(math.Inf(-1)))
	assert.Equal(t, "-Inf%", Drawdown()(math.Inf(1)))
	assert.Equal(t, "-Inf", Thousands(0)(math.Inf(-1)))
	assert.Equal(t, "-$Inf", Currency(1)(math.Inf(-1)))

	for _, f := range []ValueFormatter{Thousands(0), Currency(1), Multiple(1), Percent(1)} {
		for _, v := range []float64{math.Inf(1), math.Inf(-1)} {
			got := f(v)
			assert.NotContains(t, got, "++")
			assert.NotContains(t, got, "-+")
			assert.NotContains(t, got, "+-")
		}
	}
}
