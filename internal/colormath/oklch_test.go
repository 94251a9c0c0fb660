package colormath

import (
	"math"
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func channels(t *testing.T, hex string) [3]int {
	t.Helper()
	c, ok := ParseHex(hex)
	require.True(t, ok, "ParseHex(%q)", hex)
	return [3]int{
		int(math.Round(c.R * 255)),
		int(math.Round(c.G * 255)),
		int(math.Round(c.B * 255)),
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want [3]float64
	}{
		{"#FF9F00", true, [3]float64{1, 159.0 / 255, 0}},
		{"ff9f00", true, [3]float64{1, 159.0 / 255, 0}},
		{"#000000", true, [3]float64{0, 0, 0}},
		{"#fff", false, [3]float64{}},
		{"#GG0000", false, [3]float64{}},
		{"", false, [3]float64{}},
		{"##FF9F00", false, [3]float64{}},
		{"#FF9F001", false, [3]float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHex(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want[0], got.R, 1e-12)
			assert.InDelta(t, tt.want[1], got.G, 1e-12)
			assert.InDelta(t, tt.want[2], got.B, 1e-12)
			assert.Equal(t, tt.ok, IsHex(tt.in))
		})
	}
}

func TestHexToOklchMalformed(t *testing.T) {
	for _, in := range []string{"", "#12", "zzzzzz", "#12345g", "rgb(1,2,3)"} {
		assert.Equal(t, LCH{}, HexToOklch(in), "HexToOklch(%q)", in)
	}
}

func TestHexToOklchKnownValues(t *testing.T) {
	white := HexToOklch("#FFFFFF")
	assert.InDelta(t, 1.0, white.L, 1e-4)
	assert.InDelta(t, 0.0, white.C, 1e-4)

	black := HexToOklch("#000000")
	assert.InDelta(t, 0.0, black.L, 1e-9)
	assert.InDelta(t, 0.0, black.C, 1e-9)

	red := HexToOklch("#FF0000")
	assert.InDelta(t, 0.6279, red.L, 1e-3)
	assert.InDelta(t, 0.2577, red.C, 1e-3)
	assert.InDelta(t, 29.23, red.H, 0.1)
}

func TestHexToOklchMatchesReference(t *testing.T) {
	for _, hex := range []string{"#FF9F00", "#10B981", "#3B82F6", "#A855F7", "#FB7185", "#06B6D4"} {
		t.Run(hex, func(t *testing.T) {
			ref, err := colorful.Hex(hex)
			require.NoError(t, err)
			l, c, h := ref.OkLch()

			got := HexToOklch(hex)
			assert.InDelta(t, l, got.L, 2e-3)
			assert.InDelta(t, c, got.C, 2e-3)
			assert.InDelta(t, h, got.H, 0.5)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	hexes := []string{"#FF9F00", "#000000", "#FFFFFF", "#808080", "#10B981", "#2a2a2a", "#0F172A", "#EC4899"}

	for _, hex := range hexes {
		t.Run(hex, func(t *testing.T) {
			lch := HexToOklch(hex)
			back := OklchToHex(lch.L, lch.C, lch.H)

			want := channels(t, hex)
			got := channels(t, back)
			for i := range want {
				assert.LessOrEqual(t, abs(want[i]-got[i]), 1, "channel %d of %s -> %s", i, hex, back)
			}
		})
	}
}

func TestOklchToHexFormat(t *testing.T) {
	got := OklchToHex(0.5, 0.1, 200)
	assert.Len(t, got, 7)
	assert.Equal(t, strings.ToLower(got), got)
	assert.Equal(t, strings.ToUpper(got), OklchToHexUpper(0.5, 0.1, 200))
	assert.Equal(t, "#000000", OklchToHex(0, 0, 0))
	assert.Equal(t, "#ffffff", OklchToHex(1, 0, 0))
}

func TestOutOfGamutClamps(t *testing.T) {
	tests := []struct {
		l, c, h float64
	}{
		{1, 0.4, 140},
		{0.02, 0.37, 300},
		{1.5, 2, 10},
		{-0.5, 0.3, 45},
		{0.7, 0.5, -720},
	}

	for _, tt := range tests {
		rgb := OklchToRGB(tt.l, tt.c, tt.h)
		for _, v := range []float64{rgb.R, rgb.G, rgb.B} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
		assert.True(t, IsHex(OklchToHex(tt.l, tt.c, tt.h)))
	}
}

func TestHueRange(t *testing.T) {
	// Sweep a coarse grid of saturated colors, including ones with negative atan2.
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				c := RGBToOklch(RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255})
				assert.GreaterOrEqual(t, c.H, 0.0)
				assert.Less(t, c.H, 360.0)
			}
		}
	}
	blue := HexToOklch("#0000FF")
	assert.Greater(t, blue.H, 180.0)
}

func TestFormatOklch(t *testing.T) {
	tests := []struct {
		l, c, h float64
		want    string
	}{
		{78, 0.18, 70, "oklch(0.78 0.180 70)"},
		{150, 0.9, 400, "oklch(1.00 0.400 40)"},
		{-5, -1, 359.5, "oklch(0.00 0.000 359.5)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatOklch(tt.l, tt.c, tt.h))
	}
}

func TestLCHString(t *testing.T) {
	assert.Equal(t, "oklch(0.5000 0.1000 200.00)", LCH{0.5, 0.1, 200}.String())
	assert.Equal(t, OklchToHex(0.5, 0.1, 200), LCH{0.5, 0.1, 200}.Hex())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
