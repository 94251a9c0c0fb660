package effect

import (
	"math"

	"github.com/dshills/softglow/internal/colormath"
)

// SyncGlowFromHex sets the base color of g and derives lightness, chroma and
// hue from it. Lightness is stored as a percentage. The returned bool is false
// when hex is not a valid color, in which case g is returned unchanged.
func SyncGlowFromHex(g GlowSettings, hex string) (GlowSettings, bool) {
	rgb, ok := colormath.ParseHex(hex)
	if !ok {
		return g, false
	}
	lch := colormath.RGBToOklch(rgb)
	g.BaseColor = hex
	g.Lightness = round(lch.L*100, 1)
	g.Chroma = round(lch.C, 3)
	g.Hue = round(lch.H, 0)
	return g, true
}

// GlowColor returns the CSS oklch() color of the glow.
func GlowColor(g GlowSettings) string {
	return colormath.FormatOklch(g.Lightness, g.Chroma, g.Hue)
}

// GlowHex returns the glow color as a lowercase hex string.
func GlowHex(g GlowSettings) string {
	return colormath.OklchToHex(g.Lightness/100, g.Chroma, g.Hue)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
