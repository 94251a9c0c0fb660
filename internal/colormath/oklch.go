package colormath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LCH is a color in OKLCH coordinates.
type LCH struct {
	L float64 // lightness, 0..1
	C float64 // chroma, >= 0
	H float64 // hue in degrees, 0..360
}

// RGB is a gamma-encoded sRGB color with channels in 0..1.
type RGB struct {
	R, G, B float64
}

// sRGB transfer function thresholds.
const (
	encodedThreshold = 0.04045
	linearThreshold  = 0.0031308
)

// OKLab matrices.
var (
	linearToLMS = [3][3]float64{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	lmsToLab = [3][3]float64{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	lmsToLinear = [3][3]float64{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.7076147010},
	}
	labToLMS = [3][3]float64{
		{1, 0.3963377774, 0.2158037573},
		{1, -0.1055613458, -0.0638541728},
		{1, -0.0894841775, -1.2914855480},
	}
)

// ParseHex parses a six digit hex color with an optional leading '#'.
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, true
}

// IsHex reports whether s is a valid six digit hex color.
func IsHex(s string) bool {
	_, ok := ParseHex(s)
	return ok
}

// Hex formats c as lowercase "#rrggbb". Channels are clamped to 0..1 first.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// channel maps 0..1 to 0..255, rounding half away from zero.
func channel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// HexToOklch converts a hex color to OKLCH.
// Malformed input yields the zero LCH.
func HexToOklch(hex string) LCH {
	rgb, ok := ParseHex(hex)
	if !ok {
		return LCH{}
	}
	return RGBToOklch(rgb)
}

// RGBToOklch converts an sRGB color to OKLCH.
func RGBToOklch(c RGB) LCH {
	lin := [3]float64{toLinear(c.R), toLinear(c.G), toLinear(c.B)}
	lms := mul(linearToLMS, lin)
	for i := range lms {
		lms[i] = math.Cbrt(lms[i])
	}
	lab := mul(lmsToLab, lms)

	h := math.Atan2(lab[2], lab[1]) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return LCH{
		L: lab[0],
		C: math.Sqrt(lab[1]*lab[1] + lab[2]*lab[2]),
		H: h,
	}
}

// OklchToRGB converts OKLCH to sRGB, clamping each channel to 0..1.
func OklchToRGB(l, c, h float64) RGB {
	rad := h * math.Pi / 180
	lms := mul(labToLMS, [3]float64{l, c * math.Cos(rad), c * math.Sin(rad)})
	for i := range lms {
		lms[i] = lms[i] * lms[i] * lms[i]
	}
	lin := mul(lmsToLinear, lms)
	return RGB{
		R: clamp01(toEncoded(lin[0])),
		G: clamp01(toEncoded(lin[1])),
		B: clamp01(toEncoded(lin[2])),
	}
}

// OklchToHex converts OKLCH to a lowercase "#rrggbb" string.
func OklchToHex(l, c, h float64) string {
	return OklchToRGB(l, c, h).Hex()
}

// OklchToHexUpper converts OKLCH to an uppercase "#RRGGBB" string.
func OklchToHexUpper(l, c, h float64) string {
	return strings.ToUpper(OklchToHex(l, c, h))
}

// Hex converts the color to a lowercase hex string.
func (c LCH) Hex() string {
	return OklchToHex(c.L, c.C, c.H)
}

// String returns the CSS oklch() notation of c.
func (c LCH) String() string {
	return fmt.Sprintf("oklch(%.4f %.4f %.2f)", c.L, c.C, c.H)
}

// FormatOklch formats editor slider values as a CSS oklch() color.
// lightness is a percentage clamped to 0..100, chroma is clamped to 0..0.4 and
// hue is reduced modulo 360.
func FormatOklch(lightness, chroma, hue float64) string {
	l := clamp(lightness, 0, 100) / 100
	c := clamp(chroma, 0, 0.4)
	h := math.Mod(hue, 360)
	return fmt.Sprintf("oklch(%.2f %.3f %s)", l, c, strconv.FormatFloat(h, 'f', -1, 64))
}

func toLinear(v float64) float64 {
	if v > encodedThreshold {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func toEncoded(v float64) float64 {
	if v > linearThreshold {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

func mul(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
