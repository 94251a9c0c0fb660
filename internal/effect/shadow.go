package effect

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Shadow is the resolved pair of neomorphic shadows.
type Shadow struct {
	Inset bool

	LightX, LightY int
	DarkX, DarkY   int
	Blur           float64

	LightOpacity float64
	DarkOpacity  float64

	// Surface, Light and Dark are hex colors. Light and Dark are the shadow
	// colors composited over the surface.
	Surface string
	Light   string
	Dark    string
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
)

// NeomorphShadow resolves the shadows for n. The light shadow is offset toward
// the light source; the dark one is mirrored.
func NeomorphShadow(n NeomorphSettings) Shadow {
	angle := n.LightSource * math.Pi / 180
	lx := int(math.Round(math.Cos(angle) * n.Distance))
	ly := int(math.Round(math.Sin(angle) * n.Distance))

	s := Shadow{
		Inset:        n.Shape.Inset(),
		LightX:       lx,
		LightY:       ly,
		DarkX:        -lx,
		DarkY:        -ly,
		Blur:         n.Blur,
		LightOpacity: n.Intensity / 100 * 0.5,
		DarkOpacity:  n.Intensity / 100,
	}

	surface, err := colorful.Hex(n.SurfaceColor)
	if err != nil {
		surface, _ = colorful.Hex(DefaultNeomorph().SurfaceColor)
	}
	s.Surface = surface.Hex()
	s.Light = surface.BlendRgb(white, clampUnit(s.LightOpacity)).Clamped().Hex()
	s.Dark = surface.BlendRgb(black, clampUnit(s.DarkOpacity)).Clamped().Hex()
	return s
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
