package effect

import "strings"

// Type identifies one of the four effects.
type Type string

const (
	Glow     Type = "glow"
	Glass    Type = "glass"
	Neomorph Type = "neomorph"
	Clay     Type = "clay"
)

// Types lists the effects in display order.
var Types = []Type{Glow, Glass, Neomorph, Clay}

// Title returns the capitalized effect name, e.g. "Glow".
func (t Type) Title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// ParseType returns the effect named s.
func ParseType(s string) (Type, bool) {
	for _, t := range Types {
		if string(t) == strings.ToLower(s) {
			return t, true
		}
	}
	return "", false
}

// ThemeMode is the preview background mode.
type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
	ThemeAuto  ThemeMode = "auto"
)

// ThemeModes lists the modes in cycle order.
var ThemeModes = []ThemeMode{ThemeDark, ThemeLight, ThemeAuto}

// Next returns the mode after m in cycle order.
func (m ThemeMode) Next() ThemeMode {
	for i, mode := range ThemeModes {
		if mode == m {
			return ThemeModes[(i+1)%len(ThemeModes)]
		}
	}
	return ThemeDark
}

// Animation is the glow animation style.
type Animation string

const (
	AnimationNone    Animation = "none"
	AnimationPulse   Animation = "pulse"
	AnimationBreathe Animation = "breathe"
	AnimationWave    Animation = "wave"
)

// Shape is the neomorphic surface shape.
type Shape string

const (
	ShapeFlat    Shape = "flat"
	ShapeConcave Shape = "concave"
	ShapeConvex  Shape = "convex"
	ShapePressed Shape = "pressed"
)

// Inset reports whether the shape is drawn with inner shadows.
func (s Shape) Inset() bool {
	return s == ShapePressed || s == ShapeConcave
}

// Texture is the clay surface texture.
type Texture string

const (
	TextureSmooth Texture = "smooth"
	TextureMatte  Texture = "matte"
	TextureGlossy Texture = "glossy"
)

// ShadowDirection is the corner the clay shadow falls toward.
type ShadowDirection string

const (
	ShadowTopLeft     ShadowDirection = "top-left"
	ShadowTopRight    ShadowDirection = "top-right"
	ShadowBottomLeft  ShadowDirection = "bottom-left"
	ShadowBottomRight ShadowDirection = "bottom-right"
)

// Offset returns the shadow offset for a clay depth.
func (d ShadowDirection) Offset(depth float64) (x, y float64) {
	o := depth * 3.5
	switch d {
	case ShadowTopLeft:
		return -o, -o
	case ShadowTopRight:
		return o, -o
	case ShadowBottomLeft:
		return -o, o
	default:
		return o, o
	}
}

// GlowSettings configures the glow effect.
type GlowSettings struct {
	Lightness          float64   `json:"lightness"`
	Chroma             float64   `json:"chroma"`
	Hue                float64   `json:"hue"`
	BaseColor          string    `json:"baseColor"`
	Animation          Animation `json:"animation"`
	AnimationSpeed     float64   `json:"animationSpeed"`
	AnimationIntensity float64   `json:"animationIntensity"`
	MaskSize           float64   `json:"maskSize"`
	GlowScale          float64   `json:"glowScale"`
	NoiseEnabled       bool      `json:"noiseEnabled"`
	NoiseIntensity     float64   `json:"noiseIntensity"`
}

// BlurSettings positions the blurred glow behind the preview.
type BlurSettings struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GlassSettings configures the glassmorphism effect.
type GlassSettings struct {
	Blur          float64 `json:"blur"`
	Opacity       float64 `json:"opacity"`
	Saturation    float64 `json:"saturation"`
	BorderWidth   float64 `json:"borderWidth"`
	BorderOpacity float64 `json:"borderOpacity"`
	Tint          string  `json:"tint"`
	TintStrength  float64 `json:"tintStrength"`
}

// NeomorphSettings configures the neomorphism effect.
type NeomorphSettings struct {
	Distance     float64 `json:"distance"`
	Blur         float64 `json:"blur"`
	Intensity    float64 `json:"intensity"`
	Shape        Shape   `json:"shape"`
	LightSource  float64 `json:"lightSource"`
	SurfaceColor string  `json:"surfaceColor"`
}

// ClaySettings configures the claymorphism effect.
type ClaySettings struct {
	Depth           float64         `json:"depth"`
	Spread          float64         `json:"spread"`
	BorderRadius    float64         `json:"borderRadius"`
	HighlightColor  string          `json:"highlightColor"`
	ShadowColor     string          `json:"shadowColor"`
	SurfaceTexture  Texture         `json:"surfaceTexture"`
	BendAngle       float64         `json:"bendAngle"`
	Opacity         float64         `json:"opacity"`
	Blur            float64         `json:"blur"`
	ShadowDirection ShadowDirection `json:"shadowDirection"`
}

// ActiveEffects records which effects are switched on.
type ActiveEffects struct {
	Glow     bool `json:"glow"`
	Glass    bool `json:"glass"`
	Neomorph bool `json:"neomorph"`
	Clay     bool `json:"clay"`
}

// Get returns whether t is active.
func (a ActiveEffects) Get(t Type) bool {
	switch t {
	case Glow:
		return a.Glow
	case Glass:
		return a.Glass
	case Neomorph:
		return a.Neomorph
	case Clay:
		return a.Clay
	}
	return false
}

// With returns a copy of a with t set to on.
func (a ActiveEffects) With(t Type, on bool) ActiveEffects {
	switch t {
	case Glow:
		a.Glow = on
	case Glass:
		a.Glass = on
	case Neomorph:
		a.Neomorph = on
	case Clay:
		a.Clay = on
	}
	return a
}

// Count returns the number of active effects.
func (a ActiveEffects) Count() int {
	n := 0
	for _, t := range Types {
		if a.Get(t) {
			n++
		}
	}
	return n
}

// State is the complete editable state.
type State struct {
	PowerOn       bool             `json:"powerOn"`
	ActiveEffects ActiveEffects    `json:"activeEffects"`
	ThemeMode     ThemeMode        `json:"themeMode"`
	Glow          GlowSettings     `json:"glowSettings"`
	Blur          BlurSettings     `json:"blurSettings"`
	Glass         GlassSettings    `json:"glassSettings"`
	Neomorph      NeomorphSettings `json:"neomorphSettings"`
	Clay          ClaySettings     `json:"claySettings"`
}

// Default blur position of the glow.
const (
	DefaultBlurX = -590
	DefaultBlurY = -1070
)

// DefaultGlow returns the default glow settings.
func DefaultGlow() GlowSettings {
	return GlowSettings{
		Lightness:          78,
		Chroma:             0.18,
		Hue:                70,
		BaseColor:          "#FF9F00",
		Animation:          AnimationNone,
		AnimationSpeed:     2,
		AnimationIntensity: 50,
		MaskSize:           0.3,
		GlowScale:          0.9,
		NoiseEnabled:       true,
		NoiseIntensity:     0.35,
	}
}

// DefaultBlur returns the default blur position.
func DefaultBlur() BlurSettings {
	return BlurSettings{X: DefaultBlurX, Y: DefaultBlurY}
}

// DefaultGlass returns the default glass settings.
func DefaultGlass() GlassSettings {
	return GlassSettings{
		Blur:          12,
		Opacity:       20,
		Saturation:    120,
		BorderWidth:   1,
		BorderOpacity: 20,
		Tint:          "#ffffff",
		TintStrength:  10,
	}
}

// DefaultNeomorph returns the default neomorph settings.
func DefaultNeomorph() NeomorphSettings {
	return NeomorphSettings{
		Distance:     10,
		Blur:         30,
		Intensity:    50,
		Shape:        ShapeFlat,
		LightSource:  145,
		SurfaceColor: "#2a2a2a",
	}
}

// DefaultClay returns the default clay settings.
func DefaultClay() ClaySettings {
	return ClaySettings{
		Depth:           10,
		Spread:          10,
		BorderRadius:    24,
		HighlightColor:  "#ffffff",
		ShadowColor:     "#000000",
		SurfaceTexture:  TextureSmooth,
		BendAngle:       0,
		Opacity:         100,
		Blur:            20,
		ShadowDirection: ShadowBottomRight,
	}
}

// Default returns the state the editor starts with.
func Default() State {
	return State{
		PowerOn:       true,
		ActiveEffects: ActiveEffects{Glow: true},
		ThemeMode:     ThemeDark,
		Glow:          DefaultGlow(),
		Blur:          DefaultBlur(),
		Glass:         DefaultGlass(),
		Neomorph:      DefaultNeomorph(),
		Clay:          DefaultClay(),
	}
}

// Normalize replaces unknown enumeration values with their defaults.
func Normalize(s State) State {
	switch s.ThemeMode {
	case ThemeDark, ThemeLight, ThemeAuto:
	default:
		s.ThemeMode = ThemeDark
	}
	switch s.Glow.Animation {
	case AnimationNone, AnimationPulse, AnimationBreathe, AnimationWave:
	default:
		s.Glow.Animation = AnimationNone
	}
	switch s.Neomorph.Shape {
	case ShapeFlat, ShapeConcave, ShapeConvex, ShapePressed:
	default:
		s.Neomorph.Shape = ShapeFlat
	}
	switch s.Clay.SurfaceTexture {
	case TextureSmooth, TextureMatte, TextureGlossy:
	default:
		s.Clay.SurfaceTexture = TextureSmooth
	}
	switch s.Clay.ShadowDirection {
	case ShadowTopLeft, ShadowTopRight, ShadowBottomLeft, ShadowBottomRight:
	default:
		s.Clay.ShadowDirection = ShadowBottomRight
	}
	return s
}
