package effect

// ChangeLabel builds a history label such as "Glow hue changed" from the first
// changed field. With no fields it returns "<name> changed".
func ChangeLabel(name string, fields []string) string {
	if len(fields) == 0 {
		return name + " changed"
	}
	return name + " " + fields[0] + " changed"
}

// GlowPatch is a partial update of GlowSettings.
type GlowPatch struct {
	Lightness          *float64   `json:"lightness,omitempty"`
	Chroma             *float64   `json:"chroma,omitempty"`
	Hue                *float64   `json:"hue,omitempty"`
	BaseColor          *string    `json:"baseColor,omitempty"`
	Animation          *Animation `json:"animation,omitempty"`
	AnimationSpeed     *float64   `json:"animationSpeed,omitempty"`
	AnimationIntensity *float64   `json:"animationIntensity,omitempty"`
	MaskSize           *float64   `json:"maskSize,omitempty"`
	GlowScale          *float64   `json:"glowScale,omitempty"`
	NoiseEnabled       *bool      `json:"noiseEnabled,omitempty"`
	NoiseIntensity     *float64   `json:"noiseIntensity,omitempty"`
}

// Apply returns g with the set fields of p.
func (p GlowPatch) Apply(g GlowSettings) GlowSettings {
	set(&g.Lightness, p.Lightness)
	set(&g.Chroma, p.Chroma)
	set(&g.Hue, p.Hue)
	set(&g.BaseColor, p.BaseColor)
	set(&g.Animation, p.Animation)
	set(&g.AnimationSpeed, p.AnimationSpeed)
	set(&g.AnimationIntensity, p.AnimationIntensity)
	set(&g.MaskSize, p.MaskSize)
	set(&g.GlowScale, p.GlowScale)
	set(&g.NoiseEnabled, p.NoiseEnabled)
	set(&g.NoiseIntensity, p.NoiseIntensity)
	return g
}

// Fields returns the JSON names of the set fields in declaration order.
func (p GlowPatch) Fields() []string {
	var f fieldList
	f.add("lightness", p.Lightness != nil)
	f.add("chroma", p.Chroma != nil)
	f.add("hue", p.Hue != nil)
	f.add("baseColor", p.BaseColor != nil)
	f.add("animation", p.Animation != nil)
	f.add("animationSpeed", p.AnimationSpeed != nil)
	f.add("animationIntensity", p.AnimationIntensity != nil)
	f.add("maskSize", p.MaskSize != nil)
	f.add("glowScale", p.GlowScale != nil)
	f.add("noiseEnabled", p.NoiseEnabled != nil)
	f.add("noiseIntensity", p.NoiseIntensity != nil)
	return f
}

// FullGlowPatch returns a patch that sets every field to the value in g.
func FullGlowPatch(g GlowSettings) GlowPatch {
	return GlowPatch{
		Lightness:          &g.Lightness,
		Chroma:             &g.Chroma,
		Hue:                &g.Hue,
		BaseColor:          &g.BaseColor,
		Animation:          &g.Animation,
		AnimationSpeed:     &g.AnimationSpeed,
		AnimationIntensity: &g.AnimationIntensity,
		MaskSize:           &g.MaskSize,
		GlowScale:          &g.GlowScale,
		NoiseEnabled:       &g.NoiseEnabled,
		NoiseIntensity:     &g.NoiseIntensity,
	}
}

// BlurPatch is a partial update of BlurSettings.
type BlurPatch struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
}

// Apply returns b with the set fields of p.
func (p BlurPatch) Apply(b BlurSettings) BlurSettings {
	set(&b.X, p.X)
	set(&b.Y, p.Y)
	return b
}

// Fields returns the JSON names of the set fields.
func (p BlurPatch) Fields() []string {
	var f fieldList
	f.add("x", p.X != nil)
	f.add("y", p.Y != nil)
	return f
}

// GlassPatch is a partial update of GlassSettings.
type GlassPatch struct {
	Blur          *float64 `json:"blur,omitempty"`
	Opacity       *float64 `json:"opacity,omitempty"`
	Saturation    *float64 `json:"saturation,omitempty"`
	BorderWidth   *float64 `json:"borderWidth,omitempty"`
	BorderOpacity *float64 `json:"borderOpacity,omitempty"`
	Tint          *string  `json:"tint,omitempty"`
	TintStrength  *float64 `json:"tintStrength,omitempty"`
}

// Apply returns g with the set fields of p.
func (p GlassPatch) Apply(g GlassSettings) GlassSettings {
	set(&g.Blur, p.Blur)
	set(&g.Opacity, p.Opacity)
	set(&g.Saturation, p.Saturation)
	set(&g.BorderWidth, p.BorderWidth)
	set(&g.BorderOpacity, p.BorderOpacity)
	set(&g.Tint, p.Tint)
	set(&g.TintStrength, p.TintStrength)
	return g
}

// Fields returns the JSON names of the set fields in declaration order.
func (p GlassPatch) Fields() []string {
	var f fieldList
	f.add("blur", p.Blur != nil)
	f.add("opacity", p.Opacity != nil)
	f.add("saturation", p.Saturation != nil)
	f.add("borderWidth", p.BorderWidth != nil)
	f.add("borderOpacity", p.BorderOpacity != nil)
	f.add("tint", p.Tint != nil)
	f.add("tintStrength", p.TintStrength != nil)
	return f
}

// NeomorphPatch is a partial update of NeomorphSettings.
type NeomorphPatch struct {
	Distance     *float64 `json:"distance,omitempty"`
	Blur         *float64 `json:"blur,omitempty"`
	Intensity    *float64 `json:"intensity,omitempty"`
	Shape        *Shape   `json:"shape,omitempty"`
	LightSource  *float64 `json:"lightSource,omitempty"`
	SurfaceColor *string  `json:"surfaceColor,omitempty"`
}

// Apply returns n with the set fields of p.
func (p NeomorphPatch) Apply(n NeomorphSettings) NeomorphSettings {
	set(&n.Distance, p.Distance)
	set(&n.Blur, p.Blur)
	set(&n.Intensity, p.Intensity)
	set(&n.Shape, p.Shape)
	set(&n.LightSource, p.LightSource)
	set(&n.SurfaceColor, p.SurfaceColor)
	return n
}

// Fields returns the JSON names of the set fields in declaration order.
func (p NeomorphPatch) Fields() []string {
	var f fieldList
	f.add("distance", p.Distance != nil)
	f.add("blur", p.Blur != nil)
	f.add("intensity", p.Intensity != nil)
	f.add("shape", p.Shape != nil)
	f.add("lightSource", p.LightSource != nil)
	f.add("surfaceColor", p.SurfaceColor != nil)
	return f
}

// ClayPatch is a partial update of ClaySettings.
type ClayPatch struct {
	Depth           *float64         `json:"depth,omitempty"`
	Spread          *float64         `json:"spread,omitempty"`
	BorderRadius    *float64         `json:"borderRadius,omitempty"`
	HighlightColor  *string          `json:"highlightColor,omitempty"`
	ShadowColor     *string          `json:"shadowColor,omitempty"`
	SurfaceTexture  *Texture         `json:"surfaceTexture,omitempty"`
	BendAngle       *float64         `json:"bendAngle,omitempty"`
	Opacity         *float64         `json:"opacity,omitempty"`
	Blur            *float64         `json:"blur,omitempty"`
	ShadowDirection *ShadowDirection `json:"shadowDirection,omitempty"`
}

// Apply returns c with the set fields of p.
func (p ClayPatch) Apply(c ClaySettings) ClaySettings {
	set(&c.Depth, p.Depth)
	set(&c.Spread, p.Spread)
	set(&c.BorderRadius, p.BorderRadius)
	set(&c.HighlightColor, p.HighlightColor)
	set(&c.ShadowColor, p.ShadowColor)
	set(&c.SurfaceTexture, p.SurfaceTexture)
	set(&c.BendAngle, p.BendAngle)
	set(&c.Opacity, p.Opacity)
	set(&c.Blur, p.Blur)
	set(&c.ShadowDirection, p.ShadowDirection)
	return c
}

// Fields returns the JSON names of the set fields in declaration order.
func (p ClayPatch) Fields() []string {
	var f fieldList
	f.add("depth", p.Depth != nil)
	f.add("spread", p.Spread != nil)
	f.add("borderRadius", p.BorderRadius != nil)
	f.add("highlightColor", p.HighlightColor != nil)
	f.add("shadowColor", p.ShadowColor != nil)
	f.add("surfaceTexture", p.SurfaceTexture != nil)
	f.add("bendAngle", p.BendAngle != nil)
	f.add("opacity", p.Opacity != nil)
	f.add("blur", p.Blur != nil)
	f.add("shadowDirection", p.ShadowDirection != nil)
	return f
}

// Ptr returns a pointer to v, for building patches inline.
func Ptr[T any](v T) *T {
	return &v
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

type fieldList []string

func (f *fieldList) add(name string, ok bool) {
	if ok {
		*f = append(*f, name)
	}
}
