package preset

import "github.com/dshills/softglow/internal/effect"

// Builtins returns the stock gallery in display order.
func Builtins() []Preset {
	return []Preset{
		{
			ID:          "aurora",
			Name:        "Aurora Borealis",
			Description: "Ethereal northern lights glow",
			Preview:     Preview{Gradient: []string{"#10B981", "#06B6D4", "#8B5CF6"}, BorderColor: "#10B981"},
			Settings: Settings{
				Glow:          glow(72, 0.22, 160, "#10B981", effect.AnimationBreathe, 3, 60, 0.3, 0.9, true, 0.35),
				Glass:         effect.GlassSettings{Blur: 16, Opacity: 15, Saturation: 140, BorderWidth: 1, BorderOpacity: 25, Tint: "#10B981", TintStrength: 15},
				Neomorph:      effect.NeomorphSettings{Distance: 8, Blur: 24, Intensity: 40, Shape: effect.ShapeConvex, LightSource: 145, SurfaceColor: "#0F172A"},
				Clay:          clay(8, 12, 20, "#34D399", "#064E3B", effect.TextureGlossy, 5),
				ActiveEffects: effect.ActiveEffects{Glow: true, Glass: true},
			},
		},
		{
			ID:          "sunset",
			Name:        "Golden Sunset",
			Description: "Warm amber and rose tones",
			Preview:     Preview{Gradient: []string{"#F59E0B", "#EF4444", "#EC4899"}, BorderColor: "#F59E0B"},
			Settings: Settings{
				Glow:          glow(78, 0.24, 35, "#F59E0B", effect.AnimationPulse, 2, 50, 0.3, 0.9, true, 0.35),
				Glass:         effect.GlassSettings{Blur: 20, Opacity: 25, Saturation: 130, BorderWidth: 1, BorderOpacity: 30, Tint: "#FEF3C7", TintStrength: 20},
				Neomorph:      effect.NeomorphSettings{Distance: 12, Blur: 28, Intensity: 55, Shape: effect.ShapeFlat, LightSource: 135, SurfaceColor: "#1F1F1F"},
				Clay:          clay(12, 15, 28, "#FDE68A", "#78350F", effect.TextureSmooth, 0),
				ActiveEffects: effect.ActiveEffects{Glow: true, Clay: true},
			},
		},
		{
			ID:          "neon-purple",
			Name:        "Neon Nights",
			Description: "Electric purple cyberpunk vibes",
			Preview:     Preview{Gradient: []string{"#8B5CF6", "#A855F7", "#EC4899"}, BorderColor: "#8B5CF6"},
			Settings: Settings{
				Glow:          glow(68, 0.28, 280, "#A855F7", effect.AnimationWave, 2.5, 70, 0.25, 1.0, true, 0.4),
				Glass:         effect.GlassSettings{Blur: 12, Opacity: 20, Saturation: 160, BorderWidth: 2, BorderOpacity: 40, Tint: "#C084FC", TintStrength: 25},
				Neomorph:      effect.NeomorphSettings{Distance: 10, Blur: 35, Intensity: 60, Shape: effect.ShapeConvex, LightSource: 120, SurfaceColor: "#1E1B4B"},
				Clay:          clay(15, 18, 32, "#E9D5FF", "#4C1D95", effect.TextureGlossy, -5),
				ActiveEffects: effect.ActiveEffects{Glow: true, Glass: true, Neomorph: true},
			},
		},
		{
			ID:          "ocean-depth",
			Name:        "Ocean Depth",
			Description: "Deep sea blues and teals",
			Preview:     Preview{Gradient: []string{"#0EA5E9", "#06B6D4", "#14B8A6"}, BorderColor: "#06B6D4"},
			Settings: Settings{
				Glow:          glow(65, 0.2, 195, "#06B6D4", effect.AnimationBreathe, 4, 40, 0.35, 0.85, true, 0.3),
				Glass:         effect.GlassSettings{Blur: 18, Opacity: 18, Saturation: 150, BorderWidth: 1, BorderOpacity: 20, Tint: "#0891B2", TintStrength: 12},
				Neomorph:      effect.NeomorphSettings{Distance: 6, Blur: 20, Intensity: 35, Shape: effect.ShapePressed, LightSource: 160, SurfaceColor: "#0F172A"},
				Clay:          clay(6, 10, 16, "#67E8F9", "#164E63", effect.TextureMatte, 3),
				ActiveEffects: effect.ActiveEffects{Glow: true, Glass: true},
			},
		},
		{
			ID:          "rose-gold",
			Name:        "Rose Gold",
			Description: "Elegant rose and gold tones",
			Preview:     Preview{Gradient: []string{"#FB7185", "#F472B6", "#FBBF24"}, BorderColor: "#F472B6"},
			Settings: Settings{
				Glow:          glow(75, 0.18, 350, "#FB7185", effect.AnimationNone, 2, 50, 0.3, 0.9, false, 0.2),
				Glass:         effect.GlassSettings{Blur: 14, Opacity: 22, Saturation: 125, BorderWidth: 1, BorderOpacity: 35, Tint: "#FDF2F8", TintStrength: 18},
				Neomorph:      effect.NeomorphSettings{Distance: 8, Blur: 22, Intensity: 45, Shape: effect.ShapeConvex, LightSource: 130, SurfaceColor: "#2D2D2D"},
				Clay:          clay(10, 14, 24, "#FBCFE8", "#831843", effect.TextureSmooth, 2),
				ActiveEffects: effect.ActiveEffects{Glow: true, Neomorph: true},
			},
		},
		{
			ID:          "midnight",
			Name:        "Midnight",
			Description: "Dark mode with subtle blue glow",
			Preview:     Preview{Gradient: []string{"#1E293B", "#334155", "#3B82F6"}, BorderColor: "#3B82F6"},
			Settings: Settings{
				Glow:          glow(55, 0.15, 220, "#3B82F6", effect.AnimationPulse, 3, 30, 0.4, 0.8, true, 0.25),
				Glass:         effect.GlassSettings{Blur: 10, Opacity: 12, Saturation: 110, BorderWidth: 1, BorderOpacity: 15, Tint: "#1E40AF", TintStrength: 8},
				Neomorph:      effect.NeomorphSettings{Distance: 12, Blur: 32, Intensity: 50, Shape: effect.ShapeFlat, LightSource: 145, SurfaceColor: "#0F172A"},
				Clay:          clay(8, 10, 20, "#93C5FD", "#1E3A8A", effect.TextureMatte, 0),
				ActiveEffects: effect.ActiveEffects{Glow: true, Neomorph: true},
			},
		},
	}
}

func glow(l, c, h float64, base string, anim effect.Animation, speed, intensity, mask, scale float64, noise bool, noiseIntensity float64) effect.GlowSettings {
	return effect.GlowSettings{
		Lightness:          l,
		Chroma:             c,
		Hue:                h,
		BaseColor:          base,
		Animation:          anim,
		AnimationSpeed:     speed,
		AnimationIntensity: intensity,
		MaskSize:           mask,
		GlowScale:          scale,
		NoiseEnabled:       noise,
		NoiseIntensity:     noiseIntensity,
	}
}

// clay fills the fields the gallery does not set from the defaults.
func clay(depth, spread, radius float64, highlight, shadow string, texture effect.Texture, bend float64) effect.ClaySettings {
	c := effect.DefaultClay()
	c.Depth = depth
	c.Spread = spread
	c.BorderRadius = radius
	c.HighlightColor = highlight
	c.ShadowColor = shadow
	c.SurfaceTexture = texture
	c.BendAngle = bend
	return c
}
