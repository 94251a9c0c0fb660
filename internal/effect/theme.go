package effect

import (
	"encoding/json"
	"fmt"
)

// Theme is the UI theme customizer configuration. It is stored next to the
// effect state but is not part of the undo history.
type Theme struct {
	Mode             string      `json:"mode"`
	Shape            string      `json:"shape"`
	Colors           ThemeColors `json:"colors"`
	SolidStyle       string      `json:"solidStyle"`
	EffectStyle      string      `json:"effectStyle"`
	Surface          string      `json:"surface"`
	Scaling          float64     `json:"scaling"`
	DataStyle        string      `json:"dataStyle"`
	Transition       string      `json:"transition"`
	BorderWidth      float64     `json:"borderWidth"`
	DepthEffect      bool        `json:"depthEffect"`
	NoiseEffect      bool        `json:"noiseEffect"`
	FieldBaseSize    float64     `json:"fieldBaseSize"`
	SelectorBaseSize float64     `json:"selectorBaseSize"`
}

// ThemeColors holds HSL triplets such as "217 91% 60%".
type ThemeColors struct {
	Primary string `json:"primary"`
	Accent  string `json:"accent"`
	Neutral string `json:"neutral"`
}

// DefaultTheme returns the stock theme.
func DefaultTheme() Theme {
	return Theme{
		Mode:  "dark",
		Shape: "rounded",
		Colors: ThemeColors{
			Primary: "217 91% 60%",
			Accent:  "280 85% 65%",
			Neutral: "slate",
		},
		SolidStyle:       "color",
		EffectStyle:      "flat",
		Surface:          "filled",
		Scaling:          100,
		DataStyle:        "categorical",
		Transition:       "all",
		BorderWidth:      1,
		FieldBaseSize:    4,
		SelectorBaseSize: 4,
	}
}

// ThemeColorsPatch is a partial update of ThemeColors.
type ThemeColorsPatch struct {
	Primary *string `json:"primary,omitempty"`
	Accent  *string `json:"accent,omitempty"`
	Neutral *string `json:"neutral,omitempty"`
}

// ThemePatch is a partial update of Theme. Colors merge field by field.
type ThemePatch struct {
	Mode             *string           `json:"mode,omitempty"`
	Shape            *string           `json:"shape,omitempty"`
	Colors           *ThemeColorsPatch `json:"colors,omitempty"`
	SolidStyle       *string           `json:"solidStyle,omitempty"`
	EffectStyle      *string           `json:"effectStyle,omitempty"`
	Surface          *string           `json:"surface,omitempty"`
	Scaling          *float64          `json:"scaling,omitempty"`
	DataStyle        *string           `json:"dataStyle,omitempty"`
	Transition       *string           `json:"transition,omitempty"`
	BorderWidth      *float64          `json:"borderWidth,omitempty"`
	DepthEffect      *bool             `json:"depthEffect,omitempty"`
	NoiseEffect      *bool             `json:"noiseEffect,omitempty"`
	FieldBaseSize    *float64          `json:"fieldBaseSize,omitempty"`
	SelectorBaseSize *float64          `json:"selectorBaseSize,omitempty"`
}

// Apply returns t with the set fields of p.
func (p ThemePatch) Apply(t Theme) Theme {
	set(&t.Mode, p.Mode)
	set(&t.Shape, p.Shape)
	if p.Colors != nil {
		set(&t.Colors.Primary, p.Colors.Primary)
		set(&t.Colors.Accent, p.Colors.Accent)
		set(&t.Colors.Neutral, p.Colors.Neutral)
	}
	set(&t.SolidStyle, p.SolidStyle)
	set(&t.EffectStyle, p.EffectStyle)
	set(&t.Surface, p.Surface)
	set(&t.Scaling, p.Scaling)
	set(&t.DataStyle, p.DataStyle)
	set(&t.Transition, p.Transition)
	set(&t.BorderWidth, p.BorderWidth)
	set(&t.DepthEffect, p.DepthEffect)
	set(&t.NoiseEffect, p.NoiseEffect)
	set(&t.FieldBaseSize, p.FieldBaseSize)
	set(&t.SelectorBaseSize, p.SelectorBaseSize)
	return t
}

// DecodeTheme decodes a stored theme over the defaults.
func DecodeTheme(data []byte) (Theme, error) {
	var p ThemePatch
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultTheme(), fmt.Errorf("decode theme: %w", err)
	}
	return p.Apply(DefaultTheme()), nil
}
