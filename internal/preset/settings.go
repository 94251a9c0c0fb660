package preset

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/dshills/softglow/internal/effect"
)

// SettingsPatch is a partially imported settings file. Only the sections
// present in the file are set, and within them only the fields present.
type SettingsPatch struct {
	Glow          *effect.GlowPatch     `json:"glow,omitempty"`
	Glass         *effect.GlassPatch    `json:"glass,omitempty"`
	Neomorph      *effect.NeomorphPatch `json:"neomorph,omitempty"`
	Clay          *effect.ClayPatch     `json:"clay,omitempty"`
	ActiveEffects *ActiveEffectsPatch   `json:"activeEffects,omitempty"`
}

// ActiveEffectsPatch switches only the effects it names.
type ActiveEffectsPatch struct {
	Glow     *bool `json:"glow,omitempty"`
	Glass    *bool `json:"glass,omitempty"`
	Neomorph *bool `json:"neomorph,omitempty"`
	Clay     *bool `json:"clay,omitempty"`
}

// Apply returns a with the named effects switched.
func (p ActiveEffectsPatch) Apply(a effect.ActiveEffects) effect.ActiveEffects {
	for t, v := range map[effect.Type]*bool{
		effect.Glow:     p.Glow,
		effect.Glass:    p.Glass,
		effect.Neomorph: p.Neomorph,
		effect.Clay:     p.Clay,
	} {
		if v != nil {
			a = a.With(t, *v)
		}
	}
	return a
}

// Empty reports whether the patch sets nothing.
func (p SettingsPatch) Empty() bool {
	return p.Glow == nil && p.Glass == nil && p.Neomorph == nil && p.Clay == nil && p.ActiveEffects == nil
}

// ApplyTo returns s with the patch applied.
func (p SettingsPatch) ApplyTo(s effect.State) effect.State {
	if p.Glow != nil {
		s.Glow = p.Glow.Apply(s.Glow)
	}
	if p.Glass != nil {
		s.Glass = p.Glass.Apply(s.Glass)
	}
	if p.Neomorph != nil {
		s.Neomorph = p.Neomorph.Apply(s.Neomorph)
	}
	if p.Clay != nil {
		s.Clay = p.Clay.Apply(s.Clay)
	}
	if p.ActiveEffects != nil {
		s.ActiveEffects = p.ActiveEffects.Apply(s.ActiveEffects)
	}
	return effect.Normalize(s)
}

// ExportSettings encodes settings as an indented settings file.
func ExportSettings(s Settings) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}
	return pretty.Pretty(data), nil
}

// ImportSettings decodes a settings file.
func ImportSettings(data []byte) (SettingsPatch, error) {
	if !gjson.ValidBytes(data) {
		return SettingsPatch{}, effect.ErrInvalidJSON
	}
	if !gjson.ParseBytes(data).IsObject() {
		return SettingsPatch{}, effect.ErrNotObject
	}

	var p SettingsPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return SettingsPatch{}, fmt.Errorf("import settings: %w", err)
	}
	return p, nil
}
