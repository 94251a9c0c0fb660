// Package preset provides named bundles of effect settings: the built-in
// gallery and user captured presets.
package preset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/softglow/internal/effect"
)

// Errors returned by preset operations.
var (
	ErrEmptyName = errors.New("preset name is empty")
	ErrNotFound  = errors.New("preset not found")
	ErrBuiltin   = errors.New("built-in presets cannot be deleted")
)

// DefaultDescription is used when a custom preset is saved without one.
const DefaultDescription = "Custom preset"

// Preset is a named bundle of effect settings.
type Preset struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Custom      bool     `json:"isCustom,omitempty"`
	Preview     Preview  `json:"preview"`
	Settings    Settings `json:"settings"`
}

// Preview describes the gallery card of a preset.
type Preview struct {
	Gradient    []string `json:"gradient"`
	BorderColor string   `json:"borderColor"`
}

// Settings is the part of the effect state a preset carries.
type Settings struct {
	Glow          effect.GlowSettings     `json:"glow"`
	Glass         effect.GlassSettings    `json:"glass"`
	Neomorph      effect.NeomorphSettings `json:"neomorph"`
	Clay          effect.ClaySettings     `json:"clay"`
	ActiveEffects effect.ActiveEffects    `json:"activeEffects"`
}

// SettingsOf extracts the preset settings from s.
func SettingsOf(s effect.State) Settings {
	return Settings{
		Glow:          s.Glow,
		Glass:         s.Glass,
		Neomorph:      s.Neomorph,
		Clay:          s.Clay,
		ActiveEffects: s.ActiveEffects,
	}
}

// ApplyTo returns s with the preset settings. Power, theme and blur
// position are kept.
func (p Settings) ApplyTo(s effect.State) effect.State {
	s.Glow = p.Glow
	s.Glass = p.Glass
	s.Neomorph = p.Neomorph
	s.Clay = p.Clay
	s.ActiveEffects = p.ActiveEffects
	return effect.Normalize(s)
}

var now = time.Now

// Capture creates a custom preset from the current state.
func Capture(s effect.State, name, description string) (Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, ErrEmptyName
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultDescription
	}

	settings := SettingsOf(s)
	return Preset{
		ID:          fmt.Sprintf("custom-%d", now().UnixMilli()),
		Name:        name,
		Description: description,
		Custom:      true,
		Preview: Preview{
			Gradient:    []string{settings.Glow.BaseColor, settings.Glass.Tint},
			BorderColor: settings.Glow.BaseColor,
		},
		Settings: settings,
	}, nil
}
