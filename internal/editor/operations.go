package editor

import (
	"fmt"

	"github.com/dshills/softglow/internal/colormath"
	"github.com/dshills/softglow/internal/effect"
)

// TogglePower switches the preview on or off.
func (e *Editor) TogglePower() {
	e.tracker.Edit(func(s effect.State) (effect.State, string, bool) {
		s.PowerOn = !s.PowerOn
		if s.PowerOn {
			return s, "Power on", true
		}
		return s, "Power off", true
	})
}

// ToggleEffect switches effect t on or off.
func (e *Editor) ToggleEffect(t effect.Type) error {
	if _, ok := effect.ParseType(string(t)); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEffect, t)
	}
	e.tracker.Edit(func(s effect.State) (effect.State, string, bool) {
		on := !s.ActiveEffects.Get(t)
		s.ActiveEffects = s.ActiveEffects.With(t, on)
		if on {
			return s, t.Title() + " enabled", true
		}
		return s, t.Title() + " disabled", true
	})
	return nil
}

// SetThemeMode changes the preview theme. Setting the current mode is a
// no-op and records nothing.
func (e *Editor) SetThemeMode(m effect.ThemeMode) error {
	switch m {
	case effect.ThemeDark, effect.ThemeLight, effect.ThemeAuto:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTheme, m)
	}
	e.tracker.Edit(func(s effect.State) (effect.State, string, bool) {
		if s.ThemeMode == m {
			return s, "", false
		}
		s.ThemeMode = m
		return s, "Theme: " + string(m), true
	})
	return nil
}

// CycleThemeMode switches to the next theme mode.
func (e *Editor) CycleThemeMode() {
	e.tracker.Edit(func(s effect.State) (effect.State, string, bool) {
		s.ThemeMode = s.ThemeMode.Next()
		return s, "Theme: " + string(s.ThemeMode), true
	})
}

// UpdateGlow merges p into the glow settings. The entry is labelled after the
// first field set, e.g. "Glow hue changed". An empty patch records nothing.
func (e *Editor) UpdateGlow(p effect.GlowPatch) {
	fields := p.Fields()
	if len(fields) == 0 {
		return
	}
	e.tracker.Update(effect.ChangeLabel("Glow", fields), func(s effect.State) effect.State {
		s.Glow = p.Apply(s.Glow)
		return effect.Normalize(s)
	})
}

// SetGlowColor sets the glow base color and derives lightness, chroma and
// hue from it.
func (e *Editor) SetGlowColor(hex string) error {
	if !colormath.IsHex(hex) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	e.tracker.Update(effect.ChangeLabel("Glow", []string{"baseColor"}), func(s effect.State) effect.State {
		s.Glow, _ = effect.SyncGlowFromHex(s.Glow, hex)
		return s
	})
	return nil
}

// UpdateBlur merges p into the blur position.
func (e *Editor) UpdateBlur(p effect.BlurPatch) {
	if len(p.Fields()) == 0 {
		return
	}
	e.tracker.Update("Blur position changed", func(s effect.State) effect.State {
		s.Blur = p.Apply(s.Blur)
		return s
	})
}

// UpdateGlass merges p into the glass settings.
func (e *Editor) UpdateGlass(p effect.GlassPatch) {
	fields := p.Fields()
	if len(fields) == 0 {
		return
	}
	e.tracker.Update(effect.ChangeLabel("Glass", fields), func(s effect.State) effect.State {
		s.Glass = p.Apply(s.Glass)
		return s
	})
}

// UpdateNeomorph merges p into the neomorph settings.
func (e *Editor) UpdateNeomorph(p effect.NeomorphPatch) {
	fields := p.Fields()
	if len(fields) == 0 {
		return
	}
	e.tracker.Update(effect.ChangeLabel("Neomorph", fields), func(s effect.State) effect.State {
		s.Neomorph = p.Apply(s.Neomorph)
		return effect.Normalize(s)
	})
}

// UpdateClay merges p into the clay settings.
func (e *Editor) UpdateClay(p effect.ClayPatch) {
	fields := p.Fields()
	if len(fields) == 0 {
		return
	}
	e.tracker.Update(effect.ChangeLabel("Clay", fields), func(s effect.State) effect.State {
		s.Clay = p.Apply(s.Clay)
		return effect.Normalize(s)
	})
}

// ResetBlurPosition restores the default blur position.
func (e *Editor) ResetBlurPosition() {
	e.tracker.Update("Blur position reset", func(s effect.State) effect.State {
		s.Blur = effect.DefaultBlur()
		return s
	})
}

// ResetToDefaults restores the default state. It is undoable.
func (e *Editor) ResetToDefaults() {
	e.tracker.Push(effect.Default(), "Reset to defaults")
}
