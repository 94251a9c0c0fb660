package preset

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/softglow/internal/colormath"
	"github.com/dshills/softglow/internal/effect"
)

type memStore struct {
	presets []Preset
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) LoadCustomPresets() ([]Preset, error) {
	return m.presets, m.loadErr
}

func (m *memStore) SaveCustomPresets(p []Preset) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.presets = append([]Preset(nil), p...)
	return nil
}

func TestBuiltins(t *testing.T) {
	builtins := Builtins()
	ids := make([]string, len(builtins))
	for i, p := range builtins {
		ids[i] = p.ID
		assert.False(t, p.Custom, p.ID)
		assert.True(t, colormath.IsHex(p.Settings.Glow.BaseColor), p.ID)
		assert.True(t, colormath.IsHex(p.Preview.BorderColor), p.ID)
		assert.Equal(t, effect.DefaultClay().ShadowDirection, p.Settings.Clay.ShadowDirection, p.ID)
		assert.True(t, p.Settings.ActiveEffects.Glow, p.ID)
	}
	assert.Equal(t, []string{"aurora", "sunset", "neon-purple", "ocean-depth", "rose-gold", "midnight"}, ids)
}

func TestCapture(t *testing.T) {
	now = func() time.Time { return time.UnixMilli(1700000000123) }
	defer func() { now = time.Now }()

	s := effect.Default()
	s.Glass.Tint = "#123456"

	p, err := Capture(s, "  Mine  ", "   ")
	require.NoError(t, err)
	assert.Equal(t, "custom-1700000000123", p.ID)
	assert.Equal(t, "Mine", p.Name)
	assert.Equal(t, DefaultDescription, p.Description)
	assert.True(t, p.Custom)
	assert.Equal(t, []string{"#FF9F00", "#123456"}, p.Preview.Gradient)
	assert.Equal(t, "#FF9F00", p.Preview.BorderColor)
	assert.Equal(t, SettingsOf(s), p.Settings)

	_, err = Capture(s, "   ", "x")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestSettingsApplyTo(t *testing.T) {
	s := effect.Default()
	s.PowerOn = false
	s.ThemeMode = effect.ThemeLight
	s.Blur.X = 5

	aurora := Builtins()[0]
	got := aurora.Settings.ApplyTo(s)

	assert.False(t, got.PowerOn)
	assert.Equal(t, effect.ThemeLight, got.ThemeMode)
	assert.Equal(t, 5.0, got.Blur.X)
	assert.Equal(t, aurora.Settings, SettingsOf(got))
}

func TestCatalog(t *testing.T) {
	store := &memStore{presets: []Preset{{ID: "custom-1", Name: "One"}, {Name: "no id"}}}
	c, err := NewCatalog(store)
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, len(Builtins())+1)
	assert.Equal(t, "aurora", all[0].ID)
	assert.Equal(t, "custom-1", all[len(all)-1].ID)
	assert.True(t, all[len(all)-1].Custom)

	p, ok := c.Find("midnight")
	assert.True(t, ok)
	assert.Equal(t, "Midnight", p.Name)

	require.NoError(t, c.Add(Preset{ID: "custom-2", Name: "Two"}))
	assert.Equal(t, 1, store.saves)
	assert.Len(t, store.presets, 2)

	require.NoError(t, c.Add(Preset{ID: "custom-2", Name: "Two again"}))
	p, _ = c.Find("custom-2")
	assert.Equal(t, "Two again", p.Name)
	assert.Len(t, c.Custom(), 2)

	assert.ErrorIs(t, c.Delete("sunset"), ErrBuiltin)
	assert.ErrorIs(t, c.Delete("custom-9"), ErrNotFound)

	require.NoError(t, c.Delete("custom-1"))
	_, ok = c.Find("custom-1")
	assert.False(t, ok)
	assert.Len(t, store.presets, 1)

	assert.ErrorIs(t, c.Add(Preset{ID: "custom-3"}), ErrEmptyName)
}

func TestCatalogStoreErrors(t *testing.T) {
	boom := errors.New("disk full")

	c, err := NewCatalog(&memStore{loadErr: boom})
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, c)
	assert.Len(t, c.All(), len(Builtins()))

	store := &memStore{saveErr: boom}
	c, err = NewCatalog(store)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Add(Preset{ID: "custom-1", Name: "x"}), boom)
	assert.Empty(t, c.Custom(), "failed save should not change the catalog")
}

func TestCatalogInMemory(t *testing.T) {
	c, err := NewCatalog(nil)
	require.NoError(t, err)
	require.NoError(t, c.Add(Preset{ID: "custom-1", Name: "x"}))
	assert.Len(t, c.Custom(), 1)
}

func TestExportImportSettings(t *testing.T) {
	settings := Builtins()[2].Settings
	data, err := ExportSettings(settings)
	require.NoError(t, err)

	patch, err := ImportSettings(data)
	require.NoError(t, err)
	assert.False(t, patch.Empty())

	got := patch.ApplyTo(effect.Default())
	assert.Equal(t, settings, SettingsOf(got))
}

func TestImportSettingsPartial(t *testing.T) {
	patch, err := ImportSettings([]byte(`{"glow": {"hue": 12}, "activeEffects": {"clay": true}}`))
	require.NoError(t, err)
	assert.Nil(t, patch.Glass)

	got := patch.ApplyTo(effect.Default())
	want := effect.Default()
	want.Glow.Hue = 12
	want.ActiveEffects.Clay = true
	assert.Equal(t, want, got)
}

func TestImportSettingsErrors(t *testing.T) {
	_, err := ImportSettings([]byte(`{`))
	assert.ErrorIs(t, err, effect.ErrInvalidJSON)

	_, err = ImportSettings([]byte(`"glow"`))
	assert.ErrorIs(t, err, effect.ErrNotObject)

	_, err = ImportSettings([]byte(`{"glow": {"hue": "red"}}`))
	assert.Error(t, err)

	patch, err := ImportSettings([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, patch.Empty())
}
