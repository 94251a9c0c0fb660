package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/softglow/internal/editor"
	"github.com/dshills/softglow/internal/effect"
	"github.com/dshills/softglow/internal/input/shortcut"
	"github.com/dshills/softglow/internal/preset"
)

func newTestUI(t *testing.T, opts ...Option) (*UI, *editor.Editor, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(140, 30)

	ed := editor.New(effect.Default())
	return New(screen, ed, opts...), ed, screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// row returns the text on screen line y.
func row(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y) //nolint:staticcheck
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestToggleKeys(t *testing.T) {
	ui, ed, _ := newTestUI(t)

	ui.HandleKey(char('2'))
	ui.HandleKey(char('4'))
	ui.HandleKey(char('1'))
	ui.HandleKey(char('p'))
	ui.HandleKey(char('t'))

	s := ed.State()
	want := effect.ActiveEffects{Glass: true, Clay: true}
	if s.ActiveEffects != want {
		t.Errorf("ActiveEffects = %+v, want %+v", s.ActiveEffects, want)
	}
	if s.PowerOn {
		t.Error("PowerOn should be false")
	}
	if s.ThemeMode != effect.ThemeLight {
		t.Errorf("ThemeMode = %s, want light", s.ThemeMode)
	}
	if got := ed.Stats().PastCount; got != 5 {
		t.Errorf("PastCount = %d, want 5", got)
	}
}

func TestArrowKeys(t *testing.T) {
	ui, ed, _ := newTestUI(t)

	ui.HandleKey(key(tcell.KeyLeft))
	if got := ed.State().Glow.Hue; got != 60 {
		t.Errorf("hue after left = %v, want 60", got)
	}
	for i := 0; i < 7; i++ {
		ui.HandleKey(key(tcell.KeyLeft))
	}
	if got := ed.State().Glow.Hue; got != 350 {
		t.Errorf("hue wraps to %v, want 350", got)
	}
	ui.HandleKey(key(tcell.KeyRight))
	if got := ed.State().Glow.Hue; got != 0 {
		t.Errorf("hue after right = %v, want 0", got)
	}

	ui.HandleKey(key(tcell.KeyUp))
	if got := ed.State().Glow.Lightness; got != 80 {
		t.Errorf("lightness after up = %v, want 80", got)
	}
	for i := 0; i < 20; i++ {
		ui.HandleKey(key(tcell.KeyUp))
	}
	if got := ed.State().Glow.Lightness; got != 100 {
		t.Errorf("lightness clamps to %v, want 100", got)
	}

	past := ed.History().Past
	if got := past[len(past)-1].Label; got != "Glow lightness changed" {
		t.Errorf("last label = %q", got)
	}
}

func TestUndoRedoKeys(t *testing.T) {
	ui, ed, _ := newTestUI(t)

	ui.HandleKey(char('u'))
	if ui.Status() == "" {
		t.Error("undo with empty history should report a status")
	}

	ui.HandleKey(char('p'))
	ui.HandleKey(char('u'))
	if !ed.State().PowerOn {
		t.Error("u should undo")
	}
	ui.HandleKey(char('r'))
	if ed.State().PowerOn {
		t.Error("r should redo")
	}
}

func TestShortcutBinding(t *testing.T) {
	ui, ed, _ := newTestUI(t, WithBinding(shortcut.DefaultBinding()))

	ui.HandleKey(char('p'))
	ui.HandleKey(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))
	if !ed.State().PowerOn {
		t.Fatal("ctrl+z should undo")
	}
	if ui.Status() != "undo" {
		t.Errorf("Status() = %q, want undo", ui.Status())
	}
	ui.HandleKey(tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl))
	if ed.State().PowerOn {
		t.Fatal("ctrl+y should redo")
	}

	// Not consumed when nothing to redo, so it falls through to the UI keys.
	if quit := ui.HandleKey(tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl)); quit {
		t.Error("ctrl+y should not quit")
	}
}

func TestShortcutsDisabled(t *testing.T) {
	ui, ed, _ := newTestUI(t)

	ui.HandleKey(char('p'))
	ui.HandleKey(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))
	if ed.State().PowerOn {
		t.Error("ctrl+z should do nothing without a binding")
	}
}

func TestPresetKeys(t *testing.T) {
	catalog, err := preset.NewCatalog(nil)
	if err != nil {
		t.Fatal(err)
	}
	ui, ed, _ := newTestUI(t, WithCatalog(catalog))
	all := catalog.All()

	ui.HandleKey(char(']'))
	if got := ed.State().Glow.BaseColor; got != all[0].Settings.Glow.BaseColor {
		t.Errorf("after ] baseColor = %s, want %s", got, all[0].Settings.Glow.BaseColor)
	}
	ui.HandleKey(char('['))
	if got := ed.State().Glow.BaseColor; got != all[len(all)-1].Settings.Glow.BaseColor {
		t.Errorf("after [ baseColor = %s, want the last preset's", got)
	}
	if got := ed.Stats().PastCount; got != 2 {
		t.Errorf("PastCount = %d, want one entry per preset", got)
	}
}

func TestPresetKeysWithoutCatalog(t *testing.T) {
	ui, ed, _ := newTestUI(t)
	ui.HandleKey(char(']'))
	if ed.CanUndo() {
		t.Error("] without a catalog should do nothing")
	}
}

func TestTimeTravel(t *testing.T) {
	ui, ed, _ := newTestUI(t)

	ui.HandleKey(char('p')) // Power off
	ui.HandleKey(char('2')) // Glass enabled
	ui.HandleKey(char('t')) // Theme: light
	ui.HandleKey(char('j')) // select the state before "Glass enabled"
	ui.HandleKey(key(tcell.KeyEnter))

	s := ed.State()
	if s.PowerOn || s.ActiveEffects.Glass {
		t.Errorf("after jump state = %+v, want power off and glass off", s)
	}
	if got := ed.Stats().FutureCount; got == 0 {
		t.Fatal("jump should leave redo entries")
	}

	// Select the newest redo entry and travel forward to it.
	ui.selected = len(timeline(ed.History())) - 1
	ui.HandleKey(key(tcell.KeyEnter))
	if !ed.State().ActiveEffects.Glass || ed.State().ThemeMode != effect.ThemeLight {
		t.Errorf("after forward jump state = %+v", ed.State())
	}
	if ed.CanRedo() {
		t.Error("jumping to the last redo entry should consume the future")
	}
}

func TestSelectionBounds(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.HandleKey(char('k'))
	ui.HandleKey(char('j'))
	if ui.selected != 0 {
		t.Errorf("selected = %d on empty history, want 0", ui.selected)
	}

	ui.HandleKey(char('p'))
	ui.HandleKey(char('p'))
	for i := 0; i < 5; i++ {
		ui.HandleKey(char('j'))
	}
	if ui.selected != 1 {
		t.Errorf("selected = %d, want 1", ui.selected)
	}
}

func TestClearKey(t *testing.T) {
	ui, ed, _ := newTestUI(t)
	ui.HandleKey(char('p'))
	ui.HandleKey(char('c'))
	if ed.CanUndo() {
		t.Error("c should clear history")
	}
	if ed.State().PowerOn {
		t.Error("clear should keep the present state")
	}
}

func TestQuitKeys(t *testing.T) {
	ui, _, _ := newTestUI(t)
	for _, ev := range []*tcell.EventKey{char('q'), key(tcell.KeyEscape), tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)} {
		if !ui.HandleKey(ev) {
			t.Errorf("HandleKey(%v) should quit", ev.Name())
		}
	}
	if ui.HandleKey(char('x')) {
		t.Error("unbound key should not quit")
	}
}

func TestDraw(t *testing.T) {
	catalog, _ := preset.NewCatalog(nil)
	ui, _, screen := newTestUI(t, WithCatalog(catalog))

	ui.HandleKey(char('2'))
	ui.HandleKey(char(']'))
	ui.Draw()

	if got := row(screen, 0); !strings.Contains(got, "softglow") || !strings.Contains(got, "power on") {
		t.Errorf("row 0 = %q", got)
	}
	if got := row(screen, 1); !strings.Contains(got, "[2] Glass") {
		t.Errorf("row 1 = %q", got)
	}
	if got := row(screen, 3); !strings.Contains(got, "oklch(") {
		t.Errorf("row 3 = %q", got)
	}
	if got := row(screen, 5); !strings.Contains(got, "Aurora Borealis") {
		t.Errorf("row 5 = %q", got)
	}
	if got := row(screen, 7); !strings.Contains(got, "2 undo") {
		t.Errorf("row 7 = %q", got)
	}
	if got := row(screen, 8); !strings.Contains(got, "Preset: Aurora Borealis") {
		t.Errorf("row 8 = %q", got)
	}
	if got := row(screen, 9); !strings.Contains(got, "Glass enabled") {
		t.Errorf("row 9 = %q", got)
	}
}

func TestRun(t *testing.T) {
	ui, ed, screen := newTestUI(t)

	_ = screen.PostEvent(char('p'))
	_ = screen.PostEvent(char('q'))

	done := make(chan error, 1)
	go func() { done <- ui.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after q")
	}
	if ed.State().PowerOn {
		t.Error("p should have been handled before q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ui.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
