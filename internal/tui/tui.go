// Package tui is the terminal front end of the effect editor.
package tui

import (
	"context"
	"errors"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/softglow/internal/editor"
	"github.com/dshills/softglow/internal/effect"
	"github.com/dshills/softglow/internal/engine/history"
	"github.com/dshills/softglow/internal/input/shortcut"
	"github.com/dshills/softglow/internal/logging"
	"github.com/dshills/softglow/internal/preset"
)

// Step sizes for the arrow keys.
const (
	HueStep       = 10
	LightnessStep = 2
)

// UI draws the editor state on a tcell screen and maps keys to edits.
// The screen must be initialized by the caller.
type UI struct {
	screen  tcell.Screen
	editor  *editor.Editor
	catalog *preset.Catalog
	binding *shortcut.Binding
	logger  *logging.Logger

	presetIdx int // index into catalog.All(), -1 before the first preset key
	selected  int // index into timeline()
	status    string
}

// Option configures a UI.
type Option func(*UI)

// WithCatalog enables the preset keys.
func WithCatalog(c *preset.Catalog) Option {
	return func(u *UI) {
		u.catalog = c
	}
}

// WithBinding enables undo and redo shortcuts.
func WithBinding(b shortcut.Binding) Option {
	return func(u *UI) {
		u.binding = &b
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(u *UI) {
		u.logger = l
	}
}

// New creates a UI for ed on screen.
func New(screen tcell.Screen, ed *editor.Editor, opts ...Option) *UI {
	u := &UI{
		screen:    screen,
		editor:    ed,
		logger:    logging.Nop(),
		presetIdx: -1,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.logger = u.logger.WithComponent("tui")

	// Redraw after edits made elsewhere, for example by a script.
	ed.Observe(func(history.Event) {
		_ = u.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	return u
}

// Run draws the UI and handles events until the user quits, ctx is done
// or the screen is finalized.
func (u *UI) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = u.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	u.Draw()
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if u.HandleKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		}
		u.Draw()
	}
}

// Status returns the last status message.
func (u *UI) Status() string {
	return u.status
}

// HandleKey applies the edit bound to ev. It reports whether the user asked
// to quit.
func (u *UI) HandleKey(ev *tcell.EventKey) bool {
	u.status = ""

	if u.binding != nil {
		se := shortcut.FromTcell(ev)
		if u.binding.Handle(se, u.editor) {
			u.status = u.binding.Match(se).String()
			return false
		}
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		u.shiftHue(-HueStep)
	case tcell.KeyRight:
		u.shiftHue(HueStep)
	case tcell.KeyUp:
		u.shiftLightness(LightnessStep)
	case tcell.KeyDown:
		u.shiftLightness(-LightnessStep)
	case tcell.KeyEnter:
		u.jumpToSelected()
	case tcell.KeyRune:
		return u.handleRune(ev.Rune())
	}
	return false
}

func (u *UI) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case '1', '2', '3', '4':
		t := effect.Types[r-'1']
		if err := u.editor.ToggleEffect(t); err != nil {
			u.fail(err)
		}
	case 'p':
		u.editor.TogglePower()
	case 't':
		u.editor.CycleThemeMode()
	case 'u':
		u.fail(u.editor.Undo())
	case 'r':
		u.fail(u.editor.Redo())
	case '[':
		u.cyclePreset(-1)
	case ']':
		u.cyclePreset(1)
	case 'j':
		u.moveSelection(1)
	case 'k':
		u.moveSelection(-1)
	case 'c':
		u.editor.ClearHistory()
		u.selected = 0
		u.status = "history cleared"
	case '0':
		u.editor.ResetToDefaults()
	}
	return false
}

func (u *UI) fail(err error) {
	if err == nil {
		return
	}
	u.status = err.Error()
	if !errors.Is(err, history.ErrNothingToUndo) && !errors.Is(err, history.ErrNothingToRedo) {
		u.logger.WithError(err).Warn("edit failed")
	}
}

func (u *UI) shiftHue(delta float64) {
	hue := math.Mod(u.editor.State().Glow.Hue+delta, 360)
	if hue < 0 {
		hue += 360
	}
	u.editor.UpdateGlow(effect.GlowPatch{Hue: effect.Ptr(hue)})
}

func (u *UI) shiftLightness(delta float64) {
	l := math.Max(0, math.Min(100, u.editor.State().Glow.Lightness+delta))
	u.editor.UpdateGlow(effect.GlowPatch{Lightness: effect.Ptr(l)})
}

func (u *UI) cyclePreset(dir int) {
	if u.catalog == nil {
		return
	}
	all := u.catalog.All()
	if len(all) == 0 {
		return
	}
	switch {
	case u.presetIdx < 0 && dir < 0:
		u.presetIdx = len(all) - 1
	case u.presetIdx < 0:
		u.presetIdx = 0
	default:
		u.presetIdx = (u.presetIdx + dir + len(all)) % len(all)
	}
	p := all[u.presetIdx]
	u.editor.ApplyPreset(p)
	u.status = "applied " + p.Name
}

// timelineRow is one selectable line of the history panel.
type timelineRow struct {
	entry  history.Entry[effect.State]
	future bool
	index  int // position within Past or Future
}

// timeline lists the past newest first, followed by the future.
func timeline(h history.State[effect.State]) []timelineRow {
	rows := make([]timelineRow, 0, len(h.Past)+len(h.Future))
	for i := len(h.Past) - 1; i >= 0; i-- {
		rows = append(rows, timelineRow{entry: h.Past[i], index: i})
	}
	for i, e := range h.Future {
		rows = append(rows, timelineRow{entry: e, future: true, index: i})
	}
	return rows
}

func (u *UI) moveSelection(delta int) {
	n := len(timeline(u.editor.History()))
	if n == 0 {
		u.selected = 0
		return
	}
	u.selected = max(0, min(n-1, u.selected+delta))
}

// jumpToSelected restores the selected entry. Past entries are restored with
// JumpTo; future entries are reached by redoing up to them.
func (u *UI) jumpToSelected() {
	rows := timeline(u.editor.History())
	if u.selected >= len(rows) {
		return
	}
	row := rows[u.selected]
	if !row.future {
		u.fail(u.editor.JumpTo(row.entry.ID))
		u.selected = 0
		return
	}
	for i := 0; i <= row.index; i++ {
		if err := u.editor.Redo(); err != nil {
			u.fail(err)
			break
		}
	}
	u.selected = 0
}
