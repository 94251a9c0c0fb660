// Package editor is the effect editor store. It owns the undo history of the
// effect state and exposes every user level edit as a labelled operation.
package editor

import (
	"errors"
	"fmt"

	"github.com/dshills/softglow/internal/effect"
	"github.com/dshills/softglow/internal/engine/history"
	"github.com/dshills/softglow/internal/logging"
	"github.com/dshills/softglow/internal/preset"
)

// Errors returned by editor operations.
var (
	ErrInvalidColor  = errors.New("invalid hex color")
	ErrUnknownEffect = errors.New("unknown effect")
	ErrUnknownTheme  = errors.New("unknown theme mode")
)

// Persister saves the present state after each change.
type Persister interface {
	SaveState(effect.State) error
}

// Transformer computes a new state from the present one.
type Transformer interface {
	Apply(effect.State) (effect.State, error)
}

// Option configures an Editor.
type Option func(*config)

type config struct {
	maxSize   int
	logger    *logging.Logger
	persister Persister
}

// WithMaxSize bounds the number of undo steps.
func WithMaxSize(n int) Option {
	return func(c *config) {
		c.maxSize = n
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithPersister sets where the present state is saved after each change.
func WithPersister(p Persister) Option {
	return func(c *config) {
		c.persister = p
	}
}

// Editor is the effect editor store. It is safe for concurrent use.
type Editor struct {
	tracker   *history.Tracker[effect.State]
	logger    *logging.Logger
	persister Persister
}

// New creates an editor whose present state is initial.
func New(initial effect.State, opts ...Option) *Editor {
	cfg := config{maxSize: history.DefaultMaxSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.Nop()
	}

	e := &Editor{
		tracker:   history.NewTracker(effect.Normalize(initial), history.WithMaxSize(cfg.maxSize)),
		logger:    cfg.logger.WithComponent("editor"),
		persister: cfg.persister,
	}
	e.tracker.Observe(e.onChange)
	return e
}

// Observe registers fn to be called after every history change.
func (e *Editor) Observe(fn func(history.Event)) {
	e.tracker.Observe(fn)
}

func (e *Editor) onChange(ev history.Event) {
	if e.logger.Enabled(logging.LevelDebug) {
		e.logger.WithFields(map[string]any{
			"event":  ev.Kind.String(),
			"past":   ev.PastCount,
			"future": ev.FutureCount,
		}).Debug("history %s", ev.Label)
	}
	if ev.Evicted > 0 {
		e.logger.Debug("dropped %d oldest history entries", ev.Evicted)
	}
	if ev.Kind == history.EventCleared || e.persister == nil {
		return
	}
	if err := e.persister.SaveState(e.tracker.Present()); err != nil {
		e.logger.WithError(err).Warn("failed to save effect state")
	}
}

// State returns the present effect state.
func (e *Editor) State() effect.State {
	return e.tracker.Present()
}

// History returns the full timeline.
func (e *Editor) History() history.State[effect.State] {
	return e.tracker.State()
}

// Restore replaces the timeline, for example with one loaded from disk.
func (e *Editor) Restore(h history.State[effect.State]) {
	h.Present = effect.Normalize(h.Present)
	e.tracker.Restore(h)
}

// Stats returns statistics about the timeline.
func (e *Editor) Stats() history.Stats {
	return e.tracker.Stats()
}

// CanUndo reports whether Undo would change the state.
func (e *Editor) CanUndo() bool {
	return e.tracker.CanUndo()
}

// CanRedo reports whether Redo would change the state.
func (e *Editor) CanRedo() bool {
	return e.tracker.CanRedo()
}

// Undo steps back. It returns history.ErrNothingToUndo when there is nothing
// to undo; callers treat that as a no-op.
func (e *Editor) Undo() error {
	return e.tracker.Undo()
}

// Redo steps forward. It returns history.ErrNothingToRedo when there is
// nothing to redo.
func (e *Editor) Redo() error {
	return e.tracker.Redo()
}

// JumpTo restores the past entry with the given id.
func (e *Editor) JumpTo(id string) error {
	return e.tracker.JumpTo(id)
}

// ClearHistory drops the undo and redo entries, keeping the present state.
func (e *Editor) ClearHistory() {
	e.tracker.Clear()
}

// SetMaxSize changes the undo bound.
func (e *Editor) SetMaxSize(n int) {
	e.tracker.SetMaxSize(n)
}

// Transaction runs fn with every edit it makes recorded as one entry.
// If fn fails the edits are rolled back.
func (e *Editor) Transaction(label string, fn func() error) error {
	return e.tracker.Transaction(label, fn)
}

// ActiveEffectsCount returns how many effects are switched on.
func (e *Editor) ActiveEffectsCount() int {
	return e.State().ActiveEffects.Count()
}

// GlowColor returns the CSS oklch() color of the glow.
func (e *Editor) GlowColor() string {
	return effect.GlowColor(e.State().Glow)
}

// Shadow returns the resolved neomorphic shadows.
func (e *Editor) Shadow() effect.Shadow {
	return effect.NeomorphShadow(e.State().Neomorph)
}

// ExportState encodes the present state as JSON.
func (e *Editor) ExportState() ([]byte, error) {
	return effect.Export(e.State())
}

// ImportState replaces the state with a decoded document. Fields missing
// from data take their default values. Malformed data leaves the state
// unchanged.
func (e *Editor) ImportState(data []byte) error {
	s, err := effect.Import(data)
	if err != nil {
		return fmt.Errorf("import state: %w", err)
	}
	e.tracker.Push(s, "State imported")
	return nil
}

// ApplyPreset switches to the settings of p as a single undo step.
func (e *Editor) ApplyPreset(p preset.Preset) {
	e.tracker.Update("Preset: "+p.Name, p.Settings.ApplyTo)
}

// ImportSettings applies a preset settings file as a single undo step.
func (e *Editor) ImportSettings(data []byte) error {
	patch, err := preset.ImportSettings(data)
	if err != nil {
		return err
	}
	if patch.Empty() {
		return nil
	}
	e.tracker.Update("Settings imported", patch.ApplyTo)
	return nil
}

// ApplyScript runs t against the present state and records the result as
// one entry labelled "Script: <name>". On error the state is unchanged.
func (e *Editor) ApplyScript(name string, t Transformer) error {
	var err error
	e.tracker.Edit(func(s effect.State) (effect.State, string, bool) {
		var next effect.State
		next, err = t.Apply(s)
		if err != nil {
			return s, "", false
		}
		return effect.Normalize(next), "Script: " + name, true
	})
	if err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	return nil
}

// Set assigns value to the field at a dot separated path, for example
// "glow.hue".
func (e *Editor) Set(path string, value any) error {
	var err error
	e.tracker.Edit(func(s effect.State) (effect.State, string, bool) {
		var next effect.State
		next, err = effect.SetPath(s, path, value)
		if err != nil {
			return s, "", false
		}
		return next, "Set " + path, true
	})
	return err
}
