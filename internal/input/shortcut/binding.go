package shortcut

import (
	"fmt"
	"strings"
)

// Mode selects which modifier acts as the primary shortcut modifier.
type Mode uint8

const (
	// ModeBoth accepts Ctrl or Meta.
	ModeBoth Mode = iota
	// ModeCtrl accepts Ctrl without Meta.
	ModeCtrl
	// ModeMeta accepts Meta without Ctrl.
	ModeMeta
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCtrl:
		return "ctrl"
	case ModeMeta:
		return "meta"
	default:
		return "both"
	}
}

// ParseMode parses "ctrl", "meta" or "both".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "both", "":
		return ModeBoth, nil
	case "ctrl", "control":
		return ModeCtrl, nil
	case "meta", "cmd":
		return ModeMeta, nil
	default:
		return ModeBoth, fmt.Errorf("unknown shortcut modifier %q", s)
	}
}

// Target is what a Binding drives.
type Target interface {
	CanUndo() bool
	CanRedo() bool
	Undo() error
	Redo() error
}

// Binding maps key combinations to undo and redo.
type Binding struct {
	// UndoKey with the primary modifier undoes; with Shift added it redoes.
	UndoKey rune
	// RedoKeys with the primary modifier redo.
	RedoKeys []rune
	Mode     Mode
}

// DefaultBinding returns Ctrl/Meta+Z for undo and Ctrl/Meta+Shift+Z or
// Ctrl/Meta+Y for redo.
func DefaultBinding() Binding {
	return Binding{
		UndoKey:  'z',
		RedoKeys: []rune{'z', 'y'},
		Mode:     ModeBoth,
	}
}

// Action is what an event resolves to.
type Action uint8

const (
	ActionNone Action = iota
	ActionUndo
	ActionRedo
)

// String returns "undo", "redo" or "none".
func (a Action) String() string {
	switch a {
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	default:
		return "none"
	}
}

// Match resolves ev without running anything.
func (b Binding) Match(ev Event) Action {
	if !ev.IsRune() || !b.modifierPressed(ev.Modifiers) {
		return ActionNone
	}

	r := ev.Lower()
	shift := ev.Modifiers.Has(ModShift)
	if r == b.UndoKey && !shift {
		return ActionUndo
	}
	if r == b.UndoKey && shift {
		return ActionRedo
	}
	for _, k := range b.RedoKeys {
		if r == k {
			return ActionRedo
		}
	}
	return ActionNone
}

// Handle runs the action ev maps to. It returns true, meaning the event is
// consumed, only when a combination matched and the action ran. An action
// that was available but failed, for example because a concurrent edit
// emptied the stack first, leaves the event unconsumed.
func (b Binding) Handle(ev Event, t Target) bool {
	switch b.Match(ev) {
	case ActionUndo:
		return t.CanUndo() && t.Undo() == nil
	case ActionRedo:
		return t.CanRedo() && t.Redo() == nil
	}
	return false
}

func (b Binding) modifierPressed(m Modifier) bool {
	ctrl, meta := m.Has(ModCtrl), m.Has(ModMeta)
	switch b.Mode {
	case ModeCtrl:
		return ctrl && !meta
	case ModeMeta:
		return meta && !ctrl
	default:
		return ctrl || meta
	}
}
