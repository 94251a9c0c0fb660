package shortcut

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a tcell key event.
// Control characters such as KeyCtrlZ become the letter with ModCtrl.
// Runes are lowercased, and an uppercase rune adds ModShift. tcell already
// lowercases letters sent with Ctrl, so Shift on a Ctrl combination is only
// seen when the terminal reports ModShift.
func FromTcell(ev *tcell.EventKey) Event {
	mods := convertMod(ev.Modifiers())

	k := ev.Key()
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && !isNamedControl(k) {
		return RuneEvent(rune('a'+int(k-tcell.KeyCtrlA)), mods.With(ModCtrl))
	}

	switch k {
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsUpper(r) {
			mods = mods.With(ModShift)
			r = unicode.ToLower(r)
		}
		return RuneEvent(r, mods)
	case tcell.KeyEscape:
		return KeyEvent(KeyEscape, mods)
	case tcell.KeyEnter:
		return KeyEvent(KeyEnter, mods)
	case tcell.KeyTab:
		return KeyEvent(KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent(KeyBackspace, mods)
	case tcell.KeyDelete:
		return KeyEvent(KeyDelete, mods)
	case tcell.KeyHome:
		return KeyEvent(KeyHome, mods)
	case tcell.KeyEnd:
		return KeyEvent(KeyEnd, mods)
	case tcell.KeyPgUp:
		return KeyEvent(KeyPageUp, mods)
	case tcell.KeyPgDn:
		return KeyEvent(KeyPageDown, mods)
	case tcell.KeyUp:
		return KeyEvent(KeyUp, mods)
	case tcell.KeyDown:
		return KeyEvent(KeyDown, mods)
	case tcell.KeyLeft:
		return KeyEvent(KeyLeft, mods)
	case tcell.KeyRight:
		return KeyEvent(KeyRight, mods)
	default:
		return KeyEvent(KeyNone, mods)
	}
}

// isNamedControl reports control codes that terminals send for named keys.
func isNamedControl(k tcell.Key) bool {
	switch k {
	case tcell.KeyTab, tcell.KeyEnter, tcell.KeyBackspace:
		return true
	}
	return false
}

func convertMod(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}
