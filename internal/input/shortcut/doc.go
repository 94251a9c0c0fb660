// Package shortcut maps key events to undo and redo.
//
// A Binding recognizes a primary modifier combined with the undo key, and the
// same modifier plus Shift, or one of the redo keys, for redo:
//
//	Ctrl+Z / Cmd+Z            undo
//	Ctrl+Shift+Z / Ctrl+Y     redo
//
// The primary modifier is chosen by Mode. ModeBoth accepts Ctrl and Meta as
// equivalent.
//
// Handle reports whether the event was consumed. An event is consumed only
// when it matches a combination and the action is available; otherwise it
// should be passed on to other handlers.
package shortcut
