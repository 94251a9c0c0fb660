// Package history provides undo/redo and time-travel over immutable state snapshots.
//
// The history system keeps a linear timeline of snapshots of an arbitrary value type T.
// Key concepts:
//
// # Timeline
//
// A State holds three parts:
//   - Past: entries reachable by undo, oldest first
//   - Present: the active value, not wrapped in an entry
//   - Future: entries reachable by redo, nearest first
//
// Every operation returns a new State and leaves its input untouched:
//
//	h := history.New(initial)
//	h = history.Push(h, edited, "Glow hue changed", history.DefaultMaxSize)
//
//	if prev, ok := history.Undo(h); ok {
//	    h = prev
//	}
//
// A new Push always discards Future. Past is bounded by a maximum size; the oldest
// entries are dropped first.
//
// # Time Travel
//
// JumpTo moves Present to any entry in Past. The entries that were skipped, followed by
// a "Current state" entry for the value jumped away from, are placed at the front of
// Future, so repeated Redo walks back to where the jump started.
//
// # Tracker
//
// Tracker owns a single State behind a mutex and is the type a UI store embeds:
//
//	tr := history.NewTracker(initial, history.WithMaxSize(100))
//	tr.Push(edited, "Power off")
//	if err := tr.Undo(); errors.Is(err, history.ErrNothingToUndo) {
//	    // disabled action, nothing changed
//	}
//
// Edits made between BeginGroup and EndGroup collapse into one undo unit, which is how
// a drag gesture producing dozens of updates becomes a single entry.
package history
