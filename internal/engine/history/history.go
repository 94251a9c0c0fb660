package history

// DefaultMaxSize is the number of past entries kept when no bound is configured.
const DefaultMaxSize = 50

// State is a timeline of snapshots around a present value.
// State values are never modified in place; all operations return a new State.
type State[T any] struct {
	Past    []Entry[T]
	Present T
	Future  []Entry[T]
}

// New creates a timeline with no past and no future.
func New[T any](present T) State[T] {
	return Clear(present)
}

// Clear returns a timeline holding only present.
func Clear[T any](present T) State[T] {
	return State[T]{
		Past:    []Entry[T]{},
		Present: present,
		Future:  []Entry[T]{},
	}
}

// CanUndo returns true if there is a past entry to return to.
func (h State[T]) CanUndo() bool {
	return len(h.Past) > 0
}

// CanRedo returns true if there is a future entry to move to.
func (h State[T]) CanRedo() bool {
	return len(h.Future) > 0
}

// Push makes newState the present and records the old present in Past.
// Future is discarded. If Past grows beyond maxSize the oldest entries are dropped;
// a maxSize <= 0 selects DefaultMaxSize.
func Push[T any](h State[T], newState T, label string, maxSize int) State[T] {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	past := make([]Entry[T], 0, len(h.Past)+1)
	past = append(past, h.Past...)
	past = append(past, NewEntry(h.Present, label))

	if excess := len(past) - maxSize; excess > 0 {
		past = append([]Entry[T](nil), past[excess:]...)
	}

	return State[T]{
		Past:    past,
		Present: newState,
		Future:  []Entry[T]{},
	}
}

// Undo moves back one step. The old present becomes the first future entry.
// Returns h and false if there is nothing to undo.
func Undo[T any](h State[T]) (State[T], bool) {
	if !h.CanUndo() {
		return h, false
	}

	last := len(h.Past) - 1
	prev := h.Past[last]

	future := make([]Entry[T], 0, len(h.Future)+1)
	future = append(future, NewEntry(h.Present, LabelRedoPoint))
	future = append(future, h.Future...)

	return State[T]{
		Past:    cloneEntries(h.Past[:last]),
		Present: prev.State,
		Future:  future,
	}, true
}

// Redo moves forward one step. The old present is appended to Past.
// Returns h and false if there is nothing to redo.
func Redo[T any](h State[T]) (State[T], bool) {
	if !h.CanRedo() {
		return h, false
	}

	next := h.Future[0]

	past := make([]Entry[T], 0, len(h.Past)+1)
	past = append(past, h.Past...)
	past = append(past, NewEntry(h.Present, LabelUndoPoint))

	return State[T]{
		Past:    past,
		Present: next.State,
		Future:  cloneEntries(h.Future[1:]),
	}, true
}

// JumpTo makes the past entry with the given id the present.
//
// The entries after the target, in chronological order, followed by an entry for the
// old present, are put in front of the existing Future. Redoing from the result walks
// through exactly the skipped states and lands on the state the jump started from.
// Only Past is searched; returns h and false when id is not found there.
func JumpTo[T any](h State[T], id string) (State[T], bool) {
	i := indexOf(h.Past, id)
	if i < 0 {
		return h, false
	}

	target := h.Past[i]
	skipped := h.Past[i+1:]

	future := make([]Entry[T], 0, len(skipped)+1+len(h.Future))
	future = append(future, skipped...)
	future = append(future, NewEntry(h.Present, LabelCurrentState))
	future = append(future, h.Future...)

	return State[T]{
		Past:    cloneEntries(h.Past[:i]),
		Present: target.State,
		Future:  future,
	}, true
}

// Find returns the entry with the given id from Past or Future.
func (h State[T]) Find(id string) (Entry[T], bool) {
	if i := indexOf(h.Past, id); i >= 0 {
		return h.Past[i], true
	}
	if i := indexOf(h.Future, id); i >= 0 {
		return h.Future[i], true
	}
	return Entry[T]{}, false
}

// Sanitize repairs a timeline that came from an untrusted source such as a corrupted
// save file. Nil sequences become empty and entries without an ID are dropped.
// Present is passed through unchanged.
func Sanitize[T any](h State[T]) State[T] {
	return State[T]{
		Past:    validEntries(h.Past),
		Present: h.Present,
		Future:  validEntries(h.Future),
	}
}

func validEntries[T any](entries []Entry[T]) []Entry[T] {
	out := make([]Entry[T], 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func indexOf[T any](entries []Entry[T], id string) int {
	if id == "" {
		return -1
	}
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func cloneEntries[T any](entries []Entry[T]) []Entry[T] {
	out := make([]Entry[T], len(entries))
	copy(out, entries)
	return out
}
