package history

import (
	"errors"
	"sync"
)

// Common errors for tracker operations. They signal that nothing changed,
// not that something went wrong.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrEntryNotFound = errors.New("history entry not found")
)

// EventKind identifies what changed the timeline.
type EventKind uint8

const (
	EventPushed EventKind = iota + 1
	EventUndone
	EventRedone
	EventJumped
	EventCleared
	EventRestored
	EventResized
)

// String returns the lowercase name of the kind.
func (k EventKind) String() string {
	switch k {
	case EventPushed:
		return "pushed"
	case EventUndone:
		return "undone"
	case EventRedone:
		return "redone"
	case EventJumped:
		return "jumped"
	case EventCleared:
		return "cleared"
	case EventRestored:
		return "restored"
	case EventResized:
		return "resized"
	default:
		return "unknown"
	}
}

// Event describes a completed change.
type Event struct {
	Kind  EventKind
	Label string

	// Evicted is the number of past entries dropped by the size bound.
	Evicted int

	PastCount   int
	FutureCount int
}

// Tracker owns a single timeline and serializes every read-modify-write of it.
// It is safe for concurrent use.
type Tracker[T any] struct {
	mu sync.Mutex

	state   State[T]
	maxSize int

	// Grouping state
	grouping   bool
	groupLabel string
	groupBase  T
	groupDirty bool

	observers []func(Event)
}

// TrackerOption configures a Tracker.
type TrackerOption func(*trackerConfig)

type trackerConfig struct {
	maxSize int
}

// WithMaxSize bounds the number of past entries.
func WithMaxSize(n int) TrackerOption {
	return func(c *trackerConfig) {
		c.maxSize = n
	}
}

// NewTracker creates a tracker whose present is initial.
func NewTracker[T any](initial T, opts ...TrackerOption) *Tracker[T] {
	cfg := trackerConfig{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxSize <= 0 {
		cfg.maxSize = DefaultMaxSize
	}
	return &Tracker[T]{
		state:   New(initial),
		maxSize: cfg.maxSize,
	}
}

// Observe registers fn to be called after every change.
// fn runs without the tracker lock held and may read from the tracker.
func (t *Tracker[T]) Observe(fn func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, fn)
}

// State returns the current timeline.
func (t *Tracker[T]) State() State[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Present returns the current value.
func (t *Tracker[T]) Present() T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Present
}

// Push makes newState the present.
// Inside a group only the present is replaced; the entry is written by EndGroup.
func (t *Tracker[T]) Push(newState T, label string) {
	t.mu.Lock()
	ev, ok := t.pushLocked(newState, label)
	observers := t.observers
	t.mu.Unlock()

	if ok {
		notify(observers, ev)
	}
}

// Update pushes the result of applying fn to the present.
// fn is called with the tracker locked and must not call back into it.
func (t *Tracker[T]) Update(label string, fn func(T) T) {
	t.Edit(func(present T) (T, string, bool) {
		return fn(present), label, true
	})
}

// Edit is Update for changes whose label depends on the present or that may
// turn out to be no-ops. fn returns the new state, its label and whether to
// push it. Edit reports whether a push happened.
// fn is called with the tracker locked and must not call back into it.
func (t *Tracker[T]) Edit(fn func(T) (T, string, bool)) bool {
	t.mu.Lock()
	next, label, apply := fn(t.state.Present)
	if !apply {
		t.mu.Unlock()
		return false
	}
	ev, ok := t.pushLocked(next, label)
	observers := t.observers
	t.mu.Unlock()

	if ok {
		notify(observers, ev)
	}
	return true
}

func (t *Tracker[T]) pushLocked(newState T, label string) (Event, bool) {
	if t.grouping {
		t.state.Present = newState
		t.groupDirty = true
		return Event{}, false
	}

	before := len(t.state.Past)
	t.state = Push(t.state, newState, label, t.maxSize)
	return t.eventLocked(EventPushed, label, before+1-len(t.state.Past)), true
}

// Undo moves back one step.
// Returns ErrNothingToUndo if the past is empty.
func (t *Tracker[T]) Undo() error {
	return t.move(EventUndone, func(h State[T]) (State[T], bool) {
		return Undo(h)
	}, ErrNothingToUndo)
}

// Redo moves forward one step.
// Returns ErrNothingToRedo if the future is empty.
func (t *Tracker[T]) Redo() error {
	return t.move(EventRedone, func(h State[T]) (State[T], bool) {
		return Redo(h)
	}, ErrNothingToRedo)
}

// JumpTo makes the past entry with the given id the present.
// Returns ErrEntryNotFound if no past entry has that id.
func (t *Tracker[T]) JumpTo(id string) error {
	return t.move(EventJumped, func(h State[T]) (State[T], bool) {
		return JumpTo(h, id)
	}, ErrEntryNotFound)
}

func (t *Tracker[T]) move(kind EventKind, op func(State[T]) (State[T], bool), miss error) error {
	t.mu.Lock()
	events := t.endGroupLocked()

	next, ok := op(t.state)
	if ok {
		t.state = next
		events = append(events, t.eventLocked(kind, "", 0))
	}
	observers := t.observers
	t.mu.Unlock()

	notify(observers, events...)
	if !ok {
		return miss
	}
	return nil
}

// Clear drops all past and future entries, keeping the present.
func (t *Tracker[T]) Clear() {
	t.mu.Lock()
	events := t.endGroupLocked()
	t.state = Clear(t.state.Present)
	events = append(events, t.eventLocked(EventCleared, "", 0))
	observers := t.observers
	t.mu.Unlock()

	notify(observers, events...)
}

// Restore replaces the whole timeline, for example with one loaded from disk.
// The timeline is sanitized and trimmed to the size bound.
func (t *Tracker[T]) Restore(h State[T]) {
	h = Sanitize(h)

	t.mu.Lock()
	t.grouping = false
	t.groupDirty = false
	evicted := 0
	if excess := len(h.Past) - t.maxSize; excess > 0 {
		h.Past = cloneEntries(h.Past[excess:])
		evicted = excess
	}
	t.state = h
	ev := t.eventLocked(EventRestored, "", evicted)
	observers := t.observers
	t.mu.Unlock()

	notify(observers, ev)
}

// CanUndo returns true if undo is available.
func (t *Tracker[T]) CanUndo() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.CanUndo() || (t.grouping && t.groupDirty)
}

// CanRedo returns true if redo is available.
func (t *Tracker[T]) CanRedo() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.CanRedo()
}

// Stats returns statistics about the current timeline.
func (t *Tracker[T]) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return StatsOf(t.state)
}

// SetMaxSize changes the bound on past entries.
// If the past is larger, the oldest entries are removed and observers get an
// EventResized carrying the number removed.
func (t *Tracker[T]) SetMaxSize(n int) {
	if n <= 0 {
		n = DefaultMaxSize
	}

	t.mu.Lock()
	t.maxSize = n
	excess := len(t.state.Past) - n
	if excess <= 0 {
		t.mu.Unlock()
		return
	}
	t.state.Past = cloneEntries(t.state.Past[excess:])
	ev := t.eventLocked(EventResized, "", excess)
	observers := t.observers
	t.mu.Unlock()

	notify(observers, ev)
}

// MaxSize returns the bound on past entries.
func (t *Tracker[T]) MaxSize() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.maxSize
}

func (t *Tracker[T]) eventLocked(kind EventKind, label string, evicted int) Event {
	if evicted < 0 {
		evicted = 0
	}
	return Event{
		Kind:        kind,
		Label:       label,
		Evicted:     evicted,
		PastCount:   len(t.state.Past),
		FutureCount: len(t.state.Future),
	}
}

func notify(observers []func(Event), events ...Event) {
	for _, ev := range events {
		for _, fn := range observers {
			fn(ev)
		}
	}
}
