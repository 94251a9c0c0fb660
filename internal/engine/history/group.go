package history

// BeginGroup starts an edit group.
// Pushes made while grouping replace the present without creating entries;
// EndGroup records them as a single undo unit.
func (t *Tracker[T]) BeginGroup(label string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.grouping {
		// Already grouping, ignore nested calls
		return
	}

	t.grouping = true
	t.groupLabel = label
	t.groupBase = t.state.Present
	t.groupDirty = false
}

// EndGroup finishes an edit group.
// If any push happened since BeginGroup, one entry holding the state from before the
// group is added to the past and the future is discarded.
func (t *Tracker[T]) EndGroup() {
	t.mu.Lock()
	events := t.endGroupLocked()
	observers := t.observers
	t.mu.Unlock()

	notify(observers, events...)
}

func (t *Tracker[T]) endGroupLocked() []Event {
	if !t.grouping {
		return nil
	}

	t.grouping = false
	if !t.groupDirty {
		return nil
	}
	t.groupDirty = false

	before := len(t.state.Past)
	base := State[T]{
		Past:    t.state.Past,
		Present: t.groupBase,
		Future:  t.state.Future,
	}
	t.state = Push(base, t.state.Present, t.groupLabel, t.maxSize)

	var zero T
	t.groupBase = zero
	return []Event{t.eventLocked(EventPushed, t.groupLabel, before+1-len(t.state.Past))}
}

// CancelGroup ends an edit group and restores the present from before it.
func (t *Tracker[T]) CancelGroup() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.grouping {
		return
	}
	if t.groupDirty {
		t.state.Present = t.groupBase
	}

	var zero T
	t.grouping = false
	t.groupDirty = false
	t.groupBase = zero
}

// IsGrouping returns true if an edit group is open.
func (t *Tracker[T]) IsGrouping() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.grouping
}

// GroupScope provides a convenient way to group edits using defer.
// Usage:
//
//	func drag(t *Tracker[Settings], steps []Settings) {
//	    defer t.GroupScope("Blur position changed").End()
//	    for _, s := range steps {
//	        t.Push(s, "")
//	    }
//	}
type GroupScope[T any] struct {
	tracker *Tracker[T]
	active  bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
func (t *Tracker[T]) GroupScope(label string) *GroupScope[T] {
	t.BeginGroup(label)
	return &GroupScope[T]{
		tracker: t,
		active:  true,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope[T]) End() {
	if g.active {
		g.tracker.EndGroup()
		g.active = false
	}
}

// Cancel cancels the group scope, restoring the present from before it.
func (g *GroupScope[T]) Cancel() {
	if g.active {
		g.tracker.CancelGroup()
		g.active = false
	}
}

// Transaction runs fn within an edit group.
// If fn returns an error the group is cancelled, otherwise it is ended normally.
func (t *Tracker[T]) Transaction(label string, fn func() error) error {
	t.BeginGroup(label)

	if err := fn(); err != nil {
		t.CancelGroup()
		return err
	}

	t.EndGroup()
	return nil
}
