package history

import (
	"encoding/hex"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Labels used for entries created by the history itself.
const (
	LabelUndoPoint    = "Undo point"
	LabelRedoPoint    = "Redo point"
	LabelCurrentState = "Current state"
	LabelInitialState = "Initial state"
)

// Entry is one snapshot in the timeline.
type Entry[T any] struct {
	// ID is unique within the process.
	ID string

	// Timestamp is for display and sorting only; ordering comes from position.
	Timestamp time.Time

	// Label describes the edit that produced the following state.
	Label string

	// State is the snapshot value.
	State T
}

// NewEntry creates an entry with a fresh ID and timestamp.
func NewEntry[T any](state T, label string) Entry[T] {
	id, ts := ids.next()
	return Entry[T]{
		ID:        id,
		Timestamp: ts,
		Label:     label,
		State:     state,
	}
}

// now is replaced in tests.
var now = time.Now

var ids idGenerator

// idGenerator hands out "<millis>-<counter>-<random>" identifiers.
// The counter alone guarantees uniqueness within the process.
type idGenerator struct {
	counter atomic.Uint64

	mu   sync.Mutex
	last time.Time
}

func (g *idGenerator) next() (string, time.Time) {
	ts := g.stamp()
	count := g.counter.Add(1) - 1

	var b strings.Builder
	b.WriteString(strconv.FormatInt(ts.UnixMilli(), 10))
	b.WriteByte('-')
	b.WriteString(strconv.FormatUint(count, 10))
	b.WriteByte('-')
	b.WriteString(randomSuffix())
	return b.String(), ts
}

// stamp returns the current time, never earlier than the previous stamp.
func (g *idGenerator) stamp() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := now()
	if t.Before(g.last) {
		t = g.last
	}
	g.last = t
	return t
}

func randomSuffix() string {
	id := uuid.New()
	return hex.EncodeToString(id[:5])[:9]
}

// ResetIDCounter restarts the ID counter. Only meant for tests that compare IDs.
func ResetIDCounter() {
	ids.counter.Store(0)
}
