package history

import "time"

// Stats summarizes a timeline.
// OldestTimestamp and NewestTimestamp are zero when the timeline has no entries.
type Stats struct {
	PastCount       int
	FutureCount     int
	TotalSize       int
	OldestTimestamp time.Time
	NewestTimestamp time.Time
}

// StatsOf returns the statistics of h.
func StatsOf[T any](h State[T]) Stats {
	s := Stats{
		PastCount:   len(h.Past),
		FutureCount: len(h.Future),
		TotalSize:   len(h.Past) + len(h.Future),
	}

	visit := func(e Entry[T]) {
		if e.Timestamp.IsZero() {
			return
		}
		if s.OldestTimestamp.IsZero() || e.Timestamp.Before(s.OldestTimestamp) {
			s.OldestTimestamp = e.Timestamp
		}
		if e.Timestamp.After(s.NewestTimestamp) {
			s.NewestTimestamp = e.Timestamp
		}
	}
	for _, e := range h.Past {
		visit(e)
	}
	for _, e := range h.Future {
		visit(e)
	}
	return s
}
