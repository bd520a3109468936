package schedule

import (
	"sync"

	"github.com/stopbook/backend/internal/domain"
)

// State distinguishes "never queried" from "queried, zero matches".
type State string

const (
	StateNotQueried State = "not_queried"
	StatePending    State = "pending"
	StateResolved   State = "resolved"
)

// Ticket identifies one query issued through a Tracker.
type Ticket uint64

// Snapshot is the visible result state of a Tracker.
type Snapshot struct {
	State   State
	Seq     Ticket
	Entries []domain.ScheduleEntry
	Err     error
}

// Tracker holds the current result set of one rider session. Every query is
// tagged with a strictly increasing ticket and only the response for the
// latest ticket is applied; anything older is dropped on arrival.
type Tracker struct {
	mu      sync.Mutex
	seq     Ticket
	state   State
	entries []domain.ScheduleEntry
	err     error
}

// NewTracker returns a Tracker in the not-queried state.
func NewTracker() *Tracker {
	return &Tracker{state: StateNotQueried}
}

// Begin starts a new query, superseding any still in flight.
func (t *Tracker) Begin() Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.state = StatePending
	t.entries = nil
	t.err = nil
	return t.seq
}

// Resolve applies the outcome of the query identified by tk. It returns false,
// leaving visible state untouched, when a newer query has begun or the
// tracker was invalidated since. A failed query resolves to zero entries
// with err retained for display.
func (t *Tracker) Resolve(tk Ticket, entries []domain.ScheduleEntry, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tk != t.seq || t.state != StatePending {
		return false
	}
	t.state = StateResolved
	t.err = err
	if err != nil || entries == nil {
		t.entries = []domain.ScheduleEntry{}
	} else {
		t.entries = entries
	}
	return true
}

// Invalidate discards the current result set and any in-flight query.
func (t *Tracker) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.state = StateNotQueried
	t.entries = nil
	t.err = nil
}

// Snapshot returns the visible state. Entries is non-nil once resolved.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{State: t.state, Seq: t.seq, Entries: t.entries, Err: t.err}
}

// Entry returns the resolved entry with the given trip id.
func (t *Tracker) Entry(tripID string) (domain.ScheduleEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateResolved {
		return domain.ScheduleEntry{}, false
	}
	for _, e := range t.entries {
		if e.TripID == tripID {
			return e, true
		}
	}
	return domain.ScheduleEntry{}, false
}
