package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/schedule"
)

func entries(numbers ...string) []domain.ScheduleEntry {
	out := make([]domain.ScheduleEntry, len(numbers))
	for i, n := range numbers {
		out[i] = domain.ScheduleEntry{TripID: "2025-05-24/" + n, TrainNumber: n}
	}
	return out
}

func TestTracker_StartsNotQueried(t *testing.T) {
	snap := schedule.NewTracker().Snapshot()

	assert.Equal(t, schedule.StateNotQueried, snap.State)
	assert.Nil(t, snap.Entries)
}

func TestTracker_ResolveLatest(t *testing.T) {
	tr := schedule.NewTracker()

	tk := tr.Begin()
	assert.Equal(t, schedule.StatePending, tr.Snapshot().State)

	applied := tr.Resolve(tk, entries("1254"), nil)

	require.True(t, applied)
	snap := tr.Snapshot()
	assert.Equal(t, schedule.StateResolved, snap.State)
	assert.Len(t, snap.Entries, 1)
}

func TestTracker_StaleResponseIsDiscarded(t *testing.T) {
	tr := schedule.NewTracker()

	first := tr.Begin()
	second := tr.Begin()

	// The newer query answers first, then the stale one arrives.
	require.True(t, tr.Resolve(second, entries("2001"), nil))
	assert.False(t, tr.Resolve(first, entries("1254", "1256"), nil))

	snap := tr.Snapshot()
	assert.Equal(t, second, snap.Seq)
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, "2001", snap.Entries[0].TrainNumber)
}

func TestTracker_InvalidateDropsInFlight(t *testing.T) {
	tr := schedule.NewTracker()

	tk := tr.Begin()
	tr.Invalidate()

	assert.False(t, tr.Resolve(tk, entries("1254"), nil))
	assert.Equal(t, schedule.StateNotQueried, tr.Snapshot().State)
}

func TestTracker_FailureResolvesToZeroResults(t *testing.T) {
	tr := schedule.NewTracker()

	tk := tr.Begin()
	tr.Resolve(tk, nil, &domain.QueryError{Detail: "boom"})

	snap := tr.Snapshot()
	assert.Equal(t, schedule.StateResolved, snap.State)
	assert.NotNil(t, snap.Entries)
	assert.Empty(t, snap.Entries)
	assert.ErrorIs(t, snap.Err, domain.ErrQueryFailed)
}

func TestTracker_Entry(t *testing.T) {
	tr := schedule.NewTracker()

	_, ok := tr.Entry("2025-05-24/1254")
	assert.False(t, ok, "nothing resolved yet")

	tk := tr.Begin()
	tr.Resolve(tk, entries("1254", "1256"), nil)

	e, ok := tr.Entry("2025-05-24/1256")
	require.True(t, ok)
	assert.Equal(t, "1256", e.TrainNumber)

	_, ok = tr.Entry("2025-05-24/9999")
	assert.False(t, ok)
}
