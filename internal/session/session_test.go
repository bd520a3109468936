package session_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/schedule"
	"github.com/stopbook/backend/internal/session"
)

func resolvedSession(t *testing.T) *session.Session {
	t.Helper()
	return resolvedSessionWith(t, loadCatalog(t))
}

func resolvedSessionWith(t *testing.T, cat session.Resolver) *session.Session {
	t.Helper()
	s := session.NewStore(cat, time.Hour).Get("U1")
	_, err := s.Select(session.FieldOriginRegion, "基隆市")
	require.NoError(t, err)
	_, err = s.Select(session.FieldOriginStation, "三坑")
	require.NoError(t, err)

	tk := s.Tracker().Begin()
	s.Tracker().Resolve(tk, []domain.ScheduleEntry{{
		TripID: "2025-05-24/1254", TrainNumber: "1254", TravelDate: "2025-05-24",
		OriginStationID: "0910", DestinationStationID: "1000",
		DepartureTime: "14:05", ArrivalTime: "14:25",
	}}, nil)
	return s
}

func TestSession_ChooseAndCommit(t *testing.T) {
	s := resolvedSession(t)

	d, err := s.Choose("2025-05-24/1254", "0910")
	require.NoError(t, err)

	got, ok := s.Draft()
	require.True(t, ok)
	assert.Equal(t, d, got)

	assert.True(t, s.Commit(d))
	_, ok = s.Draft()
	assert.False(t, ok)
}

func TestSession_ChooseUnknownTrip(t *testing.T) {
	s := resolvedSession(t)

	_, err := s.Choose("2025-05-24/9999", "0910")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSession_ChooseRequiresStop(t *testing.T) {
	s := resolvedSession(t)

	_, err := s.Choose("2025-05-24/1254", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSession_SelectionChangeInvalidatesResultsAndDraft(t *testing.T) {
	s := resolvedSession(t)
	_, err := s.Choose("2025-05-24/1254", "0910")
	require.NoError(t, err)
	inFlight := s.Tracker().Begin()

	_, err = s.Select(session.FieldOriginRegion, "台北市")
	require.NoError(t, err)

	_, ok := s.Draft()
	assert.False(t, ok)
	assert.Equal(t, schedule.StateNotQueried, s.Tracker().Snapshot().State)
	assert.False(t, s.Tracker().Resolve(inFlight, nil, nil), "stale response must be dropped")
}

func TestSession_RejectedSelectionKeepsState(t *testing.T) {
	s := resolvedSession(t)
	_, err := s.Choose("2025-05-24/1254", "0910")
	require.NoError(t, err)

	_, err = s.Select(session.FieldOriginRegion, "火星")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, ok := s.Draft()
	assert.True(t, ok)
	assert.Equal(t, schedule.StateResolved, s.Tracker().Snapshot().State)
}

func TestSession_CommitAfterRiderChangedDraft(t *testing.T) {
	s := resolvedSession(t)
	first, err := s.Choose("2025-05-24/1254", "0910")
	require.NoError(t, err)
	_, err = s.Choose("2025-05-24/1254", "1000")
	require.NoError(t, err)

	assert.False(t, s.Commit(first))
	_, ok := s.Draft()
	assert.True(t, ok, "the newer draft survives")
}

// gatedResolver parks the next ListRegions call until release is closed,
// holding a Select in the middle of its update.
type gatedResolver struct {
	session.Resolver
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func (g *gatedResolver) ListRegions() []domain.Region {
	if g.armed.CompareAndSwap(true, false) {
		close(g.entered)
		<-g.release
	}
	return g.Resolver.ListRegions()
}

func TestSession_ChooseDuringSelectionChangeSeesNewState(t *testing.T) {
	gate := &gatedResolver{
		Resolver: loadCatalog(t),
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	s := resolvedSessionWith(t, gate)
	gate.armed.Store(true)

	selected := make(chan error, 1)
	go func() {
		_, err := s.Select(session.FieldOriginRegion, "台北市")
		selected <- err
	}()
	<-gate.entered

	chosen := make(chan error, 1)
	go func() {
		_, err := s.Choose("2025-05-24/1254", "0910")
		chosen <- err
	}()
	// Give Choose time to reach the session before the selection completes.
	time.Sleep(20 * time.Millisecond)
	close(gate.release)

	require.NoError(t, <-selected)
	assert.ErrorIs(t, <-chosen, domain.ErrNotFound)
	_, ok := s.Draft()
	assert.False(t, ok, "no Draft may survive from superseded results")
}
