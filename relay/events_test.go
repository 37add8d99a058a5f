package relay_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/carousel/relay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock returns a deterministic event timestamp source.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// TestTrail_RecordsLifecycle walks one full scheduler life cycle and
// checks the trail mirrors it event by event.
func TestTrail_RecordsLifecycle(t *testing.T) {
	at := time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC)
	s, err := relay.New(relay.WithClock(fixedClock(at)))
	require.NoError(t, err)

	_, err = s.AddRobot("A", 1)
	require.NoError(t, err)
	b, err := s.AddRobot("B", 2)
	require.NoError(t, err)

	_, err = s.RunTurn() // A retires
	require.NoError(t, err)
	_, err = s.TogglePause(b.ID)
	require.NoError(t, err)
	_, err = s.RunTurn() // B skipped
	require.NoError(t, err)
	_, err = s.TogglePause(b.ID)
	require.NoError(t, err)
	teamA, _ := s.SplitTeams()
	s.Adopt(teamA)

	trail := s.Trail()
	kinds := make([]relay.EventKind, 0, len(trail))
	for _, ev := range trail {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []relay.EventKind{
		relay.EventAdded,
		relay.EventAdded,
		relay.EventRetired,
		relay.EventPaused,
		relay.EventSkipped,
		relay.EventResumed,
		relay.EventSplit,
		relay.EventMerged,
	}, kinds)

	assert.Equal(t, "A", trail[0].Robot)
	assert.Equal(t, "A", trail[2].Robot)
	assert.Equal(t, "returned to dock", trail[2].Note)
	assert.Equal(t, "B", trail[3].Robot)
	assert.Empty(t, trail[6].Robot, "ring-wide events carry no robot name")

	for i, ev := range trail {
		assert.Equal(t, at, ev.At, "event %d must carry the clock's timestamp", i)
		_, parseErr := uuid.Parse(ev.ID)
		assert.NoError(t, parseErr, "event %d must carry a well-formed ID", i)
	}
}

// TestTrail_IDsUnique verifies every event gets its own identifier.
func TestTrail_IDsUnique(t *testing.T) {
	s, err := relay.New()
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		_, err = s.AddRobot(fmt.Sprintf("r%d", i), 5)
		require.NoError(t, err)
	}

	seen := make(map[string]bool, 20)
	for _, ev := range s.Trail() {
		assert.False(t, seen[ev.ID], "duplicate event ID %s", ev.ID)
		seen[ev.ID] = true
	}
	assert.Len(t, seen, 20)
}

// TestTrail_BoundedEviction verifies the oldest events fall off once
// the limit is hit.
func TestTrail_BoundedEviction(t *testing.T) {
	s, err := relay.New(relay.WithTrailLimit(3))
	require.NoError(t, err)

	for _, name := range []string{"r1", "r2", "r3", "r4", "r5"} {
		_, err = s.AddRobot(name, 5)
		require.NoError(t, err)
	}

	trail := s.Trail()
	require.Len(t, trail, 3, "trail must hold at most the limit")
	assert.Equal(t, "r3", trail[0].Robot, "oldest surviving event")
	assert.Equal(t, "r4", trail[1].Robot)
	assert.Equal(t, "r5", trail[2].Robot)
}

// TestTrail_UnlimitedWhenZero verifies limit 0 disables eviction.
func TestTrail_UnlimitedWhenZero(t *testing.T) {
	s, err := relay.New(relay.WithTrailLimit(0))
	require.NoError(t, err)

	const n = 100
	for i := 0; i < n; i++ {
		_, err = s.AddRobot(fmt.Sprintf("r%d", i), 5)
		require.NoError(t, err)
	}
	assert.Len(t, s.Trail(), n)
}

// TestTrail_SnapshotDetached verifies the returned slice does not
// track later events.
func TestTrail_SnapshotDetached(t *testing.T) {
	s, err := relay.New()
	require.NoError(t, err)
	_, err = s.AddRobot("A", 5)
	require.NoError(t, err)

	snap := s.Trail()
	_, err = s.AddRobot("B", 5)
	require.NoError(t, err)

	assert.Len(t, snap, 1)
	assert.Len(t, s.Trail(), 2)
}
