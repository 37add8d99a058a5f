package relay

import (
	"time"

	"github.com/google/uuid"
)

// EventKind labels what happened.
type EventKind string

// Trail event kinds.
const (
	EventAdded   EventKind = "ADDED"
	EventDrained EventKind = "DRAINED"
	EventRetired EventKind = "RETIRED"
	EventSkipped EventKind = "SKIPPED"
	EventPaused  EventKind = "PAUSED"
	EventResumed EventKind = "RESUMED"
	EventSplit   EventKind = "SPLIT"
	EventMerged  EventKind = "MERGED"
)

// Event is one entry of the trail.
type Event struct {
	// ID is a unique identifier for the entry.
	ID string

	// Kind labels the action.
	Kind EventKind

	// Robot names the acting robot; empty for ring-wide events such
	// as SPLIT and MERGED.
	Robot string

	// Note carries a short human-readable detail.
	Note string

	// At is the timestamp from the scheduler's clock.
	At time.Time
}

// record appends an event, evicting the oldest entry once the trail
// limit is reached. The trail itself is a ring, so eviction is O(1).
func (s *Scheduler) record(kind EventKind, robot, note string) {
	if s.opts.TrailLimit > 0 && s.trail.Len() == s.opts.TrailLimit {
		s.trail.PopFront()
	}
	s.trail.Append(Event{
		ID:    uuid.NewString(),
		Kind:  kind,
		Robot: robot,
		Note:  note,
		At:    s.opts.Clock(),
	})
}

// Trail returns the retained events, oldest first.
//
// Time: O(n).
func (s *Scheduler) Trail() []Event {
	return s.trail.Values()
}
