// Package relay type and option definitions: robots, turns, scoring
// constants, sentinel errors, and scheduler options.
package relay

import (
	"errors"
	"fmt"
	"time"
)

// Scoring awarded by the scheduler.
const (
	// ScoreAdd is granted when a robot joins the ring.
	ScoreAdd = 2
	// ScoreTurn is granted for every executed turn, skips included.
	ScoreTurn = 1
	// ScoreRetire is the bonus granted when a robot retires to the dock.
	ScoreRetire = 3
)

// Defaults applied by DefaultOptions.
const (
	// DefaultQuantum is the battery drained per turn.
	DefaultQuantum = 1
	// DefaultTrailLimit bounds the retained event trail.
	DefaultTrailLimit = 64
)

// Sentinel errors for scheduler operations.
var (
	// ErrNoRobots is returned when a turn or lookup needs a non-empty ring.
	ErrNoRobots = errors.New("relay: no robots in the ring")

	// ErrRobotNotFound is returned when no robot matches a lookup.
	ErrRobotNotFound = errors.New("relay: robot not found")

	// ErrEmptyName rejects robots without a name.
	ErrEmptyName = errors.New("relay: robot name must not be empty")

	// ErrBadBattery rejects non-positive battery charges.
	ErrBadBattery = errors.New("relay: battery must be positive")

	// ErrNilMatch rejects a nil predicate.
	ErrNilMatch = errors.New("relay: nil match function")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("relay: invalid option supplied")
)

// Robot is one participant of the relay. The scheduler stores robots
// by value; mutate them through scheduler operations only.
type Robot struct {
	// ID is assigned sequentially by the scheduler, starting at 1.
	ID int

	// Name identifies the robot in displays and events.
	Name string

	// Battery is the remaining charge; the robot retires at zero.
	Battery int

	// Drain is the charge spent per turn, fixed at join time.
	Drain int

	// Paused robots keep their place but are skipped.
	Paused bool
}

// String renders the dashboard form, e.g. "Robot(scout, Battery=3)".
func (r Robot) String() string {
	return fmt.Sprintf("Robot(%s, Battery=%d)", r.Name, r.Battery)
}

// TurnKind classifies what a single turn did.
type TurnKind int

const (
	// TurnDrained: the robot spent battery and moved to the back.
	TurnDrained TurnKind = iota
	// TurnRetired: the battery ran dry and the robot left for the dock.
	TurnRetired
	// TurnSkipped: the robot was paused and the turn passed over it.
	TurnSkipped
)

// String returns the lower-case kind name.
func (k TurnKind) String() string {
	switch k {
	case TurnDrained:
		return "drained"
	case TurnRetired:
		return "retired"
	case TurnSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Turn is the outcome of one RunTurn call.
type Turn struct {
	// Robot is the acting robot's state right after the turn.
	Robot Robot

	// Kind tells whether the robot drained, retired, or was skipped.
	Kind TurnKind

	// Before and After hold the battery around the turn; they are
	// equal for skipped turns.
	Before int
	After  int
}

// Report aggregates the scheduler's current standing.
type Report struct {
	// Robots still in the ring, and how many of them are paused.
	Robots int
	Paused int

	// Docked counts robots retired to the dock.
	Docked int

	// AvgBattery is the mean charge across the ring, 0 when empty.
	AvgBattery float64

	// Ticks is the number of executed turns; Score the accumulated score.
	Ticks int64
	Score int64
}

// Option configures a Scheduler via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation by
// New.
type Option func(*Options)

// Options holds scheduler parameters.
type Options struct {
	// Quantum is the battery drained per turn for robots joining the
	// ring. Must be positive.
	Quantum int

	// TrailLimit bounds the retained event trail; the oldest event is
	// evicted first. Zero means unlimited.
	TrailLimit int

	// Clock stamps events; swap it for a fixed clock in tests.
	Clock func() time.Time

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Quantum 1
//   - TrailLimit 64
//   - wall-clock event timestamps.
func DefaultOptions() Options {
	return Options{
		Quantum:    DefaultQuantum,
		TrailLimit: DefaultTrailLimit,
		Clock:      time.Now,
		err:        nil,
	}
}

// WithQuantum sets the per-turn battery drain.
//
//	q >= 1: use q
//	q < 1: invalid option → ErrOptionViolation
func WithQuantum(q int) Option {
	return func(o *Options) {
		if q < 1 {
			o.err = fmt.Errorf("%w: Quantum must be positive (%d)", ErrOptionViolation, q)
			return
		}
		o.Quantum = q
	}
}

// WithTrailLimit bounds the event trail.
//
//	n > 0: keep at most n events
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithTrailLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: TrailLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.TrailLimit = n
	}
}

// WithClock sets the event timestamp source; nil keeps the default.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}
