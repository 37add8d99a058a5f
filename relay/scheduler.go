package relay

import (
	"fmt"

	"github.com/eapache/queue"
	"github.com/katalvlaran/carousel/ring"
)

// Scheduler runs the relay. Create one with New; the zero value has
// no dock and is not usable.
type Scheduler struct {
	roster ring.Ring[Robot] // active robots, front takes the next turn
	dock   *queue.Queue     // retired robots, FIFO
	trail  ring.Ring[Event] // bounded event history

	opts   Options
	nextID int
	ticks  int64
	score  int64
}

// New builds an empty Scheduler, applying any number of functional
// Options. Returns ErrOptionViolation when an option is invalid.
func New(opts ...Option) (*Scheduler, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Scheduler{
		dock:   queue.New(),
		opts:   o,
		nextID: 1,
	}, nil
}

// AddRobot validates and enqueues a robot at the back of the ring,
// granting the arrival score. The robot's per-turn drain is fixed to
// the scheduler's quantum.
// Returns ErrEmptyName or ErrBadBattery on invalid input.
//
// Time: O(1).
func (s *Scheduler) AddRobot(name string, battery int) (Robot, error) {
	if name == "" {
		return Robot{}, ErrEmptyName
	}
	if battery < 1 {
		return Robot{}, fmt.Errorf("%w: got %d", ErrBadBattery, battery)
	}

	rb := Robot{
		ID:      s.nextID,
		Name:    name,
		Battery: battery,
		Drain:   s.opts.Quantum,
	}
	s.nextID++
	s.roster.Append(rb)
	s.score += ScoreAdd
	s.record(EventAdded, rb.Name, fmt.Sprintf("battery=%d", battery))

	return rb, nil
}

// RunTurn executes one turn for the robot at the front:
//
//	paused  → skipped, robot rotates to the back, +1 score
//	drained → battery -= drain, robot rotates to the back, +1 score
//	retired → battery hit zero; the robot is removed WITHOUT rotation
//	          (its successor is up next) and docked, +1+3 score
//
// Every executed turn advances the tick counter by one.
// Returns ErrNoRobots when the ring is empty; the counters stay put.
//
// Time: O(1).
func (s *Scheduler) RunTurn() (Turn, error) {
	front, err := s.roster.Front()
	if err != nil {
		return Turn{}, ErrNoRobots
	}
	s.ticks++

	if front.Paused {
		t := Turn{Robot: *front, Kind: TurnSkipped, Before: front.Battery, After: front.Battery}
		s.roster.Rotate()
		s.score += ScoreTurn
		s.record(EventSkipped, t.Robot.Name, "paused")
		return t, nil
	}

	before := front.Battery
	front.Battery -= front.Drain
	after := front.Battery

	if after <= 0 {
		retired := *front
		s.roster.PopFront()
		s.dock.Add(retired)
		s.score += ScoreTurn + ScoreRetire
		s.record(EventRetired, retired.Name, "returned to dock")
		return Turn{Robot: retired, Kind: TurnRetired, Before: before, After: after}, nil
	}

	t := Turn{Robot: *front, Kind: TurnDrained, Before: before, After: after}
	s.roster.Rotate()
	s.score += ScoreTurn
	s.record(EventDrained, t.Robot.Name, fmt.Sprintf("battery %d->%d", before, after))

	return t, nil
}

// RunTurns executes up to n turns, stopping early once the ring
// empties. n below one yields no turns.
//
// Time: O(n).
func (s *Scheduler) RunTurns(n int) ([]Turn, error) {
	if n < 1 {
		return nil, nil
	}
	turns := make([]Turn, 0, n)
	for i := 0; i < n && !s.roster.IsEmpty(); i++ {
		t, err := s.RunTurn()
		if err != nil {
			return turns, err
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// TogglePauseFunc flips the Paused flag of the first robot for which
// match returns true. The scan rotates through exactly one full
// revolution, so the turn order is identical before and after the
// call, whether or not a match was found.
// Returns the robot's state after the flip, ErrNoRobots on an empty
// ring, ErrNilMatch on a nil predicate, or ErrRobotNotFound.
//
// Time: O(n).
func (s *Scheduler) TogglePauseFunc(match func(Robot) bool) (Robot, error) {
	if match == nil {
		return Robot{}, ErrNilMatch
	}
	if s.roster.IsEmpty() {
		return Robot{}, ErrNoRobots
	}

	var (
		found  bool
		result Robot
	)
	for i, n := 0, s.roster.Len(); i < n; i++ {
		front, err := s.roster.Front()
		if err != nil {
			return Robot{}, err
		}
		if !found && match(*front) {
			front.Paused = !front.Paused
			result = *front
			found = true
			if front.Paused {
				s.record(EventPaused, front.Name, "")
			} else {
				s.record(EventResumed, front.Name, "")
			}
		}
		s.roster.Rotate()
	}

	if !found {
		return Robot{}, ErrRobotNotFound
	}
	return result, nil
}

// TogglePause flips the Paused flag of the robot with the given ID.
//
// Time: O(n).
func (s *Scheduler) TogglePause(id int) (Robot, error) {
	return s.TogglePauseFunc(func(rb Robot) bool { return rb.ID == id })
}

// Front returns a copy of the robot whose turn comes next, or
// ErrNoRobots.
//
// Time: O(1).
func (s *Scheduler) Front() (Robot, error) {
	p, err := s.roster.Front()
	if err != nil {
		return Robot{}, ErrNoRobots
	}
	return *p, nil
}

// Len reports how many robots are in the ring.
func (s *Scheduler) Len() int { return s.roster.Len() }

// Ticks reports the number of executed turns.
func (s *Scheduler) Ticks() int64 { return s.ticks }

// Score reports the accumulated score.
func (s *Scheduler) Score() int64 { return s.score }

// Roster returns a forward-order snapshot of the ring, front first.
//
// Time: O(n).
func (s *Scheduler) Roster() []Robot { return s.roster.Values() }

// Docked returns the retired robots in retirement order.
//
// Time: O(n).
func (s *Scheduler) Docked() []Robot {
	out := make([]Robot, 0, s.dock.Length())
	for i := 0; i < s.dock.Length(); i++ {
		out = append(out, s.dock.Get(i).(Robot))
	}
	return out
}

// SplitTeams cuts the roster into two balanced teams and hands both to
// the caller; the front team receives the extra robot on odd rosters.
// The scheduler keeps its ticks, score, and dock, and continues with
// an empty ring until teams are adopted back.
//
// Time: O(n).
func (s *Scheduler) SplitTeams() (*ring.Ring[Robot], *ring.Ring[Robot]) {
	a, b := s.roster.Split()
	s.record(EventSplit, "", fmt.Sprintf("teams of %d and %d", a.Len(), b.Len()))
	return a, b
}

// Adopt splices an entire team in after the roster's tail and empties
// the team ring. Nil or empty teams are ignored.
//
// Time: O(1).
func (s *Scheduler) Adopt(team *ring.Ring[Robot]) {
	if team == nil || team.IsEmpty() {
		return
	}
	n := team.Len()
	s.roster.Merge(team)
	s.record(EventMerged, "", fmt.Sprintf("adopted %d robots", n))
}
