package relay

import (
	"strings"

	"github.com/katalvlaran/carousel/ring"
)

// Stats assembles a Report in one read-only pass over the roster.
// Calling it never disturbs the turn order: two consecutive calls
// return identical reports and leave Front unchanged.
//
// Time: O(n).
func (s *Scheduler) Stats() Report {
	rep := Report{
		Robots: s.roster.Len(),
		Docked: s.dock.Length(),
		Ticks:  s.ticks,
		Score:  s.score,
	}
	if rep.Robots == 0 {
		return rep
	}

	sum := 0
	for rb := range s.roster.All() {
		sum += rb.Battery
		if rb.Paused {
			rep.Paused++
		}
	}
	rep.AvgBattery = float64(sum) / float64(rep.Robots)

	return rep
}

// FormatRing renders any robot ring in the dashboard form,
//
//	[Robot(a, Battery=3) -> Robot(b, Battery=2)] (circular)
//
// or "[] (empty)" for a nil or empty ring.
//
// Time: O(n).
func FormatRing(r *ring.Ring[Robot]) string {
	if r == nil || r.IsEmpty() {
		return "[] (empty)"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	i := 0
	for rb := range r.All() {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(rb.String())
		i++
	}
	sb.WriteString("] (circular)")

	return sb.String()
}

// FormatRoster renders the scheduler's own ring.
func (s *Scheduler) FormatRoster() string {
	return FormatRing(&s.roster)
}
