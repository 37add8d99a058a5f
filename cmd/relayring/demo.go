package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/carousel/relay"
)

// demo walks the relay life cycle end to end on a fixed script:
// arrivals, plain turns, a pause with a skip, a retirement that hands
// the turn straight to the successor, a team split, and the merge back.
func demo(s *relay.Scheduler, out io.Writer) error {
	fmt.Fprintln(out, "== arrivals ==")
	arrivals := []struct {
		name    string
		battery int
	}{
		{"Astro", 2},
		{"Bolt", 3},
		{"Clank", 4},
	}
	for _, a := range arrivals {
		rb, err := s.AddRobot(a.name, a.battery)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "added %s (id %d)\n", rb, rb.ID)
	}
	fmt.Fprintln(out, "roster:", s.FormatRoster())

	fmt.Fprintln(out, "\n== one full round ==")
	turns, err := s.RunTurns(3)
	if err != nil {
		return err
	}
	for _, t := range turns {
		fmt.Fprintln(out, turnLine(t))
	}
	fmt.Fprintln(out, "roster:", s.FormatRoster())

	fmt.Fprintln(out, "\n== pause Bolt, drain the rest ==")
	bolt, err := s.TogglePauseFunc(func(rb relay.Robot) bool { return rb.Name == "Bolt" })
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s paused\n", bolt.Name)

	turns, err = s.RunTurns(3)
	if err != nil {
		return err
	}
	for _, t := range turns {
		fmt.Fprintln(out, turnLine(t))
	}
	fmt.Fprintln(out, "roster:", s.FormatRoster())

	if _, err = s.TogglePause(bolt.ID); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s resumed\n", bolt.Name)

	fmt.Fprintln(out, "\n== split and merge ==")
	teamA, teamB := s.SplitTeams()
	fmt.Fprintln(out, "team A:", relay.FormatRing(teamA))
	fmt.Fprintln(out, "team B:", relay.FormatRing(teamB))
	s.Adopt(teamA)
	s.Adopt(teamB)
	fmt.Fprintln(out, "merged:", s.FormatRoster())

	fmt.Fprintln(out, "\n== final standing ==")
	printReport(out, s.Stats())
	if docked := s.Docked(); len(docked) > 0 {
		fmt.Fprint(out, "dock:    ")
		for i, rb := range docked {
			if i > 0 {
				fmt.Fprint(out, ", ")
			}
			fmt.Fprint(out, rb)
		}
		fmt.Fprintln(out)
	}
	printTrailTail(out, s.Trail(), len(s.Trail()))
	return nil
}
