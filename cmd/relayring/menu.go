package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/carousel/relay"
	"github.com/katalvlaran/carousel/ring"
)

var (
	errSplitPending = errors.New("teams already split; merge them back first")
	errNoSplit      = errors.New("no split teams to merge")
)

// session is the explicit state of one interactive run: the scheduler
// plus the two side rings a split produces. No globals; everything a
// menu action may touch lives here.
type session struct {
	sched *relay.Scheduler
	teamA *ring.Ring[relay.Robot]
	teamB *ring.Ring[relay.Robot]
}

func newSession(s *relay.Scheduler) *session {
	return &session{sched: s}
}

// playLoop reads menu choices from in and dispatches them until the
// user quits or the input ends.
func playLoop(st *session, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		printMenu(out)
		if !sc.Scan() {
			return sc.Err()
		}
		choice := strings.TrimSpace(sc.Text())
		if choice == "9" || strings.EqualFold(choice, "q") {
			fmt.Fprintln(out, "bye")
			return nil
		}
		if err := dispatch(st, choice, sc, out); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(out, "error:", err)
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprint(out, `
=== Robot Relay Ring ===
 1) add robot
 2) run one turn
 3) run N turns
 4) pause/resume robot by id
 5) show rings
 6) split into two teams
 7) merge teams back
 8) stats
 9) quit
choice> `)
}

// dispatch executes one menu choice against the session state.
func dispatch(st *session, choice string, sc *bufio.Scanner, out io.Writer) error {
	switch choice {
	case "1":
		name, err := prompt(sc, out, "name> ")
		if err != nil {
			return err
		}
		battery, err := promptInt(sc, out, "battery> ")
		if err != nil {
			return err
		}
		rb, err := st.sched.AddRobot(name, battery)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "added %s (id %d)\n", rb, rb.ID)

	case "2":
		turn, err := st.sched.RunTurn()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, turnLine(turn))

	case "3":
		n, err := promptInt(sc, out, "turns> ")
		if err != nil {
			return err
		}
		turns, err := st.sched.RunTurns(n)
		if err != nil {
			return err
		}
		for _, t := range turns {
			fmt.Fprintln(out, turnLine(t))
		}
		if len(turns) < n {
			fmt.Fprintln(out, "ring drained early")
		}

	case "4":
		id, err := promptInt(sc, out, "id> ")
		if err != nil {
			return err
		}
		rb, err := st.sched.TogglePause(id)
		if err != nil {
			return err
		}
		if rb.Paused {
			fmt.Fprintf(out, "%s paused\n", rb.Name)
		} else {
			fmt.Fprintf(out, "%s resumed\n", rb.Name)
		}

	case "5":
		showRings(st, out)

	case "6":
		if st.teamA != nil || st.teamB != nil {
			return errSplitPending
		}
		st.teamA, st.teamB = st.sched.SplitTeams()
		fmt.Fprintln(out, "team A:", relay.FormatRing(st.teamA))
		fmt.Fprintln(out, "team B:", relay.FormatRing(st.teamB))

	case "7":
		if st.teamA == nil && st.teamB == nil {
			return errNoSplit
		}
		st.sched.Adopt(st.teamA)
		st.sched.Adopt(st.teamB)
		st.teamA, st.teamB = nil, nil
		fmt.Fprintln(out, "roster:", st.sched.FormatRoster())

	case "8":
		printReport(out, st.sched.Stats())
		printTrailTail(out, st.sched.Trail(), 5)

	default:
		return fmt.Errorf("unknown choice %q", choice)
	}
	return nil
}

// prompt prints a label and reads one trimmed line; io.EOF when the
// input ends mid-prompt.
func prompt(sc *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(sc.Text()), nil
}

func promptInt(sc *bufio.Scanner, out io.Writer, label string) (int, error) {
	s, err := prompt(sc, out, label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return n, nil
}

// turnLine renders one executed turn for the console.
func turnLine(t relay.Turn) string {
	switch t.Kind {
	case relay.TurnRetired:
		return fmt.Sprintf("%s retired (battery %d -> %d), returned to dock",
			t.Robot.Name, t.Before, t.After)
	case relay.TurnSkipped:
		return fmt.Sprintf("%s skipped (paused)", t.Robot.Name)
	default:
		return fmt.Sprintf("%s drained (battery %d -> %d)",
			t.Robot.Name, t.Before, t.After)
	}
}

func showRings(st *session, out io.Writer) {
	fmt.Fprintln(out, "roster:", st.sched.FormatRoster())
	if st.teamA != nil || st.teamB != nil {
		fmt.Fprintln(out, "team A:", relay.FormatRing(st.teamA))
		fmt.Fprintln(out, "team B:", relay.FormatRing(st.teamB))
	}
	if docked := st.sched.Docked(); len(docked) > 0 {
		fmt.Fprint(out, "dock:   ")
		for i, rb := range docked {
			if i > 0 {
				fmt.Fprint(out, ", ")
			}
			fmt.Fprint(out, rb)
		}
		fmt.Fprintln(out)
	}
}

func printReport(out io.Writer, rep relay.Report) {
	fmt.Fprintf(out, "robots:  %d (paused %d)\n", rep.Robots, rep.Paused)
	fmt.Fprintf(out, "docked:  %d\n", rep.Docked)
	fmt.Fprintf(out, "battery: %.2f avg\n", rep.AvgBattery)
	fmt.Fprintf(out, "ticks:   %d\n", rep.Ticks)
	fmt.Fprintf(out, "score:   %d\n", rep.Score)
}

// printTrailTail prints up to n most recent events, oldest first.
func printTrailTail(out io.Writer, trail []relay.Event, n int) {
	if len(trail) == 0 {
		return
	}
	if len(trail) > n {
		trail = trail[len(trail)-n:]
	}
	fmt.Fprintln(out, "recent events:")
	for _, ev := range trail {
		detail := ev.Robot
		if detail == "" {
			detail = ev.Note
		}
		fmt.Fprintf(out, "  %s %-8s %s\n", ev.At.Format("15:04:05"), ev.Kind, detail)
	}
}
