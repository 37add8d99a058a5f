// Package relay schedules robots in round-robin turns over a circular
// ring, with battery drain, pausing, retirement scoring, and an event
// trail.
//
// 🚀 What is a relay?
//
//	Robots line up in a circle and take turns. Each turn the robot at
//	the front spends battery and steps to the back of the line; a
//	paused robot is skipped, and a robot whose battery runs dry leaves
//	the circle for the dock. The circle itself is a ring.Ring, so every
//	turn costs O(1).
//
// ✨ Key features:
//   - AddRobot / RunTurn / RunTurns with the classic relay scoring
//     (+2 per arrival, +1 per turn, +3 retirement bonus)
//   - retirement never skips the successor: after the front robot
//     leaves, the next robot in line is up
//   - pause & resume by ID or by predicate, order-neutral
//   - balanced team splitting and O(1) team adoption
//   - a FIFO dock of retired robots and a bounded event trail with
//     unique event IDs
//
// ⚙️ Usage:
//
//	sched, _ := relay.New(relay.WithQuantum(1))
//	sched.AddRobot("Astro", 2)
//	sched.AddRobot("Bolt", 3)
//
//	turn, _ := sched.RunTurn() // Astro drains 2 -> 1, goes to the back
//	fmt.Println(turn.Robot.Name, turn.Kind)
//
//	rep := sched.Stats() // robots, avg battery, ticks, score
//
// Concurrency: a Scheduler is single-threaded by contract, like the
// ring it wraps; guard it externally if shared.
//
// See example_test.go for full turn-by-turn scenarios.
package relay
