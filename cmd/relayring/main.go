package main

import (
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/carousel/relay"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:        "relayring",
		Description: "a round-robin robot relay over a circular ring",
		Commands: []*cli.Command{{
			Name:        "play",
			Description: "interactive menu session on stdin",
			Action: withScheduler(func(s *relay.Scheduler, ctx *cli.Context) error {
				return playLoop(newSession(s), os.Stdin, os.Stdout)
			}),
		}, {
			Name:        "run",
			Description: "execute a YAML scenario and print every turn",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "scenario",
					Usage:    "path to the scenario file",
					Required: true,
				},
				&cli.IntFlag{
					Name:  "turns",
					Usage: "override the scenario's turn count",
				},
			},
			Action: runScenario,
		}, {
			Name:        "demo",
			Description: "scripted walk-through of the relay life cycle",
			Action: withScheduler(func(s *relay.Scheduler, ctx *cli.Context) error {
				return demo(s, os.Stdout)
			}),
		}},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// withScheduler loads the configuration, builds a fresh scheduler from
// it, and hands both off to the wrapped action.
func withScheduler(f func(*relay.Scheduler, *cli.Context) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		cfg, err := LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		s, err := cfg.NewScheduler()
		if err != nil {
			return fmt.Errorf("building scheduler: %w", err)
		}
		return f(s, ctx)
	}
}

// runScenario loads the scenario file, seeds the ring with its roster,
// runs the requested turns, and prints the final report.
func runScenario(ctx *cli.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	sc, err := LoadScenario(ctx.String("scenario"))
	if err != nil {
		return err
	}

	quantum := cfg.Quantum
	if sc.Quantum > 0 {
		quantum = sc.Quantum
	}
	s, err := relay.New(
		relay.WithQuantum(quantum),
		relay.WithTrailLimit(cfg.TrailLimit),
	)
	if err != nil {
		return fmt.Errorf("building scheduler: %w", err)
	}
	for _, rb := range sc.Robots {
		if _, err := s.AddRobot(rb.Name, rb.Battery); err != nil {
			return fmt.Errorf("adding robot %q: %w", rb.Name, err)
		}
	}

	turns := sc.Turns
	if ctx.IsSet("turns") {
		turns = ctx.Int("turns")
	}
	executed, err := s.RunTurns(turns)
	if err != nil {
		return err
	}
	for _, t := range executed {
		fmt.Println(turnLine(t))
	}
	if len(executed) < turns {
		fmt.Println("ring drained early")
	}

	fmt.Println()
	printReport(os.Stdout, s.Stats())
	return nil
}
