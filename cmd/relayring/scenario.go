package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Scenario describes a reproducible relay run:
//
//	quantum: 1
//	turns: 12
//	robots:
//	  - name: Astro
//	    battery: 5
//	  - name: Bolt
//	    battery: 3
type Scenario struct {
	// Quantum overrides the configured per-turn drain when positive.
	Quantum int `yaml:"quantum"`

	// Turns is the number of turns to execute; the run stops early if
	// every robot retires first.
	Turns int `yaml:"turns"`

	// Robots join the ring in file order.
	Robots []ScenarioRobot `yaml:"robots"`
}

// ScenarioRobot is one roster entry.
type ScenarioRobot struct {
	Name    string `yaml:"name"`
	Battery int    `yaml:"battery"`
}

// LoadScenario reads and strictly parses a scenario file; unknown keys
// are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var sc Scenario
	if err := yaml.UnmarshalStrict(data, &sc); err != nil {
		return nil, fmt.Errorf("unmarshaling scenario file: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate rejects rosters and turn counts the scheduler cannot run.
func (sc *Scenario) Validate() error {
	if len(sc.Robots) == 0 {
		return fmt.Errorf("needs at least one robot")
	}
	if sc.Turns < 1 {
		return fmt.Errorf("turns must be positive, got %d", sc.Turns)
	}
	if sc.Quantum < 0 {
		return fmt.Errorf("quantum cannot be negative, got %d", sc.Quantum)
	}
	for i, rb := range sc.Robots {
		if rb.Name == "" {
			return fmt.Errorf("robot %d: name must not be empty", i)
		}
		if rb.Battery < 1 {
			return fmt.Errorf("robot %q: battery must be positive, got %d", rb.Name, rb.Battery)
		}
	}
	return nil
}
