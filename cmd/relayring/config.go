package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/carousel/relay"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "RELAYRING"
	appName      = "relayring"
)

// Config tunes the scheduler. Values come from an optional YAML file
// (RELAYRING_CONFIG_FILE, default ~/.config/relayring.yaml) overridden
// by RELAYRING_* environment variables. Defaults are applied in code
// after both passes so a file value survives an unset variable.
type Config struct {
	// Quantum is the battery drained per turn; 0 means the default.
	Quantum int `envconfig:"RELAYRING_QUANTUM"     yaml:"quantum"`

	// TrailLimit bounds the event trail; 0 keeps every event.
	TrailLimit int `envconfig:"RELAYRING_TRAIL_LIMIT" yaml:"trailLimit"`
}

// LoadConfig assembles the configuration: YAML file first, environment
// second, code defaults last.
func LoadConfig() (*Config, error) {
	configFile := os.Getenv(envVarPrefix + "_CONFIG_FILE")
	if configFile == "" {
		configFile = filepath.Join(
			os.Getenv("HOME"),
			".config",
			appName+".yaml",
		)
	}

	var c Config
	data, err := os.ReadFile(configFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.UnmarshalStrict(data, &c); err != nil {
			return nil, fmt.Errorf("unmarshaling config file: %w", err)
		}
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	if c.Quantum == 0 {
		c.Quantum = relay.DefaultQuantum
	}

	return &c, nil
}

// Validate rejects values the scheduler cannot accept.
func (c *Config) Validate() error {
	if c.Quantum < 1 {
		return fmt.Errorf("quantum must be positive, got %d", c.Quantum)
	}
	if c.TrailLimit < 0 {
		return fmt.Errorf("trail limit cannot be negative, got %d", c.TrailLimit)
	}
	return nil
}

// NewScheduler builds a relay.Scheduler from the configuration.
func (c *Config) NewScheduler() (*relay.Scheduler, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return relay.New(
		relay.WithQuantum(c.Quantum),
		relay.WithTrailLimit(c.TrailLimit),
	)
}
