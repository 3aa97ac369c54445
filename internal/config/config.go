package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Simulation holds all configuration for a simulation run.
type Simulation struct {
	// World
	GridSize   int    `yaml:"grid_size"`   // used when no layout file is given
	LayoutPath string `yaml:"layout_path"` // optional seed file, see internal/layout

	// Rule constants
	StartingLifeEnergy   int `yaml:"starting_life_energy"`
	ReproduceThreshold   int `yaml:"reproduce_threshold"`
	BloomNeighborCount   int `yaml:"bloom_neighbor_count"`
	BloomEnergyThreshold int `yaml:"bloom_energy_threshold"`

	// Driver policy
	TickIntervalMs  int     `yaml:"tick_interval_ms"`
	MaxTurns        int     `yaml:"max_turns"` // 0 means unlimited
	GrowthChance    float64 `yaml:"growth_chance"`
	GrowthMaxAmount int     `yaml:"growth_max_amount"`
	Seed            int64   `yaml:"seed"` // 0 means time-based

	LogLevel string `yaml:"log_level"`
}

// DefaultSimulation returns Simulation config with sensible defaults.
func DefaultSimulation() Simulation {
	return Simulation{
		GridSize:             20,
		StartingLifeEnergy:   10,
		ReproduceThreshold:   50,
		BloomNeighborCount:   4,
		BloomEnergyThreshold: 20,
		TickIntervalMs:       250,
		MaxTurns:             0,
		GrowthChance:         0.2,
		GrowthMaxAmount:      5,
		Seed:                 0,
		LogLevel:             "info",
	}
}

// LoadSimulation reads the config at path on top of the defaults. A
// missing file is not an error: defaults are returned.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// TickInterval returns the auto-stepping interval as a Duration.
func (c Simulation) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// Validate checks the driver-level settings. Rule constants are validated
// by the engine when the Rules value is built.
func (c Simulation) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("grid_size must be positive, got %d", c.GridSize)
	}
	if c.TickIntervalMs <= 0 {
		return fmt.Errorf("tick_interval_ms must be positive, got %d", c.TickIntervalMs)
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("max_turns must not be negative, got %d", c.MaxTurns)
	}
	if c.GrowthChance < 0 || c.GrowthChance > 1 {
		return fmt.Errorf("growth_chance must be in [0,1], got %g", c.GrowthChance)
	}
	if c.GrowthChance > 0 && c.GrowthMaxAmount <= 0 {
		return fmt.Errorf("growth_max_amount must be positive when growth_chance is set, got %d", c.GrowthMaxAmount)
	}
	return nil
}
