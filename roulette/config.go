package roulette

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk simulator configuration. Zero values fall back
// to the defaults, so a config file only needs the fields it wants to
// change.
type Config struct {
	Trials          int     `yaml:"trials"`
	Workers         int     `yaml:"workers"`
	Bankroll        float64 `yaml:"bankroll"`
	LossThreshold   int     `yaml:"loss_threshold"`
	MaxSpins        int     `yaml:"max_spins"`
	Target          float64 `yaml:"target"`
	Seed            int64   `yaml:"seed"`
	MaxTrialsPerSec float64 `yaml:"max_trials_per_sec"`
}

// DefaultConfig returns the built-in simulation parameters. A Seed of
// zero means "pick one at startup".
func DefaultConfig() Config {
	return Config{
		Trials:        10000,
		Workers:       runtime.GOMAXPROCS(0),
		Bankroll:      100,
		LossThreshold: 5,
		MaxSpins:      1000,
	}
}

// LoadConfig reads a YAML config file, layered over the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// Validate checks the run-level fields and the per-trial settings they
// expand into.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.MaxTrialsPerSec < 0 {
		return fmt.Errorf("max_trials_per_sec must not be negative, got %.2f", c.MaxTrialsPerSec)
	}
	return c.Settings(0).Validate()
}

// Settings expands the config into the settings for one trial. Each
// trial gets its own derived seed so trials are independent but the
// whole run stays reproducible.
func (c Config) Settings(trial int) Settings {
	return Settings{
		Bankroll:      c.Bankroll,
		LossThreshold: c.LossThreshold,
		MaxSpins:      c.MaxSpins,
		Target:        c.Target,
		Seed:          c.Seed + int64(trial),
	}
}
