// Package config loads settings for the playground binary.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/utkarsh5026/pollme/future"
)

var (
	// ErrInvalidConfig is returned by Load and Validate for settings that
	// cannot be run, including unknown keys in the file.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config controls every scenario the playground runs.
type Config struct {
	Workers    int      `toml:"workers"`
	Countdowns []uint32 `toml:"countdowns"`
	WakeMode   string   `toml:"wake_mode"`
	Message    string   `toml:"message"`
	Initial    int      `toml:"initial"`
	PinCPU     bool     `toml:"pin_cpu"`
	StartRate  float64  `toml:"start_rate"`
	StartBurst int      `toml:"start_burst"`
}

// Default returns the settings the original demo used.
func Default() Config {
	return Config{
		Workers:    10,
		Countdowns: []uint32{10, 20},
		WakeMode:   "repoll",
		Message:    "Hello, world!",
		Initial:    1,
	}
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults.
//
// Example file:
//
//	workers = 10
//	countdowns = [3, 5, 2]
//	wake_mode = "park"
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalidConfig)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	if c.StartRate < 0 || c.StartBurst < 0 {
		return fmt.Errorf("start_rate and start_burst must not be negative: %w", ErrInvalidConfig)
	}
	return nil
}

// Mode parses WakeMode.
func (c Config) Mode() (future.WakeMode, error) {
	switch c.WakeMode {
	case "", "repoll":
		return future.WakeRepoll, nil
	case "park":
		return future.WakePark, nil
	default:
		return 0, fmt.Errorf("wake_mode must be repoll or park, got %q: %w", c.WakeMode, ErrInvalidConfig)
	}
}
