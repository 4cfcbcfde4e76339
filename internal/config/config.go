package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Sim holds all configuration for a ghostchase simulation run.
type Sim struct {
	// Logging
	LogLevel string `yaml:"log_level" toml:"log_level"`
	LogFile  string `yaml:"log_file" toml:"log_file"` // viewer mode only, keeps the terminal clean

	// Tick loop
	TickRate int    `yaml:"tick_rate" toml:"tick_rate"` // ticks per second
	MaxTicks uint64 `yaml:"max_ticks" toml:"max_ticks"` // 0 = until outcome or interrupt

	// Presentation
	Headless   bool   `yaml:"headless" toml:"headless"`
	LayoutPath string `yaml:"layout_path" toml:"layout_path"` // empty = built-in arena

	Ghost     Ghost          `yaml:"ghost" toml:"ghost"`
	Navigator Navigator      `yaml:"navigator" toml:"navigator"`
	Player    Player         `yaml:"player" toml:"player"`
	Database  DatabaseConfig `yaml:"database" toml:"database"`
}

// Default returns Sim config with sensible defaults.
func Default() Sim {
	return Sim{
		LogLevel:  "info",
		LogFile:   "ghostchase.log",
		TickRate:  30,
		Ghost:     DefaultGhost(),
		Navigator: DefaultNavigator(),
		Player:    DefaultPlayer(),
		Database:  DefaultDatabase(),
	}
}

// TickInterval returns the wall-clock duration of one tick.
func (c Sim) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.TickRate)
}

// Validate checks values the simulation cannot run with.
func (c Sim) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	errs = append(errs, c.Ghost.validate(), c.Navigator.validate(), c.Player.validate())
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Attack range is expected to sit inside chase range but nothing breaks if it doesn't.
	if c.Ghost.AttackDistance > c.Ghost.ChaseDistance {
		slog.Warn("ghost attack_distance exceeds chase_distance",
			"attack_distance", c.Ghost.AttackDistance,
			"chase_distance", c.Ghost.ChaseDistance)
	}
	return nil
}

// Load loads Sim config from a YAML file, or TOML when the path ends in .toml.
// If the file doesn't exist, returns defaults.
func Load(path string) (Sim, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
