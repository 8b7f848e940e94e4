package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDensity = 0.7
	DefaultTickMs  = 50
)

// Validation errors.
var (
	// ErrDensityRange indicates a seed density outside [0, 1].
	ErrDensityRange = errors.New("config: density must be within [0, 1]")

	// ErrTickTooSmall indicates a cadence interval below one millisecond.
	ErrTickTooSmall = errors.New("config: tick_ms must be at least 1")
)

type Config struct {
	Density float64 `yaml:"density"`
	TickMs  int     `yaml:"tick_ms"`
	Seed    int64   `yaml:"seed"`
	LogFile string  `yaml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Density: DefaultDensity,
		TickMs:  DefaultTickMs,
	}
}

// Load reads a YAML config file, unmarshaling over the defaults so
// absent keys keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the config file location: $DOTLIFE_CONFIG when set,
// otherwise dotlife/config.yaml under the user config directory.
func Path() string {
	if p := os.Getenv("DOTLIFE_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dotlife", "config.yaml")
}

func (c *Config) Validate() error {
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w, got %v", ErrDensityRange, c.Density)
	}
	if c.TickMs < 1 {
		return fmt.Errorf("%w, got %d", ErrTickTooSmall, c.TickMs)
	}
	return nil
}

// Tick returns the cadence interval, which doubles as the input-poll
// bound.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}
