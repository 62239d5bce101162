// Package config loads the application configuration from YAML. All
// settings have working defaults; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the cubik CLI.
type Config struct {
	Keys      KeysConfig      `yaml:"keys"`
	Animation AnimationConfig `yaml:"animation"`
	Shuffle   ShuffleConfig   `yaml:"shuffle"`
	Database  DatabaseConfig  `yaml:"database"`
}

// KeysConfig rebinds face command keys. Empty entries keep the
// engine's defaults. Keys are single letters; case is ignored.
type KeysConfig struct {
	Top              string `yaml:"top"`
	Bottom           string `yaml:"bottom"`
	Left             string `yaml:"left"`
	Right            string `yaml:"right"`
	Front            string `yaml:"front"`
	Back             string `yaml:"back"`
	CenterVertical   string `yaml:"center_vertical"`
	CenterHorizontal string `yaml:"center_horizontal"`
	CenterDouble     string `yaml:"center_double"`
}

// AnimationConfig controls rotation animation.
type AnimationConfig struct {
	Enabled    bool `yaml:"enabled"`
	DurationMs int  `yaml:"duration_ms"`
}

// ShuffleConfig controls the automated randomizer.
type ShuffleConfig struct {
	MinMoves       int `yaml:"min_moves"`
	MaxMoves       int `yaml:"max_moves"`
	InitialDelayMs int `yaml:"initial_delay_ms"`
	MoveDelayMs    int `yaml:"move_delay_ms"`
}

// DatabaseConfig points at the session recording database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Animation: AnimationConfig{Enabled: true, DurationMs: 280},
		Shuffle: ShuffleConfig{
			MinMoves:       30,
			MaxMoves:       60,
			InitialDelayMs: 1000,
			MoveDelayMs:    150,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubik", "config.yaml"), nil
}

// Load reads a YAML config file, applying it over the defaults. A
// missing file returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings the engine cannot fix up itself.
func (c *Config) Validate() error {
	for name, key := range c.KeyBindings() {
		if len(key) != 1 {
			return fmt.Errorf("invalid config: key for %s must be a single letter, got %q", name, key)
		}
	}
	if c.Animation.DurationMs < 0 {
		return fmt.Errorf("invalid config: negative animation duration")
	}
	if c.Shuffle.MinMoves < 1 || c.Shuffle.MaxMoves < c.Shuffle.MinMoves {
		return fmt.Errorf("invalid config: shuffle move range [%d, %d]",
			c.Shuffle.MinMoves, c.Shuffle.MaxMoves)
	}
	return nil
}

// KeyBindings returns the non-empty key overrides by face name.
func (c *Config) KeyBindings() map[string]string {
	bindings := make(map[string]string)
	add := func(name, key string) {
		if key != "" {
			bindings[name] = key
		}
	}
	add("top", c.Keys.Top)
	add("bottom", c.Keys.Bottom)
	add("left", c.Keys.Left)
	add("right", c.Keys.Right)
	add("front", c.Keys.Front)
	add("back", c.Keys.Back)
	add("center_vertical", c.Keys.CenterVertical)
	add("center_horizontal", c.Keys.CenterHorizontal)
	add("center_double", c.Keys.CenterDouble)
	return bindings
}
