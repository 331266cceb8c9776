// Package config provides configuration types and defaults for warble.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/warble/internal/pack"
	"github.com/zjrosen/warble/internal/soundboard"
)

// BurstConfig tunes the rapid-usage detector.
type BurstConfig struct {
	// Window is the trailing time window considered for burst detection.
	Window time.Duration `mapstructure:"window"`

	// Threshold is the number of triggers inside the window that counts
	// as rapid usage.
	Threshold int `mapstructure:"threshold"`
}

// Config holds all configuration options for warble.
type Config struct {
	// PacksDir is the directory containing sound pack subdirectories.
	PacksDir string `mapstructure:"packs_dir"`

	// DefaultPack is the pack id used at startup and as the resolver
	// fallback.
	DefaultPack string `mapstructure:"default_pack"`

	// Volume is the playback gain in [0.0, 1.0].
	Volume float64 `mapstructure:"volume"`

	// Muted starts the session muted.
	Muted bool `mapstructure:"muted"`

	Burst BurstConfig `mapstructure:"burst"`

	// StatusClearAfter is how long transient status text stays visible.
	StatusClearAfter time.Duration `mapstructure:"status_clear_after"`

	// LogFile is the debug log destination. Empty disables logging.
	LogFile string `mapstructure:"log_file"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		PacksDir:    DefaultPacksDir(),
		DefaultPack: pack.DefaultPack,
		Volume:      0.5,
		Muted:       false,
		Burst: BurstConfig{
			Window:    soundboard.DefaultBurstWindow,
			Threshold: soundboard.DefaultBurstThreshold,
		},
		StatusClearAfter: 4 * time.Second,
	}
}

// Validate checks configuration for errors.
func (c Config) Validate() error {
	if c.Volume < 0.0 || c.Volume > 1.0 {
		return fmt.Errorf("volume %.2f out of range [0.0, 1.0]", c.Volume)
	}
	if c.DefaultPack == "" {
		return fmt.Errorf("default_pack is required")
	}
	if c.Burst.Threshold < 0 {
		return fmt.Errorf("burst.threshold must not be negative")
	}
	return nil
}

// DefaultConfigDir returns the warble config directory
// (~/.config/warble, or the platform equivalent).
func DefaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "warble")
}

// DefaultPacksDir returns the default sound pack directory.
func DefaultPacksDir() string {
	return filepath.Join(DefaultConfigDir(), "packs")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Warble Configuration

# Directory containing sound packs. Each pack is a subdirectory with a
# pack.json manifest and its audio files:
#   packs/peon/pack.json
#   packs/peon/ready.wav
# packs_dir: ~/.config/warble/packs

# Pack used at startup and for unrecognized models
default_pack: peon

# Playback volume, 0.0 - 1.0
volume: 0.5

# Start muted
muted: false

# Rapid-usage ("annoyed") detection
burst:
  window: 10s    # trailing window
  threshold: 3   # triggers within the window that count as rapid

# How long transient status text stays visible in the host UI
status_clear_after: 4s

# Debug log file (disabled when unset)
# log_file: ~/.config/warble/warble.log
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
