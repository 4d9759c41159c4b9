// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultRefreshSignal = 8
	DefaultTooltipLimit  = 5
	DefaultPickerPrompt  = "Notifications"
	DefaultPickerWidth   = 600
	DefaultPickerHeight  = 400
)

// Config represents the waybar-widgets configuration.
type Config struct {
	Power   PowerConfig   `toml:"power"`
	History HistoryConfig `toml:"history"`
	Picker  PickerConfig  `toml:"picker"`
}

// PowerConfig holds settings for the power profile widget.
type PowerConfig struct {
	// AsusctlCommand overrides the asusctl executable.
	AsusctlCommand string `toml:"asusctl_command"`

	// RefreshSignal is the SIGRTMIN offset sent to waybar after a
	// profile change.
	RefreshSignal int `toml:"refresh_signal"`

	// Glyphs overrides the bar icon per profile label
	// (e.g. Balanced = "B").
	Glyphs map[string]string `toml:"glyphs"`
}

// HistoryConfig holds settings for the notification history widget.
type HistoryConfig struct {
	// MakoctlCommand overrides the makoctl executable.
	MakoctlCommand string `toml:"makoctl_command"`

	// TooltipLimit caps how many summaries the tooltip shows.
	TooltipLimit int `toml:"tooltip_limit"`
}

// PickerConfig holds wofi settings.
type PickerConfig struct {
	Command string `toml:"command"`
	Prompt  string `toml:"prompt"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Power: PowerConfig{
			RefreshSignal: DefaultRefreshSignal,
			Glyphs:        make(map[string]string),
		},
		History: HistoryConfig{
			TooltipLimit: DefaultTooltipLimit,
		},
		Picker: PickerConfig{
			Prompt: DefaultPickerPrompt,
			Width:  DefaultPickerWidth,
			Height: DefaultPickerHeight,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "waybar-widgets", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
