// Package config provides YAML-based configuration loading for the game,
// with environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Config contains all settings for the game, the SSH server and the results ledger.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Theme   ThemeConfig   `yaml:"theme"`
	Display DisplayConfig `yaml:"display"`
}

// StorageConfig controls the results ledger.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled" env:"TICTACTOE_RESULTS"`
	Path    string `yaml:"path" env:"TICTACTOE_DB"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"TICTACTOE_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key" env:"TICTACTOE_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"TICTACTOE_IDLE_TIMEOUT"`
}

// LogConfig controls logging. An empty File discards logs in local play.
type LogConfig struct {
	Level string `yaml:"level" env:"TICTACTOE_LOG_LEVEL"`
	File  string `yaml:"file" env:"TICTACTOE_LOG_FILE"`
}

// ThemeConfig names the colors used on the board (see core.ParseColor).
type ThemeConfig struct {
	X      string `yaml:"x"`
	O      string `yaml:"o"`
	Win    string `yaml:"win"`
	Cursor string `yaml:"cursor"`
	Grid   string `yaml:"grid"`
}

// DisplayConfig holds the initial presentation state of a session.
type DisplayConfig struct {
	ReverseHistory bool `yaml:"reverse_history"` // Show newest move first
	ShowHelp       bool `yaml:"show_help"`       // Start with the full key help
}

// Palette is a resolved ThemeConfig.
type Palette struct {
	X      core.Color
	O      core.Color
	Win    core.Color
	Cursor core.Color
	Grid   core.Color
}

// Palette resolves the theme color names.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name  string
		value string
		dst   *core.Color
	}{
		{"x", t.X, &p.X},
		{"o", t.O, &p.O},
		{"win", t.Win, &p.Win},
		{"cursor", t.Cursor, &p.Cursor},
		{"grid", t.Grid, &p.Grid},
	}

	for _, f := range fields {
		c, err := core.ParseColor(f.value)
		if err != nil {
			return p, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// Validate checks values that cannot be expressed by the YAML types.
func (c Config) Validate() error {
	if _, err := c.Theme.Palette(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}
	if c.Storage.Enabled && c.Storage.Path == "" {
		return fmt.Errorf("config: storage.path is required when storage is enabled")
	}
	return nil
}
