package config

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return fallbackConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// fallbackConfig mirrors defaults/tictactoe.yaml.
func fallbackConfig() Config {
	return Config{
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.tictactoe/results.db",
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
		Theme: ThemeConfig{
			X:      "bright-red",
			O:      "bright-blue",
			Win:    "bright-green",
			Cursor: "yellow",
			Grid:   "gray",
		},
	}
}
