// tictactoe is a terminal Tic-Tac-Toe with move history and time travel.
//
// Usage:
//
//	tictactoe                  - Play in this terminal (same as "play")
//	tictactoe play             - Play in this terminal
//	tictactoe serve            - Start SSH server for remote play
//	tictactoe results          - Show the results tally
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.tictactoe, ./configs)
//	--db <path>         - Results database path
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-Tac-Toe in your terminal",
	Long: `Tic-Tac-Toe for two players sharing one terminal, with a move list
that lets you jump back to any earlier position and play on from there.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  results  - Show finished games and the tally

Examples:
  tictactoe
  tictactoe play --log-file ./tictactoe.log --log-level debug
  tictactoe serve --ssh :2222
  tictactoe results --limit 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
}

// loadConfig loads the config file and environment, then applies global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
		cfg.Storage.Enabled = true
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, cfg.Validate()
}

// newLogger creates a logger writing to the configured file, or to fallback
// when no file is set. The returned close func is never nil.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the results ledger when it is enabled.
// A store that cannot be opened is logged and play continues without it.
func openStore(cfg config.StorageConfig, logger *log.Logger) *storage.Store {
	if !cfg.Enabled {
		return nil
	}

	store, err := storage.Open(cfg.Path)
	if err != nil {
		logger.Warn("could not open results database", "path", cfg.Path, "error", err)
		return nil
	}
	return store
}
