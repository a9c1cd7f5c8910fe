package main

import (
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game for two players sharing this terminal. X moves first.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Play the cell, or go to the selected move
  1-9          - Play a cell directly (row by row from the top left)
  Tab          - Switch between board and move list
  [ / ]        - Previous / next move
  G/Home       - Go to game start
  R            - Reverse the move list
  N            - New game
  T            - Results
  ?            - More keys
  Q/Ctrl+C     - Quit

Mouse clicks on cells and moves work too.

Examples:
  tictactoe play
  tictactoe play --log-file ./tictactoe.log --log-level debug
  tictactoe play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	palette, err := cfg.Theme.Palette()
	if err != nil {
		return err
	}

	// Logs would corrupt the screen, so they only go to a file.
	logger, closeLog, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size for the first frame
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Player = localPlayer()

	store := openStore(cfg.Storage, logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Logger:  logger,
		Palette: palette,
		Display: cfg.Display,
		Session: tui.NewSessionName(),
		Config:  rc,
	}
	// Keep the interface nil when there is no store
	if store != nil {
		opts.Store = store
	}

	return tui.Run(opts)
}

// localPlayer names the local user for the results ledger.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
