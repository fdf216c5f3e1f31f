package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/games/kokaton"
	"github.com/vovakirdan/kokaton/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive session in the terminal.

Controls:
  Arrows/WASD - Move (two keys fly diagonally)
  Space       - Fire a beam
  Ctrl+S      - Save a PNG screenshot to ~/.kokaton/screenshots
  Q/Esc       - Quit

Examples:
  kokaton play
  kokaton play --seed 42 --log-level debug
  kokaton play --config ./my-kokaton.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	game, cfg, err := newGame(kokaton.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The UI owns stdout, so logs go to a file
	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create log directory: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(logFile)
	if err != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.FPS,
		Seed:     seed(),
	}

	runErr := tui.Run(game, cfg, rc, logger)
	if runErr != nil {
		logger.Error("session failed", "err", runErr)
	}

	// Close log before potential exit
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
