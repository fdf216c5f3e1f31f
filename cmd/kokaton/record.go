package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/games/kokaton"
	"github.com/vovakirdan/kokaton/internal/session"
)

var (
	flagOut       string
	flagFrames    int
	flagStride    int
	flagRealtime  bool
	flagLegTicks  int
	flagFireEvery int
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Run an unattended session and save frames as PNG",
	Long: `Runs a session without a terminal. An autopilot flies the bird through
the eight headings and fires at a fixed interval; every presented frame is
written to the output directory as frame_NNNNNN.png.

The session ends when the bird is hit, after --frames frames, or on Ctrl+C.

Examples:
  kokaton record --out ./frames
  kokaton record --seed 7 --frames 1000 --stride 5
  kokaton record --realtime --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runRecord,
}

func init() {
	recordCmd.Flags().StringVar(&flagOut, "out", "frames", "Output directory for PNG frames")
	recordCmd.Flags().IntVar(&flagFrames, "frames", 500, "Stop after this many frames (0 = until the game ends)")
	recordCmd.Flags().IntVar(&flagStride, "stride", 1, "Save every Nth frame")
	recordCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the configured fps")
	recordCmd.Flags().IntVar(&flagLegTicks, "leg", 25, "Autopilot frames per heading")
	recordCmd.Flags().IntVar(&flagFireEvery, "fire-every", 10, "Autopilot frames between shots (0 = never fire)")
}

func runRecord(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, cfg, err := newGame(kokaton.ID)
	if err != nil {
		logger.Error("cannot create game", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rec, err := session.NewRecorder(ctx, session.RecorderOptions{
		Dir:       expandHome(flagOut),
		Width:     cfg.Viewport.Width,
		Height:    cfg.Viewport.Height,
		FontScale: cfg.HUD.FontScale,
		Stride:    flagStride,
	})
	if err != nil {
		logger.Error("cannot start recorder", "err", err)
		os.Exit(1)
	}

	var clock session.Clock = session.FreeClock{}
	if flagRealtime {
		clock = session.NewRateClock(cfg.Timing.FPS)
	}

	pilot := session.Autopilot{LegTicks: flagLegTicks, FireEvery: flagFireEvery}
	runner := session.NewRunner(game, pilot, rec, clock, logger, session.Options{
		Seed:        seed(),
		MaxFrames:   flagFrames,
		DefeatPause: cfg.Timing.DefeatPause(),
	})

	res, runErr := runner.Run(ctx)
	closeErr := rec.Close()

	if runErr != nil {
		logger.Error("session failed", "session", res.ID, "err", runErr)
		os.Exit(1)
	}
	if closeErr != nil {
		logger.Error("cannot write frames", "err", closeErr)
		os.Exit(1)
	}

	logger.Info("recording saved", "dir", flagOut, "frames", rec.Written(),
		"score", res.State.Score, "outcome", res.State.Outcome)
}
