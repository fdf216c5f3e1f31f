// Package session drives a game outside the interactive terminal: one
// frame at a time through pluggable input, display and clock services.
package session

//go:generate go tool mockgen -destination=./mocks/session_mock.go -package=mocks . InputSource,Screen,Clock

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/gfx"
	"github.com/vovakirdan/kokaton/internal/registry"
)

// InputSource supplies the input of each frame.
type InputSource interface {
	// Poll returns the held actions and presses for frame tick.
	Poll(tick int) core.InputFrame
}

// Screen is a display whose frames are shown by Present.
type Screen interface {
	gfx.Display
	Present() error
}

// Clock paces the loop.
type Clock interface {
	// Wait blocks until the next frame is due.
	Wait(ctx context.Context) error
	// Pause blocks for d.
	Pause(ctx context.Context, d time.Duration) error
}

// Options tunes a Runner.
type Options struct {
	Seed        int64         // RNG seed handed to the game
	MaxFrames   int           // Stop after this many presented frames; 0 runs until the game ends
	DefeatPause time.Duration // How long the losing frame stays up
}

// Result summarizes a finished session.
type Result struct {
	ID     uuid.UUID
	Frames int // Frames presented
	State  core.GameState
}

// Runner runs one game session on the calling goroutine.
type Runner struct {
	game   registry.Game
	input  InputSource
	screen Screen
	clock  Clock
	logger *log.Logger
	opts   Options
}

// NewRunner creates a runner. A nil logger discards log output.
func NewRunner(game registry.Game, input InputSource, screen Screen, clock Clock, logger *log.Logger, opts Options) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:   game,
		input:  input,
		screen: screen,
		clock:  clock,
		logger: logger,
		opts:   opts,
	}
}

// Run resets the game and steps it until it ends, the frame limit is
// reached or ctx is cancelled.
//
// A quit ends the session without drawing. A defeat draws the losing frame,
// holds it for DefeatPause, then ends.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	res := Result{ID: uuid.New()}
	logger := r.logger.With("session", res.ID.String())

	r.game.Reset(core.RuntimeConfig{Seed: r.opts.Seed})
	res.State = r.game.State()
	logger.Info("session started", "game", r.game.ID(), "seed", r.opts.Seed)

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if r.opts.MaxFrames > 0 && res.Frames >= r.opts.MaxFrames {
			logger.Info("frame limit reached", "frames", res.Frames, "score", res.State.Score)
			return res, nil
		}

		step := r.game.Step(r.input.Poll(res.State.Tick))
		res.State = step.State
		logEvents(logger, step.Events)

		if step.State.Outcome == core.OutcomeQuit {
			logger.Info("session ended", "outcome", step.State.Outcome, "score", step.State.Score, "frames", res.Frames)
			return res, nil
		}

		r.game.Render(r.screen)
		if err := r.screen.Present(); err != nil {
			return res, fmt.Errorf("session: present frame %d: %w", res.Frames, err)
		}
		res.Frames++

		if step.State.GameOver {
			if err := r.clock.Pause(ctx, r.opts.DefeatPause); err != nil {
				return res, err
			}
			logger.Info("session ended", "outcome", step.State.Outcome, "score", step.State.Score, "frames", res.Frames)
			return res, nil
		}

		if err := r.clock.Wait(ctx); err != nil {
			return res, err
		}
	}
}

// logEvents writes the notable events of a frame at debug level.
func logEvents(logger *log.Logger, events []core.Event) {
	for _, e := range events {
		logger.Debug(e.Kind.String(), "x", e.X, "y", e.Y)
	}
}
