package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/kokaton/internal/gfx"
)

// RecorderOptions configures a Recorder.
type RecorderOptions struct {
	Dir       string  // Output directory, created if missing
	Width     int     // Frame width in pixels
	Height    int     // Frame height in pixels
	FontScale float64 // Label magnification
	Workers   int     // Concurrent PNG encoders; 0 means 4
	Stride    int     // Keep every Stride-th frame; 0 or 1 keeps all
}

// Recorder is a Screen that writes every presented frame to a numbered PNG.
// Frames are copied on Present and encoded on a bounded worker pool, so the
// game loop never waits on the disk unless all workers are busy.
type Recorder struct {
	*gfx.Canvas

	ctx     context.Context
	group   *errgroup.Group
	dir     string
	stride  int
	frame   int
	written int
}

// NewRecorder creates the output directory and a canvas to draw frames on.
// Cancelling ctx stops accepting frames.
func NewRecorder(ctx context.Context, opts RecorderOptions) (*Recorder, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("session: create %s: %w", opts.Dir, err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	return &Recorder{
		Canvas: gfx.NewCanvas(opts.Width, opts.Height, opts.FontScale),
		ctx:    ctx,
		group:  group,
		dir:    opts.Dir,
		stride: max(1, opts.Stride),
	}, nil
}

// Present queues the current canvas for writing.
// It reports the first write failure of an earlier frame, if any.
func (r *Recorder) Present() error {
	if r.ctx.Err() != nil {
		if err := r.group.Wait(); err != nil {
			return err
		}
		return r.ctx.Err()
	}

	n := r.frame
	r.frame++
	if n%r.stride != 0 {
		return nil
	}

	img := r.Snapshot()
	path := filepath.Join(r.dir, fmt.Sprintf("frame_%06d.png", n))
	r.written++
	r.group.Go(func() error {
		if err := gg.SavePNG(path, img); err != nil {
			return fmt.Errorf("session: write %s: %w", path, err)
		}
		return nil
	})
	return nil
}

// Written returns how many frames were queued for writing.
func (r *Recorder) Written() int {
	return r.written
}

// Close waits for pending frames and returns the first write error.
func (r *Recorder) Close() error {
	return r.group.Wait()
}
