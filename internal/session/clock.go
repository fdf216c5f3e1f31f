package session

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateClock paces frames at a fixed rate.
type RateClock struct {
	limiter *rate.Limiter
}

// NewRateClock creates a clock that lets fps frames through per second.
func NewRateClock(fps int) *RateClock {
	return &RateClock{limiter: rate.NewLimiter(rate.Limit(fps), 1)}
}

// Wait blocks until the next frame slot.
func (c *RateClock) Wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}

// Pause sleeps for d or until ctx is done.
func (c *RateClock) Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FreeClock runs frames back to back and skips pauses.
// Used when recording, where wall-clock pacing is irrelevant.
type FreeClock struct{}

// Wait returns immediately.
func (FreeClock) Wait(ctx context.Context) error { return ctx.Err() }

// Pause returns immediately.
func (FreeClock) Pause(ctx context.Context, _ time.Duration) error { return ctx.Err() }
