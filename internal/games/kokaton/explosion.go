package kokaton

import (
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/gfx"
)

// ExplosionFrames builds the four animation frames from one image:
// as is, mirrored horizontally, mirrored vertically, and both.
func ExplosionFrames(base *gfx.Drawable) [4]*gfx.Drawable {
	return [4]*gfx.Drawable{
		base,
		gfx.Flip(base, true, false),
		gfx.Flip(base, false, true),
		gfx.Flip(base, true, true),
	}
}

// Explosion is a short-lived effect left where a bomb was destroyed.
type Explosion struct {
	box    core.Rect
	life   int
	frame  int
	frames [4]*gfx.Drawable
}

// NewExplosion creates an explosion centered on (cx, cy) that lives for life updates.
func NewExplosion(cx, cy, life int, frames [4]*gfx.Drawable) *Explosion {
	first := frames[0]
	return &Explosion{
		box:    core.RectFromCenter(cx, cy, first.Width(), first.Height()),
		life:   life,
		frames: frames,
	}
}

// Update spends one unit of life and, while some remains, shows the next frame.
func (e *Explosion) Update() {
	e.life--
	if e.life > 0 {
		e.frame = (e.frame + 1) % len(e.frames)
	}
}

// Alive reports whether the explosion has life left.
func (e *Explosion) Alive() bool { return e.life > 0 }

// Life returns the remaining life.
func (e *Explosion) Life() int { return e.life }

// Frame returns the current animation frame index.
func (e *Explosion) Frame() int { return e.frame }

// Render draws the current frame centered on the explosion.
func (e *Explosion) Render(dst gfx.Display) {
	blitCentered(dst, e.frames[e.frame], e.box)
}
