package kokaton

import (
	"image/color"
	"math/rand"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/gfx"
)

// bombColors is the palette a bomb picks its fill from.
var bombColors = []color.RGBA{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{255, 0, 255, 255},
	{0, 255, 255, 255},
}

// Bomb is a bouncing obstacle.
type Bomb struct {
	box    core.Rect
	vx, vy int
	img    *gfx.Drawable
}

// NewBomb spawns a bomb with random radius, color, center and diagonal velocity.
// The center may lie anywhere in the viewport, edges included.
func NewBomb(rng *rand.Rand, viewport core.Rect, cfg config.BombsConfig) *Bomb {
	radius := cfg.MinRadius + rng.Intn(cfg.MaxRadius-cfg.MinRadius+1)
	fill := bombColors[rng.Intn(len(bombColors))]
	cx := viewport.X + rng.Intn(viewport.W+1)
	cy := viewport.Y + rng.Intn(viewport.H+1)

	vx, vy := cfg.Speed, cfg.Speed
	if rng.Intn(2) == 0 {
		vx = -vx
	}
	if rng.Intn(2) == 0 {
		vy = -vy
	}

	return newBomb(core.RectFromCenter(cx, cy, 2*radius, 2*radius), vx, vy, gfx.Circle(radius, fill))
}

func newBomb(box core.Rect, vx, vy int, img *gfx.Drawable) *Bomb {
	return &Bomb{box: box, vx: vx, vy: vy, img: img}
}

// Box returns the bounding box.
func (b *Bomb) Box() core.Rect { return b.box }

// Velocity returns the per-tick displacement.
func (b *Bomb) Velocity() (int, int) { return b.vx, b.vy }

// Update bounces the bomb off the viewport edges and moves it.
// The bounce test looks at the box before the move. On an axis that sticks
// out, velocity is pointed back inside rather than blindly negated, so a bomb
// spawned across an edge cannot get stuck flipping in place.
func (b *Bomb) Update(viewport core.Rect) {
	h, v := core.Contained(b.box, viewport)
	if !h {
		b.vx = reflect(b.vx, b.box.X < viewport.X, b.box.Right() > viewport.Right())
	}
	if !v {
		b.vy = reflect(b.vy, b.box.Y < viewport.Y, b.box.Bottom() > viewport.Bottom())
	}
	b.box = b.box.Move(b.vx, b.vy)
}

// reflect returns the velocity component after a bounce.
func reflect(vel int, pastLow, pastHigh bool) int {
	switch {
	case pastLow && !pastHigh:
		return core.Abs(vel)
	case pastHigh && !pastLow:
		return -core.Abs(vel)
	default:
		return -vel
	}
}

// Render draws the bomb.
func (b *Bomb) Render(dst gfx.Display) {
	dst.Blit(b.img, b.box.X, b.box.Y)
}
