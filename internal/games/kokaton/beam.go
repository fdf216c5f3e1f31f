package kokaton

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/gfx"
)

// Beam is a projectile fired along the bird's facing.
type Beam struct {
	box    core.Rect
	vx, vy int
	img    *gfx.Drawable
}

// NewBeam fires a beam from the bird's leading edge.
// The image is base turned to the firing angle, and the beam is placed just
// outside the bird's box along the facing.
func NewBeam(bird *Bird, base *gfx.Drawable, speed int) *Beam {
	ux, uy := bird.Facing().Unit()
	vx, vy := ux*speed, uy*speed

	angle := mgl64.RadToDeg(math.Atan2(float64(-vy), float64(vx)))
	img := gfx.RotateScale(base, angle, 1)

	bb := bird.Box()
	bx, by := bb.Center()
	cx := bx + ux*(bb.W/2+img.Width()/2)
	cy := by + uy*(bb.H/2+img.Height()/2)

	return &Beam{
		box: core.RectFromCenter(cx, cy, img.Width(), img.Height()),
		vx:  vx,
		vy:  vy,
		img: img,
	}
}

// Box returns the bounding box.
func (b *Beam) Box() core.Rect { return b.box }

// Velocity returns the per-tick displacement.
func (b *Beam) Velocity() (int, int) { return b.vx, b.vy }

// Update moves the beam.
func (b *Beam) Update() {
	b.box = b.box.Move(b.vx, b.vy)
}

// Expired reports whether any edge of the beam touches or crosses the viewport edge.
func (b *Beam) Expired(viewport core.Rect) bool {
	return b.box.X <= viewport.X || b.box.Right() >= viewport.Right() ||
		b.box.Y <= viewport.Y || b.box.Bottom() >= viewport.Bottom()
}

// Render draws the beam.
func (b *Beam) Render(dst gfx.Display) {
	dst.Blit(b.img, b.box.X, b.box.Y)
}
