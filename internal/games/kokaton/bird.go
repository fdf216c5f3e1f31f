package kokaton

import (
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/gfx"
)

// Pose overrides the directional sprite of the bird.
type Pose int

const (
	PoseNormal  Pose = iota // Sprite follows the facing
	PoseVictory             // Shown after a kill until the bird moves again
	PoseDefeat              // Shown on the losing frame
)

func (p Pose) String() string {
	switch p {
	case PoseNormal:
		return "normal"
	case PoseVictory:
		return "victory"
	case PoseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Bird is the player entity.
// Its bounding box keeps the size of the idle sprite; rotated and pose images
// are drawn centered on it.
type Bird struct {
	box     core.Rect
	facing  Direction
	pose    Pose
	speed   int
	sprites *Sprites
	victory *gfx.Drawable
	defeat  *gfx.Drawable
}

// NewBird creates a bird centered on (cx, cy), facing East.
func NewBird(cx, cy, speed int, sprites *Sprites, victory, defeat *gfx.Drawable) *Bird {
	idle := sprites.Idle()
	return &Bird{
		box:     core.RectFromCenter(cx, cy, idle.Width(), idle.Height()),
		facing:  East,
		speed:   speed,
		sprites: sprites,
		victory: victory,
		defeat:  defeat,
	}
}

// Box returns the bounding box.
func (b *Bird) Box() core.Rect { return b.box }

// Facing returns the direction of the last non-zero move.
func (b *Bird) Facing() Direction { return b.facing }

// Pose returns the current pose.
func (b *Bird) Pose() Pose { return b.pose }

// SetPose switches the displayed pose.
func (b *Bird) SetPose(p Pose) { b.pose = p }

// Update moves the bird by the sum of the held directional actions.
// A move that would leave the viewport on either axis is undone as a whole.
// Any non-zero input turns the bird, even when the move itself is undone.
func (b *Bird) Update(in core.InputFrame, viewport core.Rect) {
	dx, dy := 0, 0
	if in.Has(core.ActionUp) {
		dy -= b.speed
	}
	if in.Has(core.ActionDown) {
		dy += b.speed
	}
	if in.Has(core.ActionLeft) {
		dx -= b.speed
	}
	if in.Has(core.ActionRight) {
		dx += b.speed
	}

	d, ok := DirectionOf(dx, dy)
	if !ok {
		return
	}

	next := b.box.Move(dx, dy)
	if h, v := core.Contained(next, viewport); h && v {
		b.box = next
	}
	b.facing = d
	b.pose = PoseNormal
}

// Drawable returns the image for the current pose and facing.
func (b *Bird) Drawable() *gfx.Drawable {
	switch b.pose {
	case PoseVictory:
		return b.victory
	case PoseDefeat:
		return b.defeat
	default:
		return b.sprites.Get(b.facing)
	}
}

// Render draws the bird centered on its box.
func (b *Bird) Render(dst gfx.Display) {
	blitCentered(dst, b.Drawable(), b.box)
}

// blitCentered draws d centered on box.
func blitCentered(dst gfx.Display, d *gfx.Drawable, box core.Rect) {
	cx, cy := box.Center()
	dst.Blit(d, cx-d.Width()/2, cy-d.Height()/2)
}
