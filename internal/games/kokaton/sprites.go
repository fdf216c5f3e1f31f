package kokaton

import "github.com/vovakirdan/kokaton/internal/gfx"

// Sprites is the per-direction image table of the bird.
// It is built once and never modified.
type Sprites struct {
	table [8]*gfx.Drawable
}

// NewSprites builds the table from a left-facing base image zoomed by scale.
// Headings on the right half turn the mirrored image, headings on the left
// half turn the original, so the bird is never drawn upside down.
func NewSprites(base *gfx.Drawable, scale float64) *Sprites {
	left := gfx.RotateScale(base, 0, scale)
	right := gfx.Flip(left, true, false)

	s := &Sprites{}
	s.table[East] = right
	s.table[NorthEast] = gfx.RotateScale(right, 45, 1)
	s.table[North] = gfx.RotateScale(right, 90, 1)
	s.table[NorthWest] = gfx.RotateScale(left, -45, 1)
	s.table[West] = left
	s.table[SouthWest] = gfx.RotateScale(left, 45, 1)
	s.table[South] = gfx.RotateScale(right, -90, 1)
	s.table[SouthEast] = gfx.RotateScale(right, -45, 1)
	return s
}

// Get returns the image for direction d.
func (s *Sprites) Get(d Direction) *gfx.Drawable {
	return s.table[d]
}

// Idle returns the default, right-facing image.
func (s *Sprites) Idle() *gfx.Drawable {
	return s.table[East]
}
