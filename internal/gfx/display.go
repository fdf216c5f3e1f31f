package gfx

import "image/color"

// Display is a drawing surface measured in world pixels.
// Blit places a drawable with its top-left corner at (x, y). Text draws a
// label centered on (x, y).
type Display interface {
	Size() (w, h int)
	Clear(c color.Color)
	Blit(d *Drawable, x, y int)
	Text(x, y int, text string, c color.Color)
}

var (
	_ Display = (*Canvas)(nil)
	_ Display = (*CellDisplay)(nil)
)
