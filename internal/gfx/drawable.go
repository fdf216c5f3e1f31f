// Package gfx is the image service of the arcade: it loads, transforms and
// displays drawables. Game code only ever sees *Drawable handles and the
// Display interface; the raster (Canvas) and terminal (CellDisplay) backends
// decide how a drawable ends up on an actual surface.
package gfx

import (
	"image"
	"image/color"
)

// Drawable is an immutable image handle.
type Drawable struct {
	img image.Image
}

// NewDrawable wraps an image. The image must not be modified afterwards.
func NewDrawable(img image.Image) *Drawable {
	return &Drawable{img: img}
}

// Image returns the underlying image.
func (d *Drawable) Image() image.Image {
	return d.img
}

// Width returns the drawable width in pixels.
func (d *Drawable) Width() int {
	return d.img.Bounds().Dx()
}

// Height returns the drawable height in pixels.
func (d *Drawable) Height() int {
	return d.img.Bounds().Dy()
}

// At returns the color at (x, y) relative to the drawable's top-left corner.
func (d *Drawable) At(x, y int) color.Color {
	b := d.img.Bounds()
	return d.img.At(b.Min.X+x, b.Min.Y+y)
}

// Opaque reports whether the pixel at (x, y) is at least half covered.
func (d *Drawable) Opaque(x, y int) bool {
	if x < 0 || y < 0 || x >= d.Width() || y >= d.Height() {
		return false
	}
	_, _, _, a := d.At(x, y).RGBA()
	return a >= 0x8000
}
