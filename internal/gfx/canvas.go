package gfx

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Canvas is a raster Display backed by a gg context.
type Canvas struct {
	dc        *gg.Context
	fontScale float64
}

// NewCanvas creates a w x h canvas. Text is drawn with the built-in 7x13
// face magnified by fontScale.
func NewCanvas(w, h int, fontScale float64) *Canvas {
	dc := gg.NewContext(w, h)
	dc.SetFontFace(basicfont.Face7x13)
	if fontScale <= 0 {
		fontScale = 1
	}
	return &Canvas{dc: dc, fontScale: fontScale}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Clear fills the whole canvas.
func (c *Canvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// Blit draws d with its top-left corner at (x, y).
func (c *Canvas) Blit(d *Drawable, x, y int) {
	b := d.Image().Bounds()
	c.dc.DrawImage(d.Image(), x-b.Min.X, y-b.Min.Y)
}

// Text draws s centered on (x, y).
func (c *Canvas) Text(x, y int, s string, col color.Color) {
	c.dc.Push()
	c.dc.SetColor(col)
	c.dc.Translate(float64(x), float64(y))
	c.dc.Scale(c.fontScale, c.fontScale)
	c.dc.DrawStringAnchored(s, 0, 0, 0.5, 0.5)
	c.dc.Pop()
}

// Image returns the live canvas image. It changes with the next draw call.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Snapshot returns a copy of the current canvas contents.
func (c *Canvas) Snapshot() *image.RGBA {
	src := c.dc.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

// SavePNG writes the current canvas contents to path.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
