package gfx

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/go-gl/mathgl/mgl64"
	xdraw "golang.org/x/image/draw"
)

// RotateScale returns d rotated counter-clockwise by angle degrees and zoomed
// by scale. The result grows to the bounding box of the rotated image, with
// transparent corners, and is centered on the original.
func RotateScale(d *Drawable, angle, scale float64) *Drawable {
	if math.Mod(angle, 360) == 0 {
		return Scale(d, scale)
	}

	w := float64(d.Width()) * scale
	h := float64(d.Height()) * scale
	rad := mgl64.DegToRad(angle)
	cos := math.Abs(math.Cos(rad))
	sin := math.Abs(math.Sin(rad))

	// Round before ceiling so 90° turns don't pick up a spare pixel from float noise
	nw := int(math.Ceil(math.Round((w*cos+h*sin)*1e6) / 1e6))
	nh := int(math.Ceil(math.Round((w*sin+h*cos)*1e6) / 1e6))

	dc := gg.NewContext(nw, nh)
	dc.Translate(float64(nw)/2, float64(nh)/2)
	// gg rotates clockwise on screen; negate for counter-clockwise
	dc.Rotate(-rad)
	dc.Scale(scale, scale)
	dc.DrawImageAnchored(d.Image(), 0, 0, 0.5, 0.5)

	return NewDrawable(dc.Image())
}

// Scale returns d zoomed by scale without rotation.
func Scale(d *Drawable, scale float64) *Drawable {
	if scale == 1 {
		return d
	}
	nw := max(1, int(math.Round(float64(d.Width())*scale)))
	nh := max(1, int(math.Round(float64(d.Height())*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), d.Image(), d.Image().Bounds(), xdraw.Over, nil)
	return NewDrawable(dst)
}

// Flip mirrors d horizontally and/or vertically.
func Flip(d *Drawable, horizontal, vertical bool) *Drawable {
	w, h := d.Width(), d.Height()
	dc := gg.NewContext(w, h)
	if horizontal {
		dc.Translate(float64(w), 0)
		dc.Scale(-1, 1)
	}
	if vertical {
		dc.Translate(0, float64(h))
		dc.Scale(1, -1)
	}
	b := d.Image().Bounds()
	dc.DrawImage(d.Image(), -b.Min.X, -b.Min.Y)
	return NewDrawable(dc.Image())
}

// Circle returns a filled circle of the given radius on a transparent square
// of side 2*radius.
func Circle(radius int, c color.Color) *Drawable {
	size := 2 * radius
	dc := gg.NewContext(size, size)
	dc.DrawCircle(float64(radius), float64(radius), float64(radius))
	dc.SetColor(c)
	dc.Fill()
	return NewDrawable(dc.Image())
}
