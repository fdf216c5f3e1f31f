package gfx

import (
	"image/color"
	"unicode/utf8"

	"github.com/vovakirdan/kokaton/internal/core"
)

// blockRune fills one terminal cell of an opaque sprite pixel.
const blockRune = '█'

// CellDisplay draws a world of worldW x worldH pixels onto a character
// screen. Each cell shows the sprite pixel found under its center.
type CellDisplay struct {
	screen *core.Screen
	worldW int
	worldH int
}

// NewCellDisplay creates a display that scales the world onto screen.
func NewCellDisplay(screen *core.Screen, worldW, worldH int) *CellDisplay {
	return &CellDisplay{screen: screen, worldW: worldW, worldH: worldH}
}

// Size returns the world size, not the cell grid.
func (c *CellDisplay) Size() (int, int) {
	return c.worldW, c.worldH
}

// Clear blanks the screen. Terminal cells have no fill color, so col is ignored.
func (c *CellDisplay) Clear(color.Color) {
	c.screen.Clear()
}

// Blit samples d at every cell center it covers. A drawable too small to
// cover any cell center still marks the cell under its own center.
func (c *CellDisplay) Blit(d *Drawable, x, y int) {
	cols, rows := c.screen.Width(), c.screen.Height()
	if cols == 0 || rows == 0 || c.worldW <= 0 || c.worldH <= 0 {
		return
	}
	w, h := d.Width(), d.Height()

	cx0 := max(0, x*cols/c.worldW)
	cx1 := min(cols, ceilDiv((x+w)*cols, c.worldW))
	cy0 := max(0, y*rows/c.worldH)
	cy1 := min(rows, ceilDiv((y+h)*rows, c.worldH))

	drawn := false
	for cy := cy0; cy < cy1; cy++ {
		ly := (2*cy+1)*c.worldH/(2*rows) - y
		if ly < 0 || ly >= h {
			continue
		}
		for cx := cx0; cx < cx1; cx++ {
			lx := (2*cx+1)*c.worldW/(2*cols) - x
			if d.Opaque(lx, ly) {
				c.screen.SetCell(cx, cy, blockRune, core.NearestColor(d.At(lx, ly)))
				drawn = true
			}
		}
	}

	if !drawn && d.Opaque(w/2, h/2) {
		cx := (x + w/2) * cols / c.worldW
		cy := (y + h/2) * rows / c.worldH
		c.screen.SetCell(cx, cy, blockRune, core.NearestColor(d.At(w/2, h/2)))
	}
}

// Text writes s centered on the cell that contains world point (x, y).
func (c *CellDisplay) Text(x, y int, s string, col color.Color) {
	cols, rows := c.screen.Width(), c.screen.Height()
	if cols == 0 || rows == 0 || c.worldW <= 0 || c.worldH <= 0 {
		return
	}
	cx := x*cols/c.worldW - utf8.RuneCountInString(s)/2
	cy := y * rows / c.worldH
	c.screen.DrawText(max(0, cx), cy, s, core.NearestColor(col))
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
