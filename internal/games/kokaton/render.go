package kokaton

import (
	"image/color"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/gfx"
)

// scoreColor is the label color of the score.
var scoreColor = color.RGBA{0, 0, 255, 255}

// Render draws the current frame.
// The losing frame shows only the background and the defeated bird.
func (g *Game) Render(dst gfx.Display) {
	dst.Clear(color.Black)
	dst.Blit(g.art.background, 0, 0)

	if g.outcome == core.OutcomeDefeat {
		g.bird.Render(dst)
		return
	}

	g.bird.Render(dst)
	for _, bomb := range g.bombs {
		bomb.Render(dst)
	}
	for _, beam := range g.beams {
		beam.Render(dst)
	}
	for _, e := range g.explosions {
		e.Render(dst)
	}

	hud := g.cfg.HUD
	dst.Text(hud.ScoreX, hud.ScoreY, g.score.Label(hud.ScoreLabel), scoreColor)
}
