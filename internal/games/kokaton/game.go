// Package kokaton implements Fight Kokaton: a bird dodges bouncing bombs
// and shoots them down with beams.
//
// The game is a pure simulation over world pixels. It never sleeps, logs or
// touches a terminal; drivers feed it one core.InputFrame per tick and draw it
// onto a gfx.Display.
package kokaton

import (
	"math/rand"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "kokaton"

// Title is the display name of the game.
const Title = "Fight Kokaton!"

// Game implements the Fight Kokaton simulation.
type Game struct {
	cfg      *config.KokatonConfig
	art      art
	viewport core.Rect
	rng      *rand.Rand

	bird       *Bird
	bombs      []*Bomb
	beams      []*Beam
	explosions []*Explosion
	score      Score

	tick     int
	gameOver bool
	outcome  core.Outcome
}

// New creates a game. cfg is shared and must not change afterwards.
// Call Reset before the first Step.
func New(cfg *config.KokatonConfig, assets *Assets) *Game {
	return &Game{
		cfg:      cfg,
		art:      prepareArt(assets, cfg.Bird.Scale),
		viewport: core.NewRect(0, 0, cfg.Viewport.Width, cfg.Viewport.Height),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset starts a new session: the bird back at its start position and a
// fresh set of bombs drawn from rc.Seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.bird = NewBird(g.cfg.Bird.StartX, g.cfg.Bird.StartY, g.cfg.Bird.Speed,
		g.art.sprites, g.art.victory, g.art.defeat)

	g.bombs = make([]*Bomb, 0, g.cfg.Bombs.Count)
	for i := 0; i < g.cfg.Bombs.Count; i++ {
		g.bombs = append(g.bombs, NewBomb(g.rng, g.viewport, g.cfg.Bombs))
	}
	g.beams = nil
	g.explosions = nil
	g.score = Score{}
	g.tick = 0
	g.gameOver = false
	g.outcome = core.OutcomeNone
}

// Step advances the game by one frame.
//
// Order within a frame:
//  1. presses: quit ends the session, each fire spawns a beam
//  2. the bird touching any bomb ends the session in defeat
//  3. beam/bomb hits remove both, spawn an explosion and score a point
//  4. beams touching an edge are dropped
//  5. bird, bombs, beams and explosions update; spent explosions are dropped
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	for _, a := range in.Events {
		switch a {
		case core.ActionQuit:
			g.finish(core.OutcomeQuit)
			cx, cy := g.bird.Box().Center()
			events = append(events, core.Event{Kind: core.EventQuit, X: cx, Y: cy})
			return core.StepResult{State: g.State(), Events: events}
		case core.ActionFire:
			beam := NewBeam(g.bird, g.art.beam, g.cfg.Beam.Speed)
			g.beams = append(g.beams, beam)
			cx, cy := beam.Box().Center()
			events = append(events, core.Event{Kind: core.EventFire, X: cx, Y: cy})
		}
	}

	// Terminal collision: nothing else moves this frame
	for _, bomb := range g.bombs {
		if g.bird.Box().Intersects(bomb.Box()) {
			g.bird.SetPose(PoseDefeat)
			g.finish(core.OutcomeDefeat)
			cx, cy := g.bird.Box().Center()
			events = append(events, core.Event{Kind: core.EventDefeat, X: cx, Y: cy})
			return core.StepResult{State: g.State(), Events: events}
		}
	}

	kills, deadBombs, deadBeams := resolveKills(g.bombs, g.beams)
	for _, k := range kills {
		cx, cy := g.bombs[k.bomb].Box().Center()
		g.explosions = append(g.explosions, NewExplosion(cx, cy, g.cfg.Explosion.Life, g.art.explosion))
		g.score.Inc()
		events = append(events, core.Event{Kind: core.EventKill, X: cx, Y: cy})
	}
	if len(kills) > 0 {
		g.bird.SetPose(PoseVictory)
	}

	for i, beam := range g.beams {
		if beam.Expired(g.viewport) {
			deadBeams[i] = true
		}
	}

	g.bombs = compact(g.bombs, deadBombs)
	g.beams = compact(g.beams, deadBeams)
	g.explosions = dropSpent(g.explosions)

	g.bird.Update(in, g.viewport)
	for _, bomb := range g.bombs {
		bomb.Update(g.viewport)
	}
	for _, beam := range g.beams {
		beam.Update()
	}
	for _, e := range g.explosions {
		e.Update()
	}
	g.explosions = dropSpent(g.explosions)

	g.tick++
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) finish(o core.Outcome) {
	g.gameOver = true
	g.outcome = o
}

func dropSpent(explosions []*Explosion) []*Explosion {
	dead := make([]bool, len(explosions))
	for i, e := range explosions {
		dead[i] = !e.Alive()
	}
	return compact(explosions, dead)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.gameOver,
		Outcome:  g.outcome,
		Tick:     g.tick,
	}
}

// Viewport returns the world rectangle.
func (g *Game) Viewport() core.Rect {
	return g.viewport
}

// Register the game with the registry
func init() {
	registry.Register(ID, Title, func(env registry.Env) (registry.Game, error) {
		assets, err := LoadAssets(env.Images, env.Config.Assets)
		if err != nil {
			return nil, err
		}
		return New(env.Config, assets), nil
	})
}

var _ registry.Game = (*Game)(nil)
