package kokaton

import "github.com/vovakirdan/kokaton/internal/core"

// Snapshot captures the game state for determinism testing.
// Uses primitive types only.
type Snapshot struct {
	Tick     int
	Score    int
	BirdX    int // Bird box top-left
	BirdY    int
	Facing   Direction
	Pose     Pose
	GameOver bool
	Outcome  core.Outcome

	// Each bomb is 4 ints: X, Y, VX, VY
	BombData []int
	// Each beam is 4 ints: X, Y, VX, VY
	BeamData []int
	// Each explosion is 4 ints: X, Y, Life, Frame
	ExplosionData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bombData := make([]int, 0, len(g.bombs)*4)
	for _, b := range g.bombs {
		bombData = append(bombData, b.box.X, b.box.Y, b.vx, b.vy)
	}

	beamData := make([]int, 0, len(g.beams)*4)
	for _, b := range g.beams {
		beamData = append(beamData, b.box.X, b.box.Y, b.vx, b.vy)
	}

	explosionData := make([]int, 0, len(g.explosions)*4)
	for _, e := range g.explosions {
		explosionData = append(explosionData, e.box.X, e.box.Y, e.life, e.frame)
	}

	box := g.bird.Box()
	return Snapshot{
		Tick:          g.tick,
		Score:         g.score.Value(),
		BirdX:         box.X,
		BirdY:         box.Y,
		Facing:        g.bird.Facing(),
		Pose:          g.bird.Pose(),
		GameOver:      g.gameOver,
		Outcome:       g.outcome,
		BombData:      bombData,
		BeamData:      beamData,
		ExplosionData: explosionData,
	}
}

// Bombs returns the number of live bombs.
func (s *Snapshot) Bombs() int { return len(s.BombData) / 4 }

// Beams returns the number of live beams.
func (s *Snapshot) Beams() int { return len(s.BeamData) / 4 }

// Explosions returns the number of live explosions.
func (s *Snapshot) Explosions() int { return len(s.ExplosionData) / 4 }

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(s.BirdX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(s.BirdY)         //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Facing)        //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Pose)          //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Outcome)       //#nosec G115 -- hash computation
	h = h*31 + uint64(len(s.BombData)) //#nosec G115 -- hash computation

	for _, v := range s.BombData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range s.BeamData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range s.ExplosionData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
