package kokaton

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/gfx"
)

var testViewport = core.NewRect(0, 0, 1600, 900)

// solid returns a w x h opaque drawable.
func solid(w, h int) *gfx.Drawable {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{200, 200, 0, 255})
		}
	}
	return gfx.NewDrawable(img)
}

func testSprites() *Sprites {
	return NewSprites(solid(24, 24), 2)
}

func testBird(cx, cy int) *Bird {
	return NewBird(cx, cy, 5, testSprites(), solid(48, 48), solid(48, 48))
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDirectionRoundTrip(t *testing.T) {
	for d := East; d <= SouthEast; d++ {
		dx, dy := d.Delta(5)
		got, ok := DirectionOf(dx, dy)
		if !ok || got != d {
			t.Errorf("DirectionOf(%d, %d) = %v, %v, expected %v", dx, dy, got, ok, d)
		}
		if d.Angle() != float64(d)*45 {
			t.Errorf("%v.Angle() = %v, expected %v", d, d.Angle(), float64(d)*45)
		}
	}

	if _, ok := DirectionOf(0, 0); ok {
		t.Error("DirectionOf(0, 0) should not be a direction")
	}
	if dx, dy := North.Delta(5); dx != 0 || dy != -5 {
		t.Errorf("North.Delta(5) = (%d, %d), expected (0, -5)", dx, dy)
	}
}

func TestSpritesTable(t *testing.T) {
	s := testSprites()

	if s.Idle() != s.Get(East) {
		t.Error("Idle() should be the East sprite")
	}

	tests := []struct {
		dir  Direction
		w, h int
	}{
		{East, 48, 48},
		{West, 48, 48},
		{North, 48, 48},
		{South, 48, 48},
		{NorthEast, 68, 68},
		{SouthWest, 68, 68},
	}
	for _, tc := range tests {
		d := s.Get(tc.dir)
		if d.Width() != tc.w || d.Height() != tc.h {
			t.Errorf("Get(%v) size = %dx%d, expected %dx%d", tc.dir, d.Width(), d.Height(), tc.w, tc.h)
		}
	}
}

func TestBirdUpdate(t *testing.T) {
	tests := []struct {
		name         string
		in           core.InputFrame
		dx, dy       int
		expectFacing Direction
	}{
		{"idle", held(), 0, 0, East},
		{"left", held(core.ActionLeft), -5, 0, West},
		{"up", held(core.ActionUp), 0, -5, North},
		{"diagonal", held(core.ActionDown, core.ActionRight), 5, 5, SouthEast},
		{"cancel", held(core.ActionLeft, core.ActionRight), 0, 0, East},
		{"cancel with up", held(core.ActionLeft, core.ActionRight, core.ActionUp), 0, -5, North},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := testBird(900, 400)
			before := b.Box()
			b.Update(tc.in, testViewport)

			if b.Box() != before.Move(tc.dx, tc.dy) {
				t.Errorf("Box() = %+v, expected %+v", b.Box(), before.Move(tc.dx, tc.dy))
			}
			if b.Facing() != tc.expectFacing {
				t.Errorf("Facing() = %v, expected %v", b.Facing(), tc.expectFacing)
			}
		})
	}
}

func TestBirdRevertsWholeMoveAtEdge(t *testing.T) {
	// Box flush with the left edge
	b := testBird(24, 400)
	if b.Box().X != 0 {
		t.Fatalf("setup: Box().X = %d, expected 0", b.Box().X)
	}
	before := b.Box()

	// Up alone would be fine; left pushes out, so both are undone
	b.Update(held(core.ActionLeft, core.ActionUp), testViewport)

	if b.Box() != before {
		t.Errorf("Box() = %+v, expected unchanged %+v", b.Box(), before)
	}
	if b.Facing() != NorthWest {
		t.Errorf("Facing() = %v, expected NW even when the move is undone", b.Facing())
	}
}

func TestBirdBoxNeverLeavesViewport(t *testing.T) {
	b := testBird(900, 400)
	moves := []core.InputFrame{
		held(core.ActionLeft, core.ActionUp),
		held(core.ActionRight, core.ActionDown),
		held(core.ActionRight),
		held(core.ActionUp),
	}
	for _, in := range moves {
		for i := 0; i < 400; i++ {
			b.Update(in, testViewport)
			if h, v := core.Contained(b.Box(), testViewport); !h || !v {
				t.Fatalf("bird left the viewport: %+v", b.Box())
			}
		}
	}
}

func TestBirdPose(t *testing.T) {
	b := testBird(900, 400)
	victory := b.victory

	b.SetPose(PoseVictory)
	b.Update(held(), testViewport)
	if b.Drawable() != victory {
		t.Error("victory pose should survive a frame without movement")
	}

	b.Update(held(core.ActionLeft), testViewport)
	if b.Pose() != PoseNormal || b.Drawable() != b.sprites.Get(West) {
		t.Errorf("moving should restore the directional sprite, pose = %v", b.Pose())
	}
}

func TestBombReflectsBeforeMove(t *testing.T) {
	// Right edge already past the viewport
	b := newBomb(core.NewRect(1560, 400, 50, 50), 5, 5, solid(50, 50))
	b.Update(testViewport)

	vx, vy := b.Velocity()
	if vx != -5 || vy != 5 {
		t.Errorf("Velocity() = (%d, %d), expected (-5, 5)", vx, vy)
	}
	if b.Box().X != 1555 || b.Box().Y != 405 {
		t.Errorf("Box() at (%d, %d), expected (1555, 405)", b.Box().X, b.Box().Y)
	}
}

func TestBombBounceSequence(t *testing.T) {
	// Touching the edge still counts as inside: one more step out, then back
	b := newBomb(core.NewRect(1550, 400, 50, 50), 5, 5, solid(50, 50))

	b.Update(testViewport)
	if vx, _ := b.Velocity(); vx != 5 || b.Box().Right() != 1605 {
		t.Fatalf("first step: vx = %d, right = %d, expected 5 and 1605", vx, b.Box().Right())
	}

	b.Update(testViewport)
	if vx, _ := b.Velocity(); vx != -5 || b.Box().Right() != 1600 {
		t.Errorf("second step: vx = %d, right = %d, expected -5 and 1600", vx, b.Box().Right())
	}
}

func TestBombSpawnedAcrossEdgeEscapes(t *testing.T) {
	// Already heading inside: a blind flip would push it back out
	b := newBomb(core.NewRect(-30, -30, 60, 60), 5, 5, solid(60, 60))
	for i := 0; i < 10; i++ {
		b.Update(testViewport)
	}
	if vx, vy := b.Velocity(); vx != 5 || vy != 5 {
		t.Errorf("Velocity() = (%d, %d), expected (5, 5)", vx, vy)
	}
	if h, v := core.Contained(b.Box(), testViewport); !h || !v {
		t.Errorf("bomb should have escaped the corner, box = %+v", b.Box())
	}
}

func TestNewBombRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := config.DefaultKokatonConfig().Bombs

	for i := 0; i < 200; i++ {
		b := NewBomb(rng, testViewport, cfg)
		box := b.Box()
		if box.W != box.H || box.W < 2*cfg.MinRadius || box.W > 2*cfg.MaxRadius {
			t.Fatalf("bomb size %dx%d outside [%d, %d]", box.W, box.H, 2*cfg.MinRadius, 2*cfg.MaxRadius)
		}
		cx, cy := box.Center()
		if cx < 0 || cx > 1600 || cy < 0 || cy > 900 {
			t.Fatalf("bomb center (%d, %d) outside the viewport", cx, cy)
		}
		if vx, vy := b.Velocity(); core.Abs(vx) != cfg.Speed || core.Abs(vy) != cfg.Speed {
			t.Fatalf("Velocity() = (%d, %d), expected ±%d on each axis", vx, vy, cfg.Speed)
		}
	}
}

func TestNewBeamEast(t *testing.T) {
	bird := testBird(900, 400)
	beam := NewBeam(bird, solid(40, 12), 5)

	cx, cy := beam.Box().Center()
	if cx != 900+24+20 || cy != 400 {
		t.Errorf("beam center = (%d, %d), expected (944, 400)", cx, cy)
	}
	if vx, vy := beam.Velocity(); vx != 5 || vy != 0 {
		t.Errorf("Velocity() = (%d, %d), expected (5, 0)", vx, vy)
	}
	if beam.Box().W != 40 || beam.Box().H != 12 {
		t.Errorf("beam size = %dx%d, expected unrotated 40x12", beam.Box().W, beam.Box().H)
	}
	if beam.Box().Intersects(bird.Box()) {
		t.Error("beam should spawn outside the bird")
	}
}

func TestNewBeamFollowsFacing(t *testing.T) {
	tests := []struct {
		name   string
		in     core.InputFrame
		vx, vy int
		w, h   int
	}{
		{"north", held(core.ActionUp), 0, -5, 12, 40},
		{"west", held(core.ActionLeft), -5, 0, 40, 12},
		{"south east", held(core.ActionDown, core.ActionRight), 5, 5, 37, 37},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bird := testBird(900, 400)
			bird.Update(tc.in, testViewport)
			beam := NewBeam(bird, solid(40, 12), 5)

			if vx, vy := beam.Velocity(); vx != tc.vx || vy != tc.vy {
				t.Errorf("Velocity() = (%d, %d), expected (%d, %d)", vx, vy, tc.vx, tc.vy)
			}
			if beam.Box().W != tc.w || beam.Box().H != tc.h {
				t.Errorf("beam size = %dx%d, expected %dx%d", beam.Box().W, beam.Box().H, tc.w, tc.h)
			}
			if beam.Box().Intersects(bird.Box()) {
				t.Error("beam should spawn outside the bird")
			}
		})
	}
}

func TestBeamExpired(t *testing.T) {
	tests := []struct {
		name   string
		box    core.Rect
		expect bool
	}{
		{"inside", core.NewRect(100, 100, 40, 12), false},
		{"left touch", core.NewRect(0, 100, 40, 12), true},
		{"left past", core.NewRect(-3, 100, 40, 12), true},
		{"right touch", core.NewRect(1560, 100, 40, 12), true},
		{"top touch", core.NewRect(100, 0, 40, 12), true},
		{"bottom touch", core.NewRect(100, 888, 40, 12), true},
		{"near right", core.NewRect(1559, 100, 40, 12), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Beam{box: tc.box, vx: 5}
			if got := b.Expired(testViewport); got != tc.expect {
				t.Errorf("Expired() = %v, expected %v", got, tc.expect)
			}
		})
	}
}

func TestExplosionLifecycle(t *testing.T) {
	e := NewExplosion(100, 100, 30, ExplosionFrames(solid(32, 32)))

	for i := 1; i <= 30; i++ {
		prev := e.Life()
		e.Update()
		if e.Life() >= prev {
			t.Fatalf("update %d: life %d did not decrease from %d", i, e.Life(), prev)
		}
		if i < 30 && !e.Alive() {
			t.Fatalf("explosion died early at update %d", i)
		}
		if i < 30 && e.Frame() != i%4 {
			t.Errorf("update %d: Frame() = %d, expected %d", i, e.Frame(), i%4)
		}
	}

	if e.Alive() {
		t.Error("explosion should be spent after 30 updates")
	}
	if e.Frame() != 29%4 {
		t.Errorf("last update should not advance the frame, got %d", e.Frame())
	}
}

func TestExplosionFrames(t *testing.T) {
	base := solid(32, 16)
	frames := ExplosionFrames(base)

	if frames[0] != base {
		t.Error("first frame should be the base image")
	}
	for i, f := range frames {
		if f.Width() != 32 || f.Height() != 16 {
			t.Errorf("frame %d size = %dx%d, expected 32x16", i, f.Width(), f.Height())
		}
	}
}

func TestScore(t *testing.T) {
	var s Score
	s.Inc()
	s.Inc()
	if s.Value() != 2 {
		t.Errorf("Value() = %d, expected 2", s.Value())
	}
	if got := s.Label("Score: "); got != "Score: 2" {
		t.Errorf("Label() = %q, expected %q", got, "Score: 2")
	}
}

func TestResolveKills(t *testing.T) {
	bombAt := func(x, y int) *Bomb { return newBomb(core.NewRect(x, y, 100, 100), 5, 5, nil) }
	beamAt := func(x, y int) *Beam { return &Beam{box: core.NewRect(x, y, 40, 12)} }

	tests := []struct {
		name      string
		bombs     []*Bomb
		beams     []*Beam
		expect    []kill
		deadBombs []bool
		deadBeams []bool
	}{
		{
			name:      "one bomb two beams",
			bombs:     []*Bomb{bombAt(400, 400)},
			beams:     []*Beam{beamAt(420, 440), beamAt(430, 450)},
			expect:    []kill{{0, 0}},
			deadBombs: []bool{true},
			deadBeams: []bool{true, false},
		},
		{
			name:      "two bombs one beam",
			bombs:     []*Bomb{bombAt(400, 400), bombAt(450, 400)},
			beams:     []*Beam{beamAt(460, 440)},
			expect:    []kill{{0, 0}},
			deadBombs: []bool{true, false},
			deadBeams: []bool{true},
		},
		{
			name:      "second beam takes second bomb",
			bombs:     []*Bomb{bombAt(400, 400), bombAt(450, 400)},
			beams:     []*Beam{beamAt(460, 440), beamAt(520, 440)},
			expect:    []kill{{0, 0}, {1, 1}},
			deadBombs: []bool{true, true},
			deadBeams: []bool{true, true},
		},
		{
			name:      "miss",
			bombs:     []*Bomb{bombAt(400, 400)},
			beams:     []*Beam{beamAt(100, 100)},
			deadBombs: []bool{false},
			deadBeams: []bool{false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kills, deadBombs, deadBeams := resolveKills(tc.bombs, tc.beams)
			if len(kills) != len(tc.expect) {
				t.Fatalf("kills = %v, expected %v", kills, tc.expect)
			}
			for i := range kills {
				if kills[i] != tc.expect[i] {
					t.Errorf("kill %d = %v, expected %v", i, kills[i], tc.expect[i])
				}
			}
			for i := range deadBombs {
				if deadBombs[i] != tc.deadBombs[i] {
					t.Errorf("deadBombs[%d] = %v, expected %v", i, deadBombs[i], tc.deadBombs[i])
				}
			}
			for i := range deadBeams {
				if deadBeams[i] != tc.deadBeams[i] {
					t.Errorf("deadBeams[%d] = %v, expected %v", i, deadBeams[i], tc.deadBeams[i])
				}
			}
		})
	}
}

func TestCompact(t *testing.T) {
	got := compact([]int{1, 2, 3, 4}, []bool{false, true, false, true})
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("compact() = %v, expected [1 3]", got)
	}
}
