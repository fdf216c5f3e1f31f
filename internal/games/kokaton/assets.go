package kokaton

import (
	"fmt"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/gfx"
)

// Assets holds the decoded images of a session, before any scaling.
type Assets struct {
	Background *gfx.Drawable
	Bird       *gfx.Drawable
	Victory    *gfx.Drawable
	Defeat     *gfx.Drawable
	Beam       *gfx.Drawable
	Explosion  *gfx.Drawable
}

// LoadAssets decodes every image named in cfg through l.
// Any missing or corrupt file is an error; the session cannot start without it.
func LoadAssets(l *gfx.Loader, cfg config.AssetsConfig) (*Assets, error) {
	a := &Assets{}
	targets := []struct {
		name string
		dst  **gfx.Drawable
	}{
		{cfg.Background, &a.Background},
		{cfg.Bird, &a.Bird},
		{cfg.Victory, &a.Victory},
		{cfg.Defeat, &a.Defeat},
		{cfg.Beam, &a.Beam},
		{cfg.Explosion, &a.Explosion},
	}

	for _, t := range targets {
		d, err := l.Load(t.name)
		if err != nil {
			return nil, fmt.Errorf("kokaton: load %s: %w", t.name, err)
		}
		*t.dst = d
	}
	return a, nil
}

// art is the prepared, immutable image set shared by every Reset.
type art struct {
	background *gfx.Drawable
	sprites    *Sprites
	victory    *gfx.Drawable
	defeat     *gfx.Drawable
	beam       *gfx.Drawable
	explosion  [4]*gfx.Drawable
}

func prepareArt(a *Assets, birdScale float64) art {
	return art{
		background: a.Background,
		sprites:    NewSprites(a.Bird, birdScale),
		victory:    gfx.RotateScale(a.Victory, 0, birdScale),
		defeat:     gfx.RotateScale(a.Defeat, 0, birdScale),
		beam:       a.Beam,
		explosion:  ExplosionFrames(a.Explosion),
	}
}
