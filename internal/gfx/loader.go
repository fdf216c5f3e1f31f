package gfx

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io/fs"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// Loader decodes images from a single asset tree.
// Every asset of a session resolves through the same fs.FS.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load opens and decodes the named image.
func (l *Loader) Load(name string) (*Drawable, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("gfx: cannot open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gfx: cannot decode %s: %w", name, err)
	}

	return NewDrawable(img), nil
}
