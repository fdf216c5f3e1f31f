// Package assets embeds the default Fight Kokaton images.
//
// Files live under fig/ and are addressed with the same relative names the
// config uses (for example "fig/3.png"), so an on-disk asset directory with
// the same layout can replace this FS without touching the config.
package assets

import "embed"

//go:embed fig/*.png
var figures embed.FS

// FS returns the embedded asset tree.
func FS() embed.FS {
	return figures
}
