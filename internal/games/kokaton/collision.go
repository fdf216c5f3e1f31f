package kokaton

// kill pairs a destroyed bomb with the beam that hit it, by index.
type kill struct {
	bomb int
	beam int
}

// resolveKills finds every bomb/beam hit of the frame.
// Pairs are visited bomb-major, beam-minor; a bomb takes the lowest-indexed
// live beam it overlaps, and an entity already used by an earlier pair is
// skipped, so each bomb and each beam is removed at most once.
func resolveKills(bombs []*Bomb, beams []*Beam) (kills []kill, deadBombs, deadBeams []bool) {
	deadBombs = make([]bool, len(bombs))
	deadBeams = make([]bool, len(beams))

	for i, bomb := range bombs {
		for j, beam := range beams {
			if deadBeams[j] {
				continue
			}
			if beam.Box().Intersects(bomb.Box()) {
				kills = append(kills, kill{bomb: i, beam: j})
				deadBombs[i] = true
				deadBeams[j] = true
				break
			}
		}
	}
	return kills, deadBombs, deadBeams
}

// compact returns items without the entries marked dead, reusing the backing array.
func compact[T any](items []T, dead []bool) []T {
	out := items[:0]
	for i, item := range items {
		if !dead[i] {
			out = append(out, item)
		}
	}
	clear(items[len(out):])
	return out
}
