package kokaton

// Direction is one of the eight compass headings the bird can face.
// Values run counter-clockwise from East, 45 degrees apart.
type Direction int

const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

// directionUnits holds the screen-space unit step for each direction (Y grows down).
var directionUnits = [8][2]int{
	East:      {1, 0},
	NorthEast: {1, -1},
	North:     {0, -1},
	NorthWest: {-1, -1},
	West:      {-1, 0},
	SouthWest: {-1, 1},
	South:     {0, 1},
	SouthEast: {1, 1},
}

// Unit returns the per-axis step of the direction, each in {-1, 0, 1}.
func (d Direction) Unit() (int, int) {
	u := directionUnits[d]
	return u[0], u[1]
}

// Delta returns the movement vector for the given per-axis speed.
func (d Direction) Delta(speed int) (int, int) {
	ux, uy := d.Unit()
	return ux * speed, uy * speed
}

// Angle returns the heading in degrees, counter-clockwise with East = 0.
func (d Direction) Angle() float64 {
	return float64(d) * 45
}

// DirectionOf maps a movement vector to its direction by the signs of its
// components. ok is false for the zero vector.
func DirectionOf(dx, dy int) (d Direction, ok bool) {
	sx, sy := sign(dx), sign(dy)
	if sx == 0 && sy == 0 {
		return East, false
	}
	for i, u := range directionUnits {
		if u[0] == sx && u[1] == sy {
			return Direction(i), true
		}
	}
	return East, false
}

func (d Direction) String() string {
	switch d {
	case East:
		return "E"
	case NorthEast:
		return "NE"
	case North:
		return "N"
	case NorthWest:
		return "NW"
	case West:
		return "W"
	case SouthWest:
		return "SW"
	case South:
		return "S"
	case SouthEast:
		return "SE"
	default:
		return "?"
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
