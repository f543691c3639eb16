package positioning

// CardinalDirection is a named compass bearing.
type CardinalDirection int

const (
	North CardinalDirection = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Degrees returns the azimuth of the direction in degrees clockwise from
// north.
func (d CardinalDirection) Degrees() float64 {
	return float64(d) * 45.0
}

func (d CardinalDirection) String() string {
	names := [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	if d < North || d > NorthWest {
		return "invalid direction"
	}
	return names[d]
}
