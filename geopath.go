package positioning

// PathLengthType selects how GeoPath.Length treats the ends of the path.
type PathLengthType int

const (
	// NoLoop measures the path as an open polyline.
	NoLoop PathLengthType = iota
	// ClosedLoop additionally measures the leg from the last coordinate
	// back to the first measured one.
	ClosedLoop
)

// GeoPath is an ordered sequence of valid coordinates. Insertion order is
// significant and duplicates are allowed; every mutation validates its
// input before touching the sequence, so an error never leaves a partial
// change behind.
type GeoPath struct {
	coordinates []GeoCoordinate
}

// NewPath builds a path from a copy of the given coordinates.
func NewPath(coordinates []GeoCoordinate) GeoPath {
	return GeoPath{coordinates: append([]GeoCoordinate(nil), coordinates...)}
}

// Add appends a coordinate to the end of the path.
func (p *GeoPath) Add(coordinate GeoCoordinate) error {
	if !coordinate.Valid() {
		return &InvalidCoordinateError{Coordinate: coordinate}
	}
	p.coordinates = append(p.coordinates, coordinate)
	return nil
}

// Insert places a coordinate at the given index, shifting later elements.
// Inserting at Len() appends.
func (p *GeoPath) Insert(index int, coordinate GeoCoordinate) error {
	if !coordinate.Valid() {
		return &InvalidCoordinateError{Coordinate: coordinate}
	}
	if index < 0 || index > len(p.coordinates) {
		return &IndexOutOfBoundsError{Index: index, Length: len(p.coordinates)}
	}
	p.coordinates = append(p.coordinates, GeoCoordinate{})
	copy(p.coordinates[index+1:], p.coordinates[index:])
	p.coordinates[index] = coordinate
	return nil
}

// At returns the coordinate at the given index.
func (p GeoPath) At(index int) (GeoCoordinate, error) {
	if index < 0 || index >= len(p.coordinates) {
		return InvalidCoordinate(), &IndexOutOfBoundsError{Index: index, Length: len(p.coordinates)}
	}
	return p.coordinates[index], nil
}

// Remove deletes the coordinate at the given index.
func (p *GeoPath) Remove(index int) error {
	if index < 0 || index >= len(p.coordinates) {
		return &IndexOutOfBoundsError{Index: index, Length: len(p.coordinates)}
	}
	p.coordinates = append(p.coordinates[:index], p.coordinates[index+1:]...)
	return nil
}

// Replace overwrites the coordinate at the given index.
func (p *GeoPath) Replace(index int, coordinate GeoCoordinate) error {
	if !coordinate.Valid() {
		return &InvalidCoordinateError{Coordinate: coordinate}
	}
	if index < 0 || index >= len(p.coordinates) {
		return &IndexOutOfBoundsError{Index: index, Length: len(p.coordinates)}
	}
	p.coordinates[index] = coordinate
	return nil
}

// Contains reports whether any element approximately equals the
// coordinate.
func (p GeoPath) Contains(coordinate GeoCoordinate) bool {
	for _, c := range p.coordinates {
		if c.Equal(coordinate) {
			return true
		}
	}
	return false
}

// Clear removes all coordinates.
func (p *GeoPath) Clear() {
	p.coordinates = nil
}

// Coordinates returns a copy of the sequence.
func (p GeoPath) Coordinates() []GeoCoordinate {
	return append([]GeoCoordinate(nil), p.coordinates...)
}

// SetCoordinates replaces the sequence with a copy of the given one.
func (p *GeoPath) SetCoordinates(coordinates []GeoCoordinate) {
	p.coordinates = append([]GeoCoordinate(nil), coordinates...)
}

// Len returns the number of coordinates in the path.
func (p GeoPath) Len() int {
	return len(p.coordinates)
}

// Length returns the length in meters of the polyline from index from up
// to index to; to is clamped to the last element. With ClosedLoop the leg
// from the last element back to from is added. An empty path has zero
// length.
func (p GeoPath) Length(from, to int, lengthType PathLengthType) (float32, error) {
	if len(p.coordinates) == 0 {
		return 0, nil
	}
	if from < 0 || from >= len(p.coordinates) {
		return 0, &IndexOutOfBoundsError{Index: from, Length: len(p.coordinates)}
	}

	end := to
	if end > len(p.coordinates)-1 {
		end = len(p.coordinates) - 1
	}

	var total float32
	for i := from; i < end; i++ {
		d, err := p.coordinates[i].DistanceTo(p.coordinates[i+1])
		if err != nil {
			return 0, err
		}
		total += d
	}
	if lengthType == ClosedLoop {
		d, err := p.coordinates[len(p.coordinates)-1].DistanceTo(p.coordinates[from])
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// BoundingRectangle returns the bounding rectangle of the path, recomputed
// from the current sequence on every call. An empty path yields an invalid
// rectangle.
func (p GeoPath) BoundingRectangle() GeoRectangle {
	return RectangleFromCoordinates(p.coordinates)
}

// Translate shifts every coordinate by the given deltas, clamping each
// resulting field to its valid range.
func (p *GeoPath) Translate(degreesLatitude, degreesLongitude float64) {
	for i, c := range p.coordinates {
		shifted := GeoCoordinate{
			latitude:  FieldLatitude.Clamp(c.latitude + degreesLatitude),
			longitude: FieldLongitude.Clamp(c.longitude + degreesLongitude),
			altitude:  c.altitude,
			hasAlt:    c.hasAlt,
		}
		p.coordinates[i] = shifted
	}
}

// Translated returns a shifted copy, leaving the receiver untouched.
func (p GeoPath) Translated(degreesLatitude, degreesLongitude float64) GeoPath {
	out := NewPath(p.coordinates)
	out.Translate(degreesLatitude, degreesLongitude)
	return out
}
