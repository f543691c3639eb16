package positioning

import "fmt"

// InvalidCoordinateError reports an operation attempted on or with a
// coordinate whose latitude or longitude is out of range. It carries the
// offending coordinate for diagnostics.
type InvalidCoordinateError struct {
	Coordinate GeoCoordinate
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("positioning: operation on invalid coordinate %v", e.Coordinate)
}

// InvalidRectangleError reports an operation that requires a valid
// rectangle but found the receiver invalid.
type InvalidRectangleError struct {
	Rectangle GeoRectangle
}

func (e *InvalidRectangleError) Error() string {
	return fmt.Sprintf("positioning: operation on invalid rectangle %v", e.Rectangle)
}

// IndexOutOfBoundsError reports a path element access or mutation with an
// index beyond the current length.
type IndexOutOfBoundsError struct {
	Index  int
	Length int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("positioning: index %d out of bounds for length %d", e.Index, e.Length)
}
