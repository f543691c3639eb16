package positioning

import (
	"fmt"
	"math"
)

// GeoRectangle is an axis-aligned geographic bounding region defined by a
// top-left corner (maximum latitude, left longitude) and a bottom-right
// corner (minimum latitude, right longitude). When the left longitude is
// numerically greater than the right one the rectangle crosses the
// antimeridian: its longitude span runs from the left edge through ±180°
// to the right edge.
//
// A rectangle is valid when both corners are valid and the top latitude is
// not below the bottom one. Latitude never wraps; out-of-range results of
// the resizing operations are clamped to the poles with mirroring rather
// than modular wraparound.
type GeoRectangle struct {
	topLeft     GeoCoordinate
	bottomRight GeoCoordinate
}

// NewRectangle builds a rectangle from two corners. Corner altitudes are
// discarded; a rectangle is a purely two-dimensional region.
func NewRectangle(topLeft, bottomRight GeoCoordinate) GeoRectangle {
	return GeoRectangle{
		topLeft:     NewCoordinate(topLeft.latitude, topLeft.longitude),
		bottomRight: NewCoordinate(bottomRight.latitude, bottomRight.longitude),
	}
}

// InvalidRectangle returns the canonical invalid rectangle, with both
// corners set to the invalid coordinate.
func InvalidRectangle() GeoRectangle {
	return GeoRectangle{topLeft: InvalidCoordinate(), bottomRight: InvalidCoordinate()}
}

// RectangleFromCenterDegrees builds a rectangle of the given angular width
// and height centered on center. An invalid center yields an invalid
// rectangle.
func RectangleFromCenterDegrees(center GeoCoordinate, widthDegrees, heightDegrees float64) GeoRectangle {
	r := NewRectangle(center, center)
	r.SetWidth(widthDegrees)
	r.SetHeight(heightDegrees)
	return r
}

// RectangleFromCenterMeters builds a rectangle of the given physical width
// and height centered on center, by projecting the center outward along
// the four cardinal directions: north and west for the top-left corner,
// south and east for the bottom-right one.
func RectangleFromCenterMeters(center GeoCoordinate, widthMeters, heightMeters float64) (GeoRectangle, error) {
	if !center.Valid() {
		return InvalidRectangle(), &InvalidCoordinateError{Coordinate: center}
	}

	halfWidth := float32(widthMeters / 2.0)
	halfHeight := float32(heightMeters / 2.0)

	north, _ := center.AtDistanceAndAzimuth(halfHeight, float32(North.Degrees()))
	south, _ := center.AtDistanceAndAzimuth(halfHeight, float32(South.Degrees()))
	west, _ := center.AtDistanceAndAzimuth(halfWidth, float32(West.Degrees()))
	east, _ := center.AtDistanceAndAzimuth(halfWidth, float32(East.Degrees()))

	return NewRectangle(
		NewCoordinate(north.latitude, west.longitude),
		NewCoordinate(south.latitude, east.longitude),
	), nil
}

// RectangleFromCoordinates returns the bounding rectangle of the given
// coordinates, grown greedily point by point. Invalid coordinates are
// skipped; with no valid coordinate the result is invalid.
func RectangleFromCoordinates(coordinates []GeoCoordinate) GeoRectangle {
	r := InvalidRectangle()
	for _, c := range coordinates {
		if !c.Valid() {
			continue
		}
		if !r.Valid() {
			r = NewRectangle(c, c)
			continue
		}
		_ = r.Extend(c)
	}
	return r
}

// TopLeft returns the stored top-left corner.
func (r GeoRectangle) TopLeft() GeoCoordinate { return r.topLeft }

// BottomRight returns the stored bottom-right corner.
func (r GeoRectangle) BottomRight() GeoCoordinate { return r.bottomRight }

// TopRight returns the derived top-right corner.
func (r GeoRectangle) TopRight() GeoCoordinate {
	return NewCoordinate(r.topLeft.latitude, r.bottomRight.longitude)
}

// BottomLeft returns the derived bottom-left corner.
func (r GeoRectangle) BottomLeft() GeoCoordinate {
	return NewCoordinate(r.bottomRight.latitude, r.topLeft.longitude)
}

// Center returns the center of the rectangle, accounting for antimeridian
// crossing. The center of an invalid rectangle is the invalid coordinate.
func (r GeoRectangle) Center() GeoCoordinate {
	if !r.Valid() {
		return InvalidCoordinate()
	}
	lat := (r.topLeft.latitude + r.bottomRight.latitude) / 2.0
	lon := (r.topLeft.longitude + r.bottomRight.longitude) / 2.0
	if r.crossesAntimeridian() {
		lon += 180.0
		if lon > 180.0 {
			lon -= 360.0
		}
	}
	return NewCoordinate(lat, lon)
}

// Valid reports whether both corners are valid coordinates and the top
// latitude is not below the bottom one.
func (r GeoRectangle) Valid() bool {
	return r.topLeft.Valid() && r.bottomRight.Valid() &&
		r.topLeft.latitude >= r.bottomRight.latitude
}

// Empty reports whether the rectangle covers no area. Invalid rectangles
// are empty; a valid rectangle is empty when its corners coincide.
func (r GeoRectangle) Empty() bool {
	if !r.Valid() {
		return true
	}
	return r.topLeft.Equal(r.bottomRight)
}

func (r GeoRectangle) crossesAntimeridian() bool {
	return r.topLeft.longitude > r.bottomRight.longitude
}

// Contains reports whether the coordinate lies within the rectangle,
// edges inclusive. Both operands must be valid.
func (r GeoRectangle) Contains(coordinate GeoCoordinate) (bool, error) {
	if !r.Valid() {
		return false, &InvalidRectangleError{Rectangle: r}
	}
	if !coordinate.Valid() {
		return false, &InvalidCoordinateError{Coordinate: coordinate}
	}
	return r.containsLatitude(coordinate.latitude) && r.containsLongitude(coordinate.longitude), nil
}

func (r GeoRectangle) containsLatitude(lat float64) bool {
	if lat >= r.bottomRight.latitude && lat <= r.topLeft.latitude {
		return true
	}
	// Keep the pole rows inclusive even under floating error when the
	// matching edge touches the pole.
	if lat == 90.0 && r.topLeft.latitude == 90.0 {
		return true
	}
	if lat == -90.0 && r.bottomRight.latitude == -90.0 {
		return true
	}
	return false
}

func (r GeoRectangle) containsLongitude(lon float64) bool {
	if !r.crossesAntimeridian() {
		return lon >= r.topLeft.longitude && lon <= r.bottomRight.longitude
	}
	// Wrapped span: only the open interval between the right and left
	// edges is outside.
	return lon >= r.topLeft.longitude || lon <= r.bottomRight.longitude
}

// ContainsRectangle reports whether all four corners of other lie within
// the rectangle.
func (r GeoRectangle) ContainsRectangle(other GeoRectangle) (bool, error) {
	if !other.Valid() {
		return false, &InvalidRectangleError{Rectangle: other}
	}
	corners := [4]GeoCoordinate{other.topLeft, other.TopRight(), other.BottomLeft(), other.bottomRight}
	for _, corner := range corners {
		ok, err := r.Contains(corner)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Width returns the angular width of the rectangle in degrees, normalized
// into [0, 360]. An invalid rectangle has zero width.
func (r GeoRectangle) Width() float64 {
	if !r.Valid() {
		return 0.0
	}
	width := r.bottomRight.longitude - r.topLeft.longitude
	if width < 0.0 {
		width += 360.0
	}
	if width > 360.0 {
		width -= 360.0
	}
	return width
}

// Height returns the angular height of the rectangle in degrees. An
// invalid rectangle has zero height.
func (r GeoRectangle) Height() float64 {
	if !r.Valid() {
		return 0.0
	}
	return r.topLeft.latitude - r.bottomRight.latitude
}

// WidthMeters returns the great-circle length of the top edge.
func (r GeoRectangle) WidthMeters() (float32, error) {
	if !r.Valid() {
		return 0, &InvalidRectangleError{Rectangle: r}
	}
	return r.topLeft.DistanceTo(r.TopRight())
}

// HeightMeters returns the great-circle length of the left edge.
func (r GeoRectangle) HeightMeters() (float32, error) {
	if !r.Valid() {
		return 0, &InvalidRectangleError{Rectangle: r}
	}
	return r.topLeft.DistanceTo(r.BottomLeft())
}

// Intersects reports whether the two rectangles share at least one point.
// Both rectangles must be valid.
func (r GeoRectangle) Intersects(other GeoRectangle) (bool, error) {
	if !r.Valid() {
		return false, &InvalidRectangleError{Rectangle: r}
	}
	if !other.Valid() {
		return false, &InvalidRectangleError{Rectangle: other}
	}
	if r.latitudesOverlap(other) && r.longitudesOverlap(other) {
		return true, nil
	}
	// All longitudes coincide at a pole, so rectangles meeting there
	// intersect no matter how their spans relate.
	if r.topLeft.latitude == 90.0 && other.topLeft.latitude == 90.0 {
		return true, nil
	}
	if r.bottomRight.latitude == -90.0 && other.bottomRight.latitude == -90.0 {
		return true, nil
	}
	return false, nil
}

func (r GeoRectangle) latitudesOverlap(other GeoRectangle) bool {
	return r.bottomRight.latitude <= other.topLeft.latitude &&
		other.bottomRight.latitude <= r.topLeft.latitude
}

// longitudesOverlap splits on whether each rectangle independently crosses
// the antimeridian. Two crossing spans always share the antimeridian
// itself; for one crossing span the plain span must reach either of its
// arms.
func (r GeoRectangle) longitudesOverlap(other GeoRectangle) bool {
	switch {
	case r.crossesAntimeridian() && other.crossesAntimeridian():
		return true
	case !r.crossesAntimeridian() && !other.crossesAntimeridian():
		return r.topLeft.longitude <= other.bottomRight.longitude &&
			other.topLeft.longitude <= r.bottomRight.longitude
	case r.crossesAntimeridian():
		return other.bottomRight.longitude >= r.topLeft.longitude ||
			other.topLeft.longitude <= r.bottomRight.longitude
	default:
		return r.bottomRight.longitude >= other.topLeft.longitude ||
			r.topLeft.longitude <= other.bottomRight.longitude
	}
}

// SetWidth resizes the rectangle to the given angular width, keeping its
// center. Nothing happens on an invalid rectangle or a negative width. A
// width above 360° spans the full longitude range; otherwise both edges
// are clamped to [-180, 180].
func (r *GeoRectangle) SetWidth(widthDegrees float64) {
	if !r.Valid() || widthDegrees < 0.0 {
		return
	}
	if widthDegrees > 360.0 {
		r.topLeft.longitude = -180.0
		r.bottomRight.longitude = 180.0
		return
	}
	centerLon := r.Center().longitude
	r.topLeft.longitude = FieldLongitude.Clamp(centerLon - widthDegrees/2.0)
	r.bottomRight.longitude = FieldLongitude.Clamp(centerLon + widthDegrees/2.0)
}

// SetHeight resizes the rectangle to the given angular height, keeping its
// center. Nothing happens on an invalid rectangle or a height outside
// [0, 180]. An edge pushed past a pole is mirrored around it: the edge
// lands on the pole and the opposite edge compensates to 2·center ∓ 90.
func (r *GeoRectangle) SetHeight(heightDegrees float64) {
	if !r.Valid() || heightDegrees < 0.0 || heightDegrees > 180.0 {
		return
	}
	centerLat := (r.topLeft.latitude + r.bottomRight.latitude) / 2.0
	top, bottom := mirrorAtPoles(centerLat+heightDegrees/2.0, centerLat-heightDegrees/2.0, centerLat)
	r.topLeft.latitude = top
	r.bottomRight.latitude = bottom
}

// mirrorAtPoles clamps a latitude band to [-90, 90], mirroring an edge
// that crossed a pole around that pole while the opposite edge keeps the
// reflection of the band's center.
func mirrorAtPoles(top, bottom, centerLat float64) (float64, float64) {
	if top > 90.0 {
		bottom = 2.0*centerLat - 90.0
		top = 90.0
	}
	if top < -90.0 {
		top = -90.0
		bottom = -90.0
	}
	if bottom > 90.0 {
		top = 90.0
		bottom = 90.0
	}
	if bottom < -90.0 {
		top = 2.0*centerLat + 90.0
		bottom = -90.0
	}
	return top, bottom
}

// SetCenter moves the rectangle to the new center, preserving its width
// and height with the same pole mirroring as SetHeight. A rectangle
// spanning the full 360° of longitude keeps its span regardless of the
// center's longitude.
func (r *GeoRectangle) SetCenter(center GeoCoordinate) error {
	if !center.Valid() {
		return &InvalidCoordinateError{Coordinate: center}
	}
	if !r.Valid() {
		return &InvalidRectangleError{Rectangle: *r}
	}

	width := r.Width()
	height := r.Height()

	top, bottom := mirrorAtPoles(center.latitude+height/2.0, center.latitude-height/2.0, center.latitude)

	var left, right float64
	if width == 360.0 {
		left, right = -180.0, 180.0
	} else {
		left = FieldLongitude.Clamp(center.longitude - width/2.0)
		right = FieldLongitude.Clamp(center.longitude + width/2.0)
	}

	r.topLeft = NewCoordinate(top, left)
	r.bottomRight = NewCoordinate(bottom, right)
	return nil
}

// SetTopLeft replaces the top-left corner.
func (r *GeoRectangle) SetTopLeft(coordinate GeoCoordinate) error {
	if !coordinate.Valid() {
		return &InvalidCoordinateError{Coordinate: coordinate}
	}
	r.topLeft = NewCoordinate(coordinate.latitude, coordinate.longitude)
	return nil
}

// SetBottomRight replaces the bottom-right corner.
func (r *GeoRectangle) SetBottomRight(coordinate GeoCoordinate) error {
	if !coordinate.Valid() {
		return &InvalidCoordinateError{Coordinate: coordinate}
	}
	r.bottomRight = NewCoordinate(coordinate.latitude, coordinate.longitude)
	return nil
}

// SetTopRight moves the derived top-right corner, rewriting the top
// latitude and the right longitude.
func (r *GeoRectangle) SetTopRight(coordinate GeoCoordinate) error {
	if !coordinate.Valid() {
		return &InvalidCoordinateError{Coordinate: coordinate}
	}
	r.topLeft.latitude = coordinate.latitude
	r.bottomRight.longitude = coordinate.longitude
	return nil
}

// SetBottomLeft moves the derived bottom-left corner, rewriting the bottom
// latitude and the left longitude.
func (r *GeoRectangle) SetBottomLeft(coordinate GeoCoordinate) error {
	if !coordinate.Valid() {
		return &InvalidCoordinateError{Coordinate: coordinate}
	}
	r.bottomRight.latitude = coordinate.latitude
	r.topLeft.longitude = coordinate.longitude
	return nil
}

// Extend grows the rectangle to cover the coordinate. Latitude bounds
// extend by min/max; the longitude moves whichever edge needs the smaller
// angular extension, accounting for antimeridian wraparound. The greedy
// nearest-edge choice is not guaranteed minimal for every configuration.
// Extending with an already contained coordinate changes nothing.
func (r *GeoRectangle) Extend(coordinate GeoCoordinate) error {
	if !r.Valid() {
		return &InvalidRectangleError{Rectangle: *r}
	}
	if !coordinate.Valid() {
		return &InvalidCoordinateError{Coordinate: coordinate}
	}
	if contained, _ := r.Contains(coordinate); contained {
		return nil
	}

	r.topLeft.latitude = math.Max(r.topLeft.latitude, coordinate.latitude)
	r.bottomRight.latitude = math.Min(r.bottomRight.latitude, coordinate.latitude)

	if r.containsLongitude(coordinate.longitude) {
		return nil
	}
	extendRight := math.Mod(coordinate.longitude-r.bottomRight.longitude+360.0, 360.0)
	extendLeft := math.Mod(r.topLeft.longitude-coordinate.longitude+360.0, 360.0)
	if extendRight <= extendLeft {
		r.bottomRight.longitude = coordinate.longitude
	} else {
		r.topLeft.longitude = coordinate.longitude
	}
	return nil
}

// Union returns the smallest rectangle this package can produce that
// contains both inputs, by extending a copy of r with the corners of
// other. The union with an invalid rectangle is the other input.
func (r GeoRectangle) Union(other GeoRectangle) GeoRectangle {
	if !r.Valid() {
		return other
	}
	if !other.Valid() {
		return r
	}
	out := r
	corners := [4]GeoCoordinate{other.topLeft, other.TopRight(), other.BottomLeft(), other.bottomRight}
	for _, corner := range corners {
		_ = out.Extend(corner)
	}
	return out
}

// Intersection returns the largest rectangle contained by both inputs, or
// an invalid rectangle when they are disjoint or either input is invalid.
// When exactly one input crosses the antimeridian the overlap can split in
// two; the wider segment wins.
func (r GeoRectangle) Intersection(other GeoRectangle) GeoRectangle {
	if !r.Valid() || !other.Valid() {
		return InvalidRectangle()
	}

	top := math.Min(r.topLeft.latitude, other.topLeft.latitude)
	bottom := math.Max(r.bottomRight.latitude, other.bottomRight.latitude)
	if top < bottom {
		return InvalidRectangle()
	}

	left, right, ok := intersectLongitudes(r, other)
	if !ok {
		return InvalidRectangle()
	}
	return NewRectangle(NewCoordinate(top, left), NewCoordinate(bottom, right))
}

func intersectLongitudes(a, b GeoRectangle) (left, right float64, ok bool) {
	switch {
	case a.crossesAntimeridian() && b.crossesAntimeridian():
		// Both spans run through the antimeridian, so does the overlap.
		return math.Max(a.topLeft.longitude, b.topLeft.longitude),
			math.Min(a.bottomRight.longitude, b.bottomRight.longitude), true
	case !a.crossesAntimeridian() && !b.crossesAntimeridian():
		left = math.Max(a.topLeft.longitude, b.topLeft.longitude)
		right = math.Min(a.bottomRight.longitude, b.bottomRight.longitude)
		return left, right, left <= right
	case a.crossesAntimeridian():
		return intersectMixedLongitudes(a, b)
	default:
		return intersectMixedLongitudes(b, a)
	}
}

// intersectMixedLongitudes overlaps a wrapped span with a plain one. The
// wrapped span has an eastern arm [left, 180] and a western arm
// [-180, right]; the plain span may reach both, in which case the wider
// resulting segment is kept.
func intersectMixedLongitudes(wrapped, plain GeoRectangle) (left, right float64, ok bool) {
	type segment struct{ left, right float64 }
	var candidates []segment

	if plain.bottomRight.longitude >= wrapped.topLeft.longitude {
		candidates = append(candidates, segment{
			left:  math.Max(plain.topLeft.longitude, wrapped.topLeft.longitude),
			right: plain.bottomRight.longitude,
		})
	}
	if plain.topLeft.longitude <= wrapped.bottomRight.longitude {
		candidates = append(candidates, segment{
			left:  plain.topLeft.longitude,
			right: math.Min(plain.bottomRight.longitude, wrapped.bottomRight.longitude),
		})
	}

	if len(candidates) == 0 {
		return 0, 0, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.right-c.left > best.right-best.left {
			best = c
		}
	}
	return best.left, best.right, true
}

// Translate shifts both corners by the given latitude and longitude
// deltas. Latitude clamps with the same pole mirroring as SetHeight;
// longitude clamps to [-180, 180]. An invalid rectangle is left unchanged.
func (r *GeoRectangle) Translate(degreesLatitude, degreesLongitude float64) {
	if !r.Valid() {
		return
	}
	centerLat := (r.topLeft.latitude+r.bottomRight.latitude)/2.0 + degreesLatitude
	top, bottom := mirrorAtPoles(
		r.topLeft.latitude+degreesLatitude,
		r.bottomRight.latitude+degreesLatitude,
		centerLat,
	)
	r.topLeft = NewCoordinate(top, FieldLongitude.Clamp(r.topLeft.longitude+degreesLongitude))
	r.bottomRight = NewCoordinate(bottom, FieldLongitude.Clamp(r.bottomRight.longitude+degreesLongitude))
}

// Translated returns a shifted copy, leaving the receiver untouched.
func (r GeoRectangle) Translated(degreesLatitude, degreesLongitude float64) GeoRectangle {
	out := r
	out.Translate(degreesLatitude, degreesLongitude)
	return out
}

// String renders the rectangle as "[topLeft, bottomRight]".
func (r GeoRectangle) String() string {
	return fmt.Sprintf("[%v, %v]", r.topLeft, r.bottomRight)
}
