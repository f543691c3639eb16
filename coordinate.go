package positioning

import (
	"fmt"
	"math"
)

// CoordinateType classifies a GeoCoordinate.
type CoordinateType int

const (
	// CoordinateInvalid marks a coordinate whose latitude or longitude is
	// out of range.
	CoordinateInvalid CoordinateType = iota
	// Coordinate2D marks a valid coordinate without altitude.
	Coordinate2D
	// Coordinate3D marks a valid coordinate with altitude.
	Coordinate3D
)

func (t CoordinateType) String() string {
	switch t {
	case Coordinate2D:
		return "2D"
	case Coordinate3D:
		return "3D"
	default:
		return "invalid"
	}
}

// GeoCoordinate is a point on the sphere: latitude and longitude in
// degrees, with an optional altitude in meters. It is an immutable value;
// the mutating structures in this package copy it freely.
//
// The canonical invalid coordinate, returned by InvalidCoordinate, has NaN
// latitude and longitude and no altitude. Validity is always derived from
// range checks rather than NaN propagation.
type GeoCoordinate struct {
	latitude  float64
	longitude float64
	altitude  float32
	hasAlt    bool
}

// NewCoordinate returns a 2D coordinate. The values are stored as given,
// without validation or clamping; out-of-range values yield an invalid
// coordinate.
func NewCoordinate(latitude, longitude float64) GeoCoordinate {
	return GeoCoordinate{latitude: latitude, longitude: longitude}
}

// NewCoordinate3D returns a coordinate with an altitude in meters.
func NewCoordinate3D(latitude, longitude float64, altitude float32) GeoCoordinate {
	return GeoCoordinate{latitude: latitude, longitude: longitude, altitude: altitude, hasAlt: true}
}

// InvalidCoordinate returns the canonical invalid coordinate.
func InvalidCoordinate() GeoCoordinate {
	return GeoCoordinate{latitude: math.NaN(), longitude: math.NaN()}
}

// Latitude returns the latitude in degrees.
func (c GeoCoordinate) Latitude() float64 { return c.latitude }

// Longitude returns the longitude in degrees.
func (c GeoCoordinate) Longitude() float64 { return c.longitude }

// Altitude returns the altitude in meters and whether it is present.
func (c GeoCoordinate) Altitude() (float32, bool) { return c.altitude, c.hasAlt }

// Type classifies the coordinate: invalid when latitude or longitude is
// out of range, otherwise 3D when an altitude is present and 2D when not.
func (c GeoCoordinate) Type() CoordinateType {
	if FieldLatitude.Valid(c.latitude) && FieldLongitude.Valid(c.longitude) {
		if c.hasAlt {
			return Coordinate3D
		}
		return Coordinate2D
	}
	return CoordinateInvalid
}

// Valid reports whether the coordinate classifies as 2D or 3D.
func (c GeoCoordinate) Valid() bool {
	return c.Type() != CoordinateInvalid
}

// Equal reports approximate equality within the default Epsilon.
func (c GeoCoordinate) Equal(other GeoCoordinate) bool {
	return c.EqualEpsilon(other, Epsilon)
}

// EqualEpsilon reports whether latitude and longitude match within eps
// degrees. Altitudes must match within eps when both are present; absence
// on both sides also matches. Two NaN fields compare equal, so the invalid
// sentinel equals only itself.
func (c GeoCoordinate) EqualEpsilon(other GeoCoordinate, eps float64) bool {
	if !fieldEqual(c.latitude, other.latitude, eps) ||
		!fieldEqual(c.longitude, other.longitude, eps) {
		return false
	}
	if !c.hasAlt && !other.hasAlt {
		return true
	}
	if c.hasAlt != other.hasAlt {
		return false
	}
	return fieldEqual(float64(c.altitude), float64(other.altitude), eps)
}

func fieldEqual(a, b, eps float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= eps
}

// AzimuthTo returns the initial great-circle bearing from c to other, in
// degrees clockwise from north, in [0, 360). Both endpoints must be valid.
func (c GeoCoordinate) AzimuthTo(other GeoCoordinate) (float32, error) {
	if !c.Valid() {
		return 0, &InvalidCoordinateError{Coordinate: c}
	}
	if !other.Valid() {
		return 0, &InvalidCoordinateError{Coordinate: other}
	}

	dLon := toRadians(other.longitude - c.longitude)
	lat1 := toRadians(c.latitude)
	lat2 := toRadians(other.latitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	azimuth := toDegrees(math.Atan2(y, x)) + 360.0

	// Reduce the whole degrees modulo 360 while keeping the fractional
	// part, so that exactly 360.0 normalizes to 0.0.
	whole := math.Trunc(azimuth)
	return float32(int(whole+360.0)%360) + float32(azimuth-whole), nil
}

// DistanceTo returns the great-circle distance between c and other in
// meters, using the haversine formula. Both endpoints must be valid. The
// operation is symmetric up to floating rounding.
func (c GeoCoordinate) DistanceTo(other GeoCoordinate) (float32, error) {
	if !c.Valid() {
		return 0, &InvalidCoordinateError{Coordinate: c}
	}
	if !other.Valid() {
		return 0, &InvalidCoordinateError{Coordinate: other}
	}

	sinHalfLat := math.Sin(toRadians(other.latitude-c.latitude) / 2.0)
	sinHalfLon := math.Sin(toRadians(other.longitude-c.longitude) / 2.0)
	a := sinHalfLat*sinHalfLat +
		math.Cos(toRadians(c.latitude))*math.Cos(toRadians(other.latitude))*sinHalfLon*sinHalfLon
	return float32(2.0 * EarthMeanRadius * math.Asin(math.Sqrt(a))), nil
}

// AtDistanceAndAzimuth projects c along the great circle with the given
// initial azimuth (degrees) by distance meters and returns the destination.
// A negative distance projects in the opposite direction. The altitude, if
// any, carries through unchanged. The destination longitude is clamped to
// [-180, 180].
func (c GeoCoordinate) AtDistanceAndAzimuth(distance, azimuth float32) (GeoCoordinate, error) {
	if !c.Valid() {
		return InvalidCoordinate(), &InvalidCoordinateError{Coordinate: c}
	}

	ratio := float64(distance) / EarthMeanRadius
	lat1 := toRadians(c.latitude)
	bearing := toRadians(float64(azimuth))

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(ratio) +
		math.Cos(lat1)*math.Sin(ratio)*math.Cos(bearing))
	lon2 := toRadians(c.longitude) +
		math.Atan2(math.Sin(bearing)*math.Sin(ratio)*math.Cos(lat1),
			math.Cos(ratio)-math.Sin(lat1)*math.Sin(lat2))

	dest := GeoCoordinate{
		latitude:  toDegrees(lat2),
		longitude: FieldLongitude.Clamp(toDegrees(lon2)),
		altitude:  c.altitude,
		hasAlt:    c.hasAlt,
	}
	return dest, nil
}

// String renders the coordinate as "(lat°, lon°)" or "(lat°, lon°, altm)"
// with fixed precision. The format is for logs and error messages, not for
// parsing.
func (c GeoCoordinate) String() string {
	if c.hasAlt {
		return fmt.Sprintf("(%.7f°, %.7f°, %.2fm)", c.latitude, c.longitude, c.altitude)
	}
	return fmt.Sprintf("(%.7f°, %.7f°)", c.latitude, c.longitude)
}
