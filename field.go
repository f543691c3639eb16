package positioning

// CoordinateField identifies which scalar field of a coordinate a value
// represents.
type CoordinateField int

const (
	// FieldLatitude is a latitude value in degrees, valid in [-90, 90].
	FieldLatitude CoordinateField = iota
	// FieldLongitude is a longitude value in degrees, valid in [-180, 180].
	FieldLongitude
)

func (f CoordinateField) String() string {
	if f == FieldLatitude {
		return "latitude"
	}
	return "longitude"
}

// bounds returns the inclusive valid range for the field.
func (f CoordinateField) bounds() (min, max float64) {
	if f == FieldLatitude {
		return -90.0, 90.0
	}
	return -180.0, 180.0
}

// Valid reports whether value lies within the field's range. Out-of-range
// values are not normalized, only rejected; NaN is never valid.
func (f CoordinateField) Valid(value float64) bool {
	min, max := f.bounds()
	return value >= min && value <= max
}

// Clamp bounds value to the field's range, returning the nearest boundary
// for out-of-range input. In-range values pass through unchanged, as does
// NaN (it compares false against both bounds).
func (f CoordinateField) Clamp(value float64) float64 {
	min, max := f.bounds()
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}
