package positioning

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Point converts the coordinate to an orb.Point in (longitude, latitude)
// order. Altitude, if any, is dropped.
func (c GeoCoordinate) Point() orb.Point {
	return orb.Point{c.longitude, c.latitude}
}

// CoordinateFromPoint builds a 2D coordinate from an orb.Point.
func CoordinateFromPoint(p orb.Point) GeoCoordinate {
	return NewCoordinate(p[1], p[0])
}

// Bound converts the rectangle to an orb.Bound. orb bounds are planar, so
// a rectangle crossing the antimeridian unwraps its right edge past 180°
// to keep Min before Max.
func (r GeoRectangle) Bound() (orb.Bound, error) {
	if !r.Valid() {
		return orb.Bound{}, &InvalidRectangleError{Rectangle: r}
	}
	maxLon := r.bottomRight.longitude
	if r.crossesAntimeridian() {
		maxLon += 360.0
	}
	return orb.Bound{
		Min: orb.Point{r.topLeft.longitude, r.bottomRight.latitude},
		Max: orb.Point{maxLon, r.topLeft.latitude},
	}, nil
}

// RectangleFromBound builds a rectangle from an orb.Bound, wrapping an
// eastern edge that extends past 180° back into range.
func RectangleFromBound(b orb.Bound) GeoRectangle {
	right := b.Max[0]
	if right > 180.0 {
		right -= 360.0
	}
	return NewRectangle(
		NewCoordinate(b.Max[1], b.Min[0]),
		NewCoordinate(b.Min[1], right),
	)
}

// LineString converts the path to an orb.LineString.
func (p GeoPath) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(p.coordinates))
	for _, c := range p.coordinates {
		ls = append(ls, c.Point())
	}
	return ls
}

// PathFromLineString builds a path from an orb.LineString, failing on the
// first out-of-range point.
func PathFromLineString(ls orb.LineString) (GeoPath, error) {
	var p GeoPath
	for _, pt := range ls {
		if err := p.Add(CoordinateFromPoint(pt)); err != nil {
			return GeoPath{}, err
		}
	}
	return p, nil
}

// Feature converts the path to a geojson LineString feature, attaching a
// "name" property when name is non-empty.
func (p GeoPath) Feature(name string) *geojson.Feature {
	f := geojson.NewFeature(p.LineString())
	if name != "" {
		f.Properties["name"] = name
	}
	return f
}

// lineStringXY flattens a linestring into the interleaved XY layout
// FlatGeobuf geometries store.
func lineStringXY(ls orb.LineString) []float64 {
	xy := make([]float64, 0, len(ls)*2)
	for _, p := range ls {
		xy = append(xy, p[0], p[1])
	}
	return xy
}
