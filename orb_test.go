package positioning

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
)

func TestCoordinatePointRoundTrip(t *testing.T) {
	c := NewCoordinate(60.0, 30.0)

	p := c.Point()
	if p[0] != 30.0 || p[1] != 60.0 {
		t.Fatalf("Point() = %v, want longitude first", p)
	}
	if back := CoordinateFromPoint(p); !back.Equal(c) {
		t.Errorf("round trip = %v, want %v", back, c)
	}
}

func TestCoordinatePoint_DropsAltitude(t *testing.T) {
	c := NewCoordinate3D(60.0, 30.0, 100.0)
	back := CoordinateFromPoint(c.Point())
	if _, ok := back.Altitude(); ok {
		t.Error("altitude survived a planar round trip")
	}
}

func TestRectangleBound(t *testing.T) {
	r := NewRectangle(NewCoordinate(10.0, 0.0), NewCoordinate(0.0, 10.0))

	b, err := r.Bound()
	if err != nil {
		t.Fatalf("Bound failed: %v", err)
	}
	want := orb.Bound{Min: orb.Point{0.0, 0.0}, Max: orb.Point{10.0, 10.0}}
	if b != want {
		t.Errorf("Bound() = %v, want %v", b, want)
	}

	if back := RectangleFromBound(b); back != r {
		t.Errorf("round trip = %v, want %v", back, r)
	}
}

func TestRectangleBound_AntimeridianCrossing(t *testing.T) {
	r := NewRectangle(NewCoordinate(10.0, 170.0), NewCoordinate(0.0, -170.0))

	b, err := r.Bound()
	if err != nil {
		t.Fatalf("Bound failed: %v", err)
	}
	// The right edge unwraps past 180 so Min stays west of Max.
	if b.Min[0] != 170.0 || b.Max[0] != 190.0 {
		t.Errorf("Bound() = %v, want longitudes [170, 190]", b)
	}

	if back := RectangleFromBound(b); back != r {
		t.Errorf("round trip = %v, want %v", back, r)
	}
}

func TestRectangleBound_Invalid(t *testing.T) {
	var rectErr *InvalidRectangleError
	if _, err := InvalidRectangle().Bound(); !errors.As(err, &rectErr) {
		t.Errorf("expected InvalidRectangleError, got %v", err)
	}
}

func TestPathLineStringRoundTrip(t *testing.T) {
	p := NewPath(testPathCoordinates())

	ls := p.LineString()
	if len(ls) != p.Len() {
		t.Fatalf("LineString length = %d, want %d", len(ls), p.Len())
	}
	for i, pt := range ls {
		c, _ := p.At(i)
		if pt[0] != c.Longitude() || pt[1] != c.Latitude() {
			t.Errorf("point %d = %v, want (%v, %v)", i, pt, c.Longitude(), c.Latitude())
		}
	}

	back, err := PathFromLineString(ls)
	if err != nil {
		t.Fatalf("PathFromLineString failed: %v", err)
	}
	if back.Len() != p.Len() {
		t.Fatalf("round trip length = %d, want %d", back.Len(), p.Len())
	}
	for i := 0; i < p.Len(); i++ {
		a, _ := p.At(i)
		b, _ := back.At(i)
		if !a.Equal(b) {
			t.Errorf("element %d = %v, want %v", i, b, a)
		}
	}
}

func TestPathFromLineString_RejectsOutOfRange(t *testing.T) {
	ls := orb.LineString{{30.0, 60.0}, {30.0, 95.0}}

	var coordErr *InvalidCoordinateError
	if _, err := PathFromLineString(ls); !errors.As(err, &coordErr) {
		t.Errorf("expected InvalidCoordinateError, got %v", err)
	}
}

func TestPathFeature(t *testing.T) {
	p := NewPath(testPathCoordinates())

	f := p.Feature("perimeter")
	if f.Geometry.GeoJSONType() != "LineString" {
		t.Errorf("geometry type = %q", f.Geometry.GeoJSONType())
	}
	if got, _ := f.Properties["name"].(string); got != "perimeter" {
		t.Errorf("name property = %q", got)
	}

	anonymous := p.Feature("")
	if _, ok := anonymous.Properties["name"]; ok {
		t.Error("empty name still produced a property")
	}
}
