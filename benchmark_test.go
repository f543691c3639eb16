package positioning

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

// =============================================================================
// Test Data Generators
// =============================================================================

// generateCoordinates creates n random coordinates within the given bounds.
func generateCoordinates(r *rand.Rand, n int, minLat, maxLat, minLon, maxLon float64) []GeoCoordinate {
	coords := make([]GeoCoordinate, n)
	for i := 0; i < n; i++ {
		lat := minLat + r.Float64()*(maxLat-minLat)
		lon := minLon + r.Float64()*(maxLon-minLon)
		coords[i] = NewCoordinate(lat, lon)
	}
	return coords
}

// generatePaths creates n random paths with the given number of vertices,
// each drifting from a random start point.
func generatePaths(r *rand.Rand, n, verticesPerPath int) []NamedPath {
	paths := make([]NamedPath, n)
	for i := 0; i < n; i++ {
		startLat := -80.0 + r.Float64()*160.0
		startLon := -170.0 + r.Float64()*340.0
		coords := make([]GeoCoordinate, verticesPerPath)
		for j := 0; j < verticesPerPath; j++ {
			coords[j] = NewCoordinate(
				FieldLatitude.Clamp(startLat+float64(j)*0.01),
				FieldLongitude.Clamp(startLon+float64(j)*0.01),
			)
		}
		paths[i] = NamedPath{
			Name: fmt.Sprintf("path_%d", i),
			Path: NewPath(coords),
		}
	}
	return paths
}

// generateRectangles creates n random non-wrapping rectangles.
func generateRectangles(r *rand.Rand, n int) []GeoRectangle {
	rects := make([]GeoRectangle, n)
	for i := 0; i < n; i++ {
		lat := -80.0 + r.Float64()*160.0
		lon := -170.0 + r.Float64()*340.0
		height := r.Float64() * 10.0
		width := r.Float64() * 10.0
		rects[i] = NewRectangle(
			NewCoordinate(FieldLatitude.Clamp(lat+height), lon),
			NewCoordinate(lat, FieldLongitude.Clamp(lon+width)),
		)
	}
	return rects
}

// =============================================================================
// Geodesic Benchmarks
// =============================================================================

func BenchmarkDistanceTo(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	coords := generateCoordinates(r, 1000, -90, 90, -180, 180)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := coords[i%len(coords)]
		c := coords[(i+1)%len(coords)]
		if _, err := a.DistanceTo(c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAzimuthTo(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	coords := generateCoordinates(r, 1000, -90, 90, -180, 180)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := coords[i%len(coords)]
		c := coords[(i+1)%len(coords)]
		if _, err := a.AzimuthTo(c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAtDistanceAndAzimuth(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	coords := generateCoordinates(r, 1000, -90, 90, -180, 180)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := coords[i%len(coords)]
		if _, err := c.AtDistanceAndAzimuth(10000, float32(i%360)); err != nil {
			b.Fatal(err)
		}
	}
}

// =============================================================================
// Rectangle Benchmarks
// =============================================================================

func BenchmarkRectangleContains(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	rects := generateRectangles(r, 100)
	coords := generateCoordinates(r, 1000, -90, 90, -180, 180)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rect := rects[i%len(rects)]
		if _, err := rect.Contains(coords[i%len(coords)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRectangleIntersects(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	rects := generateRectangles(r, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := rects[i%len(rects)]
		c := rects[(i+1)%len(rects)]
		if _, err := a.Intersects(c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRectangleFromCoordinates_100(b *testing.B) {
	benchmarkRectangleFromCoordinates(b, 100)
}

func BenchmarkRectangleFromCoordinates_1000(b *testing.B) {
	benchmarkRectangleFromCoordinates(b, 1000)
}

func benchmarkRectangleFromCoordinates(b *testing.B, n int) {
	r := rand.New(rand.NewSource(42))
	coords := generateCoordinates(r, n, -80, 80, -170, 170)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if rect := RectangleFromCoordinates(coords); !rect.Valid() {
			b.Fatal("invalid bounding rectangle")
		}
	}
}

// =============================================================================
// Path Benchmarks
// =============================================================================

func BenchmarkPathLength_100(b *testing.B) {
	benchmarkPathLength(b, 100)
}

func BenchmarkPathLength_1000(b *testing.B) {
	benchmarkPathLength(b, 1000)
}

func benchmarkPathLength(b *testing.B, vertices int) {
	r := rand.New(rand.NewSource(42))
	p := generatePaths(r, 1, vertices)[0].Path

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Length(0, p.Len()-1, NoLoop); err != nil {
			b.Fatal(err)
		}
	}
}

// =============================================================================
// Storage Benchmarks
// =============================================================================

func BenchmarkWritePaths_100(b *testing.B) {
	benchmarkWritePaths(b, 100, false)
}

func BenchmarkWritePaths_1000(b *testing.B) {
	benchmarkWritePaths(b, 1000, false)
}

func BenchmarkWritePathsIdx_100(b *testing.B) {
	benchmarkWritePaths(b, 100, true)
}

func BenchmarkWritePathsIdx_1000(b *testing.B) {
	benchmarkWritePaths(b, 1000, true)
}

func benchmarkWritePaths(b *testing.B, n int, includeIndex bool) {
	r := rand.New(rand.NewSource(42))
	paths := generatePaths(r, n, 10)
	opts := &StorageOptions{IncludeIndex: includeIndex}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if err := WritePaths(&buf, paths, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadAllPaths_100(b *testing.B) {
	benchmarkReadAllPaths(b, 100)
}

func BenchmarkReadAllPaths_1000(b *testing.B) {
	benchmarkReadAllPaths(b, 1000)
}

func benchmarkReadAllPaths(b *testing.B, n int) {
	r := rand.New(rand.NewSource(42))
	paths := generatePaths(r, n, 10)

	var buf bytes.Buffer
	if err := WritePaths(&buf, paths, DefaultStorageOptions()); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reader, err := NewPathReaderFromData(data)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := reader.ReadAll(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearchPaths_1000(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	paths := generatePaths(r, 1000, 10)

	var buf bytes.Buffer
	if err := WritePaths(&buf, paths, DefaultStorageOptions()); err != nil {
		b.Fatal(err)
	}
	reader, err := NewPathReaderFromData(buf.Bytes())
	if err != nil {
		b.Fatal(err)
	}
	window := NewRectangle(NewCoordinate(30.0, -30.0), NewCoordinate(-30.0, 30.0))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reader.Search(window); err != nil {
			b.Fatal(err)
		}
	}
}
