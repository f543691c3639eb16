// Package positioning provides geodesic coordinate mathematics on a
// spherical Earth model: points with latitude, longitude and optional
// altitude, great-circle distance and azimuth between them, forward
// projection by distance and azimuth, axis-aligned geographic bounding
// rectangles with antimeridian-aware interval semantics, and ordered
// coordinate paths with length computation.
//
// All types are plain values: operations are synchronous, pure and free of
// shared state, so independent values may be used concurrently without
// coordination.
package positioning

import "math"

// EarthMeanRadius is the mean Earth radius in meters used by all
// great-circle computations.
const EarthMeanRadius = 6371008.8

// Epsilon is the default tolerance, in degrees, for approximate coordinate
// equality.
const Epsilon = 0.0000003

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

func toDegrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}
