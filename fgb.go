package positioning

import "errors"

// Errors returned by the FlatGeobuf path storage layer.
var (
	// ErrNoPaths is returned when writing an empty path set.
	ErrNoPaths = errors.New("positioning: no paths to write")
	// ErrNoIndex is returned when a spatial query needs an index the file
	// does not carry.
	ErrNoIndex = errors.New("positioning: file has no spatial index")
)

// NamedPath couples a path with an optional identifying name for storage.
type NamedPath struct {
	Name string
	Path GeoPath
}

// StorageOptions configures FlatGeobuf path writing.
type StorageOptions struct {
	Name         string // Layer name
	Description  string // Layer description
	IncludeIndex bool   // Include a packed spatial index
}

// DefaultStorageOptions returns the default writing options.
func DefaultStorageOptions() *StorageOptions {
	return &StorageOptions{IncludeIndex: true}
}

// LayerInfo describes a stored path layer.
type LayerInfo struct {
	Name        string
	Description string
	PathCount   uint64
	Bounds      GeoRectangle // Bounding rectangle of all stored paths
	HasIndex    bool
}
