package positioning

import (
	"fmt"

	flatgeobuf "github.com/flatgeobuf/flatgeobuf/src/go"
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
)

// PathReader reads paths stored in FlatGeobuf format.
type PathReader struct {
	fgb *flatgeobuf.FlatGeoBuf
}

// NewPathReader opens a FlatGeobuf file; the file is memory-mapped.
func NewPathReader(path string) (*PathReader, error) {
	fgb, err := flatgeobuf.New(path)
	if err != nil {
		return nil, err
	}
	return &PathReader{fgb: fgb}, nil
}

// NewPathReaderFromData creates a reader over in-memory FlatGeobuf bytes.
func NewPathReaderFromData(data []byte) (*PathReader, error) {
	fgb, err := flatgeobuf.NewWithData(data)
	if err != nil {
		return nil, err
	}
	return &PathReader{fgb: fgb}, nil
}

// Info returns metadata about the stored layer. The bounds come from the
// file envelope; without an envelope they are the invalid rectangle.
func (r *PathReader) Info() *LayerInfo {
	h := r.fgb.Header()
	if h == nil {
		return nil
	}

	info := &LayerInfo{
		Name:        string(h.Name()),
		Description: string(h.Description()),
		PathCount:   h.FeaturesCount(),
		Bounds:      InvalidRectangle(),
		HasIndex:    h.IndexNodeSize() > 0,
	}
	if h.EnvelopeLength() >= 4 {
		info.Bounds = NewRectangle(
			NewCoordinate(h.Envelope(3), h.Envelope(0)),
			NewCoordinate(h.Envelope(1), h.Envelope(2)),
		)
	}
	return info
}

// ReadAll returns every stored path. Reading requires the spatial index;
// the official Go FlatGeobuf implementation cannot iterate features
// without one.
func (r *PathReader) ReadAll() ([]NamedPath, error) {
	h := r.fgb.Header()
	if h.FeaturesCount() == 0 {
		return nil, nil
	}
	if h.IndexNodeSize() == 0 || h.EnvelopeLength() < 4 {
		return nil, ErrNoIndex
	}

	features, err := r.fgb.Search(h.Envelope(0), h.Envelope(1), h.Envelope(2), h.Envelope(3))
	if err != nil {
		return nil, err
	}

	paths := make([]NamedPath, 0, len(features))
	for _, f := range features {
		if np, ok := convertPathFeature(f, h); ok {
			paths = append(paths, np)
		}
	}
	return paths, nil
}

// Search returns the stored paths whose bounding boxes intersect the query
// rectangle, using the packed spatial index. A rectangle crossing the
// antimeridian queries each arm separately and merges the results.
func (r *PathReader) Search(bounds GeoRectangle) ([]NamedPath, error) {
	if !bounds.Valid() {
		return nil, &InvalidRectangleError{Rectangle: bounds}
	}
	h := r.fgb.Header()
	if h.IndexNodeSize() == 0 {
		return nil, ErrNoIndex
	}

	minLat := bounds.bottomRight.latitude
	maxLat := bounds.topLeft.latitude

	if !bounds.crossesAntimeridian() {
		return r.search(bounds.topLeft.longitude, minLat, bounds.bottomRight.longitude, maxLat)
	}

	east, err := r.search(bounds.topLeft.longitude, minLat, 180.0, maxLat)
	if err != nil {
		return nil, err
	}
	west, err := r.search(-180.0, minLat, bounds.bottomRight.longitude, maxLat)
	if err != nil {
		return nil, err
	}
	return mergePaths(east, west), nil
}

func (r *PathReader) search(minLon, minLat, maxLon, maxLat float64) ([]NamedPath, error) {
	features, err := r.fgb.Search(minLon, minLat, maxLon, maxLat)
	if err != nil {
		return nil, err
	}

	h := r.fgb.Header()
	paths := make([]NamedPath, 0, len(features))
	for _, f := range features {
		if np, ok := convertPathFeature(f, h); ok {
			paths = append(paths, np)
		}
	}
	return paths, nil
}

// Close releases the reader. The underlying FlatGeoBuf type has no public
// close; dropping the reference lets the finalizer reclaim the mapping.
func (r *PathReader) Close() error {
	r.fgb = nil
	return nil
}

// convertPathFeature rebuilds a NamedPath from a stored LineString
// feature. Features of other geometry types, or without any in-range
// point, are dropped.
func convertPathFeature(feature *flattypes.Feature, header *flattypes.Header) (NamedPath, bool) {
	if feature == nil {
		return NamedPath{}, false
	}

	var geomObj flattypes.Geometry
	geom := feature.Geometry(&geomObj)
	if geom == nil {
		return NamedPath{}, false
	}
	geomType := geom.Type()
	if geomType == flattypes.GeometryTypeUnknown {
		geomType = header.GeometryType()
	}
	if geomType != flattypes.GeometryTypeLineString {
		return NamedPath{}, false
	}

	var path GeoPath
	xyLen := geom.XyLength()
	for i := 0; i+1 < xyLen; i += 2 {
		if err := path.Add(NewCoordinate(geom.Xy(i+1), geom.Xy(i))); err != nil {
			return NamedPath{}, false
		}
	}
	if path.Len() == 0 {
		return NamedPath{}, false
	}

	return NamedPath{Name: decodePathName(feature, header), Path: path}, true
}

// decodePathName reads the name property written by encodePathName: a
// little-endian uint16 column index, then null-terminated string bytes.
func decodePathName(feature *flattypes.Feature, header *flattypes.Header) string {
	propsLen := feature.PropertiesLength()
	if propsLen <= 3 || header.ColumnsLength() == 0 {
		return ""
	}

	index := int(feature.Properties(0)) | int(feature.Properties(1))<<8
	var col flattypes.Column
	if !header.Columns(&col, index) || col.Type() != flattypes.ColumnTypeString {
		return ""
	}

	raw := make([]byte, 0, propsLen-3)
	for i := 2; i < propsLen; i++ {
		b := byte(feature.Properties(i))
		if b == 0 {
			break
		}
		raw = append(raw, b)
	}
	return string(raw)
}

// mergePaths concatenates two result sets, dropping paths from the second
// that already appear in the first. A path spanning both arms of a wrapped
// query shows up in both searches.
func mergePaths(a, b []NamedPath) []NamedPath {
	seen := make(map[string]struct{}, len(a))
	for _, np := range a {
		seen[pathKey(np)] = struct{}{}
	}
	out := a
	for _, np := range b {
		if _, dup := seen[pathKey(np)]; dup {
			continue
		}
		out = append(out, np)
	}
	return out
}

func pathKey(np NamedPath) string {
	first, _ := np.Path.At(0)
	last, _ := np.Path.At(np.Path.Len() - 1)
	return fmt.Sprintf("%s|%d|%v|%v", np.Name, np.Path.Len(), first, last)
}
