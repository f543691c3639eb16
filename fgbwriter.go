package positioning

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
)

// WritePaths encodes the paths as FlatGeobuf LineString features, tagged
// WGS84, with an optional packed spatial index. Paths without coordinates
// are skipped; an entirely empty set is rejected with ErrNoPaths. Path
// names are stored in a single nullable string column.
func WritePaths(w io.Writer, paths []NamedPath, opts *StorageOptions) error {
	if opts == nil {
		opts = DefaultStorageOptions()
	}
	if len(paths) == 0 {
		return ErrNoPaths
	}

	builder := flatbuffers.NewBuilder(4096)

	header := writer.NewHeader(builder)
	header.SetGeometryType(flattypes.GeometryTypeLineString)
	if opts.Name != "" {
		header.SetName(opts.Name)
	}
	if opts.Description != "" {
		header.SetDescription(opts.Description)
	}

	nameColumn := writer.NewColumn(builder)
	nameColumn.SetName(pathNameColumn)
	nameColumn.SetTitle(pathNameColumn)
	nameColumn.SetType(flattypes.ColumnTypeString)
	nameColumn.SetNullable(true)
	header.SetColumns([]*writer.Column{nameColumn})

	crs := writer.NewCrs(builder)
	crs.SetOrg("EPSG")
	crs.SetCode(4326)
	crs.SetName("WGS 84")
	header.SetCrs(crs)

	gen := &pathFeatureGenerator{paths: paths}
	fgbWriter := writer.NewWriter(header, opts.IncludeIndex, gen, nil)
	_, err := fgbWriter.Write(w)
	return err
}

// pathNameColumn is the single property column stored per path feature.
const pathNameColumn = "name"

// pathFeatureGenerator feeds path features to the FlatGeobuf writer one at
// a time.
type pathFeatureGenerator struct {
	paths []NamedPath
	index int
}

func (g *pathFeatureGenerator) Generate() *writer.Feature {
	if g.index >= len(g.paths) {
		return nil
	}

	np := g.paths[g.index]
	g.index++

	if np.Path.Len() == 0 {
		return g.Generate() // Skip empty paths
	}

	builder := flatbuffers.NewBuilder(1024)
	geom := writer.NewGeometry(builder)
	geom.SetType(flattypes.GeometryTypeLineString)
	geom.SetXY(lineStringXY(np.Path.LineString()))

	feature := writer.NewFeature(builder)
	feature.SetGeometry(geom)
	if np.Name != "" {
		feature.SetProperties(encodePathName(np.Name))
	}
	return feature
}

// encodePathName encodes the name property: the little-endian uint16
// column index followed by the null-terminated string bytes.
func encodePathName(name string) []byte {
	var buf bytes.Buffer
	index := make([]byte, 2)
	binary.LittleEndian.PutUint16(index, 0)
	buf.Write(index)
	buf.WriteString(name)
	buf.WriteByte(0)
	return buf.Bytes()
}
