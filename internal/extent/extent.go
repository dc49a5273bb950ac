// Package extent writes the geographic footprint of a converted grid as GeoJSON.
package extent

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/gruppe-adler/asc2json/internal/ascgrid"
)

// Properties are attached to the footprint feature.
type Properties struct {
	Source   string
	Variable string
}

// FeatureCollection returns a collection holding the bounding box b as a polygon.
func FeatureCollection(b orb.Bound, header ascgrid.Header, props Properties) *geojson.FeatureCollection {
	feature := geojson.NewFeature(b.ToPolygon())
	feature.Properties["source"] = props.Source
	feature.Properties["variable"] = props.Variable
	feature.Properties["ncols"] = header.Ncols
	feature.Properties["nrows"] = header.Nrows
	feature.Properties["cellsize"] = header.CellSize
	feature.Properties["nodata"] = header.NoDataValue

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)
	return fc
}

// Write the footprint to given path
func Write(path string, b orb.Bound, header ascgrid.Header, props Properties) error {
	bytes, err := FeatureCollection(b, header, props).MarshalJSON()
	if err != nil {
		return err
	}

	return os.WriteFile(path, bytes, 0644)
}
