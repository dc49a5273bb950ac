// Package coords computes the geographic extent of a grid and the coordinate
// vectors along its axes.
package coords

import (
	"fmt"

	"github.com/ctessum/geom/proj"
	"github.com/paulmach/orb"
)

// Transform returns a transformation from the reference system identified by
// code to geographic WGS 84 (longitude, latitude).
func Transform(code string) (proj.Transformer, error) {
	def, err := Lookup(code)
	if err != nil {
		return nil, err
	}

	src, err := proj.Parse(def)
	if err != nil {
		return nil, fmt.Errorf("coords: parsing EPSG:%s: %v", code, err)
	}
	dst, err := proj.Parse(wgs84Def)
	if err != nil {
		return nil, err
	}

	return src.NewTransform(dst)
}

// Extent returns the lower-left (Min) and upper-right (Max) corners of b in
// geographic WGS 84 coordinates. If code is empty b is assumed to be
// geographic already and is returned unchanged.
func Extent(b orb.Bound, code string) (orb.Bound, error) {
	if code == "" {
		return b, nil
	}

	ct, err := Transform(code)
	if err != nil {
		return orb.Bound{}, err
	}

	ll, err := transformPoint(ct, b.Min)
	if err != nil {
		return orb.Bound{}, err
	}
	ur, err := transformPoint(ct, b.Max)
	if err != nil {
		return orb.Bound{}, err
	}

	return orb.Bound{Min: ll, Max: ur}, nil
}

func transformPoint(ct proj.Transformer, p orb.Point) (orb.Point, error) {
	x, y, err := ct(p.X(), p.Y())
	if err != nil {
		return orb.Point{}, fmt.Errorf("coords: transforming (%g, %g): %v", p.X(), p.Y(), err)
	}
	return orb.Point{x, y}, nil
}

// Vector returns n evenly spaced values starting at min with a step of
// (max-min)/n. max itself is not part of the result.
func Vector(min, max float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	values := make([]float64, n)
	delta := (max - min) / float64(n)
	for i := range values {
		values[i] = min + float64(i)*delta
	}

	return values
}
