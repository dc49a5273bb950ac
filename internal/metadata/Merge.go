package metadata

import (
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cast"

	"github.com/gruppe-adler/asc2json/internal/ascgrid"
	"github.com/gruppe-adler/asc2json/internal/coords"
	"github.com/gruppe-adler/asc2json/internal/failure"
)

const timeUnits = "seconds since 1970-01-01 00:00:00"

// MergeOptions names the data variable and the grid's source file.
type MergeOptions struct {
	Name     string
	LongName string
	Units    string
	// Source is the path of the parsed grid; only its base name is recorded.
	Source string
}

// Merge returns a copy of doc carrying the attributes and variables derived
// from header. doc itself is left untouched.
//
// If global_attributes.data_epsg is set, the grid corners are reprojected from
// that reference system to WGS 84, otherwise they are taken as geographic.
// Either way the result claims WGS 84 coordinates.
//
// When doc already defines variables, the first one names the data variable
// and its long_name and units replace the ones in opts.
func Merge(header ascgrid.Header, doc *Document, opts MergeOptions) (*Document, error) {
	out := doc.Clone()

	attrs, err := out.Section(GlobalAttributes)
	if err != nil {
		return nil, err
	}

	epsg, err := sourceEPSG(attrs)
	if err != nil {
		return nil, err
	}
	bound, err := coords.Extent(header.Bound(), epsg)
	if err != nil {
		return nil, err
	}

	attrs.Set("data_epsg", coords.WGS84Code)
	attrs.Set("data_projection", coords.WGS84Name)
	attrs.Set("__source", filepath.Base(opts.Source))

	variables, err := out.Section(Variables)
	if err != nil {
		return nil, err
	}

	name, longName, units := resolveDataVariable(variables, opts)

	variables.Set("lat", latitude(bound, header.Nrows))
	variables.Set("lon", longitude(bound, header.Ncols))
	variables.Set("start_time", timeVariable("Accumulation start time"))
	variables.Set("valid_time", timeVariable("Accumulation end time"))
	variables.Set(name, NewObject().
		Set("long_name", longName).
		Set("units", units).
		Set("_FillValue", header.NoDataValue).
		Set("__size", []interface{}{header.Ncols, header.Nrows}))

	return out, nil
}

// sourceEPSG returns the reference system of the grid coordinates, or "" if
// none is given.
func sourceEPSG(attrs *Object) (string, error) {
	v, ok := attrs.Get("data_epsg")
	if !ok {
		return "", nil
	}

	code, err := cast.ToStringE(v)
	if err != nil {
		return "", failure.Convert(err, "invalid data_epsg")
	}
	return strings.TrimSpace(code), nil
}

func resolveDataVariable(variables *Object, opts MergeOptions) (name string, longName, units interface{}) {
	if variables.Len() == 0 {
		return opts.Name, opts.LongName, opts.Units
	}

	name = variables.Keys()[0]
	longName, units = opts.LongName, opts.Units

	existing, ok := variables.Object(name)
	if !ok {
		return name, longName, units
	}
	if v, ok := existing.Get("long_name"); ok {
		longName = v
	}
	if v, ok := existing.Get("units"); ok {
		units = v
	}
	return name, longName, units
}

func latitude(b orb.Bound, nrows uint) *Object {
	return NewObject().
		Set("long_name", "Latitude").
		Set("units", "degrees_north").
		Set("valid_min", b.Min.Y()).
		Set("valid_max", b.Max.Y()).
		Set("__size", []interface{}{nrows})
}

func longitude(b orb.Bound, ncols uint) *Object {
	return NewObject().
		Set("long_name", "Longitude").
		Set("units", "degrees_east").
		Set("valid_min", b.Min.X()).
		Set("valid_max", b.Max.X()).
		Set("__size", []interface{}{ncols})
}

func timeVariable(longName string) *Object {
	return NewObject().
		Set("long_name", longName).
		Set("standard_name", "time").
		Set("units", timeUnits).
		Set("__size", []interface{}{1})
}

// Axis returns the valid range and the size of a coordinate variable.
func Axis(doc *Document, name string) (min, max float64, size int, err error) {
	variables, err := doc.Section(Variables)
	if err != nil {
		return 0, 0, 0, err
	}
	v, ok := variables.Object(name)
	if !ok {
		return 0, 0, 0, failure.Validationf("variable %s is missing", name)
	}

	if min, err = floatAttr(v, name, "valid_min"); err != nil {
		return 0, 0, 0, err
	}
	if max, err = floatAttr(v, name, "valid_max"); err != nil {
		return 0, 0, 0, err
	}

	raw, _ := v.Get("__size")
	dims, err := cast.ToSliceE(raw)
	if err != nil || len(dims) == 0 {
		return 0, 0, 0, failure.Conversionf("variable %s has no __size", name)
	}
	if size, err = cast.ToIntE(dims[0]); err != nil {
		return 0, 0, 0, failure.Convert(err, "invalid __size of %s", name)
	}

	return min, max, size, nil
}

func floatAttr(v *Object, name, attr string) (float64, error) {
	raw, ok := v.Get(attr)
	if !ok {
		return 0, failure.Validationf("variable %s has no %s", name, attr)
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, failure.Convert(err, "invalid %s of %s", attr, name)
	}
	return f, nil
}
