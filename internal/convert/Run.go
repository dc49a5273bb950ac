// Package convert runs the conversion of an ASCII grid into JSON metadata and
// CSV data.
package convert

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"github.com/gruppe-adler/asc2json/internal/ascgrid"
	"github.com/gruppe-adler/asc2json/internal/coords"
	"github.com/gruppe-adler/asc2json/internal/extent"
	"github.com/gruppe-adler/asc2json/internal/metadata"
	"github.com/gruppe-adler/asc2json/internal/preview"
	"github.com/gruppe-adler/asc2json/internal/tabular"
	"github.com/gruppe-adler/asc2json/internal/utils"
	"github.com/gruppe-adler/asc2json/internal/validate"
)

// Run converts cfg.Input. Files are written in the order lat, lon, metadata,
// data and then the optional extras. A failing step ends the run; files
// already written are kept.
func Run(cfg Config, log logrus.FieldLogger) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{"input": cfg.Input, "output": cfg.Output})

	if err := validate.InputFile(cfg.Input); err != nil {
		return err
	}
	if err := validate.MetadataFile(cfg.Metadata); err != nil {
		return err
	}
	log.Debug("Validated input files")

	timer := time.Now()
	seed, err := loadSeed(cfg, log)
	if err != nil {
		return err
	}
	log.WithField("duration", time.Since(timer)).Debug("Loaded metadata")

	ts, err := Timestamp(cfg.UnixTime, cfg.ISOTime, time.Now)
	if err != nil {
		return err
	}
	log.WithField("timestamp", ts).Debug("Resolved timestamp")

	timer = time.Now()
	header, grid, err := ascgrid.Read(cfg.Input)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"ncols":    header.Ncols,
		"nrows":    header.Nrows,
		"duration": time.Since(timer),
	}).Info("Parsed grid")

	doc, err := metadata.Merge(header, seed, metadata.MergeOptions{
		Name:     cfg.DataName,
		LongName: cfg.DataLong,
		Units:    cfg.DataUnits,
		Source:   cfg.Input,
	})
	if err != nil {
		return err
	}
	doc, err = metadata.Attach(doc, metadata.Outputs{
		Timestamp: ts,
		DataName:  cfg.DataName,
		DataPath:  cfg.dataPath(),
		LatPath:   cfg.latPath(),
		LonPath:   cfg.lonPath(),
	})
	if err != nil {
		return err
	}
	log.Debug("Merged metadata")

	timer = time.Now()
	bound, err := writeAxes(cfg, doc)
	if err != nil {
		return err
	}
	if err := doc.Write(cfg.jsonPath()); err != nil {
		return err
	}
	if err := tabular.WriteRows(cfg.dataPath(), grid); err != nil {
		return err
	}
	log.WithField("duration", time.Since(timer)).Info("Wrote outputs")

	if cfg.GeoJSON {
		props := extent.Properties{Source: cfg.Input, Variable: cfg.DataName}
		if err := extent.Write(cfg.geojsonPath(), bound, header, props); err != nil {
			return err
		}
		log.WithField("path", cfg.geojsonPath()).Info("Wrote extent")
	}

	if cfg.Preview > 0 {
		timer = time.Now()
		if err := preview.Write(cfg.previewPath(), uint(cfg.Preview), header, grid); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"path":     cfg.previewPath(),
			"duration": time.Since(timer),
		}).Info("Wrote preview")
	}

	log.WithField("duration", time.Since(start)).Info("Finished")
	return nil
}

// loadSeed reads the metadata to merge into. Without an explicit file,
// <input>.json is used if it exists.
func loadSeed(cfg Config, log logrus.FieldLogger) (*metadata.Document, error) {
	path := cfg.Metadata
	if path == "" {
		if !utils.IsFile(cfg.Input + ".json") {
			log.Debug("No metadata found, starting empty")
			return metadata.New(), nil
		}
		path = cfg.Input + ".json"
	}

	log.WithField("metadata", path).Info("Loading metadata")
	return metadata.Read(path)
}

// writeAxes writes the latitude and longitude vectors and returns the
// geographic extent they span.
func writeAxes(cfg Config, doc *metadata.Document) (orb.Bound, error) {
	latMin, latMax, nlat, err := metadata.Axis(doc, "lat")
	if err != nil {
		return orb.Bound{}, err
	}
	lonMin, lonMax, nlon, err := metadata.Axis(doc, "lon")
	if err != nil {
		return orb.Bound{}, err
	}

	if err := tabular.WriteVector(cfg.latPath(), coords.Vector(latMin, latMax, nlat)); err != nil {
		return orb.Bound{}, err
	}
	if err := tabular.WriteVector(cfg.lonPath(), coords.Vector(lonMin, lonMax, nlon)); err != nil {
		return orb.Bound{}, err
	}

	return orb.Bound{Min: orb.Point{lonMin, latMin}, Max: orb.Point{lonMax, latMax}}, nil
}
