// Package tabular writes grid data and coordinate vectors as comma-separated rows.
package tabular

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/gruppe-adler/asc2json/internal/utils"
)

// EncodeRows writes each row as one comma-separated line.
func EncodeRows(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

// EncodeVector writes values as a single comma-separated line.
func EncodeVector(w io.Writer, values []float64) error {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = utils.FormatFloat(v)
	}
	return EncodeRows(w, [][]string{row})
}

// WriteRows writes rows to given path
func WriteRows(path string, rows [][]string) error {
	return writeFile(path, func(w io.Writer) error { return EncodeRows(w, rows) })
}

// WriteVector writes values to given path
func WriteVector(path string, values []float64) error {
	return writeFile(path, func(w io.Writer) error { return EncodeVector(w, values) })
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
