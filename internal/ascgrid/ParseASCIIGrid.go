package ascgrid

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gruppe-adler/asc2json/internal/failure"
)

// maxLineSize bounds a single line of the body; wide grids keep a row on one line.
const maxLineSize = 64 * 1024 * 1024

const (
	// maxRowHint caps the rows allocated up front.
	maxRowHint = 4096
	// maxEmptyRows bounds grids with zero columns.
	maxEmptyRows = 1 << 16
)

// headerNames lists the header attributes in the order they have to appear.
var headerNames = [...]string{"ncols", "nrows", "xllcorner", "yllcorner", "cellsize", "NODATA_value"}

// ParseASCIIGrid reads the header and the body of an ASCII grid.
//
// Body values are not converted. A row may span several lines, but a line must
// not carry values beyond the end of its row.
func ParseASCIIGrid(reader io.Reader) (Header, Grid, error) {
	scanner := newScanner(reader)

	header, err := parseHeader(scanner)
	if err != nil {
		return header, nil, err
	}

	grid, err := parseBody(scanner, header.Ncols, header.Nrows)
	return header, grid, err
}

// ParseHeader reads only the header of an ASCII grid. The reader may be
// consumed beyond the header.
func ParseHeader(reader io.Reader) (Header, error) {
	return parseHeader(newScanner(reader))
}

func newScanner(reader io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

func parseHeader(scanner *bufio.Scanner) (Header, error) {
	header := Header{}

	for _, name := range headerNames {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return header, err
			}
			return header, failure.Validationf("Expected %s, but got end of file", name)
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			return header, failure.Validationf("Header line for %s must have exactly two fields, got %d", name, len(fields))
		}
		if fields[0] != name {
			return header, failure.Validationf("Expected %s, but got %s", name, fields[0])
		}

		if err := parseHeaderValue(&header, name, fields[1]); err != nil {
			return header, err
		}
	}

	return header, nil
}

func parseHeaderValue(header *Header, name, value string) error {
	switch name {
	case "ncols", "nrows":
		i, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return failure.Convert(err, "invalid integer %q for %s", value, name)
		}
		if name == "ncols" {
			header.Ncols = uint(i)
		} else {
			header.Nrows = uint(i)
		}
		return nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return failure.Convert(err, "invalid number %q for %s", value, name)
	}

	switch name {
	case "xllcorner":
		header.Xllcorner = f
	case "yllcorner":
		header.Yllcorner = f
	case "cellsize":
		header.CellSize = f
	case "NODATA_value":
		header.NoDataValue = f
	}

	return nil
}

func parseBody(scanner *bufio.Scanner, ncols, nrows uint) (Grid, error) {
	// rows without columns don't consume any input, so nrows can't be
	// checked against the body
	if ncols == 0 {
		if nrows > maxEmptyRows {
			return nil, failure.Validationf("Too many rows %d without columns, expected at most %d", nrows, maxEmptyRows)
		}
		grid := make(Grid, nrows)
		for i := range grid {
			grid[i] = []string{}
		}
		return grid, nil
	}

	// the header is not trusted for the allocation
	grid := make(Grid, 0, min(nrows, maxRowHint))

	var row []string
	for uint(len(grid)) < nrows && scanner.Scan() {
		row = append(row, strings.Fields(scanner.Text())...)

		if uint(len(row)) > ncols {
			return grid, failure.Validationf("Too many column values %d, expected %d", len(row), ncols)
		}
		if uint(len(row)) == ncols {
			grid = append(grid, row)
			row = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return grid, err
	}

	if len(row) > 0 {
		return grid, failure.Validationf("Too few column values %d, expected %d", len(row), ncols)
	}
	if uint(len(grid)) != nrows {
		return grid, failure.Validationf("Incorrect number of rows %d, expected %d", len(grid), nrows)
	}

	return grid, nil
}
