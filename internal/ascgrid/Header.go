package ascgrid

import "github.com/paulmach/orb"

// Header represents the six-line header of an ASCII grid.
type Header struct {
	Ncols, Nrows         uint
	Xllcorner, Yllcorner float64
	CellSize             float64
	NoDataValue          float64
}

// Dims returns the dimensions of the grid.
func (header Header) Dims() (c, r uint) {
	return header.Ncols, header.Nrows
}

// LowerLeft returns the lower-left corner of the grid.
func (header Header) LowerLeft() orb.Point {
	return orb.Point{header.Xllcorner, header.Yllcorner}
}

// UpperRight returns the upper-right corner of the grid.
func (header Header) UpperRight() orb.Point {
	return orb.Point{
		header.Xllcorner + float64(header.Ncols)*header.CellSize,
		header.Yllcorner + float64(header.Nrows)*header.CellSize,
	}
}

// Bound returns the extent of the grid in its native coordinates.
// Min is the lower-left and Max the upper-right corner.
func (header Header) Bound() orb.Bound {
	return orb.Bound{Min: header.LowerLeft(), Max: header.UpperRight()}
}

// Grid holds the raw body tokens of an ASCII grid, row-major.
type Grid [][]string

// Dims returns the number of columns of the first row and the number of rows.
func (grid Grid) Dims() (c, r uint) {
	if len(grid) == 0 {
		return 0, 0
	}
	return uint(len(grid[0])), uint(len(grid))
}
