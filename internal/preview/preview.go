// Package preview renders a converted grid as a grayscale PNG.
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/nfnt/resize"
	"github.com/spf13/cast"

	"github.com/gruppe-adler/asc2json/internal/ascgrid"
)

// Render draws grid with the smallest value black and the largest white.
// NODATA, non-numeric and infinite cells are transparent.
func Render(header ascgrid.Header, grid ascgrid.Grid) (image.Image, error) {
	cols, rows := grid.Dims()
	if cols == 0 || rows == 0 {
		return nil, errors.New("preview: grid has no cells")
	}

	values := make([][]float64, rows)
	min, max := math.Inf(1), math.Inf(-1)
	for y, row := range grid {
		values[y] = make([]float64, len(row))
		for x, cell := range row {
			v, err := cast.ToFloat64E(cell)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v == header.NoDataValue {
				v = math.NaN()
			} else {
				min = math.Min(min, v)
				max = math.Max(max, v)
			}
			values[y][x] = v
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(cols), int(rows)))
	for y, row := range values {
		for x, v := range row {
			if math.IsNaN(v) {
				continue
			}
			g := shade(v, min, max)
			img.SetNRGBA(x, y, color.NRGBA{R: g, G: g, B: g, A: 255})
		}
	}

	return img, nil
}

func shade(v, min, max float64) uint8 {
	if max <= min {
		return 0
	}
	return uint8(math.Round((v - min) / (max - min) * 255))
}

// Write renders grid scaled to width pixels and saves it as PNG.
func Write(path string, width uint, header ascgrid.Header, grid ascgrid.Grid) error {
	img, err := Render(header, grid)
	if err != nil {
		return err
	}

	if uint(img.Bounds().Dx()) != width {
		img = resize.Resize(width, 0, img, resize.NearestNeighbor)
	}

	return saveImage(path, img)
}

func saveImage(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
