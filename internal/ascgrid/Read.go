package ascgrid

import (
	"os"
)

// Read ASCII grid from given path
func Read(path string) (Header, Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer file.Close()

	return ParseASCIIGrid(file)
}
