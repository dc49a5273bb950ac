package validate

import (
	"github.com/gruppe-adler/asc2json/internal/failure"
	"github.com/gruppe-adler/asc2json/internal/utils"
)

// InputFile validates that the grid to convert exists
func InputFile(inputPath string) error {
	if !utils.IsFile(inputPath) {
		return failure.Validationf("Input file not found.")
	}
	return nil
}

// MetadataFile validates an explicitly given metadata seed. An empty path
// means no seed was given.
func MetadataFile(metadataPath string) error {
	if metadataPath != "" && !utils.IsFile(metadataPath) {
		return failure.Validationf("Provided metadata filename does not exist.")
	}
	return nil
}
