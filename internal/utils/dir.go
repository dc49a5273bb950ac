package utils

import (
	"os"
)

// IsFile tests whether given path exists and is a regular file
func IsFile(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}
