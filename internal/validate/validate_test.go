package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruppe-adler/asc2json/internal/failure"
)

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "rain.asc")
	require.NoError(t, os.WriteFile(input, []byte("ncols 1\n"), 0644))
	missing := filepath.Join(dir, "missing.asc")

	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"input exists", InputFile(input), ""},
		{"input missing", InputFile(missing), "Input file not found."},
		{"input is a directory", InputFile(dir), "Input file not found."},
		{"no metadata", MetadataFile(""), ""},
		{"metadata exists", MetadataFile(input), ""},
		{"metadata missing", MetadataFile(missing), "Provided metadata filename does not exist."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.message == "" {
				assert.NoError(t, tt.err)
				return
			}
			require.EqualError(t, tt.err, tt.message)
			kind, ok := failure.KindOf(tt.err)
			assert.True(t, ok)
			assert.Equal(t, failure.Validation, kind)
		})
	}
}
