package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruppe-adler/asc2json/internal/metadata"
)

const grid2x2 = `ncols 2
nrows 2
xllcorner 0
yllcorner 0
cellsize 1
NODATA_value -9999
1 2
3 4
`

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func execute(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = Execute("1.2.3", args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "rain.asc", grid2x2)

	code, _, stderr := execute(input, "-u", "1600000000")
	require.Equal(t, ExitOK, code, stderr)

	assert.Equal(t, "1,2\n3,4\n", readOutput(t, input+".csv"))
	assert.Equal(t, "0.0,1.0\n", readOutput(t, input+".lat.csv"))
	assert.Equal(t, "0.0,1.0\n", readOutput(t, input+".lon.csv"))

	doc, err := metadata.Read(input + ".json")
	require.NoError(t, err)

	data, err := doc.Section(metadata.Data)
	require.NoError(t, err)
	assert.Equal(t, []string{"start_time", "valid_time", "data", "lat", "lon"}, data.Keys())
	path, _ := data.Get("data")
	assert.Equal(t, input+".csv", path)

	attrs, err := doc.Section(metadata.GlobalAttributes)
	require.NoError(t, err)
	source, _ := attrs.Get("__source")
	assert.Equal(t, "rain.asc", source)
}

func TestExecuteAxisLengths(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "wide.asc", `ncols 3
nrows 2
xllcorner 10
yllcorner 20
cellsize 2
NODATA_value -9999
1 2 3
4 5 6
`)

	code, _, stderr := execute(input, "-o", filepath.Join(dir, "out"))
	require.Equal(t, ExitOK, code, stderr)

	assert.Equal(t, "20.0,22.0\n", readOutput(t, filepath.Join(dir, "out.lat.csv")))
	assert.Equal(t, "10.0,12.0,14.0\n", readOutput(t, filepath.Join(dir, "out.lon.csv")))
	assert.Equal(t, "1,2,3\n4,5,6\n", readOutput(t, filepath.Join(dir, "out.csv")))
}

func TestExecuteSeed(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "rain.asc", grid2x2)
	writeInput(t, dir, "rain.asc.json", `{
    "global_attributes": {"title": "Rain"},
    "variables": {"rainfall": {"long_name": "Rainfall", "units": "mm"}}
}`)
	out := filepath.Join(dir, "out")

	code, _, stderr := execute(input, "-o", out, "-n", "precip", "--data_units", "in", "-t", "2020-01-02T03:04:05Z")
	require.Equal(t, ExitOK, code, stderr)

	doc, err := metadata.Read(out + ".json")
	require.NoError(t, err)

	variables, err := doc.Section(metadata.Variables)
	require.NoError(t, err)
	assert.Equal(t, []string{"rainfall", "lat", "lon", "start_time", "valid_time"}, variables.Keys())
	rainfall, ok := variables.Object("rainfall")
	require.True(t, ok)
	units, _ := rainfall.Get("units")
	assert.Equal(t, "mm", units)

	data, err := doc.Section(metadata.Data)
	require.NoError(t, err)
	path, ok := data.Get("precip")
	require.True(t, ok)
	assert.Equal(t, out+".csv", path)

	attrs, err := doc.Section(metadata.GlobalAttributes)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "data_epsg", "data_projection", "__source"}, attrs.Keys())
	assert.Contains(t, readOutput(t, out+".json"), `"start_time": 1577934245`)
}

func TestExecuteExtras(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "rain.asc", grid2x2)

	code, _, stderr := execute(input, "--geojson", "--preview", "4")
	require.Equal(t, ExitOK, code, stderr)

	assert.FileExists(t, input+".geojson")
	assert.FileExists(t, input+".png")
	assert.Contains(t, readOutput(t, input+".geojson"), `"FeatureCollection"`)
}

func TestExecuteFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeInput(t, dir, "good.asc", grid2x2)
	badName := writeInput(t, dir, "name.asc", strings.Replace(grid2x2, "nrows", "NROWS", 1))
	badValue := writeInput(t, dir, "value.asc", strings.Replace(grid2x2, "ncols 2", "ncols two", 1))
	short := writeInput(t, dir, "short.asc", strings.TrimSuffix(grid2x2, "3 4\n"))
	badSeed := writeInput(t, dir, "seed.json", `{"variables": `)
	arraySeed := writeInput(t, dir, "array.json", `[]`)
	unknownEPSG := writeInput(t, dir, "epsg.json", `{"global_attributes": {"data_epsg": "99999"}}`)

	tests := []struct {
		name    string
		args    []string
		code    int
		message string
	}{
		{"missing input", []string{filepath.Join(dir, "missing.asc")}, ExitRecovered, "Assertion failed: Input file not found."},
		{"missing metadata", []string{good, "-m", filepath.Join(dir, "missing.json")}, ExitRecovered, "Assertion failed: Provided metadata filename does not exist."},
		{"malformed metadata", []string{good, "-m", badSeed}, ExitUnhandled, "Error: "},
		{"wrong header name", []string{badName}, ExitRecovered, "Assertion failed: Expected nrows, but got NROWS"},
		{"header value", []string{badValue}, ExitRecovered, "Unexpected error: "},
		{"too few rows", []string{short}, ExitRecovered, "Assertion failed: Incorrect number of rows 1, expected 2"},
		{"seed not an object", []string{good, "-m", arraySeed}, ExitRecovered, "Unexpected error: "},
		{"unknown epsg", []string{good, "-m", unknownEPSG}, ExitUnhandled, "Error: "},
		{"malformed timestamp", []string{good, "-u", "soon"}, ExitRecovered, "Unexpected error: "},
		{"exclusive timestamps", []string{good, "-u", "1", "-t", "2020-01-01"}, ExitUnhandled, "Error: "},
		{"no input", []string{}, ExitUnhandled, "Error: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := execute(tt.args...)
			assert.Equal(t, tt.code, code, stderr)
			assert.Contains(t, stderr, tt.message)
		})
	}
}

func TestExecuteVersion(t *testing.T) {
	code, stdout, _ := execute("--version")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "asc2json 1.2.3\n", stdout)
}
