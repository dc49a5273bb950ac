package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	set := pflag.NewFlagSet("asc2json", pflag.ContinueOnError)
	v := viper.New()
	BindFlags(set, v)
	require.NoError(t, set.Parse(args))
	require.NoError(t, LoadFile(v))
	return NewConfig(v, "rain.asc")
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(t)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Input:     "rain.asc",
		Output:    "rain.asc",
		LogLevel:  1,
		DataName:  "data",
		DataLong:  "data",
		DataUnits: "units",
	}, cfg)
	assert.Equal(t, "rain.asc.csv", cfg.dataPath())
	assert.Equal(t, "rain.asc.lat.csv", cfg.latPath())
	assert.Equal(t, "rain.asc.lon.csv", cfg.lonPath())
	assert.Equal(t, "rain.asc.json", cfg.jsonPath())
}

func TestNewConfigFlags(t *testing.T) {
	cfg, err := loadConfig(t, "-o", "out/rain", "-u", "1600000000", "-m", "seed.json",
		"-l", "3", "-n", "rainfall", "--data_long", "Rainfall", "--data_units", "mm",
		"--geojson", "--preview", "64")
	require.NoError(t, err)

	assert.Equal(t, Config{
		Input:     "rain.asc",
		Output:    "out/rain",
		UnixTime:  "1600000000",
		Metadata:  "seed.json",
		LogLevel:  3,
		DataName:  "rainfall",
		DataLong:  "Rainfall",
		DataUnits: "mm",
		GeoJSON:   true,
		Preview:   64,
	}, cfg)
}

func TestNewConfigEnvironment(t *testing.T) {
	t.Setenv("ASC2JSON_DATA_NAME", "rainfall")
	t.Setenv("ASC2JSON_LOG_LEVEL", "4")

	cfg, err := loadConfig(t)
	require.NoError(t, err)
	assert.Equal(t, "rainfall", cfg.DataName)
	assert.Equal(t, 4, cfg.LogLevel)

	cfg, err = loadConfig(t, "-n", "flag")
	require.NoError(t, err)
	assert.Equal(t, "flag", cfg.DataName)
}

func TestNewConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asc2json.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_long = "Rainfall"
data_units = "mm"
preview = 16
geojson = true
`), 0644))

	cfg, err := loadConfig(t, "--config", path, "--data_units", "in")
	require.NoError(t, err)
	assert.Equal(t, "Rainfall", cfg.DataLong)
	assert.Equal(t, "in", cfg.DataUnits)
	assert.Equal(t, 16, cfg.Preview)
	assert.True(t, cfg.GeoJSON)
}

func TestLoadFileMissing(t *testing.T) {
	set := pflag.NewFlagSet("asc2json", pflag.ContinueOnError)
	v := viper.New()
	BindFlags(set, v)
	require.NoError(t, set.Parse([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}))
	assert.Error(t, LoadFile(v))
}

func TestNewConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"both timestamps", []string{"-u", "1", "-t", "2020-01-01"}},
		{"log level too low", []string{"-l", "0"}},
		{"log level too high", []string{"-l", "6"}},
		{"negative preview", []string{"--preview", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestNewConfigInvalidEnvironment(t *testing.T) {
	t.Setenv("ASC2JSON_LOG_LEVEL", "loud")
	_, err := loadConfig(t)
	assert.Error(t, err)
}
