package convert

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds everything one conversion run needs.
type Config struct {
	Input    string
	Output   string
	UnixTime string
	ISOTime  string
	Metadata string
	LogLevel int

	DataName  string
	DataLong  string
	DataUnits string

	GeoJSON bool
	Preview int
}

// EnvPrefix prefixes the environment variables that set options.
const EnvPrefix = "ASC2JSON"

var options = []struct {
	name, usage, shorthand string
	defaultVal             interface{}
}{
	{
		name:       "config",
		usage:      "TOML configuration file",
		defaultVal: "",
	},
	{
		name:       "out_file",
		usage:      "Output file prefix (default: input file path)",
		shorthand:  "o",
		defaultVal: "",
	},
	{
		name:       "unix_time",
		usage:      "UNIX time to use for the timestamp (default: now)",
		shorthand:  "u",
		defaultVal: "",
	},
	{
		name:       "iso_time",
		usage:      "ISO time to use for the timestamp (default: now)",
		shorthand:  "t",
		defaultVal: "",
	},
	{
		name:       "metadata",
		usage:      "Metadata JSON to merge (default: <input>.json if it exists)",
		shorthand:  "m",
		defaultVal: "",
	},
	{
		name:       "log_level",
		usage:      "Log level [1-5]: 1 error, 2 warning, 3 info, 4 debug, 5 trace",
		shorthand:  "l",
		defaultVal: 1,
	},
	{
		name:       "data_name",
		usage:      "Name of the data variable",
		shorthand:  "n",
		defaultVal: "data",
	},
	{
		name:       "data_long",
		usage:      "Long name of the data variable",
		defaultVal: "data",
	},
	{
		name:       "data_units",
		usage:      "Units of the data variable",
		defaultVal: "units",
	},
	{
		name:       "geojson",
		usage:      "Also write the extent of the grid as <output>.geojson",
		defaultVal: false,
	},
	{
		name:       "preview",
		usage:      "Also write a PNG preview of this width as <output>.png (0 disables)",
		defaultVal: 0,
	},
}

// BindFlags adds the options to set and binds them to v. Environment
// variables named EnvPrefix_<OPTION> override the defaults.
func BindFlags(set *pflag.FlagSet, v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for _, option := range options {
		switch def := option.defaultVal.(type) {
		case string:
			set.StringP(option.name, option.shorthand, def, option.usage)
		case bool:
			set.BoolP(option.name, option.shorthand, def, option.usage)
		case int:
			set.IntP(option.name, option.shorthand, def, option.usage)
		default:
			panic("invalid argument type")
		}
		v.BindPFlag(option.name, set.Lookup(option.name))
	}
}

// LoadFile merges the TOML file named by the config option into v.
// Flags and environment variables still take precedence over it.
func LoadFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}

	settings := make(map[string]interface{})
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return fmt.Errorf("problem reading configuration file: %w", err)
	}
	return v.MergeConfigMap(settings)
}

// NewConfig builds the configuration for converting input from v.
func NewConfig(v *viper.Viper, input string) (Config, error) {
	cfg := Config{
		Input:     input,
		Output:    v.GetString("out_file"),
		UnixTime:  v.GetString("unix_time"),
		ISOTime:   v.GetString("iso_time"),
		Metadata:  v.GetString("metadata"),
		DataName:  v.GetString("data_name"),
		DataLong:  v.GetString("data_long"),
		DataUnits: v.GetString("data_units"),
	}

	var err error
	if cfg.LogLevel, err = cast.ToIntE(v.Get("log_level")); err != nil {
		return cfg, fmt.Errorf("invalid log_level: %w", err)
	}
	if cfg.GeoJSON, err = cast.ToBoolE(v.Get("geojson")); err != nil {
		return cfg, fmt.Errorf("invalid geojson: %w", err)
	}
	if cfg.Preview, err = cast.ToIntE(v.Get("preview")); err != nil {
		return cfg, fmt.Errorf("invalid preview: %w", err)
	}

	if cfg.Output == "" {
		cfg.Output = cfg.Input
	}

	return cfg, cfg.check()
}

func (cfg Config) check() error {
	if cfg.UnixTime != "" && cfg.ISOTime != "" {
		return errors.New("unix_time and iso_time are mutually exclusive")
	}
	if cfg.LogLevel < 1 || cfg.LogLevel > 5 {
		return fmt.Errorf("log_level must be within [1-5], got %d", cfg.LogLevel)
	}
	if cfg.Preview < 0 {
		return fmt.Errorf("preview width must not be negative, got %d", cfg.Preview)
	}
	return nil
}

// Paths of the files written for the output prefix.
func (cfg Config) dataPath() string    { return cfg.Output + ".csv" }
func (cfg Config) latPath() string     { return cfg.Output + ".lat.csv" }
func (cfg Config) lonPath() string     { return cfg.Output + ".lon.csv" }
func (cfg Config) jsonPath() string    { return cfg.Output + ".json" }
func (cfg Config) geojsonPath() string { return cfg.Output + ".geojson" }
func (cfg Config) previewPath() string { return cfg.Output + ".png" }
