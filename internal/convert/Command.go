package convert

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gruppe-adler/asc2json/internal/failure"
)

// Exit statuses of Execute.
const (
	ExitOK        = 0
	ExitRecovered = 1
	ExitUnhandled = 2
)

// NewCommand returns the asc2json command. Its configuration is read from
// flags, ASC2JSON_* environment variables and an optional TOML file, in that
// order of precedence.
func NewCommand(version string, logger *logrus.Logger) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "asc2json <input>",
		Short: "Reprocess .asc (ASCII grid) and output as JSON+CSV.",
		Long: `asc2json converts an ASCII grid into a JSON metadata descriptor
(<output>.json), the grid values as CSV (<output>.csv) and the latitude and
longitude of the grid axes (<output>.lat.csv, <output>.lon.csv).

Metadata found in <input>.json, or given with --metadata, is merged into the
descriptor. If its global_attributes.data_epsg is set, the grid is read as
being in that reference system and its extent reprojected to WGS 84.`,
		Version:           version,
		Args:              cobra.ExactArgs(1),
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return LoadFile(v) },
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := NewConfig(v, args[0])
			if err != nil {
				return err
			}
			SetLogLevel(logger, cfg.LogLevel)
			return Run(cfg, logger)
		},
	}

	BindFlags(cmd.Flags(), v)
	cmd.MarkFlagsMutuallyExclusive("unix_time", "iso_time")
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	return cmd
}

// Execute runs the command with args and returns the exit status.
// Recovered failures are logged and give ExitRecovered; any other error is
// printed to stderr and gives ExitUnhandled.
func Execute(version string, args []string, stdout, stderr io.Writer) int {
	logger := NewLogger(stderr)

	cmd := NewCommand(version, logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return report(logger, stderr, cmd.Execute())
}

func report(logger logrus.FieldLogger, stderr io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}

	var fe *failure.Error
	if !errors.As(err, &fe) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUnhandled
	}

	switch fe.Kind {
	case failure.Validation:
		logger.Errorf("Assertion failed: %s", fe.Error())
	default:
		logger.Errorf("Unexpected error: %s", fe.Error())
	}
	return ExitRecovered
}
