package root

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/isometry/statusbars/internal/cliflags"
	"github.com/isometry/statusbars/pkg/commands/check"
	"github.com/isometry/statusbars/pkg/commands/get"
	"github.com/isometry/statusbars/pkg/commands/groups"
	"github.com/isometry/statusbars/pkg/commands/jsonschema"
	"github.com/isometry/statusbars/pkg/commands/resolve"
	"github.com/isometry/statusbars/pkg/commands/schema"
	"github.com/isometry/statusbars/pkg/commands/validate"
	"github.com/isometry/statusbars/pkg/sbctx"
	"github.com/isometry/statusbars/pkg/utils"
)

// EnvPrefix prefixes every flag read from the environment, e.g. SB_CONFIG_NAME.
const EnvPrefix = "SB"

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "statusbars",
		Short:         "Status Bars - settings schema tool",
		Long:          `Status Bars inspects the settings schema of the status bars overlay and validates stored values against it.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			v := newViper()
			cliflags.BindFlags(cmd, v)
			setupLogging(v)
			cmd.SetContext(sbctx.ContextWithViper(cmd.Context(), v))
		},
	}

	// Persistent flags available to all subcommands
	pflags := cmd.PersistentFlags()
	pflags.String("log-format", "auto", "log format (auto|json|text)")
	pflags.Bool("debug", false, "debug mode")
	pflags.CountP("log-level", "v", "log level (-v=warn, -vv=info, -vvv=debug)")

	// Add subcommands
	cmd.AddCommand(schema.New())
	cmd.AddCommand(get.New())
	cmd.AddCommand(check.New())
	cmd.AddCommand(validate.New())
	cmd.AddCommand(resolve.New())
	cmd.AddCommand(jsonschema.New())
	cmd.AddCommand(groups.New())

	return cmd
}

// newViper returns the command's viper, reading flags from SB_ environment variables.
func newViper() *viper.Viper {
	v := sbctx.NewViper()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return v
}

func setupLogging(v *viper.Viper) {
	verbosity := v.GetInt("log-level")
	debugMode := v.GetBool("debug")
	logFormat := v.GetString("log-format")

	level := new(slog.LevelVar)
	level.Set(slog.LevelError - slog.Level(verbosity*4))

	handlerOpts := &slog.HandlerOptions{
		AddSource: debugMode,
		Level:     level,
	}

	// Resolve "auto" format based on TTY detection
	useJSON := logFormat == "json" || (logFormat == "auto" && !utils.IsTTY())

	var handler slog.Handler
	if useJSON {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))
}
