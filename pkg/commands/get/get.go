// Package get provides the `statusbars get` command for reading setting defaults.
package get

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/isometry/statusbars/internal/output"
	"github.com/isometry/statusbars/pkg/commands/shared"
	"github.com/isometry/statusbars/pkg/sbctx"
	"github.com/isometry/statusbars/pkg/schema"
)

var log *slog.Logger

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the default value of a setting",
		Long: `Print the default value of a setting.

The key may be the declared key or the key the value is stored under.

Examples:
  statusbars get barWidth
  statusbars get counterYPos -o json`,
		Args:    cobra.ExactArgs(1),
		PreRunE: setup,
		RunE:    run,
	}

	getFlags.Register(cmd.Flags(), false)

	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	_, log = shared.Setup(cmd)
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	v := sbctx.Viper(cmd.Context())

	s, err := shared.LookupGroup(cmd)
	if err != nil {
		return err
	}

	setting, err := shared.ResolveSetting(s, args[0])
	if err != nil {
		return err
	}
	log.Debug("default", slog.Any("setting", setting))

	return shared.Print(cmd, v, Document{Group: s.GroupID(), Key: setting.Key, Default: setting.Default})
}

// Document is the default of one setting.
type Document struct {
	Group   string       `json:"group" yaml:"group"`
	Key     string       `json:"key" yaml:"key"`
	Default schema.Value `json:"default" yaml:"default"`
}

// RenderText prints the bare value, in the form `check` and values files accept.
func (d Document) RenderText(p output.Palette) string {
	return p.Paint(p.Value, d.Default.String())
}
