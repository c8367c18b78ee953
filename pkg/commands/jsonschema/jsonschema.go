// Package jsonschema provides the `statusbars jsonschema` command for exporting JSON Schema.
package jsonschema

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/isometry/statusbars/pkg/commands/shared"
	"github.com/isometry/statusbars/pkg/sbctx"
	"github.com/isometry/statusbars/pkg/schema"
)

var log *slog.Logger

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsonschema",
		Short: "Print the JSON Schema of stored values",
		Long: `Print a JSON Schema document describing a group's stored values, for
editors and CI tooling.

Examples:
  # Schema of the statusbars group
  statusbars jsonschema > statusbars.schema.json

  # Schema of a whole values file, every group included
  statusbars jsonschema --all`,
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE:    run,
	}

	jsonschemaFlags.Register(cmd.Flags(), false)

	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	_, log = shared.Setup(cmd)
	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	v := sbctx.Viper(cmd.Context())

	if v.GetBool("all") {
		log.Debug("exporting registry", slog.Any("groups", schema.Groups()))
		return shared.Print(cmd, v, schema.RegistryJSONSchema())
	}

	s, err := shared.LookupGroup(cmd)
	if err != nil {
		return err
	}
	log.Debug("exporting group", slog.Any("schema", s))

	return shared.Print(cmd, v, s.JSONSchema())
}
