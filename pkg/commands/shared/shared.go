// Package shared provides common utilities for the settings commands.
package shared

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	slogctx "github.com/veqryn/slog-context"

	"github.com/isometry/statusbars/internal/cliflags"
	"github.com/isometry/statusbars/internal/output"
	"github.com/isometry/statusbars/pkg/config"
	"github.com/isometry/statusbars/pkg/sbctx"
	"github.com/isometry/statusbars/pkg/schema"
)

// Setup binds the command's flags into the context viper and stores the
// default logger in the command context.
func Setup(cmd *cobra.Command) (*viper.Viper, *slog.Logger) {
	v := sbctx.Viper(cmd.Context())
	cliflags.BindFlags(cmd, v)

	log := slog.Default().With(slog.String("command", cmd.Name()))
	ctx := slogctx.NewCtx(cmd.Context(), log)
	if group := v.GetString("group"); group != "" {
		ctx = sbctx.ContextWithGroup(ctx, group)
	}
	cmd.SetContext(ctx)

	return v, log
}

// LookupGroup returns the schema of the group selected in the command context.
func LookupGroup(cmd *cobra.Command) (*schema.Schema, error) {
	group := sbctx.GroupFromContext(cmd.Context())
	if group == "" {
		group = cliflags.DefaultGroup
	}

	s, ok := schema.Lookup(group)
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %s)", config.ErrUnknownGroup, group, strings.Join(schema.Groups(), ", "))
	}
	return s, nil
}

// Print writes doc to the command's output in the selected format.
func Print(cmd *cobra.Command, v *viper.Viper, doc any) error {
	return output.Fprint(cmd.OutOrStdout(), doc, output.ConfigFromViper(v))
}

// Constraint describes a setting's range, unit and options in one line.
func Constraint(setting schema.Setting) string {
	var parts []string
	if setting.Range != nil {
		parts = append(parts, setting.Range.String())
	}
	if setting.Unit != schema.UnitNone {
		parts = append(parts, setting.Unit.String())
	}
	if len(setting.Options) > 0 {
		parts = append(parts, strings.Join(setting.OptionNames(), "|"))
	}
	if setting.StoredAs != "" {
		parts = append(parts, "stored as "+setting.StoredAs)
	}
	return strings.Join(parts, " ")
}

// FormatValue renders v with the setting's unit suffix.
func FormatValue(setting schema.Setting, v schema.Value) string {
	if v.Kind() == schema.KindInt {
		return v.String() + setting.Unit.Suffix()
	}
	return v.String()
}

// ResolveSetting finds a setting by declared or stored key, ignoring case.
func ResolveSetting(s *schema.Schema, name string) (schema.Setting, error) {
	setting, ok := s.Lookup(name)
	if !ok {
		return schema.Setting{}, &schema.UnknownKeyError{Group: s.GroupID(), Key: name}
	}
	return setting, nil
}
