// Package resolve provides the `statusbars resolve` command for printing effective values.
package resolve

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/isometry/statusbars/internal/cliflags"
	"github.com/isometry/statusbars/internal/output"
	"github.com/isometry/statusbars/pkg/commands/shared"
	"github.com/isometry/statusbars/pkg/config"
	"github.com/isometry/statusbars/pkg/sbctx"
	"github.com/isometry/statusbars/pkg/statusbars"
)

var log *slog.Logger

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print effective values with defaults filled in",
		Long: `Print the effective value of every setting: the stored value where one is
valid, otherwise the default.

JSON and YAML output is itself a values file, keyed by stored key.

Examples:
  # Effective values of ./statusbars.yaml
  statusbars resolve

  # Only values that differ from their defaults, as a values file
  statusbars resolve --changed -o yaml

  # The statusbars group as its typed configuration
  statusbars resolve --typed -o json`,
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE:    run,
	}

	resolveFlags.Register(cmd.Flags(), false)

	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	_, log = shared.Setup(cmd)
	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	v := sbctx.Viper(cmd.Context())
	paths, name := cliflags.ConfigPaths(v)

	result, err := config.Load(cmd.Context(), paths, name, v.GetBool("strict"))
	if err != nil {
		return fmt.Errorf("failed to load values: %w", err)
	}
	for _, err := range result.ValidationErrors {
		log.Warn("value replaced by default", "error", err)
	}

	if v.GetBool("typed") {
		g, ok := result.Group(statusbars.GroupID)
		if !ok {
			return fmt.Errorf("%w %q", config.ErrUnknownGroup, statusbars.GroupID)
		}
		typed, err := statusbars.ConfigFrom(g.Map())
		if err != nil {
			return err
		}
		log.Debug("typed values", slog.Any("config", typed))
		return shared.Print(cmd, v, typedDocument{typed})
	}

	doc := Document{ConfigFile: result.ConfigFile, Groups: result.Groups(), Changed: v.GetBool("changed")}
	if err := shared.Print(cmd, v, doc); err != nil {
		return err
	}
	if len(result.ValidationErrors) > 0 {
		return fmt.Errorf("%d value(s) replaced by defaults", len(result.ValidationErrors))
	}
	return nil
}

type typedDocument struct {
	statusbars.Config
}

func (d typedDocument) RenderText(_ output.Palette) string {
	return fmt.Sprintf("%+v\n", d.Config)
}

// Document lists the resolved values of each group.
type Document struct {
	ConfigFile string
	Groups     []*config.Resolved

	// Changed limits the listing to values that differ from their defaults.
	Changed bool
}

func (d Document) entries(g *config.Resolved) []config.Entry {
	entries := g.Entries()
	if !d.Changed {
		return entries
	}
	changed := entries[:0]
	for _, entry := range entries {
		if !g.IsDefault(entry.Setting.Key) {
			changed = append(changed, entry)
		}
	}
	return changed
}

// MarshalJSON writes the document as a values file.
func (d Document) MarshalJSON() ([]byte, error) {
	groups := make(map[string]map[string]any, len(d.Groups))
	for _, g := range d.Groups {
		values := make(map[string]any)
		for _, entry := range d.entries(g) {
			values[entry.Setting.StoredKey()] = entry.Value.Any()
		}
		groups[g.GroupID()] = values
	}
	return json.Marshal(groups)
}

// MarshalYAML writes the document as a values file in display order.
func (d Document) MarshalYAML() (any, error) {
	groups := make(yaml.MapSlice, 0, len(d.Groups))
	for _, g := range d.Groups {
		var values yaml.MapSlice
		for _, entry := range d.entries(g) {
			values = append(values, yaml.MapItem{Key: entry.Setting.StoredKey(), Value: entry.Value.Any()})
		}
		groups = append(groups, yaml.MapItem{Key: g.GroupID(), Value: values})
	}
	return groups, nil
}

func (d Document) RenderText(p output.Palette) string {
	var sb strings.Builder

	for i, g := range d.Groups {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Paint(p.Group, g.GroupID()))
		if d.ConfigFile != "" {
			sb.WriteString(p.Paint(p.Muted, " ("+d.ConfigFile+")"))
		}
		sb.WriteString("\n")

		entries := d.entries(g)
		keyWidth, valueWidth := 0, 0
		values := make([]string, len(entries))
		for i, entry := range entries {
			values[i] = shared.FormatValue(entry.Setting, entry.Value)
			keyWidth = max(keyWidth, utf8.RuneCountInString(entry.Setting.Key))
			valueWidth = max(valueWidth, utf8.RuneCountInString(values[i]))
		}

		// columns are aligned on the plain text, then painted
		for i, entry := range entries {
			sb.WriteString("  ")
			sb.WriteString(p.PaintPadded(p.Key, entry.Setting.Key, keyWidth))
			sb.WriteString("  ")
			if g.IsDefault(entry.Setting.Key) {
				sb.WriteString(p.Paint(p.Muted, values[i]))
			} else {
				sb.WriteString(p.PaintPadded(p.Override, values[i], valueWidth))
				sb.WriteString("  *")
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
