// Package schema provides the `statusbars schema` command for listing declared settings.
package schema

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/isometry/statusbars/internal/output"
	"github.com/isometry/statusbars/pkg/commands/shared"
	"github.com/isometry/statusbars/pkg/sbctx"
	sbschema "github.com/isometry/statusbars/pkg/schema"
)

var log *slog.Logger

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "List the sections and settings of a group",
		Long: `List every section and setting a group declares, in display order.

Examples:
  # List the statusbars settings
  statusbars schema

  # Only the settings of one section
  statusbars schema --section sizingSection

  # Machine-readable
  statusbars schema -o yaml`,
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE:    run,
	}

	schemaFlags.Register(cmd.Flags(), false)

	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	_, log = shared.Setup(cmd)
	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	v := sbctx.Viper(cmd.Context())

	s, err := shared.LookupGroup(cmd)
	if err != nil {
		return err
	}

	doc, err := NewDocument(s, v.GetString("section"))
	if err != nil {
		return err
	}
	log.Debug("listing schema", slog.Any("schema", s), slog.Int("settings", len(doc.Settings)))

	return shared.Print(cmd, v, doc)
}

// Document is the listing of one group's schema.
type Document struct {
	Group    string             `json:"group" yaml:"group"`
	Sections []sbschema.Section `json:"sections" yaml:"sections"`
	Settings []sbschema.Setting `json:"settings" yaml:"settings"`
}

// NewDocument lists s, limited to one section when section is non-empty.
func NewDocument(s *sbschema.Schema, section string) (Document, error) {
	doc := Document{Group: s.GroupID()}

	if section == "" {
		doc.Sections = s.ListSections()
		doc.Settings = s.ListSettings()
		return doc, nil
	}

	sec, ok := s.Section(section)
	if !ok {
		return Document{}, fmt.Errorf("%w %q in group %s", sbschema.ErrUnknownSection, section, s.GroupID())
	}
	settings, err := s.SectionSettings(section)
	if err != nil {
		return Document{}, err
	}
	doc.Sections = []sbschema.Section{sec}
	doc.Settings = settings
	return doc, nil
}

func (d Document) RenderText(p output.Palette) string {
	sections := make(map[string]sbschema.Section, len(d.Sections))
	for _, section := range d.Sections {
		sections[section.ID] = section
	}

	var sb strings.Builder
	sb.WriteString(p.Paint(p.Group, d.Group))
	sb.WriteString("\n")

	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	current := ""
	for _, setting := range d.Settings {
		indent := "  "
		if setting.Section != "" {
			indent = "    "
			if setting.Section != current {
				current = setting.Section
				_ = tw.Flush()
				sb.WriteString("  ")
				sb.WriteString(p.Paint(p.Section, sectionTitle(sections[current])))
				sb.WriteString("\n")
			}
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\n",
			indent,
			p.Paint(p.Key, setting.Key),
			p.Paint(p.Kind, setting.Kind.String()),
			p.Paint(p.Value, shared.FormatValue(setting, setting.Default)),
			p.Paint(p.Muted, shared.Constraint(setting)),
		)
	}
	_ = tw.Flush()

	return sb.String()
}

func sectionTitle(section sbschema.Section) string {
	if section.Collapsed {
		return section.Label + " (collapsed)"
	}
	return section.Label
}
