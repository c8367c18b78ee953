// Package groups provides the `statusbars groups` command for listing registered groups.
package groups

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/isometry/statusbars/internal/output"
	"github.com/isometry/statusbars/pkg/commands/shared"
	"github.com/isometry/statusbars/pkg/sbctx"
	"github.com/isometry/statusbars/pkg/schema"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Short:   "List registered settings groups",
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE:    run,
	}

	groupsFlags.Register(cmd.Flags(), false)

	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	shared.Setup(cmd)
	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	return shared.Print(cmd, sbctx.Viper(cmd.Context()), List())
}

// Group summarises one registered group.
type Group struct {
	ID       string `json:"id" yaml:"id"`
	Sections int    `json:"sections" yaml:"sections"`
	Settings int    `json:"settings" yaml:"settings"`
}

// Document lists the registered groups.
type Document []Group

// List returns every registered group ordered by id.
func List() Document {
	doc := Document{}
	for _, id := range schema.Groups() {
		s, ok := schema.Lookup(id)
		if !ok {
			continue
		}
		doc = append(doc, Group{
			ID:       id,
			Sections: len(s.ListSections()),
			Settings: len(s.ListSettings()),
		})
	}
	return doc
}

func (d Document) RenderText(p output.Palette) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	for _, g := range d {
		fmt.Fprintf(tw, "%s\t%d sections\t%d settings\n", p.Paint(p.Group, g.ID), g.Sections, g.Settings)
	}
	_ = tw.Flush()
	return sb.String()
}
