// Package validate provides the `statusbars validate` command for checking values files.
package validate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/isometry/statusbars/internal/cliflags"
	"github.com/isometry/statusbars/internal/output"
	"github.com/isometry/statusbars/pkg/commands/shared"
	"github.com/isometry/statusbars/pkg/config"
	"github.com/isometry/statusbars/pkg/sbctx"
)

var log *slog.Logger

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a values file against the registered schemas",
		Long: `Validate every stored value against its setting's type, range and options.

Unknown groups and keys are reported as errors. Settings without a stored
value are listed with their defaults.

Examples:
  # Validate ./statusbars.{yaml,json,toml,properties}
  statusbars validate

  # Validate a specific values file
  statusbars validate --config-path ./profiles --config-name pvm

  # Report as JUnit XML for CI
  statusbars validate -o junit

  # Validate again on every change
  statusbars validate --watch`,
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE:    run,
	}

	validateFlags.Register(cmd.Flags(), false)

	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	_, log = shared.Setup(cmd)
	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	v := sbctx.Viper(cmd.Context())
	paths, name := cliflags.ConfigPaths(v)
	cfg := output.ConfigFromViper(v)

	if v.GetBool("watch") {
		return watch(cmd, paths, name, cfg)
	}

	// Always use strict mode for validation
	result, err := config.Load(cmd.Context(), paths, name, true)
	if err != nil {
		return fmt.Errorf("failed to load values: %w", err)
	}

	summary := Collect(result)
	if err := output.Fprint(cmd.OutOrStdout(), summary, cfg); err != nil {
		return err
	}
	return summary.Err()
}

func watch(cmd *cobra.Command, paths []string, name string, cfg output.Config) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return config.Watch(ctx, paths, name, true, func(result *config.LoadResult, err error) {
		if err != nil {
			log.Error("failed to load values", "error", err)
			return
		}
		summary := Collect(result)
		if err := output.Fprint(cmd.OutOrStdout(), summary, cfg); err != nil {
			log.Error("failed to print summary", "error", err)
		}
		log.Info("validated", slog.Int("valid", summary.Valid), slog.Int("invalid", summary.Invalid))
	})
}

// Result is the validation outcome of one setting or stray value.
type Result struct {
	Group  string   `json:"group" yaml:"group"`
	Key    string   `json:"key" yaml:"key"`
	Kind   string   `json:"kind" yaml:"kind"`
	Value  string   `json:"value,omitempty" yaml:"value,omitempty"`
	Stored bool     `json:"stored" yaml:"stored"`
	Valid  bool     `json:"valid" yaml:"valid"`
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Name identifies the result as group/key.
func (r Result) Name() string {
	if r.Key == "" {
		return r.Group
	}
	return r.Group + "/" + r.Key
}

// Summary holds the overall validation results
type Summary struct {
	ConfigFile string   `json:"configFile,omitempty" yaml:"configFile,omitempty"`
	Results    []Result `json:"results" yaml:"results"`
	Valid      int      `json:"valid" yaml:"valid"`
	Invalid    int      `json:"invalid" yaml:"invalid"`
}

// Collect builds a summary from a strict load. Settings appear in display
// order per group; errors that name no declared setting follow them.
func Collect(result *config.LoadResult) Summary {
	summary := Summary{ConfigFile: result.ConfigFile}
	index := make(map[string]int)

	for _, g := range result.Groups() {
		for _, entry := range g.Entries() {
			r := Result{
				Group:  g.GroupID(),
				Key:    entry.Setting.Key,
				Kind:   entry.Setting.Kind.String(),
				Value:  shared.FormatValue(entry.Setting, entry.Value),
				Stored: entry.Stored,
				Valid:  true,
			}
			index[r.Name()] = len(summary.Results)
			summary.Results = append(summary.Results, r)
		}
	}

	for _, err := range result.ValidationErrors {
		r := Result{Group: "unknown", Kind: "unknown"}
		var settingErr config.SettingError
		if errors.As(err, &settingErr) {
			r.Group, r.Key = settingErr.Group, settingErr.Key
			err = settingErr.Err
		}

		if i, ok := index[r.Name()]; ok {
			summary.Results[i].Valid = false
			summary.Results[i].Errors = append(summary.Results[i].Errors, err.Error())
			continue
		}
		r.Errors = []string{err.Error()}
		index[r.Name()] = len(summary.Results)
		summary.Results = append(summary.Results, r)
	}

	for _, r := range summary.Results {
		if r.Valid {
			summary.Valid++
		} else {
			summary.Invalid++
		}
	}

	return summary
}

// Err returns an error when any result is invalid.
func (s Summary) Err() error {
	if s.Invalid > 0 {
		return fmt.Errorf("validation failed: %d invalid setting(s)", s.Invalid)
	}
	return nil
}

func (s Summary) RenderText(p output.Palette) string {
	var sb strings.Builder

	if s.ConfigFile != "" {
		fmt.Fprintf(&sb, "Validation Results (%s):\n", s.ConfigFile)
	} else {
		sb.WriteString("Validation Results (no values file, defaults only):\n")
	}

	for _, r := range s.Results {
		if r.Valid {
			value := p.Paint(p.Muted, r.Value+" (default)")
			if r.Stored {
				value = p.Paint(p.Override, r.Value)
			}
			fmt.Fprintf(&sb, "  %s %s = %s\n", p.Paint(p.Valid, "✔"), p.Paint(p.Key, r.Name()), value)
			continue
		}
		fmt.Fprintf(&sb, "  %s %s (%s)\n", p.Paint(p.Invalid, "✘"), p.Paint(p.Key, r.Name()), r.Kind)
		for _, e := range r.Errors {
			fmt.Fprintf(&sb, "      - %s\n", e)
		}
	}

	fmt.Fprintf(&sb, "\nSummary: %d valid, %d invalid\n", s.Valid, s.Invalid)
	return sb.String()
}

// TestSuite reports each group as a suite with one case per setting.
func (s Summary) TestSuite() output.TestSuite {
	root := output.TestSuite{Name: "statusbars"}
	if s.ConfigFile != "" {
		root.Name = s.ConfigFile
	}

	suites := make(map[string]int)
	for _, r := range s.Results {
		i, ok := suites[r.Group]
		if !ok {
			i = len(root.Suites)
			suites[r.Group] = i
			root.Suites = append(root.Suites, output.TestSuite{Name: r.Group})
		}

		tc := output.TestCase{
			Name:      r.Name(),
			Classname: r.Kind,
			SystemOut: r.Value,
			Failures:  r.Errors,
		}
		root.Suites[i].Cases = append(root.Suites[i].Cases, tc)
	}

	return root
}
