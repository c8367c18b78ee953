// Package check provides the `statusbars check` command for testing candidate values.
package check

import (
	"errors"
	"fmt"
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
		Use:   "check <key> <value>",
		Short: "Check a candidate value against a setting",
		Long: `Check a candidate value against a setting's type, range and options.

With --clamp, integers outside the range are limited to it instead of rejected.

Examples:
  statusbars check barWidth 25
  statusbars check barWidth 80 --clamp
  statusbars check leftBarMode SPECIAL_ATTACK`,
		Args:    cobra.ExactArgs(2),
		PreRunE: setup,
		RunE:    run,
	}

	checkFlags.Register(cmd.Flags(), false)

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

	result := Check(s, setting, args[1], v.GetBool("clamp"))
	log.Debug("checked", slog.String("key", result.Key), slog.String("input", result.Input), slog.Bool("valid", result.Valid))

	if err := shared.Print(cmd, v, result); err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("%s: %s", result.Key, result.Error)
	}
	return nil
}

// Result is the outcome of checking one candidate.
type Result struct {
	Group   string       `json:"group" yaml:"group"`
	Key     string       `json:"key" yaml:"key"`
	Input   string       `json:"input" yaml:"input"`
	Valid   bool         `json:"valid" yaml:"valid"`
	Value   schema.Value `json:"value,omitempty" yaml:"value,omitempty"`
	Clamped bool         `json:"clamped,omitempty" yaml:"clamped,omitempty"`
	Error   string       `json:"error,omitempty" yaml:"error,omitempty"`

	setting schema.Setting
}

// Check parses input for setting, limiting out-of-range integers when clamp is set.
func Check(s *schema.Schema, setting schema.Setting, input string, clamp bool) Result {
	result := Result{Group: s.GroupID(), Key: setting.Key, Input: input, setting: setting}

	value, err := s.Parse(setting.Key, input)
	var oor *schema.OutOfRangeError
	if clamp && errors.As(err, &oor) {
		value, err = s.Clamp(setting.Key, input)
		result.Clamped = err == nil
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Valid = true
	result.Value = value
	return result
}

func (r Result) RenderText(p output.Palette) string {
	if !r.Valid {
		return fmt.Sprintf("%s %s = %s: %s\n", p.Paint(p.Invalid, "✘"), p.Paint(p.Key, r.Key), r.Input, r.Error)
	}

	value := shared.FormatValue(r.setting, r.Value)
	if r.Clamped {
		return fmt.Sprintf("%s %s = %s (clamped from %s)\n", p.Paint(p.Override, "✔"), p.Paint(p.Key, r.Key), p.Paint(p.Value, value), r.Input)
	}
	return fmt.Sprintf("%s %s = %s\n", p.Paint(p.Valid, "✔"), p.Paint(p.Key, r.Key), p.Paint(p.Value, value))
}
