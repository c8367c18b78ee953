package output

import (
	"github.com/spf13/viper"

	"github.com/isometry/statusbars/internal/cliflags"
	"github.com/isometry/statusbars/pkg/utils"
)

// Config holds configuration for formatting command output.
type Config struct {
	Format   string // output format (text, json, yaml, junit)
	Compact  bool
	Colorize bool           // colorize output (text only)
	Colors   ResolvedColors // resolved ANSI color codes
}

// ConfigFromViper creates a Config from viper settings.
// This is the standard way to build Config for commands that use
// the common output flags (output-format, compact, color).
func ConfigFromViper(v *viper.Viper) Config {
	format := v.GetString("output-format")
	if format == "" {
		format = cliflags.DefaultFormat
	}

	// Error is intentionally ignored: invalid color config falls back to defaults.
	colorCfg := DefaultColorConfig()
	_ = v.UnmarshalKey("colors", &colorCfg)

	return Config{
		Format:   format,
		Compact:  v.GetBool("compact"),
		Colorize: shouldColorize(v.GetString("color")),
		Colors:   colorCfg.Resolve(),
	}
}

// shouldColorize determines whether to colorize output based on the color flag value.
func shouldColorize(colorFlag string) bool {
	switch colorFlag {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		return utils.IsTTY()
	}
}

// Palette returns the painter text documents render with.
func (c Config) Palette() Palette {
	return Palette{ResolvedColors: c.Colors, enabled: c.Colorize}
}
