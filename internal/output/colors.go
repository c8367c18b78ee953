package output

import (
	"strings"
	"unicode/utf8"

	"github.com/mgutz/ansi"
)

// StatusColors holds color names for validity markers.
type StatusColors struct {
	Valid   string `mapstructure:"valid"`
	Invalid string `mapstructure:"invalid"`
}

// ColorConfig holds semantic color names for text output colorization.
// Color names follow mgutz/ansi format: "red", "green+b" (bold), "white+d" (dim), etc.
type ColorConfig struct {
	Status   StatusColors `mapstructure:"status"`
	Group    string       `mapstructure:"group"`
	Section  string       `mapstructure:"section"`
	Key      string       `mapstructure:"key"`
	Kind     string       `mapstructure:"kind"`
	Value    string       `mapstructure:"value"`
	Override string       `mapstructure:"override"`
	Muted    string       `mapstructure:"muted"`
}

// ResolvedColors holds pre-computed ANSI escape codes.
type ResolvedColors struct {
	Reset    string
	Valid    string
	Invalid  string
	Group    string
	Section  string
	Key      string
	Kind     string
	Value    string
	Override string
	Muted    string
}

// DefaultColorConfig returns the default color configuration.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		Status: StatusColors{
			Valid:   "green",
			Invalid: "red",
		},
		Group:    "white+b",
		Section:  "blue+b",
		Key:      "cyan",
		Kind:     "blue",
		Value:    "default",
		Override: "yellow",
		Muted:    "white+d",
	}
}

// Resolve converts semantic color names to ANSI escape codes.
func (c ColorConfig) Resolve() ResolvedColors {
	return ResolvedColors{
		Reset:    ansi.ColorCode("reset"),
		Valid:    ansi.ColorCode(c.Status.Valid),
		Invalid:  ansi.ColorCode(c.Status.Invalid),
		Group:    ansi.ColorCode(c.Group),
		Section:  ansi.ColorCode(c.Section),
		Key:      ansi.ColorCode(c.Key),
		Kind:     ansi.ColorCode(c.Kind),
		Value:    ansi.ColorCode(c.Value),
		Override: ansi.ColorCode(c.Override),
		Muted:    ansi.ColorCode(c.Muted),
	}
}

// Palette paints text with resolved colors, or leaves it plain when disabled.
type Palette struct {
	ResolvedColors
	enabled bool
}

// Paint wraps s in the given escape code.
func (p Palette) Paint(code, s string) string {
	if !p.enabled || code == "" {
		return s
	}
	return code + s + p.Reset
}

// PaintPadded paints s and pads it to width runes. The padding is left
// unpainted and escape codes do not count toward the width.
func (p Palette) PaintPadded(code, s string, width int) string {
	return p.Paint(code, s) + strings.Repeat(" ", max(width-utf8.RuneCountInString(s), 0))
}
