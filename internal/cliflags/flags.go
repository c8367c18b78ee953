// Package cliflags provides reusable flag definitions for CLI commands.
// It contains Cobra/Viper flag helpers that can be composed for different commands.
package cliflags

import (
	"maps"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultFormat is the default output format.
const DefaultFormat = "text"

// DefaultGroup is the settings group commands act on unless told otherwise.
const DefaultGroup = "statusbars"

// FlagKind names the pflag type a FlagValue builds.
type FlagKind string

const (
	FlagKindBool        FlagKind = "bool"
	FlagKindString      FlagKind = "string"
	FlagKindStringSlice FlagKind = "stringSlice"
)

// FlagValue represents a single flag definition with metadata
type FlagValue struct {
	Shorthand    string
	Kind         FlagKind
	DefaultValue any
	NoOptDefault string
	Usage        string
}

// FlagValues is a map of flag names to their definitions
type FlagValues map[string]FlagValue

// Register adds all flags in the set to the given pflag.FlagSet
func (f FlagValues) Register(flagSet *pflag.FlagSet, sort bool) {
	for flagName, flag := range f {
		flag.BuildFlag(flagSet, flagName)
	}
	flagSet.SortFlags = sort
}

// BuildFlag creates a pflag from the FlagValue definition
func (f *FlagValue) BuildFlag(flagSet *pflag.FlagSet, flagName string) {
	switch f.Kind {
	case FlagKindBool:
		flagSet.BoolP(flagName, f.Shorthand, f.DefaultValue.(bool), f.Usage)
	case FlagKindString:
		flagSet.StringP(flagName, f.Shorthand, f.DefaultValue.(string), f.Usage)
	case FlagKindStringSlice:
		flagSet.StringSliceP(flagName, f.Shorthand, f.DefaultValue.([]string), f.Usage)
	}

	if f.NoOptDefault != "" {
		flag := flagSet.Lookup(flagName)
		flag.NoOptDefVal = f.NoOptDefault
	}
}

// Merge combines multiple FlagValues maps into one.
func Merge(flagSets ...FlagValues) FlagValues {
	result := make(FlagValues)
	for _, fs := range flagSets {
		maps.Copy(result, fs)
	}
	return result
}

// BindFlags binds all command flags to the given viper instance.
// This includes local flags and inherited persistent flags from parent commands.
// All flags are accessible directly by name (e.g., v.GetBool("clamp")).
func BindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})
}

// ConfigPaths returns the config-path and config-name values from the given viper.
// Use this to call config.Load with consistent settings.
func ConfigPaths(v *viper.Viper) (paths []string, name string) {
	return v.GetStringSlice("config-path"), v.GetString("config-name")
}

// Common flag definitions that can be reused across commands

// ConfigFlags returns flags for values file settings
func ConfigFlags() FlagValues {
	return FlagValues{
		"config-path": {
			Kind:         FlagKindStringSlice,
			DefaultValue: []string{".", "/config"},
			Usage:        "values file search paths",
		},
		"config-name": {
			Kind:         FlagKindString,
			DefaultValue: "statusbars",
			Usage:        "values file name, without extension",
		},
	}
}

// StrictFlags returns flags for strict values checking
func StrictFlags() FlagValues {
	return FlagValues{
		"strict": {
			Kind:         FlagKindBool,
			DefaultValue: false,
			Usage:        "report unknown groups and keys as errors",
		},
	}
}

// GroupFlags returns flags for selecting a settings group
func GroupFlags() FlagValues {
	return FlagValues{
		"group": {
			Shorthand:    "g",
			Kind:         FlagKindString,
			DefaultValue: DefaultGroup,
			Usage:        "settings group",
		},
	}
}

// OutputFlags returns flags for output formatting
func OutputFlags() FlagValues {
	return FlagValues{
		"output-format": {
			Shorthand:    "o",
			Kind:         FlagKindString,
			DefaultValue: DefaultFormat,
			Usage:        "output format (text, json, yaml)",
		},
		"compact": {
			Kind:         FlagKindBool,
			DefaultValue: false,
			Usage:        "compact JSON output",
		},
		"color": {
			Kind:         FlagKindString,
			DefaultValue: "auto",
			Usage:        "colorize output: auto, always, never",
		},
	}
}
