package jsonschema

import (
	"github.com/isometry/statusbars/internal/cliflags"
)

var jsonschemaFlags = cliflags.Merge(
	cliflags.GroupFlags(),
	cliflags.OutputFlags(),
	cliflags.FlagValues{
		"output-format": {
			Shorthand:    "o",
			Kind:         cliflags.FlagKindString,
			DefaultValue: "json",
			Usage:        "output format (json, yaml)",
		},
		"all": {
			Kind:         cliflags.FlagKindBool,
			DefaultValue: false,
			Usage:        "describe every registered group",
		},
	},
)
