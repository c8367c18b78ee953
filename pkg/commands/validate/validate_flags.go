package validate

import (
	"github.com/isometry/statusbars/internal/cliflags"
)

var validateFlags = cliflags.Merge(
	cliflags.ConfigFlags(),
	cliflags.OutputFlags(),
	cliflags.FlagValues{
		"watch": {
			Shorthand:    "w",
			Kind:         cliflags.FlagKindBool,
			DefaultValue: false,
			Usage:        "validate again each time the values file changes",
		},
	},
)
