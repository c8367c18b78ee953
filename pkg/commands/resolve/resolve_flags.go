package resolve

import (
	"github.com/isometry/statusbars/internal/cliflags"
)

var resolveFlags = cliflags.Merge(
	cliflags.ConfigFlags(),
	cliflags.OutputFlags(),
	cliflags.StrictFlags(),
	cliflags.FlagValues{
		"changed": {
			Kind:         cliflags.FlagKindBool,
			DefaultValue: false,
			Usage:        "only list values that differ from their defaults",
		},
		"typed": {
			Kind:         cliflags.FlagKindBool,
			DefaultValue: false,
			Usage:        "print the statusbars group as its typed configuration",
		},
	},
)
