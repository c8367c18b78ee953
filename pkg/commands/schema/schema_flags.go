package schema

import (
	"github.com/isometry/statusbars/internal/cliflags"
)

var schemaFlags = cliflags.Merge(
	cliflags.GroupFlags(),
	cliflags.OutputFlags(),
	cliflags.FlagValues{
		"section": {
			Shorthand:    "s",
			Kind:         cliflags.FlagKindString,
			DefaultValue: "",
			Usage:        "only list the settings of this section",
		},
	},
)
