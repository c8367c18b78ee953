package check

import (
	"github.com/isometry/statusbars/internal/cliflags"
)

var checkFlags = cliflags.Merge(
	cliflags.GroupFlags(),
	cliflags.OutputFlags(),
	cliflags.FlagValues{
		"clamp": {
			Kind:         cliflags.FlagKindBool,
			DefaultValue: false,
			Usage:        "limit out-of-range integers to the range instead of rejecting them",
		},
	},
)
