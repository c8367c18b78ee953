package get

import (
	"github.com/isometry/statusbars/internal/cliflags"
)

var getFlags = cliflags.Merge(
	cliflags.GroupFlags(),
	cliflags.OutputFlags(),
)
