package groups

import (
	"github.com/isometry/statusbars/internal/cliflags"
)

var groupsFlags = cliflags.OutputFlags()
