package main

import (
	"fmt"
	"os"

	"github.com/isometry/statusbars/pkg/commands/root"

	// import groups to trigger registration
	_ "github.com/isometry/statusbars/pkg/statusbars"
)

var (
	version string = "snapshot"
	commit  string = "unknown"
	date    string = "unknown"
)

func main() {
	cmd := root.New()
	cmd.Version = fmt.Sprintf("%s-%s (built %s)", version, commit, date)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
