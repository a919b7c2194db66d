package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/refsync-dev/refsync/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		// Drift already printed its remediation hint; everything else
		// surfaces the raw error.
		if !errors.Is(err, cli.ErrOutOfSync) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
