package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/refsync-dev/refsync/internal/branding"
	"github.com/refsync-dev/refsync/internal/syncer"
	"github.com/spf13/cobra"
)

// ErrOutOfSync is returned by `check` when any config differs from its
// target. It carries no message of its own; the command prints the
// remediation hint before returning it.
var ErrOutOfSync = errors.New("project references are out of sync")

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify project references match the workspace graph",
	Long: `Check compares every package's compiler configuration (and the workspace
root's) against the references computed from the workspace dependency graph.
Nothing is written; drift exits with status 1.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, result, err := runSync(syncer.Check)
		if err != nil {
			return err
		}

		if !result.Changed() {
			fmt.Println("Project references are in sync.")
			return nil
		}

		for _, o := range result.Packages {
			if o.OutOfSync() {
				fmt.Fprintf(os.Stderr, "  out of sync: %s\n", displayPath(ws.Root, o.Path))
			}
		}
		if result.Root.OutOfSync() {
			fmt.Fprintf(os.Stderr, "  out of sync: %s\n", displayPath(ws.Root, result.Root.Path))
		}
		fmt.Fprintf(os.Stderr, "Project references are out of sync. Run '%s write' to fix.\n", branding.CLIName())
		return ErrOutOfSync
	},
}

// displayPath shortens an absolute config path to its root-relative form.
func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
