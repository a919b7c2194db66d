package cli

import (
	"fmt"

	"github.com/refsync-dev/refsync/internal/config"
	"github.com/refsync-dev/refsync/internal/tsconfig"
	"github.com/refsync-dev/refsync/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the workspace and package-manager setup",
	Long: `Doctor verifies everything check/write depend on: a discoverable workspace
root, a supported package manager on PATH, and a parseable workspace listing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := workspace.Discover()
		if err != nil {
			return err
		}
		fmt.Printf("workspace root: %s\n", root)

		mgr, err := workspace.DetectManager(root)
		if err != nil {
			return err
		}
		fmt.Printf("package manager: %s (%s)\n", mgr.Bin, mgr.Version)

		ws, err := workspace.List(root)
		if err != nil {
			return err
		}

		configs := 0
		for _, pkg := range ws.Packages {
			desc, err := tsconfig.Probe(ws.Root, pkg.Location, config.TSConfigName())
			if err != nil {
				return err
			}
			if desc.Exists() {
				configs++
			}
		}
		fmt.Printf("packages: %d (%d with %s)\n", len(ws.Packages), configs, config.TSConfigName())
		return nil
	},
}
