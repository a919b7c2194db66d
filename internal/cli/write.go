package cli

import (
	"fmt"

	"github.com/refsync-dev/refsync/internal/syncer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(writeCmd)
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Rewrite project references to match the workspace graph",
	Long: `Write replaces the references field of every package's compiler
configuration (and rebuilds the workspace root's) from the workspace
dependency graph. Files already matching their target are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, result, err := runSync(syncer.Write)
		if err != nil {
			return err
		}

		if !result.Changed() {
			fmt.Println("Project references already in sync.")
			return nil
		}

		for _, o := range result.Packages {
			if o.State == syncer.StateWritten {
				fmt.Printf("  synced %s\n", displayPath(ws.Root, o.Path))
			}
		}
		if result.Root.State == syncer.StateWritten {
			fmt.Printf("  synced %s\n", displayPath(ws.Root, result.Root.Path))
		}
		fmt.Println("Project references were synced.")
		return nil
	},
}
